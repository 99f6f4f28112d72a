package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	preset  string
	verbose bool
}

func main() {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "mdx",
		Short:         "Inspect Markdown as parse events or HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.preset, "preset", presetExtended, "Preset: commonmark|gfm|extended|full")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(newEventsCmd(opts))
	rootCmd.AddCommand(newHTMLCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		logger := newLogger(opts.verbose)
		logger.Error().Err(err).Msg("mdx failed")
		os.Exit(1)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// readInput reads the named file, or stdin when no file is given.
func readInput(args []string, stdin io.Reader) (string, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read file: %w", err)
	}
	return string(data), args[0], nil
}
