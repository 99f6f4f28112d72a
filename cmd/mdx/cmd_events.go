package main

import (
	"fmt"
	"strings"

	"github.com/rgonek/markdown-events/extract"
	"github.com/spf13/cobra"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func newEventsCmd(opts *globalOptions) *cobra.Command {
	var (
		format       string
		pretty       bool
		safeIntegers bool
	)

	cmd := &cobra.Command{
		Use:   "events [file]",
		Short: "Print the flat event records of a Markdown document",
		Long: `Print one record per parse event, in document order.

If no file is provided, reads Markdown from stdin.
Every record carries the same fields; fields that do not apply to an event
hold their zero value.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.verbose)

			markdownCfg, err := presetConfig(opts.preset)
			if err != nil {
				return err
			}

			x, err := extract.New(extract.Config{
				Markdown:     markdownCfg,
				SafeIntegers: safeIntegers,
			})
			if err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			source, name, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			result := x.Extract(source)
			logger.Debug().
				Str("input", name).
				Int("bytes", len(source)).
				Int("records", len(result.Records)).
				Msg("extracted events")
			for _, warning := range result.Warnings {
				logger.Warn().
					Str("type", string(warning.Type)).
					Str("node", warning.NodeType).
					Msg(warning.Message)
			}

			encoder := x.Encoder()
			if pretty {
				encoder.Indent = "  "
			}

			var out []byte
			switch strings.ToLower(strings.TrimSpace(format)) {
			case formatJSON:
				out, err = encoder.JSON(result.Records)
			case formatYAML:
				out, err = encoder.YAML(result.Records)
			default:
				return fmt.Errorf("unknown format %q (allowed: json, yaml)", format)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(out), "\n"))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "Output format: json|yaml")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output")
	cmd.Flags().BoolVar(&safeIntegers, "safe-integers", false, "Reject start numbers above 2^53-1")

	return cmd
}
