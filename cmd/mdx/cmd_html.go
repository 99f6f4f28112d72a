package main

import (
	"fmt"

	"github.com/rgonek/markdown-events/render"
	"github.com/spf13/cobra"
)

func newHTMLCmd(opts *globalOptions) *cobra.Command {
	var (
		rawHTML   string
		hardWraps bool
		xhtml     bool
	)

	cmd := &cobra.Command{
		Use:   "html [file]",
		Short: "Render a Markdown document to HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.verbose)

			cfg, err := resolveRenderConfig(opts.preset, rawHTML, hardWraps, xhtml)
			if err != nil {
				return err
			}

			r, err := render.New(cfg)
			if err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			source, name, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			out, err := r.Render(source)
			if err != nil {
				return err
			}
			logger.Debug().
				Str("input", name).
				Int("bytes", len(source)).
				Int("html_bytes", len(out)).
				Msg("rendered html")

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&rawHTML, "raw-html", string(render.RawHTMLPassthrough), "Raw HTML handling: passthrough|omit|sanitize")
	cmd.Flags().BoolVar(&hardWraps, "hard-wraps", false, "Render soft line breaks as <br>")
	cmd.Flags().BoolVar(&xhtml, "xhtml", false, "Render XHTML-style void elements")

	return cmd
}
