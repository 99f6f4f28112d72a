// Package render converts Markdown documents to HTML with goldmark's own
// renderer, using the same dialect as the event engine.
package render

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rgonek/markdown-events/mdevent"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// RawHTMLMode controls what happens to raw HTML in the source.
type RawHTMLMode string

const (
	// RawHTMLPassthrough copies raw inline and block HTML to the output.
	RawHTMLPassthrough RawHTMLMode = "passthrough"
	// RawHTMLOmit replaces raw HTML with a comment, as goldmark does by default.
	RawHTMLOmit RawHTMLMode = "omit"
	// RawHTMLSanitize passes raw HTML through and then filters the whole
	// document with a user generated content policy.
	RawHTMLSanitize RawHTMLMode = "sanitize"
)

// Config configures HTML rendering.
type Config struct {
	Markdown  mdevent.Config `json:"markdown,omitempty"`
	RawHTML   RawHTMLMode    `json:"rawHTML,omitempty"`
	HardWraps bool           `json:"hardWraps,omitempty"`
	XHTML     bool           `json:"xhtml,omitempty"`
}

func (c Config) applyDefaults() Config {
	if c.RawHTML == "" {
		c.RawHTML = RawHTMLPassthrough
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.RawHTML != RawHTMLPassthrough &&
		c.RawHTML != RawHTMLOmit &&
		c.RawHTML != RawHTMLSanitize {
		return fmt.Errorf("invalid rawHTML %q", c.RawHTML)
	}
	return c.Markdown.Validate()
}

// Renderer renders Markdown documents to HTML. It is safe for concurrent use.
type Renderer struct {
	config   Config
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

// New creates a new Renderer with the given config.
func New(config Config) (*Renderer, error) {
	cfg := config.applyDefaults()
	markdownCfg, err := cfg.Markdown.Normalize()
	if err != nil {
		return nil, err
	}
	cfg.Markdown = markdownCfg
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var rendererOptions []goldmark.Option
	var htmlOptions []renderer.Option
	if cfg.RawHTML != RawHTMLOmit {
		htmlOptions = append(htmlOptions, html.WithUnsafe())
	}
	if cfg.HardWraps {
		htmlOptions = append(htmlOptions, html.WithHardWraps())
	}
	if cfg.XHTML {
		htmlOptions = append(htmlOptions, html.WithXHTML())
	}
	if len(htmlOptions) > 0 {
		rendererOptions = append(rendererOptions, goldmark.WithRendererOptions(htmlOptions...))
	}

	r := &Renderer{
		config:   cfg,
		markdown: mdevent.NewMarkdown(cfg.Markdown, rendererOptions...),
	}
	if cfg.RawHTML == RawHTMLSanitize {
		r.policy = bluemonday.UGCPolicy()
	}

	return r, nil
}

// Render returns the HTML fragment for markdown.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}

	if r.policy != nil {
		return r.policy.Sanitize(buf.String()), nil
	}

	return buf.String(), nil
}

var defaultRenderer = mustNew(Config{})

func mustNew(config Config) *Renderer {
	r, err := New(config)
	if err != nil {
		panic(fmt.Sprintf("render: invalid default config: %v", err))
	}
	return r
}

// HTML renders markdown with the default dialect, passing raw HTML through.
func HTML(markdown string) string {
	out, err := defaultRenderer.Render(markdown)
	if err != nil {
		panic(fmt.Sprintf("render: %v", err))
	}
	return out
}
