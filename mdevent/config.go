package mdevent

import (
	"fmt"
	"strings"
)

// Dialect selects the Markdown syntax recognized by the engine.
type Dialect string

const (
	// DialectCommonMark is plain CommonMark without extensions.
	DialectCommonMark Dialect = "commonmark"
	// DialectGFM is GitHub Flavored Markdown: tables, strikethrough, task
	// lists and bare URL autolinks.
	DialectGFM Dialect = "gfm"
	// DialectExtended is CommonMark with tables, strikethrough, task lists
	// and footnotes.
	DialectExtended Dialect = "extended"
)

// Extension names a single goldmark extension.
type Extension string

const (
	ExtensionTable         Extension = "table"
	ExtensionStrikethrough Extension = "strikethrough"
	ExtensionTaskList      Extension = "tasklist"
	ExtensionFootnote      Extension = "footnote"
	ExtensionLinkify       Extension = "linkify"
)

var dialectExtensions = map[Dialect][]Extension{
	DialectCommonMark: nil,
	DialectGFM: {
		ExtensionTable,
		ExtensionStrikethrough,
		ExtensionTaskList,
		ExtensionLinkify,
	},
	DialectExtended: {
		ExtensionTable,
		ExtensionStrikethrough,
		ExtensionTaskList,
		ExtensionFootnote,
	},
}

// Config configures the Markdown dialect.
type Config struct {
	Dialect Dialect `json:"dialect,omitempty"`
	// Extensions are enabled on top of the dialect's own set.
	Extensions []Extension `json:"extensions,omitempty"`
}

func (c Config) applyDefaults() Config {
	if c.Dialect == "" {
		c.Dialect = DialectExtended
	}
	return c
}

func (c Config) clone() Config {
	cloned := c
	if c.Extensions != nil {
		cloned.Extensions = append([]Extension(nil), c.Extensions...)
	}
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if _, ok := dialectExtensions[c.Dialect]; !ok {
		return fmt.Errorf("invalid dialect %q", c.Dialect)
	}

	for _, ext := range c.Extensions {
		switch ext {
		case ExtensionTable, ExtensionStrikethrough, ExtensionTaskList, ExtensionFootnote, ExtensionLinkify:
		default:
			return fmt.Errorf("invalid extension %q", ext)
		}
	}

	return nil
}

// Normalize returns the config with defaults applied, or an error when it is
// invalid.
func (c Config) Normalize() (Config, error) {
	cfg := c.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Enabled reports whether ext is active for this config.
func (c Config) Enabled(ext Extension) bool {
	for _, candidate := range c.enabledExtensions() {
		if candidate == ext {
			return true
		}
	}
	return false
}

func (c Config) enabledExtensions() []Extension {
	seen := make(map[Extension]bool)
	var enabled []Extension
	for _, ext := range append(append([]Extension(nil), dialectExtensions[c.applyDefaults().Dialect]...), c.Extensions...) {
		if seen[ext] {
			continue
		}
		seen[ext] = true
		enabled = append(enabled, ext)
	}
	return enabled
}

// ParseDialect resolves a dialect name, ignoring case and surrounding space.
// The empty string resolves to the default dialect.
func ParseDialect(name string) (Dialect, error) {
	dialect := Dialect(strings.ToLower(strings.TrimSpace(name)))
	if dialect == "" {
		return DialectExtended, nil
	}
	if _, ok := dialectExtensions[dialect]; !ok {
		return "", fmt.Errorf("unknown dialect %q (allowed: commonmark, gfm, extended)", name)
	}
	return dialect, nil
}
