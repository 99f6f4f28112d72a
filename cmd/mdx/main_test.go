package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rgonek/markdown-events/extract"
	"github.com/rgonek/markdown-events/mdevent"
	"github.com/rgonek/markdown-events/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetConfig(t *testing.T) {
	t.Run("extended", func(t *testing.T) {
		cfg, err := presetConfig(presetExtended)
		require.NoError(t, err)
		assert.Equal(t, mdevent.Config{}, cfg)
	})

	t.Run("empty defaults to extended", func(t *testing.T) {
		cfg, err := presetConfig("")
		require.NoError(t, err)
		assert.Equal(t, mdevent.Config{}, cfg)
	})

	t.Run("commonmark", func(t *testing.T) {
		cfg, err := presetConfig(presetCommonMark)
		require.NoError(t, err)
		assert.Equal(t, mdevent.DialectCommonMark, cfg.Dialect)
	})

	t.Run("gfm", func(t *testing.T) {
		cfg, err := presetConfig(" GFM ")
		require.NoError(t, err)
		assert.Equal(t, mdevent.DialectGFM, cfg.Dialect)
	})

	t.Run("full", func(t *testing.T) {
		cfg, err := presetConfig(presetFull)
		require.NoError(t, err)
		assert.Equal(t, mdevent.DialectExtended, cfg.Dialect)
		assert.True(t, cfg.Enabled(mdevent.ExtensionLinkify))
		assert.True(t, cfg.Enabled(mdevent.ExtensionFootnote))
	})
}

func TestPresetConfigInvalid(t *testing.T) {
	_, err := presetConfig("unknown")
	require.Error(t, err)
	assert.Equal(t, `unknown preset "unknown" (allowed: commonmark, gfm, extended, full)`, err.Error())
}

func TestResolveRenderConfig(t *testing.T) {
	cfg, err := resolveRenderConfig(presetGFM, "Sanitize", true, false)
	require.NoError(t, err)
	assert.Equal(t, render.Config{
		Markdown:  mdevent.Config{Dialect: mdevent.DialectGFM},
		RawHTML:   render.RawHTMLSanitize,
		HardWraps: true,
	}, cfg)

	_, err = resolveRenderConfig(presetGFM, "drop", false, false)
	require.Error(t, err)
	assert.Equal(t, `unknown raw HTML mode "drop" (allowed: passthrough, omit, sanitize)`, err.Error())
}

func TestEventsCommandStdin(t *testing.T) {
	cmd := newEventsCmd(&globalOptions{preset: presetExtended})
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("# Hi"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var records []extract.Record
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	assert.Equal(t, extract.Parse("# Hi"), records)
}

func TestEventsCommandYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("- [x] done"), 0o644))

	cmd := newEventsCmd(&globalOptions{preset: presetExtended})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "yaml", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "type: TASK_LIST_MARKER")
	assert.Contains(t, out.String(), "checked: true")
}

func TestEventsCommandUnknownFormat(t *testing.T) {
	cmd := newEventsCmd(&globalOptions{preset: presetExtended})
	cmd.SetIn(strings.NewReader("x"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, `unknown format "xml" (allowed: json, yaml)`, err.Error())
}

func TestHTMLCommand(t *testing.T) {
	cmd := newHTMLCmd(&globalOptions{preset: presetExtended})
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("**bold**"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, render.HTML("**bold**"), out.String())
	assert.Contains(t, out.String(), "<strong>bold</strong>")
}

func TestReadInputMissingFile(t *testing.T) {
	_, _, err := readInput([]string{filepath.Join(t.TempDir(), "missing.md")}, strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read file:")
}
