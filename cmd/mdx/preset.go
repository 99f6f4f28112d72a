package main

import (
	"fmt"
	"strings"

	"github.com/rgonek/markdown-events/mdevent"
	"github.com/rgonek/markdown-events/render"
)

const (
	presetCommonMark = "commonmark"
	presetGFM        = "gfm"
	presetExtended   = "extended"
	presetFull       = "full"
)

func presetConfig(preset string) (mdevent.Config, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetExtended:
		return mdevent.Config{}, nil
	case presetCommonMark:
		return mdevent.Config{Dialect: mdevent.DialectCommonMark}, nil
	case presetGFM:
		return mdevent.Config{Dialect: mdevent.DialectGFM}, nil
	case presetFull:
		return mdevent.Config{
			Dialect:    mdevent.DialectExtended,
			Extensions: []mdevent.Extension{mdevent.ExtensionLinkify},
		}, nil
	default:
		return mdevent.Config{}, fmt.Errorf("unknown preset %q (allowed: commonmark, gfm, extended, full)", preset)
	}
}

func resolveRenderConfig(preset, rawHTML string, hardWraps, xhtml bool) (render.Config, error) {
	markdownCfg, err := presetConfig(preset)
	if err != nil {
		return render.Config{}, err
	}

	mode := render.RawHTMLMode(strings.ToLower(strings.TrimSpace(rawHTML)))
	switch mode {
	case "", render.RawHTMLPassthrough, render.RawHTMLOmit, render.RawHTMLSanitize:
	default:
		return render.Config{}, fmt.Errorf("unknown raw HTML mode %q (allowed: passthrough, omit, sanitize)", rawHTML)
	}

	return render.Config{
		Markdown:  markdownCfg,
		RawHTML:   mode,
		HardWraps: hardWraps,
		XHTML:     xhtml,
	}, nil
}
