package mdevent

import (
	"iter"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Engine produces parse events for Markdown documents. It is safe for
// concurrent use: every call builds its own AST and parser context.
type Engine struct {
	config   Config
	markdown goldmark.Markdown
}

type state struct {
	source    []byte
	yield     func(Event) bool
	stopped   bool
	linkKinds linkKinds
	footnotes map[int]string
	warnings  []Warning
}

// New creates a new Engine with the given config.
func New(config Config) (*Engine, error) {
	cfg, err := config.Normalize()
	if err != nil {
		return nil, err
	}

	return &Engine{
		config:   cfg,
		markdown: NewMarkdown(cfg),
	}, nil
}

// NewMarkdown builds the goldmark instance for a dialect. Callers must pass a
// config that has been through Normalize.
func NewMarkdown(config Config, options ...goldmark.Option) goldmark.Markdown {
	p := parser.NewParser(
		parser.WithBlockParsers(parser.DefaultBlockParsers()...),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewCodeSpanParser(), 100),
			util.Prioritized(newLinkKindParser(parser.NewLinkParser()), 200),
			util.Prioritized(parser.NewAutoLinkParser(), 300),
			util.Prioritized(parser.NewRawHTMLParser(), 400),
			util.Prioritized(parser.NewEmphasisParser(), 500),
		),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	)

	var extenders []goldmark.Extender
	for _, ext := range config.enabledExtensions() {
		switch ext {
		case ExtensionTable:
			extenders = append(extenders, extension.Table)
		case ExtensionStrikethrough:
			extenders = append(extenders, extension.Strikethrough)
		case ExtensionTaskList:
			extenders = append(extenders, extension.TaskList)
		case ExtensionFootnote:
			extenders = append(extenders, extension.Footnote)
		case ExtensionLinkify:
			extenders = append(extenders, extension.Linkify)
		}
	}

	opts := []goldmark.Option{
		goldmark.WithParser(p),
		goldmark.WithExtensions(extenders...),
	}
	return goldmark.New(append(opts, options...)...)
}

// Config returns the normalized config of the engine.
func (e *Engine) Config() Config {
	return e.config.clone()
}

// Walk parses markdown and passes every event to yield in emission order.
// Walking stops early when yield returns false. The returned warnings cover
// the part of the document that was walked.
func (e *Engine) Walk(markdown string, yield func(Event) bool) []Warning {
	s := &state{
		source:    []byte(markdown),
		yield:     yield,
		linkKinds: make(linkKinds),
	}

	pc := parser.NewContext()
	pc.Set(linkKindsKey, s.linkKinds)

	root := e.markdown.Parser().Parse(text.NewReader(s.source), parser.WithContext(pc))
	s.indexFootnotes(root)
	s.walkChildren(root)

	return s.warnings
}

// Events returns the event sequence of markdown. The document is parsed when
// iteration starts; each iteration parses it again.
func (e *Engine) Events(markdown string) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		e.Walk(markdown, yield)
	}
}

// Collect parses markdown and returns all of its events.
func (e *Engine) Collect(markdown string) Result {
	var events []Event
	warnings := e.Walk(markdown, func(ev Event) bool {
		events = append(events, ev)
		return true
	})

	return Result{
		Events:   events,
		Warnings: warnings,
	}
}

func (s *state) emit(ev Event) {
	if s.stopped {
		return
	}
	if !s.yield(ev) {
		s.stopped = true
	}
}

func (s *state) addWarning(warnType WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
}
