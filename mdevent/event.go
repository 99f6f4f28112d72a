// Package mdevent turns a Markdown document into an ordered, well-nested
// stream of parse events.
//
// The stream is produced by walking the goldmark AST: every container node
// yields a Start event, the events of its children and a matching End event;
// leaf nodes yield a single event. Events and constructs are closed sum
// types: both interfaces are sealed, so only the variants declared in this
// file exist.
package mdevent

// Event is one unit of the parse event stream.
//
// The concrete types are Start, End, Text, Code, HTML, FootnoteReference,
// SoftBreak, HardBreak, Rule and TaskListMarker.
type Event interface {
	event()
}

// Start opens a construct. It is always matched by exactly one later End
// carrying an equal construct at the same nesting depth.
type Start struct {
	Construct Construct
}

// End closes the construct opened by the matching Start.
type End struct {
	Construct Construct
}

// Text is literal text with backslash escapes and entity references resolved.
type Text struct {
	Value string
}

// Code is the content of an inline code span.
type Code struct {
	Value string
}

// HTML is raw inline or block HTML, passed through untouched.
type HTML struct {
	Value string
}

// FootnoteReference marks a reference to a footnote definition.
type FootnoteReference struct {
	Label string
}

type SoftBreak struct{}

type HardBreak struct{}

// Rule is a thematic break.
type Rule struct{}

// TaskListMarker is the checkbox at the start of a task list item.
type TaskListMarker struct {
	Checked bool
}

func (Start) event()             {}
func (End) event()               {}
func (Text) event()              {}
func (Code) event()              {}
func (HTML) event()              {}
func (FootnoteReference) event() {}
func (SoftBreak) event()         {}
func (HardBreak) event()         {}
func (Rule) event()              {}
func (TaskListMarker) event()    {}
