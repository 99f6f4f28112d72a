// Package extract flattens parse events into Extract Records: one record
// shape for every event, with unused fields left at their zero value.
package extract

// Record is the flat, fixed-schema form of one parse event.
//
// Every record carries every field. Only the fields relevant to its
// (Type, Tag) pair are set; everything else keeps its zero value, and
// Alignments is an empty, non-nil slice. Field names and order are the wire
// contract with consumers and must not change without a version bump.
type Record struct {
	Type        string   `json:"type" yaml:"type"`
	Tag         string   `json:"tag" yaml:"tag"`
	Content     string   `json:"content" yaml:"content"`
	Level       uint32   `json:"level" yaml:"level"`
	Kind        string   `json:"kind" yaml:"kind"`
	Fenced      bool     `json:"fenced" yaml:"fenced"`
	Language    string   `json:"language" yaml:"language"`
	StartNumber uint64   `json:"start_number" yaml:"start_number"`
	Label       string   `json:"label" yaml:"label"`
	Alignments  []string `json:"alignments" yaml:"alignments"`
	URL         string   `json:"url" yaml:"url"`
	Title       string   `json:"title" yaml:"title"`
	Checked     bool     `json:"checked" yaml:"checked"`
}

// FieldNames lists the record fields in wire order.
var FieldNames = []string{
	"type",
	"tag",
	"content",
	"level",
	"kind",
	"fenced",
	"language",
	"start_number",
	"label",
	"alignments",
	"url",
	"title",
	"checked",
}

// Record types.
const (
	TypeStart             = "START"
	TypeEnd               = "END"
	TypeText              = "TEXT"
	TypeCode              = "CODE"
	TypeHTML              = "HTML"
	TypeFootnoteReference = "FOOTNOTE_REFERENCE"
	TypeSoftBreak         = "SOFT_BREAK"
	TypeHardBreak         = "HARD_BREAK"
	TypeRule              = "RULE"
	TypeTaskListMarker    = "TASK_LIST_MARKER"
)

// Record tags, set on START and END records.
const (
	TagBlockQuote         = "BLOCK_QUOTE"
	TagCodeBlock          = "CODE_BLOCK"
	TagEmphasis           = "EMPHASIS"
	TagFootnoteDefinition = "FOOTNOTE_DEFINITION"
	TagHeading            = "HEADING"
	TagImage              = "IMAGE"
	TagItem               = "ITEM"
	TagList               = "LIST"
	TagLink               = "LINK"
	TagParagraph          = "PARAGRAPH"
	TagStrikethrough      = "STRIKETHROUGH"
	TagStrong             = "STRONG"
	TagTable              = "TABLE"
	TagTableHead          = "TABLE_HEAD"
	TagTableRow           = "TABLE_ROW"
	TagTableCell          = "TABLE_CELL"
)

// Kind values of CODE_BLOCK records.
const (
	KindIndented = "INDENTED"
	KindFenced   = "FENCED"
)

// Kind values of LINK and IMAGE records.
const (
	KindInline    = "INLINE"
	KindReference = "REFERENCE"
	KindAutolink  = "AUTOLINK"
	KindEmail     = "EMAIL"
	KindShortcut  = "SHORTCUT"
	KindCollapsed = "COLLAPSED"
	KindUnknown   = "UNKNOWN"
)

func newRecord(recordType string) Record {
	return Record{
		Type:       recordType,
		Alignments: []string{},
	}
}
