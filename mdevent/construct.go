package mdevent

// Construct is the payload of Start and End events: a named block or inline
// Markdown structure.
type Construct interface {
	construct()
}

type BlockQuote struct{}

// CodeBlock is an indented or fenced code block. Info holds the complete
// fence info string and is empty for indented blocks.
type CodeBlock struct {
	Kind CodeBlockKind
	Info string
}

type Emphasis struct{}

type Strong struct{}

type Strikethrough struct{}

type Paragraph struct{}

type Item struct{}

type TableHead struct{}

type TableRow struct{}

type TableCell struct{}

// FootnoteDefinition is the body of a footnote.
type FootnoteDefinition struct {
	Label string
}

// Heading is an ATX or setext heading with Level in 1..6.
type Heading struct {
	Level int
}

// List is an ordered list when Start is set, a bullet list otherwise.
type List struct {
	Start *uint64
}

// Ordered reports whether the list declares a start number.
func (l List) Ordered() bool {
	return l.Start != nil
}

type Link struct {
	Kind        LinkKind
	Destination string
	Title       string
}

// Image carries the same payload as Link; its children are the alt text.
type Image struct {
	Kind        LinkKind
	Destination string
	Title       string
}

// Table holds one alignment per column, in column order.
type Table struct {
	Alignments []Alignment
}

func (BlockQuote) construct()         {}
func (CodeBlock) construct()          {}
func (Emphasis) construct()           {}
func (Strong) construct()             {}
func (Strikethrough) construct()      {}
func (Paragraph) construct()          {}
func (Item) construct()               {}
func (TableHead) construct()          {}
func (TableRow) construct()           {}
func (TableCell) construct()          {}
func (FootnoteDefinition) construct() {}
func (Heading) construct()            {}
func (List) construct()               {}
func (Link) construct()               {}
func (Image) construct()              {}
func (Table) construct()              {}

// CodeBlockKind tells indented code blocks from fenced ones.
type CodeBlockKind int

const (
	CodeBlockIndented CodeBlockKind = iota
	CodeBlockFenced
)

func (k CodeBlockKind) String() string {
	switch k {
	case CodeBlockIndented:
		return "Indented"
	case CodeBlockFenced:
		return "Fenced"
	default:
		return "CodeBlockKind(?)"
	}
}

// LinkKind records how a link or image was written in the source.
type LinkKind int

const (
	LinkUnknown LinkKind = iota
	LinkInline
	LinkReference
	LinkAutolink
	LinkEmail
	LinkShortcut
	LinkCollapsed
)

// LinkKinds lists every LinkKind value.
var LinkKinds = []LinkKind{
	LinkUnknown,
	LinkInline,
	LinkReference,
	LinkAutolink,
	LinkEmail,
	LinkShortcut,
	LinkCollapsed,
}

func (k LinkKind) String() string {
	switch k {
	case LinkInline:
		return "Inline"
	case LinkReference:
		return "Reference"
	case LinkAutolink:
		return "Autolink"
	case LinkEmail:
		return "Email"
	case LinkShortcut:
		return "Shortcut"
	case LinkCollapsed:
		return "Collapsed"
	default:
		return "Unknown"
	}
}

// Alignment is the alignment of a table column.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignRight:
		return "Right"
	case AlignCenter:
		return "Center"
	default:
		return "None"
	}
}
