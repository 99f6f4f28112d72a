package mdevent

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var linkKindsKey = parser.NewContextKey()

// linkKinds maps the link and image nodes of one document to the syntax they
// were written in.
type linkKinds map[ast.Node]LinkKind

// linkKindParser wraps goldmark's link parser and records, for every link it
// closes, whether the label was followed by a destination, a reference label,
// an empty reference label or nothing.
type linkKindParser struct {
	inner parser.InlineParser
}

func newLinkKindParser(inner parser.InlineParser) parser.InlineParser {
	return &linkKindParser{inner: inner}
}

func (p *linkKindParser) Trigger() []byte {
	return p.inner.Trigger()
}

func (p *linkKindParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	startLine, startPos := block.Position()

	node := p.inner.Parse(parent, block, pc)
	if node == nil || len(line) == 0 || line[0] != ']' {
		return node
	}

	kinds, ok := pc.Get(linkKindsKey).(linkKinds)
	if !ok {
		return node
	}

	switch node.(type) {
	case *ast.Link, *ast.Image:
	default:
		return node
	}

	consumed := -1
	if endLine, endPos := block.Position(); endLine == startLine {
		consumed = endPos.Start - startPos.Start
	}
	kinds[node] = classifyLinkSuffix(line, consumed)

	return node
}

func (p *linkKindParser) CloseBlock(parent ast.Node, block text.Reader, pc parser.Context) {
	if closer, ok := p.inner.(parser.CloseBlocker); ok {
		closer.CloseBlock(parent, block, pc)
	}
}

// classifyLinkSuffix inspects the text starting at the closing bracket of a
// link label. consumed is the number of bytes the link parser read from that
// line, or -1 when the link continued onto later lines.
func classifyLinkSuffix(line []byte, consumed int) LinkKind {
	if consumed == 1 {
		return LinkShortcut
	}

	switch {
	case bytes.HasPrefix(line, []byte("](")):
		return LinkInline
	case bytes.HasPrefix(line, []byte("][]")):
		return LinkCollapsed
	case bytes.HasPrefix(line, []byte("][")):
		return LinkReference
	case consumed < 0:
		return LinkUnknown
	default:
		return LinkShortcut
	}
}
