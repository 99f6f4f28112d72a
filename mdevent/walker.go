package mdevent

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

func (s *state) walkChildren(parent ast.Node) {
	for child := parent.FirstChild(); child != nil && !s.stopped; child = child.NextSibling() {
		s.walkNode(child)
	}
}

func (s *state) walkContainer(node ast.Node, construct Construct) {
	s.emit(Start{Construct: construct})
	s.walkChildren(node)
	s.emit(End{Construct: construct})
}

func (s *state) walkNode(node ast.Node) {
	switch typed := node.(type) {
	case *ast.Document, *ast.TextBlock, *extast.FootnoteList:
		s.walkChildren(typed)

	case *ast.Paragraph:
		s.walkContainer(typed, Paragraph{})

	case *ast.Heading:
		s.walkContainer(typed, Heading{Level: typed.Level})

	case *ast.Blockquote:
		s.walkContainer(typed, BlockQuote{})

	case *ast.ThematicBreak:
		s.emit(Rule{})

	case *ast.FencedCodeBlock:
		info := ""
		if typed.Info != nil {
			info = decodeText(typed.Info.Segment.Value(s.source))
		}
		s.walkCodeBlock(typed, CodeBlock{Kind: CodeBlockFenced, Info: info})

	case *ast.CodeBlock:
		s.walkCodeBlock(typed, CodeBlock{Kind: CodeBlockIndented})

	case *ast.HTMLBlock:
		s.emitLines(typed.Lines(), func(value string) Event { return HTML{Value: value} })
		if typed.HasClosure() {
			s.emit(HTML{Value: string(typed.ClosureLine.Value(s.source))})
		}

	case *ast.List:
		list := List{}
		if typed.IsOrdered() {
			start := uint64(typed.Start)
			list.Start = &start
		}
		s.walkContainer(typed, list)

	case *ast.ListItem:
		s.walkContainer(typed, Item{})

	case *extast.Table:
		s.walkContainer(typed, Table{Alignments: convertAlignments(typed.Alignments)})

	case *extast.TableHeader:
		s.walkContainer(typed, TableHead{})

	case *extast.TableRow:
		s.walkContainer(typed, TableRow{})

	case *extast.TableCell:
		s.walkContainer(typed, TableCell{})

	case *extast.Footnote:
		s.walkContainer(typed, FootnoteDefinition{Label: string(typed.Ref)})

	default:
		s.walkInlineNode(node)
	}
}

func (s *state) walkInlineNode(node ast.Node) {
	switch typed := node.(type) {
	case *ast.Text:
		value := typed.Segment.Value(s.source)
		if len(value) > 0 {
			if typed.IsRaw() {
				s.emit(Text{Value: string(value)})
			} else {
				s.emit(Text{Value: decodeText(value)})
			}
		}

		if typed.HardLineBreak() {
			s.emit(HardBreak{})
		} else if typed.SoftLineBreak() {
			s.emit(SoftBreak{})
		}

	case *ast.String:
		if len(typed.Value) > 0 {
			s.emit(Text{Value: string(typed.Value)})
		}

	case *ast.Emphasis:
		if typed.Level >= 2 {
			s.walkContainer(typed, Strong{})
		} else {
			s.walkContainer(typed, Emphasis{})
		}

	case *extast.Strikethrough:
		s.walkContainer(typed, Strikethrough{})

	case *ast.CodeSpan:
		s.emit(Code{Value: s.codeSpanValue(typed)})

	case *ast.Link:
		s.walkContainer(typed, Link{
			Kind:        s.linkKind(typed),
			Destination: decodeText(typed.Destination),
			Title:       decodeText(typed.Title),
		})

	case *ast.Image:
		s.walkContainer(typed, Image{
			Kind:        s.linkKind(typed),
			Destination: decodeText(typed.Destination),
			Title:       decodeText(typed.Title),
		})

	case *ast.AutoLink:
		kind := LinkAutolink
		if typed.AutoLinkType == ast.AutoLinkEmail {
			kind = LinkEmail
		}
		link := Link{
			Kind:        kind,
			Destination: string(typed.URL(s.source)),
		}
		s.emit(Start{Construct: link})
		s.emit(Text{Value: string(typed.Label(s.source))})
		s.emit(End{Construct: link})

	case *ast.RawHTML:
		var buf bytes.Buffer
		for i := 0; i < typed.Segments.Len(); i++ {
			segment := typed.Segments.At(i)
			buf.Write(segment.Value(s.source))
		}
		s.emit(HTML{Value: buf.String()})

	case *extast.TaskCheckBox:
		s.emit(TaskListMarker{Checked: typed.IsChecked})

	case *extast.FootnoteLink:
		s.emit(FootnoteReference{Label: s.footnoteLabel(typed.Index)})

	case *extast.FootnoteBacklink:
		// Rendering artifact of the footnote list; it has no source text.

	default:
		nodeKind := node.Kind().String()
		s.addWarning(
			WarningUnknownNode,
			nodeKind,
			fmt.Sprintf("unsupported markdown node: %s", nodeKind),
		)
		s.walkChildren(node)
	}
}

func (s *state) walkCodeBlock(node ast.Node, construct CodeBlock) {
	s.emit(Start{Construct: construct})
	s.emitLines(node.Lines(), func(value string) Event { return Text{Value: value} })
	s.emit(End{Construct: construct})
}

func (s *state) emitLines(lines *text.Segments, wrap func(string) Event) {
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		s.emit(wrap(string(line.Value(s.source))))
	}
}

func (s *state) codeSpanValue(node *ast.CodeSpan) string {
	var buf bytes.Buffer
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		var value []byte
		switch typed := child.(type) {
		case *ast.Text:
			value = typed.Segment.Value(s.source)
		case *ast.String:
			value = typed.Value
		default:
			continue
		}
		if bytes.HasSuffix(value, []byte("\n")) {
			buf.Write(value[:len(value)-1])
			buf.WriteByte(' ')
		} else {
			buf.Write(value)
		}
	}
	return buf.String()
}

func (s *state) linkKind(node ast.Node) LinkKind {
	if kind, ok := s.linkKinds[node]; ok {
		return kind
	}
	return LinkUnknown
}

// indexFootnotes records the label of every footnote definition by the index
// goldmark assigned to it, since footnote links only carry the index.
func (s *state) indexFootnotes(root ast.Node) {
	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if footnote, ok := node.(*extast.Footnote); ok {
			if s.footnotes == nil {
				s.footnotes = make(map[int]string)
			}
			s.footnotes[footnote.Index] = string(footnote.Ref)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
}

func (s *state) footnoteLabel(index int) string {
	if label, ok := s.footnotes[index]; ok {
		return label
	}
	return strconv.Itoa(index)
}

func convertAlignments(alignments []extast.Alignment) []Alignment {
	converted := make([]Alignment, 0, len(alignments))
	for _, alignment := range alignments {
		switch alignment {
		case extast.AlignLeft:
			converted = append(converted, AlignLeft)
		case extast.AlignRight:
			converted = append(converted, AlignRight)
		case extast.AlignCenter:
			converted = append(converted, AlignCenter)
		default:
			converted = append(converted, AlignNone)
		}
	}
	return converted
}

func decodeText(value []byte) string {
	value = util.UnescapePunctuations(value)
	value = util.ResolveNumericReferences(value)
	value = util.ResolveEntityNames(value)
	return string(value)
}
