package extract

import (
	"fmt"

	"github.com/rgonek/markdown-events/mdevent"
)

// Normalize maps one parse event to its record.
//
// The event and construct types are closed; a variant without a case here is
// a programming error and panics.
func Normalize(ev mdevent.Event) Record {
	switch typed := ev.(type) {
	case mdevent.Start:
		record := newRecord(TypeStart)
		applyConstruct(&record, typed.Construct)
		return record

	case mdevent.End:
		record := newRecord(TypeEnd)
		applyConstruct(&record, typed.Construct)
		return record

	case mdevent.Text:
		record := newRecord(TypeText)
		record.Content = typed.Value
		return record

	case mdevent.Code:
		record := newRecord(TypeCode)
		record.Content = typed.Value
		return record

	case mdevent.HTML:
		record := newRecord(TypeHTML)
		record.Content = typed.Value
		return record

	case mdevent.FootnoteReference:
		record := newRecord(TypeFootnoteReference)
		record.Content = typed.Label
		return record

	case mdevent.SoftBreak:
		return newRecord(TypeSoftBreak)

	case mdevent.HardBreak:
		return newRecord(TypeHardBreak)

	case mdevent.Rule:
		return newRecord(TypeRule)

	case mdevent.TaskListMarker:
		record := newRecord(TypeTaskListMarker)
		record.Checked = typed.Checked
		return record

	default:
		panic(fmt.Sprintf("extract: unhandled event %T", ev))
	}
}

func applyConstruct(record *Record, construct mdevent.Construct) {
	switch typed := construct.(type) {
	case mdevent.BlockQuote:
		record.Tag = TagBlockQuote

	case mdevent.CodeBlock:
		record.Tag = TagCodeBlock
		switch typed.Kind {
		case mdevent.CodeBlockFenced:
			record.Kind = KindFenced
			record.Language = typed.Info
		default:
			record.Kind = KindIndented
		}

	case mdevent.Emphasis:
		record.Tag = TagEmphasis

	case mdevent.FootnoteDefinition:
		record.Tag = TagFootnoteDefinition
		record.Label = typed.Label

	case mdevent.Heading:
		record.Tag = TagHeading
		record.Level = uint32(typed.Level)

	case mdevent.Image:
		record.Tag = TagImage
		record.URL = typed.Destination
		record.Title = typed.Title
		record.Kind = linkKindName(typed.Kind)

	case mdevent.Item:
		record.Tag = TagItem

	case mdevent.List:
		record.Tag = TagList
		// An unordered list and an ordered list starting at 0 both yield 0.
		if typed.Start != nil {
			record.StartNumber = *typed.Start
		}

	case mdevent.Link:
		record.Tag = TagLink
		record.URL = typed.Destination
		record.Title = typed.Title
		record.Kind = linkKindName(typed.Kind)

	case mdevent.Paragraph:
		record.Tag = TagParagraph

	case mdevent.Strikethrough:
		record.Tag = TagStrikethrough

	case mdevent.Strong:
		record.Tag = TagStrong

	case mdevent.Table:
		record.Tag = TagTable
		alignments := make([]string, 0, len(typed.Alignments))
		for _, alignment := range typed.Alignments {
			alignments = append(alignments, alignment.String())
		}
		record.Alignments = alignments

	case mdevent.TableHead:
		record.Tag = TagTableHead

	case mdevent.TableRow:
		record.Tag = TagTableRow

	case mdevent.TableCell:
		record.Tag = TagTableCell

	default:
		panic(fmt.Sprintf("extract: unhandled construct %T", construct))
	}
}

// linkKindName is total: values outside the known set map to UNKNOWN.
func linkKindName(kind mdevent.LinkKind) string {
	switch kind {
	case mdevent.LinkInline:
		return KindInline
	case mdevent.LinkReference:
		return KindReference
	case mdevent.LinkAutolink:
		return KindAutolink
	case mdevent.LinkEmail:
		return KindEmail
	case mdevent.LinkShortcut:
		return KindShortcut
	case mdevent.LinkCollapsed:
		return KindCollapsed
	default:
		return KindUnknown
	}
}
