package extract

import (
	"fmt"
	"sync"
	"testing"

	"github.com/rgonek/markdown-events/mdevent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t testing.TB, cfg Config) *Extractor {
	t.Helper()
	x, err := New(cfg)
	require.NoError(t, err)
	return x
}

func rec(recordType, tag string) Record {
	r := newRecord(recordType)
	r.Tag = tag
	return r
}

func text(content string) Record {
	r := newRecord(TypeText)
	r.Content = content
	return r
}

// checkRecords verifies structural balance and schema totality.
func checkRecords(records []Record) error {
	var stack []string
	for i, r := range records {
		if r.Alignments == nil {
			return fmt.Errorf("record %d: nil alignments", i)
		}
		if r.Fenced {
			return fmt.Errorf("record %d: fenced set", i)
		}

		allowed := allowedFields(r)
		for _, field := range nonDefaultFields(r) {
			if !allowed[field] {
				return fmt.Errorf("record %d (%s %s): unexpected field %s", i, r.Type, r.Tag, field)
			}
		}

		switch r.Type {
		case TypeStart:
			stack = append(stack, r.Tag)
		case TypeEnd:
			if len(stack) == 0 || stack[len(stack)-1] != r.Tag {
				return fmt.Errorf("record %d: unbalanced END %s", i, r.Tag)
			}
			stack = stack[:len(stack)-1]
		}

		if r.Tag == TagHeading && (r.Level < 1 || r.Level > 6) {
			return fmt.Errorf("record %d: heading level %d", i, r.Level)
		}
		if (r.Tag == TagLink || r.Tag == TagImage) && r.Kind == "" {
			return fmt.Errorf("record %d: empty link kind", i)
		}
	}
	if len(stack) > 0 {
		return fmt.Errorf("unclosed constructs: %v", stack)
	}
	return nil
}

func allowedFields(r Record) map[string]bool {
	allowed := map[string]bool{"type": true}
	switch r.Type {
	case TypeStart, TypeEnd:
		allowed["tag"] = true
		switch r.Tag {
		case TagCodeBlock:
			allowed["kind"] = true
			allowed["language"] = true
		case TagFootnoteDefinition:
			allowed["label"] = true
		case TagHeading:
			allowed["level"] = true
		case TagLink, TagImage:
			allowed["kind"] = true
			allowed["url"] = true
			allowed["title"] = true
		case TagList:
			allowed["start_number"] = true
		case TagTable:
			allowed["alignments"] = true
		}
	case TypeText, TypeCode, TypeHTML, TypeFootnoteReference:
		allowed["content"] = true
	case TypeTaskListMarker:
		allowed["checked"] = true
	}
	return allowed
}

func nonDefaultFields(r Record) []string {
	var fields []string
	add := func(name string, set bool) {
		if set {
			fields = append(fields, name)
		}
	}
	add("type", r.Type != "")
	add("tag", r.Tag != "")
	add("content", r.Content != "")
	add("level", r.Level != 0)
	add("kind", r.Kind != "")
	add("fenced", r.Fenced)
	add("language", r.Language != "")
	add("start_number", r.StartNumber != 0)
	add("label", r.Label != "")
	add("alignments", len(r.Alignments) > 0)
	add("url", r.URL != "")
	add("title", r.Title != "")
	add("checked", r.Checked)
	return fields
}

func TestParseHeading(t *testing.T) {
	heading := rec(TypeStart, TagHeading)
	heading.Level = 1
	end := rec(TypeEnd, TagHeading)
	end.Level = 1

	assert.Equal(t, []Record{heading, text("Hi"), end}, Parse("# Hi"))
}

func TestParseEmphasis(t *testing.T) {
	assert.Equal(t, []Record{
		rec(TypeStart, TagParagraph),
		rec(TypeStart, TagEmphasis),
		text("em"),
		rec(TypeEnd, TagEmphasis),
		rec(TypeEnd, TagParagraph),
	}, Parse("*em*"))
}

func TestParseTaskList(t *testing.T) {
	marker := newRecord(TypeTaskListMarker)
	marker.Checked = true

	assert.Equal(t, []Record{
		rec(TypeStart, TagList),
		rec(TypeStart, TagItem),
		marker,
		text("done"),
		rec(TypeEnd, TagItem),
		rec(TypeEnd, TagList),
	}, Parse("- [x] done"))
}

func TestParseTable(t *testing.T) {
	records := Parse("| a | b |\n|---|---|\n|1|2|")
	require.NoError(t, checkRecords(records))

	var tables []Record
	for _, r := range records {
		if r.Type == TypeStart && r.Tag == TagTable {
			tables = append(tables, r)
		}
	}
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"None", "None"}, tables[0].Alignments)
}

func TestParseOrderedList(t *testing.T) {
	records := Parse("5. five\n6. six")
	require.NotEmpty(t, records)
	assert.Equal(t, TagList, records[0].Tag)
	assert.Equal(t, uint64(5), records[0].StartNumber)
	assert.Equal(t, uint64(5), records[len(records)-1].StartNumber)
}

func TestParseCodeBlock(t *testing.T) {
	start := rec(TypeStart, TagCodeBlock)
	start.Kind = KindFenced
	start.Language = "python"
	end := start
	end.Type = TypeEnd

	assert.Equal(t, []Record{start, text("print(1)\n"), end}, Parse("```python\nprint(1)\n```"))
}

func TestParseLinks(t *testing.T) {
	records := Parse(`[site](https://example.com "Home") <https://go.dev> <me@example.com>`)
	require.NoError(t, checkRecords(records))

	var links []Record
	for _, r := range records {
		if r.Type == TypeStart && r.Tag == TagLink {
			links = append(links, r)
		}
	}
	require.Len(t, links, 3)

	assert.Equal(t, KindInline, links[0].Kind)
	assert.Equal(t, "https://example.com", links[0].URL)
	assert.Equal(t, "Home", links[0].Title)
	assert.Equal(t, KindAutolink, links[1].Kind)
	assert.Equal(t, "https://go.dev", links[1].URL)
	assert.Equal(t, KindEmail, links[2].Kind)
}

func TestParseFootnotes(t *testing.T) {
	records := Parse("Text[^a].\n\n[^a]: Note.")
	require.NoError(t, checkRecords(records))

	ref := newRecord(TypeFootnoteReference)
	ref.Content = "a"
	def := rec(TypeStart, TagFootnoteDefinition)
	def.Label = "a"
	assert.Contains(t, records, ref)
	assert.Contains(t, records, def)
}

func TestParseMixedDocument(t *testing.T) {
	markdown := `# Title

Intro with *em*, **strong**, ~~strike~~, ` + "`code`" + ` and <kbd>raw</kbd>.
Second line\
after hard break.

> 1. ordered
> 2. list

---

| left | center | right |
|:-----|:------:|------:|
| a    | b      | c     |

- [ ] todo
- [x] done

![logo][img]

[img]: /logo.png "Logo"

    indented code
`

	records := Parse(markdown)
	require.NoError(t, checkRecords(records))

	types := make(map[string]bool)
	tags := make(map[string]bool)
	for _, r := range records {
		types[r.Type] = true
		tags[r.Tag] = true
	}

	for _, recordType := range []string{
		TypeStart, TypeEnd, TypeText, TypeCode, TypeHTML,
		TypeSoftBreak, TypeHardBreak, TypeRule, TypeTaskListMarker,
	} {
		assert.True(t, types[recordType], "missing %s", recordType)
	}
	for _, tag := range []string{
		TagHeading, TagParagraph, TagEmphasis, TagStrong, TagStrikethrough,
		TagBlockQuote, TagList, TagItem, TagTable, TagTableHead, TagTableRow,
		TagTableCell, TagImage, TagCodeBlock,
	} {
		assert.True(t, tags[tag], "missing %s", tag)
	}
}

func TestExtractorDialect(t *testing.T) {
	x := newTestExtractor(t, Config{Markdown: mdevent.Config{Dialect: mdevent.DialectCommonMark}})
	result := x.Extract("~~no~~")
	assert.Empty(t, result.Warnings)
	for _, r := range result.Records {
		assert.NotEqual(t, TagStrikethrough, r.Tag)
	}
}

func TestExtractorInvalidConfig(t *testing.T) {
	_, err := New(Config{Markdown: mdevent.Config{Dialect: "wiki"}})
	require.Error(t, err)
	assert.Equal(t, `invalid dialect "wiki"`, err.Error())
}

func TestExtractEmptyInput(t *testing.T) {
	records := Parse("")
	assert.NotNil(t, records)
	assert.Empty(t, records)

	out, err := EncodeJSON(records)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestExtractConcurrentCalls(t *testing.T) {
	x := newTestExtractor(t, Config{})
	inputs := []string{"# A", "*b*", "- [x] c", "| d |\n|---|\n| e |", "[f](/g)"}

	want := make([][]Record, len(inputs))
	for i, input := range inputs {
		want[i] = x.Extract(input).Records
	}

	var wg sync.WaitGroup
	got := make([][]Record, len(inputs)*4)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = x.Extract(inputs[i%len(inputs)]).Records
		}(i)
	}
	wg.Wait()

	for i := range got {
		assert.Equal(t, want[i%len(inputs)], got[i])
	}
}
