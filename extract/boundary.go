package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MaxSafeInteger is the largest integer a float64 holds exactly.
const MaxSafeInteger = 1<<53 - 1

// Encoder converts records into values for consumers outside Go. Field names
// and their order follow FieldNames.
type Encoder struct {
	// SafeIntegers rejects start numbers above MaxSafeInteger.
	SafeIntegers bool
	// Indent, when set, pretty-prints JSON output.
	Indent string
}

// JSON encodes records as a JSON array of objects.
func (e Encoder) JSON(records []Record) ([]byte, error) {
	if err := e.check(records); err != nil {
		return nil, err
	}

	records = withAlignments(records)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if e.Indent != "" {
		enc.SetIndent("", e.Indent)
	}
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to marshal events JSON: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// YAML encodes records as a YAML sequence of mappings.
func (e Encoder) YAML(records []Record) ([]byte, error) {
	if err := e.check(records); err != nil {
		return nil, err
	}

	out, err := yaml.Marshal(withAlignments(records))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal events YAML: %w", err)
	}

	return out, nil
}

// Values converts records into generic values keyed by field name.
func (e Encoder) Values(records []Record) ([]map[string]any, error) {
	if err := e.check(records); err != nil {
		return nil, err
	}

	values := make([]map[string]any, 0, len(records))
	for _, record := range records {
		alignments := make([]any, 0, len(record.Alignments))
		for _, alignment := range record.Alignments {
			alignments = append(alignments, alignment)
		}

		values = append(values, map[string]any{
			"type":         record.Type,
			"tag":          record.Tag,
			"content":      record.Content,
			"level":        record.Level,
			"kind":         record.Kind,
			"fenced":       record.Fenced,
			"language":     record.Language,
			"start_number": record.StartNumber,
			"label":        record.Label,
			"alignments":   alignments,
			"url":          record.URL,
			"title":        record.Title,
			"checked":      record.Checked,
		})
	}

	return values, nil
}

func (e Encoder) check(records []Record) error {
	if !e.SafeIntegers {
		return nil
	}
	for i, record := range records {
		if record.StartNumber > MaxSafeInteger {
			return fmt.Errorf("record %d: start_number %d exceeds %d", i, record.StartNumber, uint64(MaxSafeInteger))
		}
	}
	return nil
}

// withAlignments guarantees that alignments encode as an empty list rather
// than null for records built outside Normalize.
func withAlignments(records []Record) []Record {
	for i := range records {
		if records[i].Alignments == nil {
			fixed := make([]Record, len(records))
			copy(fixed, records)
			for j := i; j < len(fixed); j++ {
				if fixed[j].Alignments == nil {
					fixed[j].Alignments = []string{}
				}
			}
			return fixed
		}
	}
	return records
}

// EncodeJSON encodes records as a compact JSON array.
func EncodeJSON(records []Record) ([]byte, error) {
	return Encoder{}.JSON(records)
}

// EncodeYAML encodes records as YAML.
func EncodeYAML(records []Record) ([]byte, error) {
	return Encoder{}.YAML(records)
}

// Values converts records into generic values keyed by field name.
func Values(records []Record) []map[string]any {
	values, err := Encoder{}.Values(records)
	if err != nil {
		panic(fmt.Sprintf("extract: %v", err))
	}
	return values
}
