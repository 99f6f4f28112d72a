package extract

import (
	"fmt"

	"github.com/rgonek/markdown-events/mdevent"
)

// Config configures extraction.
type Config struct {
	Markdown mdevent.Config `json:"markdown,omitempty"`
	// SafeIntegers makes the boundary encoders reject start numbers that a
	// float64 cannot hold exactly (JavaScript hosts).
	SafeIntegers bool `json:"safeIntegers,omitempty"`
}

// Result holds the output of an extraction.
type Result struct {
	Records  []Record          `json:"records"`
	Warnings []mdevent.Warning `json:"warnings,omitempty"`
}

// Extractor turns Markdown documents into Extract Records.
type Extractor struct {
	config Config
	engine *mdevent.Engine
}

// New creates a new Extractor with the given config.
func New(config Config) (*Extractor, error) {
	engine, err := mdevent.New(config.Markdown)
	if err != nil {
		return nil, err
	}

	cfg := config
	cfg.Markdown = engine.Config()

	return &Extractor{
		config: cfg,
		engine: engine,
	}, nil
}

// Extract walks the whole document once and returns one record per event, in
// emission order.
func (x *Extractor) Extract(markdown string) Result {
	records := make([]Record, 0, 16)
	warnings := x.engine.Walk(markdown, func(ev mdevent.Event) bool {
		records = append(records, Normalize(ev))
		return true
	})

	return Result{
		Records:  records,
		Warnings: warnings,
	}
}

// ExtractJSON extracts markdown and encodes the records as a JSON array.
func (x *Extractor) ExtractJSON(markdown string) ([]byte, error) {
	return x.Encoder().JSON(x.Extract(markdown).Records)
}

// Encoder returns the boundary encoder matching the extractor config.
func (x *Extractor) Encoder() Encoder {
	return Encoder{SafeIntegers: x.config.SafeIntegers}
}

var defaultExtractor = mustNew(Config{})

func mustNew(config Config) *Extractor {
	x, err := New(config)
	if err != nil {
		panic(fmt.Sprintf("extract: invalid default config: %v", err))
	}
	return x
}

// Parse returns the records of markdown using the default dialect.
func Parse(markdown string) []Record {
	return defaultExtractor.Extract(markdown).Records
}
