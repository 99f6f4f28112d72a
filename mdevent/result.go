package mdevent

// WarningType categorizes engine warnings.
type WarningType string

const (
	WarningUnknownNode WarningType = "unknown_node"
)

// Warning represents a non-fatal issue encountered while walking a document.
type Warning struct {
	Type     WarningType `json:"type" yaml:"type"`
	NodeType string      `json:"nodeType,omitempty" yaml:"nodeType,omitempty"`
	Message  string      `json:"message" yaml:"message"`
}

// Result holds the events of one document.
type Result struct {
	Events   []Event   `json:"-"`
	Warnings []Warning `json:"warnings,omitempty"`
}
