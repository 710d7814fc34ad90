package checker

// Kind represents the syntactic context a finding was detected in
type Kind string

const (
	MarkupText           Kind = "markup-text"
	MarkupAttribute      Kind = "markup-attribute"
	CallArgument         Kind = "call-argument"
	ObjectProperty       Kind = "object-property"
	NestedObjectProperty Kind = "nested-object-property"
)

// Engine groups finding kinds that can be enabled independently
type Engine string

const (
	// Markup covers literal text and attribute values inside markup
	Markup Engine = "markup"
	// Script covers notification call arguments and object properties
	Script Engine = "script"
)

// Engine returns the engine that produces findings of this kind
func (k Kind) Engine() Engine {
	switch k {
	case MarkupText, MarkupAttribute:
		return Markup
	default:
		return Script
	}
}

// Finding represents a single detected instance of hardcoded user-facing text
type Finding struct {
	Path       string `json:"path"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	EndLine    int    `json:"endLine"`
	EndColumn  int    `json:"endColumn"`
	Message    string `json:"message"`
	Kind       Kind   `json:"kind"`
	Value      string `json:"value"`
	Name       string `json:"name,omitempty"`    // originating call, property or attribute name
	Element    string `json:"element,omitempty"` // enclosing markup element for markup findings
	Key        string `json:"key"`
	Suggestion string `json:"suggestion"`
}
