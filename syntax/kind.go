package syntax

import sitter "github.com/smacker/go-tree-sitter"

// Kind represents the closed set of node shapes the checker distinguishes
type Kind int

const (
	Other Kind = iota
	MarkupElement
	MarkupSelfClosing
	MarkupOpening
	MarkupText
	MarkupAttribute
	ExpressionContainer
	CallExpression
	MemberExpression
	SubscriptExpression
	Identifier
	PropertyIdentifier
	This
	ObjectLiteral
	ObjectProperty
	ArrayLiteral
	SpreadElement
	StringLiteral
	TemplateLiteral
	TemplateSubstitution
	NumberLiteral
	BinaryExpression
	Wrapper
	Comment
)

var kinds = map[string]Kind{
	"jsx_element":              MarkupElement,
	"jsx_fragment":             MarkupElement,
	"jsx_self_closing_element": MarkupSelfClosing,
	"jsx_opening_element":      MarkupOpening,
	"jsx_text":                 MarkupText,
	"jsx_attribute":            MarkupAttribute,
	"jsx_expression":           ExpressionContainer,
	"call_expression":          CallExpression,
	"member_expression":        MemberExpression,
	"subscript_expression":     SubscriptExpression,
	"identifier":               Identifier,
	"property_identifier":      PropertyIdentifier,
	"this":                     This,
	"object":                   ObjectLiteral,
	"pair":                     ObjectProperty,
	"array":                    ArrayLiteral,
	"spread_element":           SpreadElement,
	"string":                   StringLiteral,
	"template_string":          TemplateLiteral,
	"template_substitution":    TemplateSubstitution,
	"number":                   NumberLiteral,
	"binary_expression":        BinaryExpression,
	"parenthesized_expression": Wrapper,
	"as_expression":            Wrapper,
	"satisfies_expression":     Wrapper,
	"non_null_expression":      Wrapper,
	"comment":                  Comment,
}

// KindOf classifies a node; unknown node types are Other
func KindOf(n *sitter.Node) Kind {
	if n == nil {
		return Other
	}
	return kinds[n.Type()]
}

var names = map[Kind]string{
	MarkupElement:        "markup element",
	MarkupSelfClosing:    "self-closing markup element",
	MarkupOpening:        "opening tag",
	MarkupText:           "markup text",
	MarkupAttribute:      "markup attribute",
	ExpressionContainer:  "expression container",
	CallExpression:       "call",
	MemberExpression:     "member access",
	SubscriptExpression:  "subscript",
	Identifier:           "identifier",
	PropertyIdentifier:   "property identifier",
	This:                 "this",
	ObjectLiteral:        "object literal",
	ObjectProperty:       "object property",
	ArrayLiteral:         "array literal",
	SpreadElement:        "spread",
	StringLiteral:        "string literal",
	TemplateLiteral:      "template literal",
	TemplateSubstitution: "template substitution",
	NumberLiteral:        "number literal",
	BinaryExpression:     "binary expression",
	Wrapper:              "wrapper",
	Comment:              "comment",
}

func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return "other"
}
