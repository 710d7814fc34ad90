package checker

import (
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/i18nscan/syntax"
)

// NonRepresentable is displayed for values that cannot be rendered statically
const NonRepresentable = "<expression>"

// DisplayValue returns the best-effort displayable string of a node; it never fails
func DisplayValue(f *syntax.File, n *sitter.Node) string {
	n = syntax.Unwrap(n)
	switch syntax.KindOf(n) {
	case syntax.StringLiteral:
		return syntax.StringValue(f, n)
	case syntax.MarkupText:
		return f.Text(n)
	case syntax.TemplateLiteral:
		return strings.Join(syntax.TemplateSegments(f, n), "")
	case syntax.NumberLiteral:
		return f.Text(n)
	default:
		return NonRepresentable
	}
}

// collapse joins whitespace runs the way markup renders text
func collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// concatenation collects the literal operands of a "+" chain; ok is false when
// the expression is not a concatenation containing at least one string literal
func concatenation(f *syntax.File, n *sitter.Node) (segments []string, ok bool) {
	n = syntax.Unwrap(n)
	switch syntax.KindOf(n) {
	case syntax.StringLiteral:
		return []string{syntax.StringValue(f, n)}, true
	case syntax.TemplateLiteral:
		return syntax.TemplateSegments(f, n), true
	case syntax.BinaryExpression:
		operator := n.ChildByFieldName("operator")
		if operator == nil || operator.Type() != "+" {
			return nil, false
		}
		left, leftOK := concatenation(f, n.ChildByFieldName("left"))
		right, rightOK := concatenation(f, n.ChildByFieldName("right"))
		return append(left, right...), leftOK || rightOK
	}
	return nil, false
}

func staticLength(segments []string) int {
	ret := 0
	for _, segment := range segments {
		ret += utf8.RuneCountInString(segment)
	}
	return ret
}
