package syntax

import (
	"strconv"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

// NamedChildren returns the named children of a node, skipping comments
func NamedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	var ret []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child == nil || KindOf(child) == Comment {
			continue
		}
		ret = append(ret, child)
	}
	return ret
}

// FirstNamedChild returns the first non-comment named child or nil
func FirstNamedChild(n *sitter.Node) *sitter.Node {
	if children := NamedChildren(n); len(children) > 0 {
		return children[0]
	}
	return nil
}

// Unwrap strips parentheses and type assertion wrappers (as, satisfies, non-null)
func Unwrap(n *sitter.Node) *sitter.Node {
	for n != nil && KindOf(n) == Wrapper {
		n = FirstNamedChild(n)
	}
	return n
}

// OpeningElement returns the node holding the tag name and attributes of a markup element
func OpeningElement(n *sitter.Node) *sitter.Node {
	switch KindOf(n) {
	case MarkupSelfClosing, MarkupOpening:
		return n
	case MarkupElement:
		if open := n.ChildByFieldName("open_tag"); open != nil {
			return open
		}
		for _, child := range NamedChildren(n) {
			if KindOf(child) == MarkupOpening {
				return child
			}
		}
	}
	return nil
}

// ElementName returns the tag name of a markup element, empty for fragments
func ElementName(f *File, n *sitter.Node) string {
	open := OpeningElement(n)
	if open == nil {
		return ""
	}
	return f.Text(open.ChildByFieldName("name"))
}

// Attributes returns the attribute nodes of a markup element
func Attributes(n *sitter.Node) []*sitter.Node {
	var ret []*sitter.Node
	for _, child := range NamedChildren(OpeningElement(n)) {
		if KindOf(child) == MarkupAttribute {
			ret = append(ret, child)
		}
	}
	return ret
}

// Attribute splits a markup attribute into its name and optional value
func Attribute(f *File, attr *sitter.Node) (string, *sitter.Node) {
	children := NamedChildren(attr)
	if len(children) == 0 {
		return "", nil
	}
	name := f.Text(children[0])
	if len(children) < 2 {
		return name, nil
	}
	return name, children[1]
}

// CallPath reconstructs the dotted path of a callee, e.g. "Message.error";
// it returns empty string when the callee is not a plain member chain
func CallPath(f *File, n *sitter.Node) string {
	n = Unwrap(n)
	switch KindOf(n) {
	case Identifier, PropertyIdentifier, This:
		return f.Text(n)
	case MemberExpression:
		object := CallPath(f, n.ChildByFieldName("object"))
		property := n.ChildByFieldName("property")
		if object == "" || property == nil {
			return ""
		}
		return object + "." + f.Text(property)
	case SubscriptExpression:
		object := CallPath(f, n.ChildByFieldName("object"))
		index := Unwrap(n.ChildByFieldName("index"))
		if object == "" || KindOf(index) != StringLiteral {
			return ""
		}
		return object + "." + StringValue(f, index)
	}
	return ""
}

// PropertyKey returns the static key of an object property, empty when computed
func PropertyKey(f *File, pair *sitter.Node) string {
	key := pair.ChildByFieldName("key")
	switch KindOf(key) {
	case PropertyIdentifier, Identifier:
		return f.Text(key)
	case StringLiteral:
		return StringValue(f, key)
	case NumberLiteral:
		return f.Text(key)
	}
	return ""
}

// StringValue returns the decoded value of a string literal; markup attribute strings are taken verbatim
func StringValue(f *File, n *sitter.Node) string {
	raw := f.Text(n)
	if len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}
	if parent := n.Parent(); parent != nil && KindOf(parent) == MarkupAttribute {
		return raw
	}
	return Unescape(raw)
}

// HasSubstitution returns true if a template literal interpolates expressions
func HasSubstitution(n *sitter.Node) bool {
	for _, child := range NamedChildren(n) {
		if KindOf(child) == TemplateSubstitution {
			return true
		}
	}
	return false
}

// TemplateSegments returns the decoded static segments of a template literal, in order
func TemplateSegments(f *File, n *sitter.Node) []string {
	start, end := n.StartByte()+1, n.EndByte()-1
	if end < start {
		return nil
	}
	var ret []string
	cursor := start
	for _, child := range NamedChildren(n) {
		if KindOf(child) != TemplateSubstitution {
			continue
		}
		ret = append(ret, Unescape(string(f.Source[cursor:child.StartByte()])))
		cursor = child.EndByte()
	}
	return append(ret, Unescape(string(f.Source[cursor:end])))
}

var simpleEscapes = map[byte]string{
	'n': "\n", 't': "\t", 'r': "\r", 'b': "\b", 'f': "\f", 'v': "\v", '0': "\x00",
	'\'': "'", '"': "\"", '`': "`", '\\': "\\", '$': "$",
}

// Unescape decodes JavaScript escape sequences; malformed sequences are kept verbatim
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var builder strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			builder.WriteByte(s[i])
			continue
		}
		next := s[i+1]
		if replacement, ok := simpleEscapes[next]; ok {
			builder.WriteString(replacement)
			i++
			continue
		}
		switch next {
		case '\n':
			i++
		case 'x':
			if r, ok := hexRune(s, i+2, i+4); ok {
				builder.WriteRune(r)
				i += 3
				continue
			}
			builder.WriteByte(s[i])
		case 'u':
			if i+2 < len(s) && s[i+2] == '{' {
				if closing := strings.IndexByte(s[i+3:], '}'); closing > 0 {
					if r, ok := hexRune(s, i+3, i+3+closing); ok {
						builder.WriteRune(r)
						i += 3 + closing
						continue
					}
				}
			} else if r, ok := hexRune(s, i+2, i+6); ok {
				builder.WriteRune(r)
				i += 5
				continue
			}
			builder.WriteByte(s[i])
		default:
			builder.WriteByte(next)
			i++
		}
	}
	return builder.String()
}

func hexRune(s string, start, end int) (rune, bool) {
	if end > len(s) || start >= end {
		return 0, false
	}
	value, err := strconv.ParseUint(s[start:end], 16, 32)
	if err != nil || !utf8.ValidRune(rune(value)) {
		return 0, false
	}
	return rune(value), true
}
