package checker

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/i18nscan/rule"
	"github.com/viant/i18nscan/syntax"
)

// Classifier decides, per syntactic context, whether a node holds hardcoded text
type Classifier struct {
	config *rule.Config
	keys   *KeySuggester
}

// NewClassifier creates a classifier over a compiled configuration
func NewClassifier(config *rule.Config) *Classifier {
	return &Classifier{config: config, keys: NewKeySuggester(config.NativeScript())}
}

// CheckMarkupText flags literal text children of a markup element
func (c *Classifier) CheckMarkupText(f *syntax.File, element *sitter.Node) []*Finding {
	if syntax.KindOf(element) != syntax.MarkupElement {
		return nil
	}
	name := syntax.ElementName(f, element)
	policy := c.config.Policy(name)
	var ret []*Finding
	for _, child := range syntax.NamedChildren(element) {
		candidate := child
		switch syntax.KindOf(child) {
		case syntax.MarkupText:
		case syntax.ExpressionContainer:
			candidate = syntax.Unwrap(syntax.FirstNamedChild(child))
		default:
			continue
		}
		value, ok := c.markupValue(f, candidate, policy)
		if !ok {
			continue
		}
		key := c.keys.Suggest("", value)
		finding := c.newFinding(f, candidate, &Finding{
			Kind:       MarkupText,
			Value:      value,
			Element:    name,
			Key:        key,
			Message:    fmt.Sprintf("Hardcoded text %q in %s", value, tag(name)),
			Suggestion: "{" + c.lookup(key) + "}",
		})
		ret = appendFinding(ret, finding)
	}
	return ret
}

// CheckMarkupAttributes flags literal values of inspected attributes of a markup element
func (c *Classifier) CheckMarkupAttributes(f *syntax.File, element *sitter.Node) []*Finding {
	name := syntax.ElementName(f, element)
	policy := c.config.Policy(name)
	var ret []*Finding
	for _, attribute := range syntax.Attributes(element) {
		attributeName, value := syntax.Attribute(f, attribute)
		if value == nil || !policy.Checks(attributeName) {
			continue
		}
		if syntax.KindOf(value) == syntax.ExpressionContainer {
			value = syntax.Unwrap(syntax.FirstNamedChild(value))
		}
		text, ok := c.markupValue(f, value, policy)
		if !ok {
			continue
		}
		key := c.keys.Suggest(attributeName, text)
		finding := c.newFinding(f, attribute, &Finding{
			Kind:       MarkupAttribute,
			Value:      text,
			Name:       attributeName,
			Element:    name,
			Key:        key,
			Message:    fmt.Sprintf("Hardcoded attribute %s=%q on %s", attributeName, text, tag(name)),
			Suggestion: attributeName + "={" + c.lookup(key) + "}",
		})
		ret = appendFinding(ret, finding)
	}
	return ret
}

// CheckCall inspects the arguments of a notification call. It returns findings and the
// object properties it inspected, which must not be reported again as free-standing properties.
func (c *Classifier) CheckCall(f *syntax.File, call *sitter.Node) ([]*Finding, []*sitter.Node) {
	if syntax.KindOf(call) != syntax.CallExpression {
		return nil, nil
	}
	path := syntax.CallPath(f, call.ChildByFieldName("function"))
	if !c.config.IsNotificationCall(path) {
		return nil, nil
	}
	arguments := call.ChildByFieldName("arguments")
	if arguments == nil || arguments.Type() != "arguments" {
		return nil, nil
	}
	visit := &callVisit{path: path}
	for _, argument := range syntax.NamedChildren(arguments) {
		c.checkArgument(f, visit, argument)
	}
	return visit.findings, visit.claimed
}

type callVisit struct {
	path     string
	findings []*Finding
	claimed  []*sitter.Node
}

func (c *Classifier) checkArgument(f *syntax.File, visit *callVisit, argument *sitter.Node) {
	argument = syntax.Unwrap(argument)
	switch syntax.KindOf(argument) {
	case syntax.ObjectLiteral:
		c.checkObject(f, visit, argument, 0)
	case syntax.ArrayLiteral:
		for _, element := range syntax.NamedChildren(argument) {
			c.checkArgument(f, visit, element)
		}
	case syntax.SpreadElement:
		c.checkArgument(f, visit, syntax.FirstNamedChild(argument))
	default:
		value, text, ok := c.scriptValue(f, argument)
		if !ok {
			return
		}
		key := c.keys.Suggest(visit.path, text)
		finding := c.newFinding(f, argument, &Finding{
			Kind:       CallArgument,
			Value:      value,
			Name:       visit.path,
			Key:        key,
			Message:    fmt.Sprintf("Hardcoded string %q passed to %s()", value, visit.path),
			Suggestion: visit.path + "(" + c.lookup(key) + ")",
		})
		visit.findings = appendFinding(visit.findings, finding)
	}
}

// checkObject expands an object literal reached from a notification call, one finding per offending property
func (c *Classifier) checkObject(f *syntax.File, visit *callVisit, object *sitter.Node, depth int) {
	for _, child := range syntax.NamedChildren(object) {
		switch syntax.KindOf(child) {
		case syntax.ObjectProperty:
			// claimed pairs are skipped by the free-standing property check
			visit.claimed = append(visit.claimed, child)
			key := syntax.PropertyKey(f, child)
			value := syntax.Unwrap(child.ChildByFieldName("value"))
			switch syntax.KindOf(value) {
			case syntax.ObjectLiteral:
				c.checkObject(f, visit, value, depth+1)
			case syntax.ArrayLiteral:
				// objects in arrays are expanded, other elements are values of key
				for _, element := range syntax.NamedChildren(value) {
					element = syntax.Unwrap(element)
					if syntax.KindOf(element) == syntax.ObjectLiteral {
						c.checkObject(f, visit, element, depth+1)
						continue
					}
					if c.config.IsUserFacingProperty(key) {
						visit.findings = appendFinding(visit.findings, c.checkPropertyValue(f, key, element, propertyKind(depth), visit.path))
					}
				}
			default:
				if c.config.IsUserFacingProperty(key) {
					visit.findings = appendFinding(visit.findings, c.checkPropertyValue(f, key, value, propertyKind(depth), visit.path))
				}
			}
		case syntax.SpreadElement:
			// spread literal properties belong to the enclosing object
			if source := syntax.Unwrap(syntax.FirstNamedChild(child)); syntax.KindOf(source) == syntax.ObjectLiteral {
				c.checkObject(f, visit, source, depth)
			}
		}
	}
}

// CheckProperty flags a free-standing object property holding display copy
func (c *Classifier) CheckProperty(f *syntax.File, pair *sitter.Node) []*Finding {
	if syntax.KindOf(pair) != syntax.ObjectProperty || !c.config.CheckObjectProperties() {
		return nil
	}
	key := syntax.PropertyKey(f, pair)
	if !c.config.IsUserFacingProperty(key) {
		return nil
	}
	kind := ObjectProperty
	if isNested(pair) {
		kind = NestedObjectProperty
	}
	value := syntax.Unwrap(pair.ChildByFieldName("value"))
	if syntax.KindOf(value) != syntax.ArrayLiteral {
		return appendFinding(nil, c.checkPropertyValue(f, key, value, kind, ""))
	}
	var ret []*Finding
	for _, element := range syntax.NamedChildren(value) {
		ret = appendFinding(ret, c.checkPropertyValue(f, key, element, kind, ""))
	}
	return ret
}

func (c *Classifier) checkPropertyValue(f *syntax.File, key string, value *sitter.Node, kind Kind, call string) *Finding {
	display, text, ok := c.scriptValue(f, value)
	if !ok {
		return nil
	}
	message := fmt.Sprintf("Hardcoded %q property %q", key, display)
	if call != "" {
		message += fmt.Sprintf(" in %s() argument", call)
	}
	suggestion := c.keys.Suggest(key, text)
	return c.newFinding(f, value, &Finding{
		Kind:       kind,
		Value:      display,
		Name:       key,
		Key:        suggestion,
		Message:    message,
		Suggestion: key + ": " + c.lookup(suggestion),
	})
}

// markupValue classifies a markup text child or attribute value
func (c *Classifier) markupValue(f *syntax.File, n *sitter.Node, policy rule.Policy) (string, bool) {
	var value string
	switch syntax.KindOf(n) {
	case syntax.MarkupText:
		value = collapse(f.Text(n))
	case syntax.StringLiteral:
		value = syntax.StringValue(f, n)
	case syntax.TemplateLiteral:
		if syntax.HasSubstitution(n) {
			return "", false
		}
		value = DisplayValue(f, n)
	case syntax.NumberLiteral:
		return f.Text(n), !policy.AllowNumbers
	default:
		return "", false
	}
	if strings.TrimSpace(value) == "" || policy.AllowStrings || c.config.IsAllowed(value) {
		return "", false
	}
	return value, true
}

// scriptValue classifies a candidate string in call argument or object property position.
// It returns the display value and the static text keys are derived from.
func (c *Classifier) scriptValue(f *syntax.File, n *sitter.Node) (string, string, bool) {
	n = syntax.Unwrap(n)
	switch syntax.KindOf(n) {
	case syntax.StringLiteral:
		value := syntax.StringValue(f, n)
		return value, value, !c.config.IsAllowed(value)
	case syntax.TemplateLiteral:
		if !syntax.HasSubstitution(n) {
			value := DisplayValue(f, n)
			return value, value, !c.config.IsAllowed(value)
		}
		return c.interpolated(f, n, syntax.TemplateSegments(f, n))
	case syntax.BinaryExpression:
		// only "+" chains with a string operand qualify
		segments, ok := concatenation(f, n)
		if !ok {
			return "", "", false
		}
		return c.interpolated(f, n, segments)
	}
	return "", "", false
}

// interpolated applies the static-length threshold to templates and concatenations
func (c *Classifier) interpolated(f *syntax.File, n *sitter.Node, segments []string) (string, string, bool) {
	if staticLength(segments) < c.config.MinimumStaticTemplateLength() {
		return "", "", false
	}
	static := strings.Join(segments, "")
	if c.config.IsAllowed(static) || c.config.IsAllowed(f.Text(n)) {
		return "", "", false
	}
	return DisplayValue(f, n), static, true
}

func (c *Classifier) lookup(key string) string {
	return c.config.TranslateFunction() + "('" + key + "')"
}

// newFinding positions a finding at n, or returns nil when an ignore comment suppresses it
func (c *Classifier) newFinding(f *syntax.File, n *sitter.Node, finding *Finding) *Finding {
	start, end := n.StartByte(), n.EndByte()
	if syntax.KindOf(n) == syntax.MarkupText {
		start, end = trimmedSpan(f.Source, start, end)
	}
	from, to := f.Position(start), f.Position(end)
	if c.suppressed(f, from.Line) {
		return nil
	}
	finding.Path = f.Path
	finding.Line, finding.Column = from.Line, from.Column
	finding.EndLine, finding.EndColumn = to.Line, to.Column
	return finding
}

func (c *Classifier) suppressed(f *syntax.File, line int) bool {
	marker := c.config.IgnoreComment()
	if marker == "" {
		return false
	}
	return strings.Contains(f.Line(line), marker) || strings.Contains(f.Line(line-1), marker+"-next-line")
}

func trimmedSpan(src []byte, start, end uint32) (uint32, uint32) {
	for start < end {
		r, size := utf8.DecodeRune(src[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		start += uint32(size)
	}
	for end > start {
		r, size := utf8.DecodeLastRune(src[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= uint32(size)
	}
	return start, end
}

// isNested returns true if the property's object is itself a property value, directly or inside an array
func isNested(pair *sitter.Node) bool {
	object := pair.Parent()
	if object == nil {
		return false
	}
	parent := object.Parent()
	for parent != nil && syntax.KindOf(parent) == syntax.Wrapper {
		parent = parent.Parent()
	}
	if parent != nil && syntax.KindOf(parent) == syntax.ArrayLiteral {
		parent = parent.Parent()
	}
	return parent != nil && syntax.KindOf(parent) == syntax.ObjectProperty
}

func tag(name string) string {
	if name == "" {
		return "<>"
	}
	return "<" + name + ">"
}

func appendFinding(findings []*Finding, finding *Finding) []*Finding {
	if finding == nil {
		return findings
	}
	return append(findings, finding)
}

func propertyKind(depth int) Kind {
	if depth == 0 {
		return ObjectProperty
	}
	return NestedObjectProperty
}
