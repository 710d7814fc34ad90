package rule

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Policy represents the resolved markup policy of an element or component
type Policy struct {
	CheckProps   []string
	AllowStrings bool
	AllowNumbers bool
}

// Checks returns true if the attribute is inspected under this policy
func (p Policy) Checks(attribute string) bool {
	for _, candidate := range p.CheckProps {
		if candidate == attribute {
			return true
		}
	}
	return false
}

// MarkupRules holds the default policy plus DOM element and component lookup tables
type MarkupRules struct {
	fallback   Policy
	elements   map[string]Policy
	components map[string]Policy
}

// Resolve returns the policy for an element name: DOM elements consult the element table,
// components consult the component table, both falling back to the default policy
func (m *MarkupRules) Resolve(name string) Policy {
	table := m.components
	if IsDOMElement(name) {
		table = m.elements
	}
	if policy, ok := table[name]; ok {
		return policy
	}
	return m.fallback
}

// Default returns the fallback policy
func (m *MarkupRules) Default() Policy {
	return m.fallback
}

// IsDOMElement returns true for intrinsic element names such as "div" or "my-widget";
// capitalized, dotted and empty (fragment) names are components
func IsDOMElement(name string) bool {
	if name == "" || strings.Contains(name, ".") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsLower(r)
}

func newMarkupRules(options map[string]PolicyOptions) *MarkupRules {
	fallback := Policy{}
	if base, ok := options[DefaultPolicyKey]; ok {
		fallback = inherit(Policy{}, base)
	}
	ret := &MarkupRules{
		fallback:   fallback,
		elements:   map[string]Policy{},
		components: map[string]Policy{},
	}
	for name, policy := range options {
		if name == DefaultPolicyKey {
			continue
		}
		resolved := inherit(fallback, policy)
		if IsDOMElement(name) {
			ret.elements[name] = resolved
		} else {
			ret.components[name] = resolved
		}
	}
	return ret
}

func inherit(base Policy, options PolicyOptions) Policy {
	ret := Policy{
		CheckProps:   base.CheckProps,
		AllowStrings: base.AllowStrings,
		AllowNumbers: base.AllowNumbers,
	}
	if options.CheckProps != nil {
		ret.CheckProps = append([]string{}, options.CheckProps...)
	}
	if options.AllowStrings != nil {
		ret.AllowStrings = *options.AllowStrings
	}
	if options.AllowNumbers != nil {
		ret.AllowNumbers = *options.AllowNumbers
	}
	return ret
}
