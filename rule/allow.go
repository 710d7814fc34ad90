package rule

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher decides whether a value matches a single allow pattern
type Matcher interface {
	Match(value string) bool
	String() string
}

type substringMatcher string

func (s substringMatcher) Match(value string) bool {
	return strings.Contains(value, string(s))
}

func (s substringMatcher) String() string {
	return string(s)
}

type expressionMatcher struct {
	expr *regexp.Regexp
}

func (e expressionMatcher) Match(value string) bool {
	return e.expr.MatchString(value)
}

func (e expressionMatcher) String() string {
	return "/" + e.expr.String() + "/"
}

// NewMatcher creates a matcher; a pattern wrapped in slashes is a regular expression,
// anything else is a literal substring
func NewMatcher(pattern string) (Matcher, error) {
	if len(pattern) > 2 && strings.HasPrefix(pattern, "/") && strings.HasSuffix(pattern, "/") {
		expr, err := regexp.Compile(pattern[1 : len(pattern)-1])
		if err != nil {
			return nil, fmt.Errorf("invalid allow pattern %q: %w", pattern, err)
		}
		return expressionMatcher{expr: expr}, nil
	}
	if pattern == "" {
		return nil, fmt.Errorf("empty allow pattern")
	}
	return substringMatcher(pattern), nil
}

// AllowList decides whether a raw string value is exempt from flagging
type AllowList struct {
	matchers []Matcher
}

// NewAllowList compiles patterns in order
func NewAllowList(patterns []string) (*AllowList, error) {
	ret := &AllowList{matchers: make([]Matcher, 0, len(patterns))}
	for _, pattern := range patterns {
		matcher, err := NewMatcher(pattern)
		if err != nil {
			return nil, err
		}
		ret.matchers = append(ret.matchers, matcher)
	}
	return ret, nil
}

// IsAllowed returns true for empty or whitespace-only values, or when the value as given matches any pattern
func (a *AllowList) IsAllowed(value string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	for _, matcher := range a.matchers {
		if matcher.Match(value) {
			return true
		}
	}
	return false
}

// Matchers returns compiled matchers in configuration order
func (a *AllowList) Matchers() []Matcher {
	return a.matchers
}
