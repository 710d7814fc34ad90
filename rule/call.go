package rule

import (
	"fmt"
	"strings"
)

// PatternKind represents a call pattern variant
type PatternKind int

const (
	// Exact matches the dotted call path verbatim
	Exact PatternKind = iota
	// Wildcard matches segment by segment, "*" standing for any single segment
	Wildcard
)

const wildcardSegment = "*"

// CallPattern represents a notification call path matcher, e.g. "message.error" or "toast.*"
type CallPattern struct {
	Kind     PatternKind
	Raw      string
	segments []string
}

// ParseCallPattern validates and parses a dotted call pattern
func ParseCallPattern(raw string) (CallPattern, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return CallPattern{}, fmt.Errorf("empty call pattern")
	}
	segments := strings.Split(raw, ".")
	kind := Exact
	for _, segment := range segments {
		if segment == "" {
			return CallPattern{}, fmt.Errorf("invalid call pattern %q: empty segment", raw)
		}
		if segment == wildcardSegment {
			kind = Wildcard
			continue
		}
		if strings.Contains(segment, wildcardSegment) {
			return CallPattern{}, fmt.Errorf("invalid call pattern %q: wildcard must span a whole segment", raw)
		}
	}
	return CallPattern{Kind: kind, Raw: raw, segments: segments}, nil
}

// Match returns true if the dotted call path matches the pattern
func (p CallPattern) Match(path string) bool {
	if path == "" {
		return false
	}
	if p.Kind == Exact {
		return p.Raw == path
	}
	segments := strings.Split(path, ".")
	if len(segments) != len(p.segments) {
		return false
	}
	for i, segment := range p.segments {
		if segment != wildcardSegment && segment != segments[i] {
			return false
		}
	}
	return true
}

func (p CallPattern) String() string {
	return p.Raw
}
