package rule

import (
	"fmt"
	"strings"
	"unicode"
)

// Config represents the compiled, read-only rule configuration of a run.
// It is safe for concurrent use once Compile returns.
type Config struct {
	notificationCalls     []CallPattern
	userFacing            map[string]bool
	allow                 *AllowList
	markup                *MarkupRules
	minTemplateLength     int
	checkObjectProperties bool
	translateFunction     string
	ignoreComment         string
	nativeScript          *unicode.RangeTable
}

// Compile validates options and builds the immutable configuration
func (o *Options) Compile() (*Config, error) {
	ret := &Config{
		userFacing:        make(map[string]bool, len(o.UserFacingPropertyNames)),
		translateFunction: o.TranslateFunction,
		ignoreComment:     o.IgnoreComment,
	}
	for _, name := range o.NotificationCallNames {
		pattern, err := ParseCallPattern(name)
		if err != nil {
			return nil, fmt.Errorf("notificationCallNames: %w", err)
		}
		ret.notificationCalls = append(ret.notificationCalls, pattern)
	}
	for _, name := range o.UserFacingPropertyNames {
		if name = strings.TrimSpace(name); name != "" {
			ret.userFacing[name] = true
		}
	}
	allow, err := NewAllowList(o.AllowPatterns)
	if err != nil {
		return nil, fmt.Errorf("allowPatterns: %w", err)
	}
	ret.allow = allow
	ret.markup = newMarkupRules(o.MarkupAttributeRules)
	if o.MinimumStaticTemplateLength != nil {
		if *o.MinimumStaticTemplateLength < 0 {
			return nil, fmt.Errorf("minimumStaticTemplateLength: must not be negative, got %d", *o.MinimumStaticTemplateLength)
		}
		ret.minTemplateLength = *o.MinimumStaticTemplateLength
	}
	ret.checkObjectProperties = o.CheckObjectProperties == nil || *o.CheckObjectProperties
	if ret.translateFunction == "" {
		ret.translateFunction = "t"
	}
	if o.NativeScript != "" {
		script, ok := unicode.Scripts[o.NativeScript]
		if !ok {
			return nil, fmt.Errorf("nativeScript: unknown unicode script %q", o.NativeScript)
		}
		ret.nativeScript = script
	}
	return ret, nil
}

// IsNotificationCall returns true if the dotted callee path matches any configured notification call
func (c *Config) IsNotificationCall(path string) bool {
	for _, pattern := range c.notificationCalls {
		if pattern.Match(path) {
			return true
		}
	}
	return false
}

// IsUserFacingProperty returns true if the property key holds display copy
func (c *Config) IsUserFacingProperty(name string) bool {
	return c.userFacing[name]
}

// IsAllowed delegates to the allow list
func (c *Config) IsAllowed(value string) bool {
	return c.allow.IsAllowed(value)
}

// AllowList returns the compiled allow list
func (c *Config) AllowList() *AllowList {
	return c.allow
}

// Policy resolves the markup policy for an element or component name
func (c *Config) Policy(element string) Policy {
	return c.markup.Resolve(element)
}

// MinimumStaticTemplateLength returns the static length below which interpolated templates are ignored
func (c *Config) MinimumStaticTemplateLength() int {
	return c.minTemplateLength
}

// CheckObjectProperties reports whether free-standing object properties are checked
func (c *Config) CheckObjectProperties() bool {
	return c.checkObjectProperties
}

// TranslateFunction returns the lookup function name used in suggestions
func (c *Config) TranslateFunction() string {
	return c.translateFunction
}

// IgnoreComment returns the inline suppression marker, empty when disabled
func (c *Config) IgnoreComment() string {
	return c.ignoreComment
}

// NativeScript returns the script kept verbatim by key suggestions, nil when none
func (c *Config) NativeScript() *unicode.RangeTable {
	return c.nativeScript
}
