package rule

// DefaultPolicyKey is the markupAttributeRules key holding the fallback policy
const DefaultPolicyKey = "default"

// PolicyOptions represents a markup policy as written in a rules file.
// Unset fields inherit from the default policy when compiled.
type PolicyOptions struct {
	CheckProps   []string `yaml:"checkProps,omitempty" toml:"checkProps,omitempty" json:"checkProps,omitempty"`
	AllowStrings *bool    `yaml:"allowStrings,omitempty" toml:"allowStrings,omitempty" json:"allowStrings,omitempty"`
	AllowNumbers *bool    `yaml:"allowNumbers,omitempty" toml:"allowNumbers,omitempty" json:"allowNumbers,omitempty"`
}

// Options represents the caller supplied rule configuration before compilation.
// Every field is independently overridable; nil or empty means "keep the current value".
type Options struct {
	NotificationCallNames       []string                 `yaml:"notificationCallNames,omitempty" toml:"notificationCallNames,omitempty" json:"notificationCallNames,omitempty"`
	UserFacingPropertyNames     []string                 `yaml:"userFacingPropertyNames,omitempty" toml:"userFacingPropertyNames,omitempty" json:"userFacingPropertyNames,omitempty"`
	AllowPatterns               []string                 `yaml:"allowPatterns,omitempty" toml:"allowPatterns,omitempty" json:"allowPatterns,omitempty"`
	MarkupAttributeRules        map[string]PolicyOptions `yaml:"markupAttributeRules,omitempty" toml:"markupAttributeRules,omitempty" json:"markupAttributeRules,omitempty"`
	MinimumStaticTemplateLength *int                     `yaml:"minimumStaticTemplateLength,omitempty" toml:"minimumStaticTemplateLength,omitempty" json:"minimumStaticTemplateLength,omitempty"`
	CheckObjectProperties       *bool                    `yaml:"checkObjectProperties,omitempty" toml:"checkObjectProperties,omitempty" json:"checkObjectProperties,omitempty"`
	TranslateFunction           string                   `yaml:"translateFunction,omitempty" toml:"translateFunction,omitempty" json:"translateFunction,omitempty"`
	IgnoreComment               string                   `yaml:"ignoreComment,omitempty" toml:"ignoreComment,omitempty" json:"ignoreComment,omitempty"`
	NativeScript                string                   `yaml:"nativeScript,omitempty" toml:"nativeScript,omitempty" json:"nativeScript,omitempty"`
}

// Merge returns a copy of o with every option set in override replacing the corresponding value.
// markupAttributeRules merge per key, and within a key per field.
func (o *Options) Merge(override *Options) *Options {
	ret := o.clone()
	if override == nil {
		return ret
	}
	if override.NotificationCallNames != nil {
		ret.NotificationCallNames = append([]string{}, override.NotificationCallNames...)
	}
	if override.UserFacingPropertyNames != nil {
		ret.UserFacingPropertyNames = append([]string{}, override.UserFacingPropertyNames...)
	}
	if override.AllowPatterns != nil {
		ret.AllowPatterns = append([]string{}, override.AllowPatterns...)
	}
	for key, policy := range override.MarkupAttributeRules {
		current := ret.MarkupAttributeRules[key]
		if policy.CheckProps != nil {
			current.CheckProps = append([]string{}, policy.CheckProps...)
		}
		if policy.AllowStrings != nil {
			current.AllowStrings = Bool(*policy.AllowStrings)
		}
		if policy.AllowNumbers != nil {
			current.AllowNumbers = Bool(*policy.AllowNumbers)
		}
		ret.MarkupAttributeRules[key] = current
	}
	if override.MinimumStaticTemplateLength != nil {
		ret.MinimumStaticTemplateLength = Int(*override.MinimumStaticTemplateLength)
	}
	if override.CheckObjectProperties != nil {
		ret.CheckObjectProperties = Bool(*override.CheckObjectProperties)
	}
	if override.TranslateFunction != "" {
		ret.TranslateFunction = override.TranslateFunction
	}
	if override.IgnoreComment != "" {
		ret.IgnoreComment = override.IgnoreComment
	}
	if override.NativeScript != "" {
		ret.NativeScript = override.NativeScript
	}
	return ret
}

func (o *Options) clone() *Options {
	ret := &Options{
		NotificationCallNames:   append([]string(nil), o.NotificationCallNames...),
		UserFacingPropertyNames: append([]string(nil), o.UserFacingPropertyNames...),
		AllowPatterns:           append([]string(nil), o.AllowPatterns...),
		MarkupAttributeRules:    make(map[string]PolicyOptions, len(o.MarkupAttributeRules)),
		TranslateFunction:       o.TranslateFunction,
		IgnoreComment:           o.IgnoreComment,
		NativeScript:            o.NativeScript,
	}
	for key, policy := range o.MarkupAttributeRules {
		policy.CheckProps = append([]string(nil), policy.CheckProps...)
		ret.MarkupAttributeRules[key] = policy
	}
	if o.MinimumStaticTemplateLength != nil {
		ret.MinimumStaticTemplateLength = Int(*o.MinimumStaticTemplateLength)
	}
	if o.CheckObjectProperties != nil {
		ret.CheckObjectProperties = Bool(*o.CheckObjectProperties)
	}
	return ret
}

// Bool returns a pointer to v
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v
func Int(v int) *int { return &v }
