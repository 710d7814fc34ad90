package rule

// Default returns the built-in rule options used when no rules file overrides them
func Default() *Options {
	return &Options{
		NotificationCallNames: []string{
			"message.*",
			"Message.*",
			"notification.*",
			"Notification.*",
			"Modal.confirm",
			"Modal.info",
			"Modal.success",
			"Modal.error",
			"Modal.warning",
			"toast",
			"toast.*",
			"alert",
			"window.alert",
			"confirm",
			"window.confirm",
		},
		UserFacingPropertyNames: []string{
			"title",
			"subTitle",
			"description",
			"content",
			"message",
			"label",
			"placeholder",
			"tooltip",
			"text",
			"okText",
			"cancelText",
			"confirmText",
			"emptyText",
			"helperText",
			"errorMessage",
			"successMessage",
		},
		AllowPatterns: []string{
			`/^\s*(t|i18n\.t|\$t|intl\.formatMessage)\(/`,
			`/^\{\{[^{}]*\}\}$/`,
			`/^\{[A-Za-z_$][\w$.]*\}$/`,
			`/^(true|false|null|undefined)$/`,
			`/^-?\d+(\.\d+)?$/`,
			`/^(console\.|process\.env|import\.meta\.env)/`,
			`/^(import|require)\(/`,
			`/^[^\p{L}]*$/`,
			`/^(&[A-Za-z0-9#]+;|\s)+$/`,
			`/^(https?:|mailto:|tel:|#|\.{0,2}/)/`,
			`/^[a-z][A-Za-z0-9]*(\.[A-Za-z0-9_]+)+$/`,
			`/^[a-z][a-z0-9]*(-[a-z0-9]+)+$/`,
		},
		MarkupAttributeRules: map[string]PolicyOptions{
			DefaultPolicyKey: {
				CheckProps:   []string{"title", "placeholder", "alt", "aria-label", "label"},
				AllowStrings: Bool(false),
				AllowNumbers: Bool(true),
			},
			"img":              {CheckProps: []string{"alt", "title"}},
			"code":             {AllowStrings: Bool(true)},
			"pre":              {AllowStrings: Bool(true)},
			"script":           {AllowStrings: Bool(true)},
			"style":            {AllowStrings: Bool(true)},
			"Trans":            {AllowStrings: Bool(true)},
			"FormattedMessage": {CheckProps: []string{}, AllowStrings: Bool(true)},
		},
		MinimumStaticTemplateLength: Int(10),
		CheckObjectProperties:       Bool(true),
		TranslateFunction:           "t",
		IgnoreComment:               "i18n-ignore",
		NativeScript:                "Han",
	}
}
