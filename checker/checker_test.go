package checker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/i18nscan/rule"
	"github.com/viant/i18nscan/syntax"
)

func check(t *testing.T, filename, src string, override *rule.Options, engines ...Engines) []*Finding {
	t.Helper()
	config, err := rule.Default().Merge(override).Compile()
	require.NoError(t, err)
	file, err := syntax.Parse(context.Background(), filename, []byte(src))
	require.NoError(t, err)
	selected := AllEngines
	if len(engines) > 0 {
		selected = engines[0]
	}
	return NewWalker(config, selected).Walk(file)
}

func values(findings []*Finding) []string {
	var ret []string
	for _, finding := range findings {
		ret = append(ret, finding.Value)
	}
	return ret
}

func TestWalker_MarkupAttribute(t *testing.T) {
	override := &rule.Options{MarkupAttributeRules: map[string]rule.PolicyOptions{
		rule.DefaultPolicyKey: {CheckProps: []string{"title"}},
	}}
	findings := check(t, "Button.tsx", `const A = () => <button title="Click me">{t('label')}</button>;`, override)
	require.Len(t, findings, 1)
	finding := findings[0]
	assert.Equal(t, MarkupAttribute, finding.Kind)
	assert.Equal(t, "Button.tsx", finding.Path)
	assert.Equal(t, 1, finding.Line)
	assert.Equal(t, 24, finding.Column)
	assert.Equal(t, "Click me", finding.Value)
	assert.Equal(t, "title", finding.Name)
	assert.Equal(t, "button", finding.Element)
	assert.Equal(t, "title.clickMe", finding.Key)
	assert.Equal(t, "title={t('title.clickMe')}", finding.Suggestion)
}

func TestWalker_MarkupAttributePolicies(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		override *rule.Options
		want     []string
	}{
		{
			name:   "self closing with expression container",
			source: `const A = () => <img alt={"Logo image"} src="logo.png" />;`,
			want:   []string{"Logo image"},
		},
		{
			name:   "interpolated template attribute",
			source: "const A = () => <input placeholder={`Search ${scope}`} />;",
		},
		{
			name:   "unchecked attribute",
			source: `const A = () => <div className="Big Title" />;`,
		},
		{
			name:   "component default policy",
			source: `const A = () => <Button title="Save changes" />;`,
			want:   []string{"Save changes"},
		},
		{
			name:   "component override",
			source: `const A = () => <Button title="Save changes" />;`,
			override: &rule.Options{MarkupAttributeRules: map[string]rule.PolicyOptions{
				"Button": {CheckProps: []string{}},
			}},
		},
		{
			name:   "element override",
			source: `const A = () => <input placeholder="Your name" title="Name field" />;`,
			override: &rule.Options{MarkupAttributeRules: map[string]rule.PolicyOptions{
				"input": {CheckProps: []string{"placeholder"}},
			}},
			want: []string{"Your name"},
		},
		{
			name:   "allowed value",
			source: `const A = () => <a title={t('home')} aria-label="home-link">{t('home')}</a>;`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := check(t, "A.tsx", tt.source, tt.override)
			assert.Equal(t, tt.want, values(findings))
		})
	}
}

func TestWalker_MarkupText(t *testing.T) {
	src := `function Page({ name }) {
  return (
    <div>
      Welcome back
      <p>{"Quoted text"}</p>
      <span>{` + "`Static template`" + `}</span>
      <span>{` + "`Hi ${name}`" + `}</span>
      <b>{42}</b>
      <code>const x = 1</code>
      <Trans>Keep this</Trans>
      <i>!</i>
      <em>{t('done')}</em>
    </div>
  );
}
`
	findings := check(t, "Page.jsx", src, nil)
	require.Len(t, findings, 3)
	assert.Equal(t, []string{"Welcome back", "Quoted text", "Static template"}, values(findings))
	assert.Equal(t, 4, findings[0].Line)
	assert.Equal(t, 6, findings[0].Column)
	assert.Equal(t, "div", findings[0].Element)
	assert.Equal(t, MarkupText, findings[0].Kind)
	assert.Equal(t, "{t('common.welcomeBack')}", findings[0].Suggestion)

	findings = check(t, "Page.jsx", src, &rule.Options{MarkupAttributeRules: map[string]rule.PolicyOptions{
		"b": {AllowNumbers: rule.Bool(false)},
	}})
	assert.Equal(t, []string{"Welcome back", "Quoted text", "Static template", "42"}, values(findings))
}

func TestWalker_NotificationCall(t *testing.T) {
	findings := check(t, "api.ts", `Message.error("Network error")`, nil)
	require.Len(t, findings, 1)
	finding := findings[0]
	assert.Equal(t, CallArgument, finding.Kind)
	assert.Equal(t, "Message.error", finding.Name)
	assert.Equal(t, 1, finding.Line)
	assert.Equal(t, 14, finding.Column)
	assert.Equal(t, "error.networkError", finding.Key)
	assert.Equal(t, "Message.error(t('error.networkError'))", finding.Suggestion)
}

func TestWalker_NotificationCallArguments(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		want      []string
		wantKinds []Kind
	}{
		{
			name:      "object argument one finding per property",
			source:    `notification.open({ title: "Error", description: t('d') })`,
			want:      []string{"Error"},
			wantKinds: []Kind{ObjectProperty},
		},
		{
			name:   "short interpolated template",
			source: "message.warning(`Hello ${name}`)",
		},
		{
			name:      "long interpolated template",
			source:    "message.info(`Are you sure you want to delete ${name}?`)",
			want:      []string{"Are you sure you want to delete ?"},
			wantKinds: []Kind{CallArgument},
		},
		{
			name:      "template property",
			source:    "Modal.confirm({ content: `Are you sure you want to delete ${name}?` })",
			want:      []string{"Are you sure you want to delete ?"},
			wantKinds: []Kind{ObjectProperty},
		},
		{
			name:      "nested and spread properties",
			source:    `Modal.confirm({ title: "Delete", okButtonProps: { title: "Confirm deletion" }, ...{ content: "Spread text" } })`,
			want:      []string{"Delete", "Confirm deletion", "Spread text"},
			wantKinds: []Kind{ObjectProperty, NestedObjectProperty, ObjectProperty},
		},
		{
			name:      "array argument",
			source:    `toast.error(["First problem", "Second problem"])`,
			want:      []string{"First problem", "Second problem"},
			wantKinds: []Kind{CallArgument, CallArgument},
		},
		{
			name:      "spread array argument",
			source:    `toast(...["Spread problem"])`,
			want:      []string{"Spread problem"},
			wantKinds: []Kind{CallArgument},
		},
		{
			name:      "long concatenation",
			source:    `message.error("Failed to save: " + err.message)`,
			want:      []string{NonRepresentable},
			wantKinds: []Kind{CallArgument},
		},
		{
			name:   "short concatenation",
			source: `message.error("Err: " + e)`,
		},
		{
			name:   "numeric addition",
			source: `alert(count + 1)`,
		},
		{
			name:   "localized and dynamic arguments",
			source: `message.success(t('saved')); message.error(err.message); message.info(` + "`${a}`" + `)`,
		},
		{
			name:   "not a notification call",
			source: `console.log("Hello world"); format("Some text")`,
		},
		{
			name:      "array of values in property",
			source:    `notification.warning({ description: ["Line one", t('x'), "Line two"] })`,
			want:      []string{"Line one", "Line two"},
			wantKinds: []Kind{ObjectProperty, ObjectProperty},
		},
		{
			name:      "objects inside array property",
			source:    `notification.info({ actions: [{ label: "Undo action" }] })`,
			want:      []string{"Undo action"},
			wantKinds: []Kind{NestedObjectProperty},
		},
		{
			name:      "parenthesized argument",
			source:    `alert(("Plain alert text"))`,
			want:      []string{"Plain alert text"},
			wantKinds: []Kind{CallArgument},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := check(t, "api.js", tt.source, nil)
			assert.Equal(t, tt.want, values(findings))
			var kinds []Kind
			for _, finding := range findings {
				kinds = append(kinds, finding.Kind)
			}
			assert.Equal(t, tt.wantKinds, kinds)
		})
	}
}

func TestWalker_ConcatenationKeys(t *testing.T) {
	tests := []struct {
		name           string
		source         string
		wantKey        string
		wantSuggestion string
	}{
		{
			name:           "call argument",
			source:         `toast("Failed to save the document: " + err)`,
			wantKey:        "toast.failedToSaveTheDocument",
			wantSuggestion: "toast(t('toast.failedToSaveTheDocument'))",
		},
		{
			name:           "object property",
			source:         `notification.open({ description: "Unable to reach the server " + host })`,
			wantKey:        "description.unableToReachTheServer",
			wantSuggestion: "description: t('description.unableToReachTheServer')",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := check(t, "api.js", tt.source, nil)
			require.Len(t, findings, 1)
			assert.Equal(t, NonRepresentable, findings[0].Value)
			assert.Equal(t, tt.wantKey, findings[0].Key)
			assert.Equal(t, tt.wantSuggestion, findings[0].Suggestion)
		})
	}
}

func TestWalker_FreeStandingProperties(t *testing.T) {
	src := `const columns = [
  { title: "Name", dataIndex: "name" },
  { title: t('age') },
];
const config = { page: { title: "Nested title" } };
`
	findings := check(t, "columns.ts", src, nil)
	require.Len(t, findings, 2)
	assert.Equal(t, "Name", findings[0].Value)
	assert.Equal(t, ObjectProperty, findings[0].Kind)
	assert.Equal(t, "title: t('title.name')", findings[0].Suggestion)
	assert.Equal(t, "Nested title", findings[1].Value)
	assert.Equal(t, NestedObjectProperty, findings[1].Kind)

	findings = check(t, "columns.ts", src, &rule.Options{CheckObjectProperties: rule.Bool(false)})
	assert.Empty(t, findings)
}

func TestWalker_IgnoreComments(t *testing.T) {
	src := `// i18n-ignore-next-line
message.error("Ignored one");
message.error("Ignored two"); // i18n-ignore
message.error("Reported");
`
	findings := check(t, "a.js", src, nil)
	assert.Equal(t, []string{"Reported"}, values(findings))
	assert.Equal(t, 4, findings[0].Line)
}

func TestWalker_MarkupInsideCallArgument(t *testing.T) {
	findings := check(t, "a.jsx", `Modal.confirm({ content: <div>Inner text</div> })`, nil)
	require.Len(t, findings, 1)
	assert.Equal(t, MarkupText, findings[0].Kind)
	assert.Equal(t, "Inner text", findings[0].Value)
}

func TestWalker_Engines(t *testing.T) {
	src := `const A = () => { message.error("Network error"); return <h1>Hello there</h1>; };`
	assert.Equal(t, []string{"Network error", "Hello there"}, values(check(t, "a.jsx", src, nil)))
	assert.Equal(t, []string{"Hello there"}, values(check(t, "a.jsx", src, nil, Engines{Markup: true})))
	assert.Equal(t, []string{"Network error"}, values(check(t, "a.jsx", src, nil, Engines{Script: true})))
}

func TestWalker_NativeScript(t *testing.T) {
	findings := check(t, "a.js", `message.error("保存失败")`, nil)
	require.Len(t, findings, 1)
	assert.Equal(t, "error.保存失败", findings[0].Key)
}

func TestSuggestKey(t *testing.T) {
	tests := []struct {
		name    string
		context string
		value   string
		want    string
	}{
		{name: "call context", context: "message.error", value: "Save failed", want: "error.saveFailed"},
		{name: "property context", context: "title", value: "Hello World!", want: "title.helloWorld"},
		{name: "accent folding", context: "", value: "Café au lait", want: "common.cafeAuLait"},
		{name: "native tokens", context: "unknownThing", value: "保存 失败", want: "common.保存失败"},
		{name: "button prefix", context: "okText", value: "OK", want: "button.ok"},
		{name: "empty body", context: "x", value: "!!!", want: "common.text"},
		{name: "apostrophe", context: "toast", value: "Don't save", want: "toast.dontSave"},
		{name: "multiline", context: "Modal.confirm", value: "Are you\n  sure?", want: "confirm.areYouSure"},
		{name: "rest of token kept", context: "label", value: "save PDF file", want: "label.savePDFFile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestKey(tt.context, tt.value)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, SuggestKey(tt.context, tt.value))
		})
	}
	assert.Equal(t, "common.file", NewKeySuggester(nil).Suggest("", "保存 file"))
}

func TestContextPrefix(t *testing.T) {
	assert.Equal(t, "confirm", ContextPrefix("Modal.confirm"))
	assert.Equal(t, "a11y", ContextPrefix("aria-label"))
	assert.Equal(t, "error", ContextPrefix("Message.error"))
	assert.Equal(t, "toast", ContextPrefix("toast"))
	assert.Equal(t, DefaultContextPrefix, ContextPrefix("nothing"))
	assert.Equal(t, DefaultContextPrefix, ContextPrefix(""))
}

func TestKind_Engine(t *testing.T) {
	assert.Equal(t, Markup, MarkupText.Engine())
	assert.Equal(t, Markup, MarkupAttribute.Engine())
	assert.Equal(t, Script, CallArgument.Engine())
	assert.Equal(t, Script, NestedObjectProperty.Engine())
	assert.True(t, Engines{Script: true}.Enabled(Script))
	assert.False(t, Engines{Script: true}.Enabled(Markup))
}
