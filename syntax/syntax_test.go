package syntax

import (
	"context"
	"errors"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func find(n *sitter.Node, kind Kind) *sitter.Node {
	if KindOf(n) == kind {
		return n
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if found := find(n.NamedChild(i), kind); found != nil {
			return found
		}
	}
	return nil
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{name: "tsx", filename: "App.tsx"},
		{name: "ts", filename: "api.ts"},
		{name: "jsx", filename: "App.jsx"},
		{name: "js", filename: "index.js"},
		{name: "module js", filename: "index.mjs"},
		{name: "upper case ext", filename: "App.TSX"},
		{name: "python", filename: "main.py", wantErr: true},
		{name: "no ext", filename: "Makefile", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			language, err := Language(tt.filename)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnsupported))
				assert.False(t, Supported(tt.filename))
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, language)
		})
	}
}

func TestParse(t *testing.T) {
	src := "const a = 1;\nconst App = () => <button title=\"Click me\">{t('label')}</button>;\n"
	file, err := Parse(context.Background(), "App.tsx", []byte(src))
	require.NoError(t, err)

	element := find(file.Root, MarkupElement)
	require.NotNil(t, element)
	assert.Equal(t, "button", ElementName(file, element))

	attributes := Attributes(element)
	require.Len(t, attributes, 1)
	name, value := Attribute(file, attributes[0])
	assert.Equal(t, "title", name)
	require.NotNil(t, value)
	assert.Equal(t, StringLiteral, KindOf(value))
	assert.Equal(t, "Click me", StringValue(file, value))
	assert.Equal(t, Position{Line: 2, Column: 32}, file.Start(value))
	assert.Equal(t, "const App = () => <button title=\"Click me\">{t('label')}</button>;", file.Line(2))
	assert.Equal(t, "", file.Line(4))
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse(context.Background(), "broken.tsx", []byte("const x = ;\nfunction ("))
	require.Error(t, err)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "broken.tsx", parseErr.Path)
	assert.GreaterOrEqual(t, parseErr.Line, 1)

	_, err = Parse(context.Background(), "main.py", []byte("print(1)"))
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestPosition_Runes(t *testing.T) {
	src := "const s = '保存';\nconst x = \"é\" + y;\n"
	file, err := Parse(context.Background(), "a.ts", []byte(src))
	require.NoError(t, err)
	binary := find(file.Root, BinaryExpression)
	require.NotNil(t, binary)
	assert.Equal(t, Position{Line: 2, Column: 10}, file.Start(binary))
	assert.Equal(t, Position{Line: 2, Column: 17}, file.End(binary))
}

func TestCallPath(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "identifier", source: "alert('x')", want: "alert"},
		{name: "member", source: "Message.error('x')", want: "Message.error"},
		{name: "deep member", source: "window.app.toast.show('x')", want: "window.app.toast.show"},
		{name: "optional chain", source: "message?.error('x')", want: "message.error"},
		{name: "subscript", source: "toast['error']('x')", want: "toast.error"},
		{name: "this member", source: "this.notify('x')", want: "this.notify"},
		{name: "call result", source: "useToast().error('x')", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := Parse(context.Background(), "a.js", []byte(tt.source))
			require.NoError(t, err)
			call := find(file.Root, CallExpression)
			require.NotNil(t, call)
			assert.Equal(t, tt.want, CallPath(file, call.ChildByFieldName("function")))
		})
	}
}

func TestTemplateSegments(t *testing.T) {
	file, err := Parse(context.Background(), "a.js", []byte("x = `Are you sure you want to delete ${name}?`"))
	require.NoError(t, err)
	template := find(file.Root, TemplateLiteral)
	require.NotNil(t, template)
	assert.True(t, HasSubstitution(template))
	assert.Equal(t, []string{"Are you sure you want to delete ", "?"}, TemplateSegments(file, template))

	file, err = Parse(context.Background(), "a.js", []byte("x = `plain\\ttext`"))
	require.NoError(t, err)
	template = find(file.Root, TemplateLiteral)
	assert.False(t, HasSubstitution(template))
	assert.Equal(t, []string{"plain\ttext"}, TemplateSegments(file, template))
}

func TestPropertyKey(t *testing.T) {
	file, err := Parse(context.Background(), "a.js", []byte(`x = { title: 1, "okText": 2, [k]: 3 }`))
	require.NoError(t, err)
	object := find(file.Root, ObjectLiteral)
	require.NotNil(t, object)
	var keys []string
	for _, child := range NamedChildren(object) {
		keys = append(keys, PropertyKey(file, child))
	}
	assert.Equal(t, []string{"title", "okText", ""}, keys)
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `plain`, want: "plain"},
		{in: `it\'s`, want: "it's"},
		{in: `a\nb`, want: "a\nb"},
		{in: `été`, want: "été"},
		{in: `\u{1F600}`, want: "😀"},
		{in: `\x41`, want: "A"},
		{in: `\q`, want: "q"},
		{in: `\uZZ`, want: `\uZZ`},
		{in: `end\`, want: `end\`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Unescape(tt.in), tt.in)
	}
}

func TestUnwrap(t *testing.T) {
	file, err := Parse(context.Background(), "a.ts", []byte(`x = ("Hello" as string)`))
	require.NoError(t, err)
	wrapper := find(file.Root, Wrapper)
	require.NotNil(t, wrapper)
	assert.Equal(t, StringLiteral, KindOf(Unwrap(wrapper)))
}
