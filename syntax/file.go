package syntax

import (
	"context"
	"fmt"
	"sort"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

// Position represents a source location; Line is 1-based, Column is a 0-based rune offset
type Position struct {
	Line   int
	Column int
}

// ParseError represents a syntax error reported by the parser
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
}

// File represents a parsed source file
type File struct {
	Path       string
	Source     []byte
	Root       *sitter.Node
	lineStarts []int
}

// Parse parses src with the grammar matching path; a tree containing error nodes yields a *ParseError
func Parse(ctx context.Context, path string, src []byte) (*File, error) {
	language, err := Language(path)
	if err != nil {
		return nil, err
	}
	parser := sitter.NewParser()
	parser.SetLanguage(language)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	ret := &File{Path: path, Source: src, Root: tree.RootNode(), lineStarts: lineStarts(src)}
	if ret.Root.HasError() {
		return nil, ret.syntaxError()
	}
	return ret, nil
}

func (f *File) syntaxError() *ParseError {
	node := firstError(f.Root)
	if node == nil {
		node = f.Root
	}
	pos := f.Position(node.StartByte())
	message := "unexpected " + quote(f.Text(node))
	if node.IsMissing() {
		message = "missing " + node.Type()
	}
	return &ParseError{Path: f.Path, Line: pos.Line, Column: pos.Column, Message: message}
}

func quote(text string) string {
	if utf8.RuneCountInString(text) > 20 {
		runes := []rune(text)
		text = string(runes[:20]) + "..."
	}
	return fmt.Sprintf("%q", text)
}

// firstError returns the first ERROR or MISSING node in document order
func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !(child.HasError() || child.IsMissing()) {
			continue
		}
		if found := firstError(child); found != nil {
			return found
		}
	}
	return nil
}

// Text returns the source text of a node
func (f *File) Text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(f.Source)
}

// Position maps a byte offset to a line and rune column
func (f *File) Position(offset uint32) Position {
	off := int(offset)
	if off > len(f.Source) {
		off = len(f.Source)
	}
	index := sort.Search(len(f.lineStarts), func(i int) bool { return f.lineStarts[i] > off }) - 1
	if index < 0 {
		index = 0
	}
	start := f.lineStarts[index]
	return Position{Line: index + 1, Column: utf8.RuneCount(f.Source[start:off])}
}

// Start returns the position of a node's first byte
func (f *File) Start(n *sitter.Node) Position {
	return f.Position(n.StartByte())
}

// End returns the position just past a node's last byte
func (f *File) End(n *sitter.Node) Position {
	return f.Position(n.EndByte())
}

// Line returns the text of a 1-based line without its terminator
func (f *File) Line(line int) string {
	if line < 1 || line > len(f.lineStarts) {
		return ""
	}
	start := f.lineStarts[line-1]
	end := len(f.Source)
	if line < len(f.lineStarts) {
		end = f.lineStarts[line] - 1
	}
	if end > start && f.Source[end-1] == '\r' {
		end--
	}
	return string(f.Source[start:end])
}

func lineStarts(src []byte) []int {
	ret := []int{0}
	for i, b := range src {
		if b == '\n' {
			ret = append(ret, i+1)
		}
	}
	return ret
}
