package syntax

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// ErrUnsupported is returned for files without a known grammar
var ErrUnsupported = errors.New("unsupported file type")

// Extensions lists the file extensions the parser handles
var Extensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".mts", ".cts"}

// Language returns the tree-sitter grammar for a file name
func Language(filename string) (*sitter.Language, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".tsx":
		return tsx.GetLanguage(), nil
	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage(), nil
	case ".js", ".jsx", ".mjs", ".cjs":
		return javascript.GetLanguage(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// Supported returns true if filename has a known grammar
func Supported(filename string) bool {
	_, err := Language(filename)
	return err == nil
}
