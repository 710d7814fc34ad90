// Package discovery resolves include and exclude glob patterns into source files
package discovery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/i18nscan/syntax"
)

// ErrInvalidPattern is returned for malformed glob patterns
var ErrInvalidPattern = errors.New("invalid pattern")

// DefaultExcludes are always applied: tests, stories, mocks, dependencies, build output and declarations
var DefaultExcludes = []string{
	"**/*.test.*",
	"**/*.spec.*",
	"**/*.stories.*",
	"**/__tests__/**",
	"**/__mocks__/**",
	"**/node_modules/**",
	"**/dist/**",
	"**/build/**",
	"**/coverage/**",
	"**/.next/**",
	"**/*.d.ts",
}

// Finder expands patterns over the file system
type Finder struct {
	fs afs.Service
}

// New creates a finder, using afs.New() when fs is nil
func New(fs afs.Service) *Finder {
	if fs == nil {
		fs = afs.New()
	}
	return &Finder{fs: fs}
}

// Find returns supported source files matched by the include patterns and by none of the
// "!"-prefixed or default exclude patterns, ordered per include pattern then lexically, without duplicates
func (f *Finder) Find(ctx context.Context, patterns []string) ([]string, error) {
	includes, excludes, err := split(patterns)
	if err != nil {
		return nil, err
	}
	var ret []string
	seen := map[string]bool{}
	for _, include := range includes {
		matched, err := f.expand(ctx, include, excludes)
		if err != nil {
			return nil, err
		}
		sort.Strings(matched)
		for _, candidate := range matched {
			if seen[candidate] {
				continue
			}
			seen[candidate] = true
			ret = append(ret, filepath.FromSlash(candidate))
		}
	}
	return ret, nil
}

func split(patterns []string) (includes []string, excludes []string, err error) {
	for _, pattern := range patterns {
		exclude := strings.HasPrefix(pattern, "!")
		pattern = normalize(strings.TrimPrefix(pattern, "!"))
		if pattern == "" || !doublestar.ValidatePattern(pattern) {
			return nil, nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
		}
		if exclude {
			excludes = append(excludes, pattern)
			continue
		}
		includes = append(includes, pattern)
	}
	return includes, append(excludes, DefaultExcludes...), nil
}

func normalize(pattern string) string {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return ""
	}
	return path.Clean(filepath.ToSlash(pattern))
}

func (f *Finder) expand(ctx context.Context, include string, excludes []string) ([]string, error) {
	if !strings.ContainsAny(include, "*?[{") {
		if object, err := f.fs.Object(ctx, include); err == nil && !object.IsDir() {
			if !syntax.Supported(include) || excluded(include, excludes) {
				return nil, nil
			}
			return []string{include}, nil
		}
	}
	base, _ := doublestar.SplitPattern(include)
	location, err := filepath.Abs(filepath.FromSlash(base))
	if err != nil {
		return nil, err
	}
	ok, err := f.fs.Exists(ctx, location)
	if err != nil || !ok {
		return nil, fmt.Errorf("failed to read %s: base directory not found", base)
	}
	var ret []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		candidate := path.Join(base, parent, info.Name())
		if info.IsDir() {
			// a placeholder child lets directory-suffix patterns such as "**/dist/**" prune the walk
			return !excluded(candidate+"/\x00", excludes), nil
		}
		if !syntax.Supported(candidate) || excluded(candidate, excludes) {
			return true, nil
		}
		if matched, _ := doublestar.Match(include, candidate); matched {
			ret = append(ret, candidate)
		}
		return true, nil
	}
	if err = f.fs.Walk(ctx, location, visitor); err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", base, err)
	}
	return ret, nil
}

func excluded(candidate string, excludes []string) bool {
	for _, exclude := range excludes {
		if matched, _ := doublestar.Match(exclude, candidate); matched {
			return true
		}
	}
	return false
}
