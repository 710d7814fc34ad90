package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/viant/afs"
)

// Cache holds file contents for the lifetime of a run; each path is read at most once
type Cache struct {
	fs      afs.Service
	mux     sync.Mutex
	entries map[string]*entry
	reads   int64
}

type entry struct {
	once    sync.Once
	content []byte
	lines   []string
	err     error
}

// New creates a cache reading through fs, afs.New() when nil
func New(fs afs.Service) *Cache {
	if fs == nil {
		fs = afs.New()
	}
	return &Cache{fs: fs, entries: map[string]*entry{}}
}

// Content returns the file content, reading it on first access
func (c *Cache) Content(ctx context.Context, path string) ([]byte, error) {
	e := c.load(ctx, path)
	return e.content, e.err
}

// Lines returns the file content split into lines without terminators
func (c *Cache) Lines(ctx context.Context, path string) ([]string, error) {
	e := c.load(ctx, path)
	return e.lines, e.err
}

// Reads returns the number of underlying file reads
func (c *Cache) Reads() int {
	return int(atomic.LoadInt64(&c.reads))
}

func (c *Cache) load(ctx context.Context, path string) *entry {
	key := normalize(path)
	c.mux.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	c.mux.Unlock()
	e.once.Do(func() {
		atomic.AddInt64(&c.reads, 1)
		e.content, e.err = c.fs.DownloadWithURL(ctx, key)
		if e.err != nil {
			e.err = fmt.Errorf("failed to read %s: %w", path, e.err)
			return
		}
		e.lines = Split(e.content)
	})
	return e
}

// Split breaks content into lines, dropping "\n" and "\r\n" terminators
func Split(content []byte) []string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func normalize(path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
