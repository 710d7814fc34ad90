package rule

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// DefaultFiles lists rules file names looked up in the project root
var DefaultFiles = []string{".i18nscan.yaml", ".i18nscan.yml", ".i18nscan.json", ".i18nscan.toml"}

// Decode parses rules file content; the format is chosen by the file extension
func Decode(name string, data []byte) (*Options, error) {
	ret := &Options{}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		if err := toml.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", name, err)
		}
	default: // yaml is a superset of json
		if err := yaml.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", name, err)
		}
	}
	return ret, nil
}

// Load reads a rules file and merges it over the defaults
func Load(ctx context.Context, location string) (*Options, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", location, err)
	}
	override, err := Decode(location, data)
	if err != nil {
		return nil, err
	}
	return Default().Merge(override), nil
}

// Find returns the first default rules file present in dir, or empty string
func Find(ctx context.Context, dir string) string {
	fs := afs.New()
	for _, name := range DefaultFiles {
		candidate := filepath.Join(dir, name)
		if ok, _ := fs.Exists(ctx, candidate); ok {
			return candidate
		}
	}
	return ""
}
