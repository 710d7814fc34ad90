package report

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Baseline holds fingerprints of accepted diagnostics
type Baseline struct {
	Fingerprints []string `yaml:"fingerprints"`
	index        map[string]bool
}

// NewBaseline creates a baseline accepting the given diagnostics
func NewBaseline(diagnostics []*Diagnostic) *Baseline {
	ret := &Baseline{}
	for _, diagnostic := range diagnostics {
		ret.Fingerprints = append(ret.Fingerprints, diagnostic.Fingerprint)
	}
	ret.init()
	return ret
}

func (b *Baseline) init() {
	b.index = map[string]bool{}
	var unique []string
	for _, fingerprint := range b.Fingerprints {
		if fingerprint == "" || b.index[fingerprint] {
			continue
		}
		b.index[fingerprint] = true
		unique = append(unique, fingerprint)
	}
	sort.Strings(unique)
	b.Fingerprints = unique
}

// LoadBaseline reads a baseline file; a missing file yields an empty baseline
func LoadBaseline(ctx context.Context, location string) (*Baseline, error) {
	fs := afs.New()
	ret := &Baseline{}
	if ok, _ := fs.Exists(ctx, location); !ok {
		ret.init()
		return ret, nil
	}
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline %s: %w", location, err)
	}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode baseline %s: %w", location, err)
	}
	ret.init()
	return ret, nil
}

// Save writes the baseline as yaml
func (b *Baseline) Save(ctx context.Context, location string) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to encode baseline: %w", err)
	}
	if err = afs.New().Upload(ctx, location, 0o644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write baseline %s: %w", location, err)
	}
	return nil
}

// Contains returns true if the fingerprint is accepted
func (b *Baseline) Contains(fingerprint string) bool {
	return b.index[fingerprint]
}

// Filter drops accepted diagnostics, returning the rest and the number dropped
func (b *Baseline) Filter(diagnostics []*Diagnostic) ([]*Diagnostic, int) {
	var ret []*Diagnostic
	for _, diagnostic := range diagnostics {
		if b.Contains(diagnostic.Fingerprint) {
			continue
		}
		ret = append(ret, diagnostic)
	}
	return ret, len(diagnostics) - len(ret)
}
