package report

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/minio/highwayhash"
	"github.com/viant/i18nscan/checker"
)

var fingerprintKey = []byte("i18nscan-fingerprint-key-32bytes")

// Hash returns the 64-bit highwayhash of data
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// Fingerprint identifies the n-th occurrence of a finding independently of its line,
// so edits elsewhere in a file keep it stable
func Fingerprint(finding *checker.Finding, occurrence int) string {
	parts := []string{filepath.ToSlash(finding.Path), string(finding.Kind), finding.Name, finding.Value}
	if occurrence > 0 {
		parts = append(parts, strconv.Itoa(occurrence))
	}
	sum, err := Hash([]byte(strings.Join(parts, "\x00")))
	if err != nil {
		return ""
	}
	ret := strconv.FormatUint(sum, 16)
	return strings.Repeat("0", 16-len(ret)) + ret
}

// Sequence fingerprints diagnostics of one file in order, numbering repeated identical findings
func Sequence(diagnostics []*Diagnostic) {
	seen := map[string]int{}
	for _, diagnostic := range diagnostics {
		first := Fingerprint(&diagnostic.Finding, 0)
		diagnostic.Fingerprint = Fingerprint(&diagnostic.Finding, seen[first])
		seen[first]++
	}
}
