package report

import "github.com/viant/i18nscan/checker"

// Diagnostic is a finding rendered for humans: a code frame and a stable fingerprint
type Diagnostic struct {
	checker.Finding
	Frame       string `json:"frame,omitempty"`
	Fingerprint string `json:"fingerprint"`
}

// File groups diagnostics of one source file
type File struct {
	Path        string        `json:"path"`
	Diagnostics []*Diagnostic `json:"diagnostics"`
}

// Group groups diagnostics by path, preserving first-seen order
func Group(diagnostics []*Diagnostic) []*File {
	var ret []*File
	index := map[string]*File{}
	for _, diagnostic := range diagnostics {
		file, ok := index[diagnostic.Path]
		if !ok {
			file = &File{Path: diagnostic.Path}
			index[diagnostic.Path] = file
			ret = append(ret, file)
		}
		file.Diagnostics = append(file.Diagnostics, diagnostic)
	}
	return ret
}
