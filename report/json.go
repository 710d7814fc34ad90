package report

import (
	"encoding/json"
	"io"
)

// Warning describes a file that could not be checked
type Warning struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Document is the machine-readable form of a run
type Document struct {
	Passed       bool       `json:"passed"`
	FilesChecked int        `json:"filesChecked"`
	Total        int        `json:"total"`
	ElapsedMs    int64      `json:"elapsedMs"`
	Files        []*File    `json:"files"`
	Warnings     []*Warning `json:"warnings"`
}

// WriteJSON writes the document as indented JSON; empty collections are written as []
func WriteJSON(w io.Writer, document *Document) error {
	if document.Files == nil {
		document.Files = []*File{}
	}
	if document.Warnings == nil {
		document.Warnings = []*Warning{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(document)
}
