package scanner

import (
	"time"

	"github.com/viant/i18nscan/checker"
	"github.com/viant/i18nscan/report"
)

// Warning records a file skipped because it could not be read or parsed
type Warning struct {
	Path string
	Err  error
}

func (w *Warning) Error() string {
	return w.Err.Error()
}

func (w *Warning) Unwrap() error {
	return w.Err
}

// Result represents the outcome of a run
type Result struct {
	Files        []*report.File // files with diagnostics, in discovery order
	Warnings     []*Warning
	FilesChecked int
	Total        int
	Suppressed   int // diagnostics accepted by the baseline
	Engines      map[checker.Engine]int
	Passed       bool
	Elapsed      time.Duration
}

// passed returns true if every enabled engine produced no diagnostics
func (r *Result) passed(engines checker.Engines) bool {
	for _, engine := range []checker.Engine{checker.Markup, checker.Script} {
		if engines.Enabled(engine) && r.Engines[engine] > 0 {
			return false
		}
	}
	return true
}

// Diagnostics returns all diagnostics in report order
func (r *Result) Diagnostics() []*report.Diagnostic {
	var ret []*report.Diagnostic
	for _, file := range r.Files {
		ret = append(ret, file.Diagnostics...)
	}
	return ret
}

// Document converts the result into its JSON form
func (r *Result) Document() *report.Document {
	ret := &report.Document{
		Passed:       r.Passed,
		FilesChecked: r.FilesChecked,
		Total:        r.Total,
		ElapsedMs:    r.Elapsed.Milliseconds(),
		Files:        r.Files,
	}
	for _, warning := range r.Warnings {
		ret.Warnings = append(ret.Warnings, &report.Warning{Path: warning.Path, Message: warning.Error()})
	}
	return ret
}
