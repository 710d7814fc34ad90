package scanner

import (
	"github.com/viant/i18nscan/checker"
	"github.com/viant/i18nscan/report"
	"github.com/viant/i18nscan/source"
	"go.uber.org/zap"
)

type Option func(*Scanner)

// WithLogger sets the logger receiving per-file warnings
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithJobs sets the number of files processed concurrently
func WithJobs(jobs int) Option {
	return func(s *Scanner) {
		if jobs > 0 {
			s.jobs = jobs
		}
	}
}

// WithEngines selects the finding groups
func WithEngines(engines checker.Engines) Option {
	return func(s *Scanner) {
		s.engines = engines
	}
}

// WithCache shares a file cache, typically with a reporter built outside the scanner
func WithCache(cache *source.Cache) Option {
	return func(s *Scanner) {
		if cache != nil {
			s.cache = cache
		}
	}
}

// WithReporter sets the reporter formatting findings into diagnostics
func WithReporter(reporter *report.Reporter) Option {
	return func(s *Scanner) {
		s.reporter = reporter
	}
}

// WithBaseline suppresses diagnostics accepted by the baseline
func WithBaseline(baseline *report.Baseline) Option {
	return func(s *Scanner) {
		s.baseline = baseline
	}
}
