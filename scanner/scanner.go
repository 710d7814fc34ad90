// Package scanner runs the hardcoded text check over a set of source files
package scanner

import (
	"context"
	"runtime"
	"time"

	"github.com/viant/i18nscan/checker"
	"github.com/viant/i18nscan/discovery"
	"github.com/viant/i18nscan/report"
	"github.com/viant/i18nscan/rule"
	"github.com/viant/i18nscan/source"
	"github.com/viant/i18nscan/syntax"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Scanner checks files against a compiled configuration
type Scanner struct {
	config   *rule.Config
	logger   *zap.Logger
	jobs     int
	engines  checker.Engines
	cache    *source.Cache
	finder   *discovery.Finder
	reporter *report.Reporter
	baseline *report.Baseline
}

// New creates a scanner with all engines enabled and one job per CPU
func New(config *rule.Config, options ...Option) *Scanner {
	ret := &Scanner{
		config:  config,
		logger:  zap.NewNop(),
		jobs:    runtime.GOMAXPROCS(0),
		engines: checker.AllEngines,
	}
	for _, option := range options {
		option(ret)
	}
	if ret.cache == nil {
		ret.cache = source.New(nil)
	}
	if ret.reporter == nil {
		ret.reporter = report.New(ret.cache)
	}
	ret.finder = discovery.New(nil)
	return ret
}

type outcome struct {
	diagnostics []*report.Diagnostic
	suppressed  int
	err         error
}

// Run discovers files matching patterns and checks them; invalid patterns abort the run
func (s *Scanner) Run(ctx context.Context, patterns []string) (*Result, error) {
	started := time.Now()
	files, err := s.finder.Find(ctx, patterns)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("discovered files", zap.Int("count", len(files)), zap.Strings("patterns", patterns))
	ret, err := s.ScanFiles(ctx, files)
	if err != nil {
		return nil, err
	}
	ret.Elapsed = time.Since(started)
	return ret, nil
}

// ScanFiles checks files in parallel. A file that cannot be read or parsed becomes a warning;
// only context cancellation fails the run.
func (s *Scanner) ScanFiles(ctx context.Context, files []string) (*Result, error) {
	started := time.Now()
	walker := checker.NewWalker(s.config, s.engines)
	outcomes := make([]*outcome, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(s.jobs, len(files))))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = s.scanFile(gctx, walker, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ret := &Result{Engines: map[checker.Engine]int{}}
	for i, path := range files {
		item := outcomes[i]
		if item.err != nil {
			s.logger.Warn("skipped file", zap.String("path", path), zap.Error(item.err))
			ret.Warnings = append(ret.Warnings, &Warning{Path: path, Err: item.err})
			continue
		}
		ret.FilesChecked++
		ret.Suppressed += item.suppressed
		if len(item.diagnostics) == 0 {
			continue
		}
		ret.Files = append(ret.Files, &report.File{Path: path, Diagnostics: item.diagnostics})
		for _, diagnostic := range item.diagnostics {
			ret.Engines[diagnostic.Kind.Engine()]++
			ret.Total++
		}
	}
	ret.Passed = ret.passed(s.engines)
	ret.Elapsed = time.Since(started)
	return ret, nil
}

func (s *Scanner) scanFile(ctx context.Context, walker *checker.Walker, path string) *outcome {
	content, err := s.cache.Content(ctx, path)
	if err != nil {
		return &outcome{err: err}
	}
	file, err := syntax.Parse(ctx, path, content)
	if err != nil {
		return &outcome{err: err}
	}
	findings := walker.Walk(file)
	ret := &outcome{}
	for _, finding := range findings {
		ret.diagnostics = append(ret.diagnostics, s.reporter.Format(ctx, finding))
	}
	report.Sequence(ret.diagnostics)
	if s.baseline != nil {
		ret.diagnostics, ret.suppressed = s.baseline.Filter(ret.diagnostics)
	}
	s.logger.Debug("checked file", zap.String("path", path), zap.Int("findings", len(ret.diagnostics)))
	return ret
}
