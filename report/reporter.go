package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/viant/i18nscan/checker"
	"github.com/viant/i18nscan/source"
)

const (
	// DefaultContext is the number of source lines shown around a finding
	DefaultContext = 2
	tabWidth       = 4
)

var remediationGuide = []string{
	"How to fix:",
	"  1. Add each string to your locale files under the suggested key.",
	"  2. Replace the literal with the suggested translation call.",
	"  3. Strings that must stay verbatim can be allowed in the rules file (allowPatterns)",
	"     or suppressed with an // i18n-ignore comment.",
}

type styles struct {
	header     *color.Color
	path       *color.Color
	message    *color.Color
	suggestion *color.Color
	gutter     *color.Color
	marker     *color.Color
	success    *color.Color
}

func newStyles(enabled bool) *styles {
	ret := &styles{
		header:     color.New(color.FgRed, color.Bold),
		path:       color.New(color.FgCyan, color.Underline),
		message:    color.New(color.Bold),
		suggestion: color.New(color.FgGreen),
		gutter:     color.New(color.Faint),
		marker:     color.New(color.FgRed, color.Bold),
		success:    color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{ret.header, ret.path, ret.message, ret.suggestion, ret.gutter, ret.marker, ret.success} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return ret
}

// Reporter turns findings into diagnostics and renders text reports
type Reporter struct {
	cache   *source.Cache
	context int
	color   bool
	project string
	styles  *styles
}

// Option configures a reporter
type Option func(r *Reporter)

// WithContext sets the number of lines shown before and after the finding line
func WithContext(lines int) Option {
	return func(r *Reporter) {
		if lines >= 0 {
			r.context = lines
		}
	}
}

// WithColor enables ANSI colors
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		r.color = enabled
	}
}

// WithProject names the project in the report header
func WithProject(name string) Option {
	return func(r *Reporter) {
		r.project = name
	}
}

// New creates a reporter reading source lines through cache
func New(cache *source.Cache, options ...Option) *Reporter {
	ret := &Reporter{cache: cache, context: DefaultContext}
	for _, option := range options {
		option(ret)
	}
	if ret.cache == nil {
		ret.cache = source.New(nil)
	}
	ret.styles = newStyles(ret.color)
	return ret
}

// Format renders the code frame of a finding; an unreadable file yields a placeholder frame
func (r *Reporter) Format(ctx context.Context, finding *checker.Finding) *Diagnostic {
	ret := &Diagnostic{Finding: *finding, Fingerprint: Fingerprint(finding, 0)}
	lines, err := r.cache.Lines(ctx, finding.Path)
	if err != nil {
		ret.Frame = r.styles.gutter.Sprintf("  (source unavailable: %v)", err) + "\n"
		return ret
	}
	ret.Frame = r.frame(lines, finding)
	return ret
}

func (r *Reporter) frame(lines []string, finding *checker.Finding) string {
	if finding.Line < 1 || finding.Line > len(lines) {
		return r.styles.gutter.Sprintf("  (line %d is out of range)", finding.Line) + "\n"
	}
	first := max(1, finding.Line-r.context)
	last := min(len(lines), finding.Line+r.context)
	width := len(strconv.Itoa(last))
	var builder strings.Builder
	for number := first; number <= last; number++ {
		line := lines[number-1]
		prefix := "  "
		if number == finding.Line {
			prefix = r.styles.marker.Sprint("> ")
		}
		gutter := r.styles.gutter.Sprintf("%*d |", width, number)
		builder.WriteString(prefix + gutter + " " + expandTabs(line) + "\n")
		if number != finding.Line {
			continue
		}
		endColumn := -1
		if finding.EndLine == finding.Line {
			endColumn = finding.EndColumn
		}
		offset, span := markerSpan(line, finding.Column, endColumn)
		gutter = r.styles.gutter.Sprintf("%*s |", width, "")
		builder.WriteString("  " + gutter + " " + strings.Repeat(" ", offset) + r.styles.marker.Sprint(strings.Repeat("^", span)) + "\n")
	}
	return builder.String()
}

// markerSpan returns the display offset of column and the display width of [column, endColumn) in line;
// wide runes count twice and tabs expand to tabWidth cells
func markerSpan(line string, column, endColumn int) (int, int) {
	runes := []rune(line)
	column = min(max(column, 0), len(runes))
	offset := displayWidth(runes[:column])
	if endColumn <= column {
		return offset, 1
	}
	endColumn = min(endColumn, len(runes))
	return offset, max(1, displayWidth(runes[column:endColumn]))
}

func displayWidth(runes []rune) int {
	ret := 0
	for _, r := range runes {
		if r == '\t' {
			ret += tabWidth
			continue
		}
		ret += runewidth.RuneWidth(r)
	}
	return ret
}

func expandTabs(line string) string {
	return strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
}

// Report renders diagnostics grouped by file, or a single success line when there are none
func (r *Reporter) Report(diagnostics []*Diagnostic) string {
	if len(diagnostics) == 0 {
		return r.styles.success.Sprint("✓ No hardcoded text found") + "\n"
	}
	files := Group(diagnostics)
	var builder strings.Builder
	header := fmt.Sprintf("✗ Found %s in %s", plural(len(diagnostics), "hardcoded string"), plural(len(files), "file"))
	if r.project != "" {
		header += " (" + r.project + ")"
	}
	builder.WriteString(r.styles.header.Sprint(header) + "\n")
	for _, file := range files {
		builder.WriteString("\n" + r.styles.path.Sprint(file.Path) + "\n")
		for _, diagnostic := range file.Diagnostics {
			location := fmt.Sprintf("%s:%d:%d", diagnostic.Path, diagnostic.Line, diagnostic.Column+1)
			builder.WriteString("  " + location + " " + r.styles.message.Sprint(diagnostic.Message) + " [" + string(diagnostic.Kind) + "]\n")
			builder.WriteString("  " + r.styles.suggestion.Sprint("suggestion: "+diagnostic.Suggestion) + "\n")
			builder.WriteString(indent(diagnostic.Frame, "  "))
			builder.WriteString("\n")
		}
	}
	builder.WriteString(strings.Join(remediationGuide, "\n") + "\n")
	return builder.String()
}

func indent(text, prefix string) string {
	if text == "" {
		return ""
	}
	lines := strings.SplitAfter(text, "\n")
	var builder strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		builder.WriteString(prefix + line)
	}
	return builder.String()
}

func plural(count int, noun string) string {
	if count == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(count) + " " + noun + "s"
}
