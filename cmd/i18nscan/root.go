package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viant/i18nscan/checker"
	"github.com/viant/i18nscan/logger"
	"github.com/viant/i18nscan/project"
	"github.com/viant/i18nscan/report"
	"github.com/viant/i18nscan/rule"
	"github.com/viant/i18nscan/scanner"
	"github.com/viant/i18nscan/source"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const (
	formatText = "text"
	formatJSON = "json"

	defaultBaseline = ".i18nscan-baseline.yaml"
)

// newRootCmd builds the command; flags can also be set with I18NSCAN_<FLAG> environment variables
func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "i18nscan [patterns...]",
		Short: "Find hardcoded user-facing text in JavaScript and TypeScript sources",
		Long: `i18nscan parses JS/JSX/TS/TSX files and reports literal text that users would see
without going through a translation call: markup text, markup attributes, notification
call arguments and user-facing object properties. Patterns are globs; prefix a pattern
with ! to exclude matches.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v, args, cmd.OutOrStdout())
		},
	}
	flags := cmd.Flags()
	flags.String("config", "", "rules file (.yaml, .yml, .json or .toml); defaults to .i18nscan.* in the project root")
	flags.String("format", formatText, "output format (text|json)")
	flags.String("color", "auto", "colorize text output (auto|on|off)")
	flags.Int("context", report.DefaultContext, "source lines shown around each finding")
	flags.Int("jobs", 0, "max files processed in parallel (0=auto)")
	flags.Bool("markup", true, "check markup text and attributes")
	flags.Bool("no-markup", false, "skip markup text and attributes")
	flags.Bool("script", true, "check notification calls and object properties")
	flags.Bool("no-script", false, "skip notification calls and object properties")
	flags.String("baseline", "", "baseline file; accepted findings are not reported")
	flags.Bool("write-baseline", false, "record current findings into the baseline file and exit")
	flags.String("log-level", "warn", "log level (debug|info|warn|error)")
	flags.String("log-format", logger.FormatConsole, "log format (console|json)")

	v.SetEnvPrefix("I18NSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)
	return cmd
}

func run(ctx context.Context, v *viper.Viper, patterns []string, out io.Writer) error {
	log, err := logger.New(v.GetString("log-level"), v.GetString("log-format"))
	if err != nil {
		return &exitError{code: exitFailure, err: err}
	}
	defer func() { _ = log.Sync() }()

	format := v.GetString("format")
	if format != formatText && format != formatJSON {
		return &exitError{code: exitFailure, err: fmt.Errorf("unsupported format %q", format)}
	}
	colored, err := useColor(v.GetString("color"), format, out)
	if err != nil {
		return &exitError{code: exitFailure, err: err}
	}

	wd, err := os.Getwd()
	if err != nil {
		return &exitError{code: exitFailure, err: err}
	}
	detector := project.New()
	detected, err := detector.Detect(ctx, wd)
	if err != nil {
		return &exitError{code: exitFailure, err: fmt.Errorf("failed to detect project: %w", err)}
	}
	log.Debug("detected project", zap.String("root", detected.RootPath), zap.String("type", detected.Type), zap.String("name", detected.Name))

	config, err := loadRules(ctx, v.GetString("config"), detected.RootPath, log)
	if err != nil {
		return &exitError{code: exitFailure, err: err}
	}
	if len(patterns) == 0 {
		patterns = detector.DefaultPatterns(ctx, detected)
	}

	cache := source.New(nil)
	reporter := report.New(cache,
		report.WithContext(v.GetInt("context")),
		report.WithColor(colored),
		report.WithProject(detected.Name),
	)
	options := []scanner.Option{
		scanner.WithLogger(log),
		scanner.WithJobs(v.GetInt("jobs")),
		scanner.WithEngines(checker.Engines{
			Markup: v.GetBool("markup") && !v.GetBool("no-markup"),
			Script: v.GetBool("script") && !v.GetBool("no-script"),
		}),
		scanner.WithCache(cache),
		scanner.WithReporter(reporter),
	}
	baselineLocation := v.GetString("baseline")
	writeBaseline := v.GetBool("write-baseline")
	if baselineLocation != "" && !writeBaseline {
		baseline, err := report.LoadBaseline(ctx, baselineLocation)
		if err != nil {
			return &exitError{code: exitFailure, err: err}
		}
		options = append(options, scanner.WithBaseline(baseline))
	}

	result, err := scanner.New(config, options...).Run(ctx, patterns)
	if err != nil {
		return &exitError{code: exitFailure, err: err}
	}
	log.Info("scan completed",
		zap.Int("files", result.FilesChecked),
		zap.Int("findings", result.Total),
		zap.Int("suppressed", result.Suppressed),
		zap.Int("warnings", len(result.Warnings)),
		zap.Duration("elapsed", result.Elapsed),
	)

	if writeBaseline {
		if baselineLocation == "" {
			baselineLocation = defaultBaseline
		}
		baseline := report.NewBaseline(result.Diagnostics())
		if err = baseline.Save(ctx, baselineLocation); err != nil {
			return &exitError{code: exitFailure, err: err}
		}
		_, err = fmt.Fprintf(out, "Recorded %d findings in %s\n", len(baseline.Fingerprints), baselineLocation)
		return err
	}

	switch format {
	case formatJSON:
		err = report.WriteJSON(out, result.Document())
	default:
		_, err = io.WriteString(out, reporter.Report(result.Diagnostics()))
	}
	if err != nil {
		return &exitError{code: exitFailure, err: err}
	}
	if !result.Passed {
		return &exitError{code: exitFindings}
	}
	return nil
}

func loadRules(ctx context.Context, location, root string, log *zap.Logger) (*rule.Config, error) {
	if location == "" {
		location = rule.Find(ctx, root)
	}
	options := rule.Default()
	if location != "" {
		loaded, err := rule.Load(ctx, location)
		if err != nil {
			return nil, err
		}
		options = loaded
		log.Debug("loaded rules", zap.String("location", location))
	}
	return options.Compile()
}

func useColor(mode, format string, out io.Writer) (bool, error) {
	switch mode {
	case "on":
		return format == formatText, nil
	case "off":
		return false, nil
	case "auto", "":
		file, ok := out.(*os.File)
		return ok && format == formatText && term.IsTerminal(int(file.Fd())), nil
	}
	return false, fmt.Errorf("unsupported color mode %q", mode)
}
