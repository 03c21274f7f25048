package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/raggedy/internal/config"
	"git.home.luguber.info/inful/raggedy/internal/docs"
	"git.home.luguber.info/inful/raggedy/internal/foundation/errors"
	"git.home.luguber.info/inful/raggedy/internal/logfields"
	"git.home.luguber.info/inful/raggedy/internal/metrics"
	"git.home.luguber.info/inful/raggedy/internal/observability"
	"git.home.luguber.info/inful/raggedy/internal/output"
	"git.home.luguber.info/inful/raggedy/internal/version"
)

// CLI is the kong grammar. Flags left empty fall back to RAGGEDY_* variables,
// the config file and then the defaults, in that order. With no flags and no
// RAGGEDY_* variables set the output is the plain JSON document on stdout.
// .env files are only read next to an explicit --config file, so a stray .env
// in the working directory cannot change the default output.
type CLI struct {
	Directory string `arg:"" name:"directory" help:"Directory to scan for .md and .adoc files"`

	Config      string           `short:"c" help:"YAML configuration file path; .env and .env.local beside it are loaded too"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	Format      string           `short:"f" help:"Output encoding (json, yaml)"`
	Output      string           `short:"o" help:"Write the result to this file instead of stdout"`
	MetricsFile string           `name:"metrics-file" help:"Write scan metrics in Prometheus text format to this file"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cli CLI
	// --help and --version ask kong to exit; record the code instead so run
	// returns it to main.
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("raggedy"),
		kong.Description("Collect markdown and asciidoc documents below a directory as structured records."),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": version.String()},
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		return errors.NewCLIErrorAdapter(false, nil).Report(stderr,
			errors.WrapError(err, errors.CategoryInternal, "failed to build command line parser").Fatal().Build())
	}

	_, err = parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		return errors.NewCLIErrorAdapter(false, nil).Report(stderr,
			errors.WrapError(err, errors.CategoryValidation, "invalid arguments").Fatal().Build())
	}
	return cli.Run(ctx, stdout, stderr)
}

// Run executes a scan with the parsed flags and returns the process exit code.
func (c *CLI) Run(ctx context.Context, stdout, stderr io.Writer) int {
	var loadedEnv []string
	if c.Config != "" {
		loadedEnv = config.LoadEnvFiles(filepath.Dir(c.Config))
	}

	cfg, cfgErr := c.resolveConfig()
	if cfg == nil {
		cfg = config.Default()
	}
	logger := observability.NewLogger(stderr, observability.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	slog.SetDefault(logger)
	adapter := errors.NewCLIErrorAdapter(c.Verbose, logger)
	if cfgErr != nil {
		return adapter.Report(stderr, cfgErr)
	}
	for _, f := range loadedEnv {
		slog.Debug("Loaded environment file", logfields.File(f))
	}

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return adapter.Report(stderr, err)
	}

	ctx = observability.WithRunID(ctx, observability.NewRunID())
	scanner := docs.NewScanner()
	var recorder *metrics.PrometheusRecorder
	if cfg.MetricsFile != "" {
		recorder = metrics.NewPrometheusRecorder(prom.NewRegistry())
		scanner.WithRecorder(recorder)
	}

	list, err := scanner.Scan(ctx, c.Directory)
	if recorder != nil {
		writeMetrics(ctx, recorder, cfg.MetricsFile)
	}
	if err != nil {
		return adapter.Report(stderr, err)
	}

	if err := emit(list, format, cfg.Output, stdout); err != nil {
		return adapter.Report(stderr, err)
	}
	observability.DebugContext(ctx, "Result written",
		logfields.Format(string(format)),
		logfields.Count(len(list)))
	return 0
}

// resolveConfig layers defaults, the config file, RAGGEDY_* variables and the
// flags, each overriding the previous one.
func (c *CLI) resolveConfig() (*config.Config, error) {
	cfg := config.Default()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if c.Format != "" {
		cfg.Format = c.Format
	}
	if c.Output != "" {
		cfg.Output = c.Output
	}
	if c.MetricsFile != "" {
		cfg.MetricsFile = c.MetricsFile
	}
	if c.Verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

// emit encodes the full list before touching the destination, so a failed
// encoding leaves stdout and the output file untouched.
func emit(list []docs.Document, format output.Format, outputPath string, stdout io.Writer) error {
	data, err := output.Encode(list, format)
	if err != nil {
		return err
	}

	if outputPath == "" {
		if _, err := stdout.Write(data); err != nil {
			return errors.OutputError("failed to write result").WithCause(err).Build()
		}
		return nil
	}

	// #nosec G306 -- the result is meant to be readable by other tools.
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return errors.OutputError("failed to write output file").
			WithContext("path", outputPath).
			WithCause(err).
			Build()
	}
	return nil
}

// writeMetrics runs for failed scans too. A write failure is logged and does
// not change the exit code.
func writeMetrics(ctx context.Context, recorder *metrics.PrometheusRecorder, path string) {
	if err := recorder.WriteTextfile(path); err != nil {
		observability.WarnContext(ctx, "Failed to write metrics file",
			logfields.Path(path),
			logfields.Error(err))
		return
	}
	observability.DebugContext(ctx, "Metrics written", logfields.Path(path))
}
