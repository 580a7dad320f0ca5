package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sghaida/patterns/catalog"
	"github.com/sghaida/patterns/internal/clock"
	"github.com/sghaida/patterns/internal/config"
	"github.com/sghaida/patterns/internal/demo"
	"github.com/sghaida/patterns/internal/latency"
	"github.com/sghaida/patterns/internal/telemetry"
)

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("patterns", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configPath := flags.String("config", "", "path to a YAML config file")
	list := flags.Bool("list", false, "list the available examples and exit")
	pattern := flags.String("pattern", "", "run only this pattern")
	variant := flags.String("variant", "", "run only this variant")
	withMetrics := flags.Bool("metrics", false, "write run metrics to stderr")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() > 0 {
		_, _ = fmt.Fprintln(stderr, "usage: patterns [-config file.yaml] [-list] [-pattern name] [-variant name] [-metrics]")
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	logger, err := telemetry.NewLogger(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	reg := catalog.Default()
	if *list {
		printCatalog(stdout, reg)
		return 0
	}

	examples, err := selectExamples(reg, *pattern, *variant)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	promReg := prometheus.NewRegistry()
	metrics, err := telemetry.NewMetrics(promReg)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	logger.Debug("config loaded", "env", cfg.Env, "latency_scale", cfg.LatencyScale, "log_file", cfg.LogFile)

	runner := catalog.Runner{
		Env: demo.Env{
			Out:     stdout,
			Logger:  logger,
			Clock:   clock.NewSystem(),
			Latency: latency.New(cfg.LatencyScale),
			LogFile: cfg.LogFile,
		},
		Metrics: metrics,
		Logger:  logger,
	}

	code := 0
	if err := runner.RunAll(ctx, examples); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		code = 1
		if errors.Is(err, context.Canceled) {
			logger.Warn("run interrupted")
		}
	}

	if *withMetrics {
		if err := telemetry.WriteText(stderr, promReg); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			code = 1
		}
	}
	return code
}

// selectExamples resolves a fully qualified pattern/variant directly and
// filters the registry otherwise.
func selectExamples(reg *catalog.Registry, pattern, variant string) ([]catalog.Example, error) {
	if pattern != "" && variant != "" {
		ex, err := reg.Lookup(pattern, variant)
		if err != nil {
			return nil, err
		}
		return []catalog.Example{ex}, nil
	}
	return reg.Select(pattern, variant)
}

// printCatalog lists the examples grouped by pattern, patterns sorted by name.
func printCatalog(w io.Writer, reg *catalog.Registry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "EXAMPLE\tCATEGORY\tSUMMARY")
	for _, p := range reg.Patterns() {
		for _, ex := range reg.Filter(p, "") {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", ex.Key(), ex.Category, ex.Summary)
		}
	}
	_ = tw.Flush()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
