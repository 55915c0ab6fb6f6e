package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/randomairborne/google-classroom/internal/schemacheck"
	"github.com/randomairborne/google-classroom/pkg/classroom"
	"github.com/randomairborne/google-classroom/pkg/codec"
	"github.com/randomairborne/google-classroom/pkg/config"
	"github.com/randomairborne/google-classroom/pkg/logger"
	"github.com/randomairborne/google-classroom/pkg/storage"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	usageHeader = "usage: schemacheck -kind <kind> [-format json|csv|pdf] [-out file] [--metrics-file file] files..."
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return exitUsage
	}

	flags := pflag.NewFlagSet("schemacheck", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	kindName := flags.StringP("kind", "k", "", "resource kind to check files against")
	format := flags.StringP("format", "f", cfg.SchemaCheck.Format, "output format: json, csv or pdf")
	outPath := flags.StringP("out", "o", "", "write output to file instead of stdout")
	workers := flags.IntP("workers", "w", runtime.NumCPU(), "files checked concurrently")
	metricsFile := flags.String("metrics-file", "", "write codec metrics in Prometheus text format to file")
	listKinds := flags.Bool("list-kinds", false, "print known kinds and exit")
	flags.Usage = func() {
		fmt.Fprintln(stderr, usageHeader)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *listKinds {
		fmt.Fprintln(stdout, strings.Join(schemacheck.Names(), "\n"))
		return exitOK
	}
	if *kindName == "" || flags.NArg() == 0 {
		flags.Usage()
		return exitUsage
	}
	kind, err := schemacheck.Lookup(*kindName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	*format = strings.ToLower(*format)
	if err := config.ValidateFormat(*format); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logr, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "failed to init logger: %v\n", err)
		return exitUsage
	}
	defer logr.Sync() //nolint:errcheck

	var metrics *codec.Metrics
	if cfg.Metrics.Enabled || *metricsFile != "" {
		metrics = codec.NewMetrics()
	}
	cdc := codec.New(codec.Config{Logger: logr, Metrics: metrics})

	client, err := classroom.NewClient(classroom.Options{
		Endpoint: cfg.Classroom.Endpoint,
		Version:  cfg.Classroom.APIVersion,
		Codec:    cdc,
	})
	if err != nil {
		fmt.Fprintf(stderr, "invalid classroom settings: %v\n", err)
		return exitUsage
	}
	logr.Debug("schemacheck starting",
		zap.String("kind", kind.Name),
		zap.String("format", *format),
		zap.String("api_root", client.ResourceURL()),
		zap.Int("files", flags.NArg()),
	)

	runner := schemacheck.NewRunner(client.Codec(), logr, *workers)
	results := runner.CheckFiles(ctx, kind, flags.Args())
	summary := schemacheck.Summarize(results)

	var items []any
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", res.Path, res.Err)
			continue
		}
		items = append(items, res.Items...)
	}

	if metrics != nil {
		snap := metrics.Snapshot()
		logr.Info("codec metrics",
			zap.Uint64("operations", snap.Operations),
			zap.Uint64("failures", snap.Failures),
			zap.Float64("average_duration_ms", snap.AverageDurationMs),
		)
	}
	if *metricsFile != "" {
		if err := writeMetrics(cfg.Export.Dir, *metricsFile, metrics); err != nil {
			logr.Warn("failed to write codec metrics", zap.String("path", *metricsFile), zap.Error(err))
		}
	}

	if summary.Failed > 0 {
		fmt.Fprintf(stderr, "%d of %d files failed\n", summary.Failed, summary.Files)
		return exitFailed
	}

	out, err := schemacheck.Render(client.Codec(), *format, kind, items, cfg.Export.PDFTitle)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailed
	}
	if err := write(cfg.Export.Dir, *outPath, stdout, out); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailed
	}
	return exitOK
}

// writeMetrics resolves path like -out does.
func writeMetrics(dir, path string, metrics *codec.Metrics) error {
	store, err := storage.NewLocalStorage(dir)
	if err != nil {
		return err
	}
	return metrics.WriteTextfile(store.Path(path))
}

func write(dir, path string, stdout io.Writer, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	store, err := storage.NewLocalStorage(dir)
	if err != nil {
		return err
	}
	_, err = store.Save(path, data)
	return err
}
