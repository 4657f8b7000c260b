// Command kernelbench times the numeric kernels on deterministic inputs.
//
// Usage:
//
//	kernelbench [flags] [kernel-name ...]
//
// Without arguments it runs every kernel. Defaults come from the environment
// (KERNELBENCH_SIZES, KERNELBENCH_REPEAT, KERNELBENCH_FORMAT,
// KERNELBENCH_WORKERS, KERNELBENCH_LOG_LEVEL, KERNELBENCH_LOG_DEV) and are
// overridden by flags.
//
// Examples:
//
//	kernelbench fft ntt
//	kernelbench -sizes 1024,65536 -repeat 10 sort-intro sort-parallel
//	kernelbench -format yaml -workers 4 matmul matmul-gonum
//	kernelbench -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-kernels/internal/logging"
	"github.com/cwbudde/algo-kernels/parallel"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("kernelbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	sizes := fs.String("sizes", formatSizes(cfg.Sizes), "comma-separated input sizes")
	fs.IntVar(&cfg.Repeat, "repeat", cfg.Repeat, "timed runs per kernel and size")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: table or yaml")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel workers (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	list := fs.Bool("list", false, "list available kernels")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: kernelbench [flags] [kernel-name ...]\n\n")
		fmt.Fprintf(stderr, "Times numeric kernels on deterministic inputs.\n")
		fmt.Fprintf(stderr, "Without arguments, runs every kernel.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  kernelbench fft ntt\n")
		fmt.Fprintf(stderr, "  kernelbench -sizes 1024,65536 sort-intro\n")
		fmt.Fprintf(stderr, "  kernelbench -format yaml matmul\n")
		fmt.Fprintf(stderr, "  kernelbench -list\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *list {
		return printList(stdout)
	}

	if cfg.Sizes, err = parseSizes(*sizes); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Development = cfg.LogDev
	logger, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	kernels, unknown := resolveKernels(fs.Args())
	for _, name := range unknown {
		logger.Warn("unknown kernel (use -list to see available)", zap.String("kernel", name))
	}
	if len(kernels) == 0 {
		return errors.New("no matching kernels")
	}

	popts := []parallel.Option{parallel.WithWorkers(cfg.Workers)}
	rep := newReport(cfg.Workers)
	start := time.Now()
	for _, k := range kernels {
		for _, size := range cfg.Sizes {
			logger.Debug("running kernel", zap.String("kernel", k.name), zap.Int("size", size))
			res, err := measure(k, size, cfg.Repeat, popts)
			if err != nil {
				logger.Error("kernel failed", zap.String("kernel", k.name), zap.Int("size", size), zap.Error(err))
				return err
			}
			rep.Results = append(rep.Results, res)
		}
	}
	logger.Info("benchmark finished",
		zap.Int("kernels", len(kernels)),
		zap.Int("results", len(rep.Results)),
		zap.Duration("elapsed", time.Since(start)))

	return writeReport(stdout, rep, cfg.Format)
}
