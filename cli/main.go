package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mwantia/fsindex/config"
	"github.com/mwantia/fsindex/log"
	"github.com/mwantia/fsindex/report"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "fsindex-bench: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := log.NewWithFile("fsindex", log.Parse(cfg.Log.Level),
		cfg.Log.File, log.DefaultRotation(), cfg.Log.NoTerminal)

	var results *report.ResultStore
	if cfg.Report.ResultsDB != "" {
		results, err = report.OpenResultStore(cfg.Report.ResultsDB)
		if err != nil {
			return fmt.Errorf("failed to open results database: %w", err)
		}
		defer results.Close()
	}

	ctx := context.Background()
	runID := uuid.NewString()
	logger.Info("starting benchmark run %s", runID)

	harness := report.NewHarness(logger, cfg.Workload.Seed, cfg.Report.QueryCount)

	for _, scale := range cfg.Workload.Scales {
		logger.Info("--- scale: %d files ---", scale)

		result, err := harness.Run(ctx, scale)
		if err != nil {
			return err
		}

		if results != nil {
			if err := results.SaveResult(ctx, runID, result); err != nil {
				return fmt.Errorf("failed to save result: %w", err)
			}
		}
	}

	logger.Info("--- concurrent phase ---")
	concurrent, err := harness.RunConcurrent(ctx,
		cfg.Report.ConcurrentScale, cfg.Report.Workers, cfg.Report.OpsPerWorker)
	if err != nil {
		return err
	}

	if results != nil {
		if err := results.SaveConcurrent(ctx, runID, concurrent); err != nil {
			return fmt.Errorf("failed to save concurrent result: %w", err)
		}
	}

	logger.Info("benchmark run %s complete", runID)
	return nil
}
