package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/erp/stockview/internal/application/views"
	"github.com/erp/stockview/internal/infrastructure/config"
	"github.com/erp/stockview/internal/infrastructure/logger"
	"github.com/erp/stockview/internal/interfaces/dataset"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if err := run(cfg, log); err != nil {
		log.Error("stockview failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	log.Info("loading dataset",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("dir", cfg.Dataset.Dir),
	)

	ds, err := dataset.Load(context.Background(), dataset.NewFileSource(cfg.Dataset.Dir))
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	var opts []views.Option
	if len(cfg.Views.LocationUsages) > 0 {
		opts = append(opts, views.WithLocationUsages(cfg.Views.LocationUsages...))
	}

	set := views.NewComposer(log, opts...).Compose(ds, time.Now().UTC())

	return emit(cfg, set)
}

// emit marshals either the full view set or its summary to stdout.
func emit(cfg *config.Config, set *views.ViewSet) error {
	var payload any = set
	if cfg.Views.Output == "summary" {
		payload = set.Summary()
	}

	enc := json.NewEncoder(os.Stdout)
	if cfg.Views.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
