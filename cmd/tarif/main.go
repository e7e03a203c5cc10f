// Command tarif is the interactive terminal cookbook.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/pageza/tarif-defteri/config"
	"github.com/pageza/tarif-defteri/internal/logging"
	"github.com/pageza/tarif-defteri/internal/service"
	"github.com/pageza/tarif-defteri/internal/storage"
	"github.com/pageza/tarif-defteri/internal/tui"
	"github.com/pageza/tarif-defteri/internal/view"
)

func main() {
	accessible := flag.Bool("accessible", os.Getenv("ACCESSIBLE") != "", "use plain line prompts instead of TUI widgets")
	flag.Parse()

	if err := run(*accessible); err != nil {
		fmt.Fprintln(os.Stderr, "tarif:", err)
		os.Exit(1)
	}
}

func run(accessible bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.StorageDir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage dir: %w", err)
	}
	logger, err := logging.NewFile(cfg, filepath.Join(cfg.StorageDir, "tarif.log"))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slot, closer, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := service.NewRecipeStore(slot, cfg.StorageKey,
		service.WithIDGenerator(service.NewIDGenerator(cfg.IDStrategy)),
		service.WithLogger(logger),
	)
	store.Load(ctx)

	styles := tui.DefaultStyles()
	ctrl := view.New(store,
		view.WithNotifier(tui.Notifier(os.Stdout, styles)),
		view.WithLogger(logger),
	)
	prompter := tui.NewHuhPrompter(os.Stdin, os.Stdout, accessible)

	err = tui.New(ctrl, prompter, os.Stdout, logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		logger.Error("terminal client stopped", zap.Error(err))
	}
	return err
}
