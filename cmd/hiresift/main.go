// Command hiresift answers boolean queries against a local resume corpus.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hiresift/hiresift/internal/adapters/driven/config/file"
	"github.com/hiresift/hiresift/internal/adapters/driven/storage/memory"
	"github.com/hiresift/hiresift/internal/adapters/driven/storage/sqlite"
	"github.com/hiresift/hiresift/internal/adapters/driving/cli"
	"github.com/hiresift/hiresift/internal/core/ports/driven"
	"github.com/hiresift/hiresift/internal/core/services"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hiresift: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := file.NewConfigStore(os.Getenv("HIRESIFT_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var store driven.ResumeStore
	if cfg.GetString("storage.backend") == "memory" {
		store = memory.NewResumeStore()
	} else {
		s, err := sqlite.NewStore(cfg.GetString("storage.data_dir"))
		if err != nil {
			return fmt.Errorf("opening corpus store: %w", err)
		}
		defer s.Close()
		store = s
	}

	cli.SetServices(
		services.NewSearchService(store),
		services.NewCorpusService(store),
	)
	cli.SetVersion(version)

	return cli.Execute(ctx)
}
