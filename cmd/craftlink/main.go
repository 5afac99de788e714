package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/craftlink/craftlink/internal/api"
	"github.com/craftlink/craftlink/internal/cli"
	"github.com/craftlink/craftlink/internal/core/page"
	"github.com/craftlink/craftlink/internal/infrastructure/config"
	"github.com/craftlink/craftlink/internal/infrastructure/session"
	"github.com/craftlink/craftlink/pkg/logger"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "craftlink:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	store, err := session.NewStore(cfg.SessionFile, log)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}

	watcher, err := session.NewWatcher(store, log)
	if err != nil {
		return fmt.Errorf("watch session file: %w", err)
	}
	defer watcher.Close()
	watcher.Start(ctx)

	client := api.NewClient(cfg.APIBaseURL,
		func() string { return store.Current().Token },
		api.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		api.WithLogger(log),
	)

	app := cli.New(page.Deps{
		Backend: client,
		Session: store,
		Origin:  client.Origin(),
		Out:     os.Stdout,
		Logger:  log,
	}, version)

	return app.Root().ExecuteContext(ctx)
}
