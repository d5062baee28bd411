// Command server exposes the sintaxis analyzer as a JSON REST API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment; see internal/config.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/gramatica-es/sintaxis"
	"github.com/gramatica-es/sintaxis/internal/config"
	"github.com/gramatica-es/sintaxis/internal/httpapi"
	"github.com/gramatica-es/sintaxis/internal/logger"
	"github.com/gramatica-es/sintaxis/store"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log)

	src, closeSrc, err := lexiconSource(cfg.Lexicon)
	if err != nil {
		return err
	}
	defer closeSrc()

	log.Info("loading lexicon", slog.String("path", cfg.Lexicon.Path), slog.String("store", cfg.Lexicon.StoreDir))
	analyzer, err := sintaxis.New(ctx, src,
		sintaxis.WithLogger(log),
		sintaxis.WithCacheSize(cfg.Lexicon.CacheSize),
		sintaxis.WithPolicy(cfg.Lexicon.ParsedPolicy()),
	)
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}
	log.Info("lexicon loaded", slog.String("forms", humanize.Comma(int64(analyzer.Lexicon().Total()))))

	handler := httpapi.NewHandler(analyzer, *cfg, version, log)
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler.Routes(cfg.CORS),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", slog.String("addr", srv.Addr), slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// lexiconSource picks the BadgerDB snapshot when a store directory is
// configured and the JSON file otherwise.
func lexiconSource(cfg config.LexiconConfig) (sintaxis.LexiconSource, func(), error) {
	if cfg.StoreDir == "" {
		return sintaxis.JSONFile(cfg.Path), func() {}, nil
	}
	st, err := store.Open(cfg.StoreDir)
	if err != nil {
		return nil, nil, err
	}
	return st, func() { st.Close() }, nil
}
