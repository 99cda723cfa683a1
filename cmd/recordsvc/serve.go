package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"recordsvc/internal/server"
	"recordsvc/internal/shared"

	"github.com/spf13/cobra"
)

var (
	flagAddr    string
	flagVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the record service HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (default :8000, env RS_ADDR)")
	serveCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "log every request")
}

// resolveConfig layers config sources: flag > env > file > default.
func resolveConfig() (shared.ServerConfig, error) {
	cfg := shared.DefaultServerConfig()
	if flagConfig != "" {
		loaded, err := shared.LoadServerConfig(flagConfig)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if v := os.Getenv("RS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("RS_DB"); v != "" {
		cfg.DBPath = v
	}

	if flagAddr != "" {
		cfg.Addr = flagAddr
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	if flagVerbose {
		cfg.Verbose = true
	}

	return cfg, cfg.Validate()
}

func runServe() error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	var store server.Store
	switch cfg.DBPath {
	case "":
		store = server.NewMemStore()
		log.Printf("store: in-memory")
	default:
		if cfg.DBPath != ":memory:" {
			if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0700); err != nil {
					return err
				}
			}
		}
		db, err := server.OpenDB(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := server.RunMigrations(db); err != nil {
			return err
		}
		store = server.NewSQLiteStore(db)
		log.Printf("store: sqlite (%s)", cfg.DBPath)
	}

	api := &server.API{Store: store, Verbose: cfg.Verbose}
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("recordsvc listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	log.Printf("recordsvc stopped")
	return nil
}
