package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/quickly-quiz/auth"
	"github.com/danielhkuo/quickly-quiz/catalog"
	"github.com/danielhkuo/quickly-quiz/cliparse"
	"github.com/danielhkuo/quickly-quiz/credentials"
	"github.com/danielhkuo/quickly-quiz/db"
	"github.com/danielhkuo/quickly-quiz/kvstore"
	"github.com/danielhkuo/quickly-quiz/responses"
	"github.com/danielhkuo/quickly-quiz/router"
	"github.com/danielhkuo/quickly-quiz/session"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Open the key-value store
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("store setup failed", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer closeStore()
	slog.Info("Store ready", "backend", cfg.StoreBackend)

	// Restore the session context from the last run
	sessions := session.NewManager(store)
	sc, err := sessions.Load(ctx)
	if err != nil {
		slog.Error("session load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Session restored", "current_user", sc.CurrentUser, "dark_mode", sc.DarkMode)

	// Create router
	mux := router.NewRouter(router.Deps{
		Tests:     catalog.New(store, cfg.PublicURL),
		Responses: responses.New(store),
		Accounts:  credentials.New(store, cfg.BcryptCost),
		Sessions:  sessions,
		Tokens:    auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL),
	}, cfg)

	// Create server
	server := http.Server{
		Handler:           mux,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal, then let in-flight requests finish
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "public_url", cfg.PublicURL)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}

// openStore builds the configured backend. The returned func releases it.
func openStore(ctx context.Context, cfg cliparse.Config) (kvstore.Store, func(), error) {
	noop := func() {}

	switch cfg.StoreBackend {
	case cliparse.StoreMemory:
		return kvstore.NewMemoryStore(), noop, nil
	case cliparse.StoreFile:
		s, err := kvstore.NewFileStore(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	default:
		conn, err := db.Open(ctx, db.Driver(cfg.StoreBackend), cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return kvstore.NewSQLStore(conn), func() { conn.Close() }, nil
	}
}
