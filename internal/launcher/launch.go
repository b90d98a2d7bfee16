// Package launcher wires configuration, logging and storage together
// and runs one of the two user-facing surfaces: the web server or the
// terminal client. Both share the same SQLite file, so either can be
// running while the other mutates the list.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/jmoiron/sqlx"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/logging"
	"github.com/thenoetrevino/lista/internal/tui"
	"github.com/thenoetrevino/lista/internal/web"
)

// openStore loads the configuration and opens the SQLite store at the
// configured path, falling back to the default location under the
// user's home directory.
func openStore(ctx context.Context) (*config.Config, *sqlx.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	dbPath := cfg.Database.Path
	if dbPath == "" {
		dbPath, err = database.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, db, nil
}

// Serve runs the web server until it fails or receives a shutdown
// signal, then drains in-flight requests before returning.
func Serve() error {
	logging.InitJSON()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	repo := database.NewRepository(db)
	application := app.New(repo)
	server := web.NewServer(application, db, cfg.Server)

	httpServer := &http.Server{
		Addr:              server.Addr(),
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- httpServer.ListenAndServe()
	}()
	slog.Info("listening", "addr", server.Addr())

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}

// LaunchTUI runs the terminal client until the user quits or a
// shutdown signal arrives.
func LaunchTUI() error {
	// Log to a file before anything else so slog output cannot land in
	// the middle of the rendered UI.
	if err := logging.InitFile(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	repo := database.NewRepository(db)
	application := app.New(repo)
	model := tui.NewModel(application.TodoService, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// Run in a goroutine so a shutdown signal can interrupt the UI.
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// Give an in-flight database write a moment to finish.
		time.Sleep(500 * time.Millisecond)
	}

	return nil
}
