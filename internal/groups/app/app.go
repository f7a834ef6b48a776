package app

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

	httpapi "github.com/aussiebroadwan/kitty/internal/groups/http"
	"github.com/aussiebroadwan/kitty/internal/groups/notify"
	"github.com/aussiebroadwan/kitty/internal/groups/service"
	"github.com/aussiebroadwan/kitty/internal/groups/store"
	"github.com/aussiebroadwan/kitty/internal/groups/store/drivers/sqlite"
	"github.com/aussiebroadwan/kitty/pkg/jwtx"
	"github.com/aussiebroadwan/kitty/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the groups service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db        store.Store
	keys      *jwtx.KeySet
	verifier  jwtx.Verifier
	refresher *jwtx.KeySetRefresher // nil when keys come from AUTH_JWKS_JSON

	groupService *service.GroupService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "groups-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initKeys(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	if app.refresher != nil {
		// A cold start without keys is tolerated, /readyz reports it until
		// the next tick succeeds.
		_ = app.refresher.Start(context.Background())
	}

	app.logger.Info("groups service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down groups service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.refresher != nil {
		app.refresher.Stop()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("groups service stopped")
	return nil
}

// initDatabase opens the database and applies migrations.
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

// initKeys prepares the verification key set. An inline JWKS wins over the
// URL and is loaded once.
func (app *Application) initKeys() error {
	app.keys = jwtx.NewKeySet()
	app.verifier = jwtx.NewVerifier(app.keys, jwtx.VerifyOptions{
		Issuer:   app.cfg.Issuer,
		Audience: app.cfg.Audience,
		Leeway:   30 * time.Second,
	})

	if app.cfg.JWKSJSON != "" {
		if err := jwtx.LoadJWKSJSON(app.keys, app.cfg.JWKSJSON); err != nil {
			return fmt.Errorf("failed to load AUTH_JWKS_JSON: %w", err)
		}
		app.logger.Info("verification keys loaded from config", "keys", len(app.keys.Snapshot().Keys))
		return nil
	}

	app.refresher = jwtx.NewKeySetRefresher(app.keys, app.cfg.JWKSURL, app.cfg.JWKSRefreshInterval, app.logger)
	return nil
}

// initServices builds the business services.
func (app *Application) initServices() {
	var dispatcher service.NotificationDispatcher = notify.LogDispatcher{}
	if app.cfg.WebhookURL != "" {
		dispatcher = notify.NewWebhookDispatcher(app.cfg.WebhookURL)
		app.logger.Info("invite notifications via webhook", "url", app.cfg.WebhookURL)
	} else {
		app.logger.Warn("GROUPS_NOTIFY_WEBHOOK_URL not set, invite notifications are only logged")
	}

	invitations := &service.InvitationService{
		Store:      app.db,
		CodeLength: app.cfg.CodeLength,
	}

	app.groupService = &service.GroupService{
		Store:         app.db,
		Invitations:   invitations,
		Notifier:      dispatcher,
		InviteTTL:     app.cfg.InviteTTL,
		InviteBaseURL: app.cfg.InviteBaseURL,
	}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)
	router.GroupService = app.groupService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
