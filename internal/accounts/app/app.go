package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/aussiebroadwan/campuspass/internal/accounts/attempt"
	"github.com/aussiebroadwan/campuspass/internal/accounts/domain"
	httpapi "github.com/aussiebroadwan/campuspass/internal/accounts/http"
	"github.com/aussiebroadwan/campuspass/internal/accounts/notify"
	"github.com/aussiebroadwan/campuspass/internal/accounts/service"
	"github.com/aussiebroadwan/campuspass/internal/accounts/store"
	"github.com/aussiebroadwan/campuspass/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/campuspass/pkg/cryptox"
	"github.com/aussiebroadwan/campuspass/pkg/jwtx"
	"github.com/aussiebroadwan/campuspass/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the account service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db      store.Store
	signer  *jwtx.EdDSASigner
	tracker attempt.Tracker
	sender  notify.Sender

	// Services
	credentialService *service.CredentialService
	accountService    *service.AccountService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "accounts-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	// Signing key is ephemeral: tokens don't survive a restart, which is
	// acceptable for 8h sessions.
	signer, err := jwtx.NewEphemeralSigner("accounts-1", app.cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize signing key: %w", err)
	}
	app.signer = signer

	app.initCollaborators()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("accounts service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down accounts service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("accounts service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initCollaborators wires the attempt tracker and the notification sender.
func (app *Application) initCollaborators() {
	if app.cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     app.cfg.RedisAddr,
			Password: app.cfg.RedisPassword,
		})
		app.tracker = attempt.NewRedisTracker(client, app.cfg.MaxLoginAttempts, app.cfg.AttemptWindow)
		app.logger.Info("attempt tracking via redis", "addr", app.cfg.RedisAddr)
	} else {
		app.tracker = attempt.NewMemoryTracker(app.cfg.MaxLoginAttempts, app.cfg.AttemptWindow)
		app.logger.Info("attempt tracking in memory")
	}

	if app.cfg.SMTPHost != "" {
		app.sender = notify.NewSMTPSender(notify.SMTPConfig{
			Host:     app.cfg.SMTPHost,
			Port:     app.cfg.SMTPPort,
			Username: app.cfg.SMTPUsername,
			Password: app.cfg.SMTPPassword,
			From:     app.cfg.SMTPFrom,
		})
		app.logger.Info("recovery mail via smtp", "host", app.cfg.SMTPHost)
	} else {
		app.sender = notify.NewLogSender()
		app.logger.Warn("no smtp relay configured, recovery codes are logged only")
	}
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.credentialService = &service.CredentialService{
		Store:   app.db,
		Tracker: app.tracker,
	}

	app.accountService = &service.AccountService{
		Store:       app.db,
		Credentials: app.credentialService,
		OTP:         service.OTPEngine{},
		Notifier:    app.sender,
		Signer:      app.signer,
		Authorities: domain.DefaultAuthorities(),
		TokenTTL:    app.cfg.TokenTTL,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AccountService = app.accountService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
