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

	"github.com/opengamebackend/auth/internal/auth/domain"
	httpapi "github.com/opengamebackend/auth/internal/auth/http"
	"github.com/opengamebackend/auth/internal/auth/provider"
	"github.com/opengamebackend/auth/internal/auth/service"
	"github.com/opengamebackend/auth/internal/auth/store"
	"github.com/opengamebackend/auth/internal/auth/store/drivers/sqlite"
	"github.com/opengamebackend/auth/pkg/jwtx"
	"github.com/opengamebackend/auth/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the auth service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db        store.Store
	providers *provider.Registry

	// Services
	authService       *service.AuthService
	tokenService      *service.TokenService
	playersService    *service.PlayersService
	secretKeysService *service.SecretKeysService
	rolesService      *service.RolesService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
// The role catalog is seeded here so the login engine never sees a missing
// well-known role.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "player-auth",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initProviders(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.seedRoles(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion)

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
	app.logger.Info("shutting down auth service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
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

// initProviders builds the fixed auth provider registry. The github provider
// is only registered when a complete app configuration is present.
func (app *Application) initProviders() error {
	providers := []provider.AuthProvider{
		provider.NewAnonymous(),
		provider.NewServer(app.db),
	}

	if app.cfg.GithubEnabled() {
		github, err := provider.NewGithub(provider.GithubConfig{
			ClientID:     app.cfg.GithubClientID,
			ClientSecret: app.cfg.GithubClientSecret,
			RedirectURI:  app.cfg.GithubRedirectURI,
		})
		if err != nil {
			return fmt.Errorf("failed to configure github provider: %w", err)
		}
		providers = append(providers, github)
		app.logger.Info("github auth provider enabled")
	}

	app.providers = provider.NewRegistry(providers...)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	signer, err := jwtx.NewHS512([]byte(app.cfg.JWTSecret), app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}

	app.tokenService = &service.TokenService{
		Signer: signer,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.AccessTokenTTL,
	}
	app.authService = &service.AuthService{
		Store:     app.db,
		Providers: app.providers,
	}
	app.playersService = &service.PlayersService{Store: app.db}
	app.secretKeysService = &service.SecretKeysService{Store: app.db}
	app.rolesService = &service.RolesService{Store: app.db}

	return nil
}

// seedRoles ensures the well-known roles plus any configured extras exist.
func (app *Application) seedRoles() error {
	names := append(
		[]string{domain.RoleUser, domain.RoleAdmin, domain.RoleServer},
		app.cfg.ExtraRoles...,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.rolesService.EnsureRoles(slogx.WithContext(ctx, app.logger), names...); err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	// Wire services to router
	router.AuthService = app.authService
	router.TokenService = app.tokenService
	router.PlayersService = app.playersService
	router.SecretKeysService = app.secretKeysService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
