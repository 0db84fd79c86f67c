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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpapi "github.com/aussiebroadwan/intake/internal/intake/http"
	"github.com/aussiebroadwan/intake/internal/intake/metrics"
	"github.com/aussiebroadwan/intake/internal/intake/service"
	"github.com/aussiebroadwan/intake/internal/intake/store"
	"github.com/aussiebroadwan/intake/internal/intake/store/drivers/postgres"
	"github.com/aussiebroadwan/intake/internal/intake/store/drivers/sqlite"
	"github.com/aussiebroadwan/intake/pkg/cryptox"
	"github.com/aussiebroadwan/intake/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	// ssnKeyInfo separates the SSN key from any other key derived from the
	// same master key.
	ssnKeyInfo = "intake/client-ssn/v1"
)

// Application encapsulates the intake service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	cipher   *cryptox.FieldCipher
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	// Services
	firmService      *service.FirmService
	clientService    *service.ClientService
	reconcileService *service.ReconcileService
	auditRecorder    *service.AuditRecorder

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "intake-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	ctx := context.Background()
	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}
	if err := app.initCipher(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initMetrics()
	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	if err := app.seedFirms(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()
	app.auditRecorder.Start()

	return app, nil
}

// Handler exposes the router, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("intake service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.auditRecorder.Stop()
		_ = app.db.Close()
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

// Shutdown gracefully shuts down the application. In-flight imports finish
// before the audit recorder drains and the database closes.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down intake service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.auditRecorder.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("intake service stopped")
	return nil
}

// initDatabase opens the configured driver and applies migrations
func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL)
	default:
		db, err = sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initCipher derives the SSN field key from the master key
func (app *Application) initCipher() error {
	master, source, err := cryptox.LoadMasterKey(app.cfg.MasterKeyPath)
	if err != nil {
		return fmt.Errorf("failed to load master key: %w", err)
	}
	if source == cryptox.KeySourceEphemeral {
		app.logger.Warn("no master key configured, using an ephemeral key; stored SSNs will be unreadable after restart")
	}

	cipher, err := cryptox.NewFieldCipher(master, ssnKeyInfo)
	if err != nil {
		return fmt.Errorf("failed to initialize SSN cipher: %w", err)
	}
	app.cipher = cipher
	app.logger.Info("SSN cipher ready", "key_source", string(source))
	return nil
}

func (app *Application) initMetrics() {
	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.New(app.registry)
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	mode, err := service.ParseOrphanLookupMode(app.cfg.OrphanLookup)
	if err != nil {
		return err
	}

	app.firmService = &service.FirmService{Store: app.db}
	app.clientService = &service.ClientService{Store: app.db}
	app.auditRecorder = service.NewAuditRecorder(app.db, app.logger, app.metrics, app.cfg.AuditBuffer)
	app.reconcileService = &service.ReconcileService{
		Phones:  service.NewPhoneFilter(),
		Matcher: &service.Matcher{OrphanLookup: mode},
		Cipher:  app.cipher,
		Audit:   app.auditRecorder,
		Metrics: app.metrics,
	}
	return nil
}

// seedFirms upserts the firms listed in INTAKE_FIRMS_FILE, if any
func (app *Application) seedFirms(ctx context.Context) error {
	if app.cfg.FirmsFile == "" {
		return nil
	}

	firms, err := LoadFirmsFile(app.cfg.FirmsFile)
	if err != nil {
		return err
	}
	ctx = slogx.WithContext(ctx, app.logger)
	if err := SeedFirms(ctx, app.firmService, firms); err != nil {
		return err
	}

	app.logger.Info("firms seeded", "count", len(firms), "file", app.cfg.FirmsFile)
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.registry, app.logger)

	router.FirmService = app.firmService
	router.ClientService = app.clientService
	router.ReconcileService = app.reconcileService
	router.LegacyFirmID = app.cfg.LegacyFirmID
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
