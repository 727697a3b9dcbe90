package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-queue/internal/db"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/events"
	infraRepo "github.com/BruksfildServices01/barber-queue/internal/infra/repository"
	"github.com/BruksfildServices01/barber-queue/internal/logging"
	"github.com/BruksfildServices01/barber-queue/internal/metrics"
	"github.com/BruksfildServices01/barber-queue/internal/routes"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-queue/internal/usecase/appointment"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg)
	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, logger *zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics.Register()

	// ======================================================
	// STORAGE
	// ======================================================
	var (
		repo domain.Repository
		db   *gorm.DB
	)
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		var err error
		if db, err = dbpkg.NewDB(cfg, logger); err != nil {
			return err
		}
		repo = infraRepo.NewGormRepository(db)
	default:
		logger.Warn().Msg("using in-memory storage, data is lost on restart")
		repo = infraRepo.NewMemoryRepository()
	}

	if cfg.RedisAddr != "" {
		client := infraRepo.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer client.Close()

		if err := infraRepo.Ping(ctx, client); err != nil {
			logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, schedule cache will fall through")
		}
		repo = infraRepo.NewCachedRepository(repo, client, cfg.ScheduleCacheTTL, logger)
	}

	// ======================================================
	// EVENTS
	// ======================================================
	bus := events.NewBus(256, logger)
	bus.OnDrop(metrics.IncDroppedEvent)

	auditLogger := audit.New(db, logger)
	auditLogger.Subscribe(bus)

	// ======================================================
	// HTTP
	// ======================================================
	deps := ucAppointment.Deps{
		Repo:            repo,
		Events:          bus,
		Clock:           timezone.SystemClock{},
		Policy:          domain.Policy(cfg.Policy),
		Logger:          logger,
		DefaultTimezone: cfg.DefaultTimezone,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, cfg, deps, auditLogger, logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr()).Str("storage", cfg.StorageDriver).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
	// drain pending audit events after the last request finished
	bus.Close()

	return nil
}
