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

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	httpAdapter "github.com/iho/customscore/internal/adapter/http"
	"github.com/iho/customscore/internal/adapter/http/handler"
	"github.com/iho/customscore/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/customscore/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/customscore/internal/adapter/repository/redis"
	"github.com/iho/customscore/internal/infrastructure/config"
	"github.com/iho/customscore/internal/infrastructure/eventpublisher"
	"github.com/iho/customscore/internal/infrastructure/logger"
	"github.com/iho/customscore/internal/infrastructure/metrics"
	"github.com/iho/customscore/internal/infrastructure/postgres"
	"github.com/iho/customscore/internal/infrastructure/redis"
	"github.com/iho/customscore/internal/usecase"
	"github.com/iho/customscore/internal/validation"
)

const (
	serviceName         = "customscore"
	limiterCleanupEvery = 10 * time.Minute
	limiterIdleAfter    = 30 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(loggerConfig(cfg))
	zerolog.DefaultContextLogger = &log

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(log.WithContext(ctx), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func loggerConfig(cfg *config.Config) logger.Config {
	return logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
	}
}

// run wires the service and blocks until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(ctx, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()
	app := wire(cfg, pool, redisClient, m)

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: app.outboxRepo,
		Publisher:  redisRepo.NewStreamPublisher(redisClient, cfg.OutboxStream, cfg.OutboxStreamMax, m),
		Logger:     log,
		Metrics:    m,
		BatchSize:  cfg.OutboxBatchSize,
		Interval:   cfg.OutboxInterval,
		Retention:  cfg.OutboxRetention,
	})

	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	go func() {
		if err := publisher.Start(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("event publisher stopped")
		}
	}()

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go sweepLimiters(workerCtx, limiter)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		DeclarationHandler: handler.NewDeclarationHandler(app.declarations),
		MRNHandler:         handler.NewMRNHandler(app.mrns),
		GuaranteeHandler:   handler.NewGuaranteeHandler(app.guarantees),
		TraceHandler:       handler.NewTraceHandler(app.traces),
		DutyHandler:        handler.NewDutyHandler(app.duty),
		HealthHandler: handler.NewHealthHandler(
			pool,
			handler.PingerFunc(func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }),
		),
		Logger:           log,
		Metrics:          m,
		IdempotencyStore: redisRepo.NewIdempotencyStore(redisClient, m),
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      limiter,
	})

	server := newHTTPServer(cfg, router)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

type application struct {
	outboxRepo   usecase.OutboxRepository
	declarations *usecase.DeclarationUseCase
	guarantees   *usecase.GuaranteeUseCase
	mrns         *usecase.MRNUseCase
	traces       *usecase.TraceUseCase
	duty         *usecase.DutyUseCase
}

// wire builds repositories and use cases over the shared pool.
func wire(cfg *config.Config, pool *pgxpool.Pool, redisClient *goredis.Client, m *metrics.Metrics) *application {
	txManager := postgresRepo.NewTxManager(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(postgresRepo.WithRetryHook(func(int, error) {
		m.DBErrors.WithLabelValues("retry").Inc()
	}))

	accountRepo := postgresRepo.NewGuaranteeAccountRepository(pool)
	entryRepo := postgresRepo.NewLedgerEntryRepository(pool)
	declRepo := postgresRepo.NewDeclarationRepository(pool)
	mrnRepo := postgresRepo.NewMRNRepository(pool)
	linkRepo := postgresRepo.NewTraceLinkRepository(pool)
	genealogyRepo := postgresRepo.NewGenealogyRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	auditRepo := postgresRepo.NewAuditRepository(pool)
	references := postgresRepo.NewReferenceRepository(pool)

	cachedRefs := redisRepo.NewCachedReference(references, redisRepo.NewCache(redisClient, m), cfg.ReferenceCacheTTL)
	pipeline := validation.NewPipeline(validation.DefaultRegistry(), cachedRefs, m)

	guarantees := usecase.NewGuaranteeUseCase(txManager, accountRepo, entryRepo, outboxRepo, auditRepo, idGen, retrier, m)
	mrns := usecase.NewMRNUseCase(txManager, mrnRepo, outboxRepo, auditRepo, idGen, retrier, m)

	return &application{
		outboxRepo: outboxRepo,
		declarations: usecase.NewDeclarationUseCase(
			txManager, declRepo, mrnRepo, outboxRepo, auditRepo,
			pipeline, cachedRefs, guarantees, idGen, retrier, m, cfg.MRNValidity,
		),
		guarantees: guarantees,
		mrns:       mrns,
		traces: usecase.NewTraceUseCase(
			txManager, linkRepo, genealogyRepo, outboxRepo, auditRepo,
			mrns, idGen, m, cfg.TraceMaxExpansions,
		),
		duty: usecase.NewDutyUseCase(declRepo, mrnRepo, linkRepo, m),
	}
}

func newHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      h,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
}

func sweepLimiters(ctx context.Context, limiter *middleware.RateLimiter) {
	ticker := time.NewTicker(limiterCleanupEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := limiter.Cleanup(limiterIdleAfter); removed > 0 {
				zerolog.Ctx(ctx).Debug().Int("removed", removed).Msg("rate limiters swept")
			}
		}
	}
}
