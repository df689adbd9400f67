package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/customscore/internal/adapter/http/handler"
	"github.com/iho/customscore/internal/adapter/http/middleware"
	"github.com/iho/customscore/internal/infrastructure/metrics"
	"github.com/iho/customscore/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	DeclarationHandler *handler.DeclarationHandler
	MRNHandler         *handler.MRNHandler
	GuaranteeHandler   *handler.GuaranteeHandler
	TraceHandler       *handler.TraceHandler
	DutyHandler        *handler.DutyHandler
	HealthHandler      *handler.HealthHandler

	Logger           zerolog.Logger
	Metrics          *metrics.Metrics
	MetricsHandler   http.Handler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Group(func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL).Wrap)
		}

		r.Route("/customs", func(r chi.Router) {
			r.Route("/declarations", func(r chi.Router) {
				r.Post("/", cfg.DeclarationHandler.Submit)
				r.Post("/validate", cfg.DeclarationHandler.Validate)
				r.Get("/{id}", cfg.DeclarationHandler.Get)
				r.Post("/{id}/accept", cfg.DeclarationHandler.Accept)
			})

			r.Get("/mrn-registry", cfg.MRNHandler.List)
			r.Post("/mrn-registry/{mrn}/usage", cfg.MRNHandler.RecordUsage)
		})

		r.Route("/guarantee", func(r chi.Router) {
			r.Post("/accounts", cfg.GuaranteeHandler.CreateAccount)
			r.Get("/accounts/{id}", cfg.GuaranteeHandler.GetAccount)
			r.Get("/accounts/{id}/exposure", cfg.GuaranteeHandler.Exposure)
			r.Get("/active-debits", cfg.GuaranteeHandler.ActiveDebits)
			r.Post("/debit", cfg.GuaranteeHandler.Debit)
			r.Post("/credit", cfg.GuaranteeHandler.Credit)
		})

		r.Route("/traceability", func(r chi.Router) {
			r.Get("/trace-forward", cfg.TraceHandler.Forward)
			r.Get("/trace-backward", cfg.TraceHandler.Backward)
			r.Get("/trace-full", cfg.TraceHandler.FullPath)
			r.Get("/genealogy/{batchNumber}", cfg.TraceHandler.Genealogy)
			r.Post("/genealogy/{batchNumber}/rebuild", cfg.TraceHandler.RebuildGenealogy)
			r.Post("/links", cfg.TraceHandler.RecordLink)
			r.Get("/duty-allocation/{mrn}", cfg.DutyHandler.Allocate)
		})
	})

	return r
}
