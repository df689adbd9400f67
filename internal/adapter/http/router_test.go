package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/customscore/internal/adapter/http/handler"
	apimiddleware "github.com/iho/customscore/internal/adapter/http/middleware"
	"github.com/iho/customscore/internal/infrastructure/metrics"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_ServesMetrics(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "customs_http_requests_total") {
		t.Fatalf("expected http request counter in metrics output")
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	// Fails request validation before reaching the use case.
	req := httptest.NewRequest(http.MethodPost, "/guarantee/accounts", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
	if rec.Code != http.StatusBadRequest || !store.releaseCalled {
		t.Fatalf("expected rejected request to release its key, got %d released=%v", rec.Code, store.releaseCalled)
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"GET /metrics",
		"POST /customs/declarations/",
		"POST /customs/declarations/validate",
		"GET /customs/declarations/{id}",
		"POST /customs/declarations/{id}/accept",
		"GET /customs/mrn-registry",
		"POST /customs/mrn-registry/{mrn}/usage",
		"POST /guarantee/accounts",
		"GET /guarantee/accounts/{id}",
		"GET /guarantee/accounts/{id}/exposure",
		"GET /guarantee/active-debits",
		"POST /guarantee/debit",
		"POST /guarantee/credit",
		"GET /traceability/trace-forward",
		"GET /traceability/trace-backward",
		"GET /traceability/trace-full",
		"GET /traceability/genealogy/{batchNumber}",
		"POST /traceability/genealogy/{batchNumber}/rebuild",
		"POST /traceability/links",
		"GET /traceability/duty-allocation/{mrn}",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	reg := prometheus.NewRegistry()
	up := handler.PingerFunc(func(context.Context) error { return nil })

	cfg := RouterConfig{
		DeclarationHandler: handler.NewDeclarationHandler(nil),
		MRNHandler:         handler.NewMRNHandler(nil),
		GuaranteeHandler:   handler.NewGuaranteeHandler(nil),
		TraceHandler:       handler.NewTraceHandler(nil),
		DutyHandler:        handler.NewDutyHandler(nil),
		HealthHandler:      handler.NewHealthHandler(up, up),
		Logger:             zerolog.Nop(),
		Metrics:            metrics.NewWithRegisterer(reg),
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubIdempotencyStore struct {
	checkCalled   bool
	releaseCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}

func (s *stubIdempotencyStore) Release(ctx context.Context, key string) error {
	s.releaseCalled = true
	return nil
}
