package perfume

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"PerfumeShop/pkg/kit"
)

const readyTimeout = 1 * time.Second

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	// WriteLimit caps mutating requests per client IP within WriteWindow.
	// Zero disables the limiter.
	WriteLimit  int
	WriteWindow time.Duration
	// TrustProxy takes the client IP from X-Forwarded-For. Enable only
	// behind a proxy that overwrites the header.
	TrustProxy bool
}

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	srv := *s
	if srv.Log == nil {
		srv.Log = deps.Log
	}

	var writeMW []func(http.Handler) http.Handler
	if deps.WriteLimit > 0 {
		limiter := kit.NewIPRateLimiter(deps.WriteLimit, deps.WriteWindow)
		limiter.TrustForwardedFor = deps.TrustProxy
		writeMW = append(writeMW, limiter.Middleware)
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
	setupMetrics(r, srv.Store, deps)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", srv.readyz)

	r.Mount("/perfumes", srv.Routes(writeMW...))
	return r
}

func setupMetrics(r *chi.Mux, store Store, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	deps.Registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "perfumes_catalog_size",
			Help: "Number of perfumes currently held in the catalog",
		},
		func() float64 { return float64(store.Len()) },
	))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		if s.Log != nil {
			s.Log.Warn("readyz failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}
