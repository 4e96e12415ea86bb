package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"PerfumeShop/internal/config"
	"PerfumeShop/internal/perfume"
	"PerfumeShop/pkg/kit"
)

func main() {
	service := "perfumes"

	cfg, err := config.Load(getenv("CONFIG_FILE", "config.yaml"), ".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := kit.NewLogger(service, cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("config loaded", zap.Stringer("config", cfg))

	store := newStore(cfg.Seed, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	h := perfume.NewHandler(&perfume.Server{Store: store, Log: log}, perfume.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
		WriteLimit:     cfg.RateLimit.Writes,
		WriteWindow:    cfg.RateLimit.Window,
		TrustProxy:     cfg.RateLimit.TrustProxy,
	})

	srvCfg := kit.ServerConfig{
		Addr:              cfg.Addr(),
		ReadTimeout:       cfg.HTTP.Timeout.Read,
		WriteTimeout:      cfg.HTTP.Timeout.Write,
		IdleTimeout:       cfg.HTTP.Timeout.Idle,
		ReadHeaderTimeout: cfg.HTTP.Timeout.Header,
		ShutdownTimeout:   cfg.HTTP.Timeout.Shutdown,
	}
	if err := kit.RunHTTPServer(context.Background(), srvCfg, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func newStore(seed config.SeedConfig, log *zap.Logger) *perfume.MemStore {
	if !seed.Enabled {
		return perfume.NewMemStore()
	}
	store := perfume.NewStore()
	logCatalog(log, store)
	return store
}

func logCatalog(log *zap.Logger, store perfume.Store) {
	perfumes, _ := store.List(context.Background())
	log.Info("all perfumes have been saved", zap.Int("count", len(perfumes)))
	for _, p := range perfumes {
		log.Info("seeded", zap.Stringer("perfume", p))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
