package infra

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/workerpool"
)

//go:generate minimock -i CacheManager,PoolInspector -o ./mock -s _mock.go -p mock

type CacheManager interface {
	GetCacheStats() map[string]int
	ClearCache()
	CleanupExpired()
}

type PoolInspector interface {
	Stats() workerpool.Stats
}

type AdminServer struct {
	srv          *http.Server
	pool         PoolInspector
	cacheManager CacheManager
}

// NewAdmin serves pool stats, resource cache control and Prometheus metrics.
// pool and cacheManager may be nil.
func NewAdmin(addr string, pool PoolInspector, cacheManager CacheManager) *AdminServer {
	as := &AdminServer{
		pool:         pool,
		cacheManager: cacheManager,
	}

	r := chi.NewRouter()
	r.Get("/stats", as.handleStats)
	r.Get("/cache/stats", as.handleCacheStats)
	r.Post("/cache/clear", as.handleCacheClear)
	r.Post("/cache/cleanup", as.handleCacheCleanup)
	r.Handle("/metrics", promhttp.Handler())

	as.srv = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
	return as
}

func (a *AdminServer) Handler() http.Handler {
	return a.srv.Handler
}

func (a *AdminServer) handleStats(w http.ResponseWriter, r *http.Request) {
	if a.pool == nil {
		http.Error(w, "worker pool not running", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, a.pool.Stats())
}

func (a *AdminServer) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	if a.cacheManager == nil {
		http.Error(w, "cache not available", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, a.cacheManager.GetCacheStats())
}

func (a *AdminServer) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	if a.cacheManager == nil {
		http.Error(w, "cache not available", http.StatusServiceUnavailable)
		return
	}

	a.cacheManager.ClearCache()

	if _, err := w.Write([]byte("cache cleared")); err != nil {
		slog.Warn("admin write failed", "error", err)
	}
}

func (a *AdminServer) handleCacheCleanup(w http.ResponseWriter, r *http.Request) {
	if a.cacheManager == nil {
		http.Error(w, "cache not available", http.StatusServiceUnavailable)
		return
	}

	a.cacheManager.CleanupExpired()

	if _, err := w.Write([]byte("expired cache entries cleaned")); err != nil {
		slog.Warn("admin write failed", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode admin response", "error", err)
		http.Error(w, "encoding error", http.StatusInternalServerError)
	}
}

// Run serves until Shutdown is called.
func (a *AdminServer) Run() error {
	slog.Info("admin HTTP listening", "addr", a.srv.Addr)
	if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *AdminServer) Shutdown(ctx context.Context) {
	if err := a.srv.Shutdown(ctx); err != nil {
		slog.Warn("admin shutdown error", "error", err)
	}
}
