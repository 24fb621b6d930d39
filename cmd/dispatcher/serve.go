package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/config"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/handler"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/infra"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/metrics"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/server"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/tracing"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/workerpool"
	"gitlab.ozon.dev/safariproxd/dispatcher/pkg/cache"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

type serveOptions struct {
	configPath string
	workers    int
	mode       string
	addr       string
}

func newServeCmd() *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Accept connections and answer request lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "config/config.yaml", "Path to YAML config, empty for defaults")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Worker pool size (overrides config)")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "Dispatch mode: pooled or serial (overrides config)")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, opts serveOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if cmd.Flags().Changed("workers") {
		cfg.Server.Workers = opts.workers
	}
	if opts.mode != "" {
		cfg.Server.Mode = opts.mode
	}
	if opts.addr != "" {
		cfg.Server.Address = opts.addr
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validate config")
	}

	shutdownTracing := tracing.Init(tracing.Config{
		Enabled:  cfg.Tracing.Enabled,
		Endpoint: cfg.Tracing.Endpoint,
	})
	defer shutdownTracing()

	provider := metrics.NewPrometheusProvider()

	h := handler.New(os.DirFS(cfg.Resources.Dir), handler.Config{
		SleepDelay:  cfg.Resources.SleepDelay,
		ReadTimeout: cfg.Server.ReadTimeout,
		Cache: cache.Config{
			MaxSize: cfg.Resources.CacheSize,
			TTL:     cfg.Resources.CacheTTL,
		},
	}, handler.WithMetrics(provider))

	var (
		pool      *workerpool.Pool
		executor  server.Executor
		inspector infra.PoolInspector
	)
	if cfg.Server.Mode == config.ModePooled {
		pool, err = workerpool.Build(cfg.Server.Workers, workerpool.WithMetrics(provider))
		if err != nil {
			return errors.Wrap(err, "build worker pool")
		}
		executor, inspector = pool, pool
	}

	srv, err := server.New(server.Config{
		Address:    cfg.Server.Address,
		Mode:       cfg.Server.Mode,
		RateLimit:  cfg.Server.RateLimit,
		RatePeriod: cfg.Server.RatePeriod,
	}, h, executor, server.WithMetrics(provider))
	if err != nil {
		return multierr.Append(err, closePool(pool))
	}
	if err := srv.Listen(); err != nil {
		return multierr.Append(err, closePool(pool))
	}

	admin := infra.NewAdmin(cfg.Admin.Address, inspector, h)

	runCtx, stopRun := context.WithCancel(cmd.Context())
	defer stopRun()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error { return srv.Serve(gctx) })
	g.Go(admin.Run)
	g.Go(func() error {
		cleanupCache(gctx, h, cfg.Resources.CleanupInterval)
		return nil
	})

	infra.Graceful(gctx, cfg.ShutdownTimeout,
		func(ctx context.Context) { stopRun() },
		admin.Shutdown,
	)

	// the accept loop has returned once g.Wait does, so no job can race Close
	err = g.Wait()
	return multierr.Append(err, closePool(pool))
}

func closePool(pool *workerpool.Pool) error {
	if pool == nil {
		return nil
	}
	return pool.Close()
}

func cleanupCache(ctx context.Context, h *handler.Handler, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.CleanupExpired()
			slog.Debug("resource cache cleanup completed", "stats", h.GetCacheStats())
		}
	}
}
