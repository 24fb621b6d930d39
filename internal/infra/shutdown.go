package infra

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"
)

// Graceful blocks until SIGINT/SIGTERM arrives or ctx is done, then runs cb in
// order, each sharing one deadline of timeout.
func Graceful(ctx context.Context, timeout time.Duration, cb ...func(context.Context)) {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()
	slog.Info("shutdown signal received", "cause", context.Cause(sigCtx))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	for _, f := range cb {
		f(shutdownCtx)
	}
	slog.Info("shutdown complete")
}
