package server

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/config"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/metrics"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/workerpool"
)

//go:generate minimock -i Executor,ConnHandler -o ./mock -s _mock.go -p mock

const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

// Executor runs jobs off the accept loop.
type Executor interface {
	Execute(job workerpool.Job) error
}

type ConnHandler interface {
	ServeConn(conn net.Conn)
}

type Config struct {
	Address    string
	Mode       string
	RateLimit  int64
	RatePeriod time.Duration
}

// Server accepts connections and hands each one to the pool, or serves it
// inline in serial mode.
type Server struct {
	cfg     Config
	handler ConnHandler
	pool    Executor
	limiter *limiter.Limiter
	metrics metrics.Provider
	logger  *slog.Logger

	mu       sync.Mutex
	listener net.Listener
}

type Option func(*Server)

func WithMetrics(m metrics.Provider) Option {
	return func(s *Server) {
		if m != nil {
			s.metrics = m
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(cfg Config, handler ConnHandler, pool Executor, opts ...Option) (*Server, error) {
	if cfg.Mode == "" {
		cfg.Mode = config.ModePooled
	}
	if cfg.Mode == config.ModePooled && pool == nil {
		return nil, errors.New("pooled mode requires a worker pool")
	}

	s := &Server{
		cfg:     cfg,
		handler: handler,
		pool:    pool,
		metrics: metrics.NewNoOpProvider(),
		logger:  slog.Default(),
	}
	if cfg.RateLimit > 0 {
		s.limiter = limiter.New(memory.NewStore(), limiter.Rate{Period: cfg.RatePeriod, Limit: cfg.RateLimit})
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return errors.Wrapf(err, "listen %s", s.cfg.Address)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	s.logger.Info("listening", "addr", ln.Addr().String(), "mode", s.cfg.Mode)
	return nil
}

// Addr returns the bound address, or "" before Listen.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve runs the accept loop until ctx is done or Close is called. It returns
// an error only when a connection cannot be handed to the pool.
func (s *Server) Serve(ctx context.Context) error {
	if s.Addr() == "" {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()

	defer s.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-stop:
		}
	}()

	var delay time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			delay = acceptBackoff(delay)
			s.logger.Warn("accept failed; retrying", "error", err, "retry_in", delay)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(delay):
			}
			continue
		}
		delay = 0

		if err := s.dispatch(ctx, conn); err != nil {
			return err
		}
	}
}

// acceptBackoff doubles the previous retry delay within [minAcceptDelay, maxAcceptDelay].
func acceptBackoff(prev time.Duration) time.Duration {
	if prev == 0 {
		return minAcceptDelay
	}
	if next := prev * 2; next < maxAcceptDelay {
		return next
	}
	return maxAcceptDelay
}

func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return
	}
	if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		s.logger.Warn("listener close failed", "error", err)
	}
}

func (s *Server) dispatch(ctx context.Context, conn net.Conn) error {
	if !s.allow(ctx, conn) {
		s.metrics.ConnectionDispatched("limited")
		_ = conn.Close()
		return nil
	}

	if s.cfg.Mode == config.ModeSerial {
		s.metrics.ConnectionDispatched("serial")
		s.handler.ServeConn(conn)
		return nil
	}

	err := s.pool.Execute(workerpool.JobFunc(func() {
		s.handler.ServeConn(conn)
	}))
	if err != nil {
		s.metrics.ConnectionDispatched("rejected")
		_ = conn.Close()
		s.logger.Error("connection could not be handed to worker pool", "remote", conn.RemoteAddr().String(), "error", err)
		return errors.Wrap(err, "dispatch connection")
	}
	s.metrics.ConnectionDispatched("pooled")
	return nil
}

func (s *Server) allow(ctx context.Context, conn net.Conn) bool {
	if s.limiter == nil {
		return true
	}

	host, _, err := net.SplitHostPort(conn.RemoteAddr().String())
	if err != nil {
		host = conn.RemoteAddr().String()
	}

	limiterCtx, err := s.limiter.Get(ctx, host)
	if err != nil {
		s.logger.Warn("rate limiter failed", "remote", host, "error", err)
		return true
	}
	if limiterCtx.Reached {
		s.logger.Debug("connection rate limited", "remote", host)
		return false
	}
	return true
}
