package server

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/config"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/handler"
	metricsmock "gitlab.ozon.dev/safariproxd/dispatcher/internal/metrics/mock"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/server/mock"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/workerpool"
)

const sleepDelay = 300 * time.Millisecond

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type response struct {
	body    string
	elapsed time.Duration
	err     error
}

func newHandler() *handler.Handler {
	return handler.New(fstest.MapFS{
		handler.DefaultResource:  {Data: []byte("hello")},
		handler.NotFoundResource: {Data: []byte("not found")},
	}, handler.Config{SleepDelay: sleepDelay}, handler.WithLogger(quietLogger))
}

func startServer(t *testing.T, cfg Config, h ConnHandler, pool Executor, opts ...Option) (*Server, <-chan error) {
	t.Helper()

	cfg.Address = "127.0.0.1:0"
	srv, err := New(cfg, h, pool, append([]Option{WithLogger(quietLogger)}, opts...)...)
	require.NoError(t, err)
	require.NoError(t, srv.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx) }()
	t.Cleanup(cancel)
	return srv, served
}

func newPool(t *testing.T, size int) *workerpool.Pool {
	t.Helper()
	pool, err := workerpool.Build(size, workerpool.WithLogger(quietLogger))
	require.NoError(t, err)
	return pool
}

func request(addr, line string) response {
	start := time.Now()
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return response{err: err}
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(line + "\r\n")); err != nil {
		return response{err: err}
	}
	body, err := io.ReadAll(conn)
	return response{body: string(body), elapsed: time.Since(start), err: err}
}

func requestAsync(addr, line string) <-chan response {
	ch := make(chan response, 1)
	go func() { ch <- request(addr, line) }()
	return ch
}

func TestServer_Pooled(t *testing.T) {
	t.Parallel()

	pool := newPool(t, 2)
	srv, served := startServer(t, Config{Mode: config.ModePooled}, newHandler(), pool)

	resp := request(srv.Addr(), handler.RootRequest)
	require.NoError(t, resp.err)
	assert.Equal(t, "HTTP/1.1 200 OK\rContent-Length: 5\r\n\r\nhello", resp.body)

	resp = request(srv.Addr(), "GET /nope HTTP/1.1")
	require.NoError(t, resp.err)
	assert.Equal(t, "HTTP/1.1 404 NOT FOUND\rContent-Length: 9\r\n\r\nnot found", resp.body)

	srv.Close()
	require.NoError(t, <-served)
	require.NoError(t, pool.Close())
	assert.Equal(t, int64(2), pool.Stats().Executed)
}

func TestServer_PooledSlowRequestDoesNotStallOthers(t *testing.T) {
	t.Parallel()

	pool := newPool(t, 4)
	srv, served := startServer(t, Config{Mode: config.ModePooled}, newHandler(), pool)

	slow := requestAsync(srv.Addr(), handler.SleepRequest)
	require.Eventually(t, func() bool { return pool.Stats().Submitted == 1 }, time.Second, time.Millisecond)

	fast := request(srv.Addr(), handler.RootRequest)
	require.NoError(t, fast.err)
	assert.Less(t, fast.elapsed, sleepDelay)

	slowResp := <-slow
	require.NoError(t, slowResp.err)
	assert.True(t, strings.HasPrefix(slowResp.body, handler.StatusOK))
	assert.GreaterOrEqual(t, slowResp.elapsed, sleepDelay)

	srv.Close()
	require.NoError(t, <-served)
	require.NoError(t, pool.Close())
}

func TestServer_SerialSlowRequestStallsOthers(t *testing.T) {
	t.Parallel()

	srv, served := startServer(t, Config{Mode: config.ModeSerial}, newHandler(), nil)

	slow := requestAsync(srv.Addr(), handler.SleepRequest)
	time.Sleep(50 * time.Millisecond)

	fast := request(srv.Addr(), handler.RootRequest)
	require.NoError(t, fast.err)
	assert.True(t, strings.HasPrefix(fast.body, handler.StatusOK))
	assert.GreaterOrEqual(t, fast.elapsed, sleepDelay-100*time.Millisecond)

	require.NoError(t, (<-slow).err)

	srv.Close()
	require.NoError(t, <-served)
}

func TestServer_RateLimit(t *testing.T) {
	t.Parallel()

	ctrl := minimock.NewController(t)
	provider := metricsmock.NewProviderMock(ctrl)
	var dispatched []string
	provider.ConnectionDispatchedMock.Times(2).Inspect(func(result string) {
		dispatched = append(dispatched, result)
	}).Return()

	pool := newPool(t, 1)
	srv, served := startServer(t, Config{
		Mode:       config.ModePooled,
		RateLimit:  1,
		RatePeriod: time.Minute,
	}, newHandler(), pool, WithMetrics(provider))

	resp := request(srv.Addr(), handler.RootRequest)
	require.NoError(t, resp.err)
	assert.True(t, strings.HasPrefix(resp.body, handler.StatusOK))

	conn, err := net.Dial("tcp", srv.Addr())
	require.NoError(t, err)
	defer conn.Close()
	body, _ := io.ReadAll(conn)
	assert.Empty(t, body)

	srv.Close()
	require.NoError(t, <-served)
	require.NoError(t, pool.Close())
	assert.Equal(t, int64(1), pool.Stats().Submitted)
	assert.Equal(t, []string{"pooled", "limited"}, dispatched)
}

func TestServer_ClosedPoolStopsServing(t *testing.T) {
	t.Parallel()

	ctrl := minimock.NewController(t)
	pool := mock.NewExecutorMock(ctrl)
	pool.ExecuteMock.Times(1).Return(workerpool.ErrPoolClosed)
	// ServeConn has no expectation: a rejected connection must never reach the handler.
	h := mock.NewConnHandlerMock(ctrl)

	srv, served := startServer(t, Config{Mode: config.ModePooled}, h, pool)

	conn, err := net.Dial("tcp", srv.Addr())
	require.NoError(t, err)
	defer conn.Close()

	select {
	case err := <-served:
		require.Error(t, err)
		assert.ErrorIs(t, err, workerpool.ErrPoolClosed)
		assert.Contains(t, err.Error(), "dispatch connection")
	case <-time.After(time.Second):
		t.Fatal("Serve kept running with a closed pool")
	}
}

func TestServer_ContextCancelStopsServe(t *testing.T) {
	t.Parallel()

	srv, err := New(Config{Address: "127.0.0.1:0", Mode: config.ModeSerial}, newHandler(), nil, WithLogger(quietLogger))
	require.NoError(t, err)
	assert.Empty(t, srv.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx) }()

	require.Eventually(t, func() bool { return srv.Addr() != "" }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve ignored context cancellation")
	}
}

func TestNew_PooledRequiresPool(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Mode: config.ModePooled}, newHandler(), nil)
	assert.Error(t, err)
}

func TestServer_PooledHandsConnectionToExecutor(t *testing.T) {
	t.Parallel()

	ctrl := minimock.NewController(t)
	pool := mock.NewExecutorMock(ctrl)
	pool.ExecuteMock.Times(1).Set(func(job workerpool.Job) error {
		job.Run()
		return nil
	})
	h := mock.NewConnHandlerMock(ctrl)
	h.ServeConnMock.Times(1).Set(func(conn net.Conn) {
		_, _ = bufio.NewReader(conn).ReadString('\n')
		_, _ = conn.Write([]byte("served"))
		_ = conn.Close()
	})
	provider := metricsmock.NewProviderMock(ctrl)
	provider.ConnectionDispatchedMock.Expect("pooled").Return()

	srv, served := startServer(t, Config{Mode: config.ModePooled}, h, pool, WithMetrics(provider))

	resp := request(srv.Addr(), handler.RootRequest)
	require.NoError(t, resp.err)
	assert.Equal(t, "served", resp.body)

	srv.Close()
	require.NoError(t, <-served)
}

var errTooManyFiles = errors.New("accept: too many open files")

// failingListener fails the first failures Accept calls, then blocks until closed.
type failingListener struct {
	failures int

	mu      sync.Mutex
	accepts []time.Time

	closeOnce sync.Once
	closed    chan struct{}
}

func newFailingListener(failures int) *failingListener {
	return &failingListener{failures: failures, closed: make(chan struct{})}
}

func (l *failingListener) Accept() (net.Conn, error) {
	l.mu.Lock()
	l.accepts = append(l.accepts, time.Now())
	n := len(l.accepts)
	l.mu.Unlock()

	if n <= l.failures {
		return nil, errTooManyFiles
	}
	<-l.closed
	return nil, net.ErrClosed
}

func (l *failingListener) Close() error {
	l.closeOnce.Do(func() { close(l.closed) })
	return nil
}

func (l *failingListener) Addr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 7878}
}

func (l *failingListener) acceptTimes() []time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]time.Time(nil), l.accepts...)
}

func TestServer_AcceptErrorsBackOff(t *testing.T) {
	t.Parallel()

	const failures = 4

	srv, err := New(Config{Mode: config.ModeSerial}, newHandler(), nil, WithLogger(quietLogger))
	require.NoError(t, err)

	ln := newFailingListener(failures)
	srv.mu.Lock()
	srv.listener = ln
	srv.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx) }()

	require.Eventually(t, func() bool { return len(ln.acceptTimes()) == failures+1 }, 2*time.Second, time.Millisecond)

	accepts := ln.acceptTimes()
	delay := minAcceptDelay
	for i := 1; i < len(accepts); i++ {
		assert.GreaterOrEqual(t, accepts[i].Sub(accepts[i-1]), delay, "retry %d", i)
		delay *= 2
	}

	cancel()
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve ignored context cancellation")
	}
}

func TestAcceptBackoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		prev time.Duration
		want time.Duration
	}{
		{name: "First", prev: 0, want: 5 * time.Millisecond},
		{name: "Doubles", prev: 40 * time.Millisecond, want: 80 * time.Millisecond},
		{name: "Capped", prev: 640 * time.Millisecond, want: time.Second},
		{name: "StaysCapped", prev: time.Second, want: time.Second},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, acceptBackoff(tt.prev))
		})
	}
}
