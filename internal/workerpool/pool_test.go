package workerpool

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.ozon.dev/safariproxd/dispatcher/internal/metrics/mock"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestPool(t *testing.T, size int) *Pool {
	t.Helper()
	pool, err := Build(size, WithLogger(quietLogger))
	require.NoError(t, err)
	return pool
}

func TestBuild(t *testing.T) {
	t.Parallel()

	for _, size := range []int{1, 2, 4, 16} {
		pool := newTestPool(t, size)
		assert.Equal(t, size, pool.Size())
		assert.Equal(t, size, pool.Alive())
		assert.Len(t, pool.Stats().Workers, size)
		assert.NoError(t, pool.Close())
		assert.Equal(t, 0, pool.Alive())
	}
}

func TestBuild_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size int
	}{
		{name: "Zero", size: 0},
		{name: "Negative", size: -3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pool, err := Build(tt.size)
			require.Error(t, err)
			assert.Nil(t, pool)
			assert.ErrorIs(t, err, ErrInvalidInput)

			var creationErr *PoolCreationError
			require.True(t, errors.As(err, &creationErr))
			assert.Equal(t, InvalidInput, creationErr.Kind)
			assert.Equal(t, tt.size, creationErr.Size)
		})
	}
}

func TestPool_ExecutesEveryJobExactlyOnce(t *testing.T) {
	t.Parallel()

	const jobs = 1000
	pool := newTestPool(t, 4)

	counts := make([]atomic.Int32, jobs)
	for i := 0; i < jobs; i++ {
		i := i
		require.NoError(t, pool.ExecuteFunc(func() { counts[i].Add(1) }))
	}
	require.NoError(t, pool.Close())

	for i := range counts {
		assert.Equal(t, int32(1), counts[i].Load(), "job %d", i)
	}
	stats := pool.Stats()
	assert.Equal(t, int64(jobs), stats.Submitted)
	assert.Equal(t, int64(jobs), stats.Executed)
}

func TestPool_MoreJobsThanWorkers(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t, 4)

	var completed atomic.Int32
	for i := 0; i < 10; i++ {
		require.NoError(t, pool.ExecuteFunc(func() {
			time.Sleep(10 * time.Millisecond)
			completed.Add(1)
		}))
	}
	require.NoError(t, pool.Close())

	assert.Equal(t, int32(10), completed.Load())
}

func TestPool_SingleWorkerRunsInSubmissionOrder(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t, 1)

	var (
		mu    sync.Mutex
		order []int
	)
	for i := 0; i < 50; i++ {
		i := i
		require.NoError(t, pool.ExecuteFunc(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}))
	}
	require.NoError(t, pool.Close())

	require.Len(t, order, 50)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestPool_CloseWaitsForQueuedAndInFlightJobs(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t, 1)

	release := make(chan struct{})
	started := make(chan struct{})
	var completed atomic.Int32

	require.NoError(t, pool.ExecuteFunc(func() {
		close(started)
		<-release
		completed.Add(1)
	}))
	for i := 0; i < 3; i++ {
		require.NoError(t, pool.ExecuteFunc(func() { completed.Add(1) }))
	}
	<-started

	closed := make(chan error, 1)
	go func() { closed <- pool.Close() }()

	select {
	case <-closed:
		t.Fatal("Close returned while a job was still running")
	case <-time.After(50 * time.Millisecond):
	}

	assert.ErrorIs(t, pool.ExecuteFunc(func() {}), ErrPoolClosed)

	close(release)
	select {
	case err := <-closed:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for Close")
	}

	assert.Equal(t, int32(4), completed.Load())
	assert.Equal(t, 0, pool.Alive())
	assert.Equal(t, 0, pool.QueueDepth())
}

func TestPool_SlowJobDoesNotBlockQuickJobs(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t, 2)

	gate := make(chan struct{})
	slowStarted := make(chan struct{})
	require.NoError(t, pool.ExecuteFunc(func() {
		close(slowStarted)
		<-gate
	}))
	<-slowStarted

	var quick sync.WaitGroup
	for i := 0; i < 5; i++ {
		quick.Add(1)
		require.NoError(t, pool.ExecuteFunc(quick.Done))
	}

	done := make(chan struct{})
	go func() {
		quick.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("quick jobs were serialized behind the slow one")
	}

	close(gate)
	require.NoError(t, pool.Close())
}

func TestPool_SharedAccumulator(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t, 4)

	var (
		mu  sync.Mutex
		ids []int
	)
	for _, id := range []int{1, 2} {
		id := id
		require.NoError(t, pool.ExecuteFunc(func() {
			mu.Lock()
			defer mu.Unlock()
			ids = append(ids, id)
		}))
	}
	require.NoError(t, pool.Close())

	assert.ElementsMatch(t, []int{1, 2}, ids)
}

func TestPool_SingleWorkerCounter(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t, 1)

	var counter atomic.Int32
	for i := 0; i < 3; i++ {
		require.NoError(t, pool.ExecuteFunc(func() { counter.Add(1) }))
	}
	require.NoError(t, pool.Close())

	assert.Equal(t, int32(3), counter.Load())
}

func TestPool_ExecuteRejects(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t, 2)

	assert.ErrorIs(t, pool.Execute(nil), ErrNilJob)
	assert.ErrorIs(t, pool.ExecuteFunc(nil), ErrNilJob)

	require.NoError(t, pool.Close())
	assert.NoError(t, pool.Close())
	assert.ErrorIs(t, pool.Execute(JobFunc(func() {})), ErrPoolClosed)
	assert.True(t, pool.Stats().Closed)
}

func TestPool_PanicTerminatesOnlyItsWorker(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t, 2)

	require.NoError(t, pool.ExecuteFunc(func() { panic("boom") }))
	require.Eventually(t, func() bool { return pool.Alive() == 1 }, time.Second, time.Millisecond)

	var counter atomic.Int32
	for i := 0; i < 5; i++ {
		require.NoError(t, pool.ExecuteFunc(func() { counter.Add(1) }))
	}

	err := pool.Close()
	require.Error(t, err)
	assert.Equal(t, int32(5), counter.Load())

	var fault *WorkerFault
	require.True(t, errors.As(err, &fault))
	assert.Equal(t, "boom", fault.Panic)
	assert.NotEmpty(t, fault.Stack)

	stats := pool.Stats()
	assert.Equal(t, int64(1), stats.Faults)
	assert.Equal(t, int64(5), stats.Executed)

	var faulted int
	for _, w := range stats.Workers {
		assert.Equal(t, "stopped", w.State)
		if w.Faulted {
			faulted++
			assert.Equal(t, fault.WorkerID, w.ID)
		}
	}
	assert.Equal(t, 1, faulted)
}

func TestPool_AllWorkersLost(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t, 1)

	require.NoError(t, pool.ExecuteFunc(func() { panic(errors.New("fatal")) }))
	require.Eventually(t, func() bool { return pool.Alive() == 0 }, time.Second, time.Millisecond)

	assert.ErrorIs(t, pool.ExecuteFunc(func() {}), ErrNoReceivers)
	assert.Equal(t, int64(1), pool.Stats().Submitted)

	err := pool.Close()
	var fault *WorkerFault
	require.True(t, errors.As(err, &fault))
	assert.Equal(t, 0, fault.WorkerID)
}

func TestPool_StatsKeepExecutedWithinSubmitted(t *testing.T) {
	t.Parallel()

	const jobs = 5000
	pool := newTestPool(t, 4)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < jobs; i++ {
			_ = pool.ExecuteFunc(func() {})
		}
	}()

	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
		}
		stats := pool.Stats()
		require.LessOrEqual(t, stats.Executed, stats.Submitted)
	}

	require.NoError(t, pool.Close())
	stats := pool.Stats()
	assert.Equal(t, int64(jobs), stats.Submitted)
	assert.Equal(t, int64(jobs), stats.Executed)
}

func workerIDOf(t *testing.T, span sdktrace.ReadOnlySpan) int {
	t.Helper()
	for _, kv := range span.Attributes() {
		if kv.Key == attribute.Key("worker.id") {
			return int(kv.Value.AsInt64())
		}
	}
	t.Fatalf("span %q has no worker.id attribute", span.Name())
	return -1
}

func TestPool_ReportsJobsToMetricsAndTraces(t *testing.T) {
	t.Parallel()

	const jobs = 20

	ctrl := minimock.NewController(t)
	provider := mock.NewProviderMock(ctrl)
	provider.JobSubmittedMock.Times(jobs + 1).Return()
	provider.JobExecutedMock.Times(jobs).Return()
	provider.WorkerFaultMock.Times(1).Return()
	provider.UpdateWorkerPoolMetricsMock.Optional().Return()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	pool, err := Build(2, WithLogger(quietLogger), WithMetrics(provider), WithTracerProvider(tp))
	require.NoError(t, err)

	for i := 0; i < jobs; i++ {
		require.NoError(t, pool.ExecuteFunc(func() {}))
	}
	require.NoError(t, pool.ExecuteFunc(func() { panic("boom") }))

	err = pool.Close()
	var fault *WorkerFault
	require.True(t, errors.As(err, &fault))

	spans := recorder.Ended()
	require.Len(t, spans, jobs+1)

	var failed []sdktrace.ReadOnlySpan
	for _, span := range spans {
		assert.Equal(t, "workerpool.job", span.Name())
		id := workerIDOf(t, span)
		assert.True(t, id == 0 || id == 1, "worker.id %d out of range", id)

		switch span.Status().Code {
		case codes.Error:
			failed = append(failed, span)
		default:
			assert.Equal(t, codes.Ok, span.Status().Code)
		}
	}

	require.Len(t, failed, 1)
	assert.Equal(t, fault.WorkerID, workerIDOf(t, failed[0]))
	assert.Contains(t, failed[0].Status().Description, "boom")
	assert.Equal(t, "boom", fault.Panic)
}
