package workerpool

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type workerState int32

const (
	stateRunning workerState = iota
	stateStopped
)

func (s workerState) String() string {
	switch s {
	case stateRunning:
		return "running"
	case stateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

type worker struct {
	id    int
	pool  *Pool
	state atomic.Int32
	done  chan struct{}

	faulted atomic.Bool
	// fault is written by the worker goroutine before done is closed.
	fault   error
}

func newWorker(id int, p *Pool) *worker {
	w := &worker{
		id:   id,
		pool: p,
		done: make(chan struct{}),
	}
	w.state.Store(int32(stateRunning))
	go w.run()
	return w
}

func (w *worker) run() {
	defer close(w.done)
	defer w.stop()

	for {
		job, ok := w.pool.queue.receive()
		if !ok {
			w.pool.logger.Debug("worker disconnected; shutting down", "worker", w.id)
			return
		}

		w.pool.logger.Debug("worker got a job; executing", "worker", w.id)
		if err := w.execute(job); err != nil {
			w.fault = err
			return
		}
	}
}

func (w *worker) stop() {
	w.state.Store(int32(stateStopped))
	w.pool.queue.detach()
	w.pool.alive.Add(-1)
	w.pool.reportGauges()
}

// execute runs job to completion. A panic is contained here and ends the worker.
func (w *worker) execute(job Job) (err error) {
	_, span := w.pool.tracer.Start(context.Background(), "workerpool.job",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.Int("worker.id", w.id)),
	)
	defer span.End()

	start := time.Now()
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		stack := debug.Stack()
		w.pool.faults.Add(1)
		w.pool.metrics.WorkerFault(w.id)
		w.pool.logger.Error("job panicked; worker terminated",
			"worker", w.id,
			"panic", r,
			"stack_trace", string(stack),
		)

		span.SetStatus(codes.Error, fmt.Sprintf("job panic: %v", r))
		span.SetAttributes(
			attribute.String("panic.value", fmt.Sprintf("%v", r)),
			attribute.String("panic.type", fmt.Sprintf("%T", r)),
		)
		w.faulted.Store(true)
		err = &WorkerFault{WorkerID: w.id, Panic: r, Stack: stack}
	}()

	job.Run()

	w.pool.executed.Add(1)
	w.pool.metrics.JobExecuted(time.Since(start).Seconds())
	w.pool.reportGauges()
	span.SetStatus(codes.Ok, "")
	return nil
}

func (w *worker) status() WorkerStatus {
	return WorkerStatus{
		ID:      w.id,
		State:   workerState(w.state.Load()).String(),
		Faulted: w.faulted.Load(),
	}
}
