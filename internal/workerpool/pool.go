package workerpool

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"gitlab.ozon.dev/safariproxd/dispatcher/internal/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
)

const tracerName = "dispatcher-workerpool"

// Pool runs jobs on a fixed set of workers fed from one unbounded FIFO queue.
type Pool struct {
	workers []*worker
	queue   *queue
	closed  atomic.Bool

	alive     atomic.Int32
	submitted atomic.Int64
	executed  atomic.Int64
	faults    atomic.Int64

	logger  *slog.Logger
	metrics metrics.Provider
	tracer  trace.Tracer
}

type Option func(*Pool)

func WithLogger(l *slog.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

func WithMetrics(m metrics.Provider) Option {
	return func(p *Pool) {
		if m != nil {
			p.metrics = m
		}
	}
}

// WithTracerProvider replaces the global provider for job spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Pool) {
		if tp != nil {
			p.tracer = tp.Tracer(tracerName)
		}
	}
}

// Build starts size workers. A non-positive size yields a *PoolCreationError.
func Build(size int, opts ...Option) (*Pool, error) {
	if size <= 0 {
		return nil, &PoolCreationError{Kind: InvalidInput, Size: size}
	}

	p := &Pool{
		queue:   newQueue(size),
		logger:  slog.Default(),
		metrics: metrics.NewNoOpProvider(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "workerpool")

	p.alive.Store(int32(size))
	p.workers = make([]*worker, 0, size)
	for id := 0; id < size; id++ {
		p.workers = append(p.workers, newWorker(id, p))
	}
	p.reportGauges()

	p.logger.Info("worker pool started", "workers", size)
	return p, nil
}

// Execute enqueues job without waiting for it to run.
func (p *Pool) Execute(job Job) error {
	if job == nil {
		return ErrNilJob
	}
	// submitted must never trail executed, even for a job a worker finishes at once.
	p.submitted.Add(1)
	if err := p.queue.send(job); err != nil {
		p.submitted.Add(-1)
		return err
	}

	p.metrics.JobSubmitted()
	p.reportGauges()
	return nil
}

func (p *Pool) ExecuteFunc(f func()) error {
	if f == nil {
		return ErrNilJob
	}
	return p.Execute(JobFunc(f))
}

// Close stops accepting jobs, waits for queued and running jobs to finish and
// joins the workers in id order. It returns the faults of workers lost to
// panicking jobs. Close must not be called concurrently; repeated calls return nil.
func (p *Pool) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	p.queue.close()

	var errs error
	for _, w := range p.workers {
		p.logger.Info("shutting down worker", "worker", w.id)
		<-w.done
		if w.fault != nil {
			errs = multierr.Append(errs, w.fault)
		}
	}

	if n := p.queue.depth(); n > 0 {
		errs = multierr.Append(errs, fmt.Errorf("%d queued jobs abandoned: %w", n, ErrNoReceivers))
	}

	p.logger.Info("worker pool stopped",
		"executed", p.executed.Load(),
		"faults", p.faults.Load())
	return errs
}

func (p *Pool) Size() int {
	return len(p.workers)
}

// Alive reports workers that have not stopped. It drops below Size only after
// Close or when a job panics.
func (p *Pool) Alive() int {
	return int(p.alive.Load())
}

func (p *Pool) QueueDepth() int {
	return p.queue.depth()
}

type WorkerStatus struct {
	ID      int    `json:"id"`
	State   string `json:"state"`
	Faulted bool   `json:"faulted"`
}

type Stats struct {
	Size       int            `json:"size"`
	Alive      int            `json:"alive"`
	QueueDepth int            `json:"queue_depth"`
	Submitted  int64          `json:"submitted"`
	Executed   int64          `json:"executed"`
	Faults     int64          `json:"faults"`
	Closed     bool           `json:"closed"`
	Workers    []WorkerStatus `json:"workers"`
}

func (p *Pool) Stats() Stats {
	workers := make([]WorkerStatus, 0, len(p.workers))
	for _, w := range p.workers {
		workers = append(workers, w.status())
	}
	// Load executed first so the snapshot keeps Executed <= Submitted.
	executed := p.executed.Load()
	return Stats{
		Size:       p.Size(),
		Alive:      p.Alive(),
		QueueDepth: p.QueueDepth(),
		Submitted:  p.submitted.Load(),
		Executed:   executed,
		Faults:     p.faults.Load(),
		Closed:     p.closed.Load(),
		Workers:    workers,
	}
}

func (p *Pool) reportGauges() {
	p.metrics.UpdateWorkerPoolMetrics(p.Alive(), p.queue.depth())
}
