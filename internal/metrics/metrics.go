package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JobsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatcher_jobs_submitted_total",
		Help: "The total number of jobs handed to the worker pool",
	})

	JobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dispatcher_job_duration_seconds",
		Help:    "Duration of jobs executed by the worker pool",
		Buckets: prometheus.DefBuckets,
	})

	WorkerFaultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatcher_worker_faults_total",
		Help: "Workers lost because a job panicked",
	}, []string{"worker"})

	WorkerPoolAlive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dispatcher_worker_pool_alive",
		Help: "Number of live workers in the pool",
	})

	WorkerPoolQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dispatcher_worker_pool_queue_depth",
		Help: "Number of jobs waiting for a worker",
	})

	ConnectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatcher_connections_total",
		Help: "Accepted connections by dispatch result",
	}, []string{"result"})

	ResponseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dispatcher_response_duration_seconds",
		Help:    "Time spent serving a connection, by status line",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})

	ResourceCacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dispatcher_resource_cache_size",
		Help: "Number of resources held in the cache",
	})

	ResourceCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatcher_resource_cache_hits_total",
		Help: "Resource cache lookups by result",
	}, []string{"result"})
)
