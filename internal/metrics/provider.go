package metrics

import "strconv"

//go:generate minimock -i Provider -o ./mock/provider_mock.go -n ProviderMock -p mock

type Provider interface {
	JobSubmitted()
	JobExecuted(duration float64)
	WorkerFault(workerID int)
	UpdateWorkerPoolMetrics(alive, queueDepth int)

	ConnectionDispatched(result string)
	RecordResponse(status string, duration float64)

	UpdateCacheMetrics(size int)
	RecordCacheHit(result string)
}

type PrometheusProvider struct{}

func NewPrometheusProvider() *PrometheusProvider {
	return &PrometheusProvider{}
}

func (p *PrometheusProvider) JobSubmitted() {
	JobsSubmittedTotal.Inc()
}

func (p *PrometheusProvider) JobExecuted(duration float64) {
	JobDuration.Observe(duration)
}

func (p *PrometheusProvider) WorkerFault(workerID int) {
	WorkerFaultsTotal.WithLabelValues(strconv.Itoa(workerID)).Inc()
}

func (p *PrometheusProvider) UpdateWorkerPoolMetrics(alive, queueDepth int) {
	WorkerPoolAlive.Set(float64(alive))
	WorkerPoolQueueDepth.Set(float64(queueDepth))
}

func (p *PrometheusProvider) ConnectionDispatched(result string) {
	ConnectionsTotal.WithLabelValues(result).Inc()
}

func (p *PrometheusProvider) RecordResponse(status string, duration float64) {
	ResponseDuration.WithLabelValues(status).Observe(duration)
}

func (p *PrometheusProvider) UpdateCacheMetrics(size int) {
	ResourceCacheSize.Set(float64(size))
}

func (p *PrometheusProvider) RecordCacheHit(result string) {
	ResourceCacheHits.WithLabelValues(result).Inc()
}

type NoOpProvider struct{}

func NewNoOpProvider() *NoOpProvider {
	return &NoOpProvider{}
}

func (p *NoOpProvider) JobSubmitted()                                  {}
func (p *NoOpProvider) JobExecuted(duration float64)                   {}
func (p *NoOpProvider) WorkerFault(workerID int)                       {}
func (p *NoOpProvider) UpdateWorkerPoolMetrics(alive, queueDepth int)  {}
func (p *NoOpProvider) ConnectionDispatched(result string)             {}
func (p *NoOpProvider) RecordResponse(status string, duration float64) {}
func (p *NoOpProvider) UpdateCacheMetrics(size int)                    {}
func (p *NoOpProvider) RecordCacheHit(result string)                   {}
