package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus implements every hook interface with Prometheus collectors.
type Prometheus struct {
	solveTotal    *prometheus.CounterVec
	solveDuration *prometheus.HistogramVec
	solveNodes    *prometheus.HistogramVec
	coverSize     *prometheus.HistogramVec
	perturbTotal  *prometheus.CounterVec
	renderTotal   *prometheus.CounterVec
	cacheTotal    *prometheus.CounterVec
	cacheBytes    *prometheus.CounterVec
	httpTotal     *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

// NewPrometheus registers the vertexcover collectors with reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		solveTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vertexcover_solve_total",
			Help: "Cover searches by method and result",
		}, []string{"method", "result"}),
		solveDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vertexcover_solve_duration_seconds",
			Help:    "Cover search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"method"}),
		solveNodes: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vertexcover_solve_nodes",
			Help:    "Search nodes visited per cover search",
			Buckets: prometheus.ExponentialBuckets(1, 10, 8),
		}, []string{"method"}),
		coverSize: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vertexcover_cover_size",
			Help:    "Vertices in returned covers",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64, 128},
		}, []string{"method"}),
		perturbTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vertexcover_perturb_total",
			Help: "Graph operators applied, by operator and whether the graph changed",
		}, []string{"op", "changed"}),
		renderTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vertexcover_render_total",
			Help: "Renderings by format and result",
		}, []string{"format", "result"}),
		cacheTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vertexcover_cache_operations_total",
			Help: "Cache lookups and writes by key type and outcome",
		}, []string{"key_type", "outcome"}),
		cacheBytes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vertexcover_cache_written_bytes_total",
			Help: "Bytes written to the cache by key type",
		}, []string{"key_type"}),
		httpTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vertexcover_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vertexcover_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// OnSolveStart implements [PipelineHooks].
func (p *Prometheus) OnSolveStart(context.Context, string, int) {}

// OnSolveComplete implements [PipelineHooks].
func (p *Prometheus) OnSolveComplete(_ context.Context, method string, coverSize, nodes int, d time.Duration, err error) {
	p.solveTotal.WithLabelValues(method, result(err)).Inc()
	p.solveDuration.WithLabelValues(method).Observe(d.Seconds())
	p.solveNodes.WithLabelValues(method).Observe(float64(nodes))
	if err == nil {
		p.coverSize.WithLabelValues(method).Observe(float64(coverSize))
	}
}

// OnPerturb implements [PipelineHooks].
func (p *Prometheus) OnPerturb(_ context.Context, op string, changed bool) {
	p.perturbTotal.WithLabelValues(op, strconv.FormatBool(changed)).Inc()
}

// OnRenderComplete implements [PipelineHooks].
func (p *Prometheus) OnRenderComplete(_ context.Context, format string, _ time.Duration, err error) {
	p.renderTotal.WithLabelValues(format, result(err)).Inc()
}

// OnCacheHit implements [CacheHooks].
func (p *Prometheus) OnCacheHit(_ context.Context, keyType string) {
	p.cacheTotal.WithLabelValues(keyType, "hit").Inc()
}

// OnCacheMiss implements [CacheHooks].
func (p *Prometheus) OnCacheMiss(_ context.Context, keyType string) {
	p.cacheTotal.WithLabelValues(keyType, "miss").Inc()
}

// OnCacheSet implements [CacheHooks].
func (p *Prometheus) OnCacheSet(_ context.Context, keyType string, size int) {
	p.cacheTotal.WithLabelValues(keyType, "set").Inc()
	p.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

// OnResponse implements [HTTPHooks].
func (p *Prometheus) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	p.httpTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ PipelineHooks = (*Prometheus)(nil)
	_ CacheHooks    = (*Prometheus)(nil)
	_ HTTPHooks     = (*Prometheus)(nil)
)
