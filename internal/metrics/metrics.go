package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fyerfyer/cardswap/checklist"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 收集清单操作和HTTP请求的运行时指标
// 每个实例使用独立的注册表，便于在测试中重复创建
type Metrics struct {
	registry *prometheus.Registry

	operations  *prometheus.CounterVec
	conflicts   *prometheus.CounterVec
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	rateLimited prometheus.Counter
}

// New 创建一个新的指标收集器
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cardswap",
			Name:      "operations_total",
			Help:      "List operations applied, by operation.",
		}, []string{"op"}),
		conflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cardswap",
			Name:      "conflicts_total",
			Help:      "Items rejected by list operations, by conflict kind.",
		}, []string{"kind"}),
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cardswap",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cardswap",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		rateLimited: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "cardswap",
			Name:      "http_rate_limited_total",
			Help:      "HTTP requests rejected by the rate limiter.",
		}),
	}
}

// Observe 作为清单存储的事件监听器，统计操作和冲突
func (m *Metrics) Observe(evt checklist.Event) {
	m.operations.WithLabelValues(string(evt.Op)).Inc()
	for _, kind := range checklist.ConflictKinds {
		if n := len(evt.Conflicts.Items(kind)); n > 0 {
			m.conflicts.WithLabelValues(string(kind)).Add(float64(n))
		}
	}
}

// TrackSessions 注册一个报告活跃会话数量的指标
func (m *Metrics) TrackSessions(count func() int) {
	promauto.With(m.registry).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "cardswap",
		Name:      "sessions_active",
		Help:      "In-memory list sessions currently held.",
	}, func() float64 {
		return float64(count())
	})
}

// ObserveRequest 记录一次HTTP请求
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(route).Observe(elapsed.Seconds())
}

// RateLimited 记录一次被限流拒绝的请求
func (m *Metrics) RateLimited() {
	m.rateLimited.Inc()
}

// Handler 返回暴露指标的HTTP处理器
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
