package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rafaelleal24/commerce/internal/adapters/config"
	"github.com/rafaelleal24/commerce/internal/core/domain"
)

// Metrics records order placement outcomes, outbox relay health and HTTP
// traffic. It serves port.MetricsPort, outbox.Observer and middleware.RequestObserver.
type Metrics struct {
	ordersPlaced   prometheus.Counter
	ordersRejected *prometheus.CounterVec
	orderAmount    prometheus.Histogram
	placeDuration  prometheus.Histogram
	outboxRelayed  *prometheus.CounterVec
	outboxFailures *prometheus.CounterVec
	outboxLag      prometheus.Histogram
	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	gatherer       prometheus.Gatherer
}

func New(cfg config.MetricsConfig, registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Orders placed and paid.",
		}),
		ordersRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "orders",
			Name:      "rejected_total",
			Help:      "Order placements that failed, by reason.",
		}, []string{"reason"}),
		orderAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: "orders",
			Name:      "total_amount",
			Help:      "Total amount of placed orders in points.",
			Buckets:   prometheus.ExponentialBuckets(100, 4, 8),
		}),
		placeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: "orders",
			Name:      "place_duration_seconds",
			Help:      "Time spent placing an order.",
			Buckets:   prometheus.DefBuckets,
		}),
		outboxRelayed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "outbox",
			Name:      "relayed_total",
			Help:      "Outbox events confirmed by the broker and removed, by entity.",
		}, []string{"entity"}),
		outboxFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "outbox",
			Name:      "relay_failures_total",
			Help:      "Outbox relay attempts that failed, by entity and stage.",
		}, []string{"entity", "stage"}),
		outboxLag: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: "outbox",
			Name:      "relay_lag_seconds",
			Help:      "Time between an event being stored and being relayed.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"method", "route"}),
		gatherer: registry,
	}

	registry.MustRegister(
		m.ordersPlaced,
		m.ordersRejected,
		m.orderAmount,
		m.placeDuration,
		m.outboxRelayed,
		m.outboxFailures,
		m.outboxLag,
		m.requests,
		m.requestLatency,
	)
	return m
}

func (m *Metrics) OrderPlaced(total domain.Amount, duration time.Duration) {
	m.ordersPlaced.Inc()
	m.orderAmount.Observe(float64(total.Int64()))
	m.placeDuration.Observe(duration.Seconds())
}

func (m *Metrics) OrderRejected(reason string) {
	m.ordersRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) EventRelayed(entity string, lag time.Duration) {
	m.outboxRelayed.WithLabelValues(entity).Inc()
	if lag > 0 {
		m.outboxLag.Observe(lag.Seconds())
	}
}

func (m *Metrics) RelayFailed(entity, stage string) {
	m.outboxFailures.WithLabelValues(entity, stage).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(method, route).Observe(float64(duration.Milliseconds()))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
