package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricConsoleAction        = "console_action"
	MetricDirectoryRequest     = "directory_request"
	MetricCustomerLookup       = "customer_lookup"
	MetricFallbackCreate       = "customer_fallback_create"
	MetricStaleRenderDiscarded = "stale_render_discarded"
	MetricBoardRegionsFilled   = "board_regions_filled"
)

type PrometheusMetrics struct {
	consoleActions        *prometheus.CounterVec
	consoleActionDuration *prometheus.HistogramVec
	directoryRequests     *prometheus.CounterVec
	directoryDuration     *prometheus.HistogramVec
	customerLookups       *prometheus.CounterVec
	fallbackCreates       *prometheus.CounterVec
	staleRendersDiscarded prometheus.Counter
	boardRegionsFilled    prometheus.Gauge
}

// NewPrometheusMetrics registers the console metrics with reg.
// Pass the registry served on /metrics, or a fresh one in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		consoleActions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "console_actions_total",
				Help: "Total number of console actions by action and outcome",
			},
			[]string{"action", "outcome"},
		),
		consoleActionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "console_action_duration_seconds",
				Help:    "Console action duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"action"},
		),
		directoryRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "directory_requests_total",
				Help: "Total number of storefront backend requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),
		directoryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "directory_request_duration_seconds",
				Help:    "Storefront backend request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		customerLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_lookup_total",
				Help: "Total number of customer lookups by final state",
			},
			[]string{"outcome"},
		),
		fallbackCreates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_fallback_create_total",
				Help: "Total number of fallback customer creations by outcome",
			},
			[]string{"outcome"},
		),
		staleRendersDiscarded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "stale_renders_discarded_total",
				Help: "Total number of lookup renders dropped because a newer lookup started",
			},
		),
		boardRegionsFilled: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "board_regions_filled",
				Help: "Number of page regions currently showing content",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	outcome := tags["outcome"]

	switch name {
	case MetricConsoleAction:
		m.consoleActions.WithLabelValues(tags["action"], outcome).Inc()
	case MetricDirectoryRequest:
		m.directoryRequests.WithLabelValues(tags["endpoint"], tags["status"]).Inc()
	case MetricCustomerLookup:
		if outcome != "" {
			m.customerLookups.WithLabelValues(outcome).Inc()
		}
	case MetricFallbackCreate:
		if outcome != "" {
			m.fallbackCreates.WithLabelValues(outcome).Inc()
		}
	case MetricStaleRenderDiscarded:
		m.staleRendersDiscarded.Inc()
	}
}

// RecordProcessingTime accepts "<metric>:<label>" names, e.g. "directory_request:/search-customers"
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	metric, label := splitMetricName(name)
	switch metric {
	case MetricConsoleAction:
		m.consoleActionDuration.WithLabelValues(label).Observe(duration.Seconds())
	case MetricDirectoryRequest:
		m.directoryDuration.WithLabelValues(label).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricBoardRegionsFilled:
		m.boardRegionsFilled.Set(value)
	}
}

func splitMetricName(name string) (string, string) {
	metric, label, _ := strings.Cut(name, ":")
	return metric, label
}
