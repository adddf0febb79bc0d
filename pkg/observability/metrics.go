package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/scribe/pkg/domain"
	"github.com/aretw0/scribe/pkg/ports"
)

// Metrics records operation outcomes as Prometheus series.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

var _ ports.Observer = (*Metrics)(nil)

// Counter is the subset of a registry Metrics can report on.
type Counter interface {
	Len() int
}

// NewMetrics creates and registers the scribe collectors on reg.
// When pages is non-nil, a gauge tracks the number of recorded pages.
func NewMetrics(reg prometheus.Registerer, pages Counter) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scribe_operations_total",
				Help: "Total number of page operations by outcome",
			},
			[]string{"operation", "outcome", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scribe_operation_duration_seconds",
				Help:    "Duration of page operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
	reg.MustRegister(m.operations, m.duration)

	if pages != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "scribe_registry_pages",
				Help: "Pages recorded in the in-process registry",
			},
			func() float64 { return float64(pages.Len()) },
		))
	}
	return m
}

// ObserveOperation implements ports.Observer.
func (m *Metrics) ObserveOperation(op string, res domain.OperationResult, elapsed time.Duration) {
	outcome := "success"
	if !res.OK() {
		outcome = string(res.Kind)
	}
	status := ""
	if res.StatusCode != 0 {
		status = strconv.Itoa(res.StatusCode)
	}
	m.operations.WithLabelValues(op, outcome, status).Inc()
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}
