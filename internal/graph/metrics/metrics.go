package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	GraphRequests        *prometheus.CounterVec
	GraphRequestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	return &Metrics{
		GraphRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "entragraph_graph_requests_total",
			Help: "Total number of Microsoft Graph requests by operation and outcome",
		}, []string{"operation", "outcome"}),
		GraphRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "entragraph_graph_request_duration_seconds",
			Help:    "Duration of Microsoft Graph requests",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"operation"}),
	}
}

// ObserveRequest records one Graph request. Nil-safe so callers can run
// without metrics wired.
func (m *Metrics) ObserveRequest(operation, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.GraphRequests.WithLabelValues(operation, outcome).Inc()
	m.GraphRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
