package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the preview server's Prometheus collectors.
type metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	clientEvents   *prometheus.CounterVec
	activeClients  prometheus.Gauge
	broadcasts     *prometheus.CounterVec
}

func newMetrics(namespace string, reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Total number of toast renders by route and status",
		}, []string{"route", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Render duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"route"}),

		clientEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "client_events_total",
			Help:      "Client events received over the websocket by event and status",
		}, []string{"event", "status"}),

		activeClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_clients",
			Help:      "Number of connected websocket clients",
		}),

		broadcasts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broadcasts_total",
			Help:      "Messages broadcast to clients by type",
		}, []string{"type"}),
	}
}
