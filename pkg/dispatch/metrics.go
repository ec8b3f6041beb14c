package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	handshakesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "handshakes_total",
			Help: "Total number of server-side handshake attempts",
		},
		[]string{"strategy", "status"},
	)
	handshakeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "handshake_duration_seconds",
			Help:    "Duration of server-side handshakes in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"strategy"},
	)
	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "handshake_active_sessions",
			Help: "Number of handshake sessions currently in flight",
		},
	)
)

func init() {
	prometheus.MustRegister(handshakesTotal)
	prometheus.MustRegister(handshakeDuration)
	prometheus.MustRegister(activeSessions)
}
