// Package metrics declares the Prometheus collectors exported by billsplit.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	// PriceFallbacks counts item contributions settled as zero because the item
	// was missing from the catalog or its price text could not be parsed.
	PriceFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "billsplit",
			Name:      "price_parse_fallbacks_total",
			Help:      "Item contributions settled as zero because of a missing item or unparsable price.",
		},
		[]string{"reason"},
	)

	// Intents counts assignment intents by operation and outcome.
	Intents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "billsplit",
			Subsystem: "assignment",
			Name:      "intents_total",
			Help:      "Assignment intents handled, by operation and outcome.",
		},
		[]string{"op", "outcome"},
	)

	rpcDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "billsplit",
			Subsystem: "rpc",
			Name:      "duration_seconds",
			Help:      "Duration of unary RPCs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"procedure", "code"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		PriceFallbacks,
		Intents,
		rpcDuration,
	)
}

// ObserveRPC records the duration of one RPC.
func ObserveRPC(procedure, code string, seconds float64) {
	rpcDuration.WithLabelValues(procedure, code).Observe(seconds)
}

// Handler exposes the registry over HTTP.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
