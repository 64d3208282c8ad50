package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the order placement HTTP handler
	OrderPlaceLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_place_latency_seconds",
		Help:    "Latency of the place order handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of orders placed
	OrdersPlacedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Total number of orders placed",
	})
)

func Init() {
	prometheus.MustRegister(
		OrderPlaceLatency,
		OrdersPlacedTotal,
	)
}
