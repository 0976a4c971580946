package jrpc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Requests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ethcall_rpc_requests_total",
		Help: "JSON RPC requests per method",
	}, []string{"method"})

	Errors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ethcall_rpc_errors_total",
		Help: "JSON RPC requests that returned an error",
	}, []string{"method"})

	Duration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ethcall_rpc_duration_seconds",
		Help:    "Time taken for a JSON RPC round trip",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)

type metrics struct {
	start  time.Time
	method string
}

func start(method string) metrics {
	Requests.WithLabelValues(method).Inc()
	return metrics{start: time.Now(), method: method}
}

func (m metrics) stop(err error) {
	Duration.WithLabelValues(m.method).Observe(time.Since(m.start).Seconds())
	if err != nil {
		Errors.WithLabelValues(m.method).Inc()
	}
}
