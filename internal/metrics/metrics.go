package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_latency_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Domain
	UsersRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total users registered",
		},
	)
	SessionsOpened = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_opened_total",
			Help: "Total successful logins",
		},
	)
	FoodsLogged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "foods_logged_total",
			Help: "Total food entries created",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

// Init registers the collectors on the default registry. Call once, from main.
func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestLatency)
	prometheus.MustRegister(UsersRegistered)
	prometheus.MustRegister(SessionsOpened)
	prometheus.MustRegister(FoodsLogged)
}
