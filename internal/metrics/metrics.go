package metrics

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ErlanBelekov/period/internal/health"
	"github.com/ErlanBelekov/period/relative"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Offset metrics

	OffsetsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "period",
		Name:      "offsets_total",
		Help:      "Offsets resolved, by unit, direction and outcome.",
	}, []string{"unit", "direction", "outcome"})

	HumanizeTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "period",
		Name:      "humanize_total",
		Help:      "Timestamps rendered as relative phrases.",
	})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "period",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "period",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

func Register() {
	prometheus.MustRegister(
		OffsetsTotal,
		HumanizeTotal,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

// Outcome classifies an offset error for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, relative.ErrNegativeValue):
		return "negative_value"
	case errors.Is(err, relative.ErrOverflow):
		return "overflow"
	default:
		return "error"
	}
}

// NewServer exposes /metrics plus liveness and readiness probes.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/livez", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, checker.Liveness(r.Context()))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, checker.Readiness(r.Context()))
	})
	return &http.Server{Addr: addr, Handler: mux}
}

func writeHealth(w http.ResponseWriter, result health.HealthResult) {
	w.Header().Set("Content-Type", "application/json")
	if result.Status != health.StatusUp {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(result)
}
