// Package observability provides Prometheus metrics for the upstream calls
// made by llmutils.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LLMBuckets defines histogram buckets suited for LLM inference latencies,
// ranging from 100ms to 120s.
var LLMBuckets = []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120}

// Operation label values.
const (
	OperationInference  = "inference"
	OperationVectorize  = "vectorize"
	OperationTranscribe = "transcribe"
)

var (
	// RequestsTotal counts upstream calls by operation, model and outcome.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llmutils_requests_total",
			Help: "Upstream requests",
		},
		[]string{"operation", "model", "status"},
	)

	// RequestDuration records upstream call duration in seconds. For
	// streaming inference it covers the whole stream.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llmutils_request_duration_seconds",
			Help:    "Upstream request duration",
			Buckets: LLMBuckets,
		},
		[]string{"operation", "model"},
	)

	// TokensTotal counts reported tokens by direction (input/output).
	TokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llmutils_tokens_total",
			Help: "Token count",
		},
		[]string{"operation", "model", "direction"},
	)

	// EchoFlushesTotal counts sink flushes, split by whether the buffered text
	// or the cutoff placeholder was written.
	EchoFlushesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llmutils_echo_flushes_total",
			Help: "Streamed output flushes",
		},
		[]string{"mode"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		TokensTotal,
		EchoFlushesTotal,
	)
}

// ObserveRequest records the outcome and duration of one upstream call.
func ObserveRequest(operation, model string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	RequestsTotal.WithLabelValues(operation, model, status).Inc()
	RequestDuration.WithLabelValues(operation, model).Observe(time.Since(start).Seconds())
}

// AddTokens records reported token counts. Zero counts are skipped.
func AddTokens(operation, model string, input, output int64) {
	if input > 0 {
		TokensTotal.WithLabelValues(operation, model, "input").Add(float64(input))
	}
	if output > 0 {
		TokensTotal.WithLabelValues(operation, model, "output").Add(float64(output))
	}
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
