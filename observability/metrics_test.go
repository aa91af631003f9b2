package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestMetricsRegistered(t *testing.T) {
	RequestsTotal.WithLabelValues(OperationInference, "test", "ok").Inc()
	RequestDuration.WithLabelValues(OperationInference, "test").Observe(0.1)
	TokensTotal.WithLabelValues(OperationInference, "test", "input").Add(1)
	EchoFlushesTotal.WithLabelValues("text").Inc()

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("unexpected gather error: %v", err)
	}

	expected := map[string]bool{
		"llmutils_requests_total":           false,
		"llmutils_request_duration_seconds": false,
		"llmutils_tokens_total":             false,
		"llmutils_echo_flushes_total":       false,
	}
	for _, mf := range families {
		if _, ok := expected[mf.GetName()]; ok {
			expected[mf.GetName()] = true
		}
	}
	for name, found := range expected {
		if !found {
			t.Errorf("metric %q not found in default registry", name)
		}
	}
}

func TestObserveRequest(t *testing.T) {
	okBefore := counterValue(t, RequestsTotal, OperationVectorize, "observe-model", "ok")
	errBefore := counterValue(t, RequestsTotal, OperationVectorize, "observe-model", "error")
	durBefore := histogramCount(t, RequestDuration, OperationVectorize, "observe-model")

	ObserveRequest(OperationVectorize, "observe-model", time.Now(), nil)
	ObserveRequest(OperationVectorize, "observe-model", time.Now(), errors.New("boom"))

	if got := counterValue(t, RequestsTotal, OperationVectorize, "observe-model", "ok"); got != okBefore+1 {
		t.Errorf("ok requests = %v, want %v", got, okBefore+1)
	}
	if got := counterValue(t, RequestsTotal, OperationVectorize, "observe-model", "error"); got != errBefore+1 {
		t.Errorf("error requests = %v, want %v", got, errBefore+1)
	}
	if got := histogramCount(t, RequestDuration, OperationVectorize, "observe-model"); got != durBefore+2 {
		t.Errorf("duration samples = %d, want %d", got, durBefore+2)
	}
}

func TestAddTokensSkipsZero(t *testing.T) {
	inBefore := counterValue(t, TokensTotal, OperationInference, "tokens-model", "input")
	outBefore := counterValue(t, TokensTotal, OperationInference, "tokens-model", "output")

	AddTokens(OperationInference, "tokens-model", 12, 0)

	if got := counterValue(t, TokensTotal, OperationInference, "tokens-model", "input"); got != inBefore+12 {
		t.Errorf("input tokens = %v, want %v", got, inBefore+12)
	}
	if got := counterValue(t, TokensTotal, OperationInference, "tokens-model", "output"); got != outBefore {
		t.Errorf("output tokens = %v, want unchanged %v", got, outBefore)
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	EchoFlushesTotal.WithLabelValues("placeholder").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "llmutils_echo_flushes_total") {
		t.Error("expected llmutils_echo_flushes_total in metrics output")
	}
}

// counterValue reads the current value of a CounterVec for the given labels.
func counterValue(t *testing.T, cv *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	m := &dto.Metric{}
	c, err := cv.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("getting counter metric: %v", err)
	}
	if err := c.(prometheus.Metric).Write(m); err != nil {
		t.Fatalf("writing counter metric: %v", err)
	}
	return m.GetCounter().GetValue()
}

// histogramCount reads the observation count from a HistogramVec.
func histogramCount(t *testing.T, hv *prometheus.HistogramVec, labels ...string) uint64 {
	t.Helper()
	m := &dto.Metric{}
	obs, err := hv.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("getting histogram metric: %v", err)
	}
	if err := obs.(prometheus.Metric).Write(m); err != nil {
		t.Fatalf("writing histogram metric: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}
