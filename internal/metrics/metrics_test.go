package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordFetchSuccessCountsRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordFetchSuccess(100, 20*time.Millisecond)
	c.RecordFetchSuccess(1, 5*time.Millisecond)

	if got := counterValue(t, reg, "lazyboard_fetch_success_total", nil); got != 2 {
		t.Fatalf("fetch_success_total = %v, want 2", got)
	}
	if got := counterValue(t, reg, "lazyboard_records_fetched_total", nil); got != 101 {
		t.Fatalf("records_fetched_total = %v, want 101", got)
	}
}

func TestRecordFetchFailureByReason(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordFetchFailure("status", time.Millisecond)
	c.RecordFetchFailure("status", time.Millisecond)
	c.RecordFetchFailure("parse", time.Millisecond)

	if got := counterValue(t, reg, "lazyboard_fetch_fail_total", map[string]string{"reason": "status"}); got != 2 {
		t.Fatalf("fetch_fail_total{reason=status} = %v, want 2", got)
	}
	if got := counterValue(t, reg, "lazyboard_fetch_fail_total", map[string]string{"reason": "parse"}); got != 1 {
		t.Fatalf("fetch_fail_total{reason=parse} = %v, want 1", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordHTTPStatus(404)
	c.RecordTaskMutation("add")

	server := httptest.NewServer(Handler(reg))
	defer server.Close()

	resp, err := server.Client().Get(server.URL)
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	for _, want := range []string{
		`lazyboard_http_requests_total{status_code="404"} 1`,
		`lazyboard_task_mutations_total{op="add"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if matchLabels(metric, labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	t.Fatalf("metric %s %v not found", name, labels)
	return 0
}

func matchLabels(metric *dto.Metric, labels map[string]string) bool {
	if len(metric.GetLabel()) != len(labels) {
		return false
	}
	for _, pair := range metric.GetLabel() {
		if labels[pair.GetName()] != pair.GetValue() {
			return false
		}
	}
	return true
}
