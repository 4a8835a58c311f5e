// Package metrics exposes Prometheus counters for remote fetches and web
// requests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	fetchSuccess   prometheus.Counter
	fetchFail      *prometheus.CounterVec
	fetchLatency   prometheus.Histogram
	recordsFetched prometheus.Counter
	httpRequests   *prometheus.CounterVec
	taskMutations  *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		fetchSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lazyboard_fetch_success_total",
			Help: "Remote collection fetches that returned records.",
		}),
		fetchFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lazyboard_fetch_fail_total",
			Help: "Remote collection fetches that failed, by reason.",
		}, []string{"reason"}),
		fetchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lazyboard_fetch_latency_seconds",
			Help:    "Remote collection fetch latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		recordsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lazyboard_records_fetched_total",
			Help: "Records received from the remote collection.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lazyboard_http_requests_total",
			Help: "Web requests served, by status code.",
		}, []string{"status_code"}),
		taskMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lazyboard_task_mutations_total",
			Help: "Task list mutations, by operation.",
		}, []string{"op"}),
	}

	reg.MustRegister(
		c.fetchSuccess,
		c.fetchFail,
		c.fetchLatency,
		c.recordsFetched,
		c.httpRequests,
		c.taskMutations,
	)

	return c
}

func (c *Collector) RecordFetchSuccess(records int, duration time.Duration) {
	c.fetchSuccess.Inc()
	c.recordsFetched.Add(float64(records))
	c.fetchLatency.Observe(duration.Seconds())
}

// RecordFetchFailure counts a failed fetch; reason is "transport", "status"
// or "parse".
func (c *Collector) RecordFetchFailure(reason string, duration time.Duration) {
	c.fetchFail.WithLabelValues(reason).Inc()
	c.fetchLatency.Observe(duration.Seconds())
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpRequests.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordTaskMutation(op string) {
	c.taskMutations.WithLabelValues(op).Inc()
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
