package prom

import (
	"strconv"
	"sync"
	"time"

	xhttp "github.com/brokerdesk/carrier-sales-api/pkg/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const (
	MetricHTTPRequestsTotal      = "http_requests_total"
	MetricHTTPRequestDuration    = "http_request_duration_seconds"
	MetricVerifyUpstreamDuration = "verify_upstream_duration_seconds"
	MetricVerifyUpstreamFailures = "verify_upstream_failures_total"
)

var (
	createOnce sync.Once

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	verifyDuration  prometheus.Histogram
	verifyFailures  prometheus.Counter

	enabled bool
)

// Create registers the service metrics under the given namespace. Idempotent;
// later calls are no-ops.
func Create(namespace string) {
	createOnce.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricHTTPRequestsTotal,
			Help:      "Count of handled HTTP requests.",
		}, []string{"method", "path", "status"})

		requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      MetricHTTPRequestDuration,
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"})

		verifyDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      MetricVerifyUpstreamDuration,
			Help:      "Latency of FMCSA verification upstream calls.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		})

		verifyFailures = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      MetricVerifyUpstreamFailures,
			Help:      "Count of failed FMCSA verification upstream calls.",
		})

		prometheus.MustRegister(requestsTotal, requestDuration, verifyDuration, verifyFailures)
		enabled = true
	})
}

// Handler exposes the default registry for a /metrics route.
func Handler() xhttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
}

// HTTPMetricsMiddleware observes request count and latency per matched route.
func HTTPMetricsMiddleware(next xhttp.RequestHandler) xhttp.RequestHandler {
	return func(ctx *xhttp.RequestCtx) {
		start := time.Now()
		next(ctx)
		if !enabled {
			return
		}

		path := "unmatched"
		if v, ok := ctx.UserValue(xhttp.MatchedRoutePathParam).(string); ok {
			path = v
		}
		method := string(ctx.Method())

		requestsTotal.WithLabelValues(method, path, strconv.Itoa(ctx.Response.StatusCode())).Inc()
		requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

func ObserveVerifyUpstream(d time.Duration, failed bool) {
	if !enabled {
		return
	}
	verifyDuration.Observe(d.Seconds())
	if failed {
		verifyFailures.Inc()
	}
}
