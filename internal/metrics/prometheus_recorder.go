package metrics

import (
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docsite"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	resolutions     *prom.CounterVec
	resolveDuration prom.Histogram
	reloads         *prom.CounterVec
	httpRequests    *prom.CounterVec
	httpDuration    *prom.HistogramVec
}

// NewPrometheusRecorder constructs the metrics and registers them with reg;
// a nil reg gets a fresh registry.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		resolutions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "sidebar",
			Name:      "resolutions_total",
			Help:      "Sidebar resolutions by matched prefix",
		}, []string{"prefix"}),
		resolveDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sidebar",
			Name:      "resolve_duration_seconds",
			Help:      "Time spent resolving a sidebar",
			Buckets:   prom.ExponentialBuckets(1e-7, 4, 10),
		}),
		reloads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "config",
			Name:      "reloads_total",
			Help:      "Configuration reloads by result",
		}, []string{"result"}),
		httpRequests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code",
		}, []string{"route", "code"}),
		httpDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prom.DefBuckets,
		}, []string{"route"}),
	}
	reg.MustRegister(pr.resolutions, pr.resolveDuration, pr.reloads, pr.httpRequests, pr.httpDuration)
	return pr
}

func (p *PrometheusRecorder) ObserveResolve(prefix string, d time.Duration) {
	if p == nil {
		return
	}
	p.resolutions.WithLabelValues(prefix).Inc()
	p.resolveDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncConfigReload(result ReloadResult) {
	if p == nil {
		return
	}
	p.reloads.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveHTTPRequest(route string, status int, d time.Duration) {
	if p == nil {
		return
	}
	p.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(route).Observe(d.Seconds())
}
