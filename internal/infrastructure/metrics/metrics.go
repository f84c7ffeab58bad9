package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg             *prometheus.Registry
	ReportGenerated *prometheus.CounterVec
	ReportDuration  *prometheus.HistogramVec
	LeadsSkipped    prometheus.Counter
	HTTPRequests    *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	generated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_generated_total",
		Help: "Reports built, by report name.",
	}, []string{"report"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_duration_seconds",
		Help:    "Time spent fetching and aggregating a report.",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "report_leads_skipped_total",
		Help: "Stored lead documents that could not be decoded.",
	})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests served, by route pattern and status.",
	}, []string{"method", "route", "status"})

	r.MustRegister(
		generated, duration, skipped, requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Registry{
		reg:             r,
		ReportGenerated: generated,
		ReportDuration:  duration,
		LeadsSkipped:    skipped,
		HTTPRequests:    requests,
	}
}

// ObserveReport records one successful build of report that started at start.
func (r *Registry) ObserveReport(report string, start time.Time) {
	r.ReportGenerated.WithLabelValues(report).Inc()
	r.ReportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
}

func (r *Registry) AddSkippedLeads(n int) {
	if n > 0 {
		r.LeadsSkipped.Add(float64(n))
	}
}

func (r *Registry) ObserveRequest(method, route string, status int) {
	r.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
