// Package telemetry exposes Prometheus metrics for chart builds, exports and
// HTTP traffic.
//
// Usage:
//
//	rec := telemetry.New()
//	chartUC := chartusecase.NewBuildChartUseCase(source, rec)
//	app.Use(rec.Middleware())
//	app.Get("/metrics/prometheus", rec.Handler())
package telemetry

import (
	"strconv"
	"time"

	"dashboard-export-service/internal/metrics/core/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Recorder struct {
	registry *prometheus.Registry

	chartsBuilt     *prometheus.CounterVec
	exportsTotal    *prometheus.CounterVec
	exportEntries   prometheus.Histogram
	exportDuration  prometheus.Histogram
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers every collector on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()

	r := &Recorder{
		registry: reg,
		chartsBuilt: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_charts_built_total",
				Help: "Chart configurations built, by time bucket and outcome",
			},
			[]string{"time_bucket", "status"},
		),
		exportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_exports_total",
				Help: "Finished exports by outcome",
			},
			[]string{"status"},
		),
		exportEntries: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dashboard_export_entries",
			Help:    "CSV entries per successful export archive",
			Buckets: []float64{0, 1, 2, 4, 8, 12},
		}),
		exportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dashboard_export_duration_seconds",
			Help:    "Time spent producing an export archive",
			Buckets: prometheus.DefBuckets,
		}),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.chartsBuilt,
		r.exportsTotal,
		r.exportEntries,
		r.exportDuration,
		r.requestsTotal,
		r.requestDuration,
	)

	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ChartBuilt counts one chart build. Unknown time buckets share the
// "invalid" label.
func (r *Recorder) ChartBuilt(timeBucket string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.chartsBuilt.WithLabelValues(bucketLabel(timeBucket), status).Inc()
}

// bucketLabel returns the package-owned bucket name so the label never
// aliases request memory.
func bucketLabel(timeBucket string) string {
	for _, b := range domain.TimeBuckets {
		if b == timeBucket {
			return b
		}
	}
	return "invalid"
}

// ExportFinished counts one export and, when it succeeded, its size and
// duration.
func (r *Recorder) ExportFinished(status string, entries int, elapsed time.Duration) {
	r.exportsTotal.WithLabelValues(status).Inc()
	if status != "ok" {
		return
	}
	r.exportEntries.Observe(float64(entries))
	r.exportDuration.Observe(elapsed.Seconds())
}

// Middleware records request counts and latency per matched route.
func (r *Recorder) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		code := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			} else {
				code = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		r.requestsTotal.WithLabelValues(route, c.Method(), strconv.Itoa(code)).Inc()
		r.requestDuration.WithLabelValues(route, c.Method()).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
}
