package folio

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contact submission outcomes, used as the "result" label.
const (
	resultSent     = "sent"
	resultInvalid  = "invalid"
	resultRejected = "rejected"
	resultError    = "error"
	resultLimited  = "limited"
	resultSpam     = "spam"
)

// Metrics holds the site's Prometheus collectors. Each App owns its own
// registry so tests can build many apps in one process.
type Metrics struct {
	Registry *prometheus.Registry

	ContactSubmissions *prometheus.CounterVec
	RelayDuration      prometheus.Histogram
	SectionReveals     *prometheus.CounterVec
	ContentReloads     *prometheus.CounterVec
	TypewriterStreams  prometheus.Gauge
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		ContactSubmissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_contact_submissions_total",
			Help: "Contact form submissions by result",
		}, []string{"result"}),
		RelayDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "folio_relay_duration_seconds",
			Help:    "Time spent relaying a contact submission",
			Buckets: prometheus.DefBuckets,
		}),
		SectionReveals: f.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_section_reveals_total",
			Help: "First reveals of a page section, as reported by visitors",
		}, []string{"section"}),
		ContentReloads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_content_reloads_total",
			Help: "Content reloads by result",
		}, []string{"result"}),
		TypewriterStreams: f.NewGauge(prometheus.GaugeOpts{
			Name: "folio_typewriter_streams",
			Help: "Open typewriter event streams",
		}),
	}
}

// middleware records request counts and latencies per route.
func (m *Metrics) middleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "folio",
		Registerer: m.Registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	})
}

// handler serves the registry in the exposition format.
func (m *Metrics) handler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: m.Registry,
	})
}
