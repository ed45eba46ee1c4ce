package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	// HTTP metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	// Business metrics
	payloadsBuilt     *prometheus.CounterVec
	templateOps       *prometheus.CounterVec
	templatesStored   prometheus.Gauge
	handoffWrites     prometheus.Counter
	handoffTakes      *prometheus.CounterVec
	pollCycles        *prometheus.CounterVec
	pollDuration      *prometheus.HistogramVec
	symbolSearches    *prometheus.CounterVec
	notificationCount prometheus.Gauge
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently in flight",
			},
		),
	}

	reg.MustRegister(r.httpRequestsTotal)
	reg.MustRegister(r.httpRequestDuration)
	reg.MustRegister(r.httpRequestsInFlight)

	// Business metrics
	r.payloadsBuilt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradedeck_payloads_built_total",
			Help: "Total number of webhook payloads built",
		},
		[]string{"status"},
	)
	r.templateOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradedeck_template_operations_total",
			Help: "Total number of template store operations",
		},
		[]string{"operation", "status"},
	)
	r.templatesStored = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tradedeck_templates_stored",
			Help: "Number of saved webhook templates",
		},
	)
	r.handoffWrites = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tradedeck_handoff_writes_total",
			Help: "Total number of payloads written to the handoff slot",
		},
	)
	r.handoffTakes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradedeck_handoff_takes_total",
			Help: "Total number of handoff slot reads",
		},
		[]string{"outcome"},
	)
	r.pollCycles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradedeck_poll_cycles_total",
			Help: "Total number of refresh poll cycles",
		},
		[]string{"poller"},
	)
	r.pollDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tradedeck_poll_duration_seconds",
			Help:    "Refresh poll cycle duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"poller"},
	)
	r.symbolSearches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradedeck_symbol_searches_total",
			Help: "Total number of symbol searches",
		},
		[]string{"exchange", "status"},
	)
	r.notificationCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tradedeck_notifications_unread",
			Help: "Unread notification count from the last poll",
		},
	)

	reg.MustRegister(r.payloadsBuilt)
	reg.MustRegister(r.templateOps)
	reg.MustRegister(r.templatesStored)
	reg.MustRegister(r.handoffWrites)
	reg.MustRegister(r.handoffTakes)
	reg.MustRegister(r.pollCycles)
	reg.MustRegister(r.pollDuration)
	reg.MustRegister(r.symbolSearches)
	reg.MustRegister(r.notificationCount)

	return r
}

// RecordRequest records metrics for an HTTP request.
func (r *Registry) RecordRequest(method, path string, status int, duration float64) {
	statusStr := statusToString(status)
	r.httpRequestsTotal.WithLabelValues(method, path, statusStr).Inc()
	r.httpRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// InFlightInc increments in-flight requests.
func (r *Registry) InFlightInc() {
	r.httpRequestsInFlight.Inc()
}

// InFlightDec decrements in-flight requests.
func (r *Registry) InFlightDec() {
	r.httpRequestsInFlight.Dec()
}

// RecordPayloadBuilt records a payload build attempt.
func (r *Registry) RecordPayloadBuilt(status string) {
	r.payloadsBuilt.WithLabelValues(status).Inc()
}

// RecordTemplateOp records a template store operation (save, load, delete).
func (r *Registry) RecordTemplateOp(operation, status string) {
	r.templateOps.WithLabelValues(operation, status).Inc()
}

// SetTemplatesStored sets the saved template count.
func (r *Registry) SetTemplatesStored(count int) {
	r.templatesStored.Set(float64(count))
}

// RecordHandoffWrite records a payload written to the handoff slot.
func (r *Registry) RecordHandoffWrite() {
	r.handoffWrites.Inc()
}

// RecordHandoffTake records a handoff slot read and its outcome.
func (r *Registry) RecordHandoffTake(outcome string) {
	r.handoffTakes.WithLabelValues(outcome).Inc()
}

// RecordPollCycle records a completed refresh poll cycle.
func (r *Registry) RecordPollCycle(poller string, duration float64) {
	r.pollCycles.WithLabelValues(poller).Inc()
	r.pollDuration.WithLabelValues(poller).Observe(duration)
}

// RecordSymbolSearch records a symbol search.
func (r *Registry) RecordSymbolSearch(exchange, status string) {
	r.symbolSearches.WithLabelValues(exchange, status).Inc()
}

// SetNotificationCount sets the unread notification gauge.
func (r *Registry) SetNotificationCount(count int) {
	r.notificationCount.Set(float64(count))
}

func statusToString(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}
