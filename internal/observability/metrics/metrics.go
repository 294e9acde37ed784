package metrics

import "github.com/prometheus/client_golang/prometheus"

// StoreMetrics exposes counters and gauges for client stores.
type StoreMetrics struct {
	actionsTotal   *prometheus.CounterVec
	loginsTotal    *prometheus.CounterVec
	bookingsTotal  *prometheus.CounterVec
	activeSessions prometheus.Gauge
	submitLatency  *prometheus.HistogramVec
}

func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	m := &StoreMetrics{
		actionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medicare",
			Subsystem: "store",
			Name:      "events_total",
			Help:      "Total state change events published by client stores",
		}, []string{"event_type"}),
		loginsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medicare",
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Login attempts by role and outcome",
		}, []string{"role", "outcome"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medicare",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Booking form submissions by flow and outcome",
		}, []string{"flow", "outcome"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "medicare",
			Subsystem: "store",
			Name:      "active_sessions",
			Help:      "Client sessions currently held in memory",
		}),
		submitLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "medicare",
			Subsystem: "forms",
			Name:      "submit_latency_seconds",
			Help:      "Latency of login and booking form submissions",
			Buckets:   prometheus.DefBuckets,
		}, []string{"form"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.actionsTotal, m.loginsTotal, m.bookingsTotal, m.activeSessions, m.submitLatency)
	return m
}

func (m *StoreMetrics) ObserveEvent(eventType string) {
	if m == nil {
		return
	}
	m.actionsTotal.WithLabelValues(eventType).Inc()
}

func (m *StoreMetrics) ObserveLogin(role string, ok bool) {
	if m == nil {
		return
	}
	outcome := "rejected"
	if ok {
		outcome = "accepted"
	}
	m.loginsTotal.WithLabelValues(role, outcome).Inc()
}

func (m *StoreMetrics) ObserveBooking(flow string, ok bool) {
	if m == nil {
		return
	}
	outcome := "invalid"
	if ok {
		outcome = "booked"
	}
	m.bookingsTotal.WithLabelValues(flow, outcome).Inc()
}

func (m *StoreMetrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

func (m *StoreMetrics) ObserveSubmitLatency(form string, seconds float64) {
	if m == nil {
		return
	}
	m.submitLatency.WithLabelValues(form).Observe(seconds)
}
