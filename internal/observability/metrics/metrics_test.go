package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Collector) float64 {
	t.Helper()
	ch := make(chan prometheus.Metric, 1)
	c.Collect(ch)
	close(ch)
	var total float64
	for metric := range ch {
		var m dto.Metric
		if err := metric.Write(&m); err != nil {
			t.Fatalf("write metric: %v", err)
		}
		switch {
		case m.Counter != nil:
			total += m.Counter.GetValue()
		case m.Gauge != nil:
			total += m.Gauge.GetValue()
		}
	}
	return total
}

func TestStoreMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStoreMetrics(reg)

	m.ObserveLogin("admin", true)
	m.ObserveLogin("patient", false)
	m.ObserveBooking("modal", true)
	m.ObserveEvent("appointments.appointment.added.v1")
	m.SetActiveSessions(3)
	m.ObserveSubmitLatency("booking", 0.2)

	if got := counterValue(t, m.loginsTotal.WithLabelValues("patient", "rejected")); got != 1 {
		t.Fatalf("expected 1 rejected patient login, got %v", got)
	}
	if got := counterValue(t, m.activeSessions); got != 3 {
		t.Fatalf("expected 3 active sessions, got %v", got)
	}
}

func TestStoreMetricsDefaultRegistry(t *testing.T) {
	m := NewStoreMetrics(nil)
	m.ObserveBooking("doctor", false)
	prometheus.DefaultRegisterer.Unregister(m.actionsTotal)
	prometheus.DefaultRegisterer.Unregister(m.loginsTotal)
	prometheus.DefaultRegisterer.Unregister(m.bookingsTotal)
	prometheus.DefaultRegisterer.Unregister(m.activeSessions)
	prometheus.DefaultRegisterer.Unregister(m.submitLatency)
}

func TestStoreMetricsNilSafe(t *testing.T) {
	var m *StoreMetrics
	m.ObserveEvent("event")
	m.ObserveLogin("admin", true)
	m.ObserveBooking("modal", false)
	m.SetActiveSessions(1)
	m.ObserveSubmitLatency("login", 0.1)
}
