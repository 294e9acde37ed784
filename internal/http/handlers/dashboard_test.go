package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wolfman30/medicare-clinic/internal/appointments"
	"github.com/wolfman30/medicare-clinic/internal/dashboard"
)

func newDashboardClient(t *testing.T) *testClient {
	h := NewDashboardHandler()
	h.now = func() time.Time { return time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC) }
	return newTestClient(t, func(r chi.Router) {
		r.Get("/api/dashboard/admin", h.Admin)
		r.Get("/api/dashboard/patient", h.Patient)
		r.Get("/api/dashboard/schedule", h.Schedule)
	})
}

func TestAdminDashboard(t *testing.T) {
	c := newDashboardClient(t)
	rec := c.do(http.MethodGet, "/api/dashboard/admin", nil)
	expectStatus(t, rec, http.StatusOK)

	sum := decodeBody[dashboard.AdminSummary](t, rec)
	if sum.Counts.Pending != 1 || sum.Counts.Approved != 1 || sum.Counts.Rejected != 0 {
		t.Fatalf("unexpected counts %+v", sum.Counts)
	}
}

func TestPatientDashboardUsesSessionPatient(t *testing.T) {
	c := newDashboardClient(t)
	st := c.store()
	st.CompletePatientLogin("P001")
	st.AddAppointment(appointments.NewAppointment{PatientID: "P001", PatientName: "Ada", Date: "2025-01-12", Time: "09:00"})

	rec := c.do(http.MethodGet, "/api/dashboard/patient", nil)
	expectStatus(t, rec, http.StatusOK)
	body := decodeBody[struct {
		PatientID    string                     `json:"patientId"`
		Appointments []appointments.Appointment `json:"appointments"`
	}](t, rec)
	if body.PatientID != "P001" || len(body.Appointments) != 1 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestScheduleDashboard(t *testing.T) {
	c := newDashboardClient(t)
	rec := c.do(http.MethodGet, "/api/dashboard/schedule", nil)
	expectStatus(t, rec, http.StatusOK)

	sched := decodeBody[dashboard.Schedule](t, rec)
	if len(sched.Today) != 1 || sched.Today[0].ID != "1" {
		t.Fatalf("expected the approved seed appointment today, got %+v", sched.Today)
	}
	if sched.Stats.Pending != 1 || sched.Stats.Today != 1 {
		t.Fatalf("unexpected stats %+v", sched.Stats)
	}
}
