package handlers

import (
	"net/http"
	"time"

	"github.com/wolfman30/medicare-clinic/internal/dashboard"
)

// DashboardHandler serves the read-only dashboard projections.
type DashboardHandler struct {
	now func() time.Time
}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{now: time.Now}
}

// Admin handles GET /api/dashboard/admin.
func (h *DashboardHandler) Admin(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dashboard.Admin(st.Appointments()))
}

// Patient lists the appointments booked under the signed-in patient.
// GET /api/dashboard/patient
func (h *DashboardHandler) Patient(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	id := st.Session().PatientID()
	list := dashboard.ForPatient(st.Appointments(), id)
	writeJSON(w, http.StatusOK, map[string]any{"patientId": id, "appointments": list})
}

// Schedule handles GET /api/dashboard/schedule.
func (h *DashboardHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dashboard.DoctorSchedule(st.Appointments(), h.now()))
}
