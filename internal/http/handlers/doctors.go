package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wolfman30/medicare-clinic/internal/booking"
	"github.com/wolfman30/medicare-clinic/internal/doctors"
	"github.com/wolfman30/medicare-clinic/pkg/logging"
)

// DoctorHandler serves the doctor roster and its availability.
type DoctorHandler struct {
	logger *logging.Logger
	now    func() time.Time
}

func NewDoctorHandler(logger *logging.Logger) *DoctorHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &DoctorHandler{logger: logger, now: time.Now}
}

// ListDoctors handles GET /api/doctors.
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"doctors": st.Doctors()})
}

func (h *DoctorHandler) lookup(w http.ResponseWriter, r *http.Request) (doctors.Doctor, bool) {
	st, ok := clientStore(w, r)
	if !ok {
		return doctors.Doctor{}, false
	}
	d, found := st.Doctor(strings.TrimSpace(chi.URLParam(r, "doctorID")))
	if !found {
		jsonError(w, "doctor not found", http.StatusNotFound)
		return doctors.Doctor{}, false
	}
	return d, true
}

// GetDoctor handles GET /api/doctors/{doctorID}.
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	d, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// GetSlots lists the slots a doctor offers on a date.
// GET /api/doctors/{doctorID}/slots?date=YYYY-MM-DD
func (h *DoctorHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	d, ok := h.lookup(w, r)
	if !ok {
		return
	}
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		jsonError(w, "date is required", http.StatusBadRequest)
		return
	}
	day, err := booking.DayName(date)
	if err != nil {
		jsonError(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	slots := d.SlotsFor(day)
	if slots == nil {
		slots = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"date": date, "day": day, "slots": slots})
}

// GetDates lists the next seven dates the doctor works.
// GET /api/doctors/{doctorID}/dates
func (h *DoctorHandler) GetDates(w http.ResponseWriter, r *http.Request) {
	d, ok := h.lookup(w, r)
	if !ok {
		return
	}
	dates := booking.BookableDates(d, h.now())
	if dates == nil {
		dates = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"dates": dates})
}

func (h *DoctorHandler) decodeDoctor(w http.ResponseWriter, r *http.Request) (doctors.CreateDoctorRequest, bool) {
	var req doctors.CreateDoctorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return req, false
	}
	if err := req.Validate(); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return req, false
	}
	return req, true
}

// CreateDoctor handles POST /api/doctors.
func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeDoctor(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, st.AddDoctor(req))
}

// UpdateDoctor handles PUT /api/doctors/{doctorID}.
func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeDoctor(w, r)
	if !ok {
		return
	}
	d := req.Build(strings.TrimSpace(chi.URLParam(r, "doctorID")))
	if !st.UpdateDoctor(d) {
		jsonError(w, "doctor not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// DeleteDoctor handles DELETE /api/doctors/{doctorID}.
func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	if !st.DeleteDoctor(strings.TrimSpace(chi.URLParam(r, "doctorID"))) {
		jsonError(w, "doctor not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
