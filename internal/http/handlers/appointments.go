package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wolfman30/medicare-clinic/internal/appointments"
	"github.com/wolfman30/medicare-clinic/internal/booking"
	"github.com/wolfman30/medicare-clinic/internal/doctors"
	"github.com/wolfman30/medicare-clinic/internal/forms"
	"github.com/wolfman30/medicare-clinic/pkg/logging"
)

// AppointmentHandler serves the appointment book, the booking forms and the
// selection scratch state that feeds them.
type AppointmentHandler struct {
	bookings *booking.Service
	logger   *logging.Logger
}

func NewAppointmentHandler(bookings *booking.Service, logger *logging.Logger) *AppointmentHandler {
	if logger == nil {
		logger = logging.Default()
	}
	if bookings == nil {
		bookings = booking.NewService(nil, logger)
	}
	return &AppointmentHandler{bookings: bookings, logger: logger}
}

// ListAppointments handles GET /api/appointments[?status=].
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	filter := appointments.Status(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status"))))
	if filter == "" {
		writeJSON(w, http.StatusOK, map[string]any{"appointments": st.Appointments()})
		return
	}
	if !filter.Valid() {
		jsonError(w, "invalid status filter", http.StatusBadRequest)
		return
	}
	list := st.AppointmentsWhere(func(a appointments.Appointment) bool { return a.Status == filter })
	writeJSON(w, http.StatusOK, map[string]any{"appointments": list})
}

type statusRequest struct {
	Status appointments.Status `json:"status"`
}

// UpdateStatus moves an appointment along its lifecycle. Disallowed
// transitions are accepted and reported with changed=false.
// PATCH /api/appointments/{appointmentID}/status
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !req.Status.Valid() {
		jsonError(w, "invalid status", http.StatusBadRequest)
		return
	}
	id := strings.TrimSpace(chi.URLParam(r, "appointmentID"))
	if _, found := st.Appointment(id); !found {
		jsonError(w, "appointment not found", http.StatusNotFound)
		return
	}
	changed := st.UpdateAppointmentStatus(id, req.Status)
	apt, _ := st.Appointment(id)
	if changed {
		h.logger.Info("appointment status changed", "session_id", st.ID(), "appointment_id", id, "status", apt.Status)
	}
	writeJSON(w, http.StatusOK, map[string]any{"appointment": apt, "changed": changed})
}

// DeleteAppointment handles DELETE /api/appointments/{appointmentID}.
func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	if !st.DeleteAppointment(strings.TrimSpace(chi.URLParam(r, "appointmentID"))) {
		jsonError(w, "appointment not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Book submits a booking form from either the doctor page or the modal.
// POST /api/bookings
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	var req booking.Request
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	apt, err := h.bookings.Submit(r.Context(), st, req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, apt)
	case errors.Is(err, booking.ErrUnknownDoctor):
		jsonError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, booking.ErrInvalidRequest):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, forms.ErrSubmitInFlight):
		jsonError(w, "booking already in progress", http.StatusConflict)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return
	default:
		h.logger.Error("booking failed", "error", err, "session_id", st.ID())
		jsonError(w, "internal error", http.StatusInternalServerError)
	}
}

// SetSelection updates the date, time and doctorId fields present in the
// body. A JSON null clears the field.
// PUT /api/selection
func (h *AppointmentHandler) SetSelection(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	var raw map[string]*string
	if err := decodeJSON(w, r, &raw); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if v, present := raw["date"]; present && v != nil {
		if _, err := booking.DayName(*v); err != nil {
			jsonError(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}
	var doctor *doctors.Doctor
	if v, present := raw["doctorId"]; present && v != nil {
		d, found := st.Doctor(strings.TrimSpace(*v))
		if !found {
			jsonError(w, "doctor not found", http.StatusNotFound)
			return
		}
		doctor = &d
	}

	if v, present := raw["date"]; present {
		st.SetSelectedDate(v)
	}
	if v, present := raw["time"]; present {
		st.SetSelectedTime(v)
	}
	if _, present := raw["doctorId"]; present {
		st.SetSelectedDoctor(doctor)
	}
	writeJSON(w, http.StatusOK, st.Selection())
}

// ClearSelection handles DELETE /api/selection.
func (h *AppointmentHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	st.ClearSelection()
	writeJSON(w, http.StatusOK, st.Selection())
}

type openRequest struct {
	Open bool `json:"open"`
}

// SetBookingModal opens or closes the booking modal. Closing also drops the
// selected date and time.
// PUT /api/booking-modal
func (h *AppointmentHandler) SetBookingModal(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	var req openRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Open {
		st.SetBookingModalOpen(true)
	} else {
		st.CloseBookingModal()
	}
	writeJSON(w, http.StatusOK, map[string]any{"open": st.BookingModalOpen(), "selection": st.Selection()})
}

// Catalog lists the fixed slots and services offered by the booking modal.
// GET /api/booking/catalog
func (h *AppointmentHandler) Catalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"timeSlots": booking.TimeSlots,
		"services":  booking.Services,
	})
}
