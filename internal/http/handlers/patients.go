package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wolfman30/medicare-clinic/internal/dashboard"
	"github.com/wolfman30/medicare-clinic/internal/patients"
	"github.com/wolfman30/medicare-clinic/pkg/logging"
)

// PatientHandler serves the admin patient directory.
type PatientHandler struct {
	logger *logging.Logger
	now    func() time.Time
}

func NewPatientHandler(logger *logging.Logger) *PatientHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &PatientHandler{logger: logger, now: time.Now}
}

// patientForm accepts medicalHistory either as the comma separated form
// text or as a JSON array.
type patientForm struct {
	patients.NewPatient
	MedicalHistory json.RawMessage `json:"medicalHistory"`
}

func (f *patientForm) toNewPatient() (patients.NewPatient, error) {
	in := f.NewPatient
	in.MedicalHistory = []string{}
	raw := strings.TrimSpace(string(f.MedicalHistory))
	switch {
	case raw == "" || raw == "null":
	case strings.HasPrefix(raw, "["):
		var list []string
		if err := json.Unmarshal(f.MedicalHistory, &list); err != nil {
			return in, errors.New("medicalHistory must be a string or a list of strings")
		}
		for _, item := range list {
			if item = strings.TrimSpace(item); item != "" {
				in.MedicalHistory = append(in.MedicalHistory, item)
			}
		}
	default:
		var text string
		if err := json.Unmarshal(f.MedicalHistory, &text); err != nil {
			return in, errors.New("medicalHistory must be a string or a list of strings")
		}
		in.MedicalHistory = patients.ParseMedicalHistory(text)
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	return in, in.Validate()
}

func (h *PatientHandler) decodePatient(w http.ResponseWriter, r *http.Request) (patients.NewPatient, bool) {
	var form patientForm
	if err := decodeJSON(w, r, &form); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return patients.NewPatient{}, false
	}
	in, err := form.toNewPatient()
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return patients.NewPatient{}, false
	}
	return in, true
}

// ListPatients returns the directory with per-patient appointment counts.
// GET /api/patients
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	rows := dashboard.PatientList(st.Patients(), st.Appointments(), h.now())
	writeJSON(w, http.StatusOK, map[string]any{"patients": rows})
}

// CreatePatient handles POST /api/patients.
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	in, ok := h.decodePatient(w, r)
	if !ok {
		return
	}
	p := st.AddPatient(in)
	h.logger.Info("patient added", "session_id", st.ID(), "patient_id", p.ID)
	writeJSON(w, http.StatusCreated, p)
}

// UpdatePatient replaces a record, keeping its id and creation time.
// PUT /api/patients/{patientID}
func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	id := strings.TrimSpace(chi.URLParam(r, "patientID"))
	existing, found := st.Patient(id)
	if !found {
		jsonError(w, "patient not found", http.StatusNotFound)
		return
	}
	in, ok := h.decodePatient(w, r)
	if !ok {
		return
	}
	p := patients.Patient{
		ID:               existing.ID,
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		DateOfBirth:      in.DateOfBirth,
		Address:          in.Address,
		EmergencyContact: in.EmergencyContact,
		MedicalHistory:   in.MedicalHistory,
		CreatedAt:        existing.CreatedAt,
	}
	if !st.UpdatePatient(p) {
		jsonError(w, "patient not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeletePatient handles DELETE /api/patients/{patientID}.
func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	if !st.DeletePatient(strings.TrimSpace(chi.URLParam(r, "patientID"))) {
		jsonError(w, "patient not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetSelection picks the record the edit modal works on. A null or empty id
// clears it.
// PUT /api/patients/selection
func (h *PatientHandler) SetSelection(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	var req struct {
		ID *string `json:"id"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ID == nil || strings.TrimSpace(*req.ID) == "" {
		st.SetSelectedPatient(nil)
		writeJSON(w, http.StatusOK, map[string]any{"selected": nil})
		return
	}
	p, found := st.Patient(strings.TrimSpace(*req.ID))
	if !found {
		jsonError(w, "patient not found", http.StatusNotFound)
		return
	}
	st.SetSelectedPatient(&p)
	writeJSON(w, http.StatusOK, map[string]any{"selected": st.SelectedPatient()})
}

// SetModal opens or closes the add/edit modal.
// PUT /api/patients/modal
func (h *PatientHandler) SetModal(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	var req openRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	st.SetPatientModalOpen(req.Open)
	writeJSON(w, http.StatusOK, map[string]any{"open": st.PatientModalOpen()})
}
