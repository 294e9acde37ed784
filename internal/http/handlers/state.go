package handlers

import (
	"net/http"

	"github.com/wolfman30/medicare-clinic/internal/session"
	"github.com/wolfman30/medicare-clinic/pkg/logging"
)

// StateHandler exposes the session state machine and the resolved screen.
type StateHandler struct {
	logger *logging.Logger
}

func NewStateHandler(logger *logging.Logger) *StateHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &StateHandler{logger: logger}
}

type viewRequest struct {
	View session.View `json:"view"`
}

type toggleRequest struct {
	On bool `json:"on"`
}

type roleRequest struct {
	Role session.UserType `json:"role"`
}

// GetState returns the full client snapshot.
// GET /api/state
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, st.Snapshot())
}

// GetScreen returns only the screen the client should render.
// GET /api/screen
func (h *StateHandler) GetScreen(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"screen":  st.Screen(),
		"session": st.Session().Flags(),
	})
}

func (h *StateHandler) decodeView(w http.ResponseWriter, r *http.Request) (session.View, bool) {
	var req viewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return "", false
	}
	if !req.View.Valid() {
		jsonError(w, "unknown view", http.StatusBadRequest)
		return "", false
	}
	return req.View, true
}

// SetView replaces the current view without touching the role.
// PUT /api/view
func (h *StateHandler) SetView(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	v, ok := h.decodeView(w, r)
	if !ok {
		return
	}
	st.SetCurrentView(v)
	writeJSON(w, http.StatusOK, st.Snapshot())
}

// Navigate follows a header link; going to the calendar leaves the admin
// portal.
// POST /api/navigate
func (h *StateHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	v, ok := h.decodeView(w, r)
	if !ok {
		return
	}
	st.Navigate(v)
	writeJSON(w, http.StatusOK, st.Snapshot())
}

// SetAdminView selects or leaves the admin portal.
// PUT /api/view/admin
func (h *StateHandler) SetAdminView(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	var req toggleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	st.SetAdminView(req.On)
	writeJSON(w, http.StatusOK, st.Snapshot())
}

// SetPatientView selects or leaves the patient portal.
// PUT /api/view/patient
func (h *StateHandler) SetPatientView(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	var req toggleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	st.SetPatientView(req.On)
	writeJSON(w, http.StatusOK, st.Snapshot())
}

func (h *StateHandler) decodeRole(w http.ResponseWriter, r *http.Request) (session.UserType, bool) {
	var req roleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return "", false
	}
	if req.Role != session.UserTypeAdmin && req.Role != session.UserTypePatient {
		jsonError(w, "role must be admin or patient", http.StatusBadRequest)
		return "", false
	}
	return req.Role, true
}

// EnterPortal is the landing page role choice.
// POST /api/portal
func (h *StateHandler) EnterPortal(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	role, ok := h.decodeRole(w, r)
	if !ok {
		return
	}
	st.EnterPortal(role)
	writeJSON(w, http.StatusOK, st.Snapshot())
}

// BackToHome abandons a login screen.
// POST /api/back-home
func (h *StateHandler) BackToHome(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	role, ok := h.decodeRole(w, r)
	if !ok {
		return
	}
	st.BackToHome(role)
	writeJSON(w, http.StatusOK, st.Snapshot())
}
