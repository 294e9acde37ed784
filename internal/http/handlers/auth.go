package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/wolfman30/medicare-clinic/internal/auth"
	"github.com/wolfman30/medicare-clinic/internal/session"
	"github.com/wolfman30/medicare-clinic/internal/store"
	"github.com/wolfman30/medicare-clinic/pkg/logging"
)

// TokenIssuer signs the bearer token returned by a successful login.
type TokenIssuer interface {
	Issue(sessionID string, role session.Role, subject string) (string, time.Time, error)
}

// AuthHandler serves the admin and patient login forms.
type AuthHandler struct {
	admin   *auth.Login
	patient *auth.Login
	tokens  TokenIssuer
	logger  *logging.Logger
}

func NewAuthHandler(admin, patient *auth.Login, tokens TokenIssuer, logger *logging.Logger) *AuthHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AuthHandler{admin: admin, patient: patient, tokens: tokens, logger: logger}
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	State     store.Snapshot `json:"state"`
}

// AdminLogin handles POST /api/auth/admin/login.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.admin, session.RoleAdmin, func(auth.Credentials) string { return "admin" })
}

// PatientLogin handles POST /api/auth/patient/login.
func (h *AuthHandler) PatientLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.patient, session.RolePatient, func(c auth.Credentials) string { return strings.TrimSpace(c.ID) })
}

// login signs the token before submitting so a signing failure leaves the
// session untouched. The token is useless until the session reaches role.
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, login *auth.Login, role session.Role, subject func(auth.Credentials) string) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	var creds auth.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, exp, err := h.tokens.Issue(st.ID(), role, subject(creds))
	if err != nil {
		h.logger.Error("issue token failed", "error", err, "session_id", st.ID())
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	form := st.LoginForm(login.Role())
	_, err = login.Submit(r.Context(), form, st, creds)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrMissingCredentials):
		jsonError(w, form.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, auth.ErrSubmitInFlight):
		jsonError(w, "login already in progress", http.StatusConflict)
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		jsonError(w, form.Error(), http.StatusUnauthorized)
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// client went away; nothing to write
		return
	default:
		h.logger.Error("login failed", "error", err, "session_id", st.ID())
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token, ExpiresAt: exp, State: st.Snapshot()})
}

// Logout resets the session to its initial state, revoking any token.
// POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	st, ok := clientStore(w, r)
	if !ok {
		return
	}
	prev := st.Session().Role()
	st.Logout()
	if prev != session.RoleGuest {
		h.logger.Info("logged out", "session_id", st.ID(), "role", prev)
	}
	writeJSON(w, http.StatusOK, st.Snapshot())
}
