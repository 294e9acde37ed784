package handlers

import (
	"net/http"

	"github.com/wolfman30/medicare-clinic/internal/preferences"
	"github.com/wolfman30/medicare-clinic/pkg/logging"
)

// ThemeHandler serves the display theme. The theme is shared by every
// session rather than stored per client.
type ThemeHandler struct {
	store  preferences.ThemeStore
	logger *logging.Logger
}

func NewThemeHandler(store preferences.ThemeStore, logger *logging.Logger) *ThemeHandler {
	if store == nil {
		store = preferences.NewMemoryThemeStore()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ThemeHandler{store: store, logger: logger}
}

type themeResponse struct {
	Theme preferences.Theme `json:"theme"`
}

// GetTheme handles GET /api/theme.
func (h *ThemeHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	t, err := h.store.Load(r.Context())
	if err != nil {
		h.logger.Warn("theme load failed; serving default", "error", err)
		t = preferences.DefaultTheme
	}
	writeJSON(w, http.StatusOK, themeResponse{Theme: t})
}

// ToggleTheme handles POST /api/theme/toggle.
func (h *ThemeHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	t, err := preferences.Toggle(r.Context(), h.store)
	if err != nil {
		h.logger.Error("theme toggle failed", "error", err)
		jsonError(w, "theme unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{Theme: t})
}

// SetTheme handles PUT /api/theme with {"theme":"dark"|"light"}.
func (h *ThemeHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	t, err := preferences.ParseTheme(req.Theme)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.store.Save(r.Context(), t); err != nil {
		h.logger.Error("theme save failed", "error", err)
		jsonError(w, "theme unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{Theme: t})
}
