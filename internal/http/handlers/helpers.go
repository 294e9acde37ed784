package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/wolfman30/medicare-clinic/internal/http/middleware"
	"github.com/wolfman30/medicare-clinic/internal/store"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads a single JSON object into dst. An empty body is an error.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return errors.New("invalid request body")
	}
	return nil
}

// clientStore returns the caller's store, writing a 500 when the session
// middleware is missing from the chain.
func clientStore(w http.ResponseWriter, r *http.Request) (*store.Store, bool) {
	st, ok := middleware.StoreFromContext(r.Context())
	if !ok {
		jsonError(w, "session unavailable", http.StatusInternalServerError)
		return nil, false
	}
	return st, true
}
