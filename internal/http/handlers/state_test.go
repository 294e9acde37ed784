package handlers

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/wolfman30/medicare-clinic/internal/session"
	"github.com/wolfman30/medicare-clinic/internal/store"
	"github.com/wolfman30/medicare-clinic/internal/viewrouter"
)

func newStateClient(t *testing.T) *testClient {
	h := NewStateHandler(nil)
	return newTestClient(t, func(r chi.Router) {
		r.Get("/api/state", h.GetState)
		r.Get("/api/screen", h.GetScreen)
		r.Put("/api/view", h.SetView)
		r.Post("/api/navigate", h.Navigate)
		r.Put("/api/view/admin", h.SetAdminView)
		r.Put("/api/view/patient", h.SetPatientView)
		r.Post("/api/portal", h.EnterPortal)
		r.Post("/api/back-home", h.BackToHome)
	})
}

func TestGetStateIssuesSession(t *testing.T) {
	c := newStateClient(t)
	rec := c.do(http.MethodGet, "/api/state", nil)
	expectStatus(t, rec, http.StatusOK)

	snap := decodeBody[store.Snapshot](t, rec)
	if snap.SessionID == "" || snap.SessionID != c.session {
		t.Fatalf("expected session id echoed, got %q header %q", snap.SessionID, c.session)
	}
	if snap.Screen != viewrouter.ScreenHome || snap.Role != session.RoleGuest {
		t.Fatalf("unexpected initial snapshot %+v", snap)
	}

	// The same id keeps the same store.
	rec = c.do(http.MethodGet, "/api/state", nil)
	if got := decodeBody[store.Snapshot](t, rec).SessionID; got != snap.SessionID {
		t.Fatalf("session changed from %s to %s", snap.SessionID, got)
	}
}

func TestEnterPortalShowsLogin(t *testing.T) {
	c := newStateClient(t)
	rec := c.do(http.MethodPost, "/api/portal", map[string]string{"role": "admin"})
	expectStatus(t, rec, http.StatusOK)
	if snap := decodeBody[store.Snapshot](t, rec); snap.Screen != viewrouter.ScreenAdminLogin {
		t.Fatalf("expected admin login, got %s", snap.Screen)
	}

	rec = c.do(http.MethodPost, "/api/back-home", map[string]string{"role": "admin"})
	expectStatus(t, rec, http.StatusOK)
	if snap := decodeBody[store.Snapshot](t, rec); snap.Screen != viewrouter.ScreenHome || snap.Session.IsAdminView {
		t.Fatalf("expected home, got %+v", snap)
	}

	rec = c.do(http.MethodPost, "/api/portal", map[string]string{"role": "nurse"})
	expectStatus(t, rec, http.StatusBadRequest)
}

func TestSetViewValidates(t *testing.T) {
	c := newStateClient(t)
	expectStatus(t, c.do(http.MethodPut, "/api/view", map[string]string{"view": "nowhere"}), http.StatusBadRequest)
	expectStatus(t, c.do(http.MethodPut, "/api/view", "{"), http.StatusBadRequest)

	rec := c.do(http.MethodPut, "/api/view", map[string]string{"view": "calendar"})
	expectStatus(t, rec, http.StatusOK)
	if snap := decodeBody[store.Snapshot](t, rec); snap.Screen != viewrouter.ScreenCalendar {
		t.Fatalf("expected calendar, got %s", snap.Screen)
	}
}

func TestDashboardViewWithoutLoginRoutesToLogin(t *testing.T) {
	c := newStateClient(t)
	rec := c.do(http.MethodPut, "/api/view", map[string]string{"view": "admin-dashboard"})
	expectStatus(t, rec, http.StatusOK)

	rec = c.do(http.MethodGet, "/api/screen", nil)
	expectStatus(t, rec, http.StatusOK)
	body := decodeBody[map[string]any](t, rec)
	if body["screen"] != string(viewrouter.ScreenAdminLogin) {
		t.Fatalf("expected admin login, got %v", body["screen"])
	}
}

func TestPortalTogglesAreExclusive(t *testing.T) {
	c := newStateClient(t)
	expectStatus(t, c.do(http.MethodPut, "/api/view/patient", map[string]bool{"on": true}), http.StatusOK)
	rec := c.do(http.MethodPut, "/api/view/admin", map[string]bool{"on": true})
	expectStatus(t, rec, http.StatusOK)

	snap := decodeBody[store.Snapshot](t, rec)
	if !snap.Session.IsAdminView || snap.Session.IsPatientView {
		t.Fatalf("expected only admin view, got %+v", snap.Session)
	}
}

func TestNavigateCalendarLeavesAdminPortal(t *testing.T) {
	c := newStateClient(t)
	c.do(http.MethodPost, "/api/portal", map[string]string{"role": "admin"})
	rec := c.do(http.MethodPost, "/api/navigate", map[string]string{"view": "calendar"})
	expectStatus(t, rec, http.StatusOK)

	snap := decodeBody[store.Snapshot](t, rec)
	if snap.Session.IsAdminView || snap.Screen != viewrouter.ScreenCalendar {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}
