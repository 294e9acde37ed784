package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wolfman30/medicare-clinic/internal/doctors"
)

func newDoctorClient(t *testing.T) *testClient {
	h := NewDoctorHandler(nil)
	h.now = func() time.Time { return time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC) } // Thursday
	return newTestClient(t, func(r chi.Router) {
		r.Get("/api/doctors", h.ListDoctors)
		r.Post("/api/doctors", h.CreateDoctor)
		r.Get("/api/doctors/{doctorID}", h.GetDoctor)
		r.Put("/api/doctors/{doctorID}", h.UpdateDoctor)
		r.Delete("/api/doctors/{doctorID}", h.DeleteDoctor)
		r.Get("/api/doctors/{doctorID}/slots", h.GetSlots)
		r.Get("/api/doctors/{doctorID}/dates", h.GetDates)
	})
}

func TestListAndGetDoctors(t *testing.T) {
	c := newDoctorClient(t)
	rec := c.do(http.MethodGet, "/api/doctors", nil)
	expectStatus(t, rec, http.StatusOK)
	if got := decodeBody[map[string][]doctors.Doctor](t, rec)["doctors"]; len(got) != 4 {
		t.Fatalf("expected 4 doctors, got %d", len(got))
	}

	rec = c.do(http.MethodGet, "/api/doctors/1", nil)
	expectStatus(t, rec, http.StatusOK)
	if d := decodeBody[doctors.Doctor](t, rec); d.Specialization != "Cardiology" {
		t.Fatalf("unexpected doctor %+v", d)
	}

	expectStatus(t, c.do(http.MethodGet, "/api/doctors/99", nil), http.StatusNotFound)
}

type slotsBody struct {
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

func TestDoctorSlots(t *testing.T) {
	c := newDoctorClient(t)
	rec := c.do(http.MethodGet, "/api/doctors/1/slots?date=2026-10-19", nil) // Monday
	expectStatus(t, rec, http.StatusOK)

	body := decodeBody[slotsBody](t, rec)
	if body.Day != "Monday" || len(body.Slots) != 6 || body.Slots[0] != "09:00" {
		t.Fatalf("unexpected slots %+v", body)
	}

	rec = c.do(http.MethodGet, "/api/doctors/1/slots?date=2026-10-20", nil) // Tuesday
	expectStatus(t, rec, http.StatusOK)
	if body := decodeBody[slotsBody](t, rec); body.Slots == nil || len(body.Slots) != 0 {
		t.Fatalf("expected empty slot list, got %v", body.Slots)
	}

	expectStatus(t, c.do(http.MethodGet, "/api/doctors/1/slots", nil), http.StatusBadRequest)
	expectStatus(t, c.do(http.MethodGet, "/api/doctors/1/slots?date=19-10-2026", nil), http.StatusBadRequest)
}

func TestDoctorDates(t *testing.T) {
	c := newDoctorClient(t)
	rec := c.do(http.MethodGet, "/api/doctors/4/dates", nil) // Wednesday and Friday
	expectStatus(t, rec, http.StatusOK)

	dates := decodeBody[map[string][]string](t, rec)["dates"]
	want := []string{"2026-10-16", "2026-10-21"}
	if len(dates) != len(want) {
		t.Fatalf("expected %v, got %v", want, dates)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, dates)
		}
	}
}

func TestDoctorCRUD(t *testing.T) {
	c := newDoctorClient(t)
	expectStatus(t, c.do(http.MethodPost, "/api/doctors", map[string]any{"name": " "}), http.StatusBadRequest)
	expectStatus(t, c.do(http.MethodPost, "/api/doctors", map[string]any{"name": "Dr. X", "rating": 7}), http.StatusBadRequest)

	rec := c.do(http.MethodPost, "/api/doctors", doctors.CreateDoctorRequest{
		Name:           "Dr. Priya Patel",
		Specialization: "Neurology",
		Experience:     9,
		Rating:         4.7,
		Availability:   []doctors.Availability{{Day: "Monday", Slots: []string{"10:00"}}},
	})
	expectStatus(t, rec, http.StatusCreated)
	created := decodeBody[doctors.Doctor](t, rec)
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	rec = c.do(http.MethodPut, "/api/doctors/"+created.ID, doctors.CreateDoctorRequest{Name: "Dr. Priya Patel", Specialization: "Neurology", Rating: 5})
	expectStatus(t, rec, http.StatusOK)
	if d, _ := c.store().Doctor(created.ID); d.Rating != 5 {
		t.Fatalf("update not applied: %+v", d)
	}
	expectStatus(t, c.do(http.MethodPut, "/api/doctors/nope", doctors.CreateDoctorRequest{Name: "A"}), http.StatusNotFound)

	expectStatus(t, c.do(http.MethodDelete, "/api/doctors/"+created.ID, nil), http.StatusNoContent)
	expectStatus(t, c.do(http.MethodDelete, "/api/doctors/"+created.ID, nil), http.StatusNotFound)
}
