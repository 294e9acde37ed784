package store

import (
	"github.com/wolfman30/medicare-clinic/internal/patients"
	"github.com/wolfman30/medicare-clinic/internal/session"
	"github.com/wolfman30/medicare-clinic/internal/viewrouter"
)

// Counts summarises collection sizes.
type Counts struct {
	Appointments int `json:"appointments"`
	Doctors      int `json:"doctors"`
	Patients     int `json:"patients"`
}

// Snapshot is the read model served to a client.
type Snapshot struct {
	SessionID        string            `json:"sessionId"`
	Role             session.Role      `json:"role"`
	Screen           viewrouter.Screen `json:"screen"`
	Session          session.Flags     `json:"session"`
	Selection        Selection         `json:"selection"`
	BookingModalOpen bool              `json:"isBookingModalOpen"`
	SelectedPatient  *patients.Patient `json:"selectedPatient"`
	PatientModalOpen bool              `json:"isPatientModalOpen"`
	Counts           Counts            `json:"counts"`
}

// Snapshot captures the store's current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	sess := s.sess
	sel := s.selectionLocked()
	bookingOpen := s.bookingOpen
	s.mu.Unlock()

	return Snapshot{
		SessionID:        s.id,
		Role:             sess.Role(),
		Screen:           viewrouter.ForState(sess),
		Session:          sess.Flags(),
		Selection:        sel,
		BookingModalOpen: bookingOpen,
		SelectedPatient:  s.patients.Selected(),
		PatientModalOpen: s.patients.ModalOpen(),
		Counts: Counts{
			Appointments: s.book.Len(),
			Doctors:      s.roster.Len(),
			Patients:     len(s.patients.List()),
		},
	}
}
