// Package store is one client's state container: appointments, the doctor
// roster, the patient directory, selection scratch state, modal flags and the
// session. Every mutation is synchronous and total, and every mutation that
// changes something publishes an event on the bus.
package store

import (
	"sync"
	"time"

	"github.com/wolfman30/medicare-clinic/internal/appointments"
	"github.com/wolfman30/medicare-clinic/internal/demo"
	"github.com/wolfman30/medicare-clinic/internal/doctors"
	"github.com/wolfman30/medicare-clinic/internal/events"
	"github.com/wolfman30/medicare-clinic/internal/forms"
	"github.com/wolfman30/medicare-clinic/internal/patients"
	"github.com/wolfman30/medicare-clinic/internal/session"
)

// Seed is the data a store starts from.
type Seed struct {
	Doctors      []doctors.Doctor
	Appointments []appointments.Appointment
	Patients     []patients.Patient
}

// DemoSeed returns the standard demo data.
func DemoSeed() Seed {
	return Seed{
		Doctors:      demo.Doctors(),
		Appointments: demo.Appointments(),
		Patients:     demo.Patients(),
	}
}

// Selection is the booking scratch state.
type Selection struct {
	Date   *string         `json:"selectedDate"`
	Time   *string         `json:"selectedTime"`
	Doctor *doctors.Doctor `json:"selectedDoctor"`
}

// Store holds one client's state.
type Store struct {
	id  string
	bus *events.Bus

	book     *appointments.Book
	roster   *doctors.Roster
	patients *patients.Directory

	mu          sync.Mutex
	sess        session.State
	selection   Selection
	bookingOpen bool
	lastSeen    time.Time

	adminLogin   forms.Submission
	patientLogin forms.Submission
	bookingForm  forms.Submission
}

// New creates a store seeded with seed. A nil bus disables events.
func New(id string, seed Seed, bus *events.Bus) *Store {
	return &Store{
		id:       id,
		bus:      bus,
		book:     appointments.NewBook(seed.Appointments),
		roster:   doctors.NewRoster(seed.Doctors),
		patients: patients.NewDirectory(seed.Patients),
		sess:     session.Initial(),
		lastSeen: nowFunc(),
	}
}

var nowFunc = time.Now

// ID is the session id the store is registered under.
func (s *Store) ID() string { return s.id }

// AdminLoginForm is this client's admin login form state.
func (s *Store) AdminLoginForm() *forms.Submission { return &s.adminLogin }

// PatientLoginForm is this client's patient login form state.
func (s *Store) PatientLoginForm() *forms.Submission { return &s.patientLogin }

// BookingForm is this client's booking form state, shared by the doctor
// flow and the calendar modal.
func (s *Store) BookingForm() *forms.Submission { return &s.bookingForm }

// LoginForm returns the form state for role, or nil.
func (s *Store) LoginForm(role session.UserType) *forms.Submission {
	switch role {
	case session.UserTypeAdmin:
		return &s.adminLogin
	case session.UserTypePatient:
		return &s.patientLogin
	}
	return nil
}

func (s *Store) publish(evt events.CanonicalEvent) {
	s.bus.Publish(s.id, evt)
}

func (s *Store) touch() {
	s.mu.Lock()
	s.lastSeen = nowFunc()
	s.mu.Unlock()
}

func (s *Store) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
