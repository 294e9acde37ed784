package appointments

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

var nowFunc = time.Now

// Book is the in-memory appointment list. Every operation is total: unknown
// ids are ignored rather than reported.
type Book struct {
	mu    sync.RWMutex
	items []Appointment
}

// NewBook creates a book holding a copy of seed.
func NewBook(seed []Appointment) *Book {
	return &Book{items: slices.Clone(seed)}
}

// Add stores a new pending appointment and returns it.
func (b *Book) Add(in NewAppointment) Appointment {
	apt := Appointment{
		ID:           uuid.New().String(),
		PatientID:    in.PatientID,
		PatientName:  in.PatientName,
		PatientEmail: in.PatientEmail,
		PatientPhone: in.PatientPhone,
		DoctorID:     in.DoctorID,
		DoctorName:   in.DoctorName,
		Date:         in.Date,
		Time:         in.Time,
		Service:      in.Service,
		Disease:      in.Disease,
		Notes:        in.Notes,
		Status:       StatusPending,
		CreatedAt:    nowFunc().UTC(),
	}

	b.mu.Lock()
	b.items = append(b.items, apt)
	b.mu.Unlock()

	return apt
}

// UpdateStatus moves the appointment to status when the lifecycle allows it.
// It returns the previous status and whether anything changed.
func (b *Book) UpdateStatus(id string, status Status) (Status, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.index(id)
	if i < 0 {
		return "", false
	}
	prev := b.items[i].Status
	if !prev.CanTransition(status) {
		return prev, false
	}
	b.items[i].Status = status
	return prev, true
}

// Delete removes the appointment with the given id.
func (b *Book) Delete(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.index(id)
	if i < 0 {
		return false
	}
	b.items = slices.Delete(b.items, i, i+1)
	return true
}

// Get retrieves an appointment by id.
func (b *Book) Get(id string) (Appointment, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if i := b.index(id); i >= 0 {
		return b.items[i], true
	}
	return Appointment{}, false
}

// List returns all appointments in booking order.
func (b *Book) List() []Appointment {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.items)
}

// Filter returns the appointments matching keep.
func (b *Book) Filter(keep func(Appointment) bool) []Appointment {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Appointment, 0, len(b.items))
	for _, apt := range b.items {
		if keep(apt) {
			out = append(out, apt)
		}
	}
	return out
}

// Len reports how many appointments are stored.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

func (b *Book) index(id string) int {
	for i, apt := range b.items {
		if apt.ID == id {
			return i
		}
	}
	return -1
}
