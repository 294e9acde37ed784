package doctors

import (
	"sync"

	"github.com/google/uuid"
)

// Roster is the in-memory doctor directory. Lookups return copies; unknown
// ids on update or delete are no-ops.
type Roster struct {
	mu      sync.RWMutex
	doctors []Doctor
}

// NewRoster creates a roster holding a copy of seed.
func NewRoster(seed []Doctor) *Roster {
	r := &Roster{doctors: make([]Doctor, 0, len(seed))}
	for _, d := range seed {
		r.doctors = append(r.doctors, d.Clone())
	}
	return r
}

// List returns every doctor in insertion order.
func (r *Roster) List() []Doctor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Doctor, len(r.doctors))
	for i, d := range r.doctors {
		out[i] = d.Clone()
	}
	return out
}

// Get retrieves a doctor by id.
func (r *Roster) Get(id string) (Doctor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.index(id); i >= 0 {
		return r.doctors[i].Clone(), true
	}
	return Doctor{}, false
}

// Add appends a new doctor with a fresh id.
func (r *Roster) Add(req CreateDoctorRequest) Doctor {
	d := req.Build(uuid.New().String())

	r.mu.Lock()
	r.doctors = append(r.doctors, d)
	r.mu.Unlock()

	return d.Clone()
}

// Update replaces the doctor with the same id.
func (r *Roster) Update(d Doctor) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(d.ID)
	if i < 0 {
		return false
	}
	r.doctors[i] = d.Clone()
	return true
}

// Delete removes the doctor with the given id.
func (r *Roster) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return false
	}
	r.doctors = append(r.doctors[:i], r.doctors[i+1:]...)
	return true
}

// Len reports the roster size.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.doctors)
}

func (r *Roster) index(id string) int {
	for i, d := range r.doctors {
		if d.ID == id {
			return i
		}
	}
	return -1
}
