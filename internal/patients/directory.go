package patients

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

var nowFunc = time.Now

// Directory is the in-memory patient list plus the add/edit modal state.
type Directory struct {
	mu        sync.RWMutex
	patients  []Patient
	selected  *Patient
	modalOpen bool
}

// NewDirectory creates a directory holding a copy of seed.
func NewDirectory(seed []Patient) *Directory {
	d := &Directory{patients: make([]Patient, 0, len(seed))}
	for _, p := range seed {
		d.patients = append(d.patients, p.clone())
	}
	return d
}

// Add appends a new record with a fresh id and creation timestamp.
func (d *Directory) Add(in NewPatient) Patient {
	p := Patient{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		DateOfBirth:      in.DateOfBirth,
		Address:          in.Address,
		EmergencyContact: in.EmergencyContact,
		MedicalHistory:   in.MedicalHistory,
		CreatedAt:        nowFunc().UTC(),
	}.clone()
	if p.MedicalHistory == nil {
		p.MedicalHistory = []string{}
	}

	d.mu.Lock()
	d.patients = append(d.patients, p)
	d.mu.Unlock()

	return p.clone()
}

// Update replaces the record whose id matches p.ID.
func (d *Directory) Update(p Patient) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.index(p.ID)
	if i < 0 {
		return false
	}
	d.patients[i] = p.clone()
	return true
}

// Delete removes the record with the given id.
func (d *Directory) Delete(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.index(id)
	if i < 0 {
		return false
	}
	d.patients = append(d.patients[:i], d.patients[i+1:]...)
	return true
}

// Get retrieves a record by id.
func (d *Directory) Get(id string) (Patient, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if i := d.index(id); i >= 0 {
		return d.patients[i].clone(), true
	}
	return Patient{}, false
}

// List returns all records in insertion order.
func (d *Directory) List() []Patient {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Patient, len(d.patients))
	for i, p := range d.patients {
		out[i] = p.clone()
	}
	return out
}

// SetSelected records the patient being edited; nil means "adding new".
func (d *Directory) SetSelected(p *Patient) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p == nil {
		d.selected = nil
		return
	}
	cp := p.clone()
	d.selected = &cp
}

// Selected returns the patient being edited, if any.
func (d *Directory) Selected() *Patient {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.selected == nil {
		return nil
	}
	cp := d.selected.clone()
	return &cp
}

// SetModalOpen toggles the add/edit dialog.
func (d *Directory) SetModalOpen(open bool) {
	d.mu.Lock()
	d.modalOpen = open
	d.mu.Unlock()
}

// ModalOpen reports whether the add/edit dialog is shown.
func (d *Directory) ModalOpen() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.modalOpen
}

func (d *Directory) index(id string) int {
	for i, p := range d.patients {
		if p.ID == id {
			return i
		}
	}
	return -1
}
