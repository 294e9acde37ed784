package store

import (
	"github.com/wolfman30/medicare-clinic/internal/doctors"
	"github.com/wolfman30/medicare-clinic/internal/events"
	"github.com/wolfman30/medicare-clinic/internal/patients"
)

const (
	resourceDoctor  = "doctor"
	resourcePatient = "patient"
)

func (s *Store) directoryChanged(resource, op, id string) {
	s.publish(events.DirectoryChangedV1{Resource: resource, Op: op, ID: id})
}

func (s *Store) Doctors() []doctors.Doctor { return s.roster.List() }

func (s *Store) Doctor(id string) (doctors.Doctor, bool) { return s.roster.Get(id) }

// AddDoctor appends a doctor to the roster. The request is expected to be
// validated already.
func (s *Store) AddDoctor(req doctors.CreateDoctorRequest) doctors.Doctor {
	d := s.roster.Add(req)
	s.directoryChanged(resourceDoctor, "added", d.ID)
	return d
}

func (s *Store) UpdateDoctor(d doctors.Doctor) bool {
	if !s.roster.Update(d) {
		return false
	}
	s.directoryChanged(resourceDoctor, "updated", d.ID)
	return true
}

func (s *Store) DeleteDoctor(id string) bool {
	if !s.roster.Delete(id) {
		return false
	}
	s.directoryChanged(resourceDoctor, "deleted", id)
	return true
}

func (s *Store) Patients() []patients.Patient { return s.patients.List() }

func (s *Store) Patient(id string) (patients.Patient, bool) { return s.patients.Get(id) }

// AddPatient appends a directory record.
func (s *Store) AddPatient(in patients.NewPatient) patients.Patient {
	p := s.patients.Add(in)
	s.directoryChanged(resourcePatient, "added", p.ID)
	return p
}

func (s *Store) UpdatePatient(p patients.Patient) bool {
	if !s.patients.Update(p) {
		return false
	}
	s.directoryChanged(resourcePatient, "updated", p.ID)
	return true
}

func (s *Store) DeletePatient(id string) bool {
	if !s.patients.Delete(id) {
		return false
	}
	s.directoryChanged(resourcePatient, "deleted", id)
	return true
}

// SetSelectedPatient picks the record the directory modal edits; nil means
// the modal adds a new one.
func (s *Store) SetSelectedPatient(p *patients.Patient) {
	s.patients.SetSelected(p)
	s.publish(events.UIStateChangedV1{Action: "patient_selected"})
}

func (s *Store) SelectedPatient() *patients.Patient { return s.patients.Selected() }

func (s *Store) SetPatientModalOpen(open bool) {
	s.patients.SetModalOpen(open)
	s.publish(events.UIStateChangedV1{Action: modalAction("patient_modal", open)})
}

func (s *Store) PatientModalOpen() bool { return s.patients.ModalOpen() }

func modalAction(prefix string, open bool) string {
	if open {
		return prefix + "_opened"
	}
	return prefix + "_closed"
}
