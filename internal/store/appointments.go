package store

import (
	"github.com/wolfman30/medicare-clinic/internal/appointments"
	"github.com/wolfman30/medicare-clinic/internal/events"
)

// Appointments lists every appointment.
func (s *Store) Appointments() []appointments.Appointment {
	return s.book.List()
}

// AppointmentsWhere lists the appointments matching keep.
func (s *Store) AppointmentsWhere(keep func(appointments.Appointment) bool) []appointments.Appointment {
	return s.book.Filter(keep)
}

// Appointment looks one up by id.
func (s *Store) Appointment(id string) (appointments.Appointment, bool) {
	return s.book.Get(id)
}

// AddAppointment stores a new pending appointment.
func (s *Store) AddAppointment(in appointments.NewAppointment) appointments.Appointment {
	apt := s.book.Add(in)
	s.publish(events.AppointmentAddedV1{
		AppointmentID: apt.ID,
		Status:        string(apt.Status),
		PatientName:   apt.PatientName,
		DoctorID:      apt.DoctorID,
		Date:          apt.Date,
		Time:          apt.Time,
	})
	return apt
}

// UpdateAppointmentStatus applies status when the appointment exists and the
// lifecycle allows it. It reports whether anything changed.
func (s *Store) UpdateAppointmentStatus(id string, status appointments.Status) bool {
	prev, changed := s.book.UpdateStatus(id, status)
	if changed {
		s.publish(events.AppointmentStatusChangedV1{
			AppointmentID: id,
			From:          string(prev),
			To:            string(status),
		})
	}
	return changed
}

// DeleteAppointment removes an appointment; unknown ids are ignored.
func (s *Store) DeleteAppointment(id string) bool {
	if !s.book.Delete(id) {
		return false
	}
	s.publish(events.AppointmentDeletedV1{AppointmentID: id})
	return true
}
