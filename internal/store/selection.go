package store

import (
	"github.com/wolfman30/medicare-clinic/internal/doctors"
	"github.com/wolfman30/medicare-clinic/internal/events"
)

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

// Selection returns a copy of the booking scratch state.
func (s *Store) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectionLocked()
}

func (s *Store) selectionLocked() Selection {
	out := Selection{Date: cloneString(s.selection.Date), Time: cloneString(s.selection.Time)}
	if s.selection.Doctor != nil {
		d := s.selection.Doctor.Clone()
		out.Doctor = &d
	}
	return out
}

func (s *Store) SetSelectedDate(date *string) {
	s.mu.Lock()
	s.selection.Date = cloneString(date)
	s.mu.Unlock()
	s.publish(events.UIStateChangedV1{Action: "date_selected"})
}

func (s *Store) SetSelectedTime(t *string) {
	s.mu.Lock()
	s.selection.Time = cloneString(t)
	s.mu.Unlock()
	s.publish(events.UIStateChangedV1{Action: "time_selected"})
}

func (s *Store) SetSelectedDoctor(d *doctors.Doctor) {
	s.mu.Lock()
	if d == nil {
		s.selection.Doctor = nil
	} else {
		cp := d.Clone()
		s.selection.Doctor = &cp
	}
	s.mu.Unlock()
	s.publish(events.UIStateChangedV1{Action: "doctor_selected"})
}

// ClearSelection drops date, time and doctor.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	s.selection = Selection{}
	s.mu.Unlock()
	s.publish(events.UIStateChangedV1{Action: "selection_cleared"})
}

func (s *Store) SetBookingModalOpen(open bool) {
	s.mu.Lock()
	s.bookingOpen = open
	s.mu.Unlock()
	s.publish(events.UIStateChangedV1{Action: modalAction("booking_modal", open)})
}

// CloseBookingModal closes the calendar booking modal and forgets the date
// and time picked for it.
func (s *Store) CloseBookingModal() {
	s.mu.Lock()
	s.bookingOpen = false
	s.selection.Date = nil
	s.selection.Time = nil
	s.mu.Unlock()
	s.publish(events.UIStateChangedV1{Action: modalAction("booking_modal", false)})
}

func (s *Store) BookingModalOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookingOpen
}
