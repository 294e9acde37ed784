// Package booking turns the doctor-booking flow and the calendar booking
// modal into pending appointments.
package booking

import "slices"

// TimeSlots are the half-hour slots offered by the calendar modal.
var TimeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
}

// Services is the modal's service catalogue.
var Services = []string{
	"General Consultation",
	"Dental Cleaning",
	"Eye Examination",
	"Blood Test",
	"X-Ray",
	"Physical Therapy",
	"Vaccination",
}

func IsTimeSlot(s string) bool { return slices.Contains(TimeSlots, s) }

func IsService(s string) bool { return slices.Contains(Services, s) }
