// Package dashboard derives the read-only dashboard views from the
// appointment list. Nothing here mutates state.
package dashboard

import (
	"cmp"
	"slices"
	"time"

	"github.com/wolfman30/medicare-clinic/internal/appointments"
	"github.com/wolfman30/medicare-clinic/internal/patients"
)

const dateLayout = "2006-01-02"

// AdminSummary is the admin dashboard: appointments bucketed by status.
type AdminSummary struct {
	Pending   []appointments.Appointment `json:"pending"`
	Approved  []appointments.Appointment `json:"approved"`
	Rejected  []appointments.Appointment `json:"rejected"`
	Completed []appointments.Appointment `json:"completed"`
	Counts    StatusCounts               `json:"counts"`
}

type StatusCounts struct {
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Completed int `json:"completed"`
}

// Admin buckets apts by status, keeping list order inside each bucket.
func Admin(apts []appointments.Appointment) AdminSummary {
	out := AdminSummary{
		Pending:   []appointments.Appointment{},
		Approved:  []appointments.Appointment{},
		Rejected:  []appointments.Appointment{},
		Completed: []appointments.Appointment{},
	}
	for _, apt := range apts {
		switch apt.Status {
		case appointments.StatusPending:
			out.Pending = append(out.Pending, apt)
		case appointments.StatusApproved:
			out.Approved = append(out.Approved, apt)
		case appointments.StatusRejected:
			out.Rejected = append(out.Rejected, apt)
		case appointments.StatusCompleted:
			out.Completed = append(out.Completed, apt)
		}
	}
	out.Counts = StatusCounts{
		Pending:   len(out.Pending),
		Approved:  len(out.Approved),
		Rejected:  len(out.Rejected),
		Completed: len(out.Completed),
	}
	return out
}

// Schedule is the doctor schedule screen.
type Schedule struct {
	Today    []appointments.Appointment `json:"today"`
	Tomorrow []appointments.Appointment `json:"tomorrow"`
	Upcoming []appointments.Appointment `json:"upcoming"`
	Stats    ScheduleStats              `json:"stats"`
}

type ScheduleStats struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Today    int `json:"today"`
}

// DoctorSchedule lists approved appointments for today, tomorrow and the
// seven days starting today, relative to now's calendar date.
func DoctorSchedule(apts []appointments.Appointment, now time.Time) Schedule {
	today := now.Format(dateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(dateLayout)
	horizon := now.AddDate(0, 0, 7).Format(dateLayout)

	out := Schedule{
		Today:    []appointments.Appointment{},
		Tomorrow: []appointments.Appointment{},
		Upcoming: []appointments.Appointment{},
	}
	for _, apt := range apts {
		out.Stats.Total++
		switch apt.Status {
		case appointments.StatusPending:
			out.Stats.Pending++
			continue
		case appointments.StatusApproved:
			out.Stats.Approved++
		default:
			continue
		}
		// Dates are YYYY-MM-DD so string order is calendar order.
		switch {
		case apt.Date == today:
			out.Today = append(out.Today, apt)
		case apt.Date == tomorrow:
			out.Tomorrow = append(out.Tomorrow, apt)
		}
		if apt.Date >= today && apt.Date <= horizon {
			out.Upcoming = append(out.Upcoming, apt)
		}
	}
	out.Stats.Today = len(out.Today)

	byTime := func(a, b appointments.Appointment) int { return cmp.Compare(a.Time, b.Time) }
	slices.SortStableFunc(out.Today, byTime)
	slices.SortStableFunc(out.Tomorrow, byTime)
	slices.SortStableFunc(out.Upcoming, func(a, b appointments.Appointment) int {
		if c := cmp.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return byTime(a, b)
	})
	return out
}

// ForPatient returns the appointments booked by the given session patient.
func ForPatient(apts []appointments.Appointment, patientID string) []appointments.Appointment {
	out := []appointments.Appointment{}
	if patientID == "" {
		return out
	}
	for _, apt := range apts {
		if apt.PatientID == patientID {
			out = append(out, apt)
		}
	}
	return out
}

// PatientRow is one line of the patient directory list.
type PatientRow struct {
	patients.Patient
	Appointments int `json:"appointmentCount"`
	Upcoming     int `json:"upcomingCount"`
}

// PatientList annotates each directory record with its appointment count and
// the number of approved appointments dated today or later.
func PatientList(pts []patients.Patient, apts []appointments.Appointment, now time.Time) []PatientRow {
	today := now.Format(dateLayout)
	rows := make([]PatientRow, 0, len(pts))
	for _, p := range pts {
		row := PatientRow{Patient: p}
		for _, apt := range apts {
			if apt.PatientID != p.ID {
				continue
			}
			row.Appointments++
			if apt.Status == appointments.StatusApproved && apt.Date >= today {
				row.Upcoming++
			}
		}
		rows = append(rows, row)
	}
	return rows
}
