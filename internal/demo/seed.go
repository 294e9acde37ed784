// Package demo holds the data every new client session starts from.
package demo

import (
	"time"

	"github.com/wolfman30/medicare-clinic/internal/appointments"
	"github.com/wolfman30/medicare-clinic/internal/doctors"
	"github.com/wolfman30/medicare-clinic/internal/patients"
)

var (
	morning   = []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
	afternoon = []string{"14:00", "14:30", "15:00", "15:30", "16:00", "16:30"}
)

func week(days map[string][]string) []doctors.Availability {
	order := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	out := make([]doctors.Availability, 0, len(days))
	for _, d := range order {
		if slots, ok := days[d]; ok {
			out = append(out, doctors.Availability{Day: d, Slots: slots})
		}
	}
	return out
}

// Doctors returns the seeded roster.
func Doctors() []doctors.Doctor {
	return []doctors.Doctor{
		{
			ID:             "1",
			Name:           "Dr. Sarah Johnson",
			Specialization: "Cardiology",
			Email:          "sarah.johnson@medicare.example",
			Phone:          "+1 (555) 010-1001",
			Experience:     15,
			Rating:         4.9,
			Image:          "/images/doctors/sarah-johnson.jpg",
			Availability: week(map[string][]string{
				"Monday":    morning,
				"Wednesday": append(append([]string{}, morning...), afternoon...),
				"Friday":    afternoon,
			}),
			Conditions: []string{"Hypertension", "Arrhythmia", "Heart Failure", "Chest Pain"},
		},
		{
			ID:             "2",
			Name:           "Dr. Michael Chen",
			Specialization: "Dentistry",
			Email:          "michael.chen@medicare.example",
			Phone:          "+1 (555) 010-1002",
			Experience:     10,
			Rating:         4.8,
			Image:          "/images/doctors/michael-chen.jpg",
			Availability: week(map[string][]string{
				"Tuesday":  morning,
				"Thursday": morning,
				"Saturday": []string{"09:00", "09:30", "10:00"},
			}),
			Conditions: []string{"Tooth Decay", "Gum Disease", "Tooth Sensitivity", "Dental Cleaning"},
		},
		{
			ID:             "3",
			Name:           "Dr. Emily Rodriguez",
			Specialization: "Dermatology",
			Email:          "emily.rodriguez@medicare.example",
			Phone:          "+1 (555) 010-1003",
			Experience:     8,
			Rating:         4.7,
			Image:          "/images/doctors/emily-rodriguez.jpg",
			Availability: week(map[string][]string{
				"Monday":   afternoon,
				"Tuesday":  afternoon,
				"Thursday": afternoon,
			}),
			Conditions: []string{"Acne", "Eczema", "Psoriasis", "Allergies"},
		},
		{
			ID:             "4",
			Name:           "Dr. James Wilson",
			Specialization: "Orthopedics",
			Email:          "james.wilson@medicare.example",
			Phone:          "+1 (555) 010-1004",
			Experience:     20,
			Rating:         4.9,
			Image:          "/images/doctors/james-wilson.jpg",
			Availability: week(map[string][]string{
				"Wednesday": morning,
				"Friday":    morning,
			}),
			Conditions: []string{"Back Pain", "Arthritis", "Sports Injuries", "Fractures"},
		},
	}
}

// Appointments returns the two seeded appointments.
func Appointments() []appointments.Appointment {
	return []appointments.Appointment{
		{
			ID:           "1",
			PatientID:    "1",
			PatientName:  "John Doe",
			PatientEmail: "john@example.com",
			PatientPhone: "+1234567890",
			Date:         "2025-01-10",
			Time:         "10:00",
			Service:      "General Consultation",
			Notes:        "Regular checkup",
			Status:       appointments.StatusApproved,
			CreatedAt:    mustTime("2025-01-08T10:00:00Z"),
		},
		{
			ID:           "2",
			PatientID:    "2",
			PatientName:  "Jane Smith",
			PatientEmail: "jane@example.com",
			PatientPhone: "+1234567891",
			Date:         "2025-01-11",
			Time:         "14:30",
			Service:      "Dental Cleaning",
			Notes:        "Follow-up appointment",
			Status:       appointments.StatusPending,
			CreatedAt:    mustTime("2025-01-09T14:30:00Z"),
		},
	}
}

// Patients returns the two seeded directory records.
func Patients() []patients.Patient {
	return []patients.Patient{
		{
			ID:               "1",
			Name:             "John Doe",
			Email:            "john@example.com",
			Phone:            "+1234567890",
			DateOfBirth:      "1990-05-15",
			Address:          "123 Main St, City, State 12345",
			EmergencyContact: "+1234567899",
			MedicalHistory:   []string{"Hypertension", "Diabetes Type 2"},
			CreatedAt:        mustTime("2024-01-01T10:00:00Z"),
		},
		{
			ID:               "2",
			Name:             "Jane Smith",
			Email:            "jane@example.com",
			Phone:            "+1234567891",
			DateOfBirth:      "1985-08-22",
			Address:          "456 Oak Ave, City, State 12345",
			EmergencyContact: "+1234567898",
			MedicalHistory:   []string{"Allergies (Penicillin)"},
			CreatedAt:        mustTime("2024-01-02T10:00:00Z"),
		},
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
