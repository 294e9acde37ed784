package appointments

import "time"

// Status is the appointment lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// transitions lists the states reachable from each status. Rejected and
// completed are terminal.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusCompleted},
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// CanTransition reports whether the lifecycle allows moving from s to next.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment is a booked visit.
type Appointment struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patientId"`
	PatientName  string    `json:"patientName"`
	PatientEmail string    `json:"patientEmail"`
	PatientPhone string    `json:"patientPhone"`
	DoctorID     string    `json:"doctorId,omitempty"`
	DoctorName   string    `json:"doctorName,omitempty"`
	Date         string    `json:"date"` // YYYY-MM-DD
	Time         string    `json:"time"` // HH:MM
	Service      string    `json:"service"`
	Disease      string    `json:"disease,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewAppointment is the caller-supplied part of an appointment. Any status it
// carries is ignored: new appointments always start pending.
type NewAppointment struct {
	PatientID    string `json:"patientId"`
	PatientName  string `json:"patientName"`
	PatientEmail string `json:"patientEmail"`
	PatientPhone string `json:"patientPhone"`
	DoctorID     string `json:"doctorId,omitempty"`
	DoctorName   string `json:"doctorName,omitempty"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Service      string `json:"service"`
	Disease      string `json:"disease,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Status       Status `json:"status,omitempty"`
}
