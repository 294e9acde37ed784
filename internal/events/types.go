package events

type AppointmentAddedV1 struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
	PatientName   string `json:"patient_name"`
	DoctorID      string `json:"doctor_id,omitempty"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

func (AppointmentAddedV1) EventType() string { return "appointments.appointment.added.v1" }

type AppointmentStatusChangedV1 struct {
	AppointmentID string `json:"appointment_id"`
	From          string `json:"from"`
	To            string `json:"to"`
}

func (AppointmentStatusChangedV1) EventType() string {
	return "appointments.appointment.status_changed.v1"
}

type AppointmentDeletedV1 struct {
	AppointmentID string `json:"appointment_id"`
}

func (AppointmentDeletedV1) EventType() string { return "appointments.appointment.deleted.v1" }

// DirectoryChangedV1 covers doctor roster and patient directory CRUD.
type DirectoryChangedV1 struct {
	Resource string `json:"resource"` // "doctor" or "patient"
	Op       string `json:"op"`       // "added", "updated", "deleted"
	ID       string `json:"id"`
}

func (DirectoryChangedV1) EventType() string { return "directory.record.changed.v1" }

type SessionChangedV1 struct {
	Action    string `json:"action"`
	Role      string `json:"role"`
	View      string `json:"view"`
	PatientID string `json:"patient_id,omitempty"`
}

func (SessionChangedV1) EventType() string { return "session.state.changed.v1" }

// UIStateChangedV1 covers selection scratch state and modal flags.
type UIStateChangedV1 struct {
	Action string `json:"action"`
}

func (UIStateChangedV1) EventType() string { return "ui.state.changed.v1" }
