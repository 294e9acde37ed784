package session

// View is the screen discriminator selected by navigation.
type View string

const (
	ViewHome             View = "home"
	ViewLanding          View = "landing"
	ViewCalendar         View = "calendar"
	ViewPatients         View = "patients"
	ViewSettings         View = "settings"
	ViewDoctor           View = "doctor"
	ViewBooking          View = "booking"
	ViewAdminDashboard   View = "admin-dashboard"
	ViewPatientDashboard View = "patient-dashboard"
)

// Valid reports whether v names a known screen.
func (v View) Valid() bool {
	switch v {
	case ViewHome, ViewLanding, ViewCalendar, ViewPatients, ViewSettings,
		ViewDoctor, ViewBooking, ViewAdminDashboard, ViewPatientDashboard:
		return true
	}
	return false
}
