// Package viewrouter decides which top-level screen a client renders. It has
// no state of its own; Resolve is a pure function of the session flags.
package viewrouter

import "github.com/wolfman30/medicare-clinic/internal/session"

// Screen is a top-level screen.
type Screen string

const (
	ScreenAdminLogin       Screen = "admin-login"
	ScreenAdminDashboard   Screen = "admin-dashboard"
	ScreenPatientLogin     Screen = "patient-login"
	ScreenPatientDashboard Screen = "patient-dashboard"
	ScreenHome             Screen = "home"
	ScreenLanding          Screen = "landing"
	ScreenCalendar         Screen = "calendar"
	ScreenPatients         Screen = "patients"
	ScreenSettings         Screen = "settings"
	ScreenDoctorSchedule   Screen = "doctor"
	ScreenBooking          Screen = "booking"
)

// Input is everything routing depends on.
type Input struct {
	CurrentView            session.View
	IsAdminView            bool
	IsPatientView          bool
	IsAdminAuthenticated   bool
	IsPatientAuthenticated bool
}

// FromFlags builds an Input from a session projection.
func FromFlags(f session.Flags) Input {
	return Input{
		CurrentView:            f.CurrentView,
		IsAdminView:            f.IsAdminView,
		IsPatientView:          f.IsPatientView,
		IsAdminAuthenticated:   f.IsAdminAuthenticated,
		IsPatientAuthenticated: f.IsPatientAuthenticated,
	}
}

// Resolve picks the screen. Order matters: an unauthenticated admin view
// wins over an unauthenticated patient view, both win over the dashboards,
// and the dashboards win over the plain view switch. A protected dashboard
// is never returned without its authentication.
func Resolve(in Input) Screen {
	if in.IsAdminView && !in.IsAdminAuthenticated {
		return ScreenAdminLogin
	}
	if in.IsPatientView && !in.IsPatientAuthenticated {
		return ScreenPatientLogin
	}
	if in.CurrentView == session.ViewAdminDashboard && in.IsAdminAuthenticated {
		return ScreenAdminDashboard
	}
	if in.CurrentView == session.ViewPatientDashboard && in.IsPatientAuthenticated {
		return ScreenPatientDashboard
	}

	switch in.CurrentView {
	case session.ViewAdminDashboard:
		return ScreenAdminLogin
	case session.ViewPatientDashboard:
		return ScreenPatientLogin
	case session.ViewLanding:
		return ScreenLanding
	case session.ViewCalendar:
		return ScreenCalendar
	case session.ViewPatients:
		return ScreenPatients
	case session.ViewSettings:
		return ScreenSettings
	case session.ViewDoctor:
		return ScreenDoctorSchedule
	case session.ViewBooking:
		return ScreenBooking
	default:
		return ScreenHome
	}
}

// ForState resolves the screen for a session value.
func ForState(s session.State) Screen {
	return Resolve(FromFlags(s.Flags()))
}
