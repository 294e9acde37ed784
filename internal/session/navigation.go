package session

// Navigate follows a header link. Going to the calendar also leaves the
// admin portal.
func (s State) Navigate(v View) State {
	s = s.SetCurrentView(v)
	if v == ViewCalendar {
		s = s.SetAdminView(false)
	}
	return s
}

// EnterAdminPortal is the landing page's admin choice.
func (s State) EnterAdminPortal() State {
	return s.SetAdminView(true).SetCurrentView(ViewAdminDashboard)
}

// EnterPatientPortal is the landing page's patient choice.
func (s State) EnterPatientPortal() State {
	return s.SetPatientView(true).SetCurrentView(ViewPatientDashboard)
}

// BackToHome abandons a login form for role and returns home.
func (s State) BackToHome(role UserType) State {
	switch role {
	case UserTypeAdmin:
		s = s.SetAdminView(false)
	case UserTypePatient:
		s = s.SetPatientView(false)
	}
	return s.SetCurrentView(ViewHome)
}
