package session

// Flags is the boolean projection of a State used by screens and the view
// router.
type Flags struct {
	IsAdminView            bool     `json:"isAdminView"`
	IsPatientView          bool     `json:"isPatientView"`
	IsAdminAuthenticated   bool     `json:"isAdminAuthenticated"`
	IsPatientAuthenticated bool     `json:"isPatientAuthenticated"`
	CurrentPatientID       *string  `json:"currentPatientId"`
	UserType               UserType `json:"userType"`
	CurrentView            View     `json:"currentView"`
}

// Flags projects s onto the legacy flag set.
func (s State) Flags() Flags {
	f := Flags{
		IsAdminView:            s.adminSide(),
		IsPatientView:          s.patientSide(),
		IsAdminAuthenticated:   s.role == RoleAdmin,
		IsPatientAuthenticated: s.role == RolePatient,
		CurrentView:            s.view,
	}
	switch {
	case s.adminSide():
		f.UserType = UserTypeAdmin
	case s.patientSide():
		f.UserType = UserTypePatient
	}
	if s.patientID != "" {
		id := s.patientID
		f.CurrentPatientID = &id
	}
	return f
}
