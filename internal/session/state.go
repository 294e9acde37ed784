// Package session models who is using a client and which screen they asked
// for. The role is a single tagged value, so combinations such as both
// portals selected at once, or a patient id without a patient session, cannot
// be represented. Every transition is a pure function returning a new State.
package session

// Role is the session's position in the login state machine.
type Role string

const (
	RoleGuest          Role = "guest"
	RoleAdminPending   Role = "admin_pending"
	RoleAdmin          Role = "admin"
	RolePatientPending Role = "patient_pending"
	RolePatient        Role = "patient"
)

// UserType tags which portal the session belongs to.
type UserType string

const (
	UserTypeNone    UserType = ""
	UserTypeAdmin   UserType = "admin"
	UserTypePatient UserType = "patient"
)

// State is the session value. The zero value is not valid; use Initial.
type State struct {
	role      Role
	patientID string
	view      View
}

// Initial is the state of a fresh client and the state Logout returns to.
func Initial() State {
	return State{role: RoleGuest, view: ViewHome}
}

func (s State) Role() Role { return s.role }
func (s State) View() View { return s.view }

// PatientID is the signed-in (or signing-in) patient id; empty otherwise.
func (s State) PatientID() string { return s.patientID }

func (s State) adminSide() bool   { return s.role == RoleAdminPending || s.role == RoleAdmin }
func (s State) patientSide() bool { return s.role == RolePatientPending || s.role == RolePatient }

// SetAdminView selects or leaves the admin portal. Selecting it drops any
// patient session; leaving it never revokes admin authentication.
func (s State) SetAdminView(on bool) State {
	if on {
		if s.role == RoleAdmin {
			return s
		}
		return State{role: RoleAdminPending, view: s.view}
	}
	if s.role == RoleAdminPending {
		return State{role: RoleGuest, view: s.view}
	}
	return s
}

// SetPatientView selects or leaves the patient portal, symmetric to
// SetAdminView.
func (s State) SetPatientView(on bool) State {
	if on {
		if s.patientSide() {
			return s
		}
		return State{role: RolePatientPending, view: s.view}
	}
	if s.role == RolePatientPending {
		return State{role: RoleGuest, view: s.view}
	}
	return s
}

// SetAdminAuthenticated records the outcome of the admin password check.
// Clearing it ends any admin-side session.
func (s State) SetAdminAuthenticated(ok bool) State {
	if ok {
		return State{role: RoleAdmin, view: s.view}
	}
	if s.adminSide() {
		return State{role: RoleGuest, view: s.view}
	}
	return s
}

// SetPatientAuthenticated records the outcome of the patient credential
// check for the pending patient id. Clearing it ends any patient-side
// session and forgets the id.
func (s State) SetPatientAuthenticated(ok bool) State {
	if ok {
		id := ""
		if s.patientSide() {
			id = s.patientID
		}
		return State{role: RolePatient, patientID: id, view: s.view}
	}
	if s.patientSide() {
		return State{role: RoleGuest, view: s.view}
	}
	return s
}

// SetCurrentPatientID sets the patient identity. Only patient-side sessions
// carry an id; other roles ignore it.
func (s State) SetCurrentPatientID(id string) State {
	if !s.patientSide() {
		return s
	}
	s.patientID = id
	return s
}

// SetCurrentView replaces the discriminator without touching the role.
func (s State) SetCurrentView(v View) State {
	s.view = v
	return s
}

// Logout resets the session to Initial.
func (s State) Logout() State {
	return Initial()
}
