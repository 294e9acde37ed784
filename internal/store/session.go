package store

import (
	"github.com/wolfman30/medicare-clinic/internal/events"
	"github.com/wolfman30/medicare-clinic/internal/session"
	"github.com/wolfman30/medicare-clinic/internal/viewrouter"
)

// Session returns the current session value.
func (s *Store) Session() session.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess
}

// Screen resolves the screen for the current session.
func (s *Store) Screen() viewrouter.Screen {
	return viewrouter.ForState(s.Session())
}

// updateSession applies fn atomically and publishes when the state moved.
func (s *Store) updateSession(action string, fn func(session.State) session.State) session.State {
	s.mu.Lock()
	prev := s.sess
	next := fn(prev)
	s.sess = next
	s.mu.Unlock()

	if next != prev {
		s.publish(events.SessionChangedV1{
			Action:    action,
			Role:      string(next.Role()),
			View:      string(next.View()),
			PatientID: next.PatientID(),
		})
	}
	return next
}

func (s *Store) SetAdminView(on bool) session.State {
	return s.updateSession("admin_view", func(st session.State) session.State { return st.SetAdminView(on) })
}

func (s *Store) SetPatientView(on bool) session.State {
	return s.updateSession("patient_view", func(st session.State) session.State { return st.SetPatientView(on) })
}

func (s *Store) SetAdminAuthenticated(ok bool) session.State {
	return s.updateSession("admin_auth", func(st session.State) session.State { return st.SetAdminAuthenticated(ok) })
}

func (s *Store) SetPatientAuthenticated(ok bool) session.State {
	return s.updateSession("patient_auth", func(st session.State) session.State { return st.SetPatientAuthenticated(ok) })
}

// SetCurrentPatientID sets or (with nil) clears the session patient id.
func (s *Store) SetCurrentPatientID(id *string) session.State {
	v := ""
	if id != nil {
		v = *id
	}
	return s.updateSession("patient_id", func(st session.State) session.State { return st.SetCurrentPatientID(v) })
}

// CompleteAdminLogin records a successful admin password check and opens
// the admin dashboard.
func (s *Store) CompleteAdminLogin() session.State {
	return s.updateSession("admin_login", func(st session.State) session.State {
		return st.SetAdminAuthenticated(true).SetCurrentView(session.ViewAdminDashboard)
	})
}

// CompletePatientLogin records a successful patient credential check for id
// and opens the patient dashboard. It is one step so no reader sees the id
// without the authentication.
func (s *Store) CompletePatientLogin(id string) session.State {
	return s.updateSession("patient_login", func(st session.State) session.State {
		return st.SetPatientView(true).
			SetCurrentPatientID(id).
			SetPatientAuthenticated(true).
			SetCurrentView(session.ViewPatientDashboard)
	})
}

func (s *Store) SetCurrentView(v session.View) session.State {
	return s.updateSession("view", func(st session.State) session.State { return st.SetCurrentView(v) })
}

// Navigate follows a header link.
func (s *Store) Navigate(v session.View) session.State {
	return s.updateSession("navigate", func(st session.State) session.State { return st.Navigate(v) })
}

// EnterPortal is the landing page role choice.
func (s *Store) EnterPortal(role session.UserType) session.State {
	return s.updateSession("enter_portal", func(st session.State) session.State {
		switch role {
		case session.UserTypeAdmin:
			return st.EnterAdminPortal()
		case session.UserTypePatient:
			return st.EnterPatientPortal()
		}
		return st
	})
}

func (s *Store) BackToHome(role session.UserType) session.State {
	return s.updateSession("back_to_home", func(st session.State) session.State { return st.BackToHome(role) })
}

// Logout resets the session. Data and selection are kept.
func (s *Store) Logout() session.State {
	return s.updateSession("logout", func(st session.State) session.State { return st.Logout() })
}
