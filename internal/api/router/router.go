package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wolfman30/medicare-clinic/internal/auth"
	"github.com/wolfman30/medicare-clinic/internal/http/handlers"
	httpmiddleware "github.com/wolfman30/medicare-clinic/internal/http/middleware"
	"github.com/wolfman30/medicare-clinic/internal/session"
	"github.com/wolfman30/medicare-clinic/internal/store"
	"github.com/wolfman30/medicare-clinic/internal/stream"
	"github.com/wolfman30/medicare-clinic/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	Registry           *store.Registry
	Tokens             *auth.TokenIssuer
	State              *handlers.StateHandler
	Auth               *handlers.AuthHandler
	Doctors            *handlers.DoctorHandler
	Appointments       *handlers.AppointmentHandler
	Patients           *handlers.PatientHandler
	Dashboards         *handlers.DashboardHandler
	Theme              *handlers.ThemeHandler
	Stream             *stream.Handler
	RateLimiter        *httpmiddleware.RateLimiter
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints
	r.Group(func(public chi.Router) {
		public.Get("/health", healthCheck(cfg.Registry))
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
	})

	r.Route("/api", func(api chi.Router) {
		if cfg.Theme != nil {
			api.Route("/theme", func(theme chi.Router) {
				theme.Get("/", cfg.Theme.GetTheme)
				theme.Put("/", cfg.Theme.SetTheme)
				theme.Post("/toggle", cfg.Theme.ToggleTheme)
			})
		}

		api.Group(func(sess chi.Router) {
			if cfg.RateLimiter != nil {
				sess.Use(cfg.RateLimiter.SessionHandler(cfg.Registry.Has))
			}
			sess.Use(httpmiddleware.Sessions(cfg.Registry))

			// The websocket upgrade must not go through the compressor.
			if cfg.Stream != nil {
				sess.Get("/stream", cfg.Stream.HandleWebSocket)
			}

			sess.Group(func(rest chi.Router) {
				rest.Use(middleware.Compress(5))
				mountSessionRoutes(rest, cfg)

				rest.Group(func(admin chi.Router) {
					admin.Use(httpmiddleware.RequireRole(cfg.Tokens, session.RoleAdmin))
					mountAdminRoutes(admin, cfg)
				})
				rest.Group(func(patient chi.Router) {
					patient.Use(httpmiddleware.RequireRole(cfg.Tokens, session.RolePatient))
					if cfg.Dashboards != nil {
						patient.Get("/dashboard/patient", cfg.Dashboards.Patient)
					}
				})
			})
		})
	})

	return r
}

// mountSessionRoutes registers everything a guest session may call.
func mountSessionRoutes(r chi.Router, cfg *Config) {
	if h := cfg.State; h != nil {
		r.Get("/state", h.GetState)
		r.Get("/screen", h.GetScreen)
		r.Put("/view", h.SetView)
		r.Put("/view/admin", h.SetAdminView)
		r.Put("/view/patient", h.SetPatientView)
		r.Post("/navigate", h.Navigate)
		r.Post("/portal", h.EnterPortal)
		r.Post("/back-home", h.BackToHome)
	}
	if h := cfg.Auth; h != nil {
		r.Post("/auth/admin/login", h.AdminLogin)
		r.Post("/auth/patient/login", h.PatientLogin)
		r.Post("/auth/logout", h.Logout)
	}
	if h := cfg.Doctors; h != nil {
		r.Get("/doctors", h.ListDoctors)
		r.Get("/doctors/{doctorID}", h.GetDoctor)
		r.Get("/doctors/{doctorID}/slots", h.GetSlots)
		r.Get("/doctors/{doctorID}/dates", h.GetDates)
	}
	if h := cfg.Appointments; h != nil {
		r.Get("/appointments", h.ListAppointments)
		r.Post("/bookings", h.Book)
		r.Get("/booking/catalog", h.Catalog)
		r.Put("/booking-modal", h.SetBookingModal)
		r.Put("/selection", h.SetSelection)
		r.Delete("/selection", h.ClearSelection)
	}
	if h := cfg.Dashboards; h != nil {
		r.Get("/dashboard/schedule", h.Schedule)
	}
}

// mountAdminRoutes registers the routes behind an admin token.
func mountAdminRoutes(r chi.Router, cfg *Config) {
	if h := cfg.Doctors; h != nil {
		r.Post("/doctors", h.CreateDoctor)
		r.Put("/doctors/{doctorID}", h.UpdateDoctor)
		r.Delete("/doctors/{doctorID}", h.DeleteDoctor)
	}
	if h := cfg.Appointments; h != nil {
		r.Patch("/appointments/{appointmentID}/status", h.UpdateStatus)
		r.Delete("/appointments/{appointmentID}", h.DeleteAppointment)
	}
	if h := cfg.Patients; h != nil {
		r.Get("/patients", h.ListPatients)
		r.Post("/patients", h.CreatePatient)
		r.Put("/patients/selection", h.SetSelection)
		r.Put("/patients/modal", h.SetModal)
		r.Put("/patients/{patientID}", h.UpdatePatient)
		r.Delete("/patients/{patientID}", h.DeletePatient)
	}
	if h := cfg.Dashboards; h != nil {
		r.Get("/dashboard/admin", h.Admin)
	}
}

func healthCheck(reg *store.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		sessions := 0
		if reg != nil {
			sessions = reg.Len()
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok", "sessions": sessions})
	}
}
