package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wolfman30/medicare-clinic/internal/appointments"
	"github.com/wolfman30/medicare-clinic/internal/doctors"
	"github.com/wolfman30/medicare-clinic/internal/forms"
	"github.com/wolfman30/medicare-clinic/internal/latency"
	"github.com/wolfman30/medicare-clinic/internal/session"
	"github.com/wolfman30/medicare-clinic/pkg/logging"
)

// Target is the client state a booking lands in.
type Target interface {
	Doctor(id string) (doctors.Doctor, bool)
	Session() session.State
	AddAppointment(in appointments.NewAppointment) appointments.Appointment
	ClearSelection()
	CloseBookingModal()
	BookingForm() *forms.Submission
}

// Observer records booking outcomes.
type Observer interface {
	ObserveBooking(flow string, ok bool)
	ObserveSubmitLatency(form string, seconds float64)
}

// Service submits booking forms.
type Service struct {
	delay    latency.Delayer
	tracer   trace.Tracer
	observer Observer
	logger   *logging.Logger
	newID    func() string
}

func NewService(delay latency.Delayer, logger *logging.Logger) *Service {
	if delay == nil {
		delay = latency.None
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		delay:  delay,
		tracer: otel.Tracer("medicare.internal.booking"),
		logger: logger,
		newID:  func() string { return uuid.New().String() },
	}
}

func (s *Service) WithObserver(o Observer) *Service {
	s.observer = o
	return s
}

func (s *Service) WithTracer(t trace.Tracer) *Service {
	if t != nil {
		s.tracer = t
	}
	return s
}

// Submit validates req, waits out the simulated round trip and stores a
// pending appointment. Afterwards the selection is cleared and, for the
// modal flow, the modal is closed.
func (s *Service) Submit(ctx context.Context, t Target, req Request) (appointments.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "booking.submit")
	defer span.End()

	req.normalize()
	span.SetAttributes(attribute.String("medicare.booking.flow", string(req.Flow)))

	doc, err := req.validate(t.Doctor)
	if err != nil {
		s.observe(req.Flow, false, 0)
		span.RecordError(err)
		return appointments.Appointment{}, err
	}

	form := t.BookingForm()
	if err := form.Begin(); err != nil {
		return appointments.Appointment{}, err
	}
	start := time.Now()
	if err := s.delay.Wait(ctx); err != nil {
		form.Finish("")
		span.RecordError(err)
		return appointments.Appointment{}, err
	}

	in := appointments.NewAppointment{
		PatientID:    s.patientID(t.Session()),
		PatientName:  req.PatientName,
		PatientEmail: req.PatientEmail,
		PatientPhone: req.PatientPhone,
		Date:         req.Date,
		Time:         req.Time,
		Service:      req.Service,
		Disease:      req.Disease,
		Notes:        req.Notes,
	}
	if doc != nil {
		in.DoctorID = doc.ID
		in.DoctorName = doc.Name
	}
	apt := t.AddAppointment(in)

	if req.Flow == FlowModal {
		t.CloseBookingModal()
	}
	t.ClearSelection()
	form.Finish("")

	s.observe(req.Flow, true, time.Since(start).Seconds())
	span.SetAttributes(attribute.String("medicare.appointment_id", apt.ID))
	s.logger.Info("appointment booked", "appointment_id", apt.ID, "flow", req.Flow, "date", apt.Date, "time", apt.Time)
	return apt, nil
}

// patientID links the appointment to the signed-in patient when there is
// one; anonymous bookings get a fresh id.
func (s *Service) patientID(st session.State) string {
	if st.Role() == session.RolePatient && st.PatientID() != "" {
		return st.PatientID()
	}
	return s.newID()
}

func (s *Service) observe(flow Flow, ok bool, seconds float64) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveBooking(string(flow), ok)
	if ok {
		s.observer.ObserveSubmitLatency("booking", seconds)
	}
}
