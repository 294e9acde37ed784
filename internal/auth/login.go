package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wolfman30/medicare-clinic/internal/forms"
	"github.com/wolfman30/medicare-clinic/internal/latency"
	"github.com/wolfman30/medicare-clinic/internal/session"
	"github.com/wolfman30/medicare-clinic/pkg/logging"
)

const (
	AdminFailureMessage   = "Invalid password. Please try again."
	PatientFailureMessage = "Invalid Patient ID or Password"
	MissingFieldsMessage  = "Please fill in all fields"
)

// SessionSink applies a successful login to a client session.
type SessionSink interface {
	CompleteAdminLogin() session.State
	CompletePatientLogin(id string) session.State
}

// LoginObserver records login outcomes.
type LoginObserver interface {
	ObserveLogin(role string, ok bool)
	ObserveSubmitLatency(form string, seconds float64)
}

// Login runs the submit cycle for one portal. It is shared by every client;
// per-client form state lives in a forms.Submission.
type Login struct {
	role     session.UserType
	auth     Authenticator
	delay    latency.Delayer
	tracer   trace.Tracer
	observer LoginObserver
	logger   *logging.Logger
}

// NewLogin creates the login flow for role.
func NewLogin(role session.UserType, auth Authenticator, delay latency.Delayer, logger *logging.Logger) *Login {
	if delay == nil {
		delay = latency.None
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Login{
		role:   role,
		auth:   auth,
		delay:  delay,
		tracer: otel.Tracer("medicare.internal.auth"),
		logger: logger,
	}
}

func (l *Login) WithObserver(o LoginObserver) *Login {
	l.observer = o
	return l
}

func (l *Login) WithTracer(t trace.Tracer) *Login {
	if t != nil {
		l.tracer = t
	}
	return l
}

func (l *Login) Role() session.UserType { return l.role }

func (l *Login) failureMessage() string {
	if l.role == session.UserTypeAdmin {
		return AdminFailureMessage
	}
	return PatientFailureMessage
}

// Submit checks c after the simulated delay. On success the session moves to
// the role's dashboard; on failure the session is left alone and form carries
// the failure message. A second Submit while one is running on the same form
// returns ErrSubmitInFlight.
func (l *Login) Submit(ctx context.Context, form *forms.Submission, sink SessionSink, c Credentials) (session.State, error) {
	ctx, span := l.tracer.Start(ctx, "auth.login.submit")
	defer span.End()
	span.SetAttributes(attribute.String("medicare.login.role", string(l.role)))

	c.ID = strings.TrimSpace(c.ID)
	if err := form.Begin(); err != nil {
		return session.State{}, err
	}
	if c.Password == "" || (l.role == session.UserTypePatient && c.ID == "") {
		form.Finish(MissingFieldsMessage)
		return session.State{}, ErrMissingCredentials
	}

	start := time.Now()
	if err := l.delay.Wait(ctx); err != nil {
		form.Finish("")
		span.RecordError(err)
		return session.State{}, err
	}

	var authErr error
	if l.auth == nil {
		authErr = ErrInvalidCredentials
	} else {
		authErr = l.auth.Authenticate(ctx, c)
	}
	ok := authErr == nil
	if l.observer != nil {
		l.observer.ObserveLogin(string(l.role), ok)
		l.observer.ObserveSubmitLatency("login", time.Since(start).Seconds())
	}

	if !ok {
		form.Finish(l.failureMessage())
		span.RecordError(authErr)
		l.logger.Info("login rejected", "role", l.role)
		if !errors.Is(authErr, ErrInvalidCredentials) {
			return session.State{}, authErr
		}
		return session.State{}, ErrInvalidCredentials
	}

	form.Finish("")
	var st session.State
	if l.role == session.UserTypeAdmin {
		st = sink.CompleteAdminLogin()
	} else {
		st = sink.CompletePatientLogin(c.ID)
	}
	l.logger.Info("login accepted", "role", l.role)
	return st, nil
}
