package booking

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/wolfman30/medicare-clinic/internal/doctors"
	"github.com/wolfman30/medicare-clinic/internal/forms"
)

var (
	ErrInvalidRequest  = errors.New("booking: invalid request")
	ErrUnknownFlow     = errors.New("booking: unknown flow")
	ErrDoctorRequired  = errors.New("booking: doctor is required")
	ErrUnknownDoctor   = errors.New("booking: doctor not found")
	ErrDateRequired    = errors.New("booking: date is required")
	ErrInvalidDate     = errors.New("booking: date must be YYYY-MM-DD")
	ErrTimeRequired    = errors.New("booking: time is required")
	ErrSlotUnavailable = errors.New("booking: time slot not offered")
	ErrServiceRequired = errors.New("booking: service is required")
	ErrUnknownService  = errors.New("booking: unknown service")
	ErrNameRequired    = errors.New("booking: patient name is required")
	ErrEmailRequired   = errors.New("booking: patient email is required")
	ErrInvalidEmail    = errors.New("booking: patient email is invalid")
	ErrPhoneRequired   = errors.New("booking: patient phone is required")
)

// Flow names the screen a booking was made from.
type Flow string

const (
	FlowDoctor Flow = "doctor"
	FlowModal  Flow = "modal"
)

// Request is a booking form submission. Doctor flow bookings name a doctor
// and take the service from the doctor's specialization; modal bookings pick
// a service from the catalogue.
type Request struct {
	Flow         Flow   `json:"flow"`
	DoctorID     string `json:"doctorId,omitempty"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Service      string `json:"service,omitempty"`
	Disease      string `json:"disease,omitempty"`
	PatientName  string `json:"patientName"`
	PatientEmail string `json:"patientEmail"`
	PatientPhone string `json:"patientPhone"`
	Notes        string `json:"notes,omitempty"`
}

func (r *Request) normalize() {
	r.DoctorID = strings.TrimSpace(r.DoctorID)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Service = strings.TrimSpace(r.Service)
	r.Disease = strings.TrimSpace(r.Disease)
	r.PatientName = strings.TrimSpace(r.PatientName)
	r.PatientEmail = strings.TrimSpace(r.PatientEmail)
	r.PatientPhone = strings.TrimSpace(r.PatientPhone)
	if r.Flow == "" {
		if r.DoctorID != "" {
			r.Flow = FlowDoctor
		} else {
			r.Flow = FlowModal
		}
	}
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}

// validate checks r against the form rules. lookup resolves the doctor for
// the doctor flow.
func (r *Request) validate(lookup func(id string) (doctors.Doctor, bool)) (*doctors.Doctor, error) {
	var doc *doctors.Doctor

	switch r.Flow {
	case FlowDoctor:
		if r.DoctorID == "" {
			return nil, invalid(ErrDoctorRequired)
		}
		d, ok := lookup(r.DoctorID)
		if !ok {
			return nil, invalid(ErrUnknownDoctor)
		}
		doc = &d
	case FlowModal:
	default:
		return nil, invalid(ErrUnknownFlow)
	}

	if err := forms.Required(
		forms.Field{Value: r.Date, Err: ErrDateRequired},
		forms.Field{Value: r.Time, Err: ErrTimeRequired},
	); err != nil {
		return nil, invalid(err)
	}

	if doc != nil {
		slots, err := SlotsForDate(*doc, r.Date)
		if err != nil {
			return nil, invalid(ErrInvalidDate)
		}
		if !slices.Contains(slots, r.Time) {
			return nil, invalid(ErrSlotUnavailable)
		}
		r.Service = doc.Specialization
	} else {
		if _, err := DayName(r.Date); err != nil {
			return nil, invalid(ErrInvalidDate)
		}
		if !IsTimeSlot(r.Time) {
			return nil, invalid(ErrSlotUnavailable)
		}
		if forms.Blank(r.Service) {
			return nil, invalid(ErrServiceRequired)
		}
		if !IsService(r.Service) {
			return nil, invalid(ErrUnknownService)
		}
	}

	if err := forms.Required(
		forms.Field{Value: r.PatientName, Err: ErrNameRequired},
		forms.Field{Value: r.PatientEmail, Err: ErrEmailRequired},
		forms.Field{Value: r.PatientPhone, Err: ErrPhoneRequired},
	); err != nil {
		return nil, invalid(err)
	}
	if !forms.IsEmail(r.PatientEmail) {
		return nil, invalid(ErrInvalidEmail)
	}
	return doc, nil
}
