package doctors

import (
	"slices"
	"strings"
)

// Availability lists the bookable slots for one day of the week.
type Availability struct {
	Day   string   `json:"day"` // "Monday" ... "Sunday"
	Slots []string `json:"slots"`
}

// Doctor is a roster entry.
type Doctor struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Specialization string         `json:"specialization"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Experience     int            `json:"experience"`
	Rating         float64        `json:"rating"`
	Image          string         `json:"image"`
	Availability   []Availability `json:"availability"`
	Conditions     []string       `json:"conditions"`
}

// SlotsFor returns the slots offered on the named weekday, or nil.
func (d Doctor) SlotsFor(day string) []string {
	for _, a := range d.Availability {
		if strings.EqualFold(a.Day, day) {
			return slices.Clone(a.Slots)
		}
	}
	return nil
}

// Treats reports whether condition is in the doctor's list.
func (d Doctor) Treats(condition string) bool {
	for _, c := range d.Conditions {
		if strings.EqualFold(c, condition) {
			return true
		}
	}
	return false
}

// Clone returns a copy of d that shares no slices with it.
func (d Doctor) Clone() Doctor {
	out := d
	out.Conditions = slices.Clone(d.Conditions)
	if d.Availability != nil {
		out.Availability = make([]Availability, len(d.Availability))
		for i, a := range d.Availability {
			out.Availability[i] = Availability{Day: a.Day, Slots: slices.Clone(a.Slots)}
		}
	}
	return out
}

// CreateDoctorRequest is the body accepted when adding a doctor.
type CreateDoctorRequest struct {
	Name           string         `json:"name"`
	Specialization string         `json:"specialization"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Experience     int            `json:"experience"`
	Rating         float64        `json:"rating"`
	Image          string         `json:"image"`
	Availability   []Availability `json:"availability"`
	Conditions     []string       `json:"conditions"`
}

// Validate checks the fields the roster screens depend on.
func (r *CreateDoctorRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidName
	}
	if r.Experience < 0 {
		return ErrInvalidExperience
	}
	if r.Rating < 0 || r.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

// Build returns the doctor described by r under id.
func (r *CreateDoctorRequest) Build(id string) Doctor {
	return Doctor{
		ID:             id,
		Name:           r.Name,
		Specialization: r.Specialization,
		Email:          r.Email,
		Phone:          r.Phone,
		Experience:     r.Experience,
		Rating:         r.Rating,
		Image:          r.Image,
		Availability:   r.Availability,
		Conditions:     r.Conditions,
	}.Clone()
}
