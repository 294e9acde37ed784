package patients

import (
	"slices"
	"strings"
	"time"

	"github.com/wolfman30/medicare-clinic/internal/forms"
)

// Patient is an admin-managed directory record. It is not a login identity.
type Patient struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	DateOfBirth      string    `json:"dateOfBirth"`
	Address          string    `json:"address"`
	EmergencyContact string    `json:"emergencyContact"`
	MedicalHistory   []string  `json:"medicalHistory"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (p Patient) clone() Patient {
	p.MedicalHistory = slices.Clone(p.MedicalHistory)
	return p
}

// NewPatient holds the fields supplied by the add-patient form.
type NewPatient struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	DateOfBirth      string   `json:"dateOfBirth"`
	Address          string   `json:"address"`
	EmergencyContact string   `json:"emergencyContact"`
	MedicalHistory   []string `json:"medicalHistory"`
}

// Validate applies the directory form rules: every contact field is required
// and the email must look like an address.
func (p *NewPatient) Validate() error {
	err := forms.Required(
		forms.Field{Value: p.Name, Err: ErrNameRequired},
		forms.Field{Value: p.DateOfBirth, Err: ErrDateOfBirthRequired},
		forms.Field{Value: p.Email, Err: ErrEmailRequired},
		forms.Field{Value: p.Phone, Err: ErrPhoneRequired},
		forms.Field{Value: p.Address, Err: ErrAddressRequired},
		forms.Field{Value: p.EmergencyContact, Err: ErrEmergencyContactRequired},
	)
	if err != nil {
		return err
	}
	if !forms.IsEmail(p.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// ParseMedicalHistory splits the comma separated form field, trimming entries
// and dropping blanks.
func ParseMedicalHistory(raw string) []string {
	out := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
