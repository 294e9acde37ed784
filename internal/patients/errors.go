package patients

import "errors"

var (
	ErrNameRequired             = errors.New("patients: name is required")
	ErrDateOfBirthRequired      = errors.New("patients: date of birth is required")
	ErrEmailRequired            = errors.New("patients: email is required")
	ErrInvalidEmail             = errors.New("patients: invalid email address")
	ErrPhoneRequired            = errors.New("patients: phone number is required")
	ErrAddressRequired          = errors.New("patients: address is required")
	ErrEmergencyContactRequired = errors.New("patients: emergency contact is required")
)
