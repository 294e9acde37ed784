// Package forms holds the client-side validation rules shared by the booking,
// login and directory forms.
package forms

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// Blank reports whether s is empty after trimming.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Field pairs a form value with the error returned when it is missing.
type Field struct {
	Value string
	Err   error
}

// Required returns the error of the first blank field, or nil.
func Required(fields ...Field) error {
	for _, f := range fields {
		if Blank(f.Value) {
			return f.Err
		}
	}
	return nil
}
