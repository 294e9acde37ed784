// Package auth implements the demo portal logins: credential checks, the
// login form submit cycle and the bearer tokens handed out on success.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/wolfman30/medicare-clinic/internal/forms"
)

var (
	ErrInvalidCredentials   = errors.New("auth: invalid credentials")
	ErrMissingCredentials   = errors.New("auth: id and password are required")
	ErrSubmitInFlight       = forms.ErrSubmitInFlight
	ErrMalformedCredentials = errors.New("auth: malformed credential list")
)

// Credentials is what a login form submits. Admin logins leave ID empty.
type Credentials struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// Authenticator checks submitted credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, c Credentials) error
}

// AdminPassword accepts a single shared password.
type AdminPassword string

func (p AdminPassword) Authenticate(_ context.Context, c Credentials) error {
	if p == "" || c.Password == "" {
		return ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(p), []byte(c.Password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

// PatientAllowList maps patient ids to passwords.
type PatientAllowList map[string]string

func (l PatientAllowList) Authenticate(_ context.Context, c Credentials) error {
	want, ok := l[strings.TrimSpace(c.ID)]
	if !ok || c.Password == "" {
		return ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(want), []byte(c.Password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

// ParseCredentials reads "ID:password" pairs separated by commas.
func ParseCredentials(raw string) (PatientAllowList, error) {
	out := PatientAllowList{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, pw, ok := strings.Cut(part, ":")
		id = strings.TrimSpace(id)
		if !ok || id == "" || pw == "" {
			return nil, fmt.Errorf("auth: parse credentials %q: %w", part, ErrMalformedCredentials)
		}
		out[id] = pw
	}
	return out, nil
}
