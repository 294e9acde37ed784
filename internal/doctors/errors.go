package doctors

import "errors"

var (
	// ErrInvalidName is returned when the doctor name is blank
	ErrInvalidName = errors.New("doctors: name is required")

	// ErrInvalidExperience is returned for negative years of experience
	ErrInvalidExperience = errors.New("doctors: experience must be >= 0")

	// ErrInvalidRating is returned when the rating is outside 0-5
	ErrInvalidRating = errors.New("doctors: rating must be between 0 and 5")
)
