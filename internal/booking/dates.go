package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/wolfman30/medicare-clinic/internal/doctors"
)

// DateLayout is the appointment date format.
const DateLayout = "2006-01-02"

// NextWeekDates returns the seven calendar dates after now's date.
func NextWeekDates(now time.Time) []string {
	out := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		out = append(out, now.AddDate(0, 0, i).Format(DateLayout))
	}
	return out
}

// DayName returns the weekday name of a YYYY-MM-DD date.
func DayName(date string) (string, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return "", fmt.Errorf("booking: parse date %q: %w", date, ErrInvalidDate)
	}
	return t.Weekday().String(), nil
}

// SlotsForDate returns the slots d offers on date's weekday.
func SlotsForDate(d doctors.Doctor, date string) ([]string, error) {
	day, err := DayName(date)
	if err != nil {
		return nil, err
	}
	return d.SlotsFor(day), nil
}

// BookableDates is NextWeekDates filtered to the days d works.
func BookableDates(d doctors.Doctor, now time.Time) []string {
	var out []string
	for _, date := range NextWeekDates(now) {
		if slots, err := SlotsForDate(d, date); err == nil && len(slots) > 0 {
			out = append(out, date)
		}
	}
	return out
}
