package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/wolfman30/medicare-clinic/internal/demo"
)

func TestNextWeekDates(t *testing.T) {
	now := time.Date(2025, 1, 30, 15, 0, 0, 0, time.UTC)
	got := NextWeekDates(now)
	want := []string{"2025-01-31", "2025-02-01", "2025-02-02", "2025-02-03", "2025-02-04", "2025-02-05", "2025-02-06"}
	if len(got) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("date %d: got %s want %s", i, got[i], want[i])
		}
	}
}

func TestDayName(t *testing.T) {
	day, err := DayName("2025-01-13")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != "Monday" {
		t.Fatalf("expected Monday, got %s", day)
	}
	if _, err := DayName("13/01/2025"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestSlotsAndBookableDates(t *testing.T) {
	sarah := demo.Doctors()[0]

	slots, err := SlotsForDate(sarah, "2025-01-13")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 6 || slots[0] != "09:00" {
		t.Fatalf("unexpected monday slots %v", slots)
	}
	if slots, _ := SlotsForDate(sarah, "2025-01-14"); len(slots) != 0 {
		t.Fatalf("expected no tuesday slots, got %v", slots)
	}

	// Sunday 2025-01-12: the following week holds Mon, Wed and Fri.
	dates := BookableDates(sarah, time.Date(2025, 1, 12, 8, 0, 0, 0, time.UTC))
	want := []string{"2025-01-13", "2025-01-15", "2025-01-17"}
	if len(dates) != len(want) {
		t.Fatalf("got %v want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("got %v want %v", dates, want)
		}
	}
}
