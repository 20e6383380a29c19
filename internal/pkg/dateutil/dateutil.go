package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DisplayLayout is the operator-facing date format used across invoices,
// timesheets and reports.
const DisplayLayout = "02.01.2006"

// Parse converts a display date ("31.12.2025") or an ISO date ("2025-12-31")
// into a calendar day, truncated to midnight UTC. Invalid or empty input
// reports ok = false; callers must treat a missing date as "not yet due".
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if strings.Contains(s, ".") {
		parts := strings.Split(s, ".")
		if len(parts) != 3 {
			return time.Time{}, false
		}
		day, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		year, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return time.Time{}, false
		}
		if month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return Day(t), true
}

// Format re-emits a calendar date in display form regardless of how it was
// originally written.
func Format(t time.Time) string {
	return t.Format(DisplayLayout)
}

// Day truncates a timestamp to its calendar day at midnight.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ValidYearMonth reports whether a (year, month) pair denotes a usable work
// month.
func ValidYearMonth(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 2000 || year > 2200 {
		return fmt.Errorf("year %d out of range", year)
	}
	return nil
}
