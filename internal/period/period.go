// Package period derives the calendar-month key used to filter sales and
// listings. The key is a single comparable integer with a fixed-width month,
// so 2026-08 becomes 202608 and keys never collide across year boundaries.
package period

import (
	"fmt"
	"time"
)

// Key returns the period key for the year and month of t.
func Key(t time.Time) int {
	return t.Year()*100 + int(t.Month())
}

// Current returns the period key for the current month.
func Current() int {
	return Key(time.Now())
}

// FromYearMonth builds a period key from explicit components.
func FromYearMonth(year, month int) (int, error) {
	if year < 1 {
		return 0, fmt.Errorf("invalid year: %d", year)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("invalid month: %d", month)
	}
	return year*100 + month, nil
}
