// Package period parses and formats reporting periods.
//
// Supported period values:
//
//	"2025"     a calendar year
//	"2025-03"  a calendar month
//	"2025-Q1"  a quarter
//	"2025-S2"  a semester (half year)
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/apperrors"
)

// Granularity is the bucket size used when grouping expenses over time.
type Granularity string

const (
	Monthly   Granularity = "monthly"
	Quarterly Granularity = "quarterly"
	Semester  Granularity = "semester"
	Yearly    Granularity = "yearly"
)

// ParseGranularity validates a granularity string.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(strings.ToLower(s)) {
	case Monthly:
		return Monthly, nil
	case Quarterly:
		return Quarterly, nil
	case Semester:
		return Semester, nil
	case Yearly:
		return Yearly, nil
	default:
		return "", apperrors.NewValidationError(fmt.Sprintf("invalid period granularity %q", s))
	}
}

// Range resolves a period value into a half-open interval [start, end).
func Range(value string) (time.Time, time.Time, error) {
	value = strings.TrimSpace(strings.ToUpper(value))

	switch {
	case len(value) == 4:
		year, err := strconv.Atoi(value)
		if err != nil {
			return time.Time{}, time.Time{}, invalidPeriod(value)
		}
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0), nil

	case len(value) == 7 && value[4] == '-' && (value[5] == 'Q' || value[5] == 'S'):
		year, err := strconv.Atoi(value[:4])
		if err != nil {
			return time.Time{}, time.Time{}, invalidPeriod(value)
		}
		n, err := strconv.Atoi(value[6:])
		if err != nil {
			return time.Time{}, time.Time{}, invalidPeriod(value)
		}
		if value[5] == 'Q' {
			if n < 1 || n > 4 {
				return time.Time{}, time.Time{}, invalidPeriod(value)
			}
			start := time.Date(year, time.Month(3*(n-1)+1), 1, 0, 0, 0, 0, time.UTC)
			return start, start.AddDate(0, 3, 0), nil
		}
		if n < 1 || n > 2 {
			return time.Time{}, time.Time{}, invalidPeriod(value)
		}
		start := time.Date(year, time.Month(6*(n-1)+1), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 6, 0), nil

	case len(value) == 7 && value[4] == '-':
		t, err := time.Parse("2006-01", value)
		if err != nil {
			return time.Time{}, time.Time{}, invalidPeriod(value)
		}
		return t, t.AddDate(0, 1, 0), nil

	default:
		return time.Time{}, time.Time{}, invalidPeriod(value)
	}
}

// Key formats the bucket key a timestamp falls into for a granularity,
// e.g. "2025", "2025-03", "2025-Q1" or "2025-S2".
func Key(t time.Time, g Granularity) string {
	switch g {
	case Yearly:
		return fmt.Sprintf("%04d", t.Year())
	case Quarterly:
		return fmt.Sprintf("%04d-Q%d", t.Year(), (int(t.Month())-1)/3+1)
	case Semester:
		return fmt.Sprintf("%04d-S%d", t.Year(), (int(t.Month())-1)/6+1)
	default:
		return fmt.Sprintf("%04d-%02d", t.Year(), t.Month())
	}
}

// KeyForMonth is like Key for a month already expressed as year/month ints.
func KeyForMonth(year, month int, g Granularity) string {
	return Key(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), g)
}

func invalidPeriod(value string) error {
	return apperrors.NewValidationError(fmt.Sprintf("invalid period value %q, expected YYYY, YYYY-MM, YYYY-Qn or YYYY-Sn", value))
}
