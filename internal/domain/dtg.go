package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDTG reports a token that looked like a date-time group but
// failed strict grammar or range validation.
var ErrInvalidDTG = errors.New("invalid DTG")

// DefaultPivotYear fixes the two-digit-year resolution window. Years at
// or above the pivot's last two digits resolve into the pivot's century,
// the rest into the following one: with 1980, "80"–"99" become
// 1980–1999 and "00"–"79" become 2000–2079. The window is fixed rather
// than anchored to the wall clock so parses stay reproducible.
const DefaultPivotYear = 1980

var dtgRe = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})Z ([A-Z]{3}) (\d{2})$`)

var monthAbbrevs = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// ParseDTG parses a "DDHHMMZ MON YY" date-time group into a UTC
// timestamp. Unknown month abbreviations and out-of-range day, hour, or
// minute values fail with ErrInvalidDTG instead of wrapping silently.
// A pivotYear of 0 means DefaultPivotYear.
func ParseDTG(s string, pivotYear int) (time.Time, error) {
	m := dtgRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match DDHHMMZ MON YY", ErrInvalidDTG, s)
	}

	day, _ := strconv.Atoi(m[1])
	hour, _ := strconv.Atoi(m[2])
	minute, _ := strconv.Atoi(m[3])
	yy, _ := strconv.Atoi(m[5])

	month, ok := monthAbbrevs[m[4]]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown month %q", ErrInvalidDTG, m[4])
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: time %02d%02d out of range", ErrInvalidDTG, hour, minute)
	}

	t := time.Date(resolveYear(yy, pivotYear), month, day, hour, minute, 0, 0, time.UTC)
	// time.Date normalizes impossible days (Feb 30 → Mar 2); reject those.
	if day == 0 || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: day %d out of range for %s", ErrInvalidDTG, day, m[4])
	}
	return t, nil
}

func resolveYear(yy, pivotYear int) int {
	if pivotYear <= 0 {
		pivotYear = DefaultPivotYear
	}
	century := pivotYear - pivotYear%100
	if yy >= pivotYear%100 {
		return century + yy
	}
	return century + 100 + yy
}
