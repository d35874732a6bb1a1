package timestamp

import (
	"fmt"
	"time"
)

// Local date-time layouts (no zone designator)
const (
	// LocalDateTime is the second-precision layout used for responses
	LocalDateTime = "2006-01-02T15:04:05"

	// LocalDateTimeMinutes is accepted on parse only
	LocalDateTimeMinutes = "2006-01-02T15:04"
)

// FormatLocal renders t as an ISO 8601 local date-time in t's own location.
// Seconds are always present. A non-zero fraction is written with 3, 6 or 9 digits,
// whichever is the shortest exact rendering.
// Example: 2024-01-01T00:00:00, 2024-01-01T08:30:15.120
func FormatLocal(t time.Time) string {
	base := t.Format(LocalDateTime)

	ns := t.Nanosecond()
	switch {
	case ns == 0:
		return base
	case ns%int(time.Millisecond) == 0:
		return fmt.Sprintf("%s.%03d", base, ns/int(time.Millisecond))
	case ns%int(time.Microsecond) == 0:
		return fmt.Sprintf("%s.%06d", base, ns/int(time.Microsecond))
	default:
		return fmt.Sprintf("%s.%09d", base, ns)
	}
}

// ParseLocal parses a local date-time produced by FormatLocal.
// The result is interpreted in time.Local.
func ParseLocal(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("timestamp is required")
	}

	// time.Parse accepts a trailing fraction after the seconds field even when
	// the layout does not carry one
	layouts := []string{
		LocalDateTime,
		LocalDateTimeMinutes,
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid local date-time format: %q (expected: 2024-01-01T00:00:00)", s)
}

// IsValidLocal checks if s is a valid local date-time without a zone designator
func IsValidLocal(s string) bool {
	_, err := ParseLocal(s)
	return err == nil
}
