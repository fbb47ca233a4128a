package mrp

import (
	"fmt"
	"time"
)

// Day is a calendar day expressed as a count of days since the Unix
// epoch (1970-01-01). Keeping planning math on a narrow integer type
// rather than threading time.Time through every calculation avoids
// timezone and monotonic-clock noise in what is otherwise pure
// arithmetic; conversions to/from time.Time and YYYY-MM-DD strings
// happen only at the boundary.
type Day int32

const dayLayout = "2006-01-02"

// NewDay truncates t to a UTC calendar day.
func NewDay(t time.Time) Day {
	t = t.UTC()
	y, m, d := t.Date()
	u := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return Day(u.Unix() / 86400)
}

// ParseDay parses a YYYY-MM-DD string into a Day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", s, err)
	}
	return NewDay(t), nil
}

// Time converts a Day back to a UTC midnight time.Time.
func (d Day) Time() time.Time {
	return time.Unix(int64(d)*86400, 0).UTC()
}

// String formats a Day as YYYY-MM-DD.
func (d Day) String() string {
	return d.Time().Format(dayLayout)
}

// MarshalJSON renders a Day as a YYYY-MM-DD JSON string.
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a Day from a YYYY-MM-DD JSON string.
func (d *Day) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date literal %q", data)
	}
	parsed, err := ParseDay(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// AddDays returns d shifted by n calendar days.
func (d Day) AddDays(n int) Day {
	return d + Day(n)
}

// Sub returns the number of days between d and o (d - o).
func (d Day) Sub(o Day) int {
	return int(d - o)
}

// Before reports whether d is strictly earlier than o.
func (d Day) Before(o Day) bool { return d < o }

// After reports whether d is strictly later than o.
func (d Day) After(o Day) bool { return d > o }

// Clamp returns d restricted to [lo, hi]. If lo > hi, lo is returned.
func (d Day) Clamp(lo, hi Day) Day {
	if lo > hi {
		return lo
	}
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}

// DaysInRange returns the ordered list of days from start to end inclusive.
func DaysInRange(start, end Day) []Day {
	if end < start {
		return nil
	}
	days := make([]Day, 0, end.Sub(start)+1)
	for d := start; d <= end; d++ {
		days = append(days, d)
	}
	return days
}
