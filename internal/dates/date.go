// Package dates provides a calendar-date value with no time-of-day or zone
// component. All due-date and reporting comparisons go through this type so
// that local-time/UTC mismatches can never shift a task across a day
// boundary.
package dates

import (
	"fmt"
	"strings"
	"time"
)

const layout = "2006-01-02"

// Date is a calendar date. The zero value is usable and sorts before any
// real date.
type Date struct {
	t time.Time // midnight UTC
}

// New returns the date for the given year, month and day. Out-of-range
// values are normalized the same way time.Date normalizes them.
func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime returns the calendar date of t as observed in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return New(y, m, d)
}

// Parse reads a date in YYYY-MM-DD form.
func Parse(s string) (Date, error) {
	t, err := time.Parse(layout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return FromTime(t), nil
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{d.t.AddDate(0, 0, n)}
}

// DaysUntil returns other - d in whole days. Both values are UTC midnights,
// so the division is exact.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) IsZero() bool           { return d.t.IsZero() }

// Time returns the date as midnight UTC, for handing to drivers that expect
// time.Time.
func (d Date) Time() time.Time { return d.t }

func (d Date) String() string { return d.t.Format(layout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
