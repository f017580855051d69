// Package schedule models a routine's recurrence rule as a tagged variant:
// a Schedule can only be built through a constructor or Parse, so a weekly
// schedule carrying a day-of-month (and similar illegal mixes) cannot exist.
package schedule

import (
	"fmt"
	"strings"
)

// Kind selects the recurrence variant.
type Kind string

const (
	Daily   Kind = "DAILY"
	Weekly  Kind = "WEEKLY"
	Monthly Kind = "MONTHLY"
	Custom  Kind = "CUSTOM"
)

// Weekday codes accepted in a weekly schedule, in canonical order.
var weekdayOrder = []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

var weekdayNames = map[string]string{
	"MON": "Monday", "TUE": "Tuesday", "WED": "Wednesday", "THU": "Thursday",
	"FRI": "Friday", "SAT": "Saturday", "SUN": "Sunday",
}

// Schedule is a validated recurrence rule. The zero value is not a valid
// schedule; use a constructor or Parse.
type Schedule struct {
	kind       Kind
	daysOfWeek []string // WEEKLY only, canonical order, deduplicated
	dayOfMonth int      // MONTHLY only, 1..31
	interval   int      // CUSTOM only, >= 1
	at         string   // optional HH:MM, all variants
}

func (s Schedule) Kind() Kind { return s.kind }

// DaysOfWeek returns the weekly day codes in canonical order. Empty for
// non-weekly schedules.
func (s Schedule) DaysOfWeek() []string {
	out := make([]string, len(s.daysOfWeek))
	copy(out, s.daysOfWeek)
	return out
}

func (s Schedule) DayOfMonth() int { return s.dayOfMonth }
func (s Schedule) Interval() int   { return s.interval }

// At returns the optional time-of-day as "HH:MM" and whether one is set.
func (s Schedule) At() (string, bool) { return s.at, s.at != "" }

// NewDaily returns a daily schedule.
func NewDaily() Schedule { return Schedule{kind: Daily} }

// NewWeekly returns a weekly schedule for the given day codes. The set is
// deduplicated and reordered Monday-first.
func NewWeekly(days []string) (Schedule, error) {
	seen := map[string]bool{}
	for _, d := range days {
		code := strings.ToUpper(strings.TrimSpace(d))
		if _, ok := weekdayNames[code]; !ok {
			return Schedule{}, errEmptyWeeklyDays
		}
		seen[code] = true
	}
	if len(seen) == 0 {
		return Schedule{}, errEmptyWeeklyDays
	}
	var ordered []string
	for _, code := range weekdayOrder {
		if seen[code] {
			ordered = append(ordered, code)
		}
	}
	return Schedule{kind: Weekly, daysOfWeek: ordered}, nil
}

// NewMonthly returns a monthly schedule on the given day of month. Day 31 is
// accepted even though short months cannot host it; what happens in those
// months is an open product question, not resolved here.
func NewMonthly(day int) (Schedule, error) {
	if day < 1 || day > 31 {
		return Schedule{}, errDayOfMonthOutOfRange
	}
	return Schedule{kind: Monthly, dayOfMonth: day}, nil
}

// NewCustom returns an every-N-days schedule.
func NewCustom(interval int) (Schedule, error) {
	if interval < 1 {
		return Schedule{}, errIntervalTooSmall
	}
	return Schedule{kind: Custom, interval: interval}, nil
}

// WithTime returns a copy of s carrying a time-of-day.
func (s Schedule) WithTime(at string) (Schedule, error) {
	if !validTime(at) {
		return Schedule{}, errInvalidTimeFormat
	}
	s.at = at
	return s, nil
}

// Describe renders the schedule for display. The text is derived and
// non-authoritative.
func (s Schedule) Describe() string {
	var b strings.Builder
	switch s.kind {
	case Daily:
		b.WriteString("Every day")
	case Weekly:
		names := make([]string, len(s.daysOfWeek))
		for i, code := range s.daysOfWeek {
			names[i] = weekdayNames[code]
		}
		b.WriteString("Every " + strings.Join(names, ", "))
	case Monthly:
		fmt.Fprintf(&b, "Every %d%s of the month", s.dayOfMonth, ordinalSuffix(s.dayOfMonth))
	case Custom:
		if s.interval == 1 {
			b.WriteString("Every 1 day")
		} else {
			fmt.Fprintf(&b, "Every %d days", s.interval)
		}
	}
	if s.at != "" {
		b.WriteString(" at " + s.at)
	}
	return b.String()
}

// ordinalSuffix returns the English ordinal suffix for n. 11-13 take "th"
// regardless of their last digit.
func ordinalSuffix(n int) string {
	if v := n % 100; v >= 11 && v <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// validTime reports whether s is a 24-hour HH:MM.
func validTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	h := digits2(s[0], s[1])
	m := digits2(s[3], s[4])
	return h >= 0 && h <= 23 && m >= 0 && m <= 59
}

func digits2(a, b byte) int {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return -1
	}
	return int(a-'0')*10 + int(b-'0')
}
