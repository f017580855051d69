// Package streak derives consecutive-productive-day statistics from task
// completion events. A productive day is a calendar date with at least one
// completion signal; several completions on one day count once.
package streak

import "Tracker/internal/dates"

// Event is one task's completion state paired with its completion-signal
// date. The date comes from the task's last modification, the store's only
// proxy for "when it was completed".
type Event struct {
	Done bool
	Day  dates.Date
}

// Current returns the number of consecutive productive days ending today or
// yesterday. A gap before yesterday breaks the streak to 0; a streak that
// ended yesterday still counts until today is over.
func Current(events []Event, today dates.Date) int {
	days := productiveSet(events)
	if len(days) == 0 {
		return 0
	}
	cursor := today
	if _, ok := days[cursor]; !ok {
		cursor = today.AddDays(-1)
		if _, ok := days[cursor]; !ok {
			return 0
		}
	}
	count := 0
	for {
		if _, ok := days[cursor]; !ok {
			return count
		}
		count++
		cursor = cursor.AddDays(-1)
	}
}

// ProductiveDays returns the number of distinct dates with at least one
// completion, over the whole event set.
func ProductiveDays(events []Event) int {
	return len(productiveSet(events))
}

func productiveSet(events []Event) map[dates.Date]struct{} {
	set := make(map[dates.Date]struct{})
	for _, e := range events {
		if e.Done {
			set[e.Day] = struct{}{}
		}
	}
	return set
}
