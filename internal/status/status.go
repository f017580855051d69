// Package status buckets a task's due date relative to an injected "today".
// Everything here works on calendar dates, never zoned timestamps, so a task
// can't drift across a day boundary with the server's timezone.
package status

import (
	"fmt"
	"sort"

	"Tracker/internal/dates"
	"Tracker/internal/domain"
)

// Status is the user-facing due-date bucket.
type Status string

const (
	// None means not applicable: the task has no due date. Callers omit
	// status fields for it rather than inventing a bucket.
	None Status = ""

	Completed Status = "completed"
	Overdue   Status = "overdue"
	DueToday  Status = "due-today"
	DueSoon   Status = "due-soon"
	Future    Status = "future"
)

// dueSoonDays is the inclusive day-ahead range classified as due-soon.
const dueSoonDays = 3

// Classify maps a due date and completion flag to a bucket. Completion wins
// over every date branch; a missing due date is None. Never fails.
func Classify(due *dates.Date, done bool, today dates.Date) Status {
	if done {
		return Completed
	}
	if due == nil {
		return None
	}
	diff := today.DaysUntil(*due)
	switch {
	case diff < 0:
		return Overdue
	case diff == 0:
		return DueToday
	case diff <= dueSoonDays:
		return DueSoon
	default:
		return Future
	}
}

// OverdueDays returns how many whole days past due the date is, or 0 if it
// is not in the past.
func OverdueDays(due dates.Date, today dates.Date) int {
	if d := today.DaysUntil(due); d < 0 {
		return -d
	}
	return 0
}

// Text renders the display string for a task's due state. Its thresholds
// are deliberately finer-grained than the Classify buckets: tomorrow, then
// days up to a week, then weeks up to a month, then months.
func Text(due *dates.Date, done bool, today dates.Date) string {
	if done {
		return "Completed"
	}
	if due == nil {
		return ""
	}
	diff := today.DaysUntil(*due)
	switch {
	case diff < 0:
		return fmt.Sprintf("Overdue by %d %s", -diff, plural(-diff, "day"))
	case diff == 0:
		return "Due today"
	case diff == 1:
		return "Due tomorrow"
	case diff <= 7:
		return fmt.Sprintf("Due in %d days", diff)
	case diff <= 30:
		weeks := ceilDiv(diff, 7)
		return fmt.Sprintf("Due in %d %s", weeks, plural(weeks, "week"))
	default:
		months := ceilDiv(diff, 30)
		return fmt.Sprintf("Due in %d %s", months, plural(months, "month"))
	}
}

// ColorClass returns the presentational token for a bucket. Opaque to this
// package; the UI maps it to styling.
func ColorClass(s Status) string {
	switch s {
	case Completed:
		return "text-green"
	case Overdue:
		return "text-red"
	case DueToday:
		return "text-orange"
	case DueSoon:
		return "text-yellow"
	case Future:
		return "text-gray"
	default:
		return ""
	}
}

// SortByDueDate orders tasks for display: incomplete before completed
// regardless of direction, then by due date ascending (or descending when
// desc is set) within each group. Tasks without a due date sort after dated
// ones in their group. Stable, so ties keep input order.
func SortByDueDate(tasks []domain.Task, desc bool) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.IsDone != b.IsDone {
			return !a.IsDone
		}
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return false
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		}
		if a.DueDate.Equal(*b.DueDate) {
			return false
		}
		if desc {
			return a.DueDate.After(*b.DueDate)
		}
		return a.DueDate.Before(*b.DueDate)
	})
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
