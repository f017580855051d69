// Package report aggregates a user's task history into the analytics
// payload served by the reports endpoint. Pure computation over snapshots
// handed in by the caller; "now" is an explicit parameter.
package report

import (
	"math"
	"sort"

	"Tracker/internal/dates"
	"Tracker/internal/domain"
	"Tracker/internal/status"
	"Tracker/internal/streak"
)

// Period selects the creation-date window for the top-level counts.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// ValidPeriod reports whether p is one of the four selectors.
func ValidPeriod(p Period) bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodAll:
		return true
	}
	return false
}

// epochStart is the sentinel lower bound reported for the "all" period.
var epochStart = dates.New(1970, 1, 1)

type Overview struct {
	TotalTasks     int     `json:"totalTasks"`
	CompletedTasks int     `json:"completedTasks"`
	PendingTasks   int     `json:"pendingTasks"`
	CompletionRate float64 `json:"completionRate"`
	OverdueTasks   int     `json:"overdueTasks"`
	ProductiveDays int     `json:"productiveDays"`
	CurrentStreak  int     `json:"currentStreak"`
	TotalRoutines  int     `json:"totalRoutines"`
	ActiveRoutines int     `json:"activeRoutines"`
}

type PriorityDistribution struct {
	Urgent int `json:"URGENT"`
	High   int `json:"HIGH"`
	Medium int `json:"MEDIUM"`
	Low    int `json:"LOW"`
}

type CategoryStat struct {
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Color     string `json:"color"`
}

type TopCategory struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Color     string `json:"color"`
}

type WindowSummary struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
}

type Summary struct {
	Today WindowSummary `json:"today"`
	Week  WindowSummary `json:"week"`
	Month WindowSummary `json:"month"`
}

type DateRange struct {
	Start dates.Date `json:"start"`
	End   dates.Date `json:"end"`
}

// Report is the full analytics payload.
type Report struct {
	Overview             Overview                `json:"overview"`
	PriorityDistribution PriorityDistribution    `json:"priorityDistribution"`
	CategoryDistribution map[string]CategoryStat `json:"categoryDistribution"`
	TopCategories        []TopCategory           `json:"topCategories"`
	Summary              Summary                 `json:"summary"`
	Period               Period                  `json:"period"`
	DateRange            DateRange               `json:"dateRange"`
}

// Build computes the report for one user's full snapshot. The period/
// category filter scopes the counts and distributions; productive days and
// the streak always run over the entire history, because a streak is not a
// window-scoped notion. Soft-deleted records must already be excluded by
// the caller.
func Build(tasks []domain.Task, categories []domain.Category, routines []domain.Routine, period Period, categoryID *int64, today dates.Date) Report {
	byCategory := tasks
	if categoryID != nil {
		byCategory = nil
		for _, t := range tasks {
			if t.CategoryID != nil && *t.CategoryID == *categoryID {
				byCategory = append(byCategory, t)
			}
		}
	}

	start, open := periodStart(period, today)
	windowed := filterWindow(byCategory, start, open)

	r := Report{
		Period:               period,
		CategoryDistribution: map[string]CategoryStat{},
	}
	r.DateRange = DateRange{Start: start, End: today}
	if open {
		r.DateRange.Start = epochStart
	}

	total, completed, rate := countCompletion(windowed)
	r.Overview.TotalTasks = total
	r.Overview.CompletedTasks = completed
	r.Overview.PendingTasks = total - completed
	r.Overview.CompletionRate = rate

	for _, t := range windowed {
		if status.Classify(t.DueDate, t.IsDone, today) == status.Overdue {
			r.Overview.OverdueTasks++
		}
		switch t.Priority {
		case domain.PriorityUrgent:
			r.PriorityDistribution.Urgent++
		case domain.PriorityHigh:
			r.PriorityDistribution.High++
		case domain.PriorityMedium:
			r.PriorityDistribution.Medium++
		case domain.PriorityLow:
			r.PriorityDistribution.Low++
		}
	}

	// Streak statistics over the entire history, independent of everything
	// above.
	events := make([]streak.Event, len(tasks))
	for i, t := range tasks {
		events[i] = streak.Event{Done: t.IsDone, Day: t.CompletionSignalDate()}
	}
	r.Overview.ProductiveDays = streak.ProductiveDays(events)
	r.Overview.CurrentStreak = streak.Current(events, today)

	r.Overview.TotalRoutines = len(routines)
	for _, rt := range routines {
		if rt.IsActive {
			r.Overview.ActiveRoutines++
		}
	}

	r.CategoryDistribution, r.TopCategories = categoryStats(windowed, categories)

	r.Summary = Summary{
		Today: windowSummary(byCategory, today),
		Week:  windowSummary(byCategory, today.AddDays(-7)),
		Month: windowSummary(byCategory, today.AddDays(-30)),
	}
	return r
}

// periodStart resolves a period to a window start date. open reports an
// unbounded lower bound ("all").
func periodStart(period Period, today dates.Date) (start dates.Date, open bool) {
	switch period {
	case PeriodToday:
		return today, false
	case PeriodWeek:
		return today.AddDays(-7), false
	case PeriodMonth:
		return today.AddDays(-30), false
	default:
		return dates.Date{}, true
	}
}

func filterWindow(tasks []domain.Task, start dates.Date, open bool) []domain.Task {
	if open {
		return tasks
	}
	var out []domain.Task
	for _, t := range tasks {
		if !t.CreatedOn().Before(start) {
			out = append(out, t)
		}
	}
	return out
}

// countCompletion returns totals plus the completion percentage, defined as
// 0 for an empty set.
func countCompletion(tasks []domain.Task) (total, completed int, rate float64) {
	total = len(tasks)
	for _, t := range tasks {
		if t.IsDone {
			completed++
		}
	}
	if total == 0 {
		return 0, 0, 0
	}
	rate = round1(float64(completed) / float64(total) * 100)
	return total, completed, rate
}

// categoryStats builds the per-category distribution (categories with no
// matching tasks are omitted) plus the top five by total. topCategories
// follows the input category order on ties, so repeated calls on the same
// snapshot produce identical output.
func categoryStats(tasks []domain.Task, categories []domain.Category) (map[string]CategoryStat, []TopCategory) {
	type counts struct{ total, completed int }
	perID := map[int64]*counts{}
	for _, t := range tasks {
		if t.CategoryID == nil {
			continue
		}
		c, ok := perID[*t.CategoryID]
		if !ok {
			c = &counts{}
			perID[*t.CategoryID] = c
		}
		c.total++
		if t.IsDone {
			c.completed++
		}
	}

	dist := map[string]CategoryStat{}
	var top []TopCategory
	for _, cat := range categories {
		c, ok := perID[cat.ID]
		if !ok {
			continue
		}
		dist[cat.Name] = CategoryStat{Total: c.total, Completed: c.completed, Color: cat.Color}
		top = append(top, TopCategory{Name: cat.Name, Total: c.total, Completed: c.completed, Color: cat.Color})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Total > top[j].Total })
	if len(top) > 5 {
		top = top[:5]
	}
	return dist, top
}

func windowSummary(tasks []domain.Task, start dates.Date) WindowSummary {
	total, completed, rate := countCompletion(filterWindow(tasks, start, false))
	return WindowSummary{Total: total, Completed: completed, CompletionRate: rate}
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
