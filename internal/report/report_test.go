package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tracker/internal/dates"
	"Tracker/internal/domain"
)

var today = dates.New(2025, time.June, 15)

type taskOpt func(*domain.Task)

func inCategory(id int64) taskOpt {
	return func(t *domain.Task) { t.CategoryID = &id }
}

func withPriority(p domain.Priority) taskOpt {
	return func(t *domain.Task) { t.Priority = p }
}

func dueIn(offset int) taskOpt {
	return func(t *domain.Task) {
		d := today.AddDays(offset)
		t.DueDate = &d
	}
}

// task builds a task created createdOffset days before today; when done, its
// last-modified date (the completion signal) is the creation day.
func task(createdOffset int, done bool, opts ...taskOpt) domain.Task {
	created := today.AddDays(-createdOffset).Time()
	t := domain.Task{
		Priority:  domain.PriorityMedium,
		IsDone:    done,
		CreatedAt: created,
		UpdatedAt: created,
	}
	for _, o := range opts {
		o(&t)
	}
	return t
}

func TestBuildEmpty(t *testing.T) {
	r := Build(nil, nil, nil, PeriodAll, nil, today)
	assert.Equal(t, 0, r.Overview.TotalTasks)
	assert.Equal(t, 0.0, r.Overview.CompletionRate)
	assert.Equal(t, 0, r.Overview.CurrentStreak)
	assert.Empty(t, r.CategoryDistribution)
	assert.Empty(t, r.TopCategories)
	assert.Equal(t, dates.New(1970, time.January, 1), r.DateRange.Start)
	assert.Equal(t, today, r.DateRange.End)
}

func TestBuildOverview(t *testing.T) {
	tasks := []domain.Task{
		task(0, true),
		task(1, false, dueIn(-2)),
		task(3, false, dueIn(1)),
		task(40, true),
	}
	r := Build(tasks, nil, nil, PeriodAll, nil, today)
	assert.Equal(t, 4, r.Overview.TotalTasks)
	assert.Equal(t, 2, r.Overview.CompletedTasks)
	assert.Equal(t, 2, r.Overview.PendingTasks)
	assert.Equal(t, 50.0, r.Overview.CompletionRate)
	assert.Equal(t, 1, r.Overview.OverdueTasks)
	assert.Equal(t, r.Overview.TotalTasks, r.Overview.CompletedTasks+r.Overview.PendingTasks)
}

func TestBuildWindowFiltering(t *testing.T) {
	tasks := []domain.Task{
		task(0, true),
		task(5, false),
		task(20, true),
		task(100, false),
	}
	r := Build(tasks, nil, nil, PeriodToday, nil, today)
	assert.Equal(t, 1, r.Overview.TotalTasks)
	assert.Equal(t, today, r.DateRange.Start)

	r = Build(tasks, nil, nil, PeriodWeek, nil, today)
	assert.Equal(t, 2, r.Overview.TotalTasks)

	r = Build(tasks, nil, nil, PeriodMonth, nil, today)
	assert.Equal(t, 3, r.Overview.TotalTasks)

	r = Build(tasks, nil, nil, PeriodAll, nil, today)
	assert.Equal(t, 4, r.Overview.TotalTasks)
}

// Streak and productive days ignore the window and category filter: they
// run over the whole history.
func TestBuildStreakIgnoresWindow(t *testing.T) {
	cat := int64(9)
	tasks := []domain.Task{
		{IsDone: true, CreatedAt: today.Time(), UpdatedAt: today.Time()},
		{IsDone: true, CreatedAt: today.AddDays(-1).Time(), UpdatedAt: today.AddDays(-1).Time(), CategoryID: &cat},
		{IsDone: true, CreatedAt: today.AddDays(-2).Time(), UpdatedAt: today.AddDays(-2).Time()},
	}
	other := int64(1)
	r := Build(tasks, nil, nil, PeriodToday, &other, today)
	assert.Equal(t, 0, r.Overview.TotalTasks)
	assert.Equal(t, 3, r.Overview.CurrentStreak)
	assert.Equal(t, 3, r.Overview.ProductiveDays)
}

func TestBuildCategoryDistribution(t *testing.T) {
	categories := []domain.Category{
		{ID: 1, Name: "Work", Color: "#f00"},
		{ID: 2, Name: "Health", Color: "#0f0"},
		{ID: 3, Name: "Idle", Color: "#00f"},
	}
	tasks := []domain.Task{
		task(0, true, inCategory(1)),
		task(1, false, inCategory(1)),
		task(2, false, inCategory(2)),
		task(3, false),
	}
	r := Build(tasks, categories, nil, PeriodAll, nil, today)

	require.Len(t, r.CategoryDistribution, 2)
	assert.Equal(t, CategoryStat{Total: 2, Completed: 1, Color: "#f00"}, r.CategoryDistribution["Work"])
	assert.Equal(t, CategoryStat{Total: 1, Completed: 0, Color: "#0f0"}, r.CategoryDistribution["Health"])
	_, hasIdle := r.CategoryDistribution["Idle"]
	assert.False(t, hasIdle, "categories with zero tasks are omitted")

	require.Len(t, r.TopCategories, 2)
	assert.Equal(t, "Work", r.TopCategories[0].Name)
	assert.Equal(t, "Health", r.TopCategories[1].Name)
}

func TestBuildTopCategoriesCapAndStability(t *testing.T) {
	var categories []domain.Category
	var tasks []domain.Task
	for i := int64(1); i <= 7; i++ {
		categories = append(categories, domain.Category{ID: i, Name: string(rune('A' + i - 1))})
		tasks = append(tasks, task(0, false, inCategory(i)))
	}
	first := Build(tasks, categories, nil, PeriodAll, nil, today)
	require.Len(t, first.TopCategories, 5)
	// All totals tie at 1; stable sort keeps category input order.
	assert.Equal(t, "A", first.TopCategories[0].Name)
	assert.Equal(t, "E", first.TopCategories[4].Name)

	second := Build(tasks, categories, nil, PeriodAll, nil, today)
	assert.Equal(t, first.TopCategories, second.TopCategories)
}

func TestBuildCategoryFilter(t *testing.T) {
	tasks := []domain.Task{
		task(0, true, inCategory(1)),
		task(0, false, inCategory(2)),
		task(0, false),
	}
	cat := int64(1)
	r := Build(tasks, nil, nil, PeriodAll, &cat, today)
	assert.Equal(t, 1, r.Overview.TotalTasks)
	assert.Equal(t, 100.0, r.Overview.CompletionRate)
	assert.Equal(t, 1, r.Summary.Today.Completed)
}

// The summary windows are fixed regardless of the requested period.
func TestBuildSummaryWindows(t *testing.T) {
	tasks := []domain.Task{
		task(0, true),
		task(3, false),
		task(10, true),
		task(60, false),
	}
	r := Build(tasks, nil, nil, PeriodToday, nil, today)
	assert.Equal(t, WindowSummary{Total: 1, Completed: 1, CompletionRate: 100}, r.Summary.Today)
	assert.Equal(t, WindowSummary{Total: 2, Completed: 1, CompletionRate: 50}, r.Summary.Week)
	assert.Equal(t, WindowSummary{Total: 3, Completed: 2, CompletionRate: 66.7}, r.Summary.Month)
}

func TestBuildPriorityDistribution(t *testing.T) {
	tasks := []domain.Task{
		task(0, false, withPriority(domain.PriorityUrgent)),
		task(0, false, withPriority(domain.PriorityHigh)),
		task(0, false, withPriority(domain.PriorityHigh)),
		task(0, true, withPriority(domain.PriorityLow)),
	}
	r := Build(tasks, nil, nil, PeriodAll, nil, today)
	assert.Equal(t, PriorityDistribution{Urgent: 1, High: 2, Medium: 0, Low: 1}, r.PriorityDistribution)
}

func TestBuildRoutineCounts(t *testing.T) {
	routines := []domain.Routine{
		{IsActive: true},
		{IsActive: false},
		{IsActive: true},
	}
	r := Build(nil, nil, routines, PeriodAll, nil, today)
	assert.Equal(t, 3, r.Overview.TotalRoutines)
	assert.Equal(t, 2, r.Overview.ActiveRoutines)
}

func TestValidPeriod(t *testing.T) {
	assert.True(t, ValidPeriod(PeriodToday))
	assert.True(t, ValidPeriod(PeriodAll))
	assert.False(t, ValidPeriod("year"))
	assert.False(t, ValidPeriod(""))
}
