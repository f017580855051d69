package domain

import (
	"time"

	"Tracker/internal/dates"
	"Tracker/internal/schedule"
)

// Routine is a recurring task template. It stores and displays its schedule
// only; nothing expands the rule into dated task occurrences.
type Routine struct {
	ID         int64
	UserID     int64
	CategoryID *int64
	Title      string
	Priority   Priority
	Schedule   schedule.Schedule
	IsActive   bool

	// EndDate is not required to be >= StartDate; the source system never
	// enforced that and no rule is invented here.
	StartDate *dates.Date
	EndDate   *dates.Date

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
