package domain

import (
	"time"

	"Tracker/internal/dates"
)

// Priority of a task or routine.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Domain entity: the business object, independent of Gin, Postgres, Redis.
type Task struct {
	ID          int64
	UserID      int64
	CategoryID  *int64
	Title       string
	Description string
	Priority    Priority
	DueDate     *dates.Date
	IsDone      bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// CompletionSignalDate is the calendar date standing in for "when this task
// was completed". It is derived from UpdatedAt because the store keeps no
// dedicated completion timestamp, so editing a completed task moves its
// productive day. Known distortion, kept as observed behavior.
func (t Task) CompletionSignalDate() dates.Date {
	return dates.FromTime(t.UpdatedAt)
}

// CreatedOn is the calendar date the task was created, used for report
// windowing.
func (t Task) CreatedOn() dates.Date {
	return dates.FromTime(t.CreatedAt)
}
