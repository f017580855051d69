package domain

import "time"

// Category groups tasks by area (work, health, study, etc.).
type Category struct {
	ID     int64
	UserID int64
	Name   string
	Color  string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
