package dto

import "time"

// ScheduleRequest mirrors the client's proposed recurrence rule. Field-level
// validation happens in the schedule package, not through binding tags, so
// the first failing rule's message reaches the client verbatim.
type ScheduleRequest struct {
	RecurrenceType string   `json:"recurrence_type" binding:"required"`
	Interval       *int     `json:"interval"`
	DaysOfWeek     []string `json:"days_of_week"`
	DayOfMonth     *int     `json:"day_of_month"`
	Time           *string  `json:"time"`
}

type CreateRoutineRequest struct {
	Title      string          `json:"title" binding:"required,min=1,max=120"`
	Priority   string          `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	CategoryID *int64          `json:"category_id"`
	Schedule   ScheduleRequest `json:"schedule" binding:"required"`
	IsActive   *bool           `json:"is_active"`
	StartDate  DueDate         `json:"start_date"`
	EndDate    DueDate         `json:"end_date"`
}

type UpdateRoutineRequest struct {
	Title      *string          `json:"title" binding:"omitempty,min=1,max=120"`
	Priority   *string          `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	CategoryID *int64           `json:"category_id"`
	Schedule   *ScheduleRequest `json:"schedule"`
	IsActive   *bool            `json:"is_active"`
	StartDate  *DueDate         `json:"start_date"`
	EndDate    *DueDate         `json:"end_date"`
}

type ScheduleResponse struct {
	RecurrenceType string   `json:"recurrence_type"`
	Interval       *int     `json:"interval,omitempty"`
	DaysOfWeek     []string `json:"days_of_week,omitempty"`
	DayOfMonth     *int     `json:"day_of_month,omitempty"`
	Time           *string  `json:"time,omitempty"`

	// Description is derived display text ("Every Monday, Friday at 09:00"),
	// never parsed back.
	Description string `json:"description"`
}

type RoutineResponse struct {
	ID         int64            `json:"id"`
	Title      string           `json:"title"`
	Priority   string           `json:"priority"`
	CategoryID *int64           `json:"category_id,omitempty"`
	Schedule   ScheduleResponse `json:"schedule"`
	IsActive   bool             `json:"is_active"`
	StartDate  *string          `json:"start_date,omitempty"`
	EndDate    *string          `json:"end_date,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type ListRoutinesResponse struct {
	Items []RoutineResponse `json:"items"`
}
