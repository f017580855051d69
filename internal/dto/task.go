package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"Tracker/internal/dates"
)

// DueDate parses due_date from JSON as either date-only ("2006-01-02") or an
// RFC3339 datetime. A datetime is reduced to its calendar day as observed in
// its own offset, never re-interpreted in server time.
type DueDate struct{ d *dates.Date }

func (d *DueDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.d = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02", // date only
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			day := dates.FromTime(parsed)
			d.d = &day
			return nil
		}
	}
	return fmt.Errorf("due_date: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Ptr returns *dates.Date for use in service/domain.
func (d DueDate) Ptr() *dates.Date { return d.d }

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=120"`
	Description string  `json:"description" binding:"max=1000"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	CategoryID  *int64  `json:"category_id"`
	DueDate     DueDate `json:"due_date"` // optional: "2026-02-19" or RFC3339
}

type UpdateTaskRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1,max=120"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Priority    *string  `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	CategoryID  *int64   `json:"category_id"`
	DueDate     *DueDate `json:"due_date"` // nil = keep, value = set
	IsDone      *bool    `json:"is_done"`
}

type TaskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	IsDone      bool    `json:"is_done"`

	// Presentation fields from the status classifier; omitted when the task
	// has no due date and is not completed.
	Status      string `json:"status,omitempty"`
	StatusText  string `json:"status_text,omitempty"`
	StatusColor string `json:"status_color,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListTasksResponse struct {
	Items []TaskResponse `json:"items"`
}
