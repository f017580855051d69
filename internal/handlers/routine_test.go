package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "Tracker/internal/domain"
	"Tracker/internal/service"
)

// stubRoutineRepo keeps routines in memory; enough to drive the handler
// through the validation path.
type stubRoutineRepo struct {
	nextID int64
	items  map[int64]dom.Routine
}

func newStubRoutineRepo() *stubRoutineRepo {
	return &stubRoutineRepo{items: map[int64]dom.Routine{}}
}

func (s *stubRoutineRepo) Create(_ context.Context, rt dom.Routine) (dom.Routine, error) {
	s.nextID++
	rt.ID = s.nextID
	s.items[rt.ID] = rt
	return rt, nil
}

func (s *stubRoutineRepo) GetByID(_ context.Context, _, id int64) (dom.Routine, error) {
	return s.items[id], nil
}

func (s *stubRoutineRepo) List(_ context.Context, _ int64) ([]dom.Routine, error) {
	var out []dom.Routine
	for _, rt := range s.items {
		out = append(out, rt)
	}
	return out, nil
}

func (s *stubRoutineRepo) Update(_ context.Context, _, id int64, patch dom.Routine) (dom.Routine, error) {
	patch.ID = id
	s.items[id] = patch
	return patch, nil
}

func (s *stubRoutineRepo) SetActive(_ context.Context, _, id int64, active bool) (dom.Routine, error) {
	rt := s.items[id]
	rt.IsActive = active
	s.items[id] = rt
	return rt, nil
}

func (s *stubRoutineRepo) SoftDelete(_ context.Context, _, id int64) error {
	delete(s.items, id)
	return nil
}

func newRoutineRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRoutineHandler(service.NewRoutineService(newStubRoutineRepo(), nil))
	r.POST("/routines", h.Create)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRoutineValid(t *testing.T) {
	r := newRoutineRouter()
	w := postJSON(t, r, "/routines", `{
		"title": "Morning run",
		"schedule": {"recurrence_type": "WEEKLY", "days_of_week": ["MON", "FRI"], "time": "07:00"}
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Schedule struct {
			RecurrenceType string   `json:"recurrence_type"`
			DaysOfWeek     []string `json:"days_of_week"`
			Description    string   `json:"description"`
		} `json:"schedule"`
		IsActive bool   `json:"is_active"`
		Priority string `json:"priority"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "WEEKLY", resp.Schedule.RecurrenceType)
	assert.Equal(t, []string{"MON", "FRI"}, resp.Schedule.DaysOfWeek)
	assert.Equal(t, "Every Monday, Friday at 07:00", resp.Schedule.Description)
	assert.True(t, resp.IsActive)
	assert.Equal(t, "MEDIUM", resp.Priority)
}

// The first failing validation rule's message comes back verbatim as a 400.
func TestCreateRoutineValidationMessages(t *testing.T) {
	cases := []struct {
		name     string
		schedule string
		wantMsg  string
	}{
		{"unknown type", `{"recurrence_type": "YEARLY"}`, "recurrence type must be DAILY, WEEKLY, MONTHLY or CUSTOM"},
		{"weekly no days", `{"recurrence_type": "WEEKLY", "days_of_week": []}`, "select at least one day"},
		{"monthly day 32", `{"recurrence_type": "MONTHLY", "day_of_month": 32}`, "day of month must be between 1 and 31"},
		{"custom zero interval", `{"recurrence_type": "CUSTOM", "interval": 0}`, "interval must be at least 1"},
		{"bad time", `{"recurrence_type": "DAILY", "time": "24:00"}`, "time must be in 24-hour HH:MM format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRoutineRouter()
			w := postJSON(t, r, "/routines", `{"title": "x", "schedule": `+tc.schedule+`}`)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantMsg, resp["error"])
		})
	}
}
