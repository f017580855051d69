package service

import (
	"context"
	"errors"
	"strings"

	"Tracker/internal/cache"
	"Tracker/internal/dates"
	dom "Tracker/internal/domain"
	"Tracker/internal/repo"
	"Tracker/internal/schedule"

	"github.com/jackc/pgx/v5"
)

// RoutineService handles routine CRUD. Schedules are validated here; the
// handler surfaces a *schedule.ValidationError as a 400 with the first
// failing rule's message.
type RoutineService struct {
	repo    repo.RoutineRepo
	reports *cache.ReportCache
}

// NewRoutineService returns a new RoutineService.
func NewRoutineService(r repo.RoutineRepo, rc *cache.ReportCache) *RoutineService {
	return &RoutineService{repo: r, reports: rc}
}

func (s *RoutineService) Create(ctx context.Context, userID int64, title string, priority dom.Priority, categoryID *int64, in schedule.Input, isActive bool, startDate, endDate *dates.Date) (dom.Routine, error) {
	sched, err := schedule.Parse(in)
	if err != nil {
		return dom.Routine{}, err
	}
	if priority == "" {
		priority = dom.PriorityMedium
	}
	rt, err := s.repo.Create(ctx, dom.Routine{
		UserID:     userID,
		CategoryID: categoryID,
		Title:      strings.TrimSpace(title),
		Priority:   priority,
		Schedule:   sched,
		IsActive:   isActive,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		return dom.Routine{}, err
	}
	s.invalidate(ctx, userID)
	return rt, nil
}

func (s *RoutineService) List(ctx context.Context, userID int64) ([]dom.Routine, error) {
	return s.repo.List(ctx, userID)
}

func (s *RoutineService) GetByID(ctx context.Context, userID, id int64) (dom.Routine, error) {
	rt, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Routine{}, ErrNotFound
		}
		return dom.Routine{}, err
	}
	return rt, nil
}

// Update applies a partial patch. A new schedule, when supplied, replaces
// the old variant wholesale after validation; there is no field-level merge
// across variants.
func (s *RoutineService) Update(ctx context.Context, userID, id int64, title *string, priority *dom.Priority, categoryID *int64, in *schedule.Input, isActive *bool, startDate, endDate *dates.Date, setStart, setEnd bool) (dom.Routine, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Routine{}, ErrNotFound
		}
		return dom.Routine{}, err
	}
	patch := existing
	if title != nil {
		patch.Title = strings.TrimSpace(*title)
	}
	if priority != nil {
		patch.Priority = *priority
	}
	if categoryID != nil {
		patch.CategoryID = categoryID
	}
	if in != nil {
		sched, err := schedule.Parse(*in)
		if err != nil {
			return dom.Routine{}, err
		}
		patch.Schedule = sched
	}
	if isActive != nil {
		patch.IsActive = *isActive
	}
	if setStart {
		patch.StartDate = startDate
	}
	if setEnd {
		patch.EndDate = endDate
	}
	rt, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Routine{}, ErrNotFound
		}
		return dom.Routine{}, err
	}
	s.invalidate(ctx, userID)
	return rt, nil
}

func (s *RoutineService) SetActive(ctx context.Context, userID, id int64, active bool) (dom.Routine, error) {
	rt, err := s.repo.SetActive(ctx, userID, id, active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Routine{}, ErrNotFound
		}
		return dom.Routine{}, err
	}
	s.invalidate(ctx, userID)
	return rt, nil
}

func (s *RoutineService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.SoftDelete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *RoutineService) invalidate(ctx context.Context, userID int64) {
	if s.reports != nil {
		_ = s.reports.InvalidateUser(ctx, userID)
	}
}
