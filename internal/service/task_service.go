package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"Tracker/internal/cache"
	"Tracker/internal/dates"
	dom "Tracker/internal/domain"
	"Tracker/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var ErrNotFound = errors.New("not found")

// TaskService owns task CRUD and keeps the per-user caches honest: any
// write drops the user's task list and report caches.
type TaskService struct {
	repo    repo.TaskRepo
	cache   *cache.TaskCache
	reports *cache.ReportCache
	sf      singleflight.Group
}

// NewTaskService creates a TaskService. Nil caches disable caching.
func NewTaskService(r repo.TaskRepo, c *cache.TaskCache, rc *cache.ReportCache) *TaskService {
	return &TaskService{repo: r, cache: c, reports: rc}
}

func (s *TaskService) Create(ctx context.Context, userID int64, title, desc string, priority dom.Priority, categoryID *int64, dueDate *dates.Date) (dom.Task, error) {
	if priority == "" {
		priority = dom.PriorityMedium
	}
	t, err := s.repo.Create(ctx, dom.Task{
		UserID:      userID,
		CategoryID:  categoryID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(desc),
		Priority:    priority,
		DueDate:     dueDate,
	})
	if err != nil {
		return dom.Task{}, err
	}
	s.invalidate(ctx, userID)
	return t, nil
}

// List returns the user's full task history, via cache with singleflight
// dedup on concurrent misses. Coalesced callers receive independent copies:
// the handler sorts the list in place, so handing every caller the same
// backing array would race.
func (s *TaskService) List(ctx context.Context, userID int64) ([]dom.Task, error) {
	if s.cache == nil {
		return s.repo.List(ctx, userID)
	}
	key := "list:" + strconv.FormatInt(userID, 10)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
			return list, nil
		}
		list, err := s.repo.List(ctx, userID)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetList(ctx, userID, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	shared := v.([]dom.Task)
	out := make([]dom.Task, len(shared))
	copy(out, shared)
	return out, nil
}

func (s *TaskService) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	t, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, userID, id int64, title, desc *string, priority *dom.Priority, categoryID *int64, dueDate *dates.Date, setDue bool, isDone *bool) (dom.Task, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	patch := existing
	if title != nil {
		patch.Title = strings.TrimSpace(*title)
	}
	if desc != nil {
		patch.Description = strings.TrimSpace(*desc)
	}
	if priority != nil {
		patch.Priority = *priority
	}
	if categoryID != nil {
		patch.CategoryID = categoryID
	}
	if setDue {
		patch.DueDate = dueDate
	}
	if isDone != nil {
		patch.IsDone = *isDone
	}
	t, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidate(ctx, userID)
	return t, nil
}

func (s *TaskService) Complete(ctx context.Context, userID, id int64) (dom.Task, error) {
	t, err := s.repo.MarkDone(ctx, userID, id, true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidate(ctx, userID)
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.SoftDelete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *TaskService) invalidate(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
	if s.reports != nil {
		_ = s.reports.InvalidateUser(ctx, userID)
	}
}
