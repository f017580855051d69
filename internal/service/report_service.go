package service

import (
	"context"
	"strconv"

	"Tracker/internal/cache"
	"Tracker/internal/dates"
	"Tracker/internal/repo"
	"Tracker/internal/report"

	"golang.org/x/sync/singleflight"
)

// ReportService assembles the analytics payload: it pulls the user's full
// snapshot from the repos and hands it to the pure aggregator with the
// injected clock's "today". Results are cached per (user, period, category)
// and filled under singleflight.
type ReportService struct {
	tasks      repo.TaskRepo
	categories repo.CategoryRepo
	routines   repo.RoutineRepo
	cache      *cache.ReportCache
	clock      dates.Clock
	sf         singleflight.Group
}

// NewReportService creates a ReportService. A nil cache disables caching.
func NewReportService(t repo.TaskRepo, c repo.CategoryRepo, r repo.RoutineRepo, rc *cache.ReportCache, clock dates.Clock) *ReportService {
	if clock == nil {
		clock = dates.System()
	}
	return &ReportService{tasks: t, categories: c, routines: r, cache: rc, clock: clock}
}

// Build returns the report for the period and optional category filter.
// Period validity is the handler's concern; this always computes.
func (s *ReportService) Build(ctx context.Context, userID int64, period report.Period, categoryID *int64) (report.Report, error) {
	if s.cache == nil {
		return s.build(ctx, userID, period, categoryID)
	}
	key := "report:" + strconv.FormatInt(userID, 10) + ":" + string(period)
	if categoryID != nil {
		key += ":" + strconv.FormatInt(*categoryID, 10)
	}
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if cached, err := s.cache.Get(ctx, userID, period, categoryID); err == nil && cached != nil {
			return *cached, nil
		}
		r, err := s.build(ctx, userID, period, categoryID)
		if err != nil {
			return report.Report{}, err
		}
		_ = s.cache.Set(ctx, userID, period, categoryID, r)
		return r, nil
	})
	if err != nil {
		return report.Report{}, err
	}
	return v.(report.Report), nil
}

func (s *ReportService) build(ctx context.Context, userID int64, period report.Period, categoryID *int64) (report.Report, error) {
	tasks, err := s.tasks.List(ctx, userID)
	if err != nil {
		return report.Report{}, err
	}
	categories, err := s.categories.List(ctx, userID)
	if err != nil {
		return report.Report{}, err
	}
	routines, err := s.routines.List(ctx, userID)
	if err != nil {
		return report.Report{}, err
	}
	return report.Build(tasks, categories, routines, period, categoryID, s.clock.Today()), nil
}
