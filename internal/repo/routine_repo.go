package repo

import (
	"context"
	"fmt"
	"time"

	dom "Tracker/internal/domain"
	"Tracker/internal/schedule"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RoutineRepo interface {
	Create(ctx context.Context, rt dom.Routine) (dom.Routine, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Routine, error)
	List(ctx context.Context, userID int64) ([]dom.Routine, error)
	Update(ctx context.Context, userID, id int64, patch dom.Routine) (dom.Routine, error)
	SetActive(ctx context.Context, userID, id int64, active bool) (dom.Routine, error)
	SoftDelete(ctx context.Context, userID, id int64) error
}

type PGRoutineRepo struct {
	db *pgxpool.Pool
}

func NewPGRoutineRepo(db *pgxpool.Pool) *PGRoutineRepo {
	return &PGRoutineRepo{db: db}
}

const routineColumns = `id, user_id, category_id, title, priority,
	recurrence_type, recur_interval, days_of_week, day_of_month, at_time,
	is_active, start_date, end_date, created_at, updated_at, deleted_at`

func (r *PGRoutineRepo) Create(ctx context.Context, rt dom.Routine) (dom.Routine, error) {
	query := `
		INSERT INTO routines (user_id, category_id, title, priority,
			recurrence_type, recur_interval, days_of_week, day_of_month, at_time,
			is_active, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + routineColumns
	cols := scheduleColumns(rt.Schedule)
	row := r.db.QueryRow(ctx, query, rt.UserID, rt.CategoryID, rt.Title, rt.Priority,
		cols.kind, cols.interval, cols.days, cols.dayOfMonth, cols.at,
		rt.IsActive, dateToTime(rt.StartDate), dateToTime(rt.EndDate))
	return scanRoutine(row)
}

func (r *PGRoutineRepo) GetByID(ctx context.Context, userID, id int64) (dom.Routine, error) {
	query := `
		SELECT ` + routineColumns + `
		FROM routines WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`
	return scanRoutine(r.db.QueryRow(ctx, query, id, userID))
}

func (r *PGRoutineRepo) List(ctx context.Context, userID int64) ([]dom.Routine, error) {
	query := `
		SELECT ` + routineColumns + `
		FROM routines WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Routine
	for rows.Next() {
		rt, err := scanRoutine(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rt)
	}
	return list, rows.Err()
}

func (r *PGRoutineRepo) Update(ctx context.Context, userID, id int64, patch dom.Routine) (dom.Routine, error) {
	query := `
		UPDATE routines
		SET category_id = $3, title = $4, priority = $5,
			recurrence_type = $6, recur_interval = $7, days_of_week = $8, day_of_month = $9, at_time = $10,
			is_active = $11, start_date = $12, end_date = $13, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		RETURNING ` + routineColumns
	cols := scheduleColumns(patch.Schedule)
	row := r.db.QueryRow(ctx, query, id, userID, patch.CategoryID, patch.Title, patch.Priority,
		cols.kind, cols.interval, cols.days, cols.dayOfMonth, cols.at,
		patch.IsActive, dateToTime(patch.StartDate), dateToTime(patch.EndDate))
	return scanRoutine(row)
}

func (r *PGRoutineRepo) SetActive(ctx context.Context, userID, id int64, active bool) (dom.Routine, error) {
	query := `
		UPDATE routines SET is_active = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		RETURNING ` + routineColumns
	return scanRoutine(r.db.QueryRow(ctx, query, id, userID, active))
}

func (r *PGRoutineRepo) SoftDelete(ctx context.Context, userID, id int64) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`UPDATE routines SET deleted_at = $3, updated_at = $3 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		id, userID, now)
	return err
}

// scheduleColumns flattens the schedule variant into nullable columns;
// scanRoutine reverses it through the validator, so a row can only load back
// as a legal variant.
type flatSchedule struct {
	kind       string
	interval   *int
	days       []string
	dayOfMonth *int
	at         *string
}

func scheduleColumns(s schedule.Schedule) flatSchedule {
	f := flatSchedule{kind: string(s.Kind())}
	switch s.Kind() {
	case schedule.Weekly:
		f.days = s.DaysOfWeek()
	case schedule.Monthly:
		d := s.DayOfMonth()
		f.dayOfMonth = &d
	case schedule.Custom:
		n := s.Interval()
		f.interval = &n
	}
	if at, ok := s.At(); ok {
		f.at = &at
	}
	return f
}

func scanRoutine(row rowScanner) (dom.Routine, error) {
	var (
		rt                 dom.Routine
		f                  flatSchedule
		startDate, endDate *time.Time
	)
	err := row.Scan(&rt.ID, &rt.UserID, &rt.CategoryID, &rt.Title, &rt.Priority,
		&f.kind, &f.interval, &f.days, &f.dayOfMonth, &f.at,
		&rt.IsActive, &startDate, &endDate, &rt.CreatedAt, &rt.UpdatedAt, &rt.DeletedAt)
	if err != nil {
		return dom.Routine{}, err
	}
	s, err := schedule.Parse(schedule.Input{
		RecurrenceType: f.kind,
		Interval:       f.interval,
		DaysOfWeek:     f.days,
		DayOfMonth:     f.dayOfMonth,
		Time:           f.at,
	})
	if err != nil {
		return dom.Routine{}, fmt.Errorf("routine %d: stored schedule invalid: %w", rt.ID, err)
	}
	rt.Schedule = s
	rt.StartDate = timeToDate(startDate)
	rt.EndDate = timeToDate(endDate)
	return rt, nil
}
