package repo

import (
	"context"
	"time"

	dom "Tracker/internal/domain"

	"Tracker/internal/dates"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepo interface {
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Task, error)
	// List returns the user's full non-deleted task history, completed
	// included; reporting needs all of it.
	List(ctx context.Context, userID int64) ([]dom.Task, error)
	Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error)
	SoftDelete(ctx context.Context, userID, id int64) error
	MarkDone(ctx context.Context, userID, id int64, done bool) (dom.Task, error)
}

type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

const taskColumns = `id, user_id, category_id, title, description, priority, due_date, is_done, created_at, updated_at, deleted_at`

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	query := `
		INSERT INTO tasks (user_id, category_id, title, description, priority, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + taskColumns
	row := r.db.QueryRow(ctx, query, t.UserID, t.CategoryID, t.Title, t.Description, t.Priority, dateToTime(t.DueDate))
	return scanTask(row)
}

func (r *PGTaskRepo) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`
	return scanTask(r.db.QueryRow(ctx, query, id, userID))
}

func (r *PGTaskRepo) List(ctx context.Context, userID int64) ([]dom.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error) {
	query := `
		UPDATE tasks
		SET category_id = $3, title = $4, description = $5, priority = $6, due_date = $7, is_done = $8, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		RETURNING ` + taskColumns
	row := r.db.QueryRow(ctx, query, id, userID,
		patch.CategoryID, patch.Title, patch.Description, patch.Priority, dateToTime(patch.DueDate), patch.IsDone)
	return scanTask(row)
}

func (r *PGTaskRepo) SoftDelete(ctx context.Context, userID, id int64) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`UPDATE tasks SET deleted_at = $3, updated_at = $3 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		id, userID, now)
	return err
}

func (r *PGTaskRepo) MarkDone(ctx context.Context, userID, id int64, done bool) (dom.Task, error) {
	query := `
		UPDATE tasks SET is_done = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		RETURNING ` + taskColumns
	return scanTask(r.db.QueryRow(ctx, query, id, userID, done))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (dom.Task, error) {
	var (
		t       dom.Task
		dueDate *time.Time
	)
	err := row.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Title, &t.Description, &t.Priority,
		&dueDate, &t.IsDone, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt)
	if err != nil {
		return dom.Task{}, err
	}
	t.DueDate = timeToDate(dueDate)
	return t, nil
}

// The date column round-trips through midnight-UTC time.Time; only the
// calendar day is meaningful.
func dateToTime(d *dates.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}

func timeToDate(t *time.Time) *dates.Date {
	if t == nil {
		return nil
	}
	d := dates.FromTime(*t)
	return &d
}
