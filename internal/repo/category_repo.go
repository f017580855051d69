package repo

import (
	"context"
	"time"

	dom "Tracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepo interface {
	Create(ctx context.Context, c dom.Category) (dom.Category, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Category, error)
	List(ctx context.Context, userID int64) ([]dom.Category, error)
	Update(ctx context.Context, userID, id int64, patch dom.Category) (dom.Category, error)
	SoftDelete(ctx context.Context, userID, id int64) error
}

type PGCategoryRepo struct {
	db *pgxpool.Pool
}

func NewPGCategoryRepo(db *pgxpool.Pool) *PGCategoryRepo {
	return &PGCategoryRepo{db: db}
}

const categoryColumns = `id, user_id, name, color, created_at, updated_at, deleted_at`

func (r *PGCategoryRepo) Create(ctx context.Context, c dom.Category) (dom.Category, error) {
	query := `
		INSERT INTO categories (user_id, name, color)
		VALUES ($1, $2, $3)
		RETURNING ` + categoryColumns
	return scanCategory(r.db.QueryRow(ctx, query, c.UserID, c.Name, c.Color))
}

func (r *PGCategoryRepo) GetByID(ctx context.Context, userID, id int64) (dom.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`
	return scanCategory(r.db.QueryRow(ctx, query, id, userID))
}

func (r *PGCategoryRepo) List(ctx context.Context, userID int64) ([]dom.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PGCategoryRepo) Update(ctx context.Context, userID, id int64, patch dom.Category) (dom.Category, error) {
	query := `
		UPDATE categories SET name = $3, color = $4, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		RETURNING ` + categoryColumns
	return scanCategory(r.db.QueryRow(ctx, query, id, userID, patch.Name, patch.Color))
}

func (r *PGCategoryRepo) SoftDelete(ctx context.Context, userID, id int64) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`UPDATE categories SET deleted_at = $3, updated_at = $3 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		id, userID, now)
	return err
}

func scanCategory(row rowScanner) (dom.Category, error) {
	var c dom.Category
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	return c, err
}
