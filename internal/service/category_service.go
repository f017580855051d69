package service

import (
	"context"
	"errors"
	"strings"

	"Tracker/internal/cache"
	dom "Tracker/internal/domain"
	"Tracker/internal/repo"
	"Tracker/internal/utils"

	"github.com/jackc/pgx/v5"
)

var ErrCategoryNameTaken = errors.New("category name already taken")

const defaultCategoryColor = "#6b7280"

// CategoryService handles category CRUD.
type CategoryService struct {
	repo    repo.CategoryRepo
	reports *cache.ReportCache
}

// NewCategoryService returns a new CategoryService.
func NewCategoryService(r repo.CategoryRepo, rc *cache.ReportCache) *CategoryService {
	return &CategoryService{repo: r, reports: rc}
}

func (s *CategoryService) Create(ctx context.Context, userID int64, name, color string) (dom.Category, error) {
	if color == "" {
		color = defaultCategoryColor
	}
	c, err := s.repo.Create(ctx, dom.Category{
		UserID: userID,
		Name:   strings.TrimSpace(name),
		Color:  color,
	})
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Category{}, ErrCategoryNameTaken
		}
		return dom.Category{}, err
	}
	s.invalidate(ctx, userID)
	return c, nil
}

func (s *CategoryService) List(ctx context.Context, userID int64) ([]dom.Category, error) {
	return s.repo.List(ctx, userID)
}

func (s *CategoryService) Update(ctx context.Context, userID, id int64, name, color *string) (dom.Category, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Category{}, ErrNotFound
		}
		return dom.Category{}, err
	}
	patch := existing
	if name != nil {
		patch.Name = strings.TrimSpace(*name)
	}
	if color != nil {
		patch.Color = *color
	}
	c, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Category{}, ErrNotFound
		}
		if utils.IsPGUniqueViolation(err) {
			return dom.Category{}, ErrCategoryNameTaken
		}
		return dom.Category{}, err
	}
	s.invalidate(ctx, userID)
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.SoftDelete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *CategoryService) invalidate(ctx context.Context, userID int64) {
	if s.reports != nil {
		_ = s.reports.InvalidateUser(ctx, userID)
	}
}
