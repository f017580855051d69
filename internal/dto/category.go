package dto

import "time"

// CreateCategoryRequest is the JSON body for POST /categories.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=60"`
	Color string `json:"color" binding:"omitempty,max=20"`
}

// UpdateCategoryRequest is a partial update; nil fields are kept.
type UpdateCategoryRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=60"`
	Color *string `json:"color" binding:"omitempty,max=20"`
}

type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListCategoriesResponse struct {
	Items []CategoryResponse `json:"items"`
}
