package handlers

import (
	"errors"
	"net/http"

	"Tracker/internal/auth"
	dom "Tracker/internal/domain"
	"Tracker/internal/dto"
	"Tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	svc *service.CategoryService
}

func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// Create godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateCategoryRequest  true  "Category body"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), req.Name, req.Color)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, categoryToResponse(cat))
}

// List godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListCategoriesResponse
// @Failure      500  {object}  map[string]string
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.CategoryResponse, len(list))
	for i := range list {
		out[i] = categoryToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListCategoriesResponse{Items: out})
}

// Update godoc
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Category ID"
// @Param        body  body      dto.UpdateCategoryRequest  true  "Partial update"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /categories/{id} [patch]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := h.svc.Update(c.Request.Context(), auth.UserIDFromContext(c), id, req.Name, req.Color)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		case errors.Is(err, service.ErrCategoryNameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, categoryToResponse(cat))
}

// Delete godoc
// @Summary      Delete a category
// @Tags         categories
// @Security     CookieAuth
// @Param        id   path  int  true  "Category ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func categoryToResponse(cat dom.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        cat.ID,
		Name:      cat.Name,
		Color:     cat.Color,
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}
}
