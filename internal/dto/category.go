package dto

import (
	"github.com/andridns/expense-tracker-backend/internal/core/domain"
)

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name  string  `json:"name" binding:"required,max=100"`
	Icon  *string `json:"icon"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
}

// UpdateCategoryRequest is the payload for updating a category.
// Nil fields are left unchanged.
type UpdateCategoryRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Icon  *string `json:"icon"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
}

// CategoryResponse is the API representation of a category.
type CategoryResponse struct {
	CategoryID string  `json:"categoryID"`
	Name       string  `json:"name"`
	Icon       *string `json:"icon,omitempty"`
	Color      string  `json:"color"`
	IsDefault  bool    `json:"isDefault"`
}

// ToCategoryResponse converts a domain Category to its API representation.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Icon:       c.Icon,
		Color:      c.Color,
		IsDefault:  c.IsDefault,
	}
}

// ToCategoryResponseSlice converts domain Categories to their API representation.
func ToCategoryResponseSlice(cs []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(cs))
	for i := range cs {
		out[i] = ToCategoryResponse(&cs[i])
	}
	return out
}
