package services

import (
	"context"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	"github.com/andridns/expense-tracker-backend/internal/dto"
)

// CategorySvcFacade defines the operations for managing expense categories.
type CategorySvcFacade interface {
	// CreateCategory creates a category with a unique name.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)

	// GetCategoryByID retrieves a category.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories, default ones first.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// UpdateCategory updates a category, keeping names unique.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.Category, error)

	// DeleteCategory removes a category. Default categories cannot be deleted.
	DeleteCategory(ctx context.Context, categoryID string) error
}
