package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/apperrors"
	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	portsrepo "github.com/andridns/expense-tracker-backend/internal/core/ports/repositories"
	portssvc "github.com/andridns/expense-tracker-backend/internal/core/ports/services"
	"github.com/andridns/expense-tracker-backend/internal/dto"
	"github.com/google/uuid"
)

const defaultCategoryColor = "#4CAF50"

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	dashboards   DashboardInvalidator
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CategoryServiceOption configures the category service.
type CategoryServiceOption func(*categoryService)

// WithCategoryDashboardInvalidator wires dashboard cache invalidation into
// category mutations.
func WithCategoryDashboardInvalidator(inv DashboardInvalidator) CategoryServiceOption {
	return func(s *categoryService) {
		s.dashboards = inv
	}
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, opts ...CategoryServiceOption) portssvc.CategorySvcFacade {
	s := &categoryService{categoryRepo: categoryRepo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	if existing, err := s.categoryRepo.FindCategoryByName(ctx, req.Name); err == nil && existing != nil {
		return nil, apperrors.NewDuplicateError(fmt.Sprintf("category %q already exists", req.Name))
	}

	color := defaultCategoryColor
	if req.Color != nil {
		color = *req.Color
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Icon:       req.Icon,
		Color:      color,
		IsDefault:  false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", "name", req.Name)
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	s.invalidateDashboards()
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.FindCategories(ctx)
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		if existing, err := s.categoryRepo.FindCategoryByName(ctx, *req.Name); err == nil && existing != nil {
			return nil, apperrors.NewDuplicateError(fmt.Sprintf("category %q already exists", *req.Name))
		}
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = updaterUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", "category_id", categoryID)
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.invalidateDashboards()
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to load category: %w", err)
	}

	if category.IsDefault {
		return apperrors.NewValidationError("default categories cannot be deleted")
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", "category_id", categoryID)
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.invalidateDashboards()
	return nil
}

func (s *categoryService) invalidateDashboards() {
	if s.dashboards != nil {
		s.dashboards.InvalidateDashboard()
	}
}
