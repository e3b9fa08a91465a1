package services_test

import (
	"context"
	"testing"

	"github.com/andridns/expense-tracker-backend/internal/apperrors"
	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	portssvc "github.com/andridns/expense-tracker-backend/internal/core/ports/services"
	"github.com/andridns/expense-tracker-backend/internal/core/services"
	"github.com/andridns/expense-tracker-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Counting DashboardInvalidator ---
type countingInvalidator struct {
	invalidations int
}

func (c *countingInvalidator) InvalidateDashboard() {
	c.invalidations++
}

// --- Test Suite ---
type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	invalidator      *countingInvalidator
	service          portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.invalidator = new(countingInvalidator)
	suite.service = services.NewCategoryService(
		suite.mockCategoryRepo,
		services.WithCategoryDashboardInvalidator(suite.invalidator),
	)
}

// --- CreateCategory Tests ---
func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateCategoryRequest{Name: "Groceries"}

	suite.mockCategoryRepo.On("FindCategoryByName", ctx, "Groceries").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCategoryRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Groceries" && !c.IsDefault && c.CategoryID != "" && c.CreatedBy == creatorID
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(category)
	suite.Equal("Groceries", category.Name)
	suite.NotEmpty(category.Color, "a category without an explicit color gets the default")
	suite.False(category.IsDefault)
	suite.Equal(1, suite.invalidator.invalidations)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Duplicate() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Groceries"}
	existing := &domain.Category{CategoryID: uuid.NewString(), Name: "Groceries"}

	suite.mockCategoryRepo.On("FindCategoryByName", ctx, "Groceries").Return(existing, nil).Once()

	category, err := suite.service.CreateCategory(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal(0, suite.invalidator.invalidations)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

// --- UpdateCategory Tests ---
func (suite *CategoryServiceTestSuite) TestUpdateCategory_Success() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	updaterID := uuid.NewString()
	newName := "Dining Out"
	newColor := "#FF5722"
	req := dto.UpdateCategoryRequest{Name: &newName, Color: &newColor}
	existing := &domain.Category{CategoryID: categoryID, Name: "Food", Color: "#4CAF50"}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByName", ctx, newName).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCategoryRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == newName && c.Color == newColor && c.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	category, err := suite.service.UpdateCategory(ctx, categoryID, req, updaterID)

	suite.Require().NoError(err)
	suite.Equal(newName, category.Name)
	suite.Equal(newColor, category.Color)
	suite.Equal(1, suite.invalidator.invalidations)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_DuplicateName() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	newName := "Travel"
	req := dto.UpdateCategoryRequest{Name: &newName}
	existing := &domain.Category{CategoryID: categoryID, Name: "Food"}
	clashing := &domain.Category{CategoryID: uuid.NewString(), Name: "Travel"}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByName", ctx, newName).Return(clashing, nil).Once()

	category, err := suite.service.UpdateCategory(ctx, categoryID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "UpdateCategory", mock.Anything, mock.Anything)
}

// --- DeleteCategory Tests ---
func (suite *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	existing := &domain.Category{CategoryID: categoryID, Name: "Food", IsDefault: false}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("DeleteCategory", ctx, categoryID).Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, categoryID)

	suite.Require().NoError(err)
	suite.Equal(1, suite.invalidator.invalidations)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_DefaultBlocked() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	existing := &domain.Category{CategoryID: categoryID, Name: "Other", IsDefault: true}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(existing, nil).Once()

	err := suite.service.DeleteCategory(ctx, categoryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(0, suite.invalidator.invalidations)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_NotFound() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCategory(ctx, categoryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_RepoError() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	existing := &domain.Category{CategoryID: categoryID, Name: "Food"}
	expectedErr := assert.AnError

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("DeleteCategory", ctx, categoryID).Return(expectedErr).Once()

	err := suite.service.DeleteCategory(ctx, categoryID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.Equal(0, suite.invalidator.invalidations)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestCategoryService(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
