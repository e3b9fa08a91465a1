package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/apperrors"
	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	portssvc "github.com/andridns/expense-tracker-backend/internal/core/ports/services"
	"github.com/andridns/expense-tracker-backend/internal/dto"
	"github.com/andridns/expense-tracker-backend/internal/handlers"
	"github.com/andridns/expense-tracker-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Test Suite ---
type CategoryHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCategoryService *MockCategoryService
	jwtSecret           string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *CategoryHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "expense-tracker-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *CategoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockCategoryService = new(MockCategoryService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterCategoryRoutes(v1, suite.mockCategoryService)
}

func (suite *CategoryHandlerTestSuite) authedRequest(method, url string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	return req
}

// --- Test Cases ---

func (suite *CategoryHandlerTestSuite) TestListCategories_Success() {
	icon := "utensils"
	expected := []domain.Category{
		{CategoryID: uuid.NewString(), Name: "Food & Dining", Icon: &icon, Color: "#FF7043", IsDefault: true},
		{CategoryID: uuid.NewString(), Name: "Groceries", Color: "#4CAF50"},
	}

	suite.mockCategoryService.On("ListCategories", mock.Anything).Return(expected, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/categories", nil))

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.CategoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.Equal(expected[0].CategoryID, body[0].CategoryID)
	suite.True(body[0].IsDefault)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestListCategories_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/categories", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCategoryService.AssertNotCalled(suite.T(), "ListCategories", mock.Anything)
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_Success() {
	created := &domain.Category{CategoryID: uuid.NewString(), Name: "Groceries", Color: "#4CAF50"}

	suite.mockCategoryService.On("CreateCategory",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateCategoryRequest) bool { return r.Name == "Groceries" }),
		mock.AnythingOfType("string"),
	).Return(created, nil).Once()

	payload, _ := json.Marshal(dto.CreateCategoryRequest{Name: "Groceries"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/categories", payload))

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.CategoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(created.CategoryID, body.CategoryID)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_Duplicate() {
	suite.mockCategoryService.On("CreateCategory", mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Return(nil, apperrors.NewDuplicateError(`category "Groceries" already exists`)).Once()

	payload, _ := json.Marshal(dto.CreateCategoryRequest{Name: "Groceries"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/categories", payload))

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_MissingName() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/categories", []byte(`{}`)))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCategoryService.AssertNotCalled(suite.T(), "CreateCategory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CategoryHandlerTestSuite) TestGetCategoryByID_NotFound() {
	categoryID := uuid.NewString()

	suite.mockCategoryService.On("GetCategoryByID", mock.Anything, categoryID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/categories/"+categoryID, nil))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_Success() {
	categoryID := uuid.NewString()

	suite.mockCategoryService.On("DeleteCategory", mock.Anything, categoryID).Return(nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodDelete, "/api/v1/categories/"+categoryID, nil))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_DefaultBlocked() {
	categoryID := uuid.NewString()

	suite.mockCategoryService.On("DeleteCategory", mock.Anything, categoryID).
		Return(apperrors.NewValidationError("default categories cannot be deleted")).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodDelete, "/api/v1/categories/"+categoryID, nil))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestCategoryHandler(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}
