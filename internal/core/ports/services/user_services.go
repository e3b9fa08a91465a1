package services

import (
	"context"

	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	"github.com/andridns/expense-tracker-backend/internal/dto"
)

// UserSvcFacade defines the operations for managing user accounts.
type UserSvcFacade interface {
	// CreateUser registers a new user with a hashed password.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
