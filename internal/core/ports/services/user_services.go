package services

import (
	"context"

	"github.com/pontualize/timesheet_app/internal/core/domain"
	"github.com/pontualize/timesheet_app/internal/dto"
)

// UserReaderSvc defines read operations over users.
type UserReaderSvc interface {
	// GetUser retrieves a user by ID for internal collaborators (token
	// refresh, permission resolution). Not permission-gated.
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByID returns the outward user projection. Gated by GET_USER.
	GetUserByID(ctx context.Context, perms domain.PermissionSet, userID string) (*dto.UserResponse, error)

	// ListUsers returns all users with group name and bank-hours balance.
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
}

// UserWriterSvc defines write operations over users.
type UserWriterSvc interface {
	// CreateUser registers a new user; a duplicate e-mail fails with
	// apperrors.ErrDuplicate.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser applies a partial profile update.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// ChangeUserPassword replaces a user's password with a fresh hash.
	// Gated by PUT_USER_PASSWORD; independent of the recovery flow.
	ChangeUserPassword(ctx context.Context, perms domain.PermissionSet, userID string, password string) error
}

// CredentialVerifierSvc checks login credentials.
type CredentialVerifierSvc interface {
	// VerifyCredentials returns the user matching email+password or
	// apperrors.ErrUnauthorized.
	VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	CredentialVerifierSvc
}
