package repositories

import (
	"context"

	"github.com/pontualize/timesheet_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique e-mail address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves all users ordered by team.
	FindUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateUserPassword replaces a user's password hash.
	UpdateUserPassword(ctx context.Context, userID string, passwordHash string) error
}

// RecoverPasswordRepository manages pending password-recovery requests.
type RecoverPasswordRepository interface {
	SaveRecoverPassword(ctx context.Context, recover domain.RecoverPassword) error
	FindRecoverPasswordByID(ctx context.Context, id string) (*domain.RecoverPassword, error)
	DeleteRecoverPassword(ctx context.Context, id string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	RecoverPasswordRepository
}
