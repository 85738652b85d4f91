package services

import (
	"context"

	"github.com/pontualize/timesheet_app/internal/dto"
)

// TokenSvcFacade issues and refreshes access tokens and drives the
// password-recovery flow.
type TokenSvcFacade interface {
	// Login exchanges credentials for a token pair.
	Login(ctx context.Context, email, password string) (*dto.TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)

	// StartPasswordRecovery creates a recovery code for the user behind
	// the e-mail address.
	StartPasswordRecovery(ctx context.Context, email string) error

	// ResetPassword completes recovery: the (hash, code) pair must match a
	// pending recovery record.
	ResetPassword(ctx context.Context, hash, code, password string) error
}
