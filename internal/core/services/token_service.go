package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pontualize/timesheet_app/internal/apperrors"
	"github.com/pontualize/timesheet_app/internal/core/domain"
	portsrepo "github.com/pontualize/timesheet_app/internal/core/ports/repositories"
	portssvc "github.com/pontualize/timesheet_app/internal/core/ports/services"
	"github.com/pontualize/timesheet_app/internal/dto"
	"github.com/pontualize/timesheet_app/internal/platform/config"
	"github.com/pontualize/timesheet_app/internal/utils"
)

const recoveryCodeDigits = 5

// tokenService implements the TokenSvcFacade for JWT issuance and the
// password-recovery flow.
type tokenService struct {
	BaseService
	cfg         *config.Config
	userService portssvc.CredentialVerifierSvc
	userRepo    portsrepo.UserRepositoryFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(
	cfg *config.Config,
	userService portssvc.CredentialVerifierSvc,
	userRepo portsrepo.UserRepositoryFacade,
) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userService: userService,
		userRepo:    userRepo,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// Login exchanges credentials for an access/refresh token pair.
func (s *tokenService) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	user, err := s.userService.VerifyCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return nil, fmt.Errorf("user credentials do not match: %w", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is returned unchanged.
func (s *tokenService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := utils.ParseAndValidateJWT(refreshToken, s.cfg.RefreshTokenSecret)
	if err != nil || claims.Subject == "" {
		return nil, fmt.Errorf("invalid refresh token: %w", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid refresh token: %w", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.cfg.JWTExpiryDuration.Seconds()),
	}, nil
}

// StartPasswordRecovery creates a pending recovery record with a 5-digit
// code for the user behind the e-mail address.
func (s *tokenService) StartPasswordRecovery(ctx context.Context, email string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("unknown e-mail: %w", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to find user for recovery")
		return err
	}

	code, err := utils.GenerateNumericCode(recoveryCodeDigits)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate recovery code")
		return err
	}

	recover := domain.RecoverPassword{
		ID:     uuid.NewString(),
		UserID: user.UserID,
		Code:   code,
	}
	if err := s.userRepo.SaveRecoverPassword(ctx, recover); err != nil {
		s.LogError(ctx, err, "Failed to save recovery record", slog.String("user_id", user.UserID))
		return err
	}
	s.LogInfo(ctx, "Password recovery started", slog.String("user_id", user.UserID))
	return nil
}

// ResetPassword completes recovery when (hash, code) matches a pending
// record, then deletes the record.
func (s *tokenService) ResetPassword(ctx context.Context, hash, code, password string) error {
	recover, err := s.userRepo.FindRecoverPasswordByID(ctx, hash)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("invalid recovery fields: %w", apperrors.ErrValidation)
		}
		s.LogError(ctx, err, "Failed to load recovery record")
		return err
	}
	if recover.Code != code {
		return fmt.Errorf("invalid recovery fields: %w", apperrors.ErrValidation)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash new password")
		return err
	}
	if err := s.userRepo.UpdateUserPassword(ctx, recover.UserID, passwordHash); err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.String("user_id", recover.UserID))
		return err
	}
	if err := s.userRepo.DeleteRecoverPassword(ctx, recover.ID); err != nil {
		s.LogError(ctx, err, "Failed to delete recovery record", slog.String("user_id", recover.UserID))
		return err
	}
	s.LogInfo(ctx, "Password reset completed", slog.String("user_id", recover.UserID))
	return nil
}

func (s *tokenService) issueTokens(ctx context.Context, user *domain.User) (*dto.TokenResponse, error) {
	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return nil, err
	}
	refreshToken, err := utils.GenerateJWT(user.UserID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate refresh token", slog.String("user_id", user.UserID))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.cfg.JWTExpiryDuration.Seconds()),
	}, nil
}
