package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pontualize/timesheet_app/internal/apperrors"
	"github.com/pontualize/timesheet_app/internal/core/domain"
	portsrepo "github.com/pontualize/timesheet_app/internal/core/ports/repositories"
	portssvc "github.com/pontualize/timesheet_app/internal/core/ports/services"
	"github.com/pontualize/timesheet_app/internal/dto"
	"github.com/pontualize/timesheet_app/internal/utils"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo     portsrepo.UserRepositoryFacade
	groupRepo    portsrepo.GroupRepositoryFacade
	bankHourRepo portsrepo.BankHourRepository
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(
	userRepo portsrepo.UserRepositoryFacade,
	groupRepo portsrepo.GroupRepositoryFacade,
	bankHourRepo portsrepo.BankHourRepository,
) portssvc.UserSvcFacade {
	return &userService{
		userRepo:     userRepo,
		groupRepo:    groupRepo,
		bankHourRepo: bankHourRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new user after checking the e-mail is unused.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check e-mail uniqueness")
		return nil, fmt.Errorf("failed to check e-mail uniqueness: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user with same e-mail address: %w", apperrors.ErrDuplicate)
	}

	if req.HourValue.IsNegative() {
		return nil, fmt.Errorf("hourValue must be non-negative: %w", apperrors.ErrValidation)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  passwordHash,
		Team:          req.Team,
		HourValue:     req.HourValue,
		HasBankHours:  req.HasBankHours,
		ContractTotal: req.ContractTotal,
		GroupID:       req.GroupID,
		StartDate:     req.StartDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID))
	return &user, nil
}

// UpdateUser applies a partial profile update; omitted fields keep their
// stored values.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user for update", slog.String("user_id", userID))
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Team != nil {
		user.Team = *req.Team
	}
	if req.HourValue != nil {
		if req.HourValue.IsNegative() {
			return nil, fmt.Errorf("hourValue must be non-negative: %w", apperrors.ErrValidation)
		}
		user.HourValue = *req.HourValue
	}
	if req.HasBankHours != nil {
		user.HasBankHours = *req.HasBankHours
	}
	if req.ContractTotal != nil {
		user.ContractTotal = *req.ContractTotal
	}
	if req.GroupID != nil {
		user.GroupID = *req.GroupID
	}
	if req.StartDate != nil {
		user.StartDate = *req.StartDate
	}
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

// ChangeUserPassword replaces a user's password hash, gated by
// PUT_USER_PASSWORD.
func (s *userService) ChangeUserPassword(ctx context.Context, perms domain.PermissionSet, userID string, password string) error {
	if err := s.RequirePermission(ctx, perms, domain.PermPutPassword); err != nil {
		return err
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user for password change", slog.String("user_id", userID))
		}
		return err
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdateUserPassword(ctx, userID, passwordHash); err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.String("user_id", userID))
		return err
	}

	s.LogInfo(ctx, "User password changed", slog.String("user_id", userID))
	return nil
}

// GetUser retrieves a user by ID for internal collaborators.
func (s *userService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByID returns the outward user projection, gated by GET_USER.
func (s *userService) GetUserByID(ctx context.Context, perms domain.PermissionSet, userID string) (*dto.UserResponse, error) {
	if err := s.RequirePermission(ctx, perms, domain.PermGetUser); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.ToUserResponse(user, s.groupName(ctx, user.GroupID), s.bankBalance(ctx, user.UserID))
	return &resp, nil
}

// ListUsers returns all users with group name and bank-hours balance.
func (s *userService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, err
	}

	// Group names repeat heavily across a team; resolve each once.
	groupNames := make(map[string]string)
	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		name, ok := groupNames[user.GroupID]
		if !ok {
			name = s.groupName(ctx, user.GroupID)
			groupNames[user.GroupID] = name
		}
		responses = append(responses, dto.ToUserResponse(&user, name, s.bankBalance(ctx, user.UserID)))
	}
	return responses, nil
}

// VerifyCredentials returns the user matching email+password.
func (s *userService) VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to find user by e-mail")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) groupName(ctx context.Context, groupID string) string {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve group name", slog.String("group_id", groupID))
		}
		return ""
	}
	return group.Name
}

func (s *userService) bankBalance(ctx context.Context, userID string) decimal.Decimal {
	bankHour, err := s.bankHourRepo.FindBankHourByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to read bank hours", slog.String("user_id", userID))
		}
		return decimal.Zero
	}
	return bankHour.Hours
}
