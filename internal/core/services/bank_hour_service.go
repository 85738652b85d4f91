package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pontualize/timesheet_app/internal/apperrors"
	"github.com/pontualize/timesheet_app/internal/core/domain"
	portsrepo "github.com/pontualize/timesheet_app/internal/core/ports/repositories"
	portssvc "github.com/pontualize/timesheet_app/internal/core/ports/services"
	"github.com/pontualize/timesheet_app/internal/dto"
)

// bankHourService implements the BankHourSvcFacade interface
type bankHourService struct {
	BaseService
	bankHourRepo portsrepo.BankHourRepository
	userRepo     portsrepo.UserReader
}

// NewBankHourService creates a new bank hours service with the provided dependencies
func NewBankHourService(bankHourRepo portsrepo.BankHourRepository, userRepo portsrepo.UserReader) portssvc.BankHourSvcFacade {
	return &bankHourService{
		bankHourRepo: bankHourRepo,
		userRepo:     userRepo,
	}
}

var _ portssvc.BankHourSvcFacade = (*bankHourService)(nil)

// Adjust accrues the signed delta into the user's running balance. The
// date and description of the row always reflect the latest adjustment;
// only the balance carries history, as a sum.
func (s *bankHourService) Adjust(ctx context.Context, perms domain.PermissionSet, userID string, req dto.BankHourAdjustmentRequest) error {
	if err := s.RequirePermission(ctx, perms, domain.PermPatchUser); err != nil {
		return err
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load user for bank adjustment", slog.String("user_id", userID))
		}
		return err
	}

	existing, err := s.bankHourRepo.FindBankHourByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to read bank hours", slog.String("user_id", userID))
			return err
		}
		bankHour := domain.BankHour{
			BankHourID:  uuid.NewString(),
			UserID:      userID,
			Date:        req.Date,
			Hours:       req.Balance,
			Description: req.Description,
		}
		if err := s.bankHourRepo.SaveBankHour(ctx, bankHour); err != nil {
			s.LogError(ctx, err, "Failed to create bank hours row", slog.String("user_id", userID))
			return err
		}
		s.LogInfo(ctx, "Bank hours ledger opened",
			slog.String("user_id", userID),
			slog.String("balance", req.Balance.String()))
		return nil
	}

	existing.Date = req.Date
	existing.Description = req.Description
	existing.Hours = existing.Hours.Add(req.Balance)

	if err := s.bankHourRepo.UpdateBankHour(ctx, *existing); err != nil {
		s.LogError(ctx, err, "Failed to update bank hours", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "Bank hours adjusted",
		slog.String("user_id", userID),
		slog.String("delta", req.Balance.String()),
		slog.String("balance", existing.Hours.String()))
	return nil
}
