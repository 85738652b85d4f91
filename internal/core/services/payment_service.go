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
)

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	paymentRepo  portsrepo.PaymentRepositoryFacade
	releaseRepo  portsrepo.ReleaseReader
	userRepo     portsrepo.UserReader
	bankHourRepo portsrepo.BankHourRepository
}

// NewPaymentService creates a new payment service with the provided dependencies
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	releaseRepo portsrepo.ReleaseReader,
	userRepo portsrepo.UserReader,
	bankHourRepo portsrepo.BankHourRepository,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:  paymentRepo,
		releaseRepo:  releaseRepo,
		userRepo:     userRepo,
		bankHourRepo: bankHourRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// CloseMonth aggregates a user's stored periods for (year, month) into an
// immutable payment snapshot. The existence check is backed by a unique
// constraint on (user, year, month), so a racing second closure surfaces
// as the same conflict instead of a lost update.
func (s *paymentService) CloseMonth(ctx context.Context, perms domain.PermissionSet, userID string, year, month int) (*dto.ClosureReceiptResponse, error) {
	if err := s.RequirePermission(ctx, perms, domain.PermPatchUser); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month %d out of range: %w", month, apperrors.ErrValidation)
	}

	_, err := s.paymentRepo.FindPaymentByUserAndMonth(ctx, userID, year, month)
	if err == nil {
		return nil, apperrors.ErrPaymentExists
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing payment", slog.String("user_id", userID))
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load user for closure", slog.String("user_id", userID))
		}
		return nil, err
	}

	releases, err := s.releaseRepo.FindReleasesByUserAndMonth(ctx, userID, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to load month periods", slog.String("user_id", userID))
		return nil, err
	}

	totalHours := decimal.Zero
	for _, r := range releases {
		totalHours = totalHours.Add(r.Total)
	}
	totalValue := totalHours.Mul(user.HourValue)

	timeBank := decimal.Zero
	bankHour, err := s.bankHourRepo.FindBankHourByUserID(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to read bank hours for closure", slog.String("user_id", userID))
		return nil, err
	}
	if bankHour != nil {
		timeBank = bankHour.Hours
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:       uuid.NewString(),
		UserID:          user.UserID,
		Year:            year,
		Month:           month,
		TotalHours:      totalHours,
		TotalValue:      totalValue,
		HourValue:       user.HourValue,
		PaymentDate:     now,
		CurrentTimeBank: timeBank,
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race against a concurrent closure; the stored
			// snapshot wins.
			return nil, apperrors.ErrPaymentExists
		}
		s.LogError(ctx, err, "Failed to save payment", slog.String("payment_id", payment.PaymentID))
		return nil, err
	}

	s.LogInfo(ctx, "Month closed",
		slog.String("user_id", userID),
		slog.Int("year", year),
		slog.Int("month", month),
		slog.String("total_hours", totalHours.String()),
		slog.String("total_value", totalValue.String()))

	return &dto.ClosureReceiptResponse{
		Name:      user.Name,
		Team:      user.Team,
		BankHours: user.HasBankHours,
		Calendar:  dto.ClosureCalendar{Year: year, Month: month},
		Pay: dto.ClosurePay{
			Date:  now,
			Hour:  user.HourValue,
			Total: totalValue,
		},
	}, nil
}
