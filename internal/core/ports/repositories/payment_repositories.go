package repositories

import (
	"context"

	"github.com/pontualize/timesheet_app/internal/core/domain"
)

// PaymentReader defines read operations for monthly payment snapshots.
type PaymentReader interface {
	// FindPaymentByUserAndMonth retrieves the payment for (user, year, month)
	// or apperrors.ErrNotFound when the month is still open.
	FindPaymentByUserAndMonth(ctx context.Context, userID string, year, month int) (*domain.Payment, error)
}

// PaymentWriter defines write operations for monthly payment snapshots.
type PaymentWriter interface {
	// SavePayment persists a closure snapshot. A second snapshot for the
	// same (user, year, month) fails with apperrors.ErrDuplicate.
	SavePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// BankHourRepository manages the single-row-per-user bank hours ledger.
type BankHourRepository interface {
	// FindBankHourByUserID retrieves a user's ledger row or
	// apperrors.ErrNotFound when none exists yet.
	FindBankHourByUserID(ctx context.Context, userID string) (*domain.BankHour, error)

	// SaveBankHour persists a new ledger row for a user.
	SaveBankHour(ctx context.Context, bankHour domain.BankHour) error

	// UpdateBankHour overwrites a user's ledger row.
	UpdateBankHour(ctx context.Context, bankHour domain.BankHour) error
}
