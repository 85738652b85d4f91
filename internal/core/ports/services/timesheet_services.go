package services

import (
	"context"

	"github.com/pontualize/timesheet_app/internal/core/domain"
	"github.com/pontualize/timesheet_app/internal/dto"
)

// TimesheetSvcFacade reconciles submitted work periods against stored
// entries and produces monthly views.
type TimesheetSvcFacade interface {
	// SubmitDay validates, holiday-adjusts and upserts one day's periods
	// for the caller. Gated by POST_TIMESHEET; rejected wholesale with
	// apperrors.ErrMonthClosed when the month already has a payment.
	SubmitDay(ctx context.Context, perms domain.PermissionSet, userID string, year, month, day int, periods []dto.PeriodInput) error

	// GetMonthlyReport returns the caller's own monthly view. Gated by
	// GET_TIMESHEET.
	GetMonthlyReport(ctx context.Context, perms domain.PermissionSet, userID string, year, month int) (*dto.TimesheetReportResponse, error)

	// GetUserReport returns any user's monthly view for administrators.
	// Gated by GET_USER.
	GetUserReport(ctx context.Context, perms domain.PermissionSet, userID string, year, month int) (*dto.TimesheetReportResponse, error)
}

// PaymentSvcFacade closes months into immutable payment snapshots.
type PaymentSvcFacade interface {
	// CloseMonth aggregates the month's releases and writes the payment
	// snapshot. Gated by PATCH_USER; a second closure fails with
	// apperrors.ErrPaymentExists and leaves the first snapshot untouched.
	CloseMonth(ctx context.Context, perms domain.PermissionSet, userID string, year, month int) (*dto.ClosureReceiptResponse, error)
}

// BankHourSvcFacade accrues the per-user compensatory-hours balance.
type BankHourSvcFacade interface {
	// Adjust adds the signed delta to the user's running balance, creating
	// the ledger row on first use. Gated by PATCH_USER.
	Adjust(ctx context.Context, perms domain.PermissionSet, userID string, req dto.BankHourAdjustmentRequest) error
}
