package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pontualize/timesheet_app/internal/apperrors"
	"github.com/pontualize/timesheet_app/internal/core/domain"
	portsrepo "github.com/pontualize/timesheet_app/internal/core/ports/repositories"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func (r *PgxPaymentRepository) FindPaymentByUserAndMonth(ctx context.Context, userID string, year, month int) (*domain.Payment, error) {
	query := `
        SELECT payment_id, user_id, year, month, total_hours, total_value, hour_value, payment_date, current_time_bank
        FROM payments
        WHERE user_id = $1 AND year = $2 AND month = $3;
    `
	var payment domain.Payment
	err := r.Pool.QueryRow(ctx, query, userID, year, month).Scan(
		&payment.PaymentID,
		&payment.UserID,
		&payment.Year,
		&payment.Month,
		&payment.TotalHours,
		&payment.TotalValue,
		&payment.HourValue,
		&payment.PaymentDate,
		&payment.CurrentTimeBank,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment for user %s in %d-%02d: %w", userID, year, month, err)
	}
	return &payment, nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	query := `
        INSERT INTO payments (payment_id, user_id, year, month, total_hours, total_value, hour_value, payment_date, current_time_bank)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		payment.PaymentID,
		payment.UserID,
		payment.Year,
		payment.Month,
		payment.TotalHours,
		payment.TotalValue,
		payment.HourValue,
		payment.PaymentDate,
		payment.CurrentTimeBank,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("month already closed for user %s: %w", payment.UserID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}
