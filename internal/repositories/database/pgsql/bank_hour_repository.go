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

type PgxBankHourRepository struct {
	BaseRepository
}

func newPgxBankHourRepository(db *pgxpool.Pool) portsrepo.BankHourRepository {
	return &PgxBankHourRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.BankHourRepository = (*PgxBankHourRepository)(nil)

func (r *PgxBankHourRepository) FindBankHourByUserID(ctx context.Context, userID string) (*domain.BankHour, error) {
	query := `
        SELECT bank_hour_id, user_id, date, hours, description
        FROM bank_hours
        WHERE user_id = $1;
    `
	var bankHour domain.BankHour
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&bankHour.BankHourID,
		&bankHour.UserID,
		&bankHour.Date,
		&bankHour.Hours,
		&bankHour.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank hours for user %s: %w", userID, err)
	}
	return &bankHour, nil
}

func (r *PgxBankHourRepository) SaveBankHour(ctx context.Context, bankHour domain.BankHour) error {
	query := `
        INSERT INTO bank_hours (bank_hour_id, user_id, date, hours, description)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.Pool.Exec(ctx, query,
		bankHour.BankHourID,
		bankHour.UserID,
		bankHour.Date,
		bankHour.Hours,
		bankHour.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("bank hours ledger already exists for user %s: %w", bankHour.UserID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save bank hours: %w", err)
	}
	return nil
}

func (r *PgxBankHourRepository) UpdateBankHour(ctx context.Context, bankHour domain.BankHour) error {
	query := `
        UPDATE bank_hours
        SET date = $1, hours = $2, description = $3
        WHERE user_id = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		bankHour.Date,
		bankHour.Hours,
		bankHour.Description,
		bankHour.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bank hours for user %s: %w", bankHour.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
