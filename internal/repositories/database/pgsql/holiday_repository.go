package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pontualize/timesheet_app/internal/apperrors"
	"github.com/pontualize/timesheet_app/internal/core/domain"
	portsrepo "github.com/pontualize/timesheet_app/internal/core/ports/repositories"
)

type PgxHolidayRepository struct {
	BaseRepository
}

func newPgxHolidayRepository(db *pgxpool.Pool) portsrepo.HolidayRepositoryFacade {
	return &PgxHolidayRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.HolidayRepositoryFacade = (*PgxHolidayRepository)(nil)

func (r *PgxHolidayRepository) FindHolidays(ctx context.Context) ([]domain.Holiday, error) {
	query := `SELECT holiday_id, year, date FROM holidays ORDER BY date;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	holidays := []domain.Holiday{}
	for rows.Next() {
		var holiday domain.Holiday
		if err := rows.Scan(&holiday.HolidayID, &holiday.Year, &holiday.Date); err != nil {
			return nil, fmt.Errorf("failed to scan holiday row: %w", err)
		}
		holidays = append(holidays, holiday)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating holiday rows: %w", rows.Err())
	}
	return holidays, nil
}

func (r *PgxHolidayRepository) FindHolidaysByYear(ctx context.Context, year int) ([]domain.Holiday, error) {
	query := `SELECT holiday_id, year, date FROM holidays WHERE year = $1 ORDER BY date;`
	rows, err := r.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays for year %d: %w", year, err)
	}
	defer rows.Close()

	holidays := []domain.Holiday{}
	for rows.Next() {
		var holiday domain.Holiday
		if err := rows.Scan(&holiday.HolidayID, &holiday.Year, &holiday.Date); err != nil {
			return nil, fmt.Errorf("failed to scan holiday row: %w", err)
		}
		holidays = append(holidays, holiday)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating holiday rows: %w", rows.Err())
	}
	return holidays, nil
}

// SaveHolidays runs inside one transaction so a date clash on any record
// rolls back the whole batch.
func (r *PgxHolidayRepository) SaveHolidays(ctx context.Context, holidays []domain.Holiday) error {
	if len(holidays) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `INSERT INTO holidays (holiday_id, year, date) VALUES ($1, $2, $3);`
	for _, holiday := range holidays {
		if _, err := tx.Exec(ctx, query, holiday.HolidayID, holiday.Year, holiday.Date); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("holiday already declared for %s: %w",
					holiday.Date.Format("2006-01-02"), apperrors.ErrDuplicate)
			}
			return fmt.Errorf("failed to save holiday: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxHolidayRepository) DeleteHolidaysByYear(ctx context.Context, year int) error {
	query := `DELETE FROM holidays WHERE year = $1;`
	if _, err := r.Pool.Exec(ctx, query, year); err != nil {
		return fmt.Errorf("failed to delete holidays for year %d: %w", year, err)
	}
	return nil
}
