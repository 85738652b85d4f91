package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pontualize/timesheet_app/internal/apperrors"
	"github.com/pontualize/timesheet_app/internal/core/domain"
	portsrepo "github.com/pontualize/timesheet_app/internal/core/ports/repositories"
)

type PgxReleaseRepository struct {
	BaseRepository
}

func newPgxReleaseRepository(db *pgxpool.Pool) portsrepo.ReleaseRepositoryFacade {
	return &PgxReleaseRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ReleaseRepositoryFacade = (*PgxReleaseRepository)(nil)

const releaseColumns = `release_id, user_id, date, start_hour, end_hour, description, total, holiday, created_at, last_updated_at`

func scanReleases(rows pgx.Rows) ([]domain.Release, error) {
	releases := []domain.Release{}
	for rows.Next() {
		var release domain.Release
		err := rows.Scan(
			&release.ReleaseID,
			&release.UserID,
			&release.Date,
			&release.StartHour,
			&release.EndHour,
			&release.Description,
			&release.Total,
			&release.Holiday,
			&release.CreatedAt,
			&release.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan release row: %w", err)
		}
		releases = append(releases, release)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating release rows: %w", rows.Err())
	}
	return releases, nil
}

func (r *PgxReleaseRepository) FindReleasesByUserAndDate(ctx context.Context, userID string, date time.Time) ([]domain.Release, error) {
	query := `
        SELECT ` + releaseColumns + `
        FROM releases
        WHERE user_id = $1 AND date = $2
        ORDER BY start_hour;
    `
	rows, err := r.Pool.Query(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query releases for user %s: %w", userID, err)
	}
	defer rows.Close()
	return scanReleases(rows)
}

func (r *PgxReleaseRepository) FindReleasesByUserAndMonth(ctx context.Context, userID string, year, month int) ([]domain.Release, error) {
	query := `
        SELECT ` + releaseColumns + `
        FROM releases
        WHERE user_id = $1
          AND EXTRACT(YEAR FROM date) = $2
          AND EXTRACT(MONTH FROM date) = $3
        ORDER BY date, start_hour;
    `
	rows, err := r.Pool.Query(ctx, query, userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query releases for user %s in %d-%02d: %w", userID, year, month, err)
	}
	defer rows.Close()
	return scanReleases(rows)
}

func (r *PgxReleaseRepository) SaveRelease(ctx context.Context, release domain.Release) error {
	query := `
        INSERT INTO releases (` + releaseColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		release.ReleaseID,
		release.UserID,
		release.Date,
		release.StartHour,
		release.EndHour,
		release.Description,
		release.Total,
		release.Holiday,
		release.CreatedAt,
		release.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save release: %w", err)
	}
	return nil
}

func (r *PgxReleaseRepository) UpdateRelease(ctx context.Context, release domain.Release) error {
	query := `
        UPDATE releases
        SET start_hour = $1, end_hour = $2, description = $3, total = $4,
            holiday = $5, last_updated_at = $6
        WHERE release_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		release.StartHour,
		release.EndHour,
		release.Description,
		release.Total,
		release.Holiday,
		release.LastUpdatedAt,
		release.ReleaseID,
	)
	if err != nil {
		return fmt.Errorf("failed to update release %s: %w", release.ReleaseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
