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

type PgxGroupRepository struct {
	BaseRepository
}

func newPgxGroupRepository(db *pgxpool.Pool) portsrepo.GroupRepositoryFacade {
	return &PgxGroupRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.GroupRepositoryFacade = (*PgxGroupRepository)(nil)

func (r *PgxGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	query := `SELECT group_id, name FROM groups WHERE group_id = $1;`
	var group domain.Group
	err := r.Pool.QueryRow(ctx, query, groupID).Scan(&group.GroupID, &group.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find group by ID %s: %w", groupID, err)
	}
	return &group, nil
}

func (r *PgxGroupRepository) FindGroups(ctx context.Context) ([]domain.Group, error) {
	query := `SELECT group_id, name FROM groups ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	groups := []domain.Group{}
	for rows.Next() {
		var group domain.Group
		if err := rows.Scan(&group.GroupID, &group.Name); err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		groups = append(groups, group)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating group rows: %w", rows.Err())
	}
	return groups, nil
}

func (r *PgxGroupRepository) FindResourceNamesByGroupID(ctx context.Context, groupID string) ([]string, error) {
	query := `
        SELECT res.name
        FROM resources res
        JOIN resource_groups rg ON rg.resource_id = res.resource_id
        WHERE rg.group_id = $1;
    `
	rows, err := r.Pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query resources for group %s: %w", groupID, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan resource name: %w", err)
		}
		names = append(names, name)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating resource rows: %w", rows.Err())
	}
	return names, nil
}
