package repositories

import (
	"context"

	"github.com/pontualize/timesheet_app/internal/core/domain"
)

// GroupReader defines read operations over groups and their granted resources.
type GroupReader interface {
	// FindGroupByID retrieves a group by its ID.
	FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error)

	// FindGroups retrieves all groups.
	FindGroups(ctx context.Context) ([]domain.Group, error)

	// FindResourceNamesByGroupID resolves the resource names granted to a
	// group through its resource-group links.
	FindResourceNamesByGroupID(ctx context.Context, groupID string) ([]string, error)
}

// GroupRepositoryFacade combines all group-related repository interfaces
type GroupRepositoryFacade interface {
	GroupReader
}
