package services

import (
	"context"
	"log/slog"

	"github.com/pontualize/timesheet_app/internal/core/domain"
	portsrepo "github.com/pontualize/timesheet_app/internal/core/ports/repositories"
	portssvc "github.com/pontualize/timesheet_app/internal/core/ports/services"
)

// groupService implements the GroupSvcFacade interface
type groupService struct {
	BaseService
	groupRepo portsrepo.GroupRepositoryFacade
	userRepo  portsrepo.UserReader
}

// NewGroupService creates a new group service with the provided dependencies
func NewGroupService(groupRepo portsrepo.GroupRepositoryFacade, userRepo portsrepo.UserReader) portssvc.GroupSvcFacade {
	return &groupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

var _ portssvc.GroupSvcFacade = (*groupService)(nil)

// ResolvePermissions derives a user's capability set from their group's
// resource links. Permission checks always run against this derived set,
// never against the group name.
func (s *groupService) ResolvePermissions(ctx context.Context, userID string) (domain.PermissionSet, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	names, err := s.groupRepo.FindResourceNamesByGroupID(ctx, user.GroupID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve group resources", slog.String("group_id", user.GroupID))
		return nil, err
	}
	return domain.NewPermissionSet(names), nil
}

// ListGroups returns all groups, gated by GET_GROUP.
func (s *groupService) ListGroups(ctx context.Context, perms domain.PermissionSet) ([]domain.Group, error) {
	if err := s.RequirePermission(ctx, perms, domain.PermGetGroup); err != nil {
		return nil, err
	}
	return s.groupRepo.FindGroups(ctx)
}
