package service

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"entragraph/internal/directory/models"
	"entragraph/internal/graph"
	dErrors "entragraph/pkg/domain-errors"
)

const defaultGroupLimit = 100

// GroupService owns group listing, lookup, search, and member expansion.
type GroupService struct {
	groups GroupAPI
	logger *slog.Logger
	tracer trace.Tracer
}

func NewGroupService(groups GroupAPI, opts ...Option) *GroupService {
	cfg := newServiceConfig(opts)
	return &GroupService{
		groups: groups,
		logger: cfg.logger,
		tracer: cfg.tracer,
	}
}

// ListGroups drains the tenant's groups up to limit records.
func (s *GroupService) ListGroups(ctx context.Context, limit int) ([]models.Group, error) {
	if limit <= 0 {
		limit = defaultGroupLimit
	}
	groups, err := graph.Drain(ctx, limit,
		func(ctx context.Context) (graph.Page[models.Group], error) {
			return s.groups.GroupsPage(ctx, limit, "")
		},
		func(ctx context.Context, cursor string) (graph.Page[models.Group], error) {
			return s.groups.GroupsPage(ctx, limit, cursor)
		},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "listing groups failed", "error", err)
		return nil, err
	}
	return groups, nil
}

func (s *GroupService) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	if err := requireID(groupID, "group_id"); err != nil {
		return nil, err
	}
	group, err := s.groups.Group(ctx, groupID)
	if err != nil {
		s.logger.ErrorContext(ctx, "get group failed", "group_id", groupID, "error", err)
		return nil, err
	}
	return group, nil
}

// SearchGroups matches groups by display name.
func (s *GroupService) SearchGroups(ctx context.Context, name string, limit int) ([]models.Group, error) {
	if strings.TrimSpace(name) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "name is required")
	}
	if limit <= 0 {
		limit = defaultGroupLimit
	}
	groups, err := graph.Drain(ctx, limit,
		func(ctx context.Context) (graph.Page[models.Group], error) {
			return s.groups.SearchGroupsPage(ctx, name, limit, "")
		},
		func(ctx context.Context, cursor string) (graph.Page[models.Group], error) {
			return s.groups.SearchGroupsPage(ctx, name, limit, cursor)
		},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "group search failed", "name", name, "error", err)
		return nil, err
	}
	return groups, nil
}

// GroupMembers drains a group's direct members up to limit records. Members
// are heterogeneous directory objects; callers switch on Kind.
func (s *GroupService) GroupMembers(ctx context.Context, groupID string, limit int) ([]models.DirectoryObject, error) {
	if err := requireID(groupID, "group_id"); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultGroupLimit
	}
	members, err := graph.Drain(ctx, limit,
		func(ctx context.Context) (graph.Page[models.DirectoryObject], error) {
			return s.groups.GroupMembersPage(ctx, groupID, limit, "")
		},
		func(ctx context.Context, cursor string) (graph.Page[models.DirectoryObject], error) {
			return s.groups.GroupMembersPage(ctx, groupID, limit, cursor)
		},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "listing group members failed", "group_id", groupID, "error", err)
		return nil, err
	}
	return members, nil
}
