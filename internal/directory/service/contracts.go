package service

//go:generate mockgen -source=contracts.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"entragraph/internal/directory/models"
	"entragraph/internal/graph"
)

// The services depend on page-level fetch interfaces rather than a whole
// Graph client so the drain loops stay in this layer and tests can substitute
// fakes. Cursor parameters are opaque next-link tokens; empty means the
// initial page.

type UserAPI interface {
	SearchUsersPage(ctx context.Context, query string, top int, cursor string) (graph.Page[models.User], error)
	User(ctx context.Context, userID string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.UserWrite) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, patch *models.UserWrite) error
	DeleteUser(ctx context.Context, userID string) error
	SetManagerRef(ctx context.Context, userID, managerID string) error
	RemoveManagerRef(ctx context.Context, userID string) error
	TransitiveMemberOfPage(ctx context.Context, userID, cursor string) (graph.Page[models.DirectoryObject], error)
	MemberOfPage(ctx context.Context, userID, cursor string) (graph.Page[models.DirectoryObject], error)
}

type GroupAPI interface {
	GroupsPage(ctx context.Context, top int, cursor string) (graph.Page[models.Group], error)
	SearchGroupsPage(ctx context.Context, name string, top int, cursor string) (graph.Page[models.Group], error)
	Group(ctx context.Context, groupID string) (*models.Group, error)
	GroupMembersPage(ctx context.Context, groupID string, top int, cursor string) (graph.Page[models.DirectoryObject], error)
}

type RoleAPI interface {
	DirectoryRolesPage(ctx context.Context, cursor string) (graph.Page[models.DirectoryRole], error)
	DirectoryRole(ctx context.Context, roleID string) (*models.DirectoryRole, error)
	RoleMembersPage(ctx context.Context, roleID, cursor string) (graph.Page[models.DirectoryObject], error)
}

type SecurityAPI interface {
	AuthenticationMethodsPage(ctx context.Context, userID, cursor string) (graph.Page[models.AuthenticationMethod], error)
	SignInsPage(ctx context.Context, filter string, top int, cursor string) (graph.Page[models.SignInEvent], error)
}
