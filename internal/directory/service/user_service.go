package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"entragraph/internal/directory/models"
	"entragraph/internal/graph"
	dErrors "entragraph/pkg/domain-errors"
	"entragraph/pkg/validation"
)

const defaultSearchLimit = 10

// UserService owns user lifecycle operations and the user-centric rollups:
// privileged users across directory roles, and a user's transitive groups
// and direct roles.
type UserService struct {
	users  UserAPI
	groups GroupAPI
	roles  RoleAPI
	logger *slog.Logger
	tracer trace.Tracer
}

func NewUserService(users UserAPI, groups GroupAPI, roles RoleAPI, opts ...Option) *UserService {
	cfg := newServiceConfig(opts)
	return &UserService{
		users:  users,
		groups: groups,
		roles:  roles,
		logger: cfg.logger,
		tracer: cfg.tracer,
	}
}

// SearchUsers matches users by name or email, draining result pages up to
// limit items.
func (s *UserService) SearchUsers(ctx context.Context, query string, limit int) ([]models.User, error) {
	if strings.TrimSpace(query) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "query is required")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	users, err := graph.Drain(ctx, limit,
		func(ctx context.Context) (graph.Page[models.User], error) {
			return s.users.SearchUsersPage(ctx, query, limit, "")
		},
		func(ctx context.Context, cursor string) (graph.Page[models.User], error) {
			return s.users.SearchUsersPage(ctx, query, limit, cursor)
		},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "user search failed", "query", query, "error", err)
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	if err := requireID(userID, "user_id"); err != nil {
		return nil, err
	}
	user, err := s.users.User(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "get user failed", "user_id", userID, "error", err)
		return nil, err
	}
	return user, nil
}

// CreateUser validates the payload, short-circuits when a user with the same
// principal name already exists, and otherwise creates the user.
//
// The existence probe treats any lookup failure as "does not exist", matching
// the upstream behavior this service replaces. That conflates transient
// failures with absence; Graph rejects duplicate principal names on the
// create itself, so the worst case is a conflict error instead of the
// already_exists short-circuit.
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*models.CreatedUser, error) {
	if err := validation.Validate(input); err != nil {
		return nil, err
	}

	if existing, err := s.users.User(ctx, input.UserPrincipalName); err == nil && existing != nil {
		s.logger.InfoContext(ctx, "user already exists", "user_principal_name", input.UserPrincipalName)
		return &models.CreatedUser{
			ID:                existing.ID,
			DisplayName:       existing.DisplayName,
			UserPrincipalName: existing.UserPrincipalName,
			AccountEnabled:    existing.AccountEnabled,
			Status:            models.UserStatusAlreadyExists,
		}, nil
	}

	accountEnabled := true
	if input.AccountEnabled != nil {
		accountEnabled = *input.AccountEnabled
	}
	forceChange := true
	if input.ForceChangePasswordNextSignIn != nil {
		forceChange = *input.ForceChangePasswordNextSignIn
	}

	write := &models.UserWrite{
		DisplayName:       &input.DisplayName,
		UserPrincipalName: &input.UserPrincipalName,
		MailNickname:      &input.MailNickname,
		AccountEnabled:    &accountEnabled,
		PasswordProfile: &models.PasswordProfile{
			Password:                      input.Password,
			ForceChangePasswordNextSignIn: forceChange,
		},
		GivenName:      input.GivenName,
		Surname:        input.Surname,
		JobTitle:       input.JobTitle,
		Department:     input.Department,
		UsageLocation:  input.UsageLocation,
		OfficeLocation: input.OfficeLocation,
		BusinessPhones: input.BusinessPhones,
		MobilePhone:    input.MobilePhone,
	}

	created, err := s.users.CreateUser(ctx, write)
	if err != nil {
		s.logger.ErrorContext(ctx, "create user failed", "user_principal_name", input.UserPrincipalName, "error", err)
		return nil, err
	}

	return &models.CreatedUser{
		ID:                created.ID,
		DisplayName:       created.DisplayName,
		UserPrincipalName: created.UserPrincipalName,
		Mail:              created.Mail,
		GivenName:         created.GivenName,
		Surname:           created.Surname,
		JobTitle:          created.JobTitle,
		Department:        created.Department,
		OfficeLocation:    created.OfficeLocation,
		AccountEnabled:    created.AccountEnabled,
		CreatedDateTime:   created.CreatedDateTime,
		Status:            models.UserStatusCreated,
	}, nil
}

// UpdateUser applies a sparse property patch, handles the manager reference
// separately, and returns the re-fetched user. Updates are last-writer-wins.
func (s *UserService) UpdateUser(ctx context.Context, userID string, input *UpdateUserInput) (*models.User, error) {
	if err := requireID(userID, "user_id"); err != nil {
		return nil, err
	}

	patch := &models.UserWrite{
		DisplayName:       input.DisplayName,
		GivenName:         input.GivenName,
		Surname:           input.Surname,
		JobTitle:          input.JobTitle,
		Department:        input.Department,
		OfficeLocation:    input.OfficeLocation,
		BusinessPhones:    input.BusinessPhones,
		MobilePhone:       input.MobilePhone,
		Mail:              input.Mail,
		UserPrincipalName: input.UserPrincipalName,
		AccountEnabled:    input.AccountEnabled,
		UsageLocation:     input.UsageLocation,
		CompanyName:       input.CompanyName,
		PreferredLanguage: input.PreferredLanguage,
	}
	if hasUserPatch(input) {
		if err := s.users.UpdateUser(ctx, userID, patch); err != nil {
			s.logger.ErrorContext(ctx, "update user failed", "user_id", userID, "error", err)
			return nil, err
		}
	}

	if input.Manager != nil {
		if *input.Manager != "" {
			if err := s.users.SetManagerRef(ctx, userID, *input.Manager); err != nil {
				s.logger.ErrorContext(ctx, "set manager failed", "user_id", userID, "error", err)
				return nil, err
			}
		} else {
			if err := s.users.RemoveManagerRef(ctx, userID); err != nil {
				s.logger.ErrorContext(ctx, "remove manager failed", "user_id", userID, "error", err)
				return nil, err
			}
		}
	}

	return s.GetUser(ctx, userID)
}

// hasUserPatch reports whether the input carries at least one user property
// change. The manager reference is handled out of band and does not count.
func hasUserPatch(input *UpdateUserInput) bool {
	return input.DisplayName != nil ||
		input.GivenName != nil ||
		input.Surname != nil ||
		input.JobTitle != nil ||
		input.Department != nil ||
		input.OfficeLocation != nil ||
		input.BusinessPhones != nil ||
		input.MobilePhone != nil ||
		input.Mail != nil ||
		input.UserPrincipalName != nil ||
		input.AccountEnabled != nil ||
		input.UsageLocation != nil ||
		input.CompanyName != nil ||
		input.PreferredLanguage != nil
}

func (s *UserService) EnableUser(ctx context.Context, userID string) (*models.User, error) {
	enabled := true
	return s.UpdateUser(ctx, userID, &UpdateUserInput{AccountEnabled: &enabled})
}

func (s *UserService) DisableUser(ctx context.Context, userID string) (*models.User, error) {
	enabled := false
	return s.UpdateUser(ctx, userID, &UpdateUserInput{AccountEnabled: &enabled})
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) (*models.OperationResult, error) {
	if err := requireID(userID, "user_id"); err != nil {
		return nil, err
	}
	if err := s.users.DeleteUser(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "delete user failed", "user_id", userID, "error", err)
		return nil, err
	}
	return &models.OperationResult{
		Status:  "success",
		Message: fmt.Sprintf("User %s was deleted successfully", userID),
	}, nil
}

func (s *UserService) SetManager(ctx context.Context, userID, managerID string) (*models.OperationResult, error) {
	if err := requireID(userID, "user_id"); err != nil {
		return nil, err
	}
	if err := requireID(managerID, "manager_id"); err != nil {
		return nil, err
	}
	if err := s.users.SetManagerRef(ctx, userID, managerID); err != nil {
		s.logger.ErrorContext(ctx, "set manager failed", "user_id", userID, "manager_id", managerID, "error", err)
		return nil, err
	}
	return &models.OperationResult{
		Status:  "success",
		Message: fmt.Sprintf("Manager %s set for user %s", managerID, userID),
	}, nil
}

func (s *UserService) RemoveManager(ctx context.Context, userID string) (*models.OperationResult, error) {
	if err := requireID(userID, "user_id"); err != nil {
		return nil, err
	}
	if err := s.users.RemoveManagerRef(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "remove manager failed", "user_id", userID, "error", err)
		return nil, err
	}
	return &models.OperationResult{
		Status:  "success",
		Message: fmt.Sprintf("Manager removed for user %s", userID),
	}, nil
}

// PrivilegedUsers rolls up every user reached through any activated directory
// role. A user holding several roles yields exactly one record whose role set
// is the union of the role names, materialized in sorted order. Output order
// follows first encounter while draining roles and their members.
func (s *UserService) PrivilegedUsers(ctx context.Context) ([]models.PrivilegedUser, error) {
	ctx, span := s.tracer.Start(ctx, "directory.privileged_users")
	var err error
	defer func() { endSpan(span, err) }()

	roles, err := graph.Drain(ctx, 0,
		func(ctx context.Context) (graph.Page[models.DirectoryRole], error) {
			return s.roles.DirectoryRolesPage(ctx, "")
		},
		s.roles.DirectoryRolesPage,
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "listing directory roles failed", "error", err)
		return nil, err
	}

	byID := make(map[string]*privilegedEntry)
	var order []string

	for _, role := range roles {
		if role.ID == "" {
			continue
		}
		roleID := role.ID
		members, merr := graph.Drain(ctx, 0,
			func(ctx context.Context) (graph.Page[models.DirectoryObject], error) {
				return s.roles.RoleMembersPage(ctx, roleID, "")
			},
			func(ctx context.Context, cursor string) (graph.Page[models.DirectoryObject], error) {
				return s.roles.RoleMembersPage(ctx, roleID, cursor)
			},
		)
		if merr != nil {
			s.logger.ErrorContext(ctx, "listing role members failed", "role_id", roleID, "error", merr)
			err = merr
			return nil, err
		}

		for _, member := range members {
			if member.Kind() != models.KindUser || member.ID == "" {
				continue
			}
			entry, ok := byID[member.ID]
			if !ok {
				entry = &privilegedEntry{
					user: models.PrivilegedUser{
						ID:                member.ID,
						DisplayName:       member.DisplayName,
						Mail:              member.Mail,
						UserPrincipalName: member.UserPrincipalName,
						GivenName:         member.GivenName,
						Surname:           member.Surname,
						JobTitle:          member.JobTitle,
						OfficeLocation:    member.OfficeLocation,
						BusinessPhones:    member.BusinessPhones,
						MobilePhone:       member.MobilePhone,
					},
					roleSet: make(map[string]struct{}),
				}
				byID[member.ID] = entry
				order = append(order, member.ID)
			}
			if role.DisplayName != nil && *role.DisplayName != "" {
				entry.roleSet[*role.DisplayName] = struct{}{}
			}
		}
	}

	span.SetAttributes(attribute.Int("privileged_user_count", len(order)))

	result := make([]models.PrivilegedUser, 0, len(order))
	for _, id := range order {
		entry := byID[id]
		roleNames := make([]string, 0, len(entry.roleSet))
		for name := range entry.roleSet {
			roleNames = append(roleNames, name)
		}
		sort.Strings(roleNames)
		entry.user.Roles = roleNames
		result = append(result, entry.user)
	}
	return result, nil
}

type privilegedEntry struct {
	user    models.PrivilegedUser
	roleSet map[string]struct{}
}

// UserGroups resolves a user's transitive group memberships to full group
// records. A detail-fetch failure fails the whole call; this path carries no
// per-item tolerance.
func (s *UserService) UserGroups(ctx context.Context, userID string) ([]models.Group, error) {
	if err := requireID(userID, "user_id"); err != nil {
		return nil, err
	}
	ctx, span := s.tracer.Start(ctx, "directory.user_groups",
		trace.WithAttributes(attribute.String("user_id", userID)))
	var err error
	defer func() { endSpan(span, err) }()

	memberships, err := graph.Drain(ctx, 0,
		func(ctx context.Context) (graph.Page[models.DirectoryObject], error) {
			return s.users.TransitiveMemberOfPage(ctx, userID, "")
		},
		func(ctx context.Context, cursor string) (graph.Page[models.DirectoryObject], error) {
			return s.users.TransitiveMemberOfPage(ctx, userID, cursor)
		},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "listing user memberships failed", "user_id", userID, "error", err)
		return nil, err
	}

	groups := make([]models.Group, 0, len(memberships))
	for _, membership := range memberships {
		if membership.Kind() != models.KindGroup || membership.ID == "" {
			continue
		}
		group, gerr := s.groups.Group(ctx, membership.ID)
		if gerr != nil {
			s.logger.ErrorContext(ctx, "fetching group details failed", "user_id", userID, "group_id", membership.ID, "error", gerr)
			err = gerr
			return nil, err
		}
		groups = append(groups, *group)
	}
	return groups, nil
}

// UserRoles resolves a user's directly assigned directory roles to full role
// records. Same all-or-nothing failure contract as UserGroups.
func (s *UserService) UserRoles(ctx context.Context, userID string) ([]models.DirectoryRole, error) {
	if err := requireID(userID, "user_id"); err != nil {
		return nil, err
	}
	ctx, span := s.tracer.Start(ctx, "directory.user_roles",
		trace.WithAttributes(attribute.String("user_id", userID)))
	var err error
	defer func() { endSpan(span, err) }()

	memberships, err := graph.Drain(ctx, 0,
		func(ctx context.Context) (graph.Page[models.DirectoryObject], error) {
			return s.users.MemberOfPage(ctx, userID, "")
		},
		func(ctx context.Context, cursor string) (graph.Page[models.DirectoryObject], error) {
			return s.users.MemberOfPage(ctx, userID, cursor)
		},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "listing user memberships failed", "user_id", userID, "error", err)
		return nil, err
	}

	roles := make([]models.DirectoryRole, 0, len(memberships))
	for _, membership := range memberships {
		if membership.Kind() != models.KindDirectoryRole || membership.ID == "" {
			continue
		}
		role, rerr := s.roles.DirectoryRole(ctx, membership.ID)
		if rerr != nil {
			s.logger.ErrorContext(ctx, "fetching role details failed", "user_id", userID, "role_id", membership.ID, "error", rerr)
			err = rerr
			return nil, err
		}
		roles = append(roles, *role)
	}
	return roles, nil
}
