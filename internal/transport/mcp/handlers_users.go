package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"entragraph/internal/directory/service"
)

type searchUsersInput struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

func (t *Tools) handleSearchUsers(ctx context.Context, req *mcp.CallToolRequest, input searchUsersInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "search_users")
	users, err := t.users.SearchUsers(ctx, input.Query, input.Limit)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := listResult(users)
	return res, nil, err
}

type userIDInput struct {
	UserID string `json:"user_id"`
}

func (t *Tools) handleGetUser(ctx context.Context, req *mcp.CallToolRequest, input userIDInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "get_user_by_id", "user_id", input.UserID)
	user, err := t.users.GetUser(ctx, input.UserID)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := jsonResult(user)
	return res, nil, err
}

func (t *Tools) handleCreateUser(ctx context.Context, req *mcp.CallToolRequest, input service.CreateUserInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "create_user", "user_principal_name", input.UserPrincipalName)
	created, err := t.users.CreateUser(ctx, &input)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := jsonResult(created)
	return res, nil, err
}

type updateUserInput struct {
	UserID string `json:"user_id"`
	service.UpdateUserInput
}

func (t *Tools) handleUpdateUser(ctx context.Context, req *mcp.CallToolRequest, input updateUserInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "update_user", "user_id", input.UserID)
	user, err := t.users.UpdateUser(ctx, input.UserID, &input.UpdateUserInput)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := jsonResult(user)
	return res, nil, err
}

func (t *Tools) handleDeleteUser(ctx context.Context, req *mcp.CallToolRequest, input userIDInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "delete_user", "user_id", input.UserID)
	result, err := t.users.DeleteUser(ctx, input.UserID)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := jsonResult(result)
	return res, nil, err
}

func (t *Tools) handleEnableUser(ctx context.Context, req *mcp.CallToolRequest, input userIDInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "enable_user", "user_id", input.UserID)
	user, err := t.users.EnableUser(ctx, input.UserID)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := jsonResult(user)
	return res, nil, err
}

func (t *Tools) handleDisableUser(ctx context.Context, req *mcp.CallToolRequest, input userIDInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "disable_user", "user_id", input.UserID)
	user, err := t.users.DisableUser(ctx, input.UserID)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := jsonResult(user)
	return res, nil, err
}

type setManagerInput struct {
	UserID    string `json:"user_id"`
	ManagerID string `json:"manager_id"`
}

func (t *Tools) handleSetManager(ctx context.Context, req *mcp.CallToolRequest, input setManagerInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "set_user_manager", "user_id", input.UserID, "manager_id", input.ManagerID)
	result, err := t.users.SetManager(ctx, input.UserID, input.ManagerID)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := jsonResult(result)
	return res, nil, err
}

func (t *Tools) handleRemoveManager(ctx context.Context, req *mcp.CallToolRequest, input userIDInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "remove_user_manager", "user_id", input.UserID)
	result, err := t.users.RemoveManager(ctx, input.UserID)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := jsonResult(result)
	return res, nil, err
}

type emptyInput struct{}

func (t *Tools) handlePrivilegedUsers(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "get_privileged_users")
	users, err := t.users.PrivilegedUsers(ctx)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := listResult(users)
	return res, nil, err
}

func (t *Tools) handleUserGroups(ctx context.Context, req *mcp.CallToolRequest, input userIDInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "get_user_groups", "user_id", input.UserID)
	groups, err := t.users.UserGroups(ctx, input.UserID)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := listResult(groups)
	return res, nil, err
}

func (t *Tools) handleUserRoles(ctx context.Context, req *mcp.CallToolRequest, input userIDInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "get_user_roles", "user_id", input.UserID)
	roles, err := t.users.UserRoles(ctx, input.UserID)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := listResult(roles)
	return res, nil, err
}
