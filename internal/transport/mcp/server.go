package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverName = "entragraph"

// NewServer builds an MCP server with every directory tool registered. The
// SDK infers each tool's input schema from its handler's input struct.
func NewServer(tools *Tools, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Title:   "Entra ID Directory",
		Version: version,
	}, nil)

	readOnly := func(title string) *mcp.ToolAnnotations {
		return &mcp.ToolAnnotations{
			Title:           title,
			ReadOnlyHint:    true,
			IdempotentHint:  true,
			DestructiveHint: boolPtr(false),
		}
	}
	mutating := func(title string, destructive bool) *mcp.ToolAnnotations {
		return &mcp.ToolAnnotations{
			Title:           title,
			DestructiveHint: boolPtr(destructive),
		}
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_users",
		Description: "Search users by name or email. Matches displayName, mail, userPrincipalName, givenName, surname, and otherMails.",
		Annotations: readOnly("Search Users"),
	}, tools.handleSearchUsers)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_user_by_id",
		Description: "Fetch a single user by object id or userPrincipalName.",
		Annotations: readOnly("Get User"),
	}, tools.handleGetUser)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_user",
		Description: "Create a new user. Returns status 'already_exists' without creating anything when the userPrincipalName is already taken.",
		Annotations: mutating("Create User", false),
	}, tools.handleCreateUser)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_user",
		Description: "Update user properties. Only the fields present in the call are changed. Set manager to an object id to assign a manager, or to an empty string to remove the current one.",
		Annotations: mutating("Update User", false),
	}, tools.handleUpdateUser)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_user",
		Description: "Permanently delete a user.",
		Annotations: mutating("Delete User", true),
	}, tools.handleDeleteUser)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "enable_user",
		Description: "Enable a user account so the user can sign in.",
		Annotations: mutating("Enable User", false),
	}, tools.handleEnableUser)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "disable_user",
		Description: "Disable a user account, blocking sign-in.",
		Annotations: mutating("Disable User", false),
	}, tools.handleDisableUser)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_user_manager",
		Description: "Set a user's manager by object id.",
		Annotations: mutating("Set Manager", false),
	}, tools.handleSetManager)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_user_manager",
		Description: "Remove a user's current manager reference.",
		Annotations: mutating("Remove Manager", false),
	}, tools.handleRemoveManager)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_privileged_users",
		Description: "List every user holding at least one activated directory role. Each user appears once with the full set of role names.",
		Annotations: readOnly("Get Privileged Users"),
	}, tools.handlePrivilegedUsers)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_user_groups",
		Description: "List every group a user belongs to, including nested (transitive) memberships, with full group details.",
		Annotations: readOnly("Get User Groups"),
	}, tools.handleUserGroups)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_user_roles",
		Description: "List the directory roles directly assigned to a user, with full role details.",
		Annotations: readOnly("Get User Roles"),
	}, tools.handleUserRoles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_all_groups",
		Description: "List groups in the tenant up to the given limit.",
		Annotations: readOnly("List Groups"),
	}, tools.handleListGroups)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_group_by_id",
		Description: "Fetch a single group by object id.",
		Annotations: readOnly("Get Group"),
	}, tools.handleGetGroup)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_groups_by_name",
		Description: "Search groups whose display name matches the given text.",
		Annotations: readOnly("Search Groups"),
	}, tools.handleSearchGroups)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_group_members",
		Description: "List a group's direct members. Members may be users, nested groups, or service principals.",
		Annotations: readOnly("Get Group Members"),
	}, tools.handleGroupMembers)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_user_sign_ins",
		Description: "Fetch a user's sign-in events over the trailing number of days (default 7).",
		Annotations: readOnly("Get User Sign-Ins"),
	}, tools.handleUserSignIns)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_user_mfa_status",
		Description: "Report whether a user has MFA registered, with the full list of authentication methods.",
		Annotations: readOnly("Get User MFA Status"),
	}, tools.handleUserMFAStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_group_mfa_status",
		Description: "Report MFA posture for every user member of a group. Members whose status could not be read are included with an error field instead of failing the whole report.",
		Annotations: readOnly("Get Group MFA Status"),
	}, tools.handleGroupMFAStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_password",
		Description: "Generate a random password with uppercase, lowercase, digit, and symbol characters. Minimum length 8, default 12.",
		Annotations: &mcp.ToolAnnotations{
			Title:           "Generate Password",
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
		},
	}, tools.handleGeneratePassword)

	return server
}
