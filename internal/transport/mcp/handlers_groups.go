package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listGroupsInput struct {
	Limit int `json:"limit,omitempty"`
}

func (t *Tools) handleListGroups(ctx context.Context, req *mcp.CallToolRequest, input listGroupsInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "get_all_groups")
	groups, err := t.groups.ListGroups(ctx, input.Limit)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := listResult(groups)
	return res, nil, err
}

type groupIDInput struct {
	GroupID string `json:"group_id"`
}

func (t *Tools) handleGetGroup(ctx context.Context, req *mcp.CallToolRequest, input groupIDInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "get_group_by_id", "group_id", input.GroupID)
	group, err := t.groups.GetGroup(ctx, input.GroupID)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := jsonResult(group)
	return res, nil, err
}

type searchGroupsInput struct {
	Name  string `json:"name"`
	Limit int    `json:"limit,omitempty"`
}

func (t *Tools) handleSearchGroups(ctx context.Context, req *mcp.CallToolRequest, input searchGroupsInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "search_groups_by_name")
	groups, err := t.groups.SearchGroups(ctx, input.Name, input.Limit)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := listResult(groups)
	return res, nil, err
}

type groupMembersInput struct {
	GroupID string `json:"group_id"`
	Limit   int    `json:"limit,omitempty"`
}

func (t *Tools) handleGroupMembers(ctx context.Context, req *mcp.CallToolRequest, input groupMembersInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "get_group_members", "group_id", input.GroupID)
	members, err := t.groups.GroupMembers(ctx, input.GroupID, input.Limit)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := listResult(members)
	return res, nil, err
}
