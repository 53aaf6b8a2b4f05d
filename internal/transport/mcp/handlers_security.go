package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"entragraph/pkg/secrets"
)

const defaultPasswordLength = 12

type signInsInput struct {
	UserID string `json:"user_id"`
	Days   int    `json:"days,omitempty"`
}

func (t *Tools) handleUserSignIns(ctx context.Context, req *mcp.CallToolRequest, input signInsInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "get_user_sign_ins", "user_id", input.UserID)
	events, err := t.security.UserSignIns(ctx, input.UserID, input.Days)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := listResult(events)
	return res, nil, err
}

func (t *Tools) handleUserMFAStatus(ctx context.Context, req *mcp.CallToolRequest, input userIDInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "get_user_mfa_status", "user_id", input.UserID)
	status, err := t.security.UserMFAStatus(ctx, input.UserID)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := jsonResult(status)
	return res, nil, err
}

func (t *Tools) handleGroupMFAStatus(ctx context.Context, req *mcp.CallToolRequest, input groupIDInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "get_group_mfa_status", "group_id", input.GroupID)
	statuses, err := t.security.GroupMFAStatus(ctx, input.GroupID)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := listResult(statuses)
	return res, nil, err
}

type generatePasswordInput struct {
	Length int `json:"length,omitempty"`
}

type generatedPassword struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// The generated password is returned to the caller but never logged.
func (t *Tools) handleGeneratePassword(ctx context.Context, req *mcp.CallToolRequest, input generatePasswordInput) (*mcp.CallToolResult, any, error) {
	done := t.observe(ctx, "generate_password")
	length := input.Length
	if length == 0 {
		length = defaultPasswordLength
	}
	password, err := secrets.Password(length)
	done(err)
	if err != nil {
		return nil, nil, err
	}
	res, err := jsonResult(generatedPassword{Password: password, Length: len(password)})
	return res, nil, err
}
