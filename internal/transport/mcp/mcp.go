// Package mcp exposes the directory services as Model Context Protocol
// tools. Tool handlers translate between tool inputs and service calls;
// all aggregation logic stays in the services.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"entragraph/internal/directory/models"
	"entragraph/internal/directory/service"
)

//go:generate mockgen -source=mcp.go -destination=mocks/mocks.go -package=mocks Users,Groups,Security

type Users interface {
	SearchUsers(ctx context.Context, query string, limit int) ([]models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	CreateUser(ctx context.Context, input *service.CreateUserInput) (*models.CreatedUser, error)
	UpdateUser(ctx context.Context, userID string, input *service.UpdateUserInput) (*models.User, error)
	EnableUser(ctx context.Context, userID string) (*models.User, error)
	DisableUser(ctx context.Context, userID string) (*models.User, error)
	DeleteUser(ctx context.Context, userID string) (*models.OperationResult, error)
	SetManager(ctx context.Context, userID, managerID string) (*models.OperationResult, error)
	RemoveManager(ctx context.Context, userID string) (*models.OperationResult, error)
	PrivilegedUsers(ctx context.Context) ([]models.PrivilegedUser, error)
	UserGroups(ctx context.Context, userID string) ([]models.Group, error)
	UserRoles(ctx context.Context, userID string) ([]models.DirectoryRole, error)
}

type Groups interface {
	ListGroups(ctx context.Context, limit int) ([]models.Group, error)
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	SearchGroups(ctx context.Context, name string, limit int) ([]models.Group, error)
	GroupMembers(ctx context.Context, groupID string, limit int) ([]models.DirectoryObject, error)
}

type Security interface {
	UserMFAStatus(ctx context.Context, userID string) (*models.MFAStatus, error)
	GroupMFAStatus(ctx context.Context, groupID string) ([]models.MemberMFAStatus, error)
	UserSignIns(ctx context.Context, userID string, days int) ([]models.SignInEvent, error)
}

// Tools binds the directory services to MCP tool handlers.
type Tools struct {
	users    Users
	groups   Groups
	security Security
	logger   *slog.Logger
}

type Option func(*Tools)

func WithLogger(l *slog.Logger) Option {
	return func(t *Tools) { t.logger = l }
}

func NewTools(users Users, groups Groups, security Security, opts ...Option) *Tools {
	t := &Tools{
		users:    users,
		groups:   groups,
		security: security,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// jsonResult renders any value as a single JSON text content block. Arrays
// are wrapped in a value envelope so every tool returns a JSON object.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
	}, nil
}

type listEnvelope[T any] struct {
	Value []T `json:"value"`
	Count int `json:"count"`
}

func listResult[T any](items []T) (*mcp.CallToolResult, error) {
	if items == nil {
		items = []T{}
	}
	return jsonResult(listEnvelope[T]{Value: items, Count: len(items)})
}

// observe logs one tool invocation with a fresh correlation id and returns a
// func that records the outcome. Extra args carry target identifiers, never
// payload or secret material.
func (t *Tools) observe(ctx context.Context, tool string, args ...any) func(err error) {
	start := time.Now()
	base := append([]any{"tool", tool, "invocation_id", uuid.NewString()}, args...)
	t.logger.InfoContext(ctx, "tool invoked", base...)
	return func(err error) {
		if err != nil {
			t.logger.ErrorContext(ctx, "tool failed",
				append(base, "duration", time.Since(start), "error", err)...)
			return
		}
		t.logger.InfoContext(ctx, "tool completed",
			append(base, "duration", time.Since(start))...)
	}
}

func boolPtr(b bool) *bool { return &b }
