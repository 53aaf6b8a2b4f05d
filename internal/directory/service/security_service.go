package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"entragraph/internal/directory/models"
	"entragraph/internal/graph"
)

const (
	defaultSignInDays = 7
	signInPageSize    = 1000

	// memberStatusConcurrency bounds parallel per-member method fetches in a
	// group rollup so a large group cannot flood the upstream.
	memberStatusConcurrency = 8
)

// SecurityService owns authentication posture: per-user MFA status, group
// MFA rollups, and sign-in activity.
type SecurityService struct {
	security SecurityAPI
	groups   GroupAPI
	logger   *slog.Logger
	tracer   trace.Tracer
}

func NewSecurityService(security SecurityAPI, groups GroupAPI, opts ...Option) *SecurityService {
	cfg := newServiceConfig(opts)
	return &SecurityService{
		security: security,
		groups:   groups,
		logger:   cfg.logger,
		tracer:   cfg.tracer,
	}
}

// UserMFAStatus reports whether the user has any authentication method
// registered beyond a password, together with the full method list.
func (s *SecurityService) UserMFAStatus(ctx context.Context, userID string) (*models.MFAStatus, error) {
	if err := requireID(userID, "user_id"); err != nil {
		return nil, err
	}

	methods, err := s.userMethods(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetching authentication methods failed", "user_id", userID, "error", err)
		return nil, err
	}
	return buildMFAStatus(userID, methods), nil
}

// GroupMFAStatus reports the MFA posture of every direct user member of a
// group. A method fetch failing for one member does not fail the rollup: that
// member's record carries null posture fields and the failure message, so one
// unreadable account cannot hide the rest of the group. Output order follows
// member order.
func (s *SecurityService) GroupMFAStatus(ctx context.Context, groupID string) ([]models.MemberMFAStatus, error) {
	if err := requireID(groupID, "group_id"); err != nil {
		return nil, err
	}
	ctx, span := s.tracer.Start(ctx, "directory.group_mfa_status",
		trace.WithAttributes(attribute.String("group_id", groupID)))
	var err error
	defer func() { endSpan(span, err) }()

	members, err := graph.Drain(ctx, 0,
		func(ctx context.Context) (graph.Page[models.DirectoryObject], error) {
			return s.groups.GroupMembersPage(ctx, groupID, 0, "")
		},
		func(ctx context.Context, cursor string) (graph.Page[models.DirectoryObject], error) {
			return s.groups.GroupMembersPage(ctx, groupID, 0, cursor)
		},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "listing group members failed", "group_id", groupID, "error", err)
		return nil, err
	}

	var userMembers []models.DirectoryObject
	for _, member := range members {
		if member.Kind() == models.KindUser && member.ID != "" {
			userMembers = append(userMembers, member)
		}
	}
	span.SetAttributes(attribute.Int("member_count", len(userMembers)))

	statuses := make([]models.MemberMFAStatus, len(userMembers))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(memberStatusConcurrency)
	for i, member := range userMembers {
		eg.Go(func() error {
			statuses[i] = s.memberStatus(egCtx, groupID, member)
			return nil
		})
	}
	// Goroutines isolate their own failures, so Wait only fans in.
	_ = eg.Wait()

	return statuses, nil
}

func (s *SecurityService) memberStatus(ctx context.Context, groupID string, member models.DirectoryObject) models.MemberMFAStatus {
	status := models.MemberMFAStatus{
		UserID:            member.ID,
		DisplayName:       member.DisplayName,
		UserPrincipalName: member.UserPrincipalName,
		Mail:              member.Mail,
	}

	methods, err := s.userMethods(ctx, member.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "member authentication methods unavailable",
			"group_id", groupID, "user_id", member.ID, "error", err)
		msg := err.Error()
		status.Error = &msg
		return status
	}

	posture := buildMFAStatus(member.ID, methods)
	status.MFAEnabled = &posture.MFAEnabled
	status.MethodCount = &posture.MethodCount
	status.Methods = posture.Methods
	return status
}

func (s *SecurityService) userMethods(ctx context.Context, userID string) ([]models.AuthenticationMethod, error) {
	return graph.Drain(ctx, 0,
		func(ctx context.Context) (graph.Page[models.AuthenticationMethod], error) {
			return s.security.AuthenticationMethodsPage(ctx, userID, "")
		},
		func(ctx context.Context, cursor string) (graph.Page[models.AuthenticationMethod], error) {
			return s.security.AuthenticationMethodsPage(ctx, userID, cursor)
		},
	)
}

// buildMFAStatus derives posture from a method list: MFA counts as enabled
// when any registered method is not the password method.
func buildMFAStatus(userID string, methods []models.AuthenticationMethod) *models.MFAStatus {
	status := &models.MFAStatus{
		UserID:      userID,
		MethodCount: len(methods),
		Methods:     methods,
	}
	for _, method := range methods {
		if !method.IsPassword() {
			status.MFAEnabled = true
			break
		}
	}
	return status
}

// UserSignIns returns sign-in events for a user over the trailing window of
// whole days, newest first as the upstream reports them.
func (s *SecurityService) UserSignIns(ctx context.Context, userID string, days int) ([]models.SignInEvent, error) {
	if err := requireID(userID, "user_id"); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = defaultSignInDays
	}

	threshold := time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02T15:04:05Z")
	filter := fmt.Sprintf("userId eq '%s' and createdDateTime ge %s", userID, threshold)

	events, err := graph.Drain(ctx, 0,
		func(ctx context.Context) (graph.Page[models.SignInEvent], error) {
			return s.security.SignInsPage(ctx, filter, signInPageSize, "")
		},
		func(ctx context.Context, cursor string) (graph.Page[models.SignInEvent], error) {
			return s.security.SignInsPage(ctx, filter, signInPageSize, cursor)
		},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetching sign-in logs failed", "user_id", userID, "days", days, "error", err)
		return nil, err
	}
	return events, nil
}
