package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"entragraph/internal/directory/models"
	"entragraph/internal/directory/service/mocks"
	"entragraph/internal/graph"
	dErrors "entragraph/pkg/domain-errors"
)

type UserServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockUsers *mocks.MockUserAPI
	mockGroup *mocks.MockGroupAPI
	mockRoles *mocks.MockRoleAPI
	service   *UserService
}

func (s *UserServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUsers = mocks.NewMockUserAPI(s.ctrl)
	s.mockGroup = mocks.NewMockGroupAPI(s.ctrl)
	s.mockRoles = mocks.NewMockRoleAPI(s.ctrl)
	s.service = NewUserService(s.mockUsers, s.mockGroup, s.mockRoles,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func (s *UserServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}

func strPtr(v string) *string { return &v }

func (s *UserServiceSuite) TestSearchUsers_EmptyQuery() {
	_, err := s.service.SearchUsers(context.Background(), "   ", 10)
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *UserServiceSuite) TestSearchUsers_DrainsPagesUpToLimit() {
	first := graph.Page[models.User]{
		Items:    []models.User{{ID: "u1"}, {ID: "u2"}},
		NextLink: "https://graph.microsoft.com/v1.0/users?page=2",
	}
	second := graph.Page[models.User]{
		Items: []models.User{{ID: "u3"}, {ID: "u4"}},
	}
	s.mockUsers.EXPECT().SearchUsersPage(gomock.Any(), "alice", 3, "").Return(first, nil)
	s.mockUsers.EXPECT().SearchUsersPage(gomock.Any(), "alice", 3, first.NextLink).Return(second, nil)

	users, err := s.service.SearchUsers(context.Background(), "alice", 3)
	require.NoError(s.T(), err)
	require.Len(s.T(), users, 3)
	assert.Equal(s.T(), "u3", users[2].ID)
}

func (s *UserServiceSuite) TestCreateUser_ValidationReportsAllMissingFields() {
	_, err := s.service.CreateUser(context.Background(), &CreateUserInput{})
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeValidation))
	assert.Contains(s.T(), err.Error(), "displayName")
	assert.Contains(s.T(), err.Error(), "userPrincipalName")
	assert.Contains(s.T(), err.Error(), "mailNickname")
	assert.Contains(s.T(), err.Error(), "password")
}

func (s *UserServiceSuite) TestCreateUser_ExistingPrincipalShortCircuits() {
	existing := &models.User{
		ID:                "u-existing",
		DisplayName:       strPtr("Existing User"),
		UserPrincipalName: strPtr("existing@contoso.com"),
	}
	s.mockUsers.EXPECT().User(gomock.Any(), "existing@contoso.com").Return(existing, nil)

	created, err := s.service.CreateUser(context.Background(), &CreateUserInput{
		DisplayName:       "Existing User",
		UserPrincipalName: "existing@contoso.com",
		MailNickname:      "existing",
		Password:          "Str0ng#Pass",
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.UserStatusAlreadyExists, created.Status)
	assert.Equal(s.T(), "u-existing", created.ID)
}

func (s *UserServiceSuite) TestCreateUser_ProbeFailureFallsThroughToCreate() {
	s.mockUsers.EXPECT().User(gomock.Any(), "new@contoso.com").
		Return(nil, dErrors.New(dErrors.CodeNotFound, "not found"))
	s.mockUsers.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, write *models.UserWrite) (*models.User, error) {
			require.NotNil(s.T(), write.AccountEnabled)
			assert.True(s.T(), *write.AccountEnabled)
			require.NotNil(s.T(), write.PasswordProfile)
			assert.True(s.T(), write.PasswordProfile.ForceChangePasswordNextSignIn)
			return &models.User{ID: "u-new", UserPrincipalName: strPtr("new@contoso.com")}, nil
		})

	created, err := s.service.CreateUser(context.Background(), &CreateUserInput{
		DisplayName:       "New User",
		UserPrincipalName: "new@contoso.com",
		MailNickname:      "new",
		Password:          "Str0ng#Pass",
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.UserStatusCreated, created.Status)
	assert.Equal(s.T(), "u-new", created.ID)
}

func (s *UserServiceSuite) TestUpdateUser_ManagerSetAndRefetch() {
	s.mockUsers.EXPECT().UpdateUser(gomock.Any(), "u1", gomock.Any()).Return(nil)
	s.mockUsers.EXPECT().SetManagerRef(gomock.Any(), "u1", "mgr-1").Return(nil)
	s.mockUsers.EXPECT().User(gomock.Any(), "u1").Return(&models.User{ID: "u1"}, nil)

	user, err := s.service.UpdateUser(context.Background(), "u1", &UpdateUserInput{
		JobTitle: strPtr("Lead"),
		Manager:  strPtr("mgr-1"),
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "u1", user.ID)
}

func (s *UserServiceSuite) TestUpdateUser_EmptyManagerRemovesReference() {
	s.mockUsers.EXPECT().RemoveManagerRef(gomock.Any(), "u1").Return(nil)
	s.mockUsers.EXPECT().User(gomock.Any(), "u1").Return(&models.User{ID: "u1"}, nil)

	_, err := s.service.UpdateUser(context.Background(), "u1", &UpdateUserInput{
		Manager: strPtr(""),
	})
	require.NoError(s.T(), err)
}

func (s *UserServiceSuite) TestDisableUser_PatchesAccountEnabledFalse() {
	s.mockUsers.EXPECT().UpdateUser(gomock.Any(), "u1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, patch *models.UserWrite) error {
			require.NotNil(s.T(), patch.AccountEnabled)
			assert.False(s.T(), *patch.AccountEnabled)
			return nil
		})
	s.mockUsers.EXPECT().User(gomock.Any(), "u1").Return(&models.User{ID: "u1"}, nil)

	_, err := s.service.DisableUser(context.Background(), "u1")
	require.NoError(s.T(), err)
}

// A user reached through several roles collapses to one record whose role set
// is the sorted union of role names.
func (s *UserServiceSuite) TestPrivilegedUsers_DeduplicatesAcrossRoles() {
	roles := graph.Page[models.DirectoryRole]{Items: []models.DirectoryRole{
		{ID: "r1", DisplayName: strPtr("Helpdesk Administrator")},
		{ID: "r2", DisplayName: strPtr("Global Administrator")},
	}}
	s.mockRoles.EXPECT().DirectoryRolesPage(gomock.Any(), "").Return(roles, nil)

	shared := models.DirectoryObject{
		ODataType: models.ODataTypeUser, ID: "u1", DisplayName: strPtr("Alice"),
	}
	s.mockRoles.EXPECT().RoleMembersPage(gomock.Any(), "r1", "").
		Return(graph.Page[models.DirectoryObject]{Items: []models.DirectoryObject{shared}}, nil)
	s.mockRoles.EXPECT().RoleMembersPage(gomock.Any(), "r2", "").
		Return(graph.Page[models.DirectoryObject]{Items: []models.DirectoryObject{
			shared,
			{ODataType: models.ODataTypeServicePrincipal, ID: "sp1"},
			{ODataType: models.ODataTypeUser, ID: "u2", DisplayName: strPtr("Bob")},
		}}, nil)

	users, err := s.service.PrivilegedUsers(context.Background())
	require.NoError(s.T(), err)
	require.Len(s.T(), users, 2)
	assert.Equal(s.T(), "u1", users[0].ID)
	assert.Equal(s.T(), []string{"Global Administrator", "Helpdesk Administrator"}, users[0].Roles)
	assert.Equal(s.T(), []string{"Global Administrator"}, users[1].Roles)
}

func (s *UserServiceSuite) TestPrivilegedUsers_MemberPageErrorPropagates() {
	roles := graph.Page[models.DirectoryRole]{Items: []models.DirectoryRole{
		{ID: "r1", DisplayName: strPtr("Global Administrator")},
	}}
	s.mockRoles.EXPECT().DirectoryRolesPage(gomock.Any(), "").Return(roles, nil)
	s.mockRoles.EXPECT().RoleMembersPage(gomock.Any(), "r1", "").
		Return(graph.Page[models.DirectoryObject]{}, dErrors.New(dErrors.CodeUpstreamFetch, "boom"))

	_, err := s.service.PrivilegedUsers(context.Background())
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeUpstreamFetch))
}

func (s *UserServiceSuite) TestUserGroups_FiltersNonGroupsAndFetchesDetails() {
	memberships := graph.Page[models.DirectoryObject]{Items: []models.DirectoryObject{
		{ODataType: models.ODataTypeGroup, ID: "g1"},
		{ODataType: models.ODataTypeDirectoryRole, ID: "r1"},
		{ODataType: models.ODataTypeGroup, ID: "g2"},
	}}
	s.mockUsers.EXPECT().TransitiveMemberOfPage(gomock.Any(), "u1", "").Return(memberships, nil)
	s.mockGroup.EXPECT().Group(gomock.Any(), "g1").Return(&models.Group{ID: "g1", DisplayName: strPtr("Engineering")}, nil)
	s.mockGroup.EXPECT().Group(gomock.Any(), "g2").Return(&models.Group{ID: "g2", DisplayName: strPtr("All Staff")}, nil)

	groups, err := s.service.UserGroups(context.Background(), "u1")
	require.NoError(s.T(), err)
	require.Len(s.T(), groups, 2)
	assert.Equal(s.T(), "g1", groups[0].ID)
}

// Unlike the group MFA rollup, membership detail fetches carry no per-item
// tolerance: one failure fails the call.
func (s *UserServiceSuite) TestUserGroups_DetailFailureFailsCall() {
	memberships := graph.Page[models.DirectoryObject]{Items: []models.DirectoryObject{
		{ODataType: models.ODataTypeGroup, ID: "g1"},
	}}
	s.mockUsers.EXPECT().TransitiveMemberOfPage(gomock.Any(), "u1", "").Return(memberships, nil)
	s.mockGroup.EXPECT().Group(gomock.Any(), "g1").
		Return(nil, dErrors.New(dErrors.CodeUpstreamFetch, "boom"))

	_, err := s.service.UserGroups(context.Background(), "u1")
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeUpstreamFetch))
}

func (s *UserServiceSuite) TestUserRoles_FiltersToDirectoryRoles() {
	memberships := graph.Page[models.DirectoryObject]{Items: []models.DirectoryObject{
		{ODataType: models.ODataTypeGroup, ID: "g1"},
		{ODataType: models.ODataTypeDirectoryRole, ID: "r1"},
	}}
	s.mockUsers.EXPECT().MemberOfPage(gomock.Any(), "u1", "").Return(memberships, nil)
	s.mockRoles.EXPECT().DirectoryRole(gomock.Any(), "r1").
		Return(&models.DirectoryRole{ID: "r1", DisplayName: strPtr("User Administrator")}, nil)

	roles, err := s.service.UserRoles(context.Background(), "u1")
	require.NoError(s.T(), err)
	require.Len(s.T(), roles, 1)
	assert.Equal(s.T(), "r1", roles[0].ID)
}

func (s *UserServiceSuite) TestIDRequiredEverywhere() {
	ctx := context.Background()
	cases := map[string]func() error{
		"GetUser":       func() error { _, err := s.service.GetUser(ctx, ""); return err },
		"DeleteUser":    func() error { _, err := s.service.DeleteUser(ctx, ""); return err },
		"UserGroups":    func() error { _, err := s.service.UserGroups(ctx, ""); return err },
		"UserRoles":     func() error { _, err := s.service.UserRoles(ctx, ""); return err },
		"SetManager":    func() error { _, err := s.service.SetManager(ctx, "", "m"); return err },
		"RemoveManager": func() error { _, err := s.service.RemoveManager(ctx, ""); return err },
	}
	for name, call := range cases {
		s.T().Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
		})
	}
}
