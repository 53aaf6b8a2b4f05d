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

type GroupServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockGroup *mocks.MockGroupAPI
	service   *GroupService
}

func (s *GroupServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGroup = mocks.NewMockGroupAPI(s.ctrl)
	s.service = NewGroupService(s.mockGroup,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func (s *GroupServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestGroupServiceSuite(t *testing.T) {
	suite.Run(t, new(GroupServiceSuite))
}

func (s *GroupServiceSuite) TestListGroups_TruncatesToLimit() {
	first := graph.Page[models.Group]{
		Items:    []models.Group{{ID: "g1"}, {ID: "g2"}},
		NextLink: "https://graph.microsoft.com/v1.0/groups?page=2",
	}
	second := graph.Page[models.Group]{Items: []models.Group{{ID: "g3"}, {ID: "g4"}}}
	s.mockGroup.EXPECT().GroupsPage(gomock.Any(), 3, "").Return(first, nil)
	s.mockGroup.EXPECT().GroupsPage(gomock.Any(), 3, first.NextLink).Return(second, nil)

	groups, err := s.service.ListGroups(context.Background(), 3)
	require.NoError(s.T(), err)
	require.Len(s.T(), groups, 3)
	assert.Equal(s.T(), "g3", groups[2].ID)
}

func (s *GroupServiceSuite) TestListGroups_DefaultLimit() {
	s.mockGroup.EXPECT().GroupsPage(gomock.Any(), defaultGroupLimit, "").
		Return(graph.Page[models.Group]{Items: []models.Group{{ID: "g1"}}}, nil)

	groups, err := s.service.ListGroups(context.Background(), 0)
	require.NoError(s.T(), err)
	assert.Len(s.T(), groups, 1)
}

func (s *GroupServiceSuite) TestSearchGroups_EmptyName() {
	_, err := s.service.SearchGroups(context.Background(), "", 10)
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *GroupServiceSuite) TestGetGroup_ErrorPropagates() {
	s.mockGroup.EXPECT().Group(gomock.Any(), "g1").
		Return(nil, dErrors.New(dErrors.CodeNotFound, "group g1 not found"))

	_, err := s.service.GetGroup(context.Background(), "g1")
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *GroupServiceSuite) TestGroupMembers_RequiresID() {
	_, err := s.service.GroupMembers(context.Background(), "  ", 10)
	require.Error(s.T(), err)
	assert.True(s.T(), dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *GroupServiceSuite) TestGroupMembers_DrainsHeterogeneousMembers() {
	page := graph.Page[models.DirectoryObject]{Items: []models.DirectoryObject{
		{ODataType: models.ODataTypeUser, ID: "u1"},
		{ODataType: models.ODataTypeGroup, ID: "g-nested"},
	}}
	s.mockGroup.EXPECT().GroupMembersPage(gomock.Any(), "g1", 10, "").Return(page, nil)

	members, err := s.service.GroupMembers(context.Background(), "g1", 10)
	require.NoError(s.T(), err)
	require.Len(s.T(), members, 2)
	assert.Equal(s.T(), models.KindUser, members[0].Kind())
	assert.Equal(s.T(), models.KindGroup, members[1].Kind())
}
