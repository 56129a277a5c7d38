package handlers_test

import (
	"net/http"
	"testing"

	"task-orchestrator-backend/internal/api/handlers"
	apperrors "task-orchestrator-backend/internal/errors"
	"task-orchestrator-backend/internal/service"
	"task-orchestrator-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TeamHandlerTestSuite struct {
	suite.Suite
	mockService *mockTeamService
	http        *testutils.HTTPTestSuite
}

func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.mockService = &mockTeamService{}
	suite.http = testutils.SetupHTTPTest()

	handler := handlers.NewTeamHandler(suite.mockService)

	suite.http.Router.GET("/teams", handler.GetAllTeams)
	suite.http.Router.GET("/teams/:id", handler.GetTeam)
	suite.http.Router.POST("/teams", handler.CreateTeam)
	suite.http.Router.DELETE("/teams/:id", handler.DeleteTeam)
	suite.http.Router.GET("/teams/:id/members", handler.GetTeamMembers)
	suite.http.Router.POST("/teams/:id/members", handler.AddTeamMember)
	suite.http.Router.DELETE("/teams/:id/members/:userId", handler.RemoveTeamMember)
}

func (suite *TeamHandlerTestSuite) TestCreateTeam_Success() {
	created := &service.TeamResponse{ID: uuid.New(), Name: "Platform"}
	suite.mockService.On("Create", mock.AnythingOfType("*service.CreateTeamRequest")).Return(created, nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/teams", map[string]interface{}{
		"name": "Platform",
	})

	var got service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	assert.Equal(suite.T(), "Platform", got.Name)
	assert.Equal(suite.T(), "/api/teams/"+created.ID.String(), recorder.Header().Get("Location"))
}

func (suite *TeamHandlerTestSuite) TestGetTeam_NotFound() {
	id := uuid.New()
	suite.mockService.On("GetByID", id).Return(nil, apperrors.ErrTeamNotFound)

	recorder := suite.http.MakeRequest(http.MethodGet, "/teams/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
}

func (suite *TeamHandlerTestSuite) TestGetTeamMembers_Success() {
	teamID := uuid.New()
	members := []service.TeamMemberResponse{
		{ID: uuid.New(), TeamID: teamID, UserID: uuid.New(), Role: "Member"},
		{ID: uuid.New(), TeamID: teamID, UserID: uuid.New(), Role: "Lead"},
	}
	suite.mockService.On("GetMembers", teamID).Return(members, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/teams/"+teamID.String()+"/members", nil)

	var got []service.TeamMemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Len(suite.T(), got, 2)
}

func (suite *TeamHandlerTestSuite) TestAddTeamMember_Success() {
	teamID := uuid.New()
	userID := uuid.New()
	member := &service.TeamMemberResponse{ID: uuid.New(), TeamID: teamID, UserID: userID, Role: "Member"}
	suite.mockService.On("AddMember", teamID, mock.AnythingOfType("*service.AddTeamMemberRequest")).Return(member, nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/teams/"+teamID.String()+"/members", map[string]interface{}{
		"user_id": userID,
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	assert.Equal(suite.T(), "/api/teams/"+teamID.String()+"/members", recorder.Header().Get("Location"))
}

func (suite *TeamHandlerTestSuite) TestAddTeamMember_Duplicate_Conflict() {
	teamID := uuid.New()
	suite.mockService.On("AddMember", teamID, mock.AnythingOfType("*service.AddTeamMemberRequest")).
		Return(nil, apperrors.ErrTeamMemberExists)

	recorder := suite.http.MakeRequest(http.MethodPost, "/teams/"+teamID.String()+"/members", map[string]interface{}{
		"user_id": uuid.New(),
	})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestAddTeamMember_UserNotFound() {
	teamID := uuid.New()
	suite.mockService.On("AddMember", teamID, mock.AnythingOfType("*service.AddTeamMemberRequest")).
		Return(nil, apperrors.ErrUserNotFound)

	recorder := suite.http.MakeRequest(http.MethodPost, "/teams/"+teamID.String()+"/members", map[string]interface{}{
		"user_id": uuid.New(),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

func (suite *TeamHandlerTestSuite) TestRemoveTeamMember_NotFound() {
	teamID := uuid.New()
	userID := uuid.New()
	suite.mockService.On("RemoveMember", teamID, userID).Return(apperrors.ErrTeamMemberNotFound)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/teams/"+teamID.String()+"/members/"+userID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team member not found")
}

func (suite *TeamHandlerTestSuite) TestRemoveTeamMember_InvalidUserID() {
	teamID := uuid.New()
	recorder := suite.http.MakeRequest(http.MethodDelete, "/teams/"+teamID.String()+"/members/oops", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	suite.mockService.AssertNotCalled(suite.T(), "RemoveMember")
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam_Success() {
	id := uuid.New()
	suite.mockService.On("Delete", id).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/teams/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
