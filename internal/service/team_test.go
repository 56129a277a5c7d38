package service

import (
	"testing"

	apperrors "task-orchestrator-backend/internal/errors"
	"task-orchestrator-backend/internal/repository"
	"task-orchestrator-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TeamServiceTestSuite tests TeamService against a real Postgres instance
type TeamServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	service       *TeamService
	userService   *UserService
}

// SetupSuite runs before all tests in the suite
func (suite *TeamServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	store := repository.NewStore(suite.baseTestSuite.DB)
	uow := repository.NewUnitOfWork(suite.baseTestSuite.DB)
	v := validator.New()
	suite.service = NewTeamService(store, uow, v)
	suite.userService = NewUserService(store, uow, v)
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamServiceTestSuite) createUser(name string) *UserResponse {
	user, err := suite.userService.Create(&CreateUserRequest{
		UserName: name,
		Email:    name + "@test.com",
		FullName: "Test " + name,
	})
	suite.NoError(err)
	return user
}

func (suite *TeamServiceTestSuite) TestCreateAndGet() {
	created, err := suite.service.Create(&CreateTeamRequest{Name: "Core", Description: "Core services"})
	suite.NoError(err)

	found, err := suite.service.GetByID(created.ID)
	suite.NoError(err)
	suite.Equal("Core", found.Name)
}

func (suite *TeamServiceTestSuite) TestAddMember_DefaultsRole() {
	team, err := suite.service.Create(&CreateTeamRequest{Name: "Crew"})
	suite.NoError(err)
	user := suite.createUser("crew-member")

	member, err := suite.service.AddMember(team.ID, &AddTeamMemberRequest{UserID: user.ID})
	suite.NoError(err)
	suite.Equal("Member", member.Role)
	suite.Equal(team.ID, member.TeamID)
	suite.Equal(user.ID, member.UserID)
}

func (suite *TeamServiceTestSuite) TestAddMember_DuplicatePair() {
	team, err := suite.service.Create(&CreateTeamRequest{Name: "Crew"})
	suite.NoError(err)
	user := suite.createUser("dup-member")

	_, err = suite.service.AddMember(team.ID, &AddTeamMemberRequest{UserID: user.ID})
	suite.NoError(err)

	_, err = suite.service.AddMember(team.ID, &AddTeamMemberRequest{UserID: user.ID})
	suite.ErrorIs(err, apperrors.ErrTeamMemberExists)
}

func (suite *TeamServiceTestSuite) TestAddMember_UnknownTeamOrUser() {
	user := suite.createUser("orphan")
	_, err := suite.service.AddMember(uuid.New(), &AddTeamMemberRequest{UserID: user.ID})
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)

	team, err := suite.service.Create(&CreateTeamRequest{Name: "Lonely"})
	suite.NoError(err)
	_, err = suite.service.AddMember(team.ID, &AddTeamMemberRequest{UserID: uuid.New()})
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *TeamServiceTestSuite) TestGetMembers_VerifiesTeam() {
	_, err := suite.service.GetMembers(uuid.New())
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)

	team, err := suite.service.Create(&CreateTeamRequest{Name: "Listed"})
	suite.NoError(err)

	members, err := suite.service.GetMembers(team.ID)
	suite.NoError(err)
	suite.Empty(members)

	user := suite.createUser("listed-member")
	_, err = suite.service.AddMember(team.ID, &AddTeamMemberRequest{UserID: user.ID, Role: "Lead"})
	suite.NoError(err)

	members, err = suite.service.GetMembers(team.ID)
	suite.NoError(err)
	suite.Len(members, 1)
	suite.Equal("Lead", members[0].Role)
}

func (suite *TeamServiceTestSuite) TestRemoveMember() {
	team, err := suite.service.Create(&CreateTeamRequest{Name: "Shrinking"})
	suite.NoError(err)
	user := suite.createUser("leaver")

	_, err = suite.service.AddMember(team.ID, &AddTeamMemberRequest{UserID: user.ID})
	suite.NoError(err)

	suite.NoError(suite.service.RemoveMember(team.ID, user.ID))

	members, err := suite.service.GetMembers(team.ID)
	suite.NoError(err)
	suite.Empty(members)

	err = suite.service.RemoveMember(team.ID, user.ID)
	suite.ErrorIs(err, apperrors.ErrTeamMemberNotFound)
}

func (suite *TeamServiceTestSuite) TestDelete_RemovesMemberships() {
	team, err := suite.service.Create(&CreateTeamRequest{Name: "Doomed"})
	suite.NoError(err)
	user := suite.createUser("doomed-member")
	_, err = suite.service.AddMember(team.ID, &AddTeamMemberRequest{UserID: user.ID})
	suite.NoError(err)

	suite.NoError(suite.service.Delete(team.ID))

	_, err = suite.service.GetByID(team.ID)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
