package service

import (
	"testing"
	"time"

	apperrors "task-orchestrator-backend/internal/errors"
	"task-orchestrator-backend/internal/repository"
	"task-orchestrator-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ProjectServiceTestSuite tests ProjectService against a real Postgres instance
type ProjectServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	service       *ProjectService
	userService   *UserService
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	store := repository.NewStore(suite.baseTestSuite.DB)
	uow := repository.NewUnitOfWork(suite.baseTestSuite.DB)
	v := validator.New()
	suite.service = NewProjectService(store, uow, v)
	suite.userService = NewUserService(store, uow, v)
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProjectServiceTestSuite) createOwner(name string) *UserResponse {
	user, err := suite.userService.Create(&CreateUserRequest{
		UserName: name,
		Email:    name + "@test.com",
		FullName: "Test " + name,
	})
	suite.NoError(err)
	return user
}

func (suite *ProjectServiceTestSuite) TestCreate_Defaults() {
	owner := suite.createOwner("project-owner")

	created, err := suite.service.Create(&CreateProjectRequest{
		Name:    "Platform Rewrite",
		OwnerID: owner.ID,
	})
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, created.ID)
	suite.True(created.IsActive)
	suite.False(created.StartDate.IsZero())
	suite.Nil(created.EndDate)
	suite.Nil(created.UpdatedAt)

	found, err := suite.service.GetByID(created.ID)
	suite.NoError(err)
	suite.Equal("Platform Rewrite", found.Name)
	suite.Equal(owner.ID, found.OwnerID)
}

func (suite *ProjectServiceTestSuite) TestCreate_ExplicitDates() {
	owner := suite.createOwner("dated-owner")
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 6, 0)

	created, err := suite.service.Create(&CreateProjectRequest{
		Name:      "Q1 Launch",
		StartDate: &start,
		EndDate:   &end,
		OwnerID:   owner.ID,
	})
	suite.NoError(err)
	suite.True(created.StartDate.Equal(start))
	suite.NotNil(created.EndDate)
	suite.True(created.EndDate.Equal(end))
}

func (suite *ProjectServiceTestSuite) TestCreate_ValidationErrors() {
	owner := suite.createOwner("strict-owner")

	_, err := suite.service.Create(&CreateProjectRequest{OwnerID: owner.ID})
	suite.Error(err)
	suite.True(apperrors.IsValidation(err))

	_, err = suite.service.Create(&CreateProjectRequest{Name: "No Owner"})
	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ProjectServiceTestSuite) TestGetByID_NotFound() {
	_, err := suite.service.GetByID(uuid.New())
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (suite *ProjectServiceTestSuite) TestGetAll() {
	owner := suite.createOwner("list-owner")
	for _, name := range []string{"Alpha", "Beta"} {
		_, err := suite.service.Create(&CreateProjectRequest{Name: name, OwnerID: owner.ID})
		suite.NoError(err)
	}

	projects, err := suite.service.GetAll()
	suite.NoError(err)
	suite.Len(projects, 2)
}

func (suite *ProjectServiceTestSuite) TestDelete() {
	owner := suite.createOwner("delete-owner")
	created, err := suite.service.Create(&CreateProjectRequest{Name: "Short Lived", OwnerID: owner.ID})
	suite.NoError(err)

	suite.NoError(suite.service.Delete(created.ID))

	_, err = suite.service.GetByID(created.ID)
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)

	err = suite.service.Delete(created.ID)
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
