package service

import (
	"testing"
	"time"

	"task-orchestrator-backend/internal/database/models"
	apperrors "task-orchestrator-backend/internal/errors"
	"task-orchestrator-backend/internal/repository"
	"task-orchestrator-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TaskServiceTestSuite tests TaskService against a real Postgres instance
type TaskServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *repository.Store
	service       *TaskService
	users         *testutils.UserFactory
}

// SetupSuite runs before all tests in the suite
func (suite *TaskServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = repository.NewStore(suite.baseTestSuite.DB)
	uow := repository.NewUnitOfWork(suite.baseTestSuite.DB)
	v := validator.New()
	suite.service = NewTaskService(suite.store, uow, v)
	suite.users = testutils.NewUserFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *TaskServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TaskServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TaskServiceTestSuite) TestCreate_DefaultsAndRoundTrip() {
	created, err := suite.service.Create(&CreateTaskRequest{Title: "Fix the build"})
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, created.ID)
	suite.Equal(models.TaskStatusPending, created.Status)
	suite.Equal(models.TaskPriorityMedium, created.Priority)
	suite.Nil(created.UpdatedAt)

	found, err := suite.service.GetByID(created.ID)
	suite.NoError(err)
	suite.Equal(created.ID, found.ID)
	suite.Equal("Fix the build", found.Title)
}

func (suite *TaskServiceTestSuite) TestCreate_UniqueIdentifiers() {
	first, err := suite.service.Create(&CreateTaskRequest{Title: "one"})
	suite.NoError(err)
	second, err := suite.service.Create(&CreateTaskRequest{Title: "two"})
	suite.NoError(err)
	suite.NotEqual(first.ID, second.ID)
}

func (suite *TaskServiceTestSuite) TestCreate_MissingTitle() {
	_, err := suite.service.Create(&CreateTaskRequest{})
	suite.True(apperrors.IsValidation(err))
}

func (suite *TaskServiceTestSuite) TestCreate_InvalidPriority() {
	_, err := suite.service.Create(&CreateTaskRequest{
		Title:    "bad priority",
		Priority: models.TaskPriority("Urgent"),
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *TaskServiceTestSuite) TestGetByID_NotFound() {
	_, err := suite.service.GetByID(uuid.New())
	suite.ErrorIs(err, apperrors.ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestUpdate_SparsePatchLeavesOtherFieldsUnchanged() {
	due := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
	created, err := suite.service.Create(&CreateTaskRequest{
		Title:       "Release notes",
		Description: "Write the notes for 2.0",
		Priority:    models.TaskPriorityHigh,
		DueDate:     &due,
	})
	suite.NoError(err)

	status := models.TaskStatusCompleted
	updated, err := suite.service.Update(created.ID, &UpdateTaskRequest{Status: &status})
	suite.NoError(err)

	suite.Equal(models.TaskStatusCompleted, updated.Status)
	suite.Equal("Release notes", updated.Title)
	suite.Equal("Write the notes for 2.0", updated.Description)
	suite.Equal(models.TaskPriorityHigh, updated.Priority)
	suite.NotNil(updated.DueDate)
	suite.True(due.Equal(updated.DueDate.Truncate(time.Second)))
	suite.NotNil(updated.UpdatedAt)
}

func (suite *TaskServiceTestSuite) TestUpdate_AdvancesUpdatedAt() {
	created, err := suite.service.Create(&CreateTaskRequest{Title: "touch me"})
	suite.NoError(err)
	suite.Nil(created.UpdatedAt)

	status := models.TaskStatusInProgress
	first, err := suite.service.Update(created.ID, &UpdateTaskRequest{Status: &status})
	suite.NoError(err)
	suite.NotNil(first.UpdatedAt)

	time.Sleep(10 * time.Millisecond)

	done := models.TaskStatusCompleted
	second, err := suite.service.Update(created.ID, &UpdateTaskRequest{Status: &done})
	suite.NoError(err)
	suite.True(second.UpdatedAt.After(*first.UpdatedAt))
}

func (suite *TaskServiceTestSuite) TestUpdate_NotFound() {
	title := "ghost"
	_, err := suite.service.Update(uuid.New(), &UpdateTaskRequest{Title: &title})
	suite.ErrorIs(err, apperrors.ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestDelete_NotFound() {
	err := suite.service.Delete(uuid.New())
	suite.ErrorIs(err, apperrors.ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestDelete_RemovesTask() {
	created, err := suite.service.Create(&CreateTaskRequest{Title: "ephemeral"})
	suite.NoError(err)

	suite.NoError(suite.service.Delete(created.ID))

	_, err = suite.service.GetByID(created.ID)
	suite.ErrorIs(err, apperrors.ErrTaskNotFound)
}

func (suite *TaskServiceTestSuite) TestGetByUserID_FiltersExactly() {
	userA := suite.users.WithUserName("filter-a")
	suite.NoError(suite.store.Users.Add(userA))
	userB := suite.users.WithUserName("filter-b")
	suite.NoError(suite.store.Users.Add(userB))

	_, err := suite.service.Create(&CreateTaskRequest{Title: "for A", AssignedToID: &userA.ID})
	suite.NoError(err)
	_, err = suite.service.Create(&CreateTaskRequest{Title: "for B", AssignedToID: &userB.ID})
	suite.NoError(err)
	_, err = suite.service.Create(&CreateTaskRequest{Title: "unassigned"})
	suite.NoError(err)

	tasks, err := suite.service.GetByUserID(userA.ID)
	suite.NoError(err)
	suite.Len(tasks, 1)
	suite.Equal("for A", tasks[0].Title)

	none, err := suite.service.GetByUserID(uuid.New())
	suite.NoError(err)
	suite.Empty(none)
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
