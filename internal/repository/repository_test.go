package repository

import (
	"testing"

	"task-orchestrator-backend/internal/database/models"
	"task-orchestrator-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// StoreTestSuite tests the generic repository and the unit of work against
// a real Postgres instance
type StoreTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *Store
	uow           *UnitOfWork

	users    *testutils.UserFactory
	projects *testutils.ProjectFactory
	tasks    *testutils.TaskFactory
	teams    *testutils.TeamFactory
	members  *testutils.TeamMemberFactory
	comments *testutils.CommentFactory
}

// SetupSuite runs before all tests in the suite
func (suite *StoreTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = NewStore(suite.baseTestSuite.DB)
	suite.uow = NewUnitOfWork(suite.baseTestSuite.DB)

	suite.users = testutils.NewUserFactory()
	suite.projects = testutils.NewProjectFactory()
	suite.tasks = testutils.NewTaskFactory()
	suite.teams = testutils.NewTeamFactory()
	suite.members = testutils.NewTeamMemberFactory()
	suite.comments = testutils.NewCommentFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *StoreTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *StoreTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *StoreTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *StoreTestSuite) mustCreateUser() *models.User {
	user := suite.users.Create()
	suite.NoError(suite.store.Users.Add(user))
	return user
}

func (suite *StoreTestSuite) mustCreateProject(ownerID uuid.UUID) *models.Project {
	project := suite.projects.Create(ownerID)
	suite.NoError(suite.store.Projects.Add(project))
	return project
}

func (suite *StoreTestSuite) TestTaskCRUDRoundTrip() {
	task := suite.tasks.Create()
	suite.NoError(suite.store.Tasks.Add(task))

	found, err := suite.store.Tasks.GetByID(task.ID)
	suite.NoError(err)
	suite.Equal(task.Title, found.Title)
	suite.Equal(models.TaskStatusPending, found.Status)

	found.Status = models.TaskStatusInProgress
	suite.NoError(suite.store.Tasks.Update(found))

	again, err := suite.store.Tasks.GetByID(task.ID)
	suite.NoError(err)
	suite.Equal(models.TaskStatusInProgress, again.Status)

	suite.NoError(suite.store.Tasks.Delete(found))

	_, err = suite.store.Tasks.GetByID(task.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *StoreTestSuite) TestGetByID_Missing() {
	_, err := suite.store.Users.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *StoreTestSuite) TestFind_FiltersByAssignment() {
	user := suite.mustCreateUser()
	other := suite.mustCreateUser()

	assigned := suite.tasks.WithAssignee(user.ID)
	suite.NoError(suite.store.Tasks.Add(assigned))

	otherTask := suite.tasks.WithAssignee(other.ID)
	suite.NoError(suite.store.Tasks.Add(otherTask))

	unassigned := suite.tasks.Create()
	suite.NoError(suite.store.Tasks.Add(unassigned))

	tasks, err := suite.store.Tasks.Find("assigned_to_id = ?", user.ID)
	suite.NoError(err)
	suite.Len(tasks, 1)
	suite.Equal(assigned.ID, tasks[0].ID)
}

func (suite *StoreTestSuite) TestUserUniqueConstraints() {
	user := suite.mustCreateUser()

	dupEmail := suite.users.Create()
	dupEmail.Email = user.Email
	suite.Error(suite.store.Users.Add(dupEmail))

	dupName := suite.users.Create()
	dupName.UserName = user.UserName
	suite.Error(suite.store.Users.Add(dupName))
}

func (suite *StoreTestSuite) TestTeamMembershipPairUnique() {
	user := suite.mustCreateUser()
	team := suite.teams.Create()
	suite.NoError(suite.store.Teams.Add(team))

	suite.NoError(suite.store.TeamMembers.Add(suite.members.Create(team.ID, user.ID)))
	suite.Error(suite.store.TeamMembers.Add(suite.members.Create(team.ID, user.ID)))
}

func (suite *StoreTestSuite) TestDeleteUser_ClearsTaskAssignment() {
	user := suite.mustCreateUser()
	task := suite.tasks.WithAssignee(user.ID)
	suite.NoError(suite.store.Tasks.Add(task))

	suite.NoError(suite.store.Users.Delete(user))

	found, err := suite.store.Tasks.GetByID(task.ID)
	suite.NoError(err)
	suite.Nil(found.AssignedToID)
}

func (suite *StoreTestSuite) TestDeleteProject_ClearsTaskReference() {
	owner := suite.mustCreateUser()
	project := suite.mustCreateProject(owner.ID)

	task := suite.tasks.WithProject(project.ID)
	suite.NoError(suite.store.Tasks.Add(task))

	suite.NoError(suite.store.Projects.Delete(project))

	found, err := suite.store.Tasks.GetByID(task.ID)
	suite.NoError(err)
	suite.Nil(found.ProjectID)
}

func (suite *StoreTestSuite) TestDeleteTeam_CascadesMemberships() {
	user := suite.mustCreateUser()
	team := suite.teams.Create()
	suite.NoError(suite.store.Teams.Add(team))
	suite.NoError(suite.store.TeamMembers.Add(suite.members.Create(team.ID, user.ID)))

	suite.NoError(suite.store.Teams.Delete(team))

	memberships, err := suite.store.TeamMembers.Find("team_id = ?", team.ID)
	suite.NoError(err)
	suite.Empty(memberships)
}

func (suite *StoreTestSuite) TestDeleteTask_CascadesComments() {
	user := suite.mustCreateUser()
	task := suite.tasks.Create()
	suite.NoError(suite.store.Tasks.Add(task))
	suite.NoError(suite.store.TaskComments.Add(suite.comments.Create(task.ID, user.ID)))

	suite.NoError(suite.store.Tasks.Delete(task))

	comments, err := suite.store.TaskComments.Find("task_id = ?", task.ID)
	suite.NoError(err)
	suite.Empty(comments)
}

func (suite *StoreTestSuite) TestDeleteUser_BlockedWhileOwningProject() {
	owner := suite.mustCreateUser()
	suite.mustCreateProject(owner.ID)

	suite.Error(suite.store.Users.Delete(owner))
}

func (suite *StoreTestSuite) TestSaveChanges_RollsBackOnError() {
	user := suite.users.Create()

	err := suite.uow.SaveChanges(func(store *Store) error {
		if err := store.Users.Add(user); err != nil {
			return err
		}
		// Second add violates the unique constraints and must abort the
		// whole transaction.
		dup := suite.users.Create()
		dup.Email = user.Email
		return store.Users.Add(dup)
	})
	suite.Error(err)

	_, err = suite.store.Users.GetByID(user.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *StoreTestSuite) TestSaveChanges_CommitsOnSuccess() {
	user := suite.users.Create()
	task := suite.tasks.Create()

	err := suite.uow.SaveChanges(func(store *Store) error {
		if err := store.Users.Add(user); err != nil {
			return err
		}
		task.AssignedToID = &user.ID
		return store.Tasks.Add(task)
	})
	suite.NoError(err)

	found, err := suite.store.Tasks.GetByID(task.ID)
	suite.NoError(err)
	suite.Equal(&user.ID, found.AssignedToID)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
