package testutils

import (
	"time"

	"task-orchestrator-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Username and email are
// derived from the generated ID so repeated calls never collide on the
// unique constraints.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	suffix := id.String()[:8]

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
		},
		UserName: "user-" + suffix,
		Email:    "user-" + suffix + "@test.com",
		FullName: "Test User",
		IsActive: true,
	}
}

// WithUserName sets a custom username for the user
func (f *UserFactory) WithUserName(name string) *models.User {
	user := f.Create()
	user.UserName = name
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithDepartment sets a department for the user
func (f *UserFactory) WithDepartment(department string) *models.User {
	user := f.Create()
	user.Department = &department
	return user
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project owned by the given user
func (f *ProjectFactory) Create(ownerID uuid.UUID) *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:        "Test Project",
		Description: "A project for testing purposes",
		StartDate:   time.Now().UTC(),
		IsActive:    true,
		OwnerID:     ownerID,
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(ownerID uuid.UUID, name string) *models.Project {
	project := f.Create(ownerID)
	project.Name = name
	return project
}

// TaskFactory provides methods to create test WorkTask data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test WorkTask with default values
func (f *TaskFactory) Create() *models.WorkTask {
	return &models.WorkTask{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Title:       "Test Task",
		Description: "A task for testing purposes",
		Status:      models.TaskStatusPending,
		Priority:    models.TaskPriorityMedium,
	}
}

// WithAssignee sets the assigned user for the task
func (f *TaskFactory) WithAssignee(userID uuid.UUID) *models.WorkTask {
	task := f.Create()
	task.AssignedToID = &userID
	return task
}

// WithProject sets the project for the task
func (f *TaskFactory) WithProject(projectID uuid.UUID) *models.WorkTask {
	task := f.Create()
	task.ProjectID = &projectID
	return task
}

// WithStatus sets a custom status for the task
func (f *TaskFactory) WithStatus(status models.TaskStatus) *models.WorkTask {
	task := f.Create()
	task.Status = status
	return task
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:        "Test Team",
		Description: "A team for testing purposes",
	}
}

// WithProject sets the owning project for the team
func (f *TeamFactory) WithProject(projectID uuid.UUID) *models.Team {
	team := f.Create()
	team.ProjectID = &projectID
	return team
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a membership linking the given team and user
func (f *TeamMemberFactory) Create(teamID, userID uuid.UUID) *models.TeamMember {
	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		TeamID: teamID,
		UserID: userID,
		Role:   "Member",
	}
}

// CommentFactory provides methods to create test TaskComment data
type CommentFactory struct{}

// NewCommentFactory creates a new CommentFactory
func NewCommentFactory() *CommentFactory {
	return &CommentFactory{}
}

// Create creates a comment on the given task authored by the given user
func (f *CommentFactory) Create(taskID, userID uuid.UUID) *models.TaskComment {
	return &models.TaskComment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		TaskID:  taskID,
		Content: "A test comment",
		UserID:  userID,
	}
}
