package service

import (
	"github.com/google/uuid"
)

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	GetAll() ([]TaskResponse, error)
	GetByID(id uuid.UUID) (*TaskResponse, error)
	Create(req *CreateTaskRequest) (*TaskResponse, error)
	Update(id uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error)
	Delete(id uuid.UUID) error
	GetByUserID(userID uuid.UUID) ([]TaskResponse, error)
	GetByProjectID(projectID uuid.UUID) ([]TaskResponse, error)
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	GetAll() ([]ProjectResponse, error)
	GetByID(id uuid.UUID) (*ProjectResponse, error)
	Create(req *CreateProjectRequest) (*ProjectResponse, error)
	Delete(id uuid.UUID) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetAll() ([]UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	Create(req *CreateUserRequest) (*UserResponse, error)
	Delete(id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	GetAll() ([]TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
	GetMembers(teamID uuid.UUID) ([]TeamMemberResponse, error)
	AddMember(teamID uuid.UUID, req *AddTeamMemberRequest) (*TeamMemberResponse, error)
	RemoveMember(teamID, userID uuid.UUID) error
}

// CommentServiceInterface defines the interface for comment service
type CommentServiceInterface interface {
	GetByTaskID(taskID uuid.UUID) ([]CommentResponse, error)
	Create(taskID uuid.UUID, req *CreateCommentRequest) (*CommentResponse, error)
	Delete(id uuid.UUID) error
}
