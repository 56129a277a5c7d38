package handlers_test

import (
	"sync"

	"task-orchestrator-backend/internal/hub"
	"task-orchestrator-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// mockTaskService implements service.TaskServiceInterface
type mockTaskService struct {
	mock.Mock
}

func (m *mockTaskService) GetAll() ([]service.TaskResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.TaskResponse), args.Error(1)
}

func (m *mockTaskService) GetByID(id uuid.UUID) (*service.TaskResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TaskResponse), args.Error(1)
}

func (m *mockTaskService) Create(req *service.CreateTaskRequest) (*service.TaskResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TaskResponse), args.Error(1)
}

func (m *mockTaskService) Update(id uuid.UUID, req *service.UpdateTaskRequest) (*service.TaskResponse, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TaskResponse), args.Error(1)
}

func (m *mockTaskService) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockTaskService) GetByUserID(userID uuid.UUID) ([]service.TaskResponse, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.TaskResponse), args.Error(1)
}

func (m *mockTaskService) GetByProjectID(projectID uuid.UUID) ([]service.TaskResponse, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.TaskResponse), args.Error(1)
}

// mockTeamService implements service.TeamServiceInterface
type mockTeamService struct {
	mock.Mock
}

func (m *mockTeamService) GetAll() ([]service.TeamResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.TeamResponse), args.Error(1)
}

func (m *mockTeamService) GetByID(id uuid.UUID) (*service.TeamResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TeamResponse), args.Error(1)
}

func (m *mockTeamService) Create(req *service.CreateTeamRequest) (*service.TeamResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TeamResponse), args.Error(1)
}

func (m *mockTeamService) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockTeamService) GetMembers(teamID uuid.UUID) ([]service.TeamMemberResponse, error) {
	args := m.Called(teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.TeamMemberResponse), args.Error(1)
}

func (m *mockTeamService) AddMember(teamID uuid.UUID, req *service.AddTeamMemberRequest) (*service.TeamMemberResponse, error) {
	args := m.Called(teamID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TeamMemberResponse), args.Error(1)
}

func (m *mockTeamService) RemoveMember(teamID, userID uuid.UUID) error {
	args := m.Called(teamID, userID)
	return args.Error(0)
}

// mockProjectService implements service.ProjectServiceInterface
type mockProjectService struct {
	mock.Mock
}

func (m *mockProjectService) GetAll() ([]service.ProjectResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ProjectResponse), args.Error(1)
}

func (m *mockProjectService) GetByID(id uuid.UUID) (*service.ProjectResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectResponse), args.Error(1)
}

func (m *mockProjectService) Create(req *service.CreateProjectRequest) (*service.ProjectResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectResponse), args.Error(1)
}

func (m *mockProjectService) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

// mockUserService implements service.UserServiceInterface
type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) GetAll() ([]service.UserResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.UserResponse), args.Error(1)
}

func (m *mockUserService) GetByID(id uuid.UUID) (*service.UserResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UserResponse), args.Error(1)
}

func (m *mockUserService) Create(req *service.CreateUserRequest) (*service.UserResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UserResponse), args.Error(1)
}

func (m *mockUserService) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

// mockCommentService implements service.CommentServiceInterface
type mockCommentService struct {
	mock.Mock
}

func (m *mockCommentService) GetByTaskID(taskID uuid.UUID) ([]service.CommentResponse, error) {
	args := m.Called(taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.CommentResponse), args.Error(1)
}

func (m *mockCommentService) Create(taskID uuid.UUID, req *service.CreateCommentRequest) (*service.CommentResponse, error) {
	args := m.Called(taskID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CommentResponse), args.Error(1)
}

func (m *mockCommentService) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

// recordingPublisher captures broadcast events for assertions
type recordingPublisher struct {
	mu     sync.Mutex
	events []hub.Event
}

func (p *recordingPublisher) Broadcast(ev hub.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *recordingPublisher) Events() []hub.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]hub.Event, len(p.events))
	copy(out, p.events)
	return out
}
