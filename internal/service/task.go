package service

import (
	"errors"
	"fmt"
	"time"

	"task-orchestrator-backend/internal/database/models"
	apperrors "task-orchestrator-backend/internal/errors"
	"task-orchestrator-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskService handles business logic for tasks
type TaskService struct {
	store     *repository.Store
	uow       *repository.UnitOfWork
	validator *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(store *repository.Store, uow *repository.UnitOfWork, validator *validator.Validate) *TaskService {
	return &TaskService{
		store:     store,
		uow:       uow,
		validator: validator,
	}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	Title        string              `json:"title" validate:"required,min=1,max=200"`
	Description  string              `json:"description,omitempty" validate:"max=2000"`
	Priority     models.TaskPriority `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High"`
	DueDate      *time.Time          `json:"due_date,omitempty"`
	AssignedToID *uuid.UUID          `json:"assigned_to_id,omitempty"`
	ProjectID    *uuid.UUID          `json:"project_id,omitempty"`
}

// UpdateTaskRequest represents a sparse task update. A nil field means
// "leave unchanged"; there is no way to explicitly clear an optional field
// through this payload.
type UpdateTaskRequest struct {
	Title        *string              `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string              `json:"description,omitempty" validate:"omitempty,max=2000"`
	Status       *models.TaskStatus   `json:"status,omitempty" validate:"omitempty,oneof=Pending InProgress Completed"`
	Priority     *models.TaskPriority `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High"`
	DueDate      *time.Time           `json:"due_date,omitempty"`
	AssignedToID *uuid.UUID           `json:"assigned_to_id,omitempty"`
	ProjectID    *uuid.UUID           `json:"project_id,omitempty"`
}

// TaskResponse represents the response for task operations
type TaskResponse struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Status       models.TaskStatus   `json:"status"`
	Priority     models.TaskPriority `json:"priority"`
	DueDate      *time.Time          `json:"due_date,omitempty"`
	AssignedToID *uuid.UUID          `json:"assigned_to_id,omitempty"`
	ProjectID    *uuid.UUID          `json:"project_id,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    *time.Time          `json:"updated_at,omitempty"`
}

// GetAll retrieves all tasks
func (s *TaskService) GetAll() ([]TaskResponse, error) {
	tasks, err := s.store.Tasks.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	return toTaskResponses(tasks), nil
}

// GetByID retrieves a task by ID
func (s *TaskService) GetByID(id uuid.UUID) (*TaskResponse, error) {
	task, err := s.store.Tasks.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return toTaskResponse(task), nil
}

// Create creates a new task. Referential integrity of the assignee and
// project references is enforced by the store at commit time.
func (s *TaskService) Create(req *CreateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	priority := req.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}

	task := &models.WorkTask{
		Title:        req.Title,
		Description:  req.Description,
		Status:       models.TaskStatusPending,
		Priority:     priority,
		DueDate:      req.DueDate,
		AssignedToID: req.AssignedToID,
		ProjectID:    req.ProjectID,
	}

	err := s.uow.SaveChanges(func(store *repository.Store) error {
		return store.Tasks.Add(task)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return toTaskResponse(task), nil
}

// Update applies a sparse patch to an existing task and refreshes its
// updated timestamp
func (s *TaskService) Update(id uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	var task *models.WorkTask
	err := s.uow.SaveChanges(func(store *repository.Store) error {
		existing, err := store.Tasks.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTaskNotFound
			}
			return err
		}

		applyTaskPatch(existing, req)
		now := time.Now().UTC()
		existing.UpdatedAt = &now

		if err := store.Tasks.Update(existing); err != nil {
			return err
		}
		task = existing
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return toTaskResponse(task), nil
}

// Delete removes a task by ID. Comments cascade in the store.
func (s *TaskService) Delete(id uuid.UUID) error {
	err := s.uow.SaveChanges(func(store *repository.Store) error {
		task, err := store.Tasks.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTaskNotFound
			}
			return err
		}
		return store.Tasks.Delete(task)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// GetByUserID retrieves the tasks assigned to a user
func (s *TaskService) GetByUserID(userID uuid.UUID) ([]TaskResponse, error) {
	tasks, err := s.store.Tasks.Find("assigned_to_id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks for user: %w", err)
	}
	return toTaskResponses(tasks), nil
}

// GetByProjectID retrieves the tasks belonging to a project
func (s *TaskService) GetByProjectID(projectID uuid.UUID) ([]TaskResponse, error) {
	tasks, err := s.store.Tasks.Find("project_id = ?", projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks for project: %w", err)
	}
	return toTaskResponses(tasks), nil
}

// applyTaskPatch merges the set fields of a sparse update into the entity
func applyTaskPatch(task *models.WorkTask, req *UpdateTaskRequest) {
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.AssignedToID != nil {
		task.AssignedToID = req.AssignedToID
	}
	if req.ProjectID != nil {
		task.ProjectID = req.ProjectID
	}
}

func toTaskResponse(task *models.WorkTask) *TaskResponse {
	return &TaskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Status:       task.Status,
		Priority:     task.Priority,
		DueDate:      task.DueDate,
		AssignedToID: task.AssignedToID,
		ProjectID:    task.ProjectID,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
}

func toTaskResponses(tasks []models.WorkTask) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *toTaskResponse(&tasks[i])
	}
	return responses
}
