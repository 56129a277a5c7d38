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

// ProjectService handles business logic for projects
type ProjectService struct {
	store     *repository.Store
	uow       *repository.UnitOfWork
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(store *repository.Store, uow *repository.UnitOfWork, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		store:     store,
		uow:       uow,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=200"`
	Description string     `json:"description,omitempty" validate:"max=2000"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	OwnerID     uuid.UUID  `json:"owner_id" validate:"required"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsActive    bool       `json:"is_active"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// GetAll retrieves all projects
func (s *ProjectService) GetAll() ([]ProjectResponse, error) {
	projects, err := s.store.Projects.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	return toProjectResponses(projects), nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.store.Projects.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return toProjectResponse(project), nil
}

// Create creates a new project. The owner reference is enforced by the
// store's foreign key at commit time; there is no pre-check here.
func (s *ProjectService) Create(req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	startDate := time.Now().UTC()
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     req.EndDate,
		IsActive:    true,
		OwnerID:     req.OwnerID,
	}

	err := s.uow.SaveChanges(func(store *repository.Store) error {
		return store.Projects.Add(project)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return toProjectResponse(project), nil
}

// Delete removes a project by ID. Task and team references to it are
// cleared by the store, not cascaded.
func (s *ProjectService) Delete(id uuid.UUID) error {
	err := s.uow.SaveChanges(func(store *repository.Store) error {
		project, err := store.Projects.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return err
		}
		return store.Projects.Delete(project)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func toProjectResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		IsActive:    project.IsActive,
		OwnerID:     project.OwnerID,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

func toProjectResponses(projects []models.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *toProjectResponse(&projects[i])
	}
	return responses
}
