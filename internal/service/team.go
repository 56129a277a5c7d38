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

// TeamService handles business logic for teams and team memberships
type TeamService struct {
	store     *repository.Store
	uow       *repository.UnitOfWork
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(store *repository.Store, uow *repository.UnitOfWork, validator *validator.Validate) *TeamService {
	return &TeamService{
		store:     store,
		uow:       uow,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=200"`
	Description string     `json:"description,omitempty" validate:"max=2000"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
}

// AddTeamMemberRequest represents the request to add a user to a team
type AddTeamMemberRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role,omitempty" validate:"max=100"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// TeamMemberResponse represents a team membership
type TeamMemberResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// GetAll retrieves all teams
func (s *TeamService) GetAll() ([]TeamResponse, error) {
	teams, err := s.store.Teams.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	return toTeamResponses(teams), nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.store.Teams.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return toTeamResponse(team), nil
}

// Create creates a new team
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
		ProjectID:   req.ProjectID,
	}

	err := s.uow.SaveChanges(func(store *repository.Store) error {
		return store.Teams.Add(team)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return toTeamResponse(team), nil
}

// Delete removes a team by ID. Memberships cascade in the store.
func (s *TeamService) Delete(id uuid.UUID) error {
	err := s.uow.SaveChanges(func(store *repository.Store) error {
		team, err := store.Teams.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamNotFound
			}
			return err
		}
		return store.Teams.Delete(team)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// GetMembers retrieves the memberships of a team
func (s *TeamService) GetMembers(teamID uuid.UUID) ([]TeamMemberResponse, error) {
	if _, err := s.store.Teams.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	members, err := s.store.TeamMembers.Find("team_id = ?", teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	responses := make([]TeamMemberResponse, len(members))
	for i := range members {
		responses[i] = *toTeamMemberResponse(&members[i])
	}
	return responses, nil
}

// AddMember adds a user to a team. The (team, user) pair is unique.
func (s *TeamService) AddMember(teamID uuid.UUID, req *AddTeamMemberRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	role := req.Role
	if role == "" {
		role = "Member"
	}

	member := &models.TeamMember{
		TeamID: teamID,
		UserID: req.UserID,
		Role:   role,
	}

	err := s.uow.SaveChanges(func(store *repository.Store) error {
		if _, err := store.Teams.GetByID(teamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamNotFound
			}
			return err
		}
		if _, err := store.Users.GetByID(req.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return err
		}

		existing, err := store.TeamMembers.Find("team_id = ? AND user_id = ?", teamID, req.UserID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return apperrors.ErrTeamMemberExists
		}

		return store.TeamMembers.Add(member)
	})
	if err != nil {
		if apperrors.IsNotFound(err) || apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}

	return toTeamMemberResponse(member), nil
}

// RemoveMember removes a user from a team
func (s *TeamService) RemoveMember(teamID, userID uuid.UUID) error {
	err := s.uow.SaveChanges(func(store *repository.Store) error {
		members, err := store.TeamMembers.Find("team_id = ? AND user_id = ?", teamID, userID)
		if err != nil {
			return err
		}
		if len(members) == 0 {
			return apperrors.ErrTeamMemberNotFound
		}
		return store.TeamMembers.Delete(&members[0])
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamMemberNotFound) {
			return err
		}
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	return nil
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		ProjectID:   team.ProjectID,
		CreatedAt:   team.CreatedAt,
		UpdatedAt:   team.UpdatedAt,
	}
}

func toTeamResponses(teams []models.Team) []TeamResponse {
	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i])
	}
	return responses
}

func toTeamMemberResponse(member *models.TeamMember) *TeamMemberResponse {
	return &TeamMemberResponse{
		ID:        member.ID,
		TeamID:    member.TeamID,
		UserID:    member.UserID,
		Role:      member.Role,
		CreatedAt: member.CreatedAt,
	}
}
