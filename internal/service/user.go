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

// UserService handles business logic for users
type UserService struct {
	store     *repository.Store
	uow       *repository.UnitOfWork
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(store *repository.Store, uow *repository.UnitOfWork, validator *validator.Validate) *UserService {
	return &UserService{
		store:     store,
		uow:       uow,
		validator: validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	UserName   string  `json:"user_name" validate:"required,min=1,max=100"`
	Email      string  `json:"email" validate:"required,email,max=200"`
	FullName   string  `json:"full_name" validate:"required,max=200"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=100"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserName   string     `json:"user_name"`
	Email      string     `json:"email"`
	FullName   string     `json:"full_name"`
	Department *string    `json:"department,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// GetAll retrieves all users
func (s *UserService) GetAll() ([]UserResponse, error) {
	users, err := s.store.Users.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return toUserResponses(users), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.store.Users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserResponse(user), nil
}

// Create creates a new user. Username and email uniqueness is enforced by
// the store at commit time; there is no pre-check here.
func (s *UserService) Create(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	user := &models.User{
		UserName:   req.UserName,
		Email:      req.Email,
		FullName:   req.FullName,
		Department: req.Department,
		IsActive:   true,
	}

	err := s.uow.SaveChanges(func(store *repository.Store) error {
		return store.Users.Add(user)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(user), nil
}

// Delete removes a user by ID. Task assignments are cleared and team
// memberships cascade in the store; deletion fails while the user still
// owns a project.
func (s *UserService) Delete(id uuid.UUID) error {
	err := s.uow.SaveChanges(func(store *repository.Store) error {
		user, err := store.Users.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return err
		}
		return store.Users.Delete(user)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:         user.ID,
		UserName:   user.UserName,
		Email:      user.Email,
		FullName:   user.FullName,
		Department: user.Department,
		IsActive:   user.IsActive,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func toUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}
	return responses
}
