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

// CommentService handles business logic for task comments
type CommentService struct {
	store     *repository.Store
	uow       *repository.UnitOfWork
	validator *validator.Validate
}

// NewCommentService creates a new comment service
func NewCommentService(store *repository.Store, uow *repository.UnitOfWork, validator *validator.Validate) *CommentService {
	return &CommentService{
		store:     store,
		uow:       uow,
		validator: validator,
	}
}

// CreateCommentRequest represents the request to comment on a task
type CreateCommentRequest struct {
	Content string    `json:"content" validate:"required,min=1,max=1000"`
	UserID  uuid.UUID `json:"user_id" validate:"required"`
}

// CommentResponse represents the response for comment operations
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	TaskID    uuid.UUID `json:"task_id"`
	Content   string    `json:"content"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// GetByTaskID retrieves the comments of a task
func (s *CommentService) GetByTaskID(taskID uuid.UUID) ([]CommentResponse, error) {
	if _, err := s.store.Tasks.GetByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to verify task: %w", err)
	}

	comments, err := s.store.TaskComments.Find("task_id = ?", taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	responses := make([]CommentResponse, len(comments))
	for i := range comments {
		responses[i] = *toCommentResponse(&comments[i])
	}
	return responses, nil
}

// Create adds a comment to a task
func (s *CommentService) Create(taskID uuid.UUID, req *CreateCommentRequest) (*CommentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	comment := &models.TaskComment{
		TaskID:  taskID,
		Content: req.Content,
		UserID:  req.UserID,
	}

	err := s.uow.SaveChanges(func(store *repository.Store) error {
		if _, err := store.Tasks.GetByID(taskID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTaskNotFound
			}
			return err
		}
		return store.TaskComments.Add(comment)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return toCommentResponse(comment), nil
}

// Delete removes a comment by ID
func (s *CommentService) Delete(id uuid.UUID) error {
	err := s.uow.SaveChanges(func(store *repository.Store) error {
		comment, err := store.TaskComments.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCommentNotFound
			}
			return err
		}
		return store.TaskComments.Delete(comment)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrCommentNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func toCommentResponse(comment *models.TaskComment) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		Content:   comment.Content,
		UserID:    comment.UserID,
		CreatedAt: comment.CreatedAt,
	}
}
