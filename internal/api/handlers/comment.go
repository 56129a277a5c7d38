package handlers

import (
	"errors"
	"net/http"

	apperrors "task-orchestrator-backend/internal/errors"
	"task-orchestrator-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommentHandler handles HTTP requests for task comment operations
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// GetTaskComments handles GET /tasks/:id/comments
// @Summary List comments on a task
// @Description Get all comments attached to the given task
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {array} service.CommentResponse "Successfully retrieved comments"
// @Failure 400 {object} map[string]interface{} "Invalid task ID"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tasks/{id}/comments [get]
func (h *CommentHandler) GetTaskComments(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task ID"})
		return
	}

	comments, err := h.commentService.GetByTaskID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// CreateTaskComment handles POST /tasks/:id/comments
// @Summary Add a comment to a task
// @Description Attach a new comment to the given task
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param comment body service.CreateCommentRequest true "Comment data"
// @Success 201 {object} service.CommentResponse "Successfully created comment"
// @Header 201 {string} Location "URL of the task comment collection"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Task not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tasks/{id}/comments [post]
func (h *CommentHandler) CreateTaskComment(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task ID"})
		return
	}

	var req service.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Create(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
		return
	}

	c.Header("Location", "/api/tasks/"+id.String()+"/comments")
	c.JSON(http.StatusCreated, comment)
}

// DeleteComment handles DELETE /comments/:id
// @Summary Delete comment
// @Description Delete a comment by ID
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID (UUID)"
// @Success 204 "Successfully deleted comment"
// @Failure 400 {object} map[string]interface{} "Invalid comment ID"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment ID"})
		return
	}

	if err := h.commentService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
