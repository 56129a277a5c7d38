package models

import (
	"github.com/google/uuid"
)

// TaskComment represents a free-text comment on a task. Comments are removed
// together with their task.
type TaskComment struct {
	BaseModel
	TaskID  uuid.UUID `json:"task_id" gorm:"type:uuid;not null;index" validate:"required"`
	Content string    `json:"content" gorm:"not null;size:1000" validate:"required,min=1,max=1000"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Task WorkTask `json:"task,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TaskComment
func (TaskComment) TableName() string {
	return "task_comments"
}
