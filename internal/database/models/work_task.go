package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// WorkTask represents a unit of work, optionally assigned to a user and
// attached to a project. Both references are cleared (not cascaded) when the
// referenced row is deleted.
type WorkTask struct {
	BaseModel
	Title        string       `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description  string       `json:"description" gorm:"size:2000" validate:"max=2000"`
	Status       TaskStatus   `json:"status" gorm:"type:varchar(50);not null;default:'Pending'"`
	Priority     TaskPriority `json:"priority" gorm:"type:varchar(50);not null;default:'Medium'"`
	DueDate      *time.Time   `json:"due_date,omitempty"`
	AssignedToID *uuid.UUID   `json:"assigned_to_id,omitempty" gorm:"type:uuid;index"`
	ProjectID    *uuid.UUID   `json:"project_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	AssignedTo *User         `json:"assigned_to,omitempty" gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL"`
	Project    *Project      `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`
	Comments   []TaskComment `json:"comments,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for WorkTask
func (WorkTask) TableName() string {
	return "tasks"
}
