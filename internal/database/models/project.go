package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a project owned by a user. The owner reference is
// restricted on delete: a user cannot be removed while still owning projects.
type Project struct {
	BaseModel
	Name        string     `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string     `json:"description" gorm:"size:2000" validate:"max=2000"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsActive    bool       `json:"is_active" gorm:"not null;default:true"`
	OwnerID     uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Owner User       `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
	Tasks []WorkTask `json:"tasks,omitempty" gorm:"foreignKey:ProjectID"`
	Teams []Team     `json:"teams,omitempty" gorm:"foreignKey:ProjectID"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
