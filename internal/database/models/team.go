package models

import (
	"github.com/google/uuid"
)

// Team represents a group of users, optionally attached to a project. The
// project reference is cleared when the project is deleted.
type Team struct {
	BaseModel
	Name        string     `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string     `json:"description" gorm:"size:2000" validate:"max=2000"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Project *Project     `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
