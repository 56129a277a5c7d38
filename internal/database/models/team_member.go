package models

import (
	"github.com/google/uuid"
)

// TeamMember links a user to a team with a role label. A user can belong to a
// team at most once; deleting the team or the user removes the membership.
type TeamMember struct {
	BaseModel
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user" validate:"required"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user" validate:"required"`
	Role   string    `json:"role" gorm:"not null;size:100;default:'Member'" validate:"max=100"`

	// Relationships
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
