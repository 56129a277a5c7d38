package models

// User represents a person that can own projects, be assigned tasks and
// belong to teams
type User struct {
	BaseModel
	UserName   string  `json:"user_name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Email      string  `json:"email" gorm:"uniqueIndex;not null;size:200" validate:"required,email,max=200"`
	FullName   string  `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Department *string `json:"department,omitempty" gorm:"size:100"`
	IsActive   bool    `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	AssignedTasks   []WorkTask   `json:"assigned_tasks,omitempty" gorm:"foreignKey:AssignedToID"`
	OwnedProjects   []Project    `json:"owned_projects,omitempty" gorm:"foreignKey:OwnerID"`
	TeamMemberships []TeamMember `json:"team_memberships,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
