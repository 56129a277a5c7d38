package repository

import (
	"task-orchestrator-backend/internal/database/models"

	"gorm.io/gorm"
)

// Store bundles the typed repositories over one database handle. A Store
// built over the base handle serves reads; mutations go through UnitOfWork
// so they share a single commit point.
type Store struct {
	Users        *Repository[models.User]
	Projects     *Repository[models.Project]
	Tasks        *Repository[models.WorkTask]
	TaskComments *Repository[models.TaskComment]
	Teams        *Repository[models.Team]
	TeamMembers  *Repository[models.TeamMember]
}

// NewStore creates a store over the given handle
func NewStore(db *gorm.DB) *Store {
	return &Store{
		Users:        NewRepository[models.User](db),
		Projects:     NewRepository[models.Project](db),
		Tasks:        NewRepository[models.WorkTask](db),
		TaskComments: NewRepository[models.TaskComment](db),
		Teams:        NewRepository[models.Team](db),
		TeamMembers:  NewRepository[models.TeamMember](db),
	}
}

// UnitOfWork groups repository calls behind a single atomic commit. Nothing
// is durable until the closure returns nil; constraint violations surface
// from SaveChanges, not from the individual repository calls.
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a unit of work over the base database handle
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// SaveChanges runs fn inside one transaction. The Store passed to fn is
// bound to the transaction; returning an error rolls everything back.
func (u *UnitOfWork) SaveChanges(fn func(*Store) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
