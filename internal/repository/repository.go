package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository provides generic CRUD access for a single entity type.
// Errors from the underlying store pass through untranslated; callers map
// gorm.ErrRecordNotFound to domain errors.
type Repository[T any] struct {
	db *gorm.DB
}

// NewRepository creates a repository bound to the given database handle,
// which may be a transaction.
func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// GetAll retrieves every entity of the type
func (r *Repository[T]) GetAll() ([]T, error) {
	var entities []T
	if err := r.db.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// GetByID retrieves an entity by its UUID
func (r *Repository[T]) GetByID(id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.First(&entity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// Add persists a new entity, assigning its identity
func (r *Repository[T]) Add(entity *T) error {
	return r.db.Create(entity).Error
}

// Update replaces the mutable fields of a previously fetched entity
func (r *Repository[T]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

// Delete removes an entity by identity
func (r *Repository[T]) Delete(entity *T) error {
	return r.db.Delete(entity).Error
}

// Find retrieves entities matching an ad-hoc condition, e.g.
// Find("assigned_to_id = ?", userID)
func (r *Repository[T]) Find(query interface{}, args ...interface{}) ([]T, error) {
	var entities []T
	if err := r.db.Where(query, args...).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}
