package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
	IsActive() bool
}

// BaseEntity provides common fields for all entities.
// Active implements the uniform soft-delete contract: rows are deactivated,
// never deleted, so financial history survives upstream removals.
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Active    bool
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// IsActive returns true if the entity has not been soft-deleted
func (e *BaseEntity) IsActive() bool {
	return e.Active
}

// Deactivate soft-deletes the entity
func (e *BaseEntity) Deactivate() {
	e.Active = false
	e.UpdatedAt = time.Now()
}

// Reactivate restores a soft-deleted entity
func (e *BaseEntity) Reactivate() {
	e.Active = true
	e.UpdatedAt = time.Now()
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Active:    true,
	}
}
