// Package entity defines the domain entities for the users feature.
package entity

import (
	"time"

	todoentity "todo_backend/internal/feature/todos/domain/entity"
)

// User represents a registered user and the todos they authored.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// HashedPassword is the bcrypt hash of the password given at signup.
	// It is never serialized, so cached copies of a user do not carry it.
	HashedPassword string `gorm:"size:255;not null" json:"-"`

	// Todos are the todos whose AuthorID points at this user.
	// Deleting a user is not supported, so no cascade is configured.
	Todos []todoentity.Todo `gorm:"foreignKey:AuthorID"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
