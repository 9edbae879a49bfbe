// Package entity defines the domain entities for the todos feature.
package entity

import "time"

// Todo is a task owned by exactly one user.
type Todo struct {
	// ID is the unique identifier for the todo.
	ID uint `gorm:"primaryKey"`

	// Title is the required short description of the task.
	Title string `gorm:"size:255;not null"`

	// Body is an optional longer description. Nil means no body was given.
	Body *string `gorm:"type:text"`

	// Completed reports whether the task is done.
	Completed bool `gorm:"not null;default:false"`

	// CreatedAt is assigned by GORM on every insert.
	CreatedAt time.Time

	// UpdatedAt is assigned by GORM on every insert and update.
	UpdatedAt time.Time

	// AuthorID references users.id. It is set at creation and never reassigned.
	AuthorID uint `gorm:"index;not null"`
}
