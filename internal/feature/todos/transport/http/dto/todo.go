// Package dto defines data transfer objects for the todos HTTP API.
package dto

import (
	"time"

	"todo_backend/internal/feature/todos/domain/entity"
)

// TodoCreateRequest is the body of POST /users/{id}/todos/.
// title must be present but may be empty.
type TodoCreateRequest struct {
	Title *string `json:"title" binding:"required"`
	Body  *string `json:"body"`
}

// AuthorPath binds the {id} segment of /users/{id}/todos/.
type AuthorPath struct {
	UserID uint `uri:"id"`
}

// TodoResponse is the public shape of a todo.
type TodoResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Body      *string   `json:"body"`
	Completed bool      `json:"completed"`
	AuthorID  uint      `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTodoResponse converts an entity into its response shape.
func NewTodoResponse(t entity.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Body:      t.Body,
		Completed: t.Completed,
		AuthorID:  t.AuthorID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// NewTodoList converts todos and never returns nil, so an empty list encodes as [].
func NewTodoList(todos []entity.Todo) []TodoResponse {
	out := make([]TodoResponse, 0, len(todos))
	for _, t := range todos {
		out = append(out, NewTodoResponse(t))
	}
	return out
}
