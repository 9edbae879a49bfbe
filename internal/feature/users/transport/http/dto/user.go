// Package dto defines data transfer objects for the users HTTP API.
package dto

import (
	tododto "todo_backend/internal/feature/todos/transport/http/dto"
	"todo_backend/internal/feature/users/domain/entity"
)

// UserCreateRequest is the body of POST /users/.
// Both fields must be present as strings; empty strings are accepted.
type UserCreateRequest struct {
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

// UserPath binds the {id} segment of /users/{id}.
type UserPath struct {
	ID uint `uri:"id"`
}

// UserResponse is the public shape of a user. The password hash is never exposed.
type UserResponse struct {
	ID    uint                   `json:"id"`
	Email string                 `json:"email"`
	Todos []tododto.TodoResponse `json:"todos"`
}

// NewUserResponse converts an entity into its response shape.
func NewUserResponse(u entity.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Todos: tododto.NewTodoList(u.Todos),
	}
}

// NewUserList converts users and never returns nil.
func NewUserList(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
