// Package usecase implements the business logic for todo operations.
package usecase

import (
	"context"

	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/shared/pagination"
)

// TodoRepository abstracts the persistence layer for todos.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TodoRepository interface {
	// Create persists a new todo and fills its generated fields.
	Create(ctx context.Context, todo *entity.Todo) error

	// List returns at most limit todos after skipping skip rows.
	List(ctx context.Context, skip, limit int) ([]entity.Todo, error)
}

// TodoUsecase provides business logic for todo operations.
type TodoUsecase struct {
	repo TodoRepository
}

// NewTodoUsecase creates a new TodoUsecase with the given repository.
func NewTodoUsecase(r TodoRepository) *TodoUsecase {
	return &TodoUsecase{repo: r}
}

// CreateUserTodo creates a todo authored by userID.
// The author is not looked up first; a missing user surfaces as the store's foreign key error.
func (u *TodoUsecase) CreateUserTodo(ctx context.Context, userID uint, title string, body *string) (*entity.Todo, error) {
	todo := &entity.Todo{
		Title:    title,
		Body:     body,
		AuthorID: userID,
	}
	if err := u.repo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// ListTodos returns a page of todos across all users.
func (u *TodoUsecase) ListTodos(ctx context.Context, skip, limit int) ([]entity.Todo, error) {
	skip, limit = pagination.Normalize(skip, limit)
	return u.repo.List(ctx, skip, limit)
}
