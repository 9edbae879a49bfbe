// Package adapters はtodosフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/usecase"
)

// todoGorm はTodoRepositoryインターフェースのGORM実装です。
type todoGorm struct {
	db *gorm.DB
}

var _ usecase.TodoRepository = (*todoGorm)(nil)

// NewTodoGorm は指定されたDB接続でtodoGormリポジトリの新しいインスタンスを生成します。
func NewTodoGorm(db *gorm.DB) *todoGorm {
	return &todoGorm{db: db}
}

// Create はtodoを挿入し、ID・既定値・タイムスタンプを t に反映します。
func (r *todoGorm) Create(ctx context.Context, t *entity.Todo) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create todo for user %d: %w", t.AuthorID, err)
	}
	return nil
}

// List はID順にskip件を読み飛ばし、最大limit件のtodoを返します。
func (r *todoGorm) List(ctx context.Context, skip, limit int) ([]entity.Todo, error) {
	var todos []entity.Todo
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&todos).Error; err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}
