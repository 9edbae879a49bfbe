// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	todoadapters "todo_backend/internal/feature/todos/adapters"
	todousecase "todo_backend/internal/feature/todos/usecase"
	useradapters "todo_backend/internal/feature/users/adapters"
	userusecase "todo_backend/internal/feature/users/usecase"
	"todo_backend/internal/platform/cache"
)

const userCacheNamespace = "users"

// NewUserRepository creates a UserRepository implementation.
// If Redis is available, reads by id go through a Redis cache.
// Otherwise, it uses the database directly.
func NewUserRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) userusecase.UserRepository {
	repo := useradapters.NewUserGorm(db)
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, ttl, repo, userCacheNamespace)
	}
	return repo
}

// NewTodoRepository creates a TodoRepository implementation.
// With Redis, creating a todo evicts the author's cached user entry.
func NewTodoRepository(rdb *redis.Client, db *gorm.DB) todousecase.TodoRepository {
	repo := todoadapters.NewTodoGorm(db)
	if rdb != nil {
		return cache.NewCachingTodoRepository(rdb, repo, userCacheNamespace)
	}
	return repo
}
