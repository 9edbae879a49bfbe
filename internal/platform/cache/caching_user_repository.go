// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	todoentity "todo_backend/internal/feature/todos/domain/entity"
	todousecase "todo_backend/internal/feature/todos/usecase"
	"todo_backend/internal/feature/users/domain/entity"
	userusecase "todo_backend/internal/feature/users/usecase"
)

const (
	defaultTTL       = 5 * time.Minute
	defaultNamespace = "users"
)

// userKey is the cache key for a single user, shared by both decorators
// so that todo writes can invalidate the owning user's entry.
func userKey(namespace string, id uint) string {
	return fmt.Sprintf("%s:%d", namespace, id)
}

func withDefaults(ttl time.Duration, namespace string) (time.Duration, string) {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return ttl, namespace
}

// CachingUserRepository decorates a UserRepository with a Redis read-through cache
// for FindByID. All other methods go straight to the inner repository.
type CachingUserRepository struct {
	inner     userusecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ userusecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
// A nil rdb disables caching.
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner userusecase.UserRepository, namespace string) *CachingUserRepository {
	ttl, namespace = withDefaults(ttl, namespace)
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create delegates to the inner repository. A new user has no cache entry to invalidate.
func (c *CachingUserRepository) Create(ctx context.Context, user *entity.User) error {
	return c.inner.Create(ctx, user)
}

// FindByID checks the cache first, then falls back to the inner repository.
// Lookup errors, including ErrUserNotFound, are never cached.
// A user served from the cache has an empty HashedPassword.
func (c *CachingUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := userKey(c.namespace, id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.User
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// FindByEmail delegates to the inner repository.
func (c *CachingUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return c.inner.FindByEmail(ctx, email)
}

// List delegates to the inner repository.
func (c *CachingUserRepository) List(ctx context.Context, skip, limit int) ([]entity.User, error) {
	return c.inner.List(ctx, skip, limit)
}

// CachingTodoRepository decorates a TodoRepository so that creating a todo
// evicts the author's cached user entry, whose todo list just changed.
type CachingTodoRepository struct {
	inner     todousecase.TodoRepository
	rdb       *redis.Client
	namespace string
}

var _ todousecase.TodoRepository = (*CachingTodoRepository)(nil)

// NewCachingTodoRepository wraps inner. namespace must match the one given to
// NewCachingUserRepository; empty means "users".
func NewCachingTodoRepository(rdb *redis.Client, inner todousecase.TodoRepository, namespace string) *CachingTodoRepository {
	_, namespace = withDefaults(0, namespace)
	return &CachingTodoRepository{inner: inner, rdb: rdb, namespace: namespace}
}

// Create inserts the todo and invalidates the author's cache entry.
func (c *CachingTodoRepository) Create(ctx context.Context, todo *todoentity.Todo) error {
	if err := c.inner.Create(ctx, todo); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	_ = c.rdb.Del(ctx, userKey(c.namespace, todo.AuthorID)).Err() // Best effort
	return nil
}

// List delegates to the inner repository.
func (c *CachingTodoRepository) List(ctx context.Context, skip, limit int) ([]todoentity.Todo, error) {
	return c.inner.List(ctx, skip, limit)
}
