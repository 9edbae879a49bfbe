package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"todo_backend/internal/feature/users/domain/entity"
	"todo_backend/internal/shared/pagination"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user and fills its generated fields.
	// It returns ErrEmailAlreadyRegistered when the email unique constraint rejects the row.
	Create(ctx context.Context, user *entity.User) error

	// FindByID returns the user with its todos, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail returns the user with the given email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns at most limit users after skipping skip rows.
	List(ctx context.Context, skip, limit int) ([]entity.User, error)
}

// UserUsecase provides business logic for user operations.
type UserUsecase struct {
	users    UserRepository
	hashCost int
}

// NewUserUsecase creates a new UserUsecase with the given repository.
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users, hashCost: bcrypt.DefaultCost}
}

// passwordDigest folds a password of any length into 64 hex bytes,
// which stays under bcrypt's 72-byte input limit.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}

// CreateUser registers a new user. The stored hash is bcrypt over the
// hex SHA-256 digest of password, so passwords of any length are accepted.
//
// The email lookup is only a fast path. Two concurrent signups can both pass it,
// so the unique index is what actually enforces uniqueness and the repository
// reports that case as ErrEmailAlreadyRegistered as well.
func (u *UserUsecase) CreateUser(ctx context.Context, email, password string) (*entity.User, error) {
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword(passwordDigest(password), u.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, HashedPassword: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser returns the user with the given ID together with their todos.
func (u *UserUsecase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// GetUserByEmail returns the user registered under email.
func (u *UserUsecase) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return u.users.FindByEmail(ctx, email)
}

// ListUsers returns a page of users.
func (u *UserUsecase) ListUsers(ctx context.Context, skip, limit int) ([]entity.User, error) {
	skip, limit = pagination.Normalize(skip, limit)
	return u.users.List(ctx, skip, limit)
}
