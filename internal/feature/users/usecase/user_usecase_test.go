package usecase_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"todo_backend/internal/feature/users/domain/entity"
	"todo_backend/internal/feature/users/usecase"
	"todo_backend/internal/shared/pagination"
)

// sha256Hex mirrors the digest CreateUser feeds into bcrypt.
func sha256Hex(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}

// mockUserRepository はUserRepositoryインターフェースのモック実装です。
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	ListFunc        func(ctx context.Context, skip, limit int) ([]entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, usecase.ErrUserNotFound
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, usecase.ErrUserNotFound
}

func (m *mockUserRepository) List(ctx context.Context, skip, limit int) ([]entity.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, skip, limit)
	}
	return nil, nil
}

func TestUserUsecase_CreateUser(t *testing.T) {
	t.Run("success: stores a bcrypt hash of the password", func(t *testing.T) {
		var stored *entity.User
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				user.ID = 1
				stored = user
				return nil
			},
		}
		uc := usecase.NewUserUsecase(repo)

		user, err := uc.CreateUser(context.Background(), "a@x.com", "p")

		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.Equal(t, "a@x.com", user.Email)
		require.NotNil(t, stored)
		assert.NotEqual(t, "p", stored.HashedPassword, "password must not be stored as given")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), sha256Hex("p")))
	})

	t.Run("failure: email found by pre-check", func(t *testing.T) {
		createCalled := false
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 7, Email: email}, nil
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				createCalled = true
				return nil
			},
		}
		uc := usecase.NewUserUsecase(repo)

		user, err := uc.CreateUser(context.Background(), "taken@x.com", "p")

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyRegistered)
		assert.Nil(t, user)
		assert.False(t, createCalled, "create must not run when the email is taken")
	})

	t.Run("failure: unique constraint wins a race with the pre-check", func(t *testing.T) {
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return usecase.ErrEmailAlreadyRegistered
			},
		}
		uc := usecase.NewUserUsecase(repo)

		user, err := uc.CreateUser(context.Background(), "race@x.com", "p")

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyRegistered)
		assert.Nil(t, user)
	})

	t.Run("failure: pre-check storage error is propagated", func(t *testing.T) {
		dbErr := errors.New("database connection failed")
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, dbErr
			},
		}
		uc := usecase.NewUserUsecase(repo)

		_, err := uc.CreateUser(context.Background(), "a@x.com", "p")

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("success: passwords of any length are accepted", func(t *testing.T) {
		passwords := map[string]string{
			"empty":    "",
			"72 bytes": strings.Repeat("x", 72),
			"73 bytes": strings.Repeat("x", 73),
			"1 KiB":    strings.Repeat("y", 1024),
		}
		for name, pw := range passwords {
			t.Run(name, func(t *testing.T) {
				var stored *entity.User
				repo := &mockUserRepository{
					CreateFunc: func(ctx context.Context, user *entity.User) error {
						stored = user
						return nil
					},
				}
				uc := usecase.NewUserUsecase(repo)

				_, err := uc.CreateUser(context.Background(), "a@x.com", pw)

				require.NoError(t, err)
				require.NotNil(t, stored)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), sha256Hex(pw)))
			})
		}
	})

	t.Run("success: long passwords differing after byte 72 get different hashes", func(t *testing.T) {
		var stored *entity.User
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				stored = user
				return nil
			},
		}
		uc := usecase.NewUserUsecase(repo)
		prefix := strings.Repeat("x", 72)

		_, err := uc.CreateUser(context.Background(), "a@x.com", prefix+"a")
		require.NoError(t, err)

		assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), sha256Hex(prefix+"b")))
	})
}

func TestUserUsecase_GetUser(t *testing.T) {
	tests := []struct {
		name    string
		find    func(ctx context.Context, id uint) (*entity.User, error)
		wantErr error
	}{
		{
			name: "success: returns user",
			find: func(ctx context.Context, id uint) (*entity.User, error) {
				return &entity.User{ID: id, Email: "a@x.com"}, nil
			},
		},
		{
			name: "failure: not found",
			find: func(ctx context.Context, id uint) (*entity.User, error) {
				return nil, usecase.ErrUserNotFound
			},
			wantErr: usecase.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewUserUsecase(&mockUserRepository{FindByIDFunc: tt.find})

			user, err := uc.GetUser(context.Background(), 3)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(3), user.ID)
		})
	}
}

func TestUserUsecase_GetUserByEmail(t *testing.T) {
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			if email == "a@x.com" {
				return &entity.User{ID: 1, Email: email}, nil
			}
			return nil, usecase.ErrUserNotFound
		},
	}
	uc := usecase.NewUserUsecase(repo)

	user, err := uc.GetUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	_, err = uc.GetUserByEmail(context.Background(), "b@x.com")
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}

func TestUserUsecase_ListUsers(t *testing.T) {
	tests := []struct {
		name      string
		skip      int
		limit     int
		wantSkip  int
		wantLimit int
	}{
		{name: "passes through valid paging", skip: 2, limit: 5, wantSkip: 2, wantLimit: 5},
		{name: "normalizes negative paging", skip: -1, limit: -1, wantSkip: 0, wantLimit: pagination.DefaultLimit},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var gotSkip, gotLimit int
			repo := &mockUserRepository{
				ListFunc: func(ctx context.Context, skip, limit int) ([]entity.User, error) {
					gotSkip, gotLimit = skip, limit
					return []entity.User{{ID: 1}}, nil
				},
			}
			uc := usecase.NewUserUsecase(repo)

			users, err := uc.ListUsers(context.Background(), tt.skip, tt.limit)

			require.NoError(t, err)
			assert.Len(t, users, 1)
			assert.Equal(t, tt.wantSkip, gotSkip)
			assert.Equal(t, tt.wantLimit, gotLimit)
		})
	}
}
