// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/api"
	"todo_backend/internal/feature/users/domain/entity"
	"todo_backend/internal/feature/users/transport/http/dto"
	"todo_backend/internal/feature/users/usecase"
	"todo_backend/internal/platform/logger"
	"todo_backend/internal/shared/pagination"
)

// UserUsecase はユーザー操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	CreateUser(ctx context.Context, email, password string) (*entity.User, error)
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	ListUsers(ctx context.Context, skip, limit int) ([]entity.User, error)
}

// UserHandler はユーザー操作のHTTPリクエストを処理します。
type UserHandler struct {
	uc  UserUsecase
	log *logger.Logger
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(uc UserUsecase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// Create はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - メールアドレス重複時は409を返却
// - 成功時は作成したユーザーと200を返却
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UserCreateRequest  true  "email and password"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  api.ErrorResponse
// @Failure      409   {object}  api.ErrorResponse
// @Failure      500   {object}  api.ErrorResponse
// @Router       /users/ [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnw("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	email := *req.Email
	user, err := h.uc.CreateUser(c.Request.Context(), email, *req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyRegistered) {
			h.log.Infow("email already registered", "email", email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Email already registered"})
			return
		}
		h.log.Errorw("create user failed", "error", err, "email", email)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}

	h.log.Infow("user created", "user_id", user.ID, "email", user.Email)
	c.JSON(http.StatusOK, dto.NewUserResponse(*user))
}

// List はユーザー一覧を skip / limit でページングして返します。
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        skip   query     int  false  "rows to skip"  default(0)
// @Param        limit  query     int  false  "max rows"      default(100)
// @Success      200    {array}   dto.UserResponse
// @Failure      400    {object}  api.ErrorResponse
// @Failure      500    {object}  api.ErrorResponse
// @Router       /users/ [get]
func (h *UserHandler) List(c *gin.Context) {
	var q pagination.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	users, err := h.uc.ListUsers(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		h.log.Errorw("list users failed", "error", err, "skip", q.Skip, "limit", q.Limit)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserList(users))
}

// Get はIDで指定したユーザーを作成済みtodoと共に返します。
// ユーザーが存在しない場合は404を返します。
//
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "user id"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	var p dto.UserPath
	if err := c.ShouldBindUri(&p); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.uc.GetUser(c.Request.Context(), p.ID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
			return
		}
		h.log.Errorw("get user failed", "error", err, "user_id", p.ID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(*user))
}
