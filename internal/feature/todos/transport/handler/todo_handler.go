// Package handler はtodosフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/api"
	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/transport/http/dto"
	"todo_backend/internal/platform/logger"
	"todo_backend/internal/shared/pagination"
)

// TodoUsecase はtodo操作のユースケースインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TodoUsecase interface {
	CreateUserTodo(ctx context.Context, userID uint, title string, body *string) (*entity.Todo, error)
	ListTodos(ctx context.Context, skip, limit int) ([]entity.Todo, error)
}

// TodoHandler はtodoに関するHTTPリクエストを処理します。
type TodoHandler struct {
	uc  TodoUsecase
	log *logger.Logger
}

// NewTodoHandler は新しい TodoHandler を作成します。
func NewTodoHandler(uc TodoUsecase, log *logger.Logger) *TodoHandler {
	return &TodoHandler{uc: uc, log: log}
}

// CreateForUser はパスで指定したユーザーを作成者としてtodoを作成します。
// ユーザーの存在確認は行わず、ストレージのエラーは500として返します。
//
// @Summary      Create todo for user
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "author user id"
// @Param        body  body      dto.TodoCreateRequest  true  "title and optional body"
// @Success      200   {object}  dto.TodoResponse
// @Failure      400   {object}  api.ErrorResponse
// @Failure      500   {object}  api.ErrorResponse
// @Router       /users/{id}/todos/ [post]
func (h *TodoHandler) CreateForUser(c *gin.Context) {
	var p dto.AuthorPath
	if err := c.ShouldBindUri(&p); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	var req dto.TodoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnw("create todo validation failed", "error", err, "user_id", p.UserID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	todo, err := h.uc.CreateUserTodo(c.Request.Context(), p.UserID, *req.Title, req.Body)
	if err != nil {
		h.log.Errorw("create todo failed", "error", err, "user_id", p.UserID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewTodoResponse(*todo))
}

// List はtodo一覧を skip / limit でページングして返します。
//
// @Summary      List todos
// @Tags         todos
// @Produce      json
// @Param        skip   query     int  false  "rows to skip"  default(0)
// @Param        limit  query     int  false  "max rows"      default(100)
// @Success      200    {array}   dto.TodoResponse
// @Failure      400    {object}  api.ErrorResponse
// @Failure      500    {object}  api.ErrorResponse
// @Router       /todos/ [get]
func (h *TodoHandler) List(c *gin.Context) {
	var q pagination.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	todos, err := h.uc.ListTodos(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		h.log.Errorw("list todos failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewTodoList(todos))
}
