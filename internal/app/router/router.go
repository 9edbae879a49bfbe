// Package router はHTTPルーティングを定義します。
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "todo_backend/internal/docs"
	todohandler "todo_backend/internal/feature/todos/transport/handler"
	userhandler "todo_backend/internal/feature/users/transport/handler"
	"todo_backend/internal/platform/http/handler"
	"todo_backend/internal/platform/http/middleware"
	"todo_backend/internal/platform/logger"
)

// NewRouter はミドルウェアと全ルートを登録した gin.Engine を返します。
func NewRouter(log *logger.Logger, health *handler.HealthHandler,
	users *userhandler.UserHandler, todos *todohandler.TodoHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog(log), middleware.Recovery(log))

	// 導通確認用
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)
	// APIドキュメント
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ユーザー
	r.POST("/users/", users.Create)
	r.GET("/users/", users.List)
	r.GET("/users/:id", users.Get)
	// ユーザーのtodo作成
	r.POST("/users/:id/todos/", todos.CreateForUser)

	// todo一覧
	r.GET("/todos/", todos.List)

	return r
}
