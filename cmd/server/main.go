package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"todo_backend/internal/app/di"
	"todo_backend/internal/app/router"
	todohandler "todo_backend/internal/feature/todos/transport/handler"
	todousecase "todo_backend/internal/feature/todos/usecase"
	userhandler "todo_backend/internal/feature/users/transport/handler"
	userusecase "todo_backend/internal/feature/users/usecase"
	"todo_backend/internal/platform/config"
	"todo_backend/internal/platform/db"
	"todo_backend/internal/platform/http/handler"
	"todo_backend/internal/platform/logger"
	infraredis "todo_backend/internal/platform/redis"
	"todo_backend/internal/platform/server"
)

const shutdownTimeout = 10 * time.Second

// @title        Todo API
// @version      1.0
// @description  Users and their todos.
// @BasePath     /
func main() {
	// .env は任意
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.New(logger.InfoLevel).Warnw("failed to read .env", "err", err)
	}

	cfg, err := config.Load("configs", ".")
	if err != nil {
		logger.New(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()
	gin.SetMode(cfg.GinMode)

	// db
	gdb, err := db.Open(cfg.DB, log)
	if err != nil {
		log.Fatalw("failed to open database", "driver", cfg.DB.Driver, "err", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatalw("failed to get sql.DB", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close database", "err", cerr)
		}
	}()

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(cfg.Redis, log); err != nil {
			log.Warnw("Redis unavailable. Running without cache.", "err", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Errorw("failed to close Redis client", "err", err)
				}
			}()
		}
	}

	// Repository
	userRepo := di.NewUserRepository(rdb, gdb, cfg.CacheTTL)
	todoRepo := di.NewTodoRepository(rdb, gdb)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo)
	todoUC := todousecase.NewTodoUsecase(todoRepo)

	// Handler
	healthH := handler.NewHealthHandler(sqlDB)
	userH := userhandler.NewUserHandler(userUC, log)
	todoH := todohandler.NewTodoHandler(todoUC, log)

	// ルータ生成
	r := router.NewRouter(log, healthH, userH, todoH)

	srv := &server.Server{}
	go func() {
		log.Infow("server listening", "port", cfg.Port)
		if err := srv.Run(cfg.Port, r); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

// waitForShutdown blocks until SIGINT or SIGTERM and then drains in-flight requests.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
