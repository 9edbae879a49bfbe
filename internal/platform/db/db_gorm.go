// Package db opens the GORM connection shared by all repositories and creates the schema.
package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	todoentity "todo_backend/internal/feature/todos/domain/entity"
	userentity "todo_backend/internal/feature/users/domain/entity"
	"todo_backend/internal/platform/logger"
)

// Supported values for Config.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// retryInterval is the pause between connection attempts.
const retryInterval = 3 * time.Second

// Config holds the database connection settings.
type Config struct {
	Driver         string
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	Path           string // SQLite file path, or ":memory:"
	ConnectTimeout time.Duration
}

// Opener opens a GORM connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN returns the connection string for cfg.Driver.
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		return cfg.Path
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

// ConnectWithRetry calls opener until it succeeds or until the next attempt
// would start after timeout has elapsed.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		time.Sleep(retryInterval)
	}
}

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}

// Open connects to the configured database and creates any missing tables.
// Unique and foreign key violations are translated to gorm.ErrDuplicatedKey
// and gorm.ErrForeignKeyViolated.
func Open(cfg Config, log *logger.Logger) (*gorm.DB, error) {
	dsn := BuildDSN(cfg)
	d, err := dialector(cfg.Driver, dsn)
	if err != nil {
		return nil, err
	}

	opener := func(string) (*gorm.DB, error) {
		db, err := gorm.Open(d, &gorm.Config{
			TranslateError: true,
			Logger:         newGormLogger(log, gormlogger.Warn),
		})
		if err != nil {
			log.Warnw("db connect failed, retrying", "driver", cfg.Driver, "err", err)
		}
		return db, err
	}

	db, err := ConnectWithRetry(dsn, cfg.ConnectTimeout, opener)
	if err != nil {
		return nil, err
	}

	if cfg.Driver == DriverSQLite {
		if err := configureSQLite(db); err != nil {
			return nil, err
		}
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Infow("database ready", "driver", cfg.Driver)
	return db, nil
}

// configureSQLite pins the pool to one connection and enables foreign keys on it.
// Each connection to ":memory:" would otherwise see its own empty database.
func configureSQLite(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return fmt.Errorf("set PRAGMA foreign_keys=ON: %w", err)
	}
	return nil
}

// Migrate creates the users and todos tables if they do not exist.
// It is safe to call on every start.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userentity.User{}, &todoentity.Todo{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
