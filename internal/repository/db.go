package repository

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// PoolOptions はコネクションプールの設定
type PoolOptions struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

var defaultPool = PoolOptions{MaxIdleConns: 10, MaxOpenConns: 100, ConnMaxLifetime: time.Hour}

// NewDB はドライバ名に応じて GORM の接続を作成します。
// SQL ログは slog-gorm 経由でアプリケーションのロガーに出力されます。
func NewDB(driver, databaseURL string, appLogger *slog.Logger, pool ...PoolOptions) (*gorm.DB, error) {
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)

	dialector, err := dialectorFor(driver, databaseURL)
	if err != nil {
		appLogger.Error("Unsupported database driver", slog.String("driver", driver))
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: slogGormLogger.LogMode(gormLogLevel),
		// 一意制約違反を gorm.ErrDuplicatedKey に変換する
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	opts := defaultPool
	if len(pool) > 0 {
		opts = pool[0]
	}
	if driver == DriverSQLite {
		// SQLite は書き込みが直列なので接続を1本にする
		opts.MaxOpenConns = 1
		opts.MaxIdleConns = 1
	}
	sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)

	appLogger.Info("Database connection established with GORM", slog.String("driver", driver))
	return db, nil
}

func dialectorFor(driver, databaseURL string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres, "":
		return postgres.Open(databaseURL), nil
	case DriverSQLite:
		return sqlite.Open(withSQLiteForeignKeys(databaseURL)), nil
	default:
		return nil, fmt.Errorf("repository.NewDB: unsupported driver %q", driver)
	}
}

// withSQLiteForeignKeys は ON DELETE CASCADE を効かせるため外部キー制約を有効にする
func withSQLiteForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=1"
	}
	return dsn + "?_foreign_keys=1"
}

// isUniqueViolation はドライバを問わず一意制約違反かどうかを判定する
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
