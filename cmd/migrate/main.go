// cmd/migrate/main.go
package main

import (
	"flag"
	"log/slog"
	"os"

	"go_5_vocab_bookmark/internal/config"
	"go_5_vocab_bookmark/internal/repository"
)

// テーブルと制約を作成する。何度実行しても同じ結果になる
func main() {
	configDir := flag.String("config", "configs", "config.yaml を探すディレクトリ")
	dryRun := flag.Bool("dry-run", false, "接続確認のみ行い、マイグレーションは実行しない")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := config.NewLogger(os.Stderr, cfg.Log.Level, os.Getenv("APP_ENV"))
	slog.SetDefault(logger)

	db, err := repository.NewDB(cfg.Database.Driver, cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	if *dryRun {
		logger.Info("Dry run: database reachable, skipping migration", slog.String("driver", cfg.Database.Driver))
		return
	}

	if err := repository.Migrate(db); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	for _, m := range repository.Models() {
		logger.Info("Table ready", slog.Bool("exists", db.Migrator().HasTable(m)), slog.String("table", typeName(m)))
	}
	logger.Info("Migration completed")
}

func typeName(m interface{}) string {
	if t, ok := m.(interface{ TableName() string }); ok {
		return t.TableName()
	}
	return "unknown"
}
