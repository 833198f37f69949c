// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go_5_vocab_bookmark/internal/config"
	"go_5_vocab_bookmark/internal/repository"
	"go_5_vocab_bookmark/internal/server"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	cfg, err := config.LoadConfig("configs", "../configs")
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logger := config.NewLogger(os.Stderr, cfg.Log.Level, os.Getenv("APP_ENV"))
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("version", config.AppVersion), slog.Bool("auth_enabled", cfg.Auth.Enabled))

	// Initialize Database Connection (GORM)
	db, err := repository.NewDB(cfg.Database.Driver, cfg.Database.URL, logger, repository.PoolOptions{
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: time.Hour,
	})
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// SQLite は開発用なので起動時にスキーマを作る。PostgreSQL は cmd/migrate で行う
	if cfg.Database.Driver == repository.DriverSQLite {
		if err := repository.Migrate(db); err != nil {
			slog.Error("Error migrating sqlite database", slog.Any("error", err))
			os.Exit(1)
		}
	}

	router, err := server.NewRouter(cfg, db, nil, logger)
	if err != nil {
		slog.Error("Error setting up router", slog.Any("error", err))
		os.Exit(1)
	}

	// Start Server
	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
