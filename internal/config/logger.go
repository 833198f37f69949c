// internal/config/logger.go
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLogLevel は設定ファイルのログレベル文字列を slog.Level に変換する。不明な値は Info
func ParseLogLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// NewLogger は APP_ENV=dev なら tint、それ以外は JSON のハンドラでロガーを作る
func NewLogger(w io.Writer, level, appEnv string) *slog.Logger {
	logLevel := new(slog.LevelVar)
	lv, known := ParseLogLevel(level)
	logLevel.Set(lv)

	var handler slog.Handler
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}

	logger := slog.New(handler).With(slog.String("app", AppName))
	if !known {
		logger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}
	return logger
}
