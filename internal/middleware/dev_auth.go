// internal/middleware/dev_auth.go
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_5_vocab_bookmark/internal/model"
	"go_5_vocab_bookmark/internal/webutil"
)

const devUserIDHeader = "X-User-ID"

// DevUserContextMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダーのユーザーIDをそのままコンテキストに設定します。
// DBでのユーザー存在チェックは行いません。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := r.Header.Get(devUserIDHeader)
		if raw == "" {
			logger.Warn("[DEV AUTH] X-User-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID ヘッダーが必要です。", "", model.ErrUnauthorized))
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			logger.Warn("[DEV AUTH] invalid X-User-ID", slog.String("value", raw))
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID の形式が正しくありません。", "", model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] user id set to context (no validation)", slog.Int64("user_id", userID))
		next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
	})
}

// DevOptionalUserContextMiddleware はヘッダーがあれば設定し、無ければそのまま通す
func DevOptionalUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(devUserIDHeader) == "" {
			next.ServeHTTP(w, r)
			return
		}
		DevUserContextMiddleware(next).ServeHTTP(w, r)
	})
}
