package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go_5_vocab_bookmark/internal/model"
	"go_5_vocab_bookmark/internal/webutil"
)

// TokenValidator はアクセストークンを検証してユーザーIDを返す
type TokenValidator interface {
	Validate(tokenString string) (int64, error)
}

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証するミドルウェア
func JWTAuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			tokenString, appErr := bearerToken(r)
			if appErr != nil {
				logger.Warn("JWT auth failed", slog.String("reason", appErr.Detail.Message))
				webutil.HandleError(w, logger, appErr)
				return
			}

			userID, err := validator.Validate(tokenString)
			if err != nil {
				logger.Warn("JWT auth failed: invalid token", slog.Any("error", err))
				webutil.HandleError(w, logger, tokenError(err))
				return
			}

			next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
		})
	}
}

// OptionalJWTAuthMiddleware はトークンがあれば検証し、無ければそのまま通す。
// トークンが付いているのに無効な場合は 401 を返す。
func OptionalJWTAuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}
			JWTAuthMiddleware(validator)(next).ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, *model.AppError) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrUnauthorized)
	}
	headerParts := strings.Fields(authHeader)
	if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") {
		return "", model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthorized)
	}
	return headerParts[1], nil
}

func tokenError(err error) *model.AppError {
	if errors.Is(err, model.ErrTokenExpired) {
		return model.NewAppError("TOKEN_EXPIRED", "Token has expired", "", model.ErrTokenExpired)
	}
	return model.NewAppError("INVALID_CREDENTIALS", "Could not validate credentials", "", model.ErrInvalidCredentials)
}

func withUserID(ctx context.Context, userID int64) context.Context {
	ctx = context.WithValue(ctx, model.UserIDKey, userID)
	// 以降のログにユーザーIDを含める
	return WithLogger(ctx, GetLogger(ctx).With(slog.Int64("user_id", userID)))
}

// GetUserIDFromContext は認証ミドルウェアがセットしたユーザーIDを返す
func GetUserIDFromContext(ctx context.Context) (int64, error) {
	value, ok := ctx.Value(model.UserIDKey).(int64)
	if !ok {
		return 0, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
	}
	return value, nil
}

// OptionalUserIDFromContext は認証されていれば ID を、そうでなければ nil を返す
func OptionalUserIDFromContext(ctx context.Context) *int64 {
	value, ok := ctx.Value(model.UserIDKey).(int64)
	if !ok {
		return nil
	}
	return &value
}
