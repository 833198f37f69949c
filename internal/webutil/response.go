// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go_5_vocab_bookmark/internal/model"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError
	var lookupErr *model.LookupError

	switch {
	case errors.As(err, &appErr):
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	case errors.As(err, &lookupErr):
		errResp = model.APIErrorResponse{Error: model.ErrorDetail{
			Code:    "LOOKUP_FAILED",
			Message: lookupErr.Message,
		}}
	default:
		// 予期せぬエラーは詳細をログにだけ残す
		logger.Error("Unhandled error", slog.Any("error", err))
		errResp = model.APIErrorResponse{Error: model.ErrorDetail{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: "サーバー内部でエラーが発生しました。",
		}}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	var lookupErr *model.LookupError
	if errors.As(err, &lookupErr) {
		if lookupErr.Status >= 400 && lookupErr.Status <= 599 {
			return lookupErr.Status
		}
		return http.StatusBadGateway
	}

	switch {
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrWordNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput),
		errors.Is(err, model.ErrDuplicateWord),
		errors.Is(err, model.ErrLimitExceeded):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized),
		errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		if logger != nil {
			logger.Error("Error marshaling JSON response", slog.Any("error", err))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil && logger != nil {
		logger.Warn("Error writing response", slog.Any("error", err))
	}
}
