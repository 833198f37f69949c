// internal/handlers/user_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_vocab_bookmark/internal/middleware"
	"go_5_vocab_bookmark/internal/model"
	"go_5_vocab_bookmark/internal/service"
	"go_5_vocab_bookmark/internal/webutil"
)

type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

func NewUserHandler(s service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		service: s,
		logger:  logger,
	}
}

// GetMe はログイン中のユーザー情報を返す
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMe"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, user.ToResponse(), logger)
}

// DeleteMe は退会処理。ブックマークと検索履歴も削除される
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteMe"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User deleted", slog.Int64("user_id", userID))
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: "User deleted successfully."}, logger)
}
