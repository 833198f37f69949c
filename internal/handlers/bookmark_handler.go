// internal/handlers/bookmark_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_vocab_bookmark/internal/middleware"
	"go_5_vocab_bookmark/internal/model"
	"go_5_vocab_bookmark/internal/service"
	"go_5_vocab_bookmark/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type BookmarkHandler struct {
	service service.BookmarkService
	logger  *slog.Logger
}

func NewBookmarkHandler(s service.BookmarkService, logger *slog.Logger) *BookmarkHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookmarkHandler{
		service: s,
		logger:  logger,
	}
}

// AddBookmark は単語をブックマークに追加するハンドラ
func (h *BookmarkHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AddBookmark"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int64("user_id", userID))

	var req model.AddBookmarkRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	bookmark, err := h.service.AddBookmark(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Bookmark added successfully", slog.String("word_id", bookmark.WordID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, model.AddBookmarkResponse{
		Message:  service.MsgBookmarkAdded,
		Bookmark: bookmark,
	}, logger)
}

// ListBookmarks はブックマーク一覧を登録順に返す
func (h *BookmarkHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListBookmarks"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int64("user_id", userID))

	bookmarks, err := h.service.ListBookmarks(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if bookmarks == nil {
		bookmarks = []*model.BookmarkWord{}
	}
	logger.Info("Bookmarks listed successfully", slog.Int("count", len(bookmarks)))
	webutil.RespondWithJSON(w, http.StatusOK, bookmarks, logger)
}

func (h *BookmarkHandler) GetBookmark(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetBookmark"))

	userID, wordID, ok := h.userAndWordID(w, r, logger)
	if !ok {
		return
	}

	bookmark, err := h.service.GetBookmark(r.Context(), userID, wordID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, bookmark, logger)
}

// UpdateBookmark は部分更新。未知のキーは無視し、空のボディは変更なしとして扱う
func (h *BookmarkHandler) UpdateBookmark(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateBookmark"))

	userID, wordID, ok := h.userAndWordID(w, r, logger)
	if !ok {
		return
	}

	var req model.PatchBookmarkRequest
	if err := webutil.DecodePartialJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	bookmark, err := h.service.UpdateBookmark(r.Context(), userID, wordID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Bookmark updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, bookmark, logger)
}

func (h *BookmarkHandler) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteBookmark"))

	userID, wordID, ok := h.userAndWordID(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.DeleteBookmark(r.Context(), userID, wordID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Bookmark deleted successfully")
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: service.MsgBookmarkDeleted}, logger)
}

func (h *BookmarkHandler) DeleteAllBookmarks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteAllBookmarks"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int64("user_id", userID))

	deleted, err := h.service.DeleteAllBookmarks(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("All bookmarks deleted", slog.Int64("deleted", deleted))
	webutil.RespondWithJSON(w, http.StatusOK, model.BulkDeleteResponse{
		Message: service.MsgBookmarksCleared,
		Deleted: deleted,
	}, logger)
}

// userAndWordID は認証ユーザーとパスの {id} を取り出す。失敗時はレスポンスを書いて false を返す
func (h *BookmarkHandler) userAndWordID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int64, uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return 0, uuid.Nil, false
	}

	wordIDStr := chi.URLParam(r, "id")
	wordID, err := uuid.Parse(wordIDStr)
	if err != nil {
		logger.Warn("Invalid word ID format", slog.String("word_id", wordIDStr))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_PATH_PARAM", "単語IDの形式が正しくありません。", "id", model.ErrInvalidInput))
		return 0, uuid.Nil, false
	}
	return userID, wordID, true
}
