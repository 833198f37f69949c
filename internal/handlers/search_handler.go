// internal/handlers/search_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"go_5_vocab_bookmark/internal/config"
	"go_5_vocab_bookmark/internal/middleware"
	"go_5_vocab_bookmark/internal/model"
	"go_5_vocab_bookmark/internal/service"
	"go_5_vocab_bookmark/internal/webutil"

	"github.com/go-chi/chi/v5"
)

const msgHistoryDeleted = "Search history deleted successfully."

type SearchHandler struct {
	words           service.WordSearchService
	history         service.SearchHistoryService
	defaultPageSize int
	logger          *slog.Logger
}

func NewSearchHandler(words service.WordSearchService, history service.SearchHistoryService, cfg *config.Config, logger *slog.Logger) *SearchHandler {
	if logger == nil {
		logger = slog.Default()
	}
	pageSize := config.DefaultPageSize
	if cfg != nil && cfg.App.DefaultPageSize > 0 {
		pageSize = cfg.App.DefaultPageSize
	}
	return &SearchHandler{
		words:           words,
		history:         history,
		defaultPageSize: pageSize,
		logger:          logger,
	}
}

// SearchWord は辞書を引く。認証は任意で、ログイン中なら履歴に残る
func (h *SearchHandler) SearchWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SearchWord"))

	word := strings.TrimSpace(r.URL.Query().Get("word"))
	if word == "" {
		webutil.HandleError(w, logger, model.NewAppError("MISSING_QUERY_PARAM", "word を指定してください。", "word", model.ErrInvalidInput))
		return
	}

	userID := middleware.OptionalUserIDFromContext(r.Context())
	detail, err := h.words.Search(r.Context(), userID, word)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word searched", slog.String("word", word), slog.Bool("authenticated", userID != nil))
	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

func (h *SearchHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListHistory"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int64("user_id", userID))

	page, err := webutil.QueryInt(r, "page", 1)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	pageSize, err := webutil.QueryInt(r, "page_size", h.defaultPageSize)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(model.HistoryPageQuery{Page: page, PageSize: pageSize}); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	records, err := h.history.ListHistory(r.Context(), userID, page, pageSize)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Search history listed", slog.Int("page", page), slog.Int("count", len(records)))
	webutil.RespondWithJSON(w, http.StatusOK, model.SearchHistoryListResponse{Records: records}, logger)
}

func (h *SearchHandler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteHistory"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int64("user_id", userID))

	idStr := chi.URLParam(r, "id")
	historyID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || historyID <= 0 {
		logger.Warn("Invalid history ID format", slog.String("history_id", idStr))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_PATH_PARAM", "履歴IDの形式が正しくありません。", "id", model.ErrInvalidInput))
		return
	}

	if err := h.history.DeleteHistory(r.Context(), userID, historyID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.MessageResponse{Message: msgHistoryDeleted}, logger)
}

func (h *SearchHandler) DeleteAllHistory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteAllHistory"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int64("user_id", userID))

	deleted, err := h.history.DeleteAllHistory(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.BulkDeleteResponse{
		Message: msgHistoryDeleted,
		Deleted: deleted,
	}, logger)
}
