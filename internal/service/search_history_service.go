//go:generate mockery --name SearchHistoryService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"math"

	"go_5_vocab_bookmark/internal/config"
	"go_5_vocab_bookmark/internal/middleware"
	"go_5_vocab_bookmark/internal/model"
	"go_5_vocab_bookmark/internal/repository"

	"gorm.io/gorm"
)

const MsgHistoryNotFound = "No search history found"

type SearchHistoryService interface {
	RecordSearch(ctx context.Context, userID int64, word string) (*model.SearchHistory, error)
	ListHistory(ctx context.Context, userID int64, page, pageSize int) ([]*model.SearchHistory, error)
	DeleteHistory(ctx context.Context, userID, historyID int64) error
	DeleteAllHistory(ctx context.Context, userID int64) (int64, error)
}

type searchHistoryService struct {
	db          *gorm.DB
	historyRepo repository.SearchHistoryRepository
	maxPageSize int
}

func NewSearchHistoryService(db *gorm.DB, historyRepo repository.SearchHistoryRepository, cfg *config.Config) SearchHistoryService {
	maxPageSize := config.DefaultMaxPageSize
	if cfg != nil && cfg.App.MaxPageSize > 0 {
		maxPageSize = cfg.App.MaxPageSize
	}
	return &searchHistoryService{
		db:          db,
		historyRepo: historyRepo,
		maxPageSize: maxPageSize,
	}
}

func (s *searchHistoryService) RecordSearch(ctx context.Context, userID int64, word string) (*model.SearchHistory, error) {
	history := &model.SearchHistory{
		UserID: userID,
		Word:   word,
	}
	if err := s.historyRepo.Create(ctx, s.db, history); err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "検索履歴の保存に失敗しました。", "", err)
	}
	return history, nil
}

// ListHistory は1始まりの page で古い順に返す。該当が無いページは NotFound
func (s *searchHistoryService) ListHistory(ctx context.Context, userID int64, page, pageSize int) ([]*model.SearchHistory, error) {
	if page < 1 {
		return nil, model.NewAppError("INVALID_QUERY_PARAM", "page は1以上を指定してください。", "page", model.ErrInvalidInput)
	}
	if pageSize < 1 || pageSize > s.maxPageSize {
		return nil, model.NewAppError("INVALID_QUERY_PARAM", "page_size が範囲外です。", "page_size", model.ErrInvalidInput)
	}

	// オフセットが int に収まらないページは存在しない
	if page-1 > math.MaxInt/pageSize {
		return nil, model.NewAppError("NOT_FOUND", MsgHistoryNotFound, "", model.ErrNotFound)
	}
	offset := (page - 1) * pageSize
	records, err := s.historyRepo.FindByUser(ctx, s.db, userID, offset, pageSize)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	if len(records) == 0 {
		return nil, model.NewAppError("NOT_FOUND", MsgHistoryNotFound, "", model.ErrNotFound)
	}
	return records, nil
}

func (s *searchHistoryService) DeleteHistory(ctx context.Context, userID, historyID int64) error {
	if err := s.historyRepo.Delete(ctx, s.db, historyID, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("NOT_FOUND", MsgHistoryNotFound, "", model.ErrNotFound)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	middleware.GetLogger(ctx).Info("Search history deleted", "user_id", userID, "history_id", historyID)
	return nil
}

func (s *searchHistoryService) DeleteAllHistory(ctx context.Context, userID int64) (int64, error) {
	deleted, err := s.historyRepo.DeleteAllByUser(ctx, s.db, userID)
	if err != nil {
		return 0, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	if deleted == 0 {
		return 0, model.NewAppError("NOT_FOUND", MsgHistoryNotFound, "", model.ErrNotFound)
	}
	middleware.GetLogger(ctx).Info("All search history deleted", "user_id", userID, "deleted", deleted)
	return deleted, nil
}
