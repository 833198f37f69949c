//go:generate mockery --name WordSearchService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"

	"go_5_vocab_bookmark/internal/dictionary"
	"go_5_vocab_bookmark/internal/middleware"
	"go_5_vocab_bookmark/internal/model"
)

type WordSearchService interface {
	// Search は辞書を引き、userID があれば検索履歴を残す
	Search(ctx context.Context, userID *int64, word string) (*model.WordDetail, error)
}

type wordSearchService struct {
	dict    dictionary.Client
	history SearchHistoryService
}

func NewWordSearchService(dict dictionary.Client, history SearchHistoryService) WordSearchService {
	return &wordSearchService{
		dict:    dict,
		history: history,
	}
}

func (s *wordSearchService) Search(ctx context.Context, userID *int64, word string) (*model.WordDetail, error) {
	logger := middleware.GetLogger(ctx)

	word = strings.TrimSpace(word)
	if word == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "検索する単語を指定してください。", "word", model.ErrInvalidInput)
	}

	detail, err := s.dict.Lookup(ctx, word)
	if err != nil {
		if errors.Is(err, model.ErrWordNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "Word not found", "word", model.ErrWordNotFound)
		}
		// LookupError は上流のステータスのまま返す
		var lookupErr *model.LookupError
		if errors.As(err, &lookupErr) {
			logger.Warn("Dictionary lookup failed", "word", word, "status", lookupErr.Status, "error", lookupErr.Message)
			return nil, lookupErr
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	// 履歴の保存に失敗しても検索結果は返す
	if userID != nil {
		if _, err := s.history.RecordSearch(ctx, *userID, word); err != nil {
			logger.Error("Failed to record search history", "user_id", *userID, "word", word, "error", err)
		}
	}

	return detail, nil
}
