package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	dictmocks "go_5_vocab_bookmark/internal/dictionary/mocks"
	"go_5_vocab_bookmark/internal/model"
	"go_5_vocab_bookmark/internal/service"
	svcmocks "go_5_vocab_bookmark/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWordSearchService_Search(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)
	detail := &model.WordDetail{
		Word:          "hello",
		Pronunciation: "/həˈləʊ/",
		Example:       model.NoExample,
		Synonyms:      []string{},
		Definitions: []model.PartOfSpeechGroup{
			{PartOfSpeech: "noun", Definitions: []model.DefinitionRow{{Definition: "a greeting"}}},
		},
	}

	testCases := []struct {
		name        string
		userID      *int64
		word        string
		setupMocks  func(dict *dictmocks.Client, history *svcmocks.SearchHistoryService)
		checkResult func(t *testing.T, got *model.WordDetail, err error)
	}{
		{
			name:   "正常系: ログイン中は履歴を残す",
			userID: &userID,
			word:   " hello ",
			setupMocks: func(dict *dictmocks.Client, history *svcmocks.SearchHistoryService) {
				dict.On("Lookup", mock.Anything, "hello").Return(detail, nil).Once()
				history.On("RecordSearch", mock.Anything, userID, "hello").Return(&model.SearchHistory{ID: 1}, nil).Once()
			},
			checkResult: func(t *testing.T, got *model.WordDetail, err error) {
				require.NoError(t, err)
				assert.Equal(t, detail, got)
			},
		},
		{
			name:   "正常系: 未ログインなら履歴を残さない",
			userID: nil,
			word:   "hello",
			setupMocks: func(dict *dictmocks.Client, history *svcmocks.SearchHistoryService) {
				dict.On("Lookup", mock.Anything, "hello").Return(detail, nil).Once()
			},
			checkResult: func(t *testing.T, got *model.WordDetail, err error) {
				require.NoError(t, err)
				assert.Equal(t, "hello", got.Word)
			},
		},
		{
			name:   "正常系: 履歴の保存に失敗しても結果は返す",
			userID: &userID,
			word:   "hello",
			setupMocks: func(dict *dictmocks.Client, history *svcmocks.SearchHistoryService) {
				dict.On("Lookup", mock.Anything, "hello").Return(detail, nil).Once()
				history.On("RecordSearch", mock.Anything, userID, "hello").Return(nil, errors.New("db down")).Once()
			},
			checkResult: func(t *testing.T, got *model.WordDetail, err error) {
				require.NoError(t, err)
				assert.NotNil(t, got)
			},
		},
		{
			name:   "異常系: 辞書に無い単語",
			userID: &userID,
			word:   "qwzx",
			setupMocks: func(dict *dictmocks.Client, history *svcmocks.SearchHistoryService) {
				dict.On("Lookup", mock.Anything, "qwzx").Return(nil, model.ErrWordNotFound).Once()
			},
			checkResult: func(t *testing.T, got *model.WordDetail, err error) {
				assert.Nil(t, got)
				assertAppError(t, err, "WORD_NOT_FOUND", model.ErrWordNotFound)
			},
		},
		{
			name:   "異常系: 上流エラーはステータスを保つ",
			userID: nil,
			word:   "hello",
			setupMocks: func(dict *dictmocks.Client, history *svcmocks.SearchHistoryService) {
				dict.On("Lookup", mock.Anything, "hello").Return(nil, &model.LookupError{Status: http.StatusTooManyRequests, Message: "slow down"}).Once()
			},
			checkResult: func(t *testing.T, got *model.WordDetail, err error) {
				var lookupErr *model.LookupError
				require.True(t, errors.As(err, &lookupErr))
				assert.Equal(t, http.StatusTooManyRequests, lookupErr.Status)
				assert.Equal(t, "slow down", lookupErr.Message)
			},
		},
		{
			name:       "異常系: 空の単語",
			userID:     nil,
			word:       "   ",
			setupMocks: func(dict *dictmocks.Client, history *svcmocks.SearchHistoryService) {},
			checkResult: func(t *testing.T, got *model.WordDetail, err error) {
				assertAppError(t, err, "VALIDATION_ERROR", model.ErrInvalidInput)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dict := dictmocks.NewClient(t)
			history := svcmocks.NewSearchHistoryService(t)
			tc.setupMocks(dict, history)

			svc := service.NewWordSearchService(dict, history)
			got, err := svc.Search(ctx, tc.userID, tc.word)
			tc.checkResult(t, got, err)
		})
	}
}
