package webutil_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_5_vocab_bookmark/internal/model"
	"go_5_vocab_bookmark/internal/webutil"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", model.ErrNotFound, http.StatusNotFound},
		{"word not found", model.ErrWordNotFound, http.StatusNotFound},
		{"wrapped invalid input", fmt.Errorf("%w: bad", model.ErrInvalidInput), http.StatusBadRequest},
		{"duplicate word", model.NewAppError("DUPLICATE_WORD", "dup", "word", model.ErrDuplicateWord), http.StatusBadRequest},
		{"limit", model.ErrLimitExceeded, http.StatusBadRequest},
		{"expired", model.ErrTokenExpired, http.StatusUnauthorized},
		{"credentials", model.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", model.ErrForbidden, http.StatusForbidden},
		{"conflict", model.ErrConflict, http.StatusConflict},
		{"lookup 503", &model.LookupError{Status: 503, Message: "down"}, http.StatusServiceUnavailable},
		{"lookup without status", &model.LookupError{Message: "network"}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, webutil.MapErrorToStatusCode(tt.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantMsg  string
	}{
		{"AppError", model.NewAppError("BOOKMARK_LIMIT_EXCEEDED", "limit", "", model.ErrLimitExceeded), "BOOKMARK_LIMIT_EXCEEDED", "limit"},
		{"LookupError", &model.LookupError{Status: 500, Message: "upstream"}, "LOOKUP_FAILED", "upstream"},
		{"unknown", errors.New("db exploded"), "INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			webutil.HandleError(rec, nil, tt.err)

			var resp model.APIErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
			assert.NotContains(t, rec.Body.String(), "db exploded")
		})
	}
}

func TestDecodeJSONBody(t *testing.T) {
	t.Run("未知のフィールドはエラー", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"word":"a","extra":1}`))
		var dst model.AddBookmarkRequest
		assert.ErrorIs(t, webutil.DecodeJSONBody(req, &dst), model.ErrInvalidInput)
	})

	t.Run("空ボディはエラー", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var dst model.AddBookmarkRequest
		assert.ErrorIs(t, webutil.DecodeJSONBody(req, &dst), model.ErrInvalidInput)
	})

	t.Run("部分更新は空ボディと未知フィールドを許容", func(t *testing.T) {
		var dst model.PatchBookmarkRequest
		req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(""))
		require.NoError(t, webutil.DecodePartialJSONBody(req, &dst))
		assert.True(t, dst.IsEmpty())

		req = httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"example":"ex","unknown":true}`))
		require.NoError(t, webutil.DecodePartialJSONBody(req, &dst))
		require.NotNil(t, dst.Example)
		assert.Equal(t, "ex", *dst.Example)
	})
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3&page_size=abc", nil)

	v, err := webutil.QueryInt(req, "page", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = webutil.QueryInt(req, "missing", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	_, err = webutil.QueryInt(req, "page_size", 10)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_QUERY_PARAM", appErr.Detail.Code)
	assert.Equal(t, "page_size", appErr.Detail.Field)
}

func TestValidateStruct(t *testing.T) {
	t.Run("必須項目", func(t *testing.T) {
		err := webutil.ValidateStruct(&model.AddBookmarkRequest{})
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
		assert.Equal(t, "word", appErr.Detail.Field)
		assert.Equal(t, "単語は必須項目です。", appErr.Detail.Message)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("カテゴリ不正", func(t *testing.T) {
		bad := "Cooking"
		err := webutil.ValidateStruct(&model.PatchBookmarkRequest{StudyCategory: &bad})
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "study_category", appErr.Detail.Field)
	})

	t.Run("ページサイズ下限", func(t *testing.T) {
		err := webutil.ValidateStruct(&model.HistoryPageQuery{Page: 1, PageSize: 0})
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "page_size", appErr.Detail.Field)
	})

	t.Run("ページサイズの上限は設定値に任せる", func(t *testing.T) {
		assert.NoError(t, webutil.ValidateStruct(&model.HistoryPageQuery{Page: 1, PageSize: 500}))
	})

	t.Run("正常", func(t *testing.T) {
		assert.NoError(t, webutil.ValidateStruct(&model.AddBookmarkRequest{Word: "apple"}))
	})
}
