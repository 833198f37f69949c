// internal/handlers/search_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"go_5_vocab_bookmark/internal/handlers"
	"go_5_vocab_bookmark/internal/middleware"
	"go_5_vocab_bookmark/internal/model"
	"go_5_vocab_bookmark/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSearchRouter(words *mocks.WordSearchService, history *mocks.SearchHistoryService) *chi.Mux {
	h := handlers.NewSearchHandler(words, history, nil, testLogger)
	router := chi.NewRouter()
	router.With(middleware.DevOptionalUserContextMiddleware).Get("/search/word", h.SearchWord)
	router.Group(func(r chi.Router) {
		r.Use(middleware.DevUserContextMiddleware)
		r.Get("/search/history", h.ListHistory)
		r.Delete("/search/history", h.DeleteAllHistory)
		r.Delete("/search/history/{id}", h.DeleteHistory)
	})
	return router
}

func TestSearchHandler_SearchWord(t *testing.T) {
	detail := &model.WordDetail{Word: "hello", Pronunciation: model.NoPronunciation, Example: model.NoExample, Synonyms: []string{}}
	userID := int64(5)

	tests := []struct {
		name           string
		path           string
		userID         int64
		setupMock      func(m *mocks.WordSearchService)
		expectedStatus int
		expectedCode   string
		expectedMsg    string
	}{
		{
			name:   "Success - anonymous",
			path:   "/search/word?word=hello",
			userID: 0,
			setupMock: func(m *mocks.WordSearchService) {
				m.On("Search", mock.Anything, (*int64)(nil), "hello").Return(detail, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Success - logged in",
			path:   "/search/word?word=hello",
			userID: userID,
			setupMock: func(m *mocks.WordSearchService) {
				m.On("Search", mock.Anything, mock.MatchedBy(func(id *int64) bool { return id != nil && *id == userID }), "hello").
					Return(detail, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Fail - word missing",
			path:           "/search/word",
			setupMock:      func(m *mocks.WordSearchService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "MISSING_QUERY_PARAM",
		},
		{
			name: "Fail - not in dictionary",
			path: "/search/word?word=qwzx",
			setupMock: func(m *mocks.WordSearchService) {
				m.On("Search", mock.Anything, (*int64)(nil), "qwzx").
					Return(nil, model.NewAppError("WORD_NOT_FOUND", "Word not found", "word", model.ErrWordNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "WORD_NOT_FOUND",
			expectedMsg:    "Word not found",
		},
		{
			name: "Fail - upstream error passthrough",
			path: "/search/word?word=hello",
			setupMock: func(m *mocks.WordSearchService) {
				m.On("Search", mock.Anything, (*int64)(nil), "hello").
					Return(nil, &model.LookupError{Status: http.StatusInternalServerError, Message: "upstream broke"}).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "LOOKUP_FAILED",
			expectedMsg:    "upstream broke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := mocks.NewWordSearchService(t)
			history := mocks.NewSearchHistoryService(t)
			tt.setupMock(words)
			router := newSearchRouter(words, history)

			rr := executeRequest(t, router, httpRequestDetails{Method: http.MethodGet, Path: tt.path, UserID: tt.userID})

			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.expectedCode != "" {
				verifyErrorResponse(t, rr, tt.expectedCode, tt.expectedMsg)
				return
			}
			var got model.WordDetail
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, "hello", got.Word)
		})
	}
}

func TestSearchHandler_History(t *testing.T) {
	const userID = int64(8)
	records := []*model.SearchHistory{
		{ID: 1, UserID: userID, Word: "a", CreatedAt: time.Now()},
		{ID: 2, UserID: userID, Word: "b", CreatedAt: time.Now()},
	}
	notFound := model.NewAppError("NOT_FOUND", "No search history found", "", model.ErrNotFound)

	tests := []struct {
		name           string
		method         string
		path           string
		setupMock      func(m *mocks.SearchHistoryService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "List - defaults",
			method: http.MethodGet,
			path:   "/search/history",
			setupMock: func(m *mocks.SearchHistoryService) {
				m.On("ListHistory", mock.Anything, userID, 1, 10).Return(records, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "List - explicit page",
			method: http.MethodGet,
			path:   "/search/history?page=2&page_size=2",
			setupMock: func(m *mocks.SearchHistoryService) {
				m.On("ListHistory", mock.Anything, userID, 2, 2).Return(records[:1], nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "List - page past the end",
			method: http.MethodGet,
			path:   "/search/history?page=3&page_size=2",
			setupMock: func(m *mocks.SearchHistoryService) {
				m.On("ListHistory", mock.Anything, userID, 3, 2).Return(nil, notFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "List - page zero",
			method:         http.MethodGet,
			path:           "/search/history?page=0",
			setupMock:      func(m *mocks.SearchHistoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "List - page not a number",
			method:         http.MethodGet,
			path:           "/search/history?page=abc",
			setupMock:      func(m *mocks.SearchHistoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_QUERY_PARAM",
		},
		{
			name:   "List - page_size above the configured max is rejected by the service",
			method: http.MethodGet,
			path:   "/search/history?page_size=500",
			setupMock: func(m *mocks.SearchHistoryService) {
				m.On("ListHistory", mock.Anything, userID, 1, 500).
					Return(nil, model.NewAppError("INVALID_QUERY_PARAM", "page_size が範囲外です。", "page_size", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_QUERY_PARAM",
		},
		{
			name:           "List - page_size zero",
			method:         http.MethodGet,
			path:           "/search/history?page_size=0",
			setupMock:      func(m *mocks.SearchHistoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:   "Delete one - success",
			method: http.MethodDelete,
			path:   "/search/history/2",
			setupMock: func(m *mocks.SearchHistoryService) {
				m.On("DeleteHistory", mock.Anything, userID, int64(2)).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Delete one - not found",
			method: http.MethodDelete,
			path:   "/search/history/99",
			setupMock: func(m *mocks.SearchHistoryService) {
				m.On("DeleteHistory", mock.Anything, userID, int64(99)).Return(notFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "Delete one - invalid id",
			method:         http.MethodDelete,
			path:           "/search/history/x",
			setupMock:      func(m *mocks.SearchHistoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_PATH_PARAM",
		},
		{
			name:   "Delete all - success",
			method: http.MethodDelete,
			path:   "/search/history",
			setupMock: func(m *mocks.SearchHistoryService) {
				m.On("DeleteAllHistory", mock.Anything, userID).Return(int64(2), nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := mocks.NewWordSearchService(t)
			history := mocks.NewSearchHistoryService(t)
			tt.setupMock(history)
			router := newSearchRouter(words, history)

			rr := executeRequest(t, router, httpRequestDetails{Method: tt.method, Path: tt.path, UserID: userID})

			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.expectedCode != "" {
				verifyErrorResponse(t, rr, tt.expectedCode, "")
			}
		})
	}

	t.Run("List - requires auth", func(t *testing.T) {
		router := newSearchRouter(mocks.NewWordSearchService(t), mocks.NewSearchHistoryService(t))
		rr := executeRequest(t, router, httpRequestDetails{Method: http.MethodGet, Path: "/search/history"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
