// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"go_5_vocab_bookmark/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	UserID  int64
	Headers map[string]string
}

// executeRequest はルーターにリクエストを流し、レスポンスレコーダーを返します。
// Body が string の場合はそのまま送ります。UserID が 0 以外なら X-User-ID を付けます。
func executeRequest(t *testing.T, router chi.Router, details httpRequestDetails) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if details.Body != nil {
		if raw, ok := details.Body.(string); ok {
			body = strings.NewReader(raw)
		} else {
			b, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			body = bytes.NewBuffer(b)
		}
	}

	req := httptest.NewRequest(details.Method, details.Path, body)
	if details.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if details.UserID != 0 {
		req.Header.Set("X-User-ID", strconv.FormatInt(details.UserID, 10))
	}
	for k, v := range details.Headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// verifyErrorResponse はエラーレスポンスのコードとメッセージの一部を検証します。
func verifyErrorResponse(t *testing.T, rr *httptest.ResponseRecorder, expectedCode, expectedMsgPart string) {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp), "body: %s", rr.Body.String())
	if expectedCode != "" {
		assert.Equal(t, expectedCode, errResp.Error.Code)
	}
	if expectedMsgPart != "" {
		assert.Contains(t, errResp.Error.Message, expectedMsgPart)
	}
}

func strPtr(s string) *string { return &s }

func assertJSONContentType(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}
