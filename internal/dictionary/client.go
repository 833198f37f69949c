//go:generate mockery --name Client --output ./mocks --outpkg mocks --case=underscore
package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go_5_vocab_bookmark/internal/middleware"
	"go_5_vocab_bookmark/internal/model"
)

// Client は単語の辞書情報を取得する
type Client interface {
	Lookup(ctx context.Context, word string) (*model.WordDetail, error)
}

type httpClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient は dictionaryapi.dev 互換 API のクライアントを作成します。
// timeout は1回の問い合わせ全体に適用されます。
func NewClient(baseURL string, timeout time.Duration, hc *http.Client) Client {
	if hc == nil {
		hc = &http.Client{}
	}
	return &httpClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: hc,
	}
}

func (c *httpClient) Lookup(ctx context.Context, word string) (*model.WordDetail, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("word", word))

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := fmt.Sprintf("%s/api/v2/entries/en/%s", c.baseURL, url.PathEscape(word))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("dictionary.Lookup: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("Dictionary lookup timed out", slog.Duration("timeout", c.timeout))
			return nil, &model.LookupError{Status: http.StatusGatewayTimeout, Message: "Dictionary lookup timed out"}
		}
		logger.Error("Dictionary lookup request failed", slog.Any("error", err))
		return nil, &model.LookupError{Status: http.StatusBadGateway, Message: "Dictionary service unavailable"}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		logger.Info("Word not found in dictionary")
		return nil, model.ErrWordNotFound
	}
	if resp.StatusCode != http.StatusOK {
		msg := upstreamMessage(resp.Body)
		logger.Warn("Dictionary lookup failed", slog.Int("status", resp.StatusCode), slog.String("message", msg))
		return nil, &model.LookupError{Status: resp.StatusCode, Message: msg}
	}

	var entries []entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		logger.Error("Failed to decode dictionary response", slog.Any("error", err))
		return nil, &model.LookupError{Status: http.StatusBadGateway, Message: "Invalid response from dictionary service"}
	}
	if len(entries) == 0 {
		return nil, model.ErrWordNotFound
	}

	return normalize(entries[0]), nil
}

// upstreamMessage は {"title","message"} 形式のエラーボディからメッセージを取り出す
func upstreamMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4<<10))
	var e struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &e); err == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Title != "" {
			return e.Title
		}
	}
	if s := strings.TrimSpace(string(raw)); s != "" {
		return s
	}
	return "Error fetching word data"
}
