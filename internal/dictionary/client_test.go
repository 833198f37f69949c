package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_5_vocab_bookmark/internal/model"
)

const helloResponse = `[{
  "word": "hello",
  "phonetic": "həˈləʊ",
  "phonetics": [{"text": "həˈləʊ", "audio": ""}],
  "meanings": [
    {
      "partOfSpeech": "exclamation",
      "definitions": [
        {"definition": "used as a greeting", "example": "hello there, Katie!", "synonyms": ["hi"]},
        {"definition": "used to express surprise", "synonyms": []}
      ],
      "synonyms": ["greeting", "hi"]
    },
    {
      "partOfSpeech": "noun",
      "definitions": [{"definition": "an utterance of 'hello'", "example": "she was getting polite nods and hellos"}],
      "synonyms": []
    }
  ]
}]`

func TestHTTPClient_Lookup(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		delay      time.Duration
		wantErr    error
		wantStatus int
		check      func(t *testing.T, d *model.WordDetail)
	}{
		{
			name:   "正常系: レスポンスを正規化する",
			status: http.StatusOK,
			body:   helloResponse,
			check: func(t *testing.T, d *model.WordDetail) {
				assert.Equal(t, "hello", d.Word)
				assert.Equal(t, "həˈləʊ", d.Pronunciation)
				require.Len(t, d.Definitions, 2)
				assert.Equal(t, "exclamation", d.Definitions[0].PartOfSpeech)
				require.Len(t, d.Definitions[0].Definitions, 2)
				require.NotNil(t, d.Definitions[0].Definitions[0].Example)
				assert.Nil(t, d.Definitions[0].Definitions[1].Example)
				assert.Equal(t, "hello there, Katie!", d.Example)
				assert.Equal(t, []string{"greeting", "hi"}, d.Synonyms)
			},
		},
		{
			name:   "正常系: 発音も例文も無い場合はプレースホルダ",
			status: http.StatusOK,
			body:   `[{"word":"xyz","meanings":[{"definitions":[{"definition":"d"}]}]}]`,
			check: func(t *testing.T, d *model.WordDetail) {
				assert.Equal(t, model.NoPronunciation, d.Pronunciation)
				assert.Equal(t, model.NoExample, d.Example)
				assert.Equal(t, model.UnknownPOS, d.Definitions[0].PartOfSpeech)
				assert.NotNil(t, d.Synonyms)
				assert.Empty(t, d.Synonyms)
			},
		},
		{
			name:    "異常系: 404 は WordNotFound",
			status:  http.StatusNotFound,
			body:    `{"title":"No Definitions Found","message":"Sorry pal"}`,
			wantErr: model.ErrWordNotFound,
		},
		{
			name:       "異常系: その他のステータスはそのまま伝える",
			status:     http.StatusTooManyRequests,
			body:       `{"title":"Too Many Requests","message":"slow down"}`,
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "異常系: 壊れたJSONは 502",
			status:     http.StatusOK,
			body:       `{`,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "異常系: タイムアウトは 504",
			status:     http.StatusOK,
			body:       helloResponse,
			delay:      2 * time.Second,
			wantStatus: http.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v2/entries/en/hello", r.URL.Path)
				if tt.delay > 0 {
					select {
					case <-time.After(tt.delay):
					case <-r.Context().Done():
						return
					}
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, 500*time.Millisecond, srv.Client())
			got, err := client.Lookup(context.Background(), "hello")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.wantStatus != 0:
				var lookupErr *model.LookupError
				require.ErrorAs(t, err, &lookupErr)
				assert.Equal(t, tt.wantStatus, lookupErr.Status)
				assert.NotEmpty(t, lookupErr.Message)
			default:
				require.NoError(t, err)
				tt.check(t, got)
			}
		})
	}
}
