package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go_5_vocab_bookmark/internal/model"
)

const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディを厳密にデコードします (未知のフィールドはエラー)
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	return decodeJSON(r, dst, true, false)
}

// DecodePartialJSONBody は部分更新用。未知のフィールドは無視し、空ボディは何も更新しない扱いにする
func DecodePartialJSONBody(r *http.Request, dst interface{}) error {
	return decodeJSON(r, dst, false, true)
}

func decodeJSON(r *http.Request, dst interface{}, strict, allowEmpty bool) error {
	if r.Body == nil {
		if allowEmpty {
			return nil
		}
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if strict {
		decoder.DisallowUnknownFields()
	}

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) && allowEmpty {
			return nil
		}
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return nil
}

// QueryInt はクエリパラメータを整数として読み取る。未指定ならデフォルト値を返す
func QueryInt(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewAppError("INVALID_QUERY_PARAM", fmt.Sprintf("%sは整数で指定してください。", key), key, model.ErrInvalidInput)
	}
	return v, nil
}
