// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "vocab-bookmark"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort        = ":8080"
	DefaultDatabaseDriver    = "postgres"
	DefaultLogLevel          = "info"
	DefaultBookmarkLimit     = 100
	DefaultPageSize          = 10
	DefaultMaxPageSize       = 100
	DefaultAuthEnabled       = true
	DefaultAccessTokenTTL    = 24 * time.Hour
	DefaultDictionaryTimeout = 5 * time.Second
)

// 外部サービスのエンドポイント
const (
	KakaoAuthURL         = "https://kauth.kakao.com/oauth/authorize"
	KakaoTokenURL        = "https://kauth.kakao.com/oauth/token"
	KakaoUserInfoURL     = "https://kapi.kakao.com/v2/user/me"
	DictionaryAPIBaseURL = "https://api.dictionaryapi.dev"
)
