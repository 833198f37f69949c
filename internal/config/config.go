// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Driver       string `mapstructure:"driver"` // postgres | sqlite
		URL          string `mapstructure:"url"`
		MaxIdleConns int    `mapstructure:"max_idle_conns"`
		MaxOpenConns int    `mapstructure:"max_open_conns"`
	} `mapstructure:"database"`
	Server struct {
		Port         string        `mapstructure:"port"`
		ReadTimeout  time.Duration `mapstructure:"read_timeout"`
		WriteTimeout time.Duration `mapstructure:"write_timeout"`
		IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	JWT struct {
		SecretKey      string        `mapstructure:"secret_key"`
		AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
		Issuer         string        `mapstructure:"issuer"`
	} `mapstructure:"jwt"`
	Kakao struct {
		ClientID     string `mapstructure:"client_id"`
		ClientSecret string `mapstructure:"client_secret"`
		RedirectURL  string `mapstructure:"redirect_url"`
		AuthURL      string `mapstructure:"auth_url"`
		TokenURL     string `mapstructure:"token_url"`
		UserInfoURL  string `mapstructure:"user_info_url"`
	} `mapstructure:"kakao"`
	Dictionary struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"dictionary"`
	App struct {
		BookmarkLimit   int `mapstructure:"bookmark_limit"`
		DefaultPageSize int `mapstructure:"default_page_size"`
		MaxPageSize     int `mapstructure:"max_page_size"`
	} `mapstructure:"app"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
}

// LoadConfig は .env → 設定ファイル → 環境変数の順に読み込み、未設定項目にデフォルトを入れる
func LoadConfig(paths ...string) (*Config, error) {
	// .env は任意。存在しなければ無視する
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", slog.Any("error", err))
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP") // 例: APP_LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// シークレット類は接頭辞なしの環境変数でも受け付ける
	_ = v.BindEnv("auth.enabled", "APP_AUTH_ENABLED", "AUTH_ENABLED")
	_ = v.BindEnv("database.url", "APP_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("jwt.secret_key", "APP_JWT_SECRET_KEY", "JWT_SECRET_KEY")
	_ = v.BindEnv("kakao.client_id", "APP_KAKAO_CLIENT_ID", "KAKAO_CLIENT_ID")
	_ = v.BindEnv("kakao.client_secret", "APP_KAKAO_CLIENT_SECRET", "KAKAO_CLIENT_SECRET")
	_ = v.BindEnv("kakao.redirect_url", "APP_KAKAO_REDIRECT_URL", "KAKAO_REDIRECT_URL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Warn("Config file not found. Using defaults and environment variables.")
		} else {
			return nil, fmt.Errorf("config.LoadConfig: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.LoadConfig: unmarshal: %w", err)
	}

	applyDefaults(&cfg)
	// 未設定なら認証は有効
	if !v.IsSet("auth.enabled") {
		cfg.Auth.Enabled = DefaultAuthEnabled
	}

	slog.Info("Config loaded",
		slog.String("port", cfg.Server.Port),
		slog.String("db_driver", cfg.Database.Driver),
		slog.Int("bookmark_limit", cfg.App.BookmarkLimit),
		slog.Bool("auth_enabled", cfg.Auth.Enabled),
	)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 5 * time.Second
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 15 * time.Second
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = 120 * time.Second
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DefaultDatabaseDriver
	}
	if cfg.Database.MaxIdleConns <= 0 {
		cfg.Database.MaxIdleConns = 10
	}
	if cfg.Database.MaxOpenConns <= 0 {
		cfg.Database.MaxOpenConns = 100
	}
	if cfg.Database.URL == "" {
		slog.Warn("Database URL is not set in config.")
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Authorization", "Content-Type", "X-User-ID"}
	}
	if cfg.JWT.AccessTokenTTL <= 0 {
		cfg.JWT.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = AppName
	}
	if cfg.Kakao.AuthURL == "" {
		cfg.Kakao.AuthURL = KakaoAuthURL
	}
	if cfg.Kakao.TokenURL == "" {
		cfg.Kakao.TokenURL = KakaoTokenURL
	}
	if cfg.Kakao.UserInfoURL == "" {
		cfg.Kakao.UserInfoURL = KakaoUserInfoURL
	}
	if cfg.Dictionary.BaseURL == "" {
		cfg.Dictionary.BaseURL = DictionaryAPIBaseURL
	}
	if cfg.Dictionary.Timeout <= 0 {
		cfg.Dictionary.Timeout = DefaultDictionaryTimeout
	}
	if cfg.App.BookmarkLimit <= 0 {
		cfg.App.BookmarkLimit = DefaultBookmarkLimit
	}
	if cfg.App.DefaultPageSize <= 0 {
		cfg.App.DefaultPageSize = DefaultPageSize
	}
	if cfg.App.MaxPageSize <= 0 {
		cfg.App.MaxPageSize = DefaultMaxPageSize
	}
}
