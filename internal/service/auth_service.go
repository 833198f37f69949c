//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
//go:generate mockery --name KakaoOAuth --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go_5_vocab_bookmark/internal/config"
	"go_5_vocab_bookmark/internal/middleware"
	"go_5_vocab_bookmark/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// KakaoOAuth は Kakao の認可コードフローを扱う
type KakaoOAuth interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*model.KakaoUser, error)
}

type kakaoProvider struct {
	config      *oauth2.Config
	userInfoURL string
}

// NewKakaoProvider は設定値から Kakao 用の oauth2.Config を組み立てる
func NewKakaoProvider(cfg *config.Config) KakaoOAuth {
	return &kakaoProvider{
		config: &oauth2.Config{
			ClientID:     cfg.Kakao.ClientID,
			ClientSecret: cfg.Kakao.ClientSecret,
			RedirectURL:  cfg.Kakao.RedirectURL,
			Scopes:       []string{"profile_nickname", "account_email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.Kakao.AuthURL,
				TokenURL: cfg.Kakao.TokenURL,
				// Kakao は client_secret をフォームで受け取る
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		userInfoURL: cfg.Kakao.UserInfoURL,
	}
}

func (p *kakaoProvider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (p *kakaoProvider) Exchange(ctx context.Context, code string) (*model.KakaoUser, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("kakaoProvider.Exchange: exchanging code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("kakaoProvider.Exchange: building request: %w", err)
	}
	resp, err := p.config.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("kakaoProvider.Exchange: calling user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kakaoProvider.Exchange: user info returned status %d", resp.StatusCode)
	}

	var user model.KakaoUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("kakaoProvider.Exchange: decoding user info: %w", err)
	}
	if user.ID == 0 {
		return nil, errors.New("kakaoProvider.Exchange: kakao returned an invalid user")
	}
	return &user, nil
}

// TokenService はアクセストークン (JWT) の発行と検証を行う
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewTokenService(cfg *config.Config) (*TokenService, error) {
	if len(cfg.JWT.SecretKey) < 16 {
		return nil, errors.New("jwt secret key must be at least 16 characters")
	}
	ttl := cfg.JWT.AccessTokenTTL
	if ttl <= 0 {
		ttl = config.DefaultAccessTokenTTL
	}
	issuer := cfg.JWT.Issuer
	if issuer == "" {
		issuer = config.AppName
	}
	return &TokenService{secret: []byte(cfg.JWT.SecretKey), ttl: ttl, issuer: issuer}, nil
}

func (s *TokenService) Generate(userID int64) (string, error) {
	return s.GenerateWithDuration(userID, s.ttl)
}

func (s *TokenService) GenerateWithDuration(userID int64, d time.Duration) (string, error) {
	now := time.Now()
	claims := &model.JWTCustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("TokenService.Generate: %w", err)
	}
	return signed, nil
}

// Validate はトークンを検証して sub のユーザーIDを返す。期限切れは model.ErrTokenExpired
func (s *TokenService) Validate(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&model.JWTCustomClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, model.ErrTokenExpired
		}
		return 0, fmt.Errorf("%w: %v", model.ErrInvalidCredentials, err)
	}

	claims, ok := token.Claims.(*model.JWTCustomClaims)
	if !ok || !token.Valid {
		return 0, model.ErrInvalidCredentials
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, model.ErrInvalidCredentials
	}
	return userID, nil
}

type AuthService interface {
	KakaoLoginURL(state string) string
	LoginWithKakao(ctx context.Context, code string) (*model.LoginResponse, error)
}

type authService struct {
	kakao  KakaoOAuth
	users  UserService
	tokens *TokenService
}

func NewAuthService(kakao KakaoOAuth, users UserService, tokens *TokenService) AuthService {
	return &authService{
		kakao:  kakao,
		users:  users,
		tokens: tokens,
	}
}

func (s *authService) KakaoLoginURL(state string) string {
	return s.kakao.AuthURL(state)
}

// LoginWithKakao は認可コードを Kakao ユーザーに交換し、ローカルユーザーを用意して JWT を発行する
func (s *authService) LoginWithKakao(ctx context.Context, code string) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	if code == "" {
		return nil, model.NewAppError("MISSING_CODE", "Authorization code is required", "code", model.ErrInvalidInput)
	}

	kakaoUser, err := s.kakao.Exchange(ctx, code)
	if err != nil {
		logger.Warn("Kakao code exchange failed", "error", err)
		return nil, model.NewAppError("KAKAO_LOGIN_FAILED", "Kakao login failed", "", model.ErrInvalidCredentials)
	}

	user, err := s.users.UpsertKakaoUser(ctx, kakaoUser)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.Generate(user.ID)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.ID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	logger.Info("Login successful", "user_id", user.ID)
	return &model.LoginResponse{AccessToken: accessToken, TokenType: "bearer"}, nil
}
