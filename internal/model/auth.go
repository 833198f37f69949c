package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// KakaoUser は Kakao /v2/user/me のうち利用する部分
type KakaoUser struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email   string `json:"email"`
		Profile struct {
			Nickname string `json:"nickname"`
		} `json:"profile"`
	} `json:"kakao_account"`
	Properties struct {
		Nickname string `json:"nickname"`
	} `json:"properties"`
}

// DisplayName はプロフィールのニックネームを優先して返す
func (k *KakaoUser) DisplayName() string {
	if k.KakaoAccount.Profile.Nickname != "" {
		return k.KakaoAccount.Profile.Nickname
	}
	return k.Properties.Nickname
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// JWTCustomClaims はJWTに含めるクレーム。sub にユーザーIDを入れる
type JWTCustomClaims struct {
	jwt.RegisteredClaims
}
