// internal/handlers/auth_handler.go
package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"go_5_vocab_bookmark/internal/model"
	"go_5_vocab_bookmark/internal/service"
	"go_5_vocab_bookmark/internal/webutil"

	"github.com/rs/xid"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		service: s,
		logger:  logger,
	}
}

// KakaoLogin は state をクッキーに保存して Kakao の認可画面へリダイレクトする
func (h *AuthHandler) KakaoLogin(w http.ResponseWriter, r *http.Request) {
	state := xid.New().String()

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.service.KakaoLoginURL(state), http.StatusTemporaryRedirect)
}

// KakaoCallback は state を照合し、認可コードをアクセストークンに交換する
func (h *AuthHandler) KakaoCallback(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "KakaoCallback"))
	q := r.URL.Query()

	if errCode := q.Get("error"); errCode != "" {
		logger.Warn("Kakao returned an error", slog.String("error", errCode), slog.String("description", q.Get("error_description")))
		webutil.HandleError(w, logger, model.NewAppError("KAKAO_LOGIN_FAILED", "Kakao login failed", "", model.ErrInvalidCredentials))
		return
	}

	cookie, err := r.Cookie(oauthStateCookie)
	state := q.Get("state")
	if err != nil || state == "" || subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(state)) != 1 {
		logger.Warn("OAuth state mismatch")
		webutil.HandleError(w, logger, model.NewAppError("INVALID_STATE", "OAuth state が一致しません。", "state", model.ErrInvalidInput))
		return
	}
	// 使い終わった state は消す
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	res, err := h.service.LoginWithKakao(r.Context(), q.Get("code"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Kakao login completed")
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}
