// internal/server/router.go
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go_5_vocab_bookmark/internal/config"
	"go_5_vocab_bookmark/internal/dictionary"
	"go_5_vocab_bookmark/internal/handlers"
	"go_5_vocab_bookmark/internal/middleware"
	"go_5_vocab_bookmark/internal/repository"
	"go_5_vocab_bookmark/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

const requestTimeout = 60 * time.Second

// NewRouter は依存関係を組み立ててルーターを返す。
// dict が nil の場合は設定値から dictionaryapi.dev クライアントを作る
func NewRouter(cfg *config.Config, db *gorm.DB, dict dictionary.Client, logger *slog.Logger) (*chi.Mux, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dict == nil {
		dict = dictionary.NewClient(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout, nil)
	}

	// Dependency Injection
	userRepo := repository.NewGormUserRepository()
	bookmarkRepo := repository.NewGormBookmarkRepository()
	historyRepo := repository.NewGormSearchHistoryRepository()

	userService := service.NewUserService(db, userRepo, bookmarkRepo, historyRepo)
	bookmarkService := service.NewBookmarkService(db, userRepo, bookmarkRepo, cfg)
	historyService := service.NewSearchHistoryService(db, historyRepo, cfg)
	wordSearchService := service.NewWordSearchService(dict, historyService)

	tokens, err := service.NewTokenService(cfg)
	if err != nil {
		if cfg.Auth.Enabled {
			return nil, fmt.Errorf("creating token service: %w", err)
		}
		logger.Warn("JWT is not configured; kakao login routes are disabled", slog.Any("error", err))
		tokens = nil
	}

	userHandler := handlers.NewUserHandler(userService, logger)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService, logger)
	searchHandler := handlers.NewSearchHandler(wordSearchService, historyService, cfg, logger)

	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))

	// 認証方式の切り替え
	requireAuth := middleware.DevUserContextMiddleware
	optionalAuth := middleware.DevOptionalUserContextMiddleware
	if cfg.Auth.Enabled {
		logger.Info("Applying JWT authentication middleware")
		requireAuth = middleware.JWTAuthMiddleware(tokens)
		optionalAuth = middleware.OptionalJWTAuthMiddleware(tokens)
	} else {
		logger.Warn("Authentication is disabled; X-User-ID header is trusted")
	}

	// --- Public routes ---
	if tokens != nil {
		authService := service.NewAuthService(service.NewKakaoProvider(cfg), userService, tokens)
		authHandler := handlers.NewAuthHandler(authService, logger)
		r.Route("/auth/kakao", func(r chi.Router) {
			r.Get("/login", authHandler.KakaoLogin)
			r.Get("/callback", authHandler.KakaoCallback)
		})
	}

	r.With(optionalAuth).Get("/search/word", searchHandler.SearchWord)

	// --- Protected routes ---
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Route("/users/me", func(r chi.Router) {
			r.Get("/", userHandler.GetMe)
			r.Delete("/", userHandler.DeleteMe)
		})

		r.Route("/bookmark/words", func(r chi.Router) {
			r.Post("/", bookmarkHandler.AddBookmark)
			r.Get("/", bookmarkHandler.ListBookmarks)
			r.Delete("/", bookmarkHandler.DeleteAllBookmarks)
			r.Get("/{id}", bookmarkHandler.GetBookmark)
			r.Patch("/{id}", bookmarkHandler.UpdateBookmark)
			r.Delete("/{id}", bookmarkHandler.DeleteBookmark)
		})

		r.Route("/search/history", func(r chi.Router) {
			r.Get("/", searchHandler.ListHistory)
			r.Delete("/", searchHandler.DeleteAllHistory)
			r.Delete("/{id}", searchHandler.DeleteHistory)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			logger.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			logger.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r, nil
}
