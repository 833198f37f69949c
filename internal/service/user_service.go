//go:generate mockery --name UserService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"

	"go_5_vocab_bookmark/internal/middleware"
	"go_5_vocab_bookmark/internal/model"
	"go_5_vocab_bookmark/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	GetUser(ctx context.Context, userID int64) (*model.User, error)
	UpsertKakaoUser(ctx context.Context, kakaoUser *model.KakaoUser) (*model.User, error)
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type userService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	bookmarkRepo repository.BookmarkRepository
	historyRepo  repository.SearchHistoryRepository
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository, bookmarkRepo repository.BookmarkRepository, historyRepo repository.SearchHistoryRepository) UserService {
	return &userService{
		db:           db,
		userRepo:     userRepo,
		bookmarkRepo: bookmarkRepo,
		historyRepo:  historyRepo,
	}
}

func (s *userService) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found", "user_id", userID)
			return nil, model.NewAppError("USER_NOT_FOUND", "User not found", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}
	return user, nil
}

// UpsertKakaoUser は Kakao ID でユーザーを探し、無ければ作成する。
// 同時ログインで作成が競合した場合は作成済みの行を返す。
// PostgreSQL では失敗した INSERT がトランザクションを中断させるため、トランザクションは使わない
func (s *userService) UpsertKakaoUser(ctx context.Context, kakaoUser *model.KakaoUser) (*model.User, error) {
	logger := middleware.GetLogger(ctx).With("kakao_id", kakaoUser.ID)

	if kakaoUser.ID == 0 {
		return nil, model.NewAppError("INVALID_KAKAO_USER", "Kakao user id is missing", "", model.ErrInvalidCredentials)
	}

	nickname := strings.TrimSpace(kakaoUser.DisplayName())
	var email *string
	if e := strings.TrimSpace(kakaoUser.KakaoAccount.Email); e != "" {
		email = &e
	}

	existing, err := s.userRepo.FindByKakaoID(ctx, s.db, kakaoUser.ID)
	if err == nil {
		updates := map[string]interface{}{}
		if nickname != "" && nickname != existing.Nickname {
			updates["nickname"] = nickname
			existing.Nickname = nickname
		}
		if email != nil && (existing.Email == nil || *existing.Email != *email) {
			updates["email"] = *email
			existing.Email = email
		}
		if len(updates) > 0 {
			if err := s.userRepo.Update(ctx, s.db, existing.ID, updates); err != nil {
				// プロフィール更新の失敗ではログインを止めない
				logger.Warn("Failed to refresh user profile", "error", err, "user_id", existing.ID)
			}
		}
		return existing, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	user := &model.User{
		KakaoID:  kakaoUser.ID,
		Email:    email,
		Nickname: nickname,
	}
	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		if !errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}
		logger.Warn("Conflict during kakao user creation, reloading")
		found, findErr := s.userRepo.FindByKakaoID(ctx, s.db, kakaoUser.ID)
		if findErr != nil {
			// kakao_id 以外 (email) の一意制約に当たった
			return nil, model.NewAppError("DUPLICATE_ENTRY", "指定されたメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		return found, nil
	}

	logger.Info("User created from kakao login", "user_id", user.ID)
	return user, nil
}

// CreateUser は管理用にユーザーを直接作成する。パスワードは bcrypt でハッシュ化して保存する
func (s *userService) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	user := &model.User{
		KakaoID:  req.KakaoID,
		Email:    req.Email,
		Nickname: strings.TrimSpace(req.Nickname),
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
		}
		hash := string(hashedPassword)
		user.PasswordHash = &hash
	}

	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("DUPLICATE_ENTRY", "指定された Kakao ID またはメールアドレスは既に使用されています。", "kakao_id,email", model.ErrConflict)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
	}

	logger.Info("User created", "user_id", user.ID, "kakao_id", user.KakaoID)
	return user, nil
}

// DeleteUser はユーザーと関連データをまとめて削除する
func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.bookmarkRepo.DeleteAllByUser(ctx, tx, userID); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
		}
		if _, err := s.historyRepo.DeleteAllByUser(ctx, tx, userID); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
		}
		if err := s.userRepo.Delete(ctx, tx, userID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("USER_NOT_FOUND", "User not found", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("User deleted", "user_id", userID)
	return nil
}
