//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_vocab_bookmark/internal/middleware"
	"go_5_vocab_bookmark/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, userID int64) (*model.User, error)
	FindByKakaoID(ctx context.Context, db *gorm.DB, kakaoID int64) (*model.User, error)
	Update(ctx context.Context, db *gorm.DB, userID int64, updates map[string]interface{}) error
	// LockByID はトランザクション内でユーザー行を更新してロックを取得する
	LockByID(ctx context.Context, tx *gorm.DB, userID int64) error
	Delete(ctx context.Context, db *gorm.DB, userID int64) error
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create user", "error", result.Error, "kakao_id", user.KakaoID)
			return model.ErrConflict
		}
		logger.Error("Error creating user in DB", "error", result.Error, "kakao_id", user.KakaoID)
		return fmt.Errorf("gormUserRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID int64) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where("id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by ID in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormUserRepository.FindByID: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByKakaoID(ctx context.Context, db *gorm.DB, kakaoID int64) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where("kakao_id = ?", kakaoID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("User not found by kakao id", "kakao_id", kakaoID)
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by kakao id in DB", "error", result.Error, "kakao_id", kakaoID)
		return nil, fmt.Errorf("gormUserRepository.FindByKakaoID: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) Update(ctx context.Context, db *gorm.DB, userID int64, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error updating user in DB", "error", result.Error, "user_id", userID)
		return fmt.Errorf("gormUserRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormUserRepository) LockByID(ctx context.Context, tx *gorm.DB, userID int64) error {
	logger := middleware.GetLogger(ctx)
	// UPDATE で行ロックを取る。SELECT ... FOR UPDATE を持たない SQLite でも同じ効果になる
	result := tx.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Update("updated_at", time.Now())
	if result.Error != nil {
		logger.Error("Error locking user row", "error", result.Error, "user_id", userID)
		return fmt.Errorf("gormUserRepository.LockByID: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormUserRepository) Delete(ctx context.Context, db *gorm.DB, userID int64) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("id = ?", userID).Delete(&model.User{})
	if result.Error != nil {
		logger.Error("Error deleting user in DB", "error", result.Error, "user_id", userID)
		return fmt.Errorf("gormUserRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
