//go:generate mockery --name BookmarkRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_vocab_bookmark/internal/middleware"
	"go_5_vocab_bookmark/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookmarkRepository は word_id と user_id を常に同じ条件で扱い、他人の行の存在を漏らさない
type BookmarkRepository interface {
	Create(ctx context.Context, tx *gorm.DB, bookmark *model.BookmarkWord) error
	FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID, userID int64) (*model.BookmarkWord, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID int64) ([]*model.BookmarkWord, error)
	CountByUser(ctx context.Context, db *gorm.DB, userID int64) (int64, error)
	Update(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, userID int64, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, userID int64) error
	DeleteAllByUser(ctx context.Context, tx *gorm.DB, userID int64) (int64, error)
}

type gormBookmarkRepository struct{}

func NewGormBookmarkRepository() BookmarkRepository {
	return &gormBookmarkRepository{}
}

func (r *gormBookmarkRepository) Create(ctx context.Context, tx *gorm.DB, bookmark *model.BookmarkWord) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(bookmark)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate bookmark on create", "user_id", bookmark.UserID, "word", bookmark.Word)
			return model.ErrConflict
		}
		logger.Error("Error creating bookmark in DB",
			"error", result.Error,
			"user_id", bookmark.UserID,
			"word", bookmark.Word,
		)
		return fmt.Errorf("gormBookmarkRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormBookmarkRepository) FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID, userID int64) (*model.BookmarkWord, error) {
	logger := middleware.GetLogger(ctx)
	var bookmark model.BookmarkWord
	result := db.WithContext(ctx).Where("word_id = ? AND user_id = ?", wordID, userID).First(&bookmark)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding bookmark by ID in DB",
			"error", result.Error,
			"user_id", userID,
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormBookmarkRepository.FindByID: %w", result.Error)
	}
	return &bookmark, nil
}

func (r *gormBookmarkRepository) FindByUser(ctx context.Context, db *gorm.DB, userID int64) ([]*model.BookmarkWord, error) {
	logger := middleware.GetLogger(ctx)
	var bookmarks []*model.BookmarkWord
	// 登録順。同時刻は v7 の word_id で決まる
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC, word_id ASC").Find(&bookmarks)
	if result.Error != nil {
		logger.Error("Error finding bookmarks by user in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormBookmarkRepository.FindByUser: %w", result.Error)
	}
	return bookmarks, nil
}

func (r *gormBookmarkRepository) CountByUser(ctx context.Context, db *gorm.DB, userID int64) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.BookmarkWord{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting bookmarks in DB", "error", result.Error, "user_id", userID)
		return 0, fmt.Errorf("gormBookmarkRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}

func (r *gormBookmarkRepository) Update(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, userID int64, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.BookmarkWord{}).
		Where("word_id = ? AND user_id = ?", wordID, userID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating bookmark in DB",
			"error", result.Error,
			"user_id", userID,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormBookmarkRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormBookmarkRepository) Delete(ctx context.Context, tx *gorm.DB, wordID uuid.UUID, userID int64) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("word_id = ? AND user_id = ?", wordID, userID).Delete(&model.BookmarkWord{})
	if result.Error != nil {
		logger.Error("Error deleting bookmark in DB",
			"error", result.Error,
			"user_id", userID,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormBookmarkRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormBookmarkRepository) DeleteAllByUser(ctx context.Context, tx *gorm.DB, userID int64) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.BookmarkWord{})
	if result.Error != nil {
		logger.Error("Error deleting all bookmarks in DB", "error", result.Error, "user_id", userID)
		return 0, fmt.Errorf("gormBookmarkRepository.DeleteAllByUser: %w", result.Error)
	}
	return result.RowsAffected, nil
}
