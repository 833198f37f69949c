//go:generate mockery --name SearchHistoryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_vocab_bookmark/internal/middleware"
	"go_5_vocab_bookmark/internal/model"

	"gorm.io/gorm"
)

type SearchHistoryRepository interface {
	Create(ctx context.Context, db *gorm.DB, history *model.SearchHistory) error
	FindByUser(ctx context.Context, db *gorm.DB, userID int64, offset, limit int) ([]*model.SearchHistory, error)
	Delete(ctx context.Context, db *gorm.DB, historyID, userID int64) error
	DeleteAllByUser(ctx context.Context, db *gorm.DB, userID int64) (int64, error)
}

type gormSearchHistoryRepository struct{}

func NewGormSearchHistoryRepository() SearchHistoryRepository {
	return &gormSearchHistoryRepository{}
}

func (r *gormSearchHistoryRepository) Create(ctx context.Context, db *gorm.DB, history *model.SearchHistory) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(history)
	if result.Error != nil {
		logger.Error("Error creating search history in DB",
			"error", result.Error,
			"user_id", history.UserID,
			"word", history.Word,
		)
		return fmt.Errorf("gormSearchHistoryRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSearchHistoryRepository) FindByUser(ctx context.Context, db *gorm.DB, userID int64, offset, limit int) ([]*model.SearchHistory, error) {
	logger := middleware.GetLogger(ctx)
	var records []*model.SearchHistory
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&records)
	if result.Error != nil {
		logger.Error("Error finding search history in DB",
			"error", result.Error,
			"user_id", userID,
			"offset", offset,
			"limit", limit,
		)
		return nil, fmt.Errorf("gormSearchHistoryRepository.FindByUser: %w", result.Error)
	}
	return records, nil
}

func (r *gormSearchHistoryRepository) Delete(ctx context.Context, db *gorm.DB, historyID, userID int64) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("id = ? AND user_id = ?", historyID, userID).Delete(&model.SearchHistory{})
	if result.Error != nil {
		logger.Error("Error deleting search history in DB", "error", result.Error, "user_id", userID, "history_id", historyID)
		return fmt.Errorf("gormSearchHistoryRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormSearchHistoryRepository) DeleteAllByUser(ctx context.Context, db *gorm.DB, userID int64) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.SearchHistory{})
	if result.Error != nil {
		logger.Error("Error deleting all search history in DB", "error", result.Error, "user_id", userID)
		return 0, fmt.Errorf("gormSearchHistoryRepository.DeleteAllByUser: %w", result.Error)
	}
	return result.RowsAffected, nil
}
