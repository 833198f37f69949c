package repository

import (
	"fmt"

	"go_5_vocab_bookmark/internal/model"

	"gorm.io/gorm"
)

// Models はマイグレーション対象のモデル (親テーブルが先)
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.SearchHistory{},
		&model.BookmarkWord{},
	}
}

// Migrate はテーブルと制約 (外部キー, (user_id, word) の一意インデックス) を作成する
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}
	return nil
}
