package model

import "time"

// SearchHistory は単語検索1回分の記録。更新はせず作成と削除のみ
type SearchHistory struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Word      string    `gorm:"not null" json:"word"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	// ユーザー削除時に DB 側で連鎖削除される
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SearchHistory) TableName() string {
	return "search_history"
}

// SearchHistoryListResponse は履歴一覧のレスポンス
type SearchHistoryListResponse struct {
	Records []*SearchHistory `json:"records"`
}

// HistoryPageQuery は履歴一覧のクエリパラメータ。page_size の上限は設定値でサービス側が検証する
type HistoryPageQuery struct {
	Page     int `validate:"gte=1"`
	PageSize int `validate:"gte=1"`
}
