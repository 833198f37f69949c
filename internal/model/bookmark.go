package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxBookmarkWordLength       = 25
	MaxBookmarkDefinitionLength = 255
)

type StudyCategory string

const (
	StudyCategoryVocabulary StudyCategory = "Vocabulary"
	StudyCategoryGrammar    StudyCategory = "Grammar"
	StudyCategoryReading    StudyCategory = "Reading"
	StudyCategoryWriting    StudyCategory = "Writing"
)

func (c StudyCategory) Valid() bool {
	switch c {
	case StudyCategoryVocabulary, StudyCategoryGrammar, StudyCategoryReading, StudyCategoryWriting:
		return true
	}
	return false
}

// BookmarkWord はユーザーが保存した単語
type BookmarkWord struct {
	WordID        uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        int64         `gorm:"not null;uniqueIndex:uq_bookmark_user_word,priority:1" json:"-"`
	Word          string        `gorm:"type:varchar(25);not null;uniqueIndex:uq_bookmark_user_word,priority:2" json:"word"`
	Definition    *string       `gorm:"type:varchar(255)" json:"definition"`
	Example       *string       `gorm:"type:text" json:"example"`
	Bookmark      bool          `gorm:"not null;default:true" json:"bookmark"`
	StudyCategory StudyCategory `gorm:"type:varchar(20);not null;default:'Vocabulary'" json:"study_category"`
	CreatedAt     time.Time     `json:"-"`
	UpdatedAt     time.Time     `json:"-"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (BookmarkWord) TableName() string {
	return "bookmark_words"
}

// 単語追加リクエストDTO
type AddBookmarkRequest struct {
	Word       string  `json:"word" validate:"required,max=25"`
	Definition *string `json:"definition,omitempty" validate:"omitempty,max=255"`
	Example    *string `json:"example,omitempty"`
}

// 単語更新（部分）リクエストDTO。存在しないキーは無視する
type PatchBookmarkRequest struct {
	Definition    *string `json:"definition,omitempty" validate:"omitempty,max=255"`
	Example       *string `json:"example,omitempty"`
	StudyCategory *string `json:"study_category,omitempty" validate:"omitempty,oneof=Vocabulary Grammar Reading Writing"`
}

func (r *PatchBookmarkRequest) IsEmpty() bool {
	return r.Definition == nil && r.Example == nil && r.StudyCategory == nil
}

// AddBookmarkResponse は追加成功時のレスポンス
type AddBookmarkResponse struct {
	Message  string        `json:"message"`
	Bookmark *BookmarkWord `json:"bookmark"`
}

// BulkDeleteResponse は一括削除のレスポンス
type BulkDeleteResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// MessageResponse は確認メッセージのみのレスポンス
type MessageResponse struct {
	Message string `json:"message"`
}
