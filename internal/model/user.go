package model

import (
	"time"
)

// User はソーシャルログインで作成される利用者
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	KakaoID      int64     `gorm:"uniqueIndex;not null" json:"kakao_id"`
	Email        *string   `gorm:"uniqueIndex" json:"email,omitempty"`
	Nickname     string    `gorm:"not null" json:"nickname"`
	PasswordHash *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// CreateUserRequest は管理 CLI からのユーザー作成入力
type CreateUserRequest struct {
	KakaoID  int64   `json:"kakao_id" validate:"required,gt=0"`
	Nickname string  `json:"nickname" validate:"required,min=1,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
}

// UserResponse はクライアントに返すユーザー情報
type UserResponse struct {
	ID        int64     `json:"id"`
	KakaoID   int64     `json:"kakao_id"`
	Email     *string   `json:"email,omitempty"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		KakaoID:   u.KakaoID,
		Email:     u.Email,
		Nickname:  u.Nickname,
		CreatedAt: u.CreatedAt,
	}
}
