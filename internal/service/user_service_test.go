package service_test

import (
	"context"
	"testing"

	"go_5_vocab_bookmark/internal/model"
	"go_5_vocab_bookmark/internal/repository"
	"go_5_vocab_bookmark/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) service.UserService {
	return service.NewUserService(db,
		repository.NewGormUserRepository(),
		repository.NewGormBookmarkRepository(),
		repository.NewGormSearchHistoryRepository(),
	)
}

func kakaoUser(id int64, nickname, email string) *model.KakaoUser {
	u := &model.KakaoUser{ID: id}
	u.KakaoAccount.Profile.Nickname = nickname
	u.KakaoAccount.Email = email
	return u
}

func TestUserService_UpsertKakaoUser(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newUserService(db)

	first, err := svc.UpsertKakaoUser(ctx, kakaoUser(777, "alice", "alice@example.com"))
	require.NoError(t, err)
	require.NotZero(t, first.ID)
	assert.Equal(t, "alice", first.Nickname)
	require.NotNil(t, first.Email)
	assert.Equal(t, "alice@example.com", *first.Email)

	t.Run("同じ Kakao ID は同じユーザーになる", func(t *testing.T) {
		again, err := svc.UpsertKakaoUser(ctx, kakaoUser(777, "alice2", ""))
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID)
		assert.Equal(t, "alice2", again.Nickname)

		stored, err := svc.GetUser(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice2", stored.Nickname)
		assert.Equal(t, "alice@example.com", *stored.Email)
	})

	t.Run("ID が無い Kakao ユーザーは拒否", func(t *testing.T) {
		_, err := svc.UpsertKakaoUser(ctx, kakaoUser(0, "nobody", ""))
		assertAppError(t, err, "INVALID_KAKAO_USER", model.ErrInvalidCredentials)
	})

	t.Run("プロフィールのニックネームが無ければ properties を使う", func(t *testing.T) {
		u := &model.KakaoUser{ID: 778}
		u.Properties.Nickname = "bob"
		got, err := svc.UpsertKakaoUser(ctx, u)
		require.NoError(t, err)
		assert.Equal(t, "bob", got.Nickname)
		assert.Nil(t, got.Email)
	})
}

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newUserService(db)

	user, err := svc.CreateUser(ctx, &model.CreateUserRequest{KakaoID: 1, Nickname: "admin", Password: strPtr("password123")})
	require.NoError(t, err)
	require.NotNil(t, user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte("password123")))

	_, err = svc.CreateUser(ctx, &model.CreateUserRequest{KakaoID: 1, Nickname: "dup"})
	assertAppError(t, err, "DUPLICATE_ENTRY", model.ErrConflict)
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := newUserService(db)
	bookmarks := newBookmarkService(db, 0)
	history := service.NewSearchHistoryService(db, repository.NewGormSearchHistoryRepository(), nil)

	user := createTestUser(t, db, 9001)
	_, err := bookmarks.AddBookmark(ctx, user.ID, &model.AddBookmarkRequest{Word: "gone"})
	require.NoError(t, err)
	_, err = history.RecordSearch(ctx, user.ID, "gone")
	require.NoError(t, err)

	require.NoError(t, users.DeleteUser(ctx, user.ID))

	_, err = users.GetUser(ctx, user.ID)
	assertAppError(t, err, "USER_NOT_FOUND", model.ErrNotFound)

	var bookmarkCount, historyCount int64
	require.NoError(t, db.Model(&model.BookmarkWord{}).Where("user_id = ?", user.ID).Count(&bookmarkCount).Error)
	require.NoError(t, db.Model(&model.SearchHistory{}).Where("user_id = ?", user.ID).Count(&historyCount).Error)
	assert.Zero(t, bookmarkCount)
	assert.Zero(t, historyCount)

	err = users.DeleteUser(ctx, user.ID)
	assertAppError(t, err, "USER_NOT_FOUND", model.ErrNotFound)
}
