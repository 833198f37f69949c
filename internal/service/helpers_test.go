package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"go_5_vocab_bookmark/internal/model"
	"go_5_vocab_bookmark/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB はテストごとに独立したインメモリ SQLite を用意する
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := repository.NewDB(repository.DriverSQLite, dsn, logger)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, kakaoID int64) *model.User {
	t.Helper()
	user := &model.User{KakaoID: kakaoID, Nickname: "tester"}
	require.NoError(t, repository.NewGormUserRepository().Create(context.Background(), db, user))
	return user
}

// assertAppError はエラーが AppError で、コードと原因が一致することを確認する
func assertAppError(t *testing.T, err error, code string, target error) {
	t.Helper()
	require.Error(t, err)
	var appErr *model.AppError
	require.True(t, errors.As(err, &appErr), "AppError ではありません: %v", err)
	assert.Equal(t, code, appErr.Detail.Code)
	if target != nil {
		assert.ErrorIs(t, err, target)
	}
}

func strPtr(s string) *string { return &s }
