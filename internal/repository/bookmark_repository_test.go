package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_5_vocab_bookmark/internal/model"
)

func newBookmark(userID int64, word string) *model.BookmarkWord {
	return &model.BookmarkWord{
		WordID:        uuid.Must(uuid.NewV7()),
		UserID:        userID,
		Word:          word,
		Bookmark:      true,
		StudyCategory: model.StudyCategoryVocabulary,
	}
}

func TestGormBookmarkRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormBookmarkRepository()
	owner := createTestUser(t, db, 2001)
	stranger := createTestUser(t, db, 2002)

	first := newBookmark(owner.ID, "apple")
	require.NoError(t, repo.Create(ctx, db, first))
	require.NoError(t, repo.Create(ctx, db, newBookmark(owner.ID, "banana")))

	t.Run("異常系: 同じユーザーで同じ単語は一意制約違反", func(t *testing.T) {
		err := repo.Create(ctx, db, newBookmark(owner.ID, "apple"))
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("正常系: 別ユーザーなら同じ単語を登録できる", func(t *testing.T) {
		assert.NoError(t, repo.Create(ctx, db, newBookmark(stranger.ID, "apple")))
	})

	t.Run("正常系: 一覧は登録順", func(t *testing.T) {
		list, err := repo.FindByUser(ctx, db, owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "apple", list[0].Word)
		assert.Equal(t, "banana", list[1].Word)
	})

	t.Run("異常系: 他人のブックマークは見つからない", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, first.WordID, stranger.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: 部分更新", func(t *testing.T) {
		err := repo.Update(ctx, db, first.WordID, owner.ID, map[string]interface{}{"definition": "a fruit"})
		require.NoError(t, err)
		got, err := repo.FindByID(ctx, db, first.WordID, owner.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Definition)
		assert.Equal(t, "a fruit", *got.Definition)
	})

	t.Run("異常系: 他人のブックマークは更新も削除もできない", func(t *testing.T) {
		err := repo.Update(ctx, db, first.WordID, stranger.ID, map[string]interface{}{"definition": "x"})
		assert.ErrorIs(t, err, model.ErrNotFound)
		err = repo.Delete(ctx, db, first.WordID, stranger.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: 一括削除は件数を返す", func(t *testing.T) {
		n, err := repo.DeleteAllByUser(ctx, db, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		n, err = repo.DeleteAllByUser(ctx, db, owner.ID)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestGormBookmarkRepository_FindByUserTiebreak(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormBookmarkRepository()
	owner := createTestUser(t, db, 2101)

	// 同じ created_at でも v7 の word_id 順に返る
	sameTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	want := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		word := fmt.Sprintf("w%d", i)
		b := newBookmark(owner.ID, word)
		b.CreatedAt = sameTime
		require.NoError(t, repo.Create(ctx, db, b))
		want = append(want, word)
	}

	list, err := repo.FindByUser(ctx, db, owner.ID)
	require.NoError(t, err)
	got := make([]string, 0, len(list))
	for _, b := range list {
		got = append(got, b.Word)
	}
	assert.Equal(t, want, got)
}
