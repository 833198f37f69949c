//go:generate mockery --name BookmarkService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go_5_vocab_bookmark/internal/config"
	"go_5_vocab_bookmark/internal/middleware"
	"go_5_vocab_bookmark/internal/model"
	"go_5_vocab_bookmark/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MsgBookmarkNotFound = "Word not found or does not belong to the user."
	MsgBookmarkAdded    = "Word added to bookmark successfully."
	MsgBookmarkDeleted  = "Word deleted successfully."
	MsgBookmarksCleared = "All bookmarked words deleted successfully."
)

type BookmarkService interface {
	AddBookmark(ctx context.Context, userID int64, req *model.AddBookmarkRequest) (*model.BookmarkWord, error)
	ListBookmarks(ctx context.Context, userID int64) ([]*model.BookmarkWord, error)
	GetBookmark(ctx context.Context, userID int64, wordID uuid.UUID) (*model.BookmarkWord, error)
	UpdateBookmark(ctx context.Context, userID int64, wordID uuid.UUID, req *model.PatchBookmarkRequest) (*model.BookmarkWord, error)
	DeleteBookmark(ctx context.Context, userID int64, wordID uuid.UUID) error
	DeleteAllBookmarks(ctx context.Context, userID int64) (int64, error)
}

type bookmarkService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	bookmarkRepo repository.BookmarkRepository
	limit        int
}

func NewBookmarkService(db *gorm.DB, userRepo repository.UserRepository, bookmarkRepo repository.BookmarkRepository, cfg *config.Config) BookmarkService {
	limit := config.DefaultBookmarkLimit
	if cfg != nil && cfg.App.BookmarkLimit > 0 {
		limit = cfg.App.BookmarkLimit
	}
	return &bookmarkService{
		db:           db,
		userRepo:     userRepo,
		bookmarkRepo: bookmarkRepo,
		limit:        limit,
	}
}

// AddBookmark は上限と重複をトランザクション内で確認してから登録する。
// ユーザー行をロックして同一ユーザーの同時追加を直列化し、
// (user_id, word) の一意制約で最終的な重複を防ぐ。
func (s *bookmarkService) AddBookmark(ctx context.Context, userID int64, req *model.AddBookmarkRequest) (*model.BookmarkWord, error) {
	logger := middleware.GetLogger(ctx)

	word := strings.TrimSpace(req.Word)
	if word == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "単語は必須項目です。", "word", model.ErrInvalidInput)
	}
	if utf8.RuneCountInString(word) > model.MaxBookmarkWordLength {
		return nil, model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("単語は%d文字以下で入力してください。", model.MaxBookmarkWordLength), "word", model.ErrInvalidInput)
	}
	if req.Definition != nil && utf8.RuneCountInString(*req.Definition) > model.MaxBookmarkDefinitionLength {
		return nil, model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("意味は%d文字以下で入力してください。", model.MaxBookmarkDefinitionLength), "definition", model.ErrInvalidInput)
	}

	var created *model.BookmarkWord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.LockByID(ctx, tx, userID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("USER_NOT_FOUND", "User not found", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		count, err := s.bookmarkRepo.CountByUser(ctx, tx, userID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		if count >= int64(s.limit) {
			logger.Warn("Bookmark limit reached", "user_id", userID, "count", count, "limit", s.limit)
			return model.NewAppError("BOOKMARK_LIMIT_EXCEEDED",
				fmt.Sprintf("You can bookmark up to %d words.", s.limit), "", model.ErrLimitExceeded)
		}

		// v7 は時刻順に並ぶので一覧のタイブレークに使える
		wordID, err := uuid.NewV7()
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		bookmark := &model.BookmarkWord{
			WordID:        wordID,
			UserID:        userID,
			Word:          word,
			Definition:    req.Definition,
			Example:       req.Example,
			Bookmark:      true,
			StudyCategory: model.StudyCategoryVocabulary,
		}
		if err := s.bookmarkRepo.Create(ctx, tx, bookmark); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_WORD", "This word is already bookmarked.", "word", model.ErrDuplicateWord)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ブックマークの登録に失敗しました。", "", err)
		}
		created = bookmark
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Bookmark added", "user_id", userID, "word_id", created.WordID.String(), "word", created.Word)
	return created, nil
}

func (s *bookmarkService) ListBookmarks(ctx context.Context, userID int64) ([]*model.BookmarkWord, error) {
	bookmarks, err := s.bookmarkRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	if bookmarks == nil {
		bookmarks = []*model.BookmarkWord{}
	}
	return bookmarks, nil
}

func (s *bookmarkService) GetBookmark(ctx context.Context, userID int64, wordID uuid.UUID) (*model.BookmarkWord, error) {
	bookmark, err := s.bookmarkRepo.FindByID(ctx, s.db, wordID, userID)
	if err != nil {
		return nil, bookmarkLookupError(err)
	}
	return bookmark, nil
}

// UpdateBookmark はリクエストに含まれる項目だけを更新する。項目が無ければ現在の値をそのまま返す
func (s *bookmarkService) UpdateBookmark(ctx context.Context, userID int64, wordID uuid.UUID, req *model.PatchBookmarkRequest) (*model.BookmarkWord, error) {
	logger := middleware.GetLogger(ctx)

	if req == nil || req.IsEmpty() {
		return s.GetBookmark(ctx, userID, wordID)
	}

	updates := make(map[string]interface{})
	if req.Definition != nil {
		if utf8.RuneCountInString(*req.Definition) > model.MaxBookmarkDefinitionLength {
			return nil, model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("意味は%d文字以下で入力してください。", model.MaxBookmarkDefinitionLength), "definition", model.ErrInvalidInput)
		}
		updates["definition"] = *req.Definition
	}
	if req.Example != nil {
		updates["example"] = *req.Example
	}
	if req.StudyCategory != nil {
		category := model.StudyCategory(*req.StudyCategory)
		if !category.Valid() {
			return nil, model.NewAppError("VALIDATION_ERROR", "学習カテゴリが正しくありません。", "study_category", model.ErrInvalidInput)
		}
		updates["study_category"] = category
	}

	var updated *model.BookmarkWord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.bookmarkRepo.Update(ctx, tx, wordID, userID, updates); err != nil {
			return bookmarkLookupError(err)
		}
		b, err := s.bookmarkRepo.FindByID(ctx, tx, wordID, userID)
		if err != nil {
			return bookmarkLookupError(err)
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Bookmark updated", "user_id", userID, "word_id", wordID.String())
	return updated, nil
}

func (s *bookmarkService) DeleteBookmark(ctx context.Context, userID int64, wordID uuid.UUID) error {
	if err := s.bookmarkRepo.Delete(ctx, s.db, wordID, userID); err != nil {
		return bookmarkLookupError(err)
	}
	middleware.GetLogger(ctx).Info("Bookmark deleted", "user_id", userID, "word_id", wordID.String())
	return nil
}

// DeleteAllBookmarks は1件も無い場合 NotFound を返す
func (s *bookmarkService) DeleteAllBookmarks(ctx context.Context, userID int64) (int64, error) {
	deleted, err := s.bookmarkRepo.DeleteAllByUser(ctx, s.db, userID)
	if err != nil {
		return 0, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	if deleted == 0 {
		return 0, model.NewAppError("NOT_FOUND", "No bookmarked words found.", "", model.ErrNotFound)
	}
	middleware.GetLogger(ctx).Info("All bookmarks deleted", "user_id", userID, "deleted", deleted)
	return deleted, nil
}

func bookmarkLookupError(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("NOT_FOUND", MsgBookmarkNotFound, "", model.ErrNotFound)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
}
