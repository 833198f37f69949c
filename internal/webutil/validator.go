package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳

	"go_5_vocab_bookmark/internal/model"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"word":           "単語",
	"definition":     "意味",
	"example":        "例文",
	"study_category": "学習カテゴリ",
	"nickname":       "ニックネーム",
	"email":          "メールアドレス",
	"kakao_id":       "KakaoID",
	"password":       "パスワード",
	"page":           "ページ",
	"page_size":      "ページサイズ",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得する
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return toSnake(fld.Name)
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")
	registerTranslation("min", "{0}は{1}文字以上で入力してください。")
	registerTranslation("max", "{0}は{1}文字以下で入力してください。")
	registerTranslation("oneof", "{0}は[{1}]のいずれかで指定してください。")
	registerTranslation("gte", "{0}は{1}以上で指定してください。")
	registerTranslation("lte", "{0}は{1}以下で指定してください。")
}

// registerTranslation はタグごとのメッセージを日本語のフィールド名付きで登録します。
func registerTranslation(tag, msg string) {
	_ = Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
		return ut.Add(tag, msg, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		fieldName, ok := fieldNameTranslations[fe.Field()]
		if !ok {
			fieldName = fe.Field()
		}
		t, _ := ut.T(tag, fieldName, fe.Param())
		return t
	})
}

// ValidateStruct は構造体を検証し、最初のエラーを翻訳済みの AppError として返す
func ValidateStruct(v interface{}) error {
	err := Validator.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	firstErr := validationErrors[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		firstErr.Translate(Trans),
		firstErr.Field(),
		model.ErrInvalidInput,
	)
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
