// Package handler はHTTPハンドラーを提供します
package handler

import (
	"errors"
	"net/http"
	"strings"

	"kanjidex/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse はエラーレスポンスの共通構造体です
type ErrorResponse struct {
	Error   string   `json:"error"`             // エラーメッセージ
	Details []string `json:"details,omitempty"` // フィールド単位の詳細
}

// respondStoreError はstore層のエラーをHTTPステータスへ変換して返却します
// 各ハンドラーはstoreエラーをこの関数へ集約し、個別にステータスを判断しません
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "指定された漢字が見つかりません",
		})
	case errors.Is(err, store.ErrDuplicateCharacter):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "この漢字は既に登録されています",
			Details: []string{"character: 既に登録されています"},
		})
	case errors.Is(err, store.ErrCharacterRequired):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "characterは必須です",
			Details: []string{"character: 必須項目です"},
		})
	default:
		respondInternalError(c, err)
	}
}

// respondInternalError は想定外のエラーを500として返却します
// エラー内容の詳細はデバッグモード時のみレスポンスへ含めます
func respondInternalError(c *gin.Context, err error) {
	resp := ErrorResponse{
		Error: "サーバー内部でエラーが発生しました",
	}
	if gin.IsDebugging() {
		resp.Details = []string{err.Error()}
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// respondBindingError はリクエストボディのバインドエラーを400として返却します
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "リクエストが不正です",
		Details: validationDetails(err),
	})
}

// validationDetails はバリデーションエラーからフィールド単位のメッセージを組み立てます
// バリデーション由来でないバインドエラー（JSON構文エラーなど）の場合はnilを返します
func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			details = append(details, jsonFieldName(fe.Field())+": 必須項目です")
		default:
			details = append(details, jsonFieldName(fe.Field())+": 不正な値です")
		}
	}
	return details
}

// jsonFieldName は構造体フィールド名をJSONフィールド名（先頭小文字）へ変換します
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
