// Package handler はHTTPハンドラーを提供します
package handler

import (
	"log"
	"net/http"

	"kanjidex/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DictionaryHandler は辞書検索関連のHTTPハンドラを提供します
type DictionaryHandler struct {
	dictionaryService service.DictionaryService
}

// NewDictionaryHandler は新しいDictionaryHandlerを生成します
func NewDictionaryHandler(dictionaryService service.DictionaryService) *DictionaryHandler {
	return &DictionaryHandler{
		dictionaryService: dictionaryService,
	}
}

// HandleSearch は辞書検索リクエストを外部辞書サービスへ転送します
// 上流のレスポンスボディを無加工のまま返却します
// GET /api/dictionary/search?query=Q
func (h *DictionaryHandler) HandleSearch(c *gin.Context) {
	query := c.Query("query")

	// queryのバリデーション
	if query == "" {
		log.Printf("[DictionaryHandler] HandleSearch failed: query is empty")
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "queryパラメータは必須です",
		})
		return
	}

	log.Printf("[DictionaryHandler] HandleSearch started: query=%s", query)

	result, err := h.dictionaryService.Search(c.Request.Context(), query)
	if err != nil {
		log.Printf("[DictionaryHandler] HandleSearch failed: query=%s, error=%v", query, err)
		respondInternalError(c, err)
		return
	}

	log.Printf("[DictionaryHandler] HandleSearch completed: query=%s, bytes=%d", query, len(result.Body))
	c.Data(http.StatusOK, result.ContentType, result.Body)
}
