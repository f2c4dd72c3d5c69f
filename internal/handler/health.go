// Package handler はHTTPハンドラーを提供します
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse はヘルスチェックレスポンスの構造体です
type HealthResponse struct {
	Status    string   `json:"status"`    // サーバーの状態
	Service   string   `json:"service"`   // サービス名
	Endpoints []string `json:"endpoints"` // 提供エンドポイント一覧
}

// HealthHandler はヘルスチェック関連のHTTPハンドラを提供します
type HealthHandler struct{}

// NewHealthHandler は新しいHealthHandlerを生成します
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Handle はサーバーのヘルスチェックを実行する。
//
// サーバーが正常に動作しているかを確認するためのシンプルなエンドポイント。
// 外部サービスへの依存はなく、サーバープロセスが起動していれば常に成功を返す。
// あわせて提供中のエンドポイント一覧を返却する。
//
// レスポンス:
//   - 200: 成功（HealthResponse）
func (h *HealthHandler) Handle(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: "Kanjidex API Server",
		Endpoints: []string{
			"GET /api/kanji",
			"GET /api/kanji/random",
			"GET /api/kanji/:id",
			"POST /api/kanji",
			"PUT /api/kanji/:id",
			"DELETE /api/kanji/:id",
			"DELETE /api/kanji",
			"GET /api/dictionary/search",
		},
	})
}
