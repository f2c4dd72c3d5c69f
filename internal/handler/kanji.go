// Package handler はHTTPハンドラーを提供します
package handler

import (
	"log"
	"math/rand"
	"net/http"
	"strconv"

	"kanjidex/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// defaultRandomLimit はlimitパラメータ省略時・不正時の取得件数
const defaultRandomLimit = 6

// CreateKanjiRequest は漢字登録リクエストの構造体です
type CreateKanjiRequest struct {
	Character string `json:"character" binding:"required"` // 漢字（必須・重複不可）
	Onyomi    string `json:"onyomi"`                       // 音読み
	Kunyomi   string `json:"kunyomi"`                      // 訓読み
	Meaning   string `json:"meaning"`                      // 意味
}

// UpdateKanjiRequest は漢字更新リクエストの構造体です
// 指定されたフィールドのみを上書きするため、全フィールドをポインタで受け取ります
type UpdateKanjiRequest struct {
	Character *string `json:"character"` // 漢字
	Onyomi    *string `json:"onyomi"`    // 音読み
	Kunyomi   *string `json:"kunyomi"`   // 訓読み
	Meaning   *string `json:"meaning"`   // 意味
}

// RandomKanjiResponse は/api/kanji/randomレスポンスの構造体です
type RandomKanjiResponse struct {
	Kanji        []store.Kanji `json:"kanji"`        // 抽出された漢字
	IsDefaultSet bool          `json:"isDefaultSet"` // デフォルトセット由来かどうか
}

// DeleteKanjiResponse は漢字削除レスポンスの構造体です
type DeleteKanjiResponse struct {
	Message string `json:"message"` // 確認メッセージ
}

// DeleteAllKanjiResponse は漢字全件削除レスポンスの構造体です
type DeleteAllKanjiResponse struct {
	DeletedCount int64 `json:"deletedCount"` // 削除された件数
}

// KanjiHandler は漢字レコード関連のHTTPハンドラを提供します
type KanjiHandler struct {
	store store.KanjiStore
}

// NewKanjiHandler は新しいKanjiHandlerを生成します
func NewKanjiHandler(st store.KanjiStore) *KanjiHandler {
	return &KanjiHandler{
		store: st,
	}
}

// HandleList は漢字一覧の取得リクエストを処理します
// GET /api/kanji
func (h *KanjiHandler) HandleList(c *gin.Context) {
	log.Printf("[KanjiHandler] HandleList started")

	records, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Printf("[KanjiHandler] HandleList failed: error=%v", err)
		respondStoreError(c, err)
		return
	}

	log.Printf("[KanjiHandler] HandleList completed: count=%d", len(records))
	c.JSON(http.StatusOK, records)
}

// HandleRandom は漢字のランダム抽出リクエストを処理します
// コレクションが空の場合は組み込みのデフォルトセットをシャッフルして返却します
// GET /api/kanji/random?limit=N
func (h *KanjiHandler) HandleRandom(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), defaultRandomLimit)

	log.Printf("[KanjiHandler] HandleRandom started: limit=%d", limit)

	total, err := h.store.Count(c.Request.Context())
	if err != nil {
		log.Printf("[KanjiHandler] HandleRandom failed: error=%v", err)
		respondStoreError(c, err)
		return
	}

	// コレクションが空の場合はデフォルトセットから返す
	if total == 0 {
		defaults := store.DefaultKanjiSet()
		rand.Shuffle(len(defaults), func(i, j int) {
			defaults[i], defaults[j] = defaults[j], defaults[i]
		})
		if limit < len(defaults) {
			defaults = defaults[:limit]
		}

		log.Printf("[KanjiHandler] HandleRandom completed: count=%d, isDefaultSet=true", len(defaults))
		c.JSON(http.StatusOK, RandomKanjiResponse{
			Kanji:        defaults,
			IsDefaultSet: true,
		})
		return
	}

	records, err := h.store.Sample(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[KanjiHandler] HandleRandom failed: error=%v", err)
		respondStoreError(c, err)
		return
	}

	log.Printf("[KanjiHandler] HandleRandom completed: count=%d, isDefaultSet=false", len(records))
	c.JSON(http.StatusOK, RandomKanjiResponse{
		Kanji:        records,
		IsDefaultSet: false,
	})
}

// HandleGet は漢字1件の取得リクエストを処理します
// GET /api/kanji/:id
func (h *KanjiHandler) HandleGet(c *gin.Context) {
	id := c.Param("id")

	log.Printf("[KanjiHandler] HandleGet started: id=%s", id)

	record, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		log.Printf("[KanjiHandler] HandleGet failed: id=%s, error=%v", id, err)
		respondStoreError(c, err)
		return
	}

	log.Printf("[KanjiHandler] HandleGet completed: id=%s, character=%s", id, record.Character)
	c.JSON(http.StatusOK, record)
}

// HandleCreate は漢字登録リクエストを処理します
// POST /api/kanji
func (h *KanjiHandler) HandleCreate(c *gin.Context) {
	var req CreateKanjiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[KanjiHandler] HandleCreate failed: invalid request, error=%v", err)
		respondBindingError(c, err)
		return
	}

	log.Printf("[KanjiHandler] HandleCreate started: character=%s", req.Character)

	record := store.Kanji{
		Character: req.Character,
		Onyomi:    req.Onyomi,
		Kunyomi:   req.Kunyomi,
		Meaning:   req.Meaning,
	}
	if err := h.store.Create(c.Request.Context(), &record); err != nil {
		log.Printf("[KanjiHandler] HandleCreate failed: character=%s, error=%v", req.Character, err)
		respondStoreError(c, err)
		return
	}

	log.Printf("[KanjiHandler] HandleCreate completed: id=%s, character=%s", record.ID, record.Character)
	c.JSON(http.StatusCreated, record)
}

// HandleUpdate は漢字更新リクエストを処理します
// リクエストに含まれるフィールドのみを上書きし、省略されたフィールドは保持します
// PUT /api/kanji/:id
func (h *KanjiHandler) HandleUpdate(c *gin.Context) {
	id := c.Param("id")

	var req UpdateKanjiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[KanjiHandler] HandleUpdate failed: invalid request, id=%s, error=%v", id, err)
		respondBindingError(c, err)
		return
	}

	log.Printf("[KanjiHandler] HandleUpdate started: id=%s", id)

	patch := store.KanjiPatch{
		Character: req.Character,
		Onyomi:    req.Onyomi,
		Kunyomi:   req.Kunyomi,
		Meaning:   req.Meaning,
	}
	record, err := h.store.Update(c.Request.Context(), id, patch)
	if err != nil {
		log.Printf("[KanjiHandler] HandleUpdate failed: id=%s, error=%v", id, err)
		respondStoreError(c, err)
		return
	}

	log.Printf("[KanjiHandler] HandleUpdate completed: id=%s, character=%s", id, record.Character)
	c.JSON(http.StatusOK, record)
}

// HandleDelete は漢字削除リクエストを処理します
// DELETE /api/kanji/:id
func (h *KanjiHandler) HandleDelete(c *gin.Context) {
	id := c.Param("id")

	log.Printf("[KanjiHandler] HandleDelete started: id=%s", id)

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[KanjiHandler] HandleDelete failed: id=%s, error=%v", id, err)
		respondStoreError(c, err)
		return
	}

	log.Printf("[KanjiHandler] HandleDelete completed: id=%s", id)
	c.JSON(http.StatusOK, DeleteKanjiResponse{
		Message: "漢字を削除しました",
	})
}

// HandleDeleteAll は漢字全件削除リクエストを処理します
// DELETE /api/kanji
func (h *KanjiHandler) HandleDeleteAll(c *gin.Context) {
	log.Printf("[KanjiHandler] HandleDeleteAll started")

	count, err := h.store.DeleteAll(c.Request.Context())
	if err != nil {
		log.Printf("[KanjiHandler] HandleDeleteAll failed: error=%v", err)
		respondStoreError(c, err)
		return
	}

	log.Printf("[KanjiHandler] HandleDeleteAll completed: deleted=%d", count)
	c.JSON(http.StatusOK, DeleteAllKanjiResponse{
		DeletedCount: count,
	})
}

// parseLimit はlimitクエリパラメータを解釈します
// 省略・数値以外・0以下の場合はデフォルト値へフォールバックします
func parseLimit(raw string, def int) int {
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
