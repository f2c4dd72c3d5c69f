// Package main はKanjidex APIサーバーのエントリーポイントです
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kanjidex/backend/internal/handler"
	"kanjidex/backend/internal/service"
	"kanjidex/backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// shutdownTimeout はシャットダウン時に処理中リクエストの完了を待つ最大時間
const shutdownTimeout = 10 * time.Second

func main() {
	log.Println("[Server] Starting Kanjidex API server...")

	// 環境変数の読み込み
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("[Server] DATABASE_URL is not set")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// ストア接続（リッスン開始前に確立する）
	st, err := store.Open(dsn)
	if err != nil {
		log.Fatalf("[Server] Failed to open store: %v", err)
	}

	// 依存性の組み立て
	dictionaryService := service.NewDictionaryService()
	kanjiHandler := handler.NewKanjiHandler(st)
	dictionaryHandler := handler.NewDictionaryHandler(dictionaryService)
	healthHandler := handler.NewHealthHandler()

	// Ginエンジン初期化
	r := gin.Default()

	// CORS設定（ローカル開発時のフロントエンドからのアクセスを許可）
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	// ヘルスチェック
	r.GET("/", healthHandler.Handle)

	// APIルーティング
	api := r.Group("/api")
	{
		// 漢字API
		api.GET("/kanji", kanjiHandler.HandleList)
		api.GET("/kanji/random", kanjiHandler.HandleRandom)
		api.GET("/kanji/:id", kanjiHandler.HandleGet)
		api.POST("/kanji", kanjiHandler.HandleCreate)
		api.PUT("/kanji/:id", kanjiHandler.HandleUpdate)
		api.DELETE("/kanji/:id", kanjiHandler.HandleDelete)
		api.DELETE("/kanji", kanjiHandler.HandleDeleteAll)

		// 辞書検索API
		api.GET("/dictionary/search", dictionaryHandler.HandleSearch)
	}

	// シグナルによるシャットダウン制御
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// サーバー起動（0.0.0.0で全インターフェースからアクセス可能に）
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[Server] Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		drain(srv, st)
		log.Fatalf("[Server] Server failed: %v", err)
	case <-ctx.Done():
		log.Println("[Server] Shutdown signal received")
		drain(srv, st)
		log.Println("[Server] Shutdown completed")
	}
}

// drain は新規リクエストの受付を停止し、処理中のリクエストの完了を待ってからストアを閉じます
func drain(srv *http.Server, st store.KanjiStore) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[Server] Failed to shut down cleanly: %v", err)
	}
	if err := st.Close(); err != nil {
		log.Printf("[Server] Failed to close store: %v", err)
	}
}
