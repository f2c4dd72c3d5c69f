// Package handler はKanjidex APIサーバーのHTTPハンドラーを提供する。
//
// # 概要
//
// このパッケージはGin Frameworkを使用したHTTPリクエストハンドラーを提供する。
// 漢字レコードのCRUD操作はstoreパッケージの永続化層を、辞書検索は
// serviceパッケージの外部連携を呼び出し、HTTPレスポンスを返却する。
//
// # 主要なコンポーネント
//
//   - KanjiHandler: /api/kanji 関連のエンドポイントを処理（CRUD・ランダム抽出）
//   - DictionaryHandler: /api/dictionary 関連のエンドポイントを処理（辞書検索プロキシ）
//   - HealthHandler: / のヘルスチェックを処理
//
// KanjiStoreおよびDictionaryServiceへの依存性注入によりテスタビリティを確保する。
//
// # KanjiHandler
//
// 漢字コレクションに対するCRUD操作とランダム抽出を提供するエンドポイント群。
// 漢字（character）は必須かつ重複不可で、重複登録は409を返す。
//
// ランダム抽出はコレクションが空の場合、組み込みのデフォルトセット
// （基本漢字10件）をシャッフルして返却する。このときレコードはidと
// タイムスタンプを持たず、レスポンスの isDefaultSet が true になる。
// コレクションに件数以上のレコードがない場合は存在する分のみを返し、
// デフォルトセットによる補完は行わない。
//
// # DictionaryHandler
//
// 検索クエリを外部辞書サービスへ転送するプロキシエンドポイント。
// 上流のレスポンスボディは解釈せず、無加工のまま返却する。
//
// # エンドポイント一覧
//
// ## Kanji API (漢字レコード)
//
// GET /api/kanji - 漢字一覧取得（JSON配列、空のときは []）
//
// GET /api/kanji/random?limit=N - ランダム抽出（limit省略時は6件）
//
// レスポンス:
//
//	{
//	    "kanji": [{"id": "...", "character": "水", ...}],
//	    "isDefaultSet": false
//	}
//
// GET /api/kanji/:id - 漢字1件取得
//
// POST /api/kanji - 漢字登録
//
// リクエスト:
//
//	{
//	    "character": "水",       // 漢字 (必須・重複不可)
//	    "onyomi": "スイ",        // 音読み
//	    "kunyomi": "みず",       // 訓読み
//	    "meaning": "water"       // 意味
//	}
//
// PUT /api/kanji/:id - 漢字更新（含まれるフィールドのみ上書き）
//
// DELETE /api/kanji/:id - 漢字削除
//
// レスポンス:
//
//	{"message": "漢字を削除しました"}
//
// DELETE /api/kanji - 漢字全件削除
//
// レスポンス:
//
//	{"deletedCount": 24}
//
// ## Dictionary API (辞書検索)
//
// GET /api/dictionary/search?query=Q - 外部辞書サービスへの検索転送
//
// レスポンス: 上流サービスのレスポンスボディをそのまま返却
//
// # エラーレスポンス形式
//
// エラー時は全エンドポイント共通の構造体を返す:
//
//	{
//	    "error": "この漢字は既に登録されています",
//	    "details": ["character: 既に登録されています"]  // フィールド単位の詳細（任意）
//	}
//
// storeエラーからHTTPステータスへの変換は respondStoreError に集約されており、
// 各ハンドラーが個別にステータスを判断することはない。
//
// # バリデーション
//
// 登録リクエストはGinのバインディング（go-playground/validator）で検証する。
//
// 検証項目:
//   - character: 必須（空文字列は不可）
//
// 更新リクエストはポインタフィールドで受け取り、characterを空文字列へ
// 更新しようとした場合はstore層がバリデーションエラーを返す。
//
// # HTTPステータスコード
//
//   - 200 OK: 正常完了
//   - 201 Created: 漢字の登録完了
//   - 400 Bad Request: リクエスト不正、バリデーションエラー、queryパラメータ欠落
//   - 404 Not Found: 指定idのレコードが存在しない（不正な形式のidを含む）
//   - 409 Conflict: characterの重複登録
//   - 500 Internal Server Error: ストア障害、外部辞書サービスのエラー
//
// # 使用例
//
// インポート:
//
//	import (
//	    "kanjidex/backend/internal/handler"
//	    "kanjidex/backend/internal/service"
//	    "kanjidex/backend/internal/store"
//	)
//
// ハンドラーの初期化とルーティング:
//
//	st, err := store.Open(os.Getenv("DATABASE_URL"))
//	if err != nil {
//	    log.Fatalf("failed to open store: %v", err)
//	}
//
//	// KanjiHandler
//	kanjiHandler := handler.NewKanjiHandler(st)
//	api := router.Group("/api")
//	api.GET("/kanji", kanjiHandler.HandleList)
//	api.GET("/kanji/random", kanjiHandler.HandleRandom)
//	api.GET("/kanji/:id", kanjiHandler.HandleGet)
//	api.POST("/kanji", kanjiHandler.HandleCreate)
//	api.PUT("/kanji/:id", kanjiHandler.HandleUpdate)
//	api.DELETE("/kanji/:id", kanjiHandler.HandleDelete)
//	api.DELETE("/kanji", kanjiHandler.HandleDeleteAll)
//
//	// DictionaryHandler
//	dictionaryHandler := handler.NewDictionaryHandler(service.NewDictionaryService())
//	api.GET("/dictionary/search", dictionaryHandler.HandleSearch)
package handler
