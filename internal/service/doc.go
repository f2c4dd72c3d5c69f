// Package service はKanjidex APIサーバーのビジネスロジックを提供する。
//
// # 概要
//
// このパッケージは外部辞書サービスとの連携機能を提供する。
// 検索クエリを外部サービスへ転送し、その結果を無加工で返却する。
//
// # 主要なコンポーネント
//
// DictionaryService インターフェースが辞書検索操作を抽象化する。
// handlerパッケージから利用され、依存性の注入を可能にする。
//
// # DictionaryService
//
// 外部辞書サービスへの検索リクエストの転送を担当するサービス。
// 転送先は環境変数 DICTIONARY_API_URL で差し替え可能（未設定時はJisho API）。
//
// 主なメソッド:
//   - Search: 検索クエリを外部サービスへ転送し、レスポンスを無加工で返す
//
// レスポンスのペイロードは解釈せず、ボディとContent-Typeをそのまま
// 呼び出し元へ引き渡す。通信エラーおよび200以外の応答はエラーとなる。
//
// # 使用例
//
// インポート:
//
//	import "kanjidex/backend/internal/service"
//
// 検索の実行:
//
//	svc := service.NewDictionaryService()
//	result, err := svc.Search(ctx, "water")
//	if err != nil {
//	    // エラーハンドリング
//	}
//	fmt.Println(string(result.Body))
package service
