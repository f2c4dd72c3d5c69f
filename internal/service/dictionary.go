// Package service はビジネスロジックを提供します
package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"
)

// defaultDictionaryAPIURL は外部辞書検索サービスのデフォルトURL
const defaultDictionaryAPIURL = "https://jisho.org/api/v1/search/words"

// DictionaryService は外部辞書サービスへの検索操作を定義します
type DictionaryService interface {
	// Search は検索クエリを外部辞書サービスへ転送し、レスポンスボディを無加工で返します
	Search(ctx context.Context, query string) (*SearchResult, error)
}

// SearchResult は外部辞書サービスのレスポンスを表します
type SearchResult struct {
	Body        []byte // レスポンスボディ（無加工）
	ContentType string // レスポンスのContent-Type
}

// dictionaryServiceImpl はDictionaryServiceの実装です
type dictionaryServiceImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewDictionaryService は新しいDictionaryServiceを生成します
// 環境変数 DICTIONARY_API_URL が設定されている場合は転送先をそのURLに差し替えます
func NewDictionaryService() DictionaryService {
	baseURL := os.Getenv("DICTIONARY_API_URL")
	if baseURL == "" {
		baseURL = defaultDictionaryAPIURL
	}

	log.Printf("[DictionaryService] Initialized with upstream: %s", baseURL)
	return &dictionaryServiceImpl{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Search は検索クエリを外部辞書サービスへ転送し、レスポンスボディを無加工で返します
// 通信エラーおよび200以外の応答はエラーとして返します（ペイロードの解釈は行いません）
func (s *dictionaryServiceImpl) Search(ctx context.Context, query string) (*SearchResult, error) {
	log.Printf("[DictionaryService] Search started: query=%s", query)

	// クエリをURLエンコードして検索URLを構築
	params := url.Values{}
	params.Set("keyword", query)
	searchURL := s.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call dictionary service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[DictionaryService] Search failed: upstream returned non-200 status, status=%d", resp.StatusCode)
		return nil, fmt.Errorf("dictionary service returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json; charset=utf-8"
	}

	log.Printf("[DictionaryService] Search completed: query=%s, bytes=%d", query, len(body))

	return &SearchResult{
		Body:        body,
		ContentType: contentType,
	}, nil
}
