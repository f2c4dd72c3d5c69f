// Package importer は漢字データの一括インポート処理を提供します
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"kanjidex/backend/internal/store"
)

// importRecord はインポートファイル内の1レコードを表します
// idやタイムスタンプなど対象外のフィールドはデコード時に捨てられます
type importRecord struct {
	Character string `json:"character"` // 漢字
	Onyomi    string `json:"onyomi"`    // 音読み
	Kunyomi   string `json:"kunyomi"`   // 訓読み
	Meaning   string `json:"meaning"`   // 意味
}

// Result はインポート処理の実行結果を表します
type Result struct {
	Deleted  int64 // 削除された既存レコード数
	Inserted int64 // 挿入されたレコード数
}

// LoadFile はJSONファイルから漢字レコードを読み込みます
// ファイルは漢字レコードのフラットなJSON配列である必要があります
func LoadFile(path string) ([]store.Kanji, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var records []importRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}

	kanji := make([]store.Kanji, len(records))
	for i, r := range records {
		kanji[i] = store.Kanji{
			Character: r.Character,
			Onyomi:    r.Onyomi,
			Kunyomi:   r.Kunyomi,
			Meaning:   r.Meaning,
		}
	}
	return kanji, nil
}

// Run はインポート処理を実行します
// ファイルを読み込んだ後、既存レコードを全件削除してから一括挿入します
// いずれかの段階で失敗した場合は処理を中断します（削除のみ完了した状態で終わる場合があります）
func Run(ctx context.Context, st store.KanjiStore, path string) (*Result, error) {
	log.Printf("[Importer] Run started: file=%s", path)

	kanji, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	log.Printf("[Importer] Loaded %d records from file", len(kanji))

	deleted, err := st.DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear collection: %w", err)
	}
	log.Printf("[Importer] Cleared collection: deleted=%d", deleted)

	inserted, err := st.InsertMany(ctx, kanji)
	if err != nil {
		return nil, fmt.Errorf("failed to insert records: %w", err)
	}

	log.Printf("[Importer] Run completed: deleted=%d, inserted=%d", deleted, inserted)
	return &Result{
		Deleted:  deleted,
		Inserted: inserted,
	}, nil
}
