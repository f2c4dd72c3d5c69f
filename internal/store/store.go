// Package store は漢字レコードの永続化層を提供します
package store

import (
	"context"
	"errors"
)

// ストア層の失敗を表すセンチネルエラー
// handlerパッケージのエラーマッパーが errors.Is で分類します
var (
	// ErrNotFound は識別子が既存のレコードに解決できないことを表します
	ErrNotFound = errors.New("kanji not found")
	// ErrDuplicateCharacter は character の一意制約違反を表します
	ErrDuplicateCharacter = errors.New("character already exists")
	// ErrCharacterRequired は必須フィールド character の欠落を表します
	ErrCharacterRequired = errors.New("character is required")
)

// KanjiStore は漢字コレクションへの操作を定義します
type KanjiStore interface {
	// List は全レコードをストアの自然順で返します
	List(ctx context.Context) ([]Kanji, error)
	// Get は識別子でレコードを1件取得します
	// 識別子が不正な形式の場合も ErrNotFound を返します
	Get(ctx context.Context, id string) (*Kanji, error)
	// Sample はコレクションから最大 limit 件を重複なしで無作為に返します
	// limit がレコード数を上回る場合は全件を返します
	Sample(ctx context.Context, limit int) ([]Kanji, error)
	// Count はレコード数を返します
	Count(ctx context.Context) (int64, error)
	// Create はレコードを1件永続化し、割り当てた識別子を書き戻します
	Create(ctx context.Context, k *Kanji) error
	// Update は指定されたフィールドだけを上書きして永続化し、更新後のレコードを返します
	Update(ctx context.Context, id string, patch KanjiPatch) (*Kanji, error)
	// Delete はレコードを1件削除します
	Delete(ctx context.Context, id string) error
	// DeleteAll は全レコードを削除し、削除件数を返します
	DeleteAll(ctx context.Context) (int64, error)
	// InsertMany は複数レコードを一括挿入します（インポータ用）
	InsertMany(ctx context.Context, records []Kanji) (int64, error)
	// Close はストア接続を閉じます（プロセス終了時に1度だけ呼ばれます）
	Close() error
}
