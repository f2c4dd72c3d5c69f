// Package store は漢字レコードの永続化層を提供します
package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// insertBatchSize は一括挿入の1バッチあたりの件数
const insertBatchSize = 100

// gormKanjiStore は KanjiStore のgorm実装です
type gormKanjiStore struct {
	db *gorm.DB
}

// Open は接続文字列でストアへ接続し、スキーマを適用して KanjiStore を返します
// 接続確認に失敗した場合はエラーを返します（呼び出し側で起動を中断すること）
func Open(dsn string) (KanjiStore, error) {
	log.Printf("[Store] Connecting to store...")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open store connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying connection: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	if err := db.AutoMigrate(&Kanji{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Printf("[Store] Store connected")
	return &gormKanjiStore{db: db}, nil
}

// Close はストア接続を閉じます
func (s *gormKanjiStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close store connection: %w", err)
	}
	log.Printf("[Store] Store disconnected")
	return nil
}

// List は全レコードをストアの自然順で返します
func (s *gormKanjiStore) List(ctx context.Context) ([]Kanji, error) {
	// 0件でもJSONで null ではなく [] になるよう空スライスで初期化する
	records := make([]Kanji, 0)
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list kanji: %w", err)
	}
	return records, nil
}

// Get は識別子でレコードを1件取得します
func (s *gormKanjiStore) Get(ctx context.Context, id string) (*Kanji, error) {
	// 不正な形式の識別子はストアに問い合わせず未存在として扱う
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	var k Kanji
	if err := s.db.WithContext(ctx).First(&k, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch kanji: %w", err)
	}
	return &k, nil
}

// Sample はコレクションから最大 limit 件を重複なしで無作為に返します
func (s *gormKanjiStore) Sample(ctx context.Context, limit int) ([]Kanji, error) {
	records := make([]Kanji, 0)
	if limit <= 0 {
		return records, nil
	}
	// RANDOM() はレコード数を上回る limit でも存在する分だけを返す
	if err := s.db.WithContext(ctx).Order("RANDOM()").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to sample kanji: %w", err)
	}
	return records, nil
}

// Count はレコード数を返します
func (s *gormKanjiStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Kanji{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count kanji: %w", err)
	}
	return count, nil
}

// Create はレコードを1件永続化します
func (s *gormKanjiStore) Create(ctx context.Context, k *Kanji) error {
	if k.Character == "" {
		return ErrCharacterRequired
	}
	if err := s.db.WithContext(ctx).Create(k).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCharacter
		}
		return fmt.Errorf("failed to create kanji: %w", err)
	}
	return nil
}

// Update は取得済みレコードへ指定されたフィールドだけを上書きして永続化します
func (s *gormKanjiStore) Update(ctx context.Context, id string, patch KanjiPatch) (*Kanji, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(current)
	if current.Character == "" {
		return nil, ErrCharacterRequired
	}

	if err := s.db.WithContext(ctx).Save(current).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCharacter
		}
		return nil, fmt.Errorf("failed to update kanji: %w", err)
	}
	return current, nil
}

// Delete はレコードを1件削除します
func (s *gormKanjiStore) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	res := s.db.WithContext(ctx).Delete(&Kanji{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete kanji: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll は全レコードを削除し、削除件数を返します
func (s *gormKanjiStore) DeleteAll(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Kanji{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete all kanji: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// InsertMany は複数レコードを一括挿入します
// いずれかのレコードが不正・重複の場合は挿入全体を中断します
func (s *gormKanjiStore) InsertMany(ctx context.Context, records []Kanji) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	for i := range records {
		if records[i].Character == "" {
			return 0, fmt.Errorf("record %d: %w", i, ErrCharacterRequired)
		}
	}

	if err := s.db.WithContext(ctx).CreateInBatches(records, insertBatchSize).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateCharacter
		}
		return 0, fmt.Errorf("failed to insert kanji records: %w", err)
	}
	return int64(len(records)), nil
}
