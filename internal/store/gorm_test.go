package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore はファイルベースのSQLiteを使うテスト用ストアを生成します
// 接続プールが複数コネクションを開いてもスキーマを共有できるよう、:memory: ではなくファイルを使います
func newTestStore(t *testing.T) *gormKanjiStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	if err := db.AutoMigrate(&Kanji{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return &gormKanjiStore{db: db}
}

// seedKanji はテストデータを1件挿入して返します
func seedKanji(t *testing.T, s *gormKanjiStore, character string) *Kanji {
	t.Helper()

	k := &Kanji{Character: character, Onyomi: "オン", Kunyomi: "くん", Meaning: "meaning"}
	if err := s.Create(context.Background(), k); err != nil {
		t.Fatalf("failed to seed kanji %s: %v", character, err)
	}
	return k
}

func strPtr(s string) *string {
	return &s
}

func TestGormKanjiStore_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	k := &Kanji{Character: "水", Onyomi: "スイ", Kunyomi: "みず", Meaning: "water"}
	if err := s.Create(ctx, k); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// 識別子とタイムスタンプがストアにより割り当てられることを検証
	if k.ID == "" {
		t.Error("ID: got empty, want assigned")
	}
	if _, err := uuid.Parse(k.ID); err != nil {
		t.Errorf("ID: got %q, want valid uuid: %v", k.ID, err)
	}
	if k.CreatedAt.IsZero() {
		t.Error("CreatedAt: got zero, want assigned")
	}
	if k.UpdatedAt.IsZero() {
		t.Error("UpdatedAt: got zero, want assigned")
	}

	got, err := s.Get(ctx, k.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Character != "水" {
		t.Errorf("Character: got %q, want %q", got.Character, "水")
	}
	if got.Onyomi != "スイ" {
		t.Errorf("Onyomi: got %q, want %q", got.Onyomi, "スイ")
	}
	if got.Kunyomi != "みず" {
		t.Errorf("Kunyomi: got %q, want %q", got.Kunyomi, "みず")
	}
	if got.Meaning != "water" {
		t.Errorf("Meaning: got %q, want %q", got.Meaning, "water")
	}
}

func TestGormKanjiStore_Get_NotFound(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{
			name: "存在しない識別子",
			id:   uuid.NewString(),
		},
		{
			name: "不正な形式の識別子",
			id:   "not-a-uuid",
		},
		{
			name: "空の識別子",
			id:   "",
		},
	}

	s := newTestStore(t)
	seedKanji(t, s, "水")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Get(context.Background(), tt.id)
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Get() error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestGormKanjiStore_Create_Validation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// characterが空の場合は拒否される
	err := s.Create(ctx, &Kanji{Onyomi: "スイ"})
	if !errors.Is(err, ErrCharacterRequired) {
		t.Errorf("Create() error = %v, want ErrCharacterRequired", err)
	}

	// 同じcharacterの二重登録は拒否される（他のフィールドが違っても同様）
	seedKanji(t, s, "水")
	err = s.Create(ctx, &Kanji{Character: "水", Meaning: "different"})
	if !errors.Is(err, ErrDuplicateCharacter) {
		t.Errorf("Create() error = %v, want ErrDuplicateCharacter", err)
	}

	count, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("count: got %d, want 1", count)
	}
}

func TestGormKanjiStore_Update(t *testing.T) {
	t.Run("指定されたフィールドのみ上書きされる", func(t *testing.T) {
		s := newTestStore(t)
		k := seedKanji(t, s, "水")

		got, err := s.Update(context.Background(), k.ID, KanjiPatch{Meaning: strPtr("water")})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if got.Meaning != "water" {
			t.Errorf("Meaning: got %q, want %q", got.Meaning, "water")
		}
		// 省略されたフィールドは保持される
		if got.Character != "水" {
			t.Errorf("Character: got %q, want %q", got.Character, "水")
		}
		if got.Onyomi != "オン" {
			t.Errorf("Onyomi: got %q, want %q", got.Onyomi, "オン")
		}

		// 永続化されていることを検証
		fetched, err := s.Get(context.Background(), k.ID)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if fetched.Meaning != "water" {
			t.Errorf("persisted Meaning: got %q, want %q", fetched.Meaning, "water")
		}
	})

	t.Run("characterを空文字へ更新しようとすると拒否される", func(t *testing.T) {
		s := newTestStore(t)
		k := seedKanji(t, s, "水")

		_, err := s.Update(context.Background(), k.ID, KanjiPatch{Character: strPtr("")})
		if !errors.Is(err, ErrCharacterRequired) {
			t.Errorf("Update() error = %v, want ErrCharacterRequired", err)
		}

		// レコードは変更されていない
		got, err := s.Get(context.Background(), k.ID)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.Character != "水" {
			t.Errorf("Character: got %q, want %q", got.Character, "水")
		}
	})

	t.Run("存在しない識別子はErrNotFound", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.Update(context.Background(), uuid.NewString(), KanjiPatch{Meaning: strPtr("x")})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Update() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("別レコードと重複するcharacterへの更新は拒否される", func(t *testing.T) {
		s := newTestStore(t)
		seedKanji(t, s, "水")
		k := seedKanji(t, s, "火")

		_, err := s.Update(context.Background(), k.ID, KanjiPatch{Character: strPtr("水")})
		if !errors.Is(err, ErrDuplicateCharacter) {
			t.Errorf("Update() error = %v, want ErrDuplicateCharacter", err)
		}
	})
}

func TestGormKanjiStore_Delete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	k := seedKanji(t, s, "水")

	if err := s.Delete(ctx, k.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, k.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}

	// 削除済み・不正形式の識別子はErrNotFound
	if err := s.Delete(ctx, k.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() again error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "not-a-uuid"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() malformed id error = %v, want ErrNotFound", err)
	}
}

func TestGormKanjiStore_DeleteAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// 空のコレクションでも成功し0を返す
	count, err := s.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("DeleteAll() error = %v", err)
	}
	if count != 0 {
		t.Errorf("deleted count: got %d, want 0", count)
	}

	for _, c := range []string{"水", "火", "木"} {
		seedKanji(t, s, c)
	}

	count, err = s.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("DeleteAll() error = %v", err)
	}
	if count != 3 {
		t.Errorf("deleted count: got %d, want 3", count)
	}

	remaining, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if remaining != 0 {
		t.Errorf("remaining count: got %d, want 0", remaining)
	}
}

func TestGormKanjiStore_Sample(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seeded := map[string]bool{}
	for _, c := range []string{"水", "火", "木", "金", "土"} {
		k := seedKanji(t, s, c)
		seeded[k.ID] = true
	}

	t.Run("limit件が重複なしで返される", func(t *testing.T) {
		records, err := s.Sample(ctx, 3)
		if err != nil {
			t.Fatalf("Sample() error = %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("records count: got %d, want 3", len(records))
		}
		seen := map[string]bool{}
		for _, r := range records {
			if !seeded[r.ID] {
				t.Errorf("unexpected record id %q", r.ID)
			}
			if seen[r.ID] {
				t.Errorf("duplicate record id %q", r.ID)
			}
			seen[r.ID] = true
		}
	})

	t.Run("limitがレコード数を上回る場合は全件が返される", func(t *testing.T) {
		records, err := s.Sample(ctx, 10)
		if err != nil {
			t.Fatalf("Sample() error = %v", err)
		}
		if len(records) != 5 {
			t.Errorf("records count: got %d, want 5", len(records))
		}
	})

	t.Run("limitが0以下の場合は空で返される", func(t *testing.T) {
		records, err := s.Sample(ctx, 0)
		if err != nil {
			t.Fatalf("Sample() error = %v", err)
		}
		if len(records) != 0 {
			t.Errorf("records count: got %d, want 0", len(records))
		}
	})
}

func TestGormKanjiStore_List(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// 空のコレクションではnilではなく空スライスが返される（JSONで [] になる）
	records, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if records == nil {
		t.Error("records: got nil, want empty slice")
	}
	if len(records) != 0 {
		t.Errorf("records count: got %d, want 0", len(records))
	}

	seedKanji(t, s, "水")
	seedKanji(t, s, "火")

	records, err = s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 2 {
		t.Errorf("records count: got %d, want 2", len(records))
	}
}

func TestGormKanjiStore_InsertMany(t *testing.T) {
	t.Run("全件が一括挿入される", func(t *testing.T) {
		s := newTestStore(t)

		inserted, err := s.InsertMany(context.Background(), []Kanji{
			{Character: "水", Onyomi: "スイ", Kunyomi: "みず", Meaning: "water"},
			{Character: "火", Onyomi: "カ", Kunyomi: "ひ", Meaning: "fire"},
			{Character: "木", Onyomi: "モク", Kunyomi: "き", Meaning: "tree"},
		})
		if err != nil {
			t.Fatalf("InsertMany() error = %v", err)
		}
		if inserted != 3 {
			t.Errorf("inserted count: got %d, want 3", inserted)
		}

		count, err := s.Count(context.Background())
		if err != nil {
			t.Fatalf("Count() error = %v", err)
		}
		if count != 3 {
			t.Errorf("count: got %d, want 3", count)
		}
	})

	t.Run("characterが空のレコードを含む場合は全体が中断される", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.InsertMany(context.Background(), []Kanji{
			{Character: "水"},
			{Character: ""},
		})
		if !errors.Is(err, ErrCharacterRequired) {
			t.Errorf("InsertMany() error = %v, want ErrCharacterRequired", err)
		}

		count, err := s.Count(context.Background())
		if err != nil {
			t.Fatalf("Count() error = %v", err)
		}
		if count != 0 {
			t.Errorf("count: got %d, want 0", count)
		}
	})

	t.Run("重複を含む場合は全体が中断される", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.InsertMany(context.Background(), []Kanji{
			{Character: "水"},
			{Character: "水"},
		})
		if !errors.Is(err, ErrDuplicateCharacter) {
			t.Errorf("InsertMany() error = %v, want ErrDuplicateCharacter", err)
		}

		count, err := s.Count(context.Background())
		if err != nil {
			t.Fatalf("Count() error = %v", err)
		}
		if count != 0 {
			t.Errorf("count: got %d, want 0", count)
		}
	})

	t.Run("空スライスは0件で成功する", func(t *testing.T) {
		s := newTestStore(t)

		inserted, err := s.InsertMany(context.Background(), nil)
		if err != nil {
			t.Fatalf("InsertMany() error = %v", err)
		}
		if inserted != 0 {
			t.Errorf("inserted count: got %d, want 0", inserted)
		}
	})
}
