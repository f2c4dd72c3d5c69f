// Package store は漢字レコードの永続化層を提供します
package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kanji は漢字レコードを表します
type Kanji struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id,omitempty"` // ストアが割り当てる識別子
	Character string    `gorm:"uniqueIndex;not null" json:"character"`    // 漢字（必須・全レコードで一意）
	Onyomi    string    `gorm:"not null;default:''" json:"onyomi"`        // 音読み
	Kunyomi   string    `gorm:"not null;default:''" json:"kunyomi"`       // 訓読み
	Meaning   string    `gorm:"not null;default:''" json:"meaning"`       // 意味
	CreatedAt time.Time `json:"createdAt,omitzero"`                       // 作成日時
	UpdatedAt time.Time `json:"updatedAt,omitzero"`                       // 更新日時
}

// TableName は漢字レコードのテーブル名を返します
func (Kanji) TableName() string {
	return "kanji"
}

// BeforeCreate は保存前に識別子を割り当てます
func (k *Kanji) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	return nil
}

// KanjiPatch は部分更新の入力を表します
// nil のフィールドは「変更しない」を意味します
type KanjiPatch struct {
	Character *string
	Onyomi    *string
	Kunyomi   *string
	Meaning   *string
}

// Apply は指定されたフィールドだけを k に上書きします
func (p KanjiPatch) Apply(k *Kanji) {
	if p.Character != nil {
		k.Character = *p.Character
	}
	if p.Onyomi != nil {
		k.Onyomi = *p.Onyomi
	}
	if p.Kunyomi != nil {
		k.Kunyomi = *p.Kunyomi
	}
	if p.Meaning != nil {
		k.Meaning = *p.Meaning
	}
}
