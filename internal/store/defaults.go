// Package store は漢字レコードの永続化層を提供します
package store

// DefaultKanjiSet はコレクションが空のときに代わりに返す基本の漢字10件を返します
// 呼び出し側が自由にシャッフル・切り詰めできるよう、毎回新しいスライスを返します
// 未保存のレコードなので識別子とタイムスタンプは持ちません
func DefaultKanjiSet() []Kanji {
	return []Kanji{
		{Character: "日", Onyomi: "ニチ、ジツ", Kunyomi: "ひ、か", Meaning: "sun; day"},
		{Character: "月", Onyomi: "ゲツ、ガツ", Kunyomi: "つき", Meaning: "moon; month"},
		{Character: "火", Onyomi: "カ", Kunyomi: "ひ", Meaning: "fire"},
		{Character: "水", Onyomi: "スイ", Kunyomi: "みず", Meaning: "water"},
		{Character: "木", Onyomi: "モク、ボク", Kunyomi: "き", Meaning: "tree; wood"},
		{Character: "金", Onyomi: "キン、コン", Kunyomi: "かね", Meaning: "gold; money"},
		{Character: "土", Onyomi: "ド、ト", Kunyomi: "つち", Meaning: "earth; soil"},
		{Character: "山", Onyomi: "サン", Kunyomi: "やま", Meaning: "mountain"},
		{Character: "川", Onyomi: "セン", Kunyomi: "かわ", Meaning: "river"},
		{Character: "人", Onyomi: "ジン、ニン", Kunyomi: "ひと", Meaning: "person"},
	}
}
