// Package domain defines the core types shared across the player: languages,
// sentence rows, slot configuration, session state, and the ports the
// sequencer depends on.
package domain

import "fmt"

// Language identifies one of the supported drill languages. The zero value
// is LangNone, which marks a slot as inactive.
type Language string

const (
	LangNone       Language = "none"
	LangEnglish    Language = "english"
	LangKorean     Language = "korean"
	LangChinese    Language = "chinese"
	LangJapanese   Language = "japanese"
	LangVietnamese Language = "vietnamese"
)

// Languages lists every real language in spreadsheet column order. LangNone
// is excluded: it is a slot marker, not a column.
var Languages = []Language{LangEnglish, LangKorean, LangChinese, LangVietnamese, LangJapanese}

// ParseLanguage converts a settings-file string into a Language. Unknown or
// empty values map to LangNone so a hand-edited settings file degrades to an
// inactive slot instead of failing the whole load.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LangEnglish, LangKorean, LangChinese, LangJapanese, LangVietnamese:
		return Language(s)
	default:
		return LangNone
	}
}

// Active reports whether the language names a real drill language.
func (l Language) Active() bool {
	return l != LangNone && l != ""
}

func (l Language) String() string {
	if l == "" {
		return string(LangNone)
	}
	return string(l)
}

// Rank is one of the three fixed priority positions a language can occupy
// within a sentence.
type Rank int

const (
	RankFirst Rank = iota
	RankSecond
	RankThird
)

// AllRanks is the fixed iteration order for slots within one sentence.
var AllRanks = []Rank{RankFirst, RankSecond, RankThird}

// String returns a human-readable rank name.
func (r Rank) String() string {
	switch r {
	case RankFirst:
		return "first"
	case RankSecond:
		return "second"
	case RankThird:
		return "third"
	default:
		return fmt.Sprintf("rank(%d)", int(r))
	}
}
