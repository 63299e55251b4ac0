package domain

// SentenceRow is one parallel-language sentence, identified by its 1-based
// position in the source sheet. Rows are immutable once loaded; absent
// columns are represented by empty strings.
type SentenceRow struct {
	Index int
	Text  map[Language]string
}

// Get returns the row's text for a language, or "" when the column is
// missing or the language is LangNone.
func (r SentenceRow) Get(lang Language) string {
	if !lang.Active() {
		return ""
	}
	return r.Text[lang]
}
