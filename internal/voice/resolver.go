// Package voice maps (language, voice name) pairs to neural synthesizer
// voice identifiers.
package voice

import "github.com/hammamikhairi/lingodrill/internal/domain"

// Table is the per-language catalogue of display names to synthesizer voice
// identifiers. A language absent from the table is subtitle-only: the
// resolver reports no voice and the sequencer skips synthesis while still
// rendering the subtitle.
type Table map[domain.Language]map[string]string

// Resolver resolves voice names against a table with per-language defaults.
// It is a pure lookup: no side effects, no state beyond the tables.
type Resolver struct {
	table    Table
	defaults map[domain.Language]string
}

// NewResolver creates a resolver over the given table and defaults. Pass nil
// for both to use the built-in neural voice catalogue.
func NewResolver(table Table, defaults map[domain.Language]string) *Resolver {
	if table == nil {
		table = defaultTable
	}
	if defaults == nil {
		defaults = defaultVoices
	}
	return &Resolver{table: table, defaults: defaults}
}

// Resolve maps (language, requested name) to a synthesizer voice ID.
//
// An unset or unknown name falls back to the language's default name before
// lookup. ok == false means the language itself has no voice table entry,
// a valid steady state rather than an error.
func (r *Resolver) Resolve(lang domain.Language, voiceName string) (string, bool) {
	voices, ok := r.table[lang]
	if !ok || len(voices) == 0 {
		return "", false
	}
	if _, known := voices[voiceName]; !known {
		voiceName = r.defaults[lang]
	}
	id, known := voices[voiceName]
	if !known {
		// Default name missing from the table too. Treat as voiceless.
		return "", false
	}
	return id, true
}

// Known reports whether a display name exists in the language's catalogue,
// without applying the default-name fallback.
func (r *Resolver) Known(lang domain.Language, voiceName string) bool {
	_, ok := r.table[lang][voiceName]
	return ok
}

// Default returns the default display name for a language.
func (r *Resolver) Default(lang domain.Language) string {
	return r.defaults[lang]
}
