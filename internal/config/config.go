// Package config persists drill settings as YAML with defaults, versioned
// upgrades of legacy files, and a backup copy written before every save.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/lingodrill/internal/domain"
)

// CurrentVersion is the settings schema version written by this build.
const CurrentVersion = 1

// SlotSettings configures one ranked language position.
type SlotSettings struct {
	Language     string `yaml:"language"`
	Repeat       int    `yaml:"repeat"`
	HideSubtitle bool   `yaml:"hide_subtitle"`
}

// RankSettings binds the three fixed ranks to their slot configuration.
// An explicit struct rather than string-built keys, so a schema change
// cannot silently miss a rank.
type RankSettings struct {
	First  SlotSettings `yaml:"first"`
	Second SlotSettings `yaml:"second"`
	Third  SlotSettings `yaml:"third"`
}

// LanguageSettings holds the per-language presentation and voice choices
// shared by every rank that selects the language.
type LanguageSettings struct {
	Voice    string  `yaml:"voice"`
	Speed    float64 `yaml:"speed"`
	FontSize int     `yaml:"font_size"`
	Color    string  `yaml:"color"`
}

// Settings is the whole persisted configuration surface.
type Settings struct {
	Version int `yaml:"version"`

	Sheet    string `yaml:"sheet"`
	StartRow int    `yaml:"start_row"`
	EndRow   int    `yaml:"end_row"`

	Ranks     RankSettings                `yaml:"ranks"`
	Languages map[string]LanguageSettings `yaml:"languages"`

	// Pacing, in seconds.
	InterRepeatGap   float64 `yaml:"inter_repeat_gap"`
	InterSentenceGap float64 `yaml:"inter_sentence_gap"`
	SubtitleStagger  float64 `yaml:"subtitle_stagger"`

	BreakEnabled  bool `yaml:"break_enabled"`
	BreakInterval int  `yaml:"break_interval"`
	BreakDuration int  `yaml:"break_duration"`

	AutoRepeat  bool `yaml:"auto_repeat"`
	TotalPasses int  `yaml:"total_passes"`
}

// Default returns the factory settings: Korean first (subtitle only),
// English second with one repetition, third slot off.
func Default() Settings {
	return Settings{
		Version:  CurrentVersion,
		Sheet:    "en600",
		StartRow: 1,
		EndRow:   50,
		Ranks: RankSettings{
			First:  SlotSettings{Language: "korean", Repeat: 0},
			Second: SlotSettings{Language: "english", Repeat: 1},
			Third:  SlotSettings{Language: "none", Repeat: 0},
		},
		Languages: map[string]LanguageSettings{
			"english":    {Voice: "Jenny (US)", Speed: 1.2, FontSize: 32, Color: "#FFFFFF"},
			"korean":     {Voice: "SunHi", Speed: 1.2, FontSize: 25, Color: "#00FF00"},
			"chinese":    {Voice: "XiaoXiao", Speed: 1.2, FontSize: 32, Color: "#00FF00"},
			"japanese":   {Voice: "Nanami", Speed: 2.0, FontSize: 28, Color: "#00FF00"},
			"vietnamese": {Voice: "HoaiMy", Speed: 1.2, FontSize: 30, Color: "#00FF00"},
		},
		InterRepeatGap:   1.0,
		InterSentenceGap: 1.0,
		SubtitleStagger:  1.0,
		BreakEnabled:     true,
		BreakInterval:    10,
		BreakDuration:    10,
		AutoRepeat:       true,
		TotalPasses:      3,
	}
}

// Load reads settings from path. A missing file yields the defaults. A file
// that parses only partially keeps defaults for the missing fields. Legacy
// files are upgraded in memory; the file on disk is rewritten only on the
// next Save.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		// A corrupt file is never deleted; run on defaults and let the
		// user decide.
		return Default(), fmt.Errorf("parsing settings: %w", err)
	}

	upgrade(&s)
	return s, nil
}

// Save writes settings to path, keeping a .bak copy of the previous file.
// If the write fails the previous file is restored from the backup; the
// in-memory settings are never touched.
func Save(s Settings, path string) error {
	s.Version = CurrentVersion

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	backup := path + ".bak"
	prev, readErr := os.ReadFile(path)
	if readErr == nil {
		if err := os.WriteFile(backup, prev, 0o644); err != nil {
			return fmt.Errorf("writing settings backup: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		if readErr == nil {
			if rbErr := os.WriteFile(path, prev, 0o644); rbErr != nil {
				return fmt.Errorf("writing settings (rollback also failed: %v): %w", rbErr, err)
			}
		}
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// Snapshot returns a deep copy for cancel/commit of in-session edits.
func (s Settings) Snapshot() Settings {
	out := s
	out.Languages = make(map[string]LanguageSettings, len(s.Languages))
	for k, v := range s.Languages {
		out.Languages[k] = v
	}
	return out
}

// Restore replaces the settings with a previously taken snapshot.
func (s *Settings) Restore(snap Settings) {
	*s = snap.Snapshot()
}

// Language returns the per-language settings, falling back to defaults for
// languages the file never mentions.
func (s Settings) Language(name string) LanguageSettings {
	if ls, ok := s.Languages[name]; ok {
		return ls
	}
	return Default().Languages[name]
}

// SessionConfig assembles the playback configuration consumed by the
// sequencer.
func (s Settings) SessionConfig() domain.SessionConfig {
	slot := func(ss SlotSettings) domain.Slot {
		lang := domain.ParseLanguage(ss.Language)
		ls := s.Language(ss.Language)
		return domain.Slot{
			Language:     lang,
			Repeat:       ss.Repeat,
			Speed:        ls.Speed,
			VoiceName:    ls.Voice,
			HideSubtitle: ss.HideSubtitle,
			FontSize:     ls.FontSize,
			Color:        ls.Color,
		}
	}

	secs := func(v float64) time.Duration {
		return time.Duration(v * float64(time.Second))
	}

	return domain.SessionConfig{
		Slots: [3]domain.Slot{
			slot(s.Ranks.First),
			slot(s.Ranks.Second),
			slot(s.Ranks.Third),
		},
		InterRepeatGap:   secs(s.InterRepeatGap),
		InterSentenceGap: secs(s.InterSentenceGap),
		SubtitleStagger:  secs(s.SubtitleStagger),
		BreakEnabled:     s.BreakEnabled,
		BreakInterval:    s.BreakInterval,
		BreakDuration:    time.Duration(s.BreakDuration) * time.Second,
		AutoRepeat:       s.AutoRepeat,
		TotalPasses:      s.TotalPasses,
		StartRow:         s.StartRow,
		EndRow:           s.EndRow,
	}
}
