package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hammamikhairi/lingodrill/internal/domain"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := Default()
	if s.Ranks.Second.Language != def.Ranks.Second.Language {
		t.Fatalf("second rank = %q, want %q", s.Ranks.Second.Language, def.Ranks.Second.Language)
	}
	if s.BreakInterval != def.BreakInterval {
		t.Fatalf("break interval = %d, want %d", s.BreakInterval, def.BreakInterval)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeSettings(t, "start_row: 5\nend_row: 20\n")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.StartRow != 5 || s.EndRow != 20 {
		t.Fatalf("range = [%d,%d], want [5,20]", s.StartRow, s.EndRow)
	}
	// Untouched fields keep their defaults.
	if s.TotalPasses != Default().TotalPasses {
		t.Fatalf("total passes = %d, want default %d", s.TotalPasses, Default().TotalPasses)
	}
	if s.Language("english").Voice != "Jenny (US)" {
		t.Fatalf("english voice = %q, want default", s.Language("english").Voice)
	}
}

func TestLoadCorruptFileFallsBackWithoutDeleting(t *testing.T) {
	path := writeSettings(t, "{{{not yaml")

	s, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if s.BreakInterval != Default().BreakInterval {
		t.Fatal("expected defaults on corrupt file")
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatal("corrupt settings file must not be deleted")
	}
}

func TestUpgradeLegacyVoiceNames(t *testing.T) {
	tests := []struct {
		name   string
		legacy string
		lang   string
		want   string
	}{
		{"korean hangul label", "선희", "korean", "SunHi"},
		{"chinese hangul label", "샤오샤오 (여)", "chinese", "XiaoXiao"},
		{"old region suffix", "XiaoXiao (CN)", "chinese", "XiaoXiao"},
		{"unknown falls to default", "윈시 (남)", "chinese", "XiaoXiao"},
		{"current name untouched", "InJoon", "korean", "InJoon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, "languages:\n  "+tt.lang+":\n    voice: \""+tt.legacy+"\"\n    speed: 1.2\n")
			s, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if got := s.Language(tt.lang).Voice; got != tt.want {
				t.Fatalf("voice = %q, want %q", got, tt.want)
			}
			if s.Version != CurrentVersion {
				t.Fatalf("version = %d, want %d", s.Version, CurrentVersion)
			}
		})
	}
}

func TestSaveWritesBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	first := Default()
	if err := Save(first, path); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := Default()
	second.StartRow = 7
	if err := Save(second, path); err != nil {
		t.Fatalf("second save: %v", err)
	}

	// Backup holds the previous contents.
	loaded, err := Load(path + ".bak")
	if err != nil {
		t.Fatalf("loading backup: %v", err)
	}
	if loaded.StartRow != first.StartRow {
		t.Fatalf("backup start_row = %d, want %d", loaded.StartRow, first.StartRow)
	}

	current, err := Load(path)
	if err != nil {
		t.Fatalf("loading current: %v", err)
	}
	if current.StartRow != 7 {
		t.Fatalf("current start_row = %d, want 7", current.StartRow)
	}
}

func TestSnapshotRestore(t *testing.T) {
	s := Default()
	snap := s.Snapshot()

	s.StartRow = 99
	ls := s.Languages["english"]
	ls.Speed = 0.5
	s.Languages["english"] = ls

	s.Restore(snap)
	if s.StartRow != Default().StartRow {
		t.Fatalf("start_row = %d after restore", s.StartRow)
	}
	if s.Languages["english"].Speed != Default().Languages["english"].Speed {
		t.Fatal("language edit survived restore")
	}
}

func TestSessionConfigConversion(t *testing.T) {
	s := Default()
	s.Ranks.First = SlotSettings{Language: "korean", Repeat: 0}
	s.Ranks.Second = SlotSettings{Language: "english", Repeat: 2, HideSubtitle: true}
	s.Ranks.Third = SlotSettings{Language: "none"}
	s.InterRepeatGap = 0.5
	s.BreakDuration = 10

	cfg := s.SessionConfig()

	if cfg.Slots[0].Language != domain.LangKorean || cfg.Slots[0].Repeat != 0 {
		t.Fatalf("first slot = %+v", cfg.Slots[0])
	}
	if !cfg.Slots[1].HideSubtitle || cfg.Slots[1].Speed != 1.2 {
		t.Fatalf("second slot = %+v", cfg.Slots[1])
	}
	if !cfg.Slots[2].Inactive() {
		t.Fatal("third slot should be inactive")
	}
	if cfg.InterRepeatGap != 500*time.Millisecond {
		t.Fatalf("inter-repeat gap = %v", cfg.InterRepeatGap)
	}
	if cfg.BreakDuration != 10*time.Second {
		t.Fatalf("break duration = %v", cfg.BreakDuration)
	}
}
