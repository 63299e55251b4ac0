package voice

import (
	"testing"

	"github.com/hammamikhairi/lingodrill/internal/domain"
)

func TestResolveBuiltinCatalogue(t *testing.T) {
	r := NewResolver(nil, nil)

	tests := []struct {
		name      string
		lang      domain.Language
		voiceName string
		wantID    string
		wantOK    bool
	}{
		{"known voice", domain.LangEnglish, "Jenny (US)", "en-US-JennyNeural", true},
		{"another known voice", domain.LangKorean, "InJoon", "ko-KR-InJoonNeural", true},
		{"unknown name falls to default", domain.LangEnglish, "Nobody", "en-US-JennyNeural", true},
		{"empty name falls to default", domain.LangChinese, "", "zh-CN-XiaoXiaoNeural", true},
		{"inactive language", domain.LangNone, "SunHi", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := r.Resolve(tt.lang, tt.voiceName)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if id != tt.wantID {
				t.Fatalf("id = %q, want %q", id, tt.wantID)
			}
		})
	}
}

func TestResolveVoicelessLanguage(t *testing.T) {
	// A language with no table entry is subtitle-only, not an error.
	table := Table{
		domain.LangEnglish: {"Jenny (US)": "en-US-JennyNeural"},
	}
	defaults := map[domain.Language]string{domain.LangEnglish: "Jenny (US)"}
	r := NewResolver(table, defaults)

	if _, ok := r.Resolve(domain.LangKorean, "SunHi"); ok {
		t.Fatal("expected no voice for an unmapped language")
	}
}

func TestKnown(t *testing.T) {
	r := NewResolver(nil, nil)

	if !r.Known(domain.LangKorean, "SunHi") {
		t.Fatal("SunHi should be known")
	}
	if r.Known(domain.LangKorean, "선희") {
		t.Fatal("legacy label should not be known without migration")
	}
}

func TestDefaults(t *testing.T) {
	r := NewResolver(nil, nil)

	for _, lang := range domain.Languages {
		name := r.Default(lang)
		if name == "" {
			t.Fatalf("no default voice for %s", lang)
		}
		if !r.Known(lang, name) {
			t.Fatalf("default %q for %s missing from catalogue", name, lang)
		}
	}
}
