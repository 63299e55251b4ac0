package config

import (
	"github.com/hammamikhairi/lingodrill/internal/domain"
	"github.com/hammamikhairi/lingodrill/internal/voice"
)

// legacyVoices maps voice display names from older settings files to their
// current names. Covers both the original Korean-script labels and the
// earlier region-suffixed forms.
var legacyVoices = map[string]string{
	"선희":       "SunHi",
	"인준":       "InJoon",
	"샤오샤오":     "XiaoXiao",
	"샤오샤오 (여)": "XiaoXiao",
	"샤오이 (여)":  "XiaoYi",
	"샤오한 (여)":  "XiaoHan",
	"윈지엔":      "YunJian",
	"윈지엔 (남)":  "YunJian",
	"윈양":       "YunYang",
	"윈양 (남)":   "YunYang",

	"XiaoXiao (CN)": "XiaoXiao",
	"XiaoYi (CN)":   "XiaoYi",
	"YunJian (CN)":  "YunJian",
	"YunYang (CN)":  "YunYang",
}

// upgrade migrates a loaded settings value to the current schema. Total over
// every known legacy shape: unknown values fall back to defaults, nothing is
// ever discarded wholesale.
func upgrade(s *Settings) {
	if s.Languages == nil {
		s.Languages = Default().Languages
	}

	catalogue := voice.NewResolver(nil, nil)

	for name, ls := range s.Languages {
		lang := domain.ParseLanguage(name)
		if !lang.Active() {
			delete(s.Languages, name)
			continue
		}

		if renamed, ok := legacyVoices[ls.Voice]; ok {
			ls.Voice = renamed
		}
		if !catalogue.Known(lang, ls.Voice) {
			ls.Voice = catalogue.Default(lang)
		}
		if ls.Speed <= 0 {
			ls.Speed = Default().Language(name).Speed
		}
		s.Languages[name] = ls
	}

	for name, def := range Default().Languages {
		if _, ok := s.Languages[name]; !ok {
			s.Languages[name] = def
		}
	}

	fixSlot := func(ss *SlotSettings) {
		if ss.Language == "" {
			ss.Language = "none"
		}
		if ss.Repeat < 0 {
			ss.Repeat = 0
		}
	}
	fixSlot(&s.Ranks.First)
	fixSlot(&s.Ranks.Second)
	fixSlot(&s.Ranks.Third)

	s.Version = CurrentVersion
}
