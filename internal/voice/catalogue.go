package voice

import "github.com/hammamikhairi/lingodrill/internal/domain"

// defaultTable is the built-in neural voice catalogue.
var defaultTable = Table{
	domain.LangEnglish: {
		"Jenny (US)":    "en-US-JennyNeural",
		"Emma (US)":     "en-US-EmmaNeural",
		"Aria (US)":     "en-US-AriaNeural",
		"Guy (US)":      "en-US-GuyNeural",
		"Roger (US)":    "en-US-RogerNeural",
		"Brian (US)":    "en-US-BrianNeural",
		"Steffan (US)":  "en-US-SteffanNeural",
		"Sonia (UK)":    "en-GB-SoniaNeural",
		"Ryan (UK)":     "en-GB-RyanNeural",
		"Natasha (AU)":  "en-AU-NatashaNeural",
		"William (AU)":  "en-AU-WilliamNeural",
		"Molly (NZ)":    "en-NZ-MollyNeural",
		"Mitchell (NZ)": "en-NZ-MitchellNeural",
		"Luna (SG)":     "en-SG-LunaNeural",
		"Wayne (SG)":    "en-SG-WayneNeural",
	},
	domain.LangKorean: {
		"SunHi":  "ko-KR-SunHiNeural",
		"InJoon": "ko-KR-InJoonNeural",
	},
	domain.LangChinese: {
		"XiaoXiao": "zh-CN-XiaoXiaoNeural",
		"XiaoYi":   "zh-CN-XiaoYiNeural",
		"XiaoHan":  "zh-CN-XiaoHanNeural",
		"YunJian":  "zh-CN-YunjianNeural",
		"YunYang":  "zh-CN-YunyangNeural",
	},
	domain.LangJapanese: {
		"Nanami": "ja-JP-NanamiNeural",
		"Keita":  "ja-JP-KeitaNeural",
	},
	domain.LangVietnamese: {
		"HoaiMy":  "vi-VN-HoaiMyNeural",
		"NamMinh": "vi-VN-NamMinhNeural",
	},
}

// defaultVoices names the fallback voice per language, used when a settings
// file requests an unset or unknown voice.
var defaultVoices = map[domain.Language]string{
	domain.LangEnglish:    "Jenny (US)",
	domain.LangKorean:     "SunHi",
	domain.LangChinese:    "XiaoXiao",
	domain.LangJapanese:   "Nanami",
	domain.LangVietnamese: "HoaiMy",
}

// AnnouncementVoiceID is the voice used for break and end-of-set
// announcements, independent of slot configuration.
const AnnouncementVoiceID = "ko-KR-SunHiNeural"
