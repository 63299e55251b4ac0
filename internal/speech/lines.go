// lines.go centralises every synthesized announcement.
// Keep lines short; the TTS engine handles inflection.
package speech

import "fmt"

// ── Break / completion announcements ─────────────────────────────

// LineBreak is spoken at the start of every rest break.
func LineBreak() string {
	return "쉬는 시간입니다, 5초간의 여유를 느껴보세요"
}

// LineChime is the short notification synthesized into break.wav when the
// asset is missing.
func LineChime() string {
	return "딩동"
}

// LineSetComplete is synthesized into final.wav when the asset is missing,
// and played at the end of every pass.
func LineSetComplete() string {
	return "학습을 모두 마쳤습니다, 수고하셨습니다"
}

// ── Status lines (displayed, not spoken) ─────────────────────────

func LineBreakStatus(interval int, secs int) string {
	return fmt.Sprintf("%d sentences done, resting %d seconds", interval, secs)
}

func LinePassStatus(pass, total int) string {
	return fmt.Sprintf("repeating pass %d of %d", pass, total)
}

func LineDoneStatus(total int) string {
	return fmt.Sprintf("all done after %d passes", total)
}
