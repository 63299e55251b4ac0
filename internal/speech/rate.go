package speech

import (
	"fmt"
	"math"
)

// RateString converts a multiplicative speed factor into the backend's
// signed-percentage rate offset: 1.2 -> "+20%", 0.8 -> "-20%", 1.0 -> "+0%".
// The mapping must stay exact: cached artifacts are keyed by the resulting
// string.
func RateString(speed float64) string {
	pct := int(math.Round((speed - 1) * 100))
	if pct < 0 {
		return fmt.Sprintf("-%d%%", -pct)
	}
	return fmt.Sprintf("+%d%%", pct)
}
