package speech

import "testing"

func TestRateString(t *testing.T) {
	tests := []struct {
		speed float64
		want  string
	}{
		{0.8, "-20%"},
		{0.9, "-10%"},
		{1.0, "+0%"},
		{1.1, "+10%"},
		{1.2, "+20%"},
		{1.5, "+50%"},
		{2.0, "+100%"},
		{0.5, "-50%"},
	}

	for _, tt := range tests {
		if got := RateString(tt.speed); got != tt.want {
			t.Errorf("RateString(%v) = %q, want %q", tt.speed, got, tt.want)
		}
	}
}
