package speech

import (
	"encoding/binary"
	"testing"
	"time"
)

// makeWAV builds a minimal valid WAV file holding the given seconds of
// silence in the default synthesis format.
func makeWAV(t *testing.T, seconds float64) []byte {
	t.Helper()

	byteRate := SampleRate * ChannelCount * BitDepth / 8
	pcm := make([]byte, int(seconds*float64(byteRate)))

	buf := make([]byte, 0, 44+len(pcm))
	u32 := func(v int) []byte {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(v))
		return b
	}
	u16 := func(v int) []byte {
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, uint16(v))
		return b
	}

	buf = append(buf, "RIFF"...)
	buf = append(buf, u32(36+len(pcm))...)
	buf = append(buf, "WAVE"...)
	buf = append(buf, "fmt "...)
	buf = append(buf, u32(16)...)
	buf = append(buf, u16(1)...)            // PCM
	buf = append(buf, u16(ChannelCount)...) // channels
	buf = append(buf, u32(SampleRate)...)
	buf = append(buf, u32(byteRate)...)
	buf = append(buf, u16(ChannelCount*BitDepth/8)...) // block align
	buf = append(buf, u16(BitDepth)...)
	buf = append(buf, "data"...)
	buf = append(buf, u32(len(pcm))...)
	buf = append(buf, pcm...)
	return buf
}

func TestWavDuration(t *testing.T) {
	wav := makeWAV(t, 2.5)

	dur, err := wavDuration(wav)
	if err != nil {
		t.Fatalf("wavDuration: %v", err)
	}
	want := 2500 * time.Millisecond
	if diff := dur - want; diff < -time.Millisecond || diff > time.Millisecond {
		t.Fatalf("duration = %v, want ~%v", dur, want)
	}
}

func TestExtractPCM(t *testing.T) {
	wav := makeWAV(t, 1.0)

	pcm, err := extractPCM(wav)
	if err != nil {
		t.Fatalf("extractPCM: %v", err)
	}
	wantLen := SampleRate * ChannelCount * BitDepth / 8
	if len(pcm) != wantLen {
		t.Fatalf("pcm length = %d, want %d", len(pcm), wantLen)
	}
}

func TestParseWAVRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", []byte("RIFF")},
		{"not riff", make([]byte, 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseWAV(tt.data); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
