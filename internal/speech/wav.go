package speech

import (
	"encoding/binary"
	"errors"
	"time"
)

// wavInfo is the subset of the RIFF header the player and synthesizer need.
type wavInfo struct {
	byteRate int // bytes of PCM per second
	pcm      []byte
}

// parseWAV walks the RIFF chunks of a WAV file and returns the byte rate
// from the fmt chunk plus the raw PCM from the data chunk.
func parseWAV(wav []byte) (wavInfo, error) {
	if len(wav) < 44 {
		return wavInfo{}, errors.New("wav data too short")
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		return wavInfo{}, errors.New("not a valid WAV file")
	}

	info := wavInfo{}
	pos := 12
	for pos < len(wav)-8 {
		chunkID := string(wav[pos : pos+4])
		chunkSize := int(binary.LittleEndian.Uint32(wav[pos+4 : pos+8]))
		start := pos + 8

		switch chunkID {
		case "fmt ":
			if chunkSize >= 16 && start+16 <= len(wav) {
				info.byteRate = int(binary.LittleEndian.Uint32(wav[start+8 : start+12]))
			}
		case "data":
			end := start + chunkSize
			if end > len(wav) {
				end = len(wav)
			}
			info.pcm = wav[start:end]
		}

		pos = start + chunkSize
		// Chunks are word-aligned.
		if chunkSize%2 != 0 {
			pos++
		}
	}

	if info.pcm == nil {
		return wavInfo{}, errors.New("data chunk not found in WAV")
	}
	if info.byteRate == 0 {
		// Assume the default synthesis format when the fmt chunk is missing.
		info.byteRate = SampleRate * ChannelCount * BitDepth / 8
	}
	return info, nil
}

// wavDuration returns the playback duration of a WAV file, derived from the
// data length and the declared byte rate.
func wavDuration(wav []byte) (time.Duration, error) {
	info, err := parseWAV(wav)
	if err != nil {
		return 0, err
	}
	secs := float64(len(info.pcm)) / float64(info.byteRate)
	return time.Duration(secs * float64(time.Second)), nil
}

// extractPCM strips the WAV/RIFF framing and returns raw PCM data.
func extractPCM(wav []byte) ([]byte, error) {
	info, err := parseWAV(wav)
	if err != nil {
		return nil, err
	}
	return info.pcm, nil
}
