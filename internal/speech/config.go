package speech

import "time"

// Audio format requested from the synthesis backend and expected by the player.
const DefaultAudioFormat = "riff-24khz-16bit-mono-pcm"

// Audio parameters matching the default format.
const (
	SampleRate   = 24000
	ChannelCount = 1
	BitDepth     = 16
)

// SettleMargin is the fixed post-playback pause added after every artifact
// so sequencing timing is the same across playback backends.
const SettleMargin = 300 * time.Millisecond

// Env var names for the neural speech backend credentials.
const (
	EnvSpeechKey    = "SPEECH_KEY"
	EnvSpeechRegion = "SPEECH_REGION"
)
