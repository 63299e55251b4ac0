// Package speech provides text-to-speech synthesis, the on-disk audio
// cache, and blocking audio playback.
package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hammamikhairi/lingodrill/internal/logger"
)

// Backend is the raw synthesis contract: text in, WAV bytes out. The neural
// HTTP client implements it; tests substitute counting fakes.
type Backend interface {
	Synthesize(ctx context.Context, text, voiceID, rate string) ([]byte, error)
}

// ClientOption configures the neural TTS client.
type ClientOption func(*Client)

// WithAudioFormat sets the audio output format.
func WithAudioFormat(format string) ClientOption {
	return func(c *Client) {
		c.format = format
	}
}

// WithHTTPTimeout sets the HTTP client timeout for synthesis requests.
func WithHTTPTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// Client synthesizes speech through the hosted neural voice service. The
// voice and speaking rate vary per request, so one client serves every
// language slot.
type Client struct {
	subscriptionKey string
	region          string
	format          string
	httpClient      *http.Client
	log             *logger.Logger
}

// Compile-time interface check.
var _ Backend = (*Client)(nil)

// NewClient creates a neural TTS client with the given credentials.
func NewClient(key, region string, log *logger.Logger, opts ...ClientOption) *Client {
	c := &Client{
		subscriptionKey: key,
		region:          region,
		format:          DefaultAudioFormat,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Synthesize converts text to speech audio (WAV bytes) with the given voice
// and rate offset (e.g. "+20%").
func (c *Client) Synthesize(ctx context.Context, text, voiceID, rate string) ([]byte, error) {
	url := fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", c.region)

	ssml := buildSSML(text, voiceID, rate)
	c.log.Debug("tts: synthesizing %d chars (voice=%s, rate=%s)", len(text), voiceID, rate)

	req, err := http.NewRequestWithContext(ctx, "POST", url, strings.NewReader(ssml))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Ocp-Apim-Subscription-Key", c.subscriptionKey)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", c.format)
	req.Header.Set("User-Agent", "lingodrill/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tts error %d: %s", resp.StatusCode, string(body))
	}

	audioData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading audio data: %w", err)
	}

	c.log.Debug("tts: got %d bytes of audio", len(audioData))
	return audioData, nil
}

var ssmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// buildSSML creates SSML markup for a synthesis request. The prosody rate
// element carries the per-slot speed offset.
func buildSSML(text, voiceID, rate string) string {
	return fmt.Sprintf(
		`<speak version='1.0' xml:lang='en-US'><voice name='%s'><prosody rate='%s'>%s</prosody></voice></speak>`,
		voiceID, rate, ssmlEscaper.Replace(text),
	)
}
