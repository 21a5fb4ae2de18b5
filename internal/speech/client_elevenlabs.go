package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/adpulse/backend/internal/voice"
)

type ElevenLabsClient struct {
	apiKey  string
	httpCli *http.Client
}

// NewElevenLabsClient reads the key from ENV. A missing key is not fatal
// here: Synthesize reports it, so the pipeline can fail a single record
// instead of the whole process.
func NewElevenLabsClient() *ElevenLabsClient {
	return &ElevenLabsClient{
		apiKey:  os.Getenv("ELEVENLABS_API_KEY"),
		httpCli: http.DefaultClient,
	}
}

type ttsRequest struct {
	Text          string         `json:"text"`
	ModelID       string         `json:"model_id"`
	VoiceSettings voice.Settings `json:"voice_settings"`
}

// TEXT → SPEECH
func (c *ElevenLabsClient) Synthesize(ctx context.Context, voiceID, text string, settings voice.Settings) ([]byte, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("ELEVENLABS_API_KEY not set")
	}

	url := fmt.Sprintf("https://api.elevenlabs.io/v1/text-to-speech/%s?output_format=mp3_44100_128", voiceID)

	payload, err := json.Marshal(ttsRequest{
		Text:          text,
		ModelID:       "eleven_multilingual_v2",
		VoiceSettings: settings,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tts failed: %s", string(b))
	}

	// drain the stream chunk by chunk into one buffer
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("read tts stream: %w", err)
	}

	return buf.Bytes(), nil
}
