package speech

import (
	"context"

	"github.com/adpulse/backend/internal/voice"
)

// TTSClient turns script text into audio bytes (full stream, buffered).
type TTSClient interface {
	Synthesize(ctx context.Context, voiceID, text string, settings voice.Settings) ([]byte, error)
}

// SynthesisResult describes one generated audio file.
type SynthesisResult struct {
	AudioPath string // web-relative, e.g. /audio/script_....mp3
	FileName  string
	FileSize  int64
	Duration  *float64 // seconds, nil when ffprobe is unavailable
}
