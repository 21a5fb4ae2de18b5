package speech

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/adpulse/backend/internal/ports"
	"github.com/adpulse/backend/internal/voice"
)

// Fixed voice per style.
var voiceIDs = map[string]string{
	"male":   "pNInz6obpgDQGcFmaJgB", // Adam
	"female": "EXAVITQu4vr4xnSDxMaL", // Rachel
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

type Synthesizer struct {
	tts     TTSClient
	dir     string          // on-disk audio dir, served at /audio
	archive ports.S3Client  // optional, nil when S3 is not configured
	now     func() time.Time
}

func NewSynthesizer(tts TTSClient, dir string, archive ports.S3Client) *Synthesizer {
	return &Synthesizer{
		tts:     tts,
		dir:     dir,
		archive: archive,
		now:     time.Now,
	}
}

// Synthesize renders the script into an mp3 under the audio dir and returns
// the web path. The filename alone is enough to trace a file back to its
// advertiser without a lookup.
func (s *Synthesizer) Synthesize(ctx context.Context, script, voiceType string, settings voice.Settings, advertiserName string) (SynthesisResult, error) {
	voiceID, ok := voiceIDs[voiceType]
	if !ok {
		voiceID = voiceIDs["female"]
		voiceType = "female"
	}

	data, err := s.tts.Synthesize(ctx, voiceID, script, settings)
	if err != nil {
		return SynthesisResult{}, fmt.Errorf("synthesize: %w", err)
	}
	if len(data) == 0 {
		// provider answered 200 with no audio — treat as failure
		return SynthesisResult{}, fmt.Errorf("synthesize: empty audio stream")
	}

	fileName := fmt.Sprintf("script_%d_%s_%s.mp3",
		s.now().UnixMilli(),
		voiceType,
		nonAlnum.ReplaceAllString(advertiserName, "_"),
	)
	fullPath := filepath.Join(s.dir, fileName)

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return SynthesisResult{}, fmt.Errorf("audio dir: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		// a partial file may be left behind; removal errors must not mask the write error
		_ = os.Remove(fullPath)
		return SynthesisResult{}, fmt.Errorf("write audio: %w", err)
	}

	log.Printf("[speech] %s written (%s)", fileName, humanize.Bytes(uint64(len(data))))

	res := SynthesisResult{
		AudioPath: "/audio/" + fileName,
		FileName:  fileName,
		FileSize:  int64(len(data)),
	}

	if d, err := AudioDuration(ctx, fullPath); err == nil {
		res.Duration = &d
	}

	if s.archive != nil {
		if _, err := s.archive.PutObject(ctx, fileName, bytes.NewReader(data), int64(len(data)), "audio/mpeg"); err != nil {
			log.Printf("[speech] s3 archive failed for %s: %v", fileName, err)
		}
	}

	return res, nil
}
