package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/adpulse/backend/internal/voice"
)

type stubTTS struct {
	data []byte
	err  error
}

func (s *stubTTS) Synthesize(ctx context.Context, voiceID, text string, settings voice.Settings) ([]byte, error) {
	return s.data, s.err
}

func TestSynthesizeWritesFileAndWebPath(t *testing.T) {
	dir := t.TempDir()
	s := NewSynthesizer(&stubTTS{data: []byte("mp3-bytes")}, dir, nil)
	s.now = func() time.Time { return time.UnixMilli(1717240000000) }

	res, err := s.Synthesize(context.Background(), "Buy coffee", "male", voice.Default(), "Joe's Coffee")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "script_1717240000000_male_Joe_s_Coffee.mp3"
	if res.FileName != want {
		t.Fatalf("expected filename %q, got %q", want, res.FileName)
	}
	if res.AudioPath != "/audio/"+want {
		t.Fatalf("expected web path, got %q", res.AudioPath)
	}
	if res.FileSize != int64(len("mp3-bytes")) {
		t.Fatalf("wrong file size: %d", res.FileSize)
	}

	data, err := os.ReadFile(filepath.Join(dir, want))
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if string(data) != "mp3-bytes" {
		t.Fatalf("wrong file content: %q", data)
	}
}

func TestSynthesizeFilenamePattern(t *testing.T) {
	dir := t.TempDir()
	s := NewSynthesizer(&stubTTS{data: []byte("x")}, dir, nil)

	res, err := s.Synthesize(context.Background(), "text", "female", voice.Default(), "Café #1, Ltd.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pattern := regexp.MustCompile(`^script_\d+_(male|female)_[A-Za-z0-9_]+\.mp3$`)
	if !pattern.MatchString(res.FileName) {
		t.Fatalf("filename %q does not match pattern", res.FileName)
	}
}

func TestSynthesizeRejectsEmptyStream(t *testing.T) {
	dir := t.TempDir()
	s := NewSynthesizer(&stubTTS{data: nil}, dir, nil)

	if _, err := s.Synthesize(context.Background(), "text", "male", voice.Default(), "acme"); err == nil {
		t.Fatalf("zero-byte stream must fail")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("no file may remain after an empty stream, found %d", len(entries))
	}
}

func TestSynthesizePropagatesClientError(t *testing.T) {
	dir := t.TempDir()
	s := NewSynthesizer(&stubTTS{err: fmt.Errorf("quota exceeded")}, dir, nil)

	if _, err := s.Synthesize(context.Background(), "text", "male", voice.Default(), "acme"); err == nil {
		t.Fatalf("client error must propagate")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("no file may remain after a failed call")
	}
}

func TestSynthesizeUnknownVoiceFallsBack(t *testing.T) {
	dir := t.TempDir()
	s := NewSynthesizer(&stubTTS{data: []byte("x")}, dir, nil)

	res, err := s.Synthesize(context.Background(), "text", "robot", voice.Default(), "acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !regexp.MustCompile(`_female_`).MatchString(res.FileName) {
		t.Fatalf("unknown voice type should fall back to female: %q", res.FileName)
	}
}
