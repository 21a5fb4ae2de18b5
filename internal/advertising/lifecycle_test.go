package advertising

import (
	"context"
	"testing"

	"github.com/adpulse/backend/internal/ports"
)

type stubRepo struct {
	ports.AdvertisingRepo
	lastID     int64
	lastStatus ports.AdStatus
	lastAudio  *string
	calls      int
}

func (s *stubRepo) UpdateStatus(ctx context.Context, id int64, status ports.AdStatus, audioFile *string) error {
	s.calls++
	s.lastID = id
	s.lastStatus = status
	s.lastAudio = audioFile
	return nil
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := &stubRepo{}
	l := NewLifecycle(repo)

	if err := l.UpdateStatus(context.Background(), 1, "archived", nil); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	if repo.calls != 0 {
		t.Fatalf("storage must not be touched on validation failure")
	}
}

func TestUpdateStatusDoneRequiresAudioPath(t *testing.T) {
	repo := &stubRepo{}
	l := NewLifecycle(repo)

	if err := l.UpdateStatus(context.Background(), 1, ports.AdStatusDone, nil); err == nil {
		t.Fatalf("done without audio path must fail")
	}
	empty := ""
	if err := l.UpdateStatus(context.Background(), 1, ports.AdStatusDone, &empty); err == nil {
		t.Fatalf("done with empty audio path must fail")
	}

	path := "/audio/script_1_male_x.mp3"
	if err := l.UpdateStatus(context.Background(), 1, ports.AdStatusDone, &path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastStatus != ports.AdStatusDone || repo.lastAudio != &path {
		t.Fatalf("wrong write: %v %v", repo.lastStatus, repo.lastAudio)
	}
}

func TestResetToPending(t *testing.T) {
	repo := &stubRepo{}
	l := NewLifecycle(repo)

	if err := l.ResetToPending(context.Background(), 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastID != 42 || repo.lastStatus != ports.AdStatusPending {
		t.Fatalf("wrong reset write: %+v", repo)
	}
	if repo.lastAudio != nil {
		t.Fatalf("reset must not touch the audio path")
	}
}
