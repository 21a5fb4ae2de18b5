package advertising

import (
	"context"
	"fmt"

	"github.com/adpulse/backend/internal/ports"
)

// Lifecycle owns status transitions of advertising records:
// pending → done|failed, failed → pending on retry.
type Lifecycle struct {
	repo ports.AdvertisingRepo
}

func NewLifecycle(repo ports.AdvertisingRepo) *Lifecycle {
	return &Lifecycle{repo: repo}
}

// UpdateStatus applies a terminal or pending status. done requires an audio
// path. Re-applying the current status is not an error — the storage write
// is idempotent.
func (l *Lifecycle) UpdateStatus(ctx context.Context, id int64, status ports.AdStatus, audioFile *string) error {
	if !status.Valid() {
		return fmt.Errorf("invalid status %q", status)
	}
	if status == ports.AdStatusDone && (audioFile == nil || *audioFile == "") {
		return fmt.Errorf("status done requires an audio file path")
	}
	return l.repo.UpdateStatus(ctx, id, status, audioFile)
}

// ResetToPending is the retry path. Only the status changes; the audio_file
// column keeps whatever the failed attempt left there.
func (l *Lifecycle) ResetToPending(ctx context.Context, id int64) error {
	return l.repo.UpdateStatus(ctx, id, ports.AdStatusPending, nil)
}
