package delivery

import (
	"context"

	"github.com/adpulse/backend/internal/envdata"
	"github.com/adpulse/backend/internal/pipeline"
)

// PipelineService is what the HTTP layer needs from the orchestrator.
type PipelineService interface {
	RunForNewSnapshot(ctx context.Context, snap envdata.Snapshot) pipeline.Result
	DrainPending(ctx context.Context) pipeline.Result
	RetryFailed(ctx context.Context) pipeline.Result
	Stats(ctx context.Context) pipeline.Stats
}
