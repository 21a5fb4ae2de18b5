package pipeline

import (
	"context"

	"github.com/adpulse/backend/internal/envdata"
	"github.com/adpulse/backend/internal/ports"
	"github.com/adpulse/backend/internal/rules"
	"github.com/adpulse/backend/internal/speech"
	"github.com/adpulse/backend/internal/voice"
)

type Matcher interface {
	ProcessSnapshot(ctx context.Context, snap envdata.Snapshot) ([]rules.Match, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, script, voiceType string, settings voice.Settings, advertiserName string) (speech.SynthesisResult, error)
}

type Lifecycle interface {
	UpdateStatus(ctx context.Context, id int64, status ports.AdStatus, audioFile *string) error
	ResetToPending(ctx context.Context, id int64) error
}

// Result is the aggregate outcome of one pipeline run. Entry points never
// return an error: everything lands in Errors.
type Result struct {
	RunID                 string   `json:"run_id"`
	ProcessedRecords      int      `json:"processed_records"`
	SuccessfulGenerations int      `json:"successful_generations"`
	FailedGenerations     int      `json:"failed_generations"`
	Errors                []string `json:"errors"`
}

// Stats are best-effort observability counts. On a storage failure the
// counts stay zero and Error is set.
type Stats struct {
	Pending   int    `json:"pending"`
	Completed int    `json:"completed"`
	Failed    int    `json:"failed"`
	Total     int    `json:"total"`
	Error     string `json:"error,omitempty"`
}
