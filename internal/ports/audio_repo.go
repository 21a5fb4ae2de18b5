package ports

import "context"

type AudioRepo interface {
	Create(ctx context.Context, a *Audio) (int64, error)
	MarkCompleted(ctx context.Context, id int64, audioURL string, duration *float64) error
	MarkFailed(ctx context.Context, id int64) error
	ListRecent(ctx context.Context, limit int) ([]Audio, error)
}
