package ports

import "context"

type AdvertisingRepo interface {
	Create(ctx context.Context, ruleID string, advertiserID int64) (int64, error)

	// UpdateStatus re-applies the same status without error.
	UpdateStatus(ctx context.Context, id int64, status AdStatus, audioFile *string) error

	// ListByStatus returns records ordered by created_at, id — insertion order.
	ListByStatus(ctx context.Context, status AdStatus) ([]AdvertisingRecord, error)

	CountByStatus(ctx context.Context) (map[AdStatus]int, error)
}
