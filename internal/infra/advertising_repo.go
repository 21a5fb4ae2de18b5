package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/adpulse/backend/internal/ports"
)

type advertisingRepo struct {
	db *sql.DB
}

func NewAdvertisingRepo(db *sql.DB) ports.AdvertisingRepo {
	return &advertisingRepo{db: db}
}

func (r *advertisingRepo) Create(ctx context.Context, ruleID string, advertiserID int64) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO advertising (rule_id, advertiser_id, audio_file, status, created_at)
		VALUES ($1, $2, NULL, $3, $4)
		RETURNING id
	`, ruleID, advertiserID, ports.AdStatusPending, time.Now()).Scan(&id)
	return id, err
}

func (r *advertisingRepo) UpdateStatus(ctx context.Context, id int64, status ports.AdStatus, audioFile *string) error {
	// audio_file survives a NULL arg, so a retry reset clears nothing
	_, err := r.db.ExecContext(ctx, `
		UPDATE advertising
		SET status = $2,
		    audio_file = COALESCE($3, audio_file)
		WHERE id = $1
	`, id, status, audioFile)
	return err
}

func (r *advertisingRepo) ListByStatus(ctx context.Context, status ports.AdStatus) ([]ports.AdvertisingRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, rule_id, advertiser_id, audio_file, status, created_at
		FROM advertising
		WHERE status = $1
		ORDER BY created_at ASC, id ASC
	`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ports.AdvertisingRecord
	for rows.Next() {
		var rec ports.AdvertisingRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.RuleID,
			&rec.AdvertiserID,
			&rec.AudioFile,
			&rec.Status,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *advertisingRepo) CountByStatus(ctx context.Context) (map[ports.AdStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM advertising
		GROUP BY status
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[ports.AdStatus]int{}
	for rows.Next() {
		var status ports.AdStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
