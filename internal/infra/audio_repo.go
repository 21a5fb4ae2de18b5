package infra

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/adpulse/backend/internal/ports"
)

type audioRepo struct {
	db *sql.DB
}

func NewAudioRepo(db *sql.DB) ports.AudioRepo {
	return &audioRepo{db: db}
}

func (r *audioRepo) Create(ctx context.Context, a *ports.Audio) (int64, error) {
	vars, err := json.Marshal(a.Variables)
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO audios (text_content, variables, audio_url, voice_type, duration, status, generated_at)
		VALUES ($1, $2, NULL, $3, NULL, $4, $5)
		RETURNING id
	`, a.Text, vars, a.VoiceType, a.Status, time.Now()).Scan(&id)
	return id, err
}

func (r *audioRepo) MarkCompleted(ctx context.Context, id int64, audioURL string, duration *float64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE audios
		SET status = $2, audio_url = $3, duration = $4, synthesized_at = NOW()
		WHERE id = $1
	`, id, ports.AudioStatusCompleted, audioURL, duration)
	return err
}

func (r *audioRepo) MarkFailed(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE audios
		SET status = $2, synthesized_at = NOW()
		WHERE id = $1
	`, id, ports.AudioStatusFailed)
	return err
}

func (r *audioRepo) ListRecent(ctx context.Context, limit int) ([]ports.Audio, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, text_content, variables, audio_url, voice_type, duration, status, generated_at, synthesized_at
		FROM audios
		ORDER BY generated_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ports.Audio
	for rows.Next() {
		var a ports.Audio
		var vars []byte
		if err := rows.Scan(
			&a.ID,
			&a.Text,
			&vars,
			&a.AudioURL,
			&a.VoiceType,
			&a.Duration,
			&a.Status,
			&a.GeneratedAt,
			&a.SynthesizedAt,
		); err != nil {
			return nil, err
		}
		if len(vars) > 0 {
			_ = json.Unmarshal(vars, &a.Variables)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
