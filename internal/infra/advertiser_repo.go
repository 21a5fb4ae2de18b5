package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/adpulse/backend/internal/ports"
)

type advertiserRepo struct {
	db *sql.DB
}

func NewAdvertiserRepo(db *sql.DB) ports.AdvertiserRepo {
	return &advertiserRepo{db: db}
}

func (r *advertiserRepo) List(ctx context.Context) ([]*ports.Advertiser, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, display_name, business_type, active, created_at
		FROM advertisers
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*ports.Advertiser
	for rows.Next() {
		var a ports.Advertiser
		if err := rows.Scan(&a.ID, &a.Name, &a.DisplayName, &a.BusinessType, &a.Active, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *advertiserRepo) GetByID(ctx context.Context, id int64) (*ports.Advertiser, error) {
	var a ports.Advertiser
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, display_name, business_type, active, created_at
		FROM advertisers
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Name, &a.DisplayName, &a.BusinessType, &a.Active, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *advertiserRepo) Create(ctx context.Context, a *ports.Advertiser) (*ports.Advertiser, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO advertisers (name, display_name, business_type, active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, a.Name, a.DisplayName, a.BusinessType, a.Active, time.Now()).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *advertiserRepo) Update(ctx context.Context, a *ports.Advertiser) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE advertisers
		SET name = $2, display_name = $3, business_type = $4, active = $5
		WHERE id = $1
	`, a.ID, a.Name, a.DisplayName, a.BusinessType, a.Active)
	return err
}

func (r *advertiserRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM advertisers WHERE id = $1`, id)
	return err
}
