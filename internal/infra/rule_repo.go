package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/adpulse/backend/internal/ports"
)

type ruleRepo struct {
	db *sql.DB
}

func NewRuleRepo(db *sql.DB) ports.RuleRepo {
	return &ruleRepo{db: db}
}

const ruleColumns = `id, rule_id, rule_type, advertiser_id, priority, conditions, active, created_at`

func (r *ruleRepo) List(ctx context.Context) ([]*ports.ConditionRule, error) {
	return r.list(ctx, `
		SELECT `+ruleColumns+`
		FROM condition_rules
		ORDER BY priority DESC, id ASC
	`)
}

func (r *ruleRepo) ListActive(ctx context.Context) ([]*ports.ConditionRule, error) {
	return r.list(ctx, `
		SELECT `+ruleColumns+`
		FROM condition_rules
		WHERE active
		ORDER BY priority DESC, id ASC
	`)
}

func (r *ruleRepo) list(ctx context.Context, query string) ([]*ports.ConditionRule, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*ports.ConditionRule
	for rows.Next() {
		var cr ports.ConditionRule
		if err := rows.Scan(
			&cr.ID,
			&cr.RuleID,
			&cr.RuleType,
			&cr.AdvertiserID,
			&cr.Priority,
			&cr.Conditions,
			&cr.Active,
			&cr.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &cr)
	}
	return out, rows.Err()
}

func (r *ruleRepo) GetByRuleID(ctx context.Context, ruleID string) (*ports.ConditionRule, error) {
	var cr ports.ConditionRule
	err := r.db.QueryRowContext(ctx, `
		SELECT `+ruleColumns+`
		FROM condition_rules
		WHERE rule_id = $1
	`, ruleID).Scan(
		&cr.ID,
		&cr.RuleID,
		&cr.RuleType,
		&cr.AdvertiserID,
		&cr.Priority,
		&cr.Conditions,
		&cr.Active,
		&cr.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *ruleRepo) Create(ctx context.Context, cr *ports.ConditionRule) (*ports.ConditionRule, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO condition_rules (rule_id, rule_type, advertiser_id, priority, conditions, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, cr.RuleID, cr.RuleType, cr.AdvertiserID, cr.Priority, cr.Conditions, cr.Active, time.Now()).
		Scan(&cr.ID, &cr.CreatedAt)
	if err != nil {
		return nil, err
	}
	return cr, nil
}

func (r *ruleRepo) Update(ctx context.Context, cr *ports.ConditionRule) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE condition_rules
		SET rule_type = $2, advertiser_id = $3, priority = $4, conditions = $5, active = $6
		WHERE rule_id = $1
	`, cr.RuleID, cr.RuleType, cr.AdvertiserID, cr.Priority, cr.Conditions, cr.Active)
	return err
}

func (r *ruleRepo) Deactivate(ctx context.Context, ruleID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE condition_rules SET active = FALSE WHERE rule_id = $1
	`, ruleID)
	return err
}
