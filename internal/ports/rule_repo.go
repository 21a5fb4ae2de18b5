package ports

import "context"

type RuleRepo interface {
	List(ctx context.Context) ([]*ConditionRule, error)
	ListActive(ctx context.Context) ([]*ConditionRule, error)
	GetByRuleID(ctx context.Context, ruleID string) (*ConditionRule, error)
	Create(ctx context.Context, r *ConditionRule) (*ConditionRule, error)
	Update(ctx context.Context, r *ConditionRule) error
	Deactivate(ctx context.Context, ruleID string) error
}
