package rules

import (
	"context"

	"github.com/adpulse/backend/internal/envdata"
	"github.com/adpulse/backend/internal/ports"
)

// MatchedRule is one hit from the condition engine: a rule plus its owner.
type MatchedRule struct {
	Rule       ports.ConditionRule
	Advertiser ports.Advertiser
	Priority   int
}

// Evaluator is the condition engine. Matches come back already ordered by
// priority, highest first; the matcher does not re-sort.
type Evaluator interface {
	EvaluateConditions(ctx context.Context, rc envdata.RuleContext) ([]MatchedRule, error)
}

// Match pairs an evaluator hit with the advertising record it produced.
type Match struct {
	MatchedRule
	RecordID int64
}
