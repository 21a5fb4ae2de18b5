package rules

import (
	"context"
	"fmt"
	"log"

	"github.com/adpulse/backend/internal/envdata"
	"github.com/adpulse/backend/internal/ports"
)

// Matcher turns an environmental snapshot into pending advertising records,
// one per matched rule. Records are created before any generation work
// starts, so a crash mid-run leaves resumable state behind.
type Matcher struct {
	eval Evaluator
	ads  ports.AdvertisingRepo
}

func NewMatcher(eval Evaluator, ads ports.AdvertisingRepo) *Matcher {
	return &Matcher{eval: eval, ads: ads}
}

// ProcessSnapshot evaluates the snapshot and creates one pending record per
// match. A failed insert skips that match only; the rest still get their
// records. The returned list is statistics material — the orchestrator
// re-reads pending records from storage before draining.
func (m *Matcher) ProcessSnapshot(ctx context.Context, snap envdata.Snapshot) ([]Match, error) {
	rc := envdata.BuildRuleContext(snap)

	matched, err := m.eval.EvaluateConditions(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("evaluate conditions: %w", err)
	}
	if len(matched) == 0 {
		return nil, nil
	}

	var out []Match
	for _, mr := range matched {
		id, err := m.ads.Create(ctx, mr.Rule.RuleID, mr.Advertiser.ID)
		if err != nil {
			log.Printf("[rules] create record failed for rule=%s advertiser=%d: %v",
				mr.Rule.RuleID, mr.Advertiser.ID, err)
			continue
		}
		out = append(out, Match{MatchedRule: mr, RecordID: id})
	}
	return out, nil
}
