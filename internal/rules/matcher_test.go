package rules

import (
	"context"
	"fmt"
	"testing"

	"github.com/adpulse/backend/internal/envdata"
	"github.com/adpulse/backend/internal/ports"
)

type stubEvaluator struct {
	matches []MatchedRule
	err     error
}

func (s *stubEvaluator) EvaluateConditions(ctx context.Context, rc envdata.RuleContext) ([]MatchedRule, error) {
	return s.matches, s.err
}

type stubAdsRepo struct {
	ports.AdvertisingRepo
	nextID  int64
	failFor map[string]bool
	created []string
}

func (s *stubAdsRepo) Create(ctx context.Context, ruleID string, advertiserID int64) (int64, error) {
	if s.failFor[ruleID] {
		return 0, fmt.Errorf("insert failed")
	}
	s.nextID++
	s.created = append(s.created, ruleID)
	return s.nextID, nil
}

func match(ruleID string, advertiserID int64, priority int) MatchedRule {
	return MatchedRule{
		Rule:       ports.ConditionRule{RuleID: ruleID, AdvertiserID: advertiserID, Priority: priority},
		Advertiser: ports.Advertiser{ID: advertiserID},
		Priority:   priority,
	}
}

func TestProcessSnapshotCreatesPendingRecordPerMatch(t *testing.T) {
	eval := &stubEvaluator{matches: []MatchedRule{
		match("rule-a", 1, 10),
		match("rule-b", 2, 5),
	}}
	ads := &stubAdsRepo{failFor: map[string]bool{}}

	m := NewMatcher(eval, ads)
	out, err := m.ProcessSnapshot(context.Background(), envdata.Snapshot{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 matches with records, got %d", len(out))
	}
	// insertion order follows evaluator priority order
	if ads.created[0] != "rule-a" || ads.created[1] != "rule-b" {
		t.Fatalf("records created out of order: %v", ads.created)
	}
	if out[0].RecordID == 0 || out[1].RecordID == 0 {
		t.Fatalf("expected record ids assigned: %+v", out)
	}
}

func TestProcessSnapshotSkipsFailedInsert(t *testing.T) {
	eval := &stubEvaluator{matches: []MatchedRule{
		match("rule-a", 1, 10),
		match("rule-broken", 2, 8),
		match("rule-c", 3, 5),
	}}
	ads := &stubAdsRepo{failFor: map[string]bool{"rule-broken": true}}

	m := NewMatcher(eval, ads)
	out, err := m.ProcessSnapshot(context.Background(), envdata.Snapshot{})
	if err != nil {
		t.Fatalf("one bad insert must not fail the batch: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 surviving matches, got %d", len(out))
	}
	if out[0].Rule.RuleID != "rule-a" || out[1].Rule.RuleID != "rule-c" {
		t.Fatalf("wrong survivors: %+v", out)
	}
}

func TestProcessSnapshotNoMatches(t *testing.T) {
	m := NewMatcher(&stubEvaluator{}, &stubAdsRepo{})
	out, err := m.ProcessSnapshot(context.Background(), envdata.Snapshot{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no matches, got %d", len(out))
	}
}

func TestProcessSnapshotEvaluatorError(t *testing.T) {
	m := NewMatcher(&stubEvaluator{err: fmt.Errorf("engine down")}, &stubAdsRepo{})
	if _, err := m.ProcessSnapshot(context.Background(), envdata.Snapshot{}); err == nil {
		t.Fatalf("expected evaluator error to propagate")
	}
}
