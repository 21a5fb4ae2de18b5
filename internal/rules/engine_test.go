package rules

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/adpulse/backend/internal/envdata"
	"github.com/adpulse/backend/internal/ports"
)

type stubRuleRepo struct {
	ports.RuleRepo
	active []*ports.ConditionRule
}

func (s *stubRuleRepo) ListActive(ctx context.Context) ([]*ports.ConditionRule, error) {
	return s.active, nil
}

type stubAdvertiserRepo struct {
	ports.AdvertiserRepo
	byID map[int64]*ports.Advertiser
}

func (s *stubAdvertiserRepo) GetByID(ctx context.Context, id int64) (*ports.Advertiser, error) {
	return s.byID[id], nil
}

func activeRule(ruleID string, advertiserID int64, priority int, conds string) *ports.ConditionRule {
	return &ports.ConditionRule{
		RuleID:       ruleID,
		AdvertiserID: advertiserID,
		Priority:     priority,
		Conditions:   json.RawMessage(conds),
		Active:       true,
	}
}

func TestEngineMatchesAndSortsByPriority(t *testing.T) {
	rulesRepo := &stubRuleRepo{active: []*ports.ConditionRule{
		activeRule("hot-low", 1, 1, `{"temperature_min": 30}`),
		activeRule("hot-high", 1, 9, `{"temperature_min": 30, "weather_condition": "sun"}`),
		activeRule("cold", 1, 5, `{"temperature_max": 5}`),
	}}
	advRepo := &stubAdvertiserRepo{byID: map[int64]*ports.Advertiser{
		1: {ID: 1, Name: "joes_coffee", Active: true},
	}}

	e := NewEngine(rulesRepo, advRepo)
	rc := envdata.BuildRuleContext(envdata.Snapshot{Temperature: 36, WeatherCondition: "Sunny"})

	got, err := e.EvaluateConditions(context.Background(), rc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Rule.RuleID != "hot-high" || got[1].Rule.RuleID != "hot-low" {
		t.Fatalf("matches not sorted by priority desc: %v, %v", got[0].Rule.RuleID, got[1].Rule.RuleID)
	}
}

func TestEngineSkipsInactiveAdvertiser(t *testing.T) {
	rulesRepo := &stubRuleRepo{active: []*ports.ConditionRule{
		activeRule("any", 7, 1, `{}`),
	}}
	advRepo := &stubAdvertiserRepo{byID: map[int64]*ports.Advertiser{
		7: {ID: 7, Active: false},
	}}

	e := NewEngine(rulesRepo, advRepo)
	got, err := e.EvaluateConditions(context.Background(), envdata.BuildRuleContext(envdata.Snapshot{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("inactive advertiser must not match, got %d", len(got))
	}
}

func TestEngineTimeRangeWrapsMidnight(t *testing.T) {
	rulesRepo := &stubRuleRepo{active: []*ports.ConditionRule{
		activeRule("late", 1, 1, `{"time_range": {"from": 22, "to": 6}}`),
	}}
	advRepo := &stubAdvertiserRepo{byID: map[int64]*ports.Advertiser{
		1: {ID: 1, Active: true},
	}}
	e := NewEngine(rulesRepo, advRepo)

	in := envdata.BuildRuleContext(envdata.Snapshot{HourOfDay: 23, TimeCategory: "night"})
	got, _ := e.EvaluateConditions(context.Background(), in)
	if len(got) != 1 {
		t.Fatalf("23:00 should match a 22-6 range")
	}

	out := envdata.BuildRuleContext(envdata.Snapshot{HourOfDay: 12, TimeCategory: "afternoon"})
	got, _ = e.EvaluateConditions(context.Background(), out)
	if len(got) != 0 {
		t.Fatalf("12:00 should not match a 22-6 range")
	}
}

func TestEngineFloodAlertCondition(t *testing.T) {
	rulesRepo := &stubRuleRepo{active: []*ports.ConditionRule{
		activeRule("flood", 1, 1, `{"flood_alert": true}`),
	}}
	advRepo := &stubAdvertiserRepo{byID: map[int64]*ports.Advertiser{
		1: {ID: 1, Active: true},
	}}
	e := NewEngine(rulesRepo, advRepo)

	dry := envdata.BuildRuleContext(envdata.Snapshot{})
	if got, _ := e.EvaluateConditions(context.Background(), dry); len(got) != 0 {
		t.Fatalf("no alerts should not match")
	}

	wet := envdata.BuildRuleContext(envdata.Snapshot{FloodAlerts: []string{"zone-1"}})
	if got, _ := e.EvaluateConditions(context.Background(), wet); len(got) != 1 {
		t.Fatalf("active alert should match")
	}
}
