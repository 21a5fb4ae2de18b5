package rules

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/adpulse/backend/internal/envdata"
	"github.com/adpulse/backend/internal/ports"
)

// Engine is the built-in condition evaluator: it loads active rules with
// their owners and checks each condition block against the context.
// Matches come back sorted by priority, highest first.
type Engine struct {
	rules       ports.RuleRepo
	advertisers ports.AdvertiserRepo
}

func NewEngine(rules ports.RuleRepo, advertisers ports.AdvertiserRepo) *Engine {
	return &Engine{rules: rules, advertisers: advertisers}
}

// ruleConditions is the supported condition vocabulary. Unknown JSON keys
// are ignored, so rules written for a richer engine still load.
type ruleConditions struct {
	TemperatureMin   *float64 `json:"temperature_min"`
	TemperatureMax   *float64 `json:"temperature_max"`
	WeatherCondition string   `json:"weather_condition"`
	UVIndexMin       *float64 `json:"uv_index_min"`
	HumidityMin      *float64 `json:"humidity_min"`
	FloodAlert       bool     `json:"flood_alert"`
	CongestionLevel  string   `json:"congestion_level"`
	TimeCategory     string   `json:"time_category"`
	IsWeekend        *bool    `json:"is_weekend"`
	IsBusinessHours  *bool    `json:"is_business_hours"`
	IsPeakHours      *bool    `json:"is_peak_hours"`
	TimeRange        *struct {
		From int `json:"from"`
		To   int `json:"to"`
	} `json:"time_range"`
}

func (e *Engine) EvaluateConditions(ctx context.Context, rc envdata.RuleContext) ([]MatchedRule, error) {
	active, err := e.rules.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active rules: %w", err)
	}

	advCache := map[int64]*ports.Advertiser{}

	var out []MatchedRule
	for _, rule := range active {
		var rcnd ruleConditions
		if err := json.Unmarshal(rule.Conditions, &rcnd); err != nil {
			continue
		}
		if !rcnd.matches(rc) {
			continue
		}

		adv, ok := advCache[rule.AdvertiserID]
		if !ok {
			adv, err = e.advertisers.GetByID(ctx, rule.AdvertiserID)
			if err != nil || adv == nil {
				continue
			}
			advCache[rule.AdvertiserID] = adv
		}
		if !adv.Active {
			continue
		}

		out = append(out, MatchedRule{
			Rule:       *rule,
			Advertiser: *adv,
			Priority:   rule.Priority,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out, nil
}

func (c ruleConditions) matches(rc envdata.RuleContext) bool {
	w, t, tr := rc.Weather, rc.TimeBased, rc.Traffic

	if c.TemperatureMin != nil && w.Temperature < *c.TemperatureMin {
		return false
	}
	if c.TemperatureMax != nil && w.Temperature > *c.TemperatureMax {
		return false
	}
	if c.WeatherCondition != "" &&
		!strings.Contains(strings.ToLower(w.WeatherCondition), strings.ToLower(c.WeatherCondition)) {
		return false
	}
	if c.UVIndexMin != nil && w.UVIndex < *c.UVIndexMin {
		return false
	}
	if c.HumidityMin != nil && w.Humidity < *c.HumidityMin {
		return false
	}
	if c.FloodAlert && len(w.FloodAlerts) == 0 {
		return false
	}
	if c.CongestionLevel != "" && !strings.EqualFold(tr.CongestionLevel, c.CongestionLevel) {
		return false
	}
	if c.TimeCategory != "" && !strings.EqualFold(t.TimeCategory, c.TimeCategory) {
		return false
	}
	if c.IsWeekend != nil && t.IsWeekend != *c.IsWeekend {
		return false
	}
	if c.IsBusinessHours != nil && t.IsBusinessHours != *c.IsBusinessHours {
		return false
	}
	if c.IsPeakHours != nil && t.IsPeakHours != *c.IsPeakHours {
		return false
	}
	if c.TimeRange != nil {
		h := t.HourOfDay
		from, to := c.TimeRange.From, c.TimeRange.To
		if from <= to {
			if h < from || h >= to {
				return false
			}
		} else { // wraps midnight, e.g. 22-6
			if h < from && h >= to {
				return false
			}
		}
	}
	return true
}
