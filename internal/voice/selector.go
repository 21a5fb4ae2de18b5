package voice

import (
	"strings"
	"time"
)

// SelectSettings picks a synthesis profile for a matched rule.
// Resolution order: exact type match, partial type match, condition
// heuristics, default. Settings is a value type, so every return is a copy —
// callers can't corrupt the catalog.
//
// now is only consulted for the time_range heuristic; pass time.Now()
// outside tests.
func SelectSettings(ruleType string, conditions map[string]any, now time.Time) Settings {
	key := strings.ToLower(strings.TrimSpace(ruleType))

	// 1) exact
	if s, ok := catalog[key]; ok {
		return s
	}

	// 2) partial: first dash segment against catalog keys, in catalog order
	if seg, _, _ := strings.Cut(key, "-"); seg != "" {
		for _, k := range catalogOrder {
			catSeg, _, _ := strings.Cut(k, "-")
			if strings.HasPrefix(catSeg, seg) {
				return catalog[k]
			}
		}
	}

	// 3) condition heuristics
	if s, ok := fromConditions(conditions, now); ok {
		return s
	}

	return defaultSettings
}

func fromConditions(conditions map[string]any, now time.Time) (Settings, bool) {
	if conditions == nil {
		return Settings{}, false
	}

	if wc, ok := conditions["weather_condition"].(string); ok {
		lc := strings.ToLower(wc)
		switch {
		case strings.Contains(lc, "rain"), strings.Contains(lc, "storm"):
			return catalog["weather-rainy"], true
		case strings.Contains(lc, "sun"), strings.Contains(lc, "clear"):
			return catalog["weather-sunny"], true
		}
	}

	if tc, ok := conditions["time_category"].(string); ok {
		if s, ok := catalog["time-"+strings.ToLower(tc)]; ok {
			return s, true
		}
	}

	if _, ok := conditions["time_range"]; ok {
		hour := now.Hour()
		switch {
		case hour >= 6 && hour < 12:
			return catalog["time-morning"], true
		case hour >= 18 && hour < 22:
			return catalog["time-evening"], true
		case hour >= 22 || hour < 6:
			return catalog["time-night"], true
		}
	}

	return Settings{}, false
}
