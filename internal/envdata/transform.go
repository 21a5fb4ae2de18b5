package envdata

// Nested context shape expected by the condition engine. Values are carried
// over from the flat snapshot verbatim.

type WeatherContext struct {
	Temperature      float64  `json:"temperature"`
	WeatherCondition string   `json:"weather_condition"`
	UVIndex          float64  `json:"uv_index"`
	Humidity         float64  `json:"humidity"`
	FloodAlerts      []string `json:"flood_alerts"`
}

type TimeContext struct {
	HourOfDay       int    `json:"hour_of_day"`
	DayOfWeek       string `json:"day_of_week"`
	IsWeekend       bool   `json:"is_weekend"`
	IsBusinessHours bool   `json:"is_business_hours"`
	IsPeakHours     bool   `json:"is_peak_hours"`
	TimeCategory    string `json:"time_category"`
	CurrentTime     string `json:"current_time"`
}

type TrafficContext struct {
	CongestionLevel string `json:"congestion_level"`
}

type RuleContext struct {
	Weather   WeatherContext `json:"weather"`
	TimeBased TimeContext    `json:"time_based"`
	Traffic   TrafficContext `json:"traffic"`
}

// TimeLayout is the localized timestamp format handed to the condition
// engine and the script writer.
const TimeLayout = "02.01.2006 15:04"

// BuildRuleContext maps a flat snapshot into the three sub-contexts the
// condition engine evaluates against. Humidity is not always reported by the
// upstream feed, so it falls back to a fixed default.
func BuildRuleContext(s Snapshot) RuleContext {
	humidity := defaultHumidity
	if s.Humidity != nil {
		humidity = *s.Humidity
	}

	return RuleContext{
		Weather: WeatherContext{
			Temperature:      s.Temperature,
			WeatherCondition: s.WeatherCondition,
			UVIndex:          s.UVIndex,
			Humidity:         humidity,
			FloodAlerts:      s.FloodAlerts,
		},
		TimeBased: TimeContext{
			HourOfDay:       s.HourOfDay,
			DayOfWeek:       s.DayOfWeek,
			IsWeekend:       s.IsWeekend,
			IsBusinessHours: s.IsBusinessHours,
			IsPeakHours:     s.IsPeakHours,
			TimeCategory:    s.TimeCategory,
			CurrentTime:     s.Timestamp.Local().Format(TimeLayout),
		},
		Traffic: TrafficContext{
			CongestionLevel: s.CongestionLevel,
		},
	}
}
