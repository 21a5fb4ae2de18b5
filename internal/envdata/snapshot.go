package envdata

import "time"

// Snapshot is one point-in-time reading of environmental/government data.
// It arrives flat from the collector; derived time fields may be absent
// and get filled from Timestamp.
type Snapshot struct {
	Temperature      float64  `json:"temperature"`
	WeatherCondition string   `json:"weather_condition"`
	UVIndex          float64  `json:"uv_index"`
	Humidity         *float64 `json:"humidity,omitempty"`
	CongestionLevel  string   `json:"congestion_level"`
	FloodAlerts      []string `json:"flood_alerts"`

	Timestamp time.Time `json:"timestamp"`

	HourOfDay       int    `json:"hour_of_day"`
	DayOfWeek       string `json:"day_of_week"`
	IsWeekend       bool   `json:"is_weekend"`
	IsBusinessHours bool   `json:"is_business_hours"`
	IsPeakHours     bool   `json:"is_peak_hours"`
	TimeCategory    string `json:"time_category"`
}

const defaultHumidity = 70.0

// Normalize fills derived time attributes when the collector sent only the
// raw timestamp. Present values are kept as-is.
func (s *Snapshot) Normalize() {
	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now()
	}
	if s.TimeCategory != "" {
		return
	}

	t := s.Timestamp
	s.HourOfDay = t.Hour()
	s.DayOfWeek = t.Weekday().String()
	s.IsWeekend = t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
	s.IsBusinessHours = !s.IsWeekend && s.HourOfDay >= 9 && s.HourOfDay < 18
	s.IsPeakHours = (s.HourOfDay >= 7 && s.HourOfDay < 9) || (s.HourOfDay >= 17 && s.HourOfDay < 19)
	s.TimeCategory = TimeCategoryForHour(s.HourOfDay)
}

func TimeCategoryForHour(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 18:
		return "afternoon"
	case hour >= 18 && hour < 22:
		return "evening"
	default:
		return "night"
	}
}
