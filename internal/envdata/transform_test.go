package envdata

import (
	"testing"
	"time"
)

func TestBuildRuleContextVerbatim(t *testing.T) {
	h := 55.0
	snap := Snapshot{
		Temperature:      36,
		WeatherCondition: "Sunny",
		UVIndex:          9.5,
		Humidity:         &h,
		CongestionLevel:  "heavy",
		FloodAlerts:      []string{"district-3"},
		Timestamp:        time.Date(2025, 6, 1, 13, 30, 0, 0, time.Local),
		HourOfDay:        13,
		DayOfWeek:        "Sunday",
		IsWeekend:        true,
		TimeCategory:     "afternoon",
	}

	rc := BuildRuleContext(snap)

	if rc.Weather.Temperature != 36 || rc.Weather.WeatherCondition != "Sunny" || rc.Weather.UVIndex != 9.5 {
		t.Fatalf("weather context not carried verbatim: %+v", rc.Weather)
	}
	if rc.Weather.Humidity != 55 {
		t.Fatalf("expected reported humidity 55, got %v", rc.Weather.Humidity)
	}
	if rc.Traffic.CongestionLevel != "heavy" {
		t.Fatalf("traffic context not carried: %+v", rc.Traffic)
	}
	if rc.TimeBased.HourOfDay != 13 || !rc.TimeBased.IsWeekend || rc.TimeBased.TimeCategory != "afternoon" {
		t.Fatalf("time context not carried: %+v", rc.TimeBased)
	}
	if rc.TimeBased.CurrentTime != "01.06.2025 13:30" {
		t.Fatalf("unexpected localized time: %q", rc.TimeBased.CurrentTime)
	}
}

func TestBuildRuleContextHumidityDefault(t *testing.T) {
	rc := BuildRuleContext(Snapshot{Temperature: 20})
	if rc.Weather.Humidity != defaultHumidity {
		t.Fatalf("expected humidity default %v, got %v", defaultHumidity, rc.Weather.Humidity)
	}
}

func TestNormalizeDerivesTimeFields(t *testing.T) {
	// Wednesday 07:30
	snap := Snapshot{Timestamp: time.Date(2025, 6, 4, 7, 30, 0, 0, time.Local)}
	snap.Normalize()

	if snap.HourOfDay != 7 || snap.DayOfWeek != "Wednesday" {
		t.Fatalf("derived hour/day wrong: %+v", snap)
	}
	if snap.IsWeekend || snap.IsBusinessHours {
		t.Fatalf("07:30 Wednesday is neither weekend nor business hours: %+v", snap)
	}
	if !snap.IsPeakHours {
		t.Fatalf("07:30 should be peak hours")
	}
	if snap.TimeCategory != "morning" {
		t.Fatalf("expected morning, got %q", snap.TimeCategory)
	}
}

func TestNormalizeKeepsProvidedFields(t *testing.T) {
	snap := Snapshot{
		Timestamp:    time.Date(2025, 6, 4, 7, 30, 0, 0, time.Local),
		HourOfDay:    22,
		TimeCategory: "night",
	}
	snap.Normalize()

	if snap.HourOfDay != 22 || snap.TimeCategory != "night" {
		t.Fatalf("collector-provided fields were overwritten: %+v", snap)
	}
}

func TestTimeCategoryForHour(t *testing.T) {
	cases := map[int]string{
		6: "morning", 11: "morning",
		12: "afternoon", 17: "afternoon",
		18: "evening", 21: "evening",
		22: "night", 3: "night",
	}
	for hour, want := range cases {
		if got := TimeCategoryForHour(hour); got != want {
			t.Fatalf("hour %d: expected %s, got %s", hour, want, got)
		}
	}
}
