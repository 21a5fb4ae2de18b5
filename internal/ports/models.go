package ports

import (
	"encoding/json"
	"time"
)

type Advertiser struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"` // internal slug, goes into audio filenames
	DisplayName  string    `json:"display_name"`
	BusinessType string    `json:"business_type"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

type ConditionRule struct {
	ID           int64           `json:"id"`
	RuleID       string          `json:"rule_id"`
	RuleType     string          `json:"rule_type"` // category label, e.g. "weather-sunny"
	AdvertiserID int64           `json:"advertiser_id"`
	Priority     int             `json:"priority"`
	Conditions   json.RawMessage `json:"conditions"` // shape owned by the condition engine
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
}

type AdStatus string

const (
	AdStatusPending AdStatus = "pending"
	AdStatusDone    AdStatus = "done"
	AdStatusFailed  AdStatus = "failed"
)

func (s AdStatus) Valid() bool {
	switch s {
	case AdStatusPending, AdStatusDone, AdStatusFailed:
		return true
	}
	return false
}

type AdvertisingRecord struct {
	ID           int64     `json:"id"`
	RuleID       string    `json:"rule_id"`
	AdvertiserID int64     `json:"advertiser_id"`
	AudioFile    *string   `json:"audio_file"`
	Status       AdStatus  `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type AudioStatus string

const (
	AudioStatusPending   AudioStatus = "pending"
	AudioStatusCompleted AudioStatus = "completed"
	AudioStatusFailed    AudioStatus = "failed"
)

type Audio struct {
	ID            int64          `json:"id"`
	Text          string         `json:"text"`
	Variables     map[string]any `json:"variables"` // rule id, advertiser id, business type, timestamp
	AudioURL      *string        `json:"audio_url"`
	VoiceType     string         `json:"voice_type"`
	Duration      *float64       `json:"duration"`
	Status        AudioStatus    `json:"status"`
	GeneratedAt   time.Time      `json:"generated_at"`
	SynthesizedAt *time.Time     `json:"synthesized_at"`
}
