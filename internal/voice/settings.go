package voice

// Settings are the synthesis parameters sent to the TTS provider.
// All fields are in [0,1] except Speed, a multiplier around 1.0.
type Settings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
	Speed           float64 `json:"speed"`
}

// Catalog of tuned profiles per rule category. Keys are lowercase rule types.
var catalog = map[string]Settings{
	"weather-alert":     {Stability: 0.8, SimilarityBoost: 0.9, Style: 0.2, UseSpeakerBoost: true, Speed: 1.05},
	"weather-sunny":     {Stability: 0.5, SimilarityBoost: 0.75, Style: 0.6, UseSpeakerBoost: true, Speed: 0.9},
	"weather-rainy":     {Stability: 0.7, SimilarityBoost: 0.8, Style: 0.35, UseSpeakerBoost: true, Speed: 0.95},
	"weather-cold":      {Stability: 0.65, SimilarityBoost: 0.8, Style: 0.4, UseSpeakerBoost: true, Speed: 0.95},
	"weather-hot":       {Stability: 0.5, SimilarityBoost: 0.75, Style: 0.55, UseSpeakerBoost: true, Speed: 0.92},
	"traffic-jam":       {Stability: 0.6, SimilarityBoost: 0.8, Style: 0.45, UseSpeakerBoost: true, Speed: 1.0},
	"traffic-heavy":     {Stability: 0.6, SimilarityBoost: 0.8, Style: 0.45, UseSpeakerBoost: true, Speed: 1.0},
	"air-quality":       {Stability: 0.75, SimilarityBoost: 0.85, Style: 0.25, UseSpeakerBoost: true, Speed: 0.98},
	"promotional-sale":  {Stability: 0.4, SimilarityBoost: 0.7, Style: 0.7, UseSpeakerBoost: true, Speed: 1.05},
	"promotional-event": {Stability: 0.45, SimilarityBoost: 0.7, Style: 0.65, UseSpeakerBoost: true, Speed: 1.0},
	"time-morning":      {Stability: 0.55, SimilarityBoost: 0.75, Style: 0.5, UseSpeakerBoost: true, Speed: 1.0},
	"time-evening":      {Stability: 0.6, SimilarityBoost: 0.8, Style: 0.45, UseSpeakerBoost: true, Speed: 0.95},
	"time-night":        {Stability: 0.7, SimilarityBoost: 0.85, Style: 0.3, UseSpeakerBoost: false, Speed: 0.9},
	"emergency":         {Stability: 0.9, SimilarityBoost: 0.95, Style: 0.1, UseSpeakerBoost: true, Speed: 1.1},
	"flood-alert":       {Stability: 0.85, SimilarityBoost: 0.9, Style: 0.15, UseSpeakerBoost: true, Speed: 1.05},
}

// catalogOrder keeps partial-match resolution deterministic.
var catalogOrder = []string{
	"weather-alert",
	"weather-sunny",
	"weather-rainy",
	"weather-cold",
	"weather-hot",
	"traffic-jam",
	"traffic-heavy",
	"air-quality",
	"promotional-sale",
	"promotional-event",
	"time-morning",
	"time-evening",
	"time-night",
	"emergency",
	"flood-alert",
}

var defaultSettings = Settings{
	Stability:       0.5,
	SimilarityBoost: 0.75,
	Style:           0.3,
	UseSpeakerBoost: true,
	Speed:           1.0,
}

// Default returns the fallback profile.
func Default() Settings {
	return defaultSettings
}
