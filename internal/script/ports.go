package script

import "context"

type Request struct {
	AdvertiserName string // display name, goes into the copy
	BusinessType   string
	RuleID         string
	CurrentTime    string // localized, e.g. "02.01.2006 15:04"
}

type Result struct {
	Script     string `json:"script"`
	VoiceStyle string `json:"voice_style"` // "male" | "female"
}

type Writer interface {
	GenerateScript(ctx context.Context, req Request) (*Result, error)
}
