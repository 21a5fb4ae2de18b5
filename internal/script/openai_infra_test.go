package script

import "testing"

func TestParseResultPlainJSON(t *testing.T) {
	res, err := parseResult(`{"script": "Come in for iced coffee!", "voice_style": "male"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Script != "Come in for iced coffee!" || res.VoiceStyle != "male" {
		t.Fatalf("wrong result: %+v", res)
	}
}

func TestParseResultCodeFence(t *testing.T) {
	raw := "```json\n{\"script\": \"Hello\", \"voice_style\": \"female\"}\n```"
	res, err := parseResult(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Script != "Hello" || res.VoiceStyle != "female" {
		t.Fatalf("wrong result: %+v", res)
	}
}

func TestParseResultInvalidVoiceStyleFallsBack(t *testing.T) {
	res, err := parseResult(`{"script": "Hi", "voice_style": "robotic"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.VoiceStyle != "female" {
		t.Fatalf("expected fallback to female, got %q", res.VoiceStyle)
	}
}

func TestParseResultRejectsGarbage(t *testing.T) {
	if _, err := parseResult("sorry, I can't do that"); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := parseResult(`{"script": "", "voice_style": "male"}`); err == nil {
		t.Fatalf("empty script must be rejected")
	}
}
