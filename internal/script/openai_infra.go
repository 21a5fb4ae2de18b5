package script

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIWriter struct {
	client *openai.Client
}

func NewOpenAIWriter() *OpenAIWriter {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not set")
	}
	return &OpenAIWriter{
		client: openai.NewClient(apiKey),
	}
}

const systemPrompt = `You write short promotional voiceover scripts for ambient in-store radio.
Reply with JSON only: {"script": "...", "voice_style": "male"|"female"}.
The script is 2-3 sentences, spoken language, no emoji, no markdown.`

func (w *OpenAIWriter) GenerateScript(ctx context.Context, req Request) (*Result, error) {
	userPrompt := fmt.Sprintf(
		"Advertiser: %s\nBusiness type: %s\nTriggered rule: %s\nCurrent time: %s\nWrite a fitting promo script and pick the voice style.",
		req.AdvertiserName, req.BusinessType, req.RuleID, req.CurrentTime,
	)

	resp, err := w.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("script completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("script completion: empty response")
	}

	return parseResult(resp.Choices[0].Message.Content)
}

func parseResult(raw string) (*Result, error) {
	// the model sometimes wraps JSON in a code fence
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, fmt.Errorf("parse script response: %w", err)
	}
	if strings.TrimSpace(res.Script) == "" {
		return nil, fmt.Errorf("parse script response: empty script")
	}

	res.VoiceStyle = strings.ToLower(res.VoiceStyle)
	if res.VoiceStyle != "male" && res.VoiceStyle != "female" {
		res.VoiceStyle = "female"
	}
	return &res, nil
}
