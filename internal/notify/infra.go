package notify

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Infra struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewInfra builds a Telegram notifier from ADMIN_TG_TOKEN / ADMIN_TG_CHAT_ID.
// Without a token it degrades to log-only.
func NewInfra() *Infra {
	token := os.Getenv("ADMIN_TG_TOKEN")
	if token == "" {
		return &Infra{}
	}

	chatID, err := strconv.ParseInt(os.Getenv("ADMIN_TG_CHAT_ID"), 10, 64)
	if err != nil {
		log.Printf("[notify] bad ADMIN_TG_CHAT_ID, falling back to log-only")
		return &Infra{}
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("[notify] telegram init failed: %v", err)
		return &Infra{}
	}

	return &Infra{bot: bot, chatID: chatID}
}

func (i *Infra) Notify(ctx context.Context, err error, details string) error {
	text := fmt.Sprintf("❗ Pipeline error\n\nError: %v\n\nDetails: %s", err, details)

	if i.bot == nil {
		log.Printf("[notify] %s", text)
		return nil
	}

	msg := tgbotapi.NewMessage(i.chatID, text)
	if _, sendErr := i.bot.Send(msg); sendErr != nil {
		log.Printf("[notify] send fail: %v", sendErr)
		return sendErr
	}
	return nil
}
