package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Alerter forwards operator alerts to a Telegram chat. It is fire and
// forget: a failed delivery is logged, never propagated.
type Alerter struct {
	api    *tgbotapi.BotAPI
	chatID int64
	log    *zap.Logger
}

func NewAlerter(token string, chatID int64, log *zap.Logger) (*Alerter, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("telegram alert token is empty")
	}
	if chatID == 0 {
		return nil, fmt.Errorf("telegram alert chat id is required")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot api: %w", err)
	}

	return &Alerter{api: api, chatID: chatID, log: log}, nil
}

func (a *Alerter) Alert(_ context.Context, message string) {
	msg := tgbotapi.NewMessage(a.chatID, message)
	if _, err := a.api.Send(msg); err != nil && a.log != nil {
		a.log.Warn("operator alert delivery failed", zap.Error(err))
	}
}
