package gateway

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/services/b2b"
)

// BotSender is the part of *tgbotapi.BotAPI the dispatch gateway uses
type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type telegramGW struct {
	bot    BotSender
	chatID int64
}

// NewTelegramGW creates a gateway posting to one dispatch chat
func NewTelegramGW(bot BotSender, chatID int64) b2b.DispatchGW {
	return &telegramGW{bot: bot, chatID: chatID}
}

// NewBot connects to the Telegram Bot API
func NewBot(token string) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	logger.Info("Telegram dispatch bot authorised", logger.String("bot", bot.Self.UserName))
	return bot, nil
}

// SendText posts a plain text message
func (g *telegramGW) SendText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(g.chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := g.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
