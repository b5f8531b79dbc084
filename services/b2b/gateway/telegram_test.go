package gateway

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBot struct {
	sent []tgbotapi.Chattable
	err  error
}

func (b *recordingBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.sent = append(b.sent, c)
	return tgbotapi.Message{}, b.err
}

func TestTelegramGW_SendText(t *testing.T) {
	bot := &recordingBot{}
	gw := NewTelegramGW(bot, -100123)

	require.NoError(t, gw.SendText(context.Background(), "Driver assigned"))
	require.Len(t, bot.sent, 1)

	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(-100123), msg.ChatID)
	assert.Equal(t, "Driver assigned", msg.Text)
}

func TestTelegramGW_SendError(t *testing.T) {
	bot := &recordingBot{err: errors.New("chat not found")}
	err := NewTelegramGW(bot, 42).SendText(context.Background(), "hi")
	assert.ErrorContains(t, err, "chat not found")
}

func TestTelegramGW_CancelledContext(t *testing.T) {
	bot := &recordingBot{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, NewTelegramGW(bot, 42).SendText(ctx, "hi"), context.Canceled)
	assert.Empty(t, bot.sent)
}
