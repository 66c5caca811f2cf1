package notification

import (
	"context"
	"fmt"

	"github.com/akimovv/SessionBooker/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramSink mirrors CRM notifications to the participant's telegram chat
// when one is linked. Without a bot token the sink stays silent.
type TelegramSink struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramSink(token string, logger logger.Logger) (*TelegramSink, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, telegram notifications disabled")
		return &TelegramSink{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramSink{bot: bot, logger: logger}, nil
}

func (t *TelegramSink) Name() string { return "telegram" }

func (t *TelegramSink) Deliver(ctx context.Context, n *domain.BookingNotification) error {
	if t.bot == nil {
		t.logger.Debug("telegram notification skipped (bot disabled)",
			logger.Int64("booking_id", n.BookingID),
		)
		return nil
	}

	if n.UserChatID == nil {
		t.logger.Debug("telegram notification skipped (no chat_id)",
			logger.Int64("booking_id", n.BookingID),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var text string
	switch n.Action {
	case domain.BookingActionReactivated:
		text = fmt.Sprintf(
			"*Бронирование восстановлено!*\n\n"+"Мероприятие: %s\n"+"Начало (время указано в UTC): %s",
			n.Event.Title, n.Event.StartDate.Format("02.01.2006 15:04"),
		)
	default:
		text = fmt.Sprintf(
			"*Место забронировано!*\n\n"+"Мероприятие: %s\n"+"Начало (время указано в UTC): %s",
			n.Event.Title, n.Event.StartDate.Format("02.01.2006 15:04"),
		)
	}

	msg := tgbotapi.NewMessage(*n.UserChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	return nil
}
