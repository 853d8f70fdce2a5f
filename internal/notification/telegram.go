package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"expertcall/internal/domain"
)

// TelegramNotifier шлёт эксперту события по его броням.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, expert *domain.Expert, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Новая бронь!*\n\n"+"Клиент: %s\n"+"Тема: %s\n"+"Когда (UTC): %s %s–%s\n"+"Бронь отменится автоматически, если оплата не пройдёт.",
		booking.ClientName, booking.Topic,
		booking.Date, booking.StartTime, booking.EndTime,
	)
	n.send(ctx, expert.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, expert *domain.Expert, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронь оплачена!*\n\n"+"Клиент: %s\n"+"Когда (UTC): %s %s–%s",
		booking.ClientName,
		booking.Date, booking.StartTime, booking.EndTime,
	)
	n.send(ctx, expert.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, expert *domain.Expert, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронь отменена (истекло время оплаты)*\n\n"+"Клиент: %s\n"+"Слот снова свободен: %s %s–%s",
		booking.ClientName,
		booking.Date, booking.StartTime, booking.EndTime,
	)
	n.send(ctx, expert.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
