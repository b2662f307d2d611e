package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/mobac1989/buildots-seating/internal/domain"
)

// TelegramNotifier pushes seating events to the office admin chat.
// With no token or chat configured it degrades to a no-op.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram not configured, admin notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyRelocationRequested(ctx context.Context, req domain.RelocationRequest) {
	text := fmt.Sprintf(
		"*Relocation needed*\n\nSeat %s on %s: %s wants their seat back, %s has to move.\nPick a free seat in the admin dashboard.",
		req.SeatID, req.Date, req.OwnerName, req.DisplacedName,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyRelocationCompleted(ctx context.Context, req domain.RelocationRequest, destSeatID string) {
	text := fmt.Sprintf(
		"*Relocation done*\n\n%s moved from seat %s to seat %s for %s; %s is back on their own seat.",
		req.DisplacedName, req.SeatID, destSeatID, req.Date, req.OwnerName,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyCommitConflicts(ctx context.Context, actorName string, conflicts []domain.CommitConflict) {
	lines := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		lines = append(lines, fmt.Sprintf("%s (%s): seat %s", c.Weekday, c.Date, c.SeatLabel))
	}
	text := fmt.Sprintf(
		"*Booking conflicts*\n\n%s lost %d staged booking(s) at commit:\n%s",
		actorName, len(conflicts), strings.Join(lines, "\n"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
