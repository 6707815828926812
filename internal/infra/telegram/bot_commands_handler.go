// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"context"
	"time"

	"customer_notification_planner/internal/app"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const (
	helpText = "I send the list of customers to notify every morning.\n\n" +
		"/today - customers due today\n" +
		"/tomorrow - customers due tomorrow\n" +
		"/help - show this message"
	notAllowedText = "This bot only answers its configured manager chat."
	failureText    = "Could not load the customer list. Please try again later."
)

// CommandHandler answers bot commands for the manager chat.
type CommandHandler struct {
	digest        app.DigestService
	managerChatID int64
	now           func() time.Time
	logger        *logrus.Entry
}

func NewCommandHandler(digest app.DigestService, managerChatID int64, logger *logrus.Entry) *CommandHandler {
	return &CommandHandler{
		digest:        digest,
		managerChatID: managerChatID,
		now:           time.Now,
		logger:        logger,
	}
}

// Reply builds the answer to command sent from chatID.
func (h *CommandHandler) Reply(ctx context.Context, chatID int64, command string) string {
	logCtx := h.logger.WithField("command", command).WithField("chat_id", chatID)
	logCtx.Info("Processing bot command")

	if chatID != h.managerChatID {
		logCtx.Warn("Command from unknown chat rejected")
		return notAllowedText
	}

	var day time.Time
	switch command {
	case "/today":
		day = h.now()
	case "/tomorrow":
		day = h.now().AddDate(0, 0, 1)
	default:
		return helpText
	}

	msg, err := h.digest.Preview(ctx, day)
	if err != nil {
		logCtx.WithError(err).Error("Failed to build digest preview")
		return failureText
	}
	return msg
}

// RegisterBotCommands wires the command handler into the bot.
func RegisterBotCommands(ctx context.Context, b *telebot.Bot, h *CommandHandler) {
	for _, command := range []string{"/start", "/help", "/today", "/tomorrow"} {
		command := command // per-iteration copy (go.mod targets 1.21)
		b.Handle(command, func(c telebot.Context) error {
			if c.Chat() == nil {
				return nil
			}
			return c.Send(h.Reply(ctx, c.Chat().ID, command))
		})
	}
}
