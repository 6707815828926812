package telegram

// Client sends plain-text messages to a Telegram chat.
// Keeps the application layer independent from the bot library.
type Client interface {
	SendMessage(chatID int64, text string) error
}
