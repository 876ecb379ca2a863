// Package notify sends one-way workflow notifications to a Telegram chat.
package notify

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier posts messages to a fixed chat, typically the facility
// managers' group. It never reads updates.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *TelegramNotifier) Send(text string) error {
	_, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text))
	return err
}
