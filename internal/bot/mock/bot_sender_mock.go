package mock_bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type MockBot struct {
	mu           sync.Mutex
	SentMessages []tgbotapi.Chattable
	Err          error
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return tgbotapi.Message{}, m.Err
	}

	m.SentMessages = append(m.SentMessages, c)

	chatID := int64(123)
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		chatID = msg.ChatID
	}
	return tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}}, nil
}

// Texts returns the text of every sent plain message.
func (m *MockBot) Texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	texts := make([]string, 0, len(m.SentMessages))
	for _, c := range m.SentMessages {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			texts = append(texts, msg.Text)
		}
	}
	return texts
}

func ClearSentMessages(bot *MockBot) {
	bot.mu.Lock()
	defer bot.mu.Unlock()

	bot.SentMessages = nil
}
