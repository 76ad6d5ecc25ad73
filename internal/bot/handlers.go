package bot

import (
	"github.com/DanRulev/vocabdrill/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	textChooseAction = "Выберите действие:"
	textUseButtons   = "Используйте кнопки для навигации."
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	default:
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "Неизвестная команда. Используйте /start"))
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "Привет 👋 Давай попрактикуемся в английском языке.\n" +
		"Тренировки можешь проходить в удобном для себя темпе.\n" +
		"У тебя есть возможность использовать тренажёр, как конструктор, " +
		"и собирать свою собственную базу для обучения.\n" +
		"Для этого воспользуйся инструментами:\n\n" +
		"добавить слово ➕,\n" +
		"удалить слово 🔙.\n\n" +
		"Ну что, начнём ⬇️"

	if message.From != nil {
		t.cache.SetPending(message.From.ID, cache.ActionNone)
		t.log.Info("user started the bot", zap.Int64("user_id", message.From.ID))
	}

	sendMessage(t.bot, menuMessage(message.Chat.ID, welcomeText, mainKeyboard()))
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := "📚 Доступные команды:\n" +
		"/start — запустить бота\n" +
		"/help — это сообщение\n\n" +
		"🎯 Используйте кнопки:\n" +
		"• «" + ButtonStart + "» — угадать перевод слова\n" +
		"• «" + ButtonAddWord + "» — пополнить свой словарь\n" +
		"• «" + ButtonStats + "» — серия и точность ответов"

	sendMessage(t.bot, menuMessage(message.Chat.ID, helpText, mainKeyboard()))
}

func (t *TelegramAPI) showMainMenu(chatID int64) {
	sendMessage(t.bot, menuMessage(chatID, "Главное меню:", mainKeyboard()))
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	userID := message.From.ID
	text := message.Text

	if text == "" {
		sendMessage(t.bot, menuMessage(message.Chat.ID, textUseButtons, mainKeyboard()))
		return
	}

	switch t.cache.TakePending(userID) {
	case cache.ActionAddWord:
		t.word.processAddWord(message, userID)
		return
	case cache.ActionDeleteWord:
		t.word.processDeleteWord(message, userID)
		return
	}

	switch text {
	case ButtonStart, ButtonNextWord:
		t.quiz.askQuestion(message.Chat.ID, userID)
	case ButtonAddWord:
		t.word.promptAddWord(message.Chat.ID, userID)
	case ButtonDeleteWord:
		t.word.promptDeleteWord(message.Chat.ID, userID)
	case ButtonMyWords:
		t.word.showMyWords(message.Chat.ID, userID)
	case ButtonStats:
		t.stats.showStatsMenu(message.Chat.ID)
	case ButtonGeneralStats:
		t.stats.sendGeneralStats(message.Chat.ID, userID)
	case ButtonTodayStats:
		t.stats.sendTodayStats(message.Chat.ID, userID)
	case ButtonWeeklyStats:
		t.stats.sendWeeklyStats(message.Chat.ID, userID)
	case ButtonMainMenu:
		t.showMainMenu(message.Chat.ID)
	default:
		t.quiz.checkAnswer(message.Chat.ID, userID, text)
	}
}
