package bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

const (
	ButtonStart        = "Начать тренировку 🚀"
	ButtonMyWords      = "Мои слова 📝"
	ButtonStats        = "Статистика 📊"
	ButtonAddWord      = "Добавить слово ➕"
	ButtonDeleteWord   = "Удалить слово 🔙"
	ButtonMainMenu     = "В главное меню 🏠"
	ButtonNextWord     = "Следующее слово ➡️"
	ButtonGeneralStats = "Общая статистика 📈"
	ButtonTodayStats   = "Сегодняшняя статистика 📅"
	ButtonWeeklyStats  = "Недельная статистика 📆"
)

func replyKeyboard(rows ...[]tgbotapi.KeyboardButton) tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func wordToolsRow() []tgbotapi.KeyboardButton {
	return tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(ButtonAddWord),
		tgbotapi.NewKeyboardButton(ButtonDeleteWord),
	)
}

func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return replyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonStart),
			tgbotapi.NewKeyboardButton(ButtonMyWords),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonStats),
			tgbotapi.NewKeyboardButton(ButtonAddWord),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonDeleteWord),
		),
	)
}

// optionsKeyboard lays the answers out two per row.
func optionsKeyboard(options []string) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(options)/2+3)

	for i := 0; i < len(options); i += 2 {
		row := tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(options[i]))
		if i+1 < len(options) {
			row = append(row, tgbotapi.NewKeyboardButton(options[i+1]))
		}
		rows = append(rows, row)
	}

	rows = append(rows,
		wordToolsRow(),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(ButtonMainMenu)),
	)

	return replyKeyboard(rows...)
}

func controlKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return replyKeyboard(
		wordToolsRow(),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(ButtonNextWord)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(ButtonMainMenu)),
	)
}

func statsKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return replyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonGeneralStats),
			tgbotapi.NewKeyboardButton(ButtonTodayStats),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonWeeklyStats),
		),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(ButtonMainMenu)),
	)
}

func menuMessage(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	return msg
}
