package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/vocabdrill/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type QuizT struct {
	bot     BotSender
	service QuizSI
	timeout time.Duration
	log     *zap.Logger
}

func NewQuizTAPI(bot BotSender, service QuizSI, timeout time.Duration, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:     bot,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (t *QuizT) askQuestion(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	question, err := t.service.StartQuestion(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNoWords) {
			sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Нет слов для тренировки. Добавьте слова сначала."))
			sendMessage(t.bot, menuMessage(chatID, textChooseAction, mainKeyboard()))
			return
		}

		t.log.Error("failed to start question", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, menuMessage(chatID, "❌ Ошибка при получении слова. Попробуйте позже.", mainKeyboard()))
		return
	}

	text := fmt.Sprintf("Как переводится слово '%s'?", question.Prompt)
	sendMessage(t.bot, menuMessage(chatID, text, optionsKeyboard(question.Options)))
}

func (t *QuizT) checkAnswer(chatID, userID int64, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	result, err := t.service.SubmitAnswer(ctx, userID, text)
	if err != nil {
		if !errors.Is(err, service.ErrNoSession) {
			t.log.Error("failed to submit answer", zap.Int64("user_id", userID), zap.Error(err))
		}
		sendMessage(t.bot, menuMessage(chatID, textUseButtons, mainKeyboard()))
		return
	}

	var reply string
	if result.Correct {
		reply = fmt.Sprintf("Правильно! ✅\nСлово '%s' переводится как '%s'", result.Prompt, result.Answer)
	} else {
		reply = fmt.Sprintf("Неправильно ❌\nПравильный ответ: '%s'\nСлово '%s' переводится как '%s'",
			result.Answer, result.Prompt, result.Answer)
	}

	sendMessage(t.bot, menuMessage(chatID, reply, controlKeyboard()))
}
