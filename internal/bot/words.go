package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DanRulev/vocabdrill/internal/service"
	"github.com/DanRulev/vocabdrill/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type WordT struct {
	bot     BotSender
	cache   *cache.Cache
	service WordSI
	timeout time.Duration
	log     *zap.Logger
}

func NewWordTAPI(bot BotSender, cache *cache.Cache, service WordSI, timeout time.Duration, log *zap.Logger) *WordT {
	return &WordT{
		bot:     bot,
		cache:   cache,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (t *WordT) promptAddWord(chatID, userID int64) {
	t.cache.SetPending(userID, cache.ActionAddWord)

	msg := tgbotapi.NewMessage(chatID, "Введите слово в формате: русское слово - английское слово\nНапример: стол - table")
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)

	sendMessage(t.bot, msg)
}

func (t *WordT) promptDeleteWord(chatID, userID int64) {
	t.cache.SetPending(userID, cache.ActionDeleteWord)

	msg := tgbotapi.NewMessage(chatID, "Введите английское слово для удаления:")
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)

	sendMessage(t.bot, msg)
}

func (t *WordT) processAddWord(message *tgbotapi.Message, userID int64) {
	chatID := message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	word, err := t.service.AddWord(ctx, userID, message.Text)

	var reply string
	switch {
	case err == nil:
		reply = fmt.Sprintf("Слово '%s - %s' добавлено! ✅", word.Russian, word.English)
	case errors.Is(err, service.ErrBadFormat):
		reply = "Используйте формат: русское слово - английское слово"
	case errors.Is(err, service.ErrWordExists):
		reply = fmt.Sprintf("Слово '%s' уже существует в вашем словаре!", word.English)
	default:
		t.log.Error("failed to add word", zap.Int64("user_id", userID), zap.Error(err))
		reply = "Ошибка при добавлении слова. Попробуйте снова."
	}

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, reply))
	sendMessage(t.bot, menuMessage(chatID, textChooseAction, mainKeyboard()))
}

func (t *WordT) processDeleteWord(message *tgbotapi.Message, userID int64) {
	chatID := message.Chat.ID
	english := strings.TrimSpace(message.Text)

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	var reply string
	switch err := t.service.DeleteWord(ctx, userID, english); {
	case err == nil:
		reply = fmt.Sprintf("Слово '%s' удалено! ✅", english)
	case errors.Is(err, service.ErrWordNotFound):
		reply = fmt.Sprintf("Слово '%s' не найдено в вашем словаре.", english)
	default:
		t.log.Error("failed to delete word", zap.Int64("user_id", userID), zap.Error(err))
		reply = "Не удалось удалить слово."
	}

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, reply))
	sendMessage(t.bot, menuMessage(chatID, textChooseAction, mainKeyboard()))
}

func (t *WordT) showMyWords(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	text, err := t.service.UserWords(ctx, userID)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrNoUserWords):
		text = "У вас пока нет своих слов. Добавьте их с помощью кнопки '" + ButtonAddWord + "'"
	default:
		t.log.Error("failed to load user words", zap.Int64("user_id", userID), zap.Error(err))
		text = "❌ Ошибка загрузки слов"
	}

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
	sendMessage(t.bot, menuMessage(chatID, textChooseAction, mainKeyboard()))
}
