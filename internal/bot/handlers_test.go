package bot

import (
	"context"
	"testing"
	"time"

	mock_bot "github.com/DanRulev/vocabdrill/internal/bot/mock"
	"github.com/DanRulev/vocabdrill/internal/models"
	"github.com/DanRulev/vocabdrill/internal/service"
	"github.com/DanRulev/vocabdrill/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	testChatID = int64(123)
	testUserID = int64(456)
)

func newTelegramMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) (*TelegramAPI, *mock_bot.MockBot) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return newTelegram(mockBot, mockService, cache.NewCache(), time.Second, zap.NewNop()), mockBot
}

func textMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: testChatID},
		From: &tgbotapi.User{ID: testUserID},
	}
}

func commandMessage(command string) *tgbotapi.Message {
	msg := textMessage("/" + command)
	msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(command) + 1}}
	return msg
}

func TestTelegramAPI_handleMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		messages   []*tgbotapi.Message
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name:     "start training sends options",
			messages: []*tgbotapi.Message{textMessage(ButtonStart)},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartQuestion(gomock.Any(), testUserID).Return(models.Question{
					Prompt:  "кошка",
					Answer:  "cat",
					Options: []string{"dog", "cat", "tree", "book"},
				}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Equal(t, "Как переводится слово 'кошка'?", msg.Text)

				keyboard, ok := msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
				require.True(t, ok)
				require.Len(t, keyboard.Keyboard, 4)
				assert.Equal(t, "dog", keyboard.Keyboard[0][0].Text)
				assert.Equal(t, "cat", keyboard.Keyboard[0][1].Text)
				assert.Equal(t, ButtonMainMenu, keyboard.Keyboard[3][0].Text)
			},
		},
		{
			name:     "no words",
			messages: []*tgbotapi.Message{textMessage(ButtonNextWord)},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartQuestion(gomock.Any(), testUserID).Return(models.Question{}, service.ErrNoWords)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Equal(t, []string{"Нет слов для тренировки. Добавьте слова сначала.", textChooseAction}, mb.Texts())
			},
		},
		{
			name:     "correct answer",
			messages: []*tgbotapi.Message{textMessage("Cat")},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), testUserID, "Cat").Return(models.AnswerResult{
					Correct: true, Prompt: "кошка", Answer: "cat",
				}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "Правильно! ✅\nСлово 'кошка' переводится как 'cat'", msg.Text)

				keyboard, ok := msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
				require.True(t, ok)
				assert.Equal(t, ButtonNextWord, keyboard.Keyboard[1][0].Text)
			},
		},
		{
			name:     "wrong answer",
			messages: []*tgbotapi.Message{textMessage("dog")},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), testUserID, "dog").Return(models.AnswerResult{
					Correct: false, Prompt: "кошка", Answer: "cat",
				}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Equal(t, []string{"Неправильно ❌\nПравильный ответ: 'cat'\nСлово 'кошка' переводится как 'cat'"}, mb.Texts())
			},
		},
		{
			name:     "free text without question",
			messages: []*tgbotapi.Message{textMessage("hello")},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), testUserID, "hello").Return(models.AnswerResult{}, service.ErrNoSession)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Equal(t, []string{textUseButtons}, mb.Texts())
			},
		},
		{
			name:     "empty text",
			messages: []*tgbotapi.Message{textMessage("")},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Equal(t, []string{textUseButtons}, mb.Texts())
			},
		},
		{
			name:     "add word flow",
			messages: []*tgbotapi.Message{textMessage(ButtonAddWord), textMessage("кошка - cat")},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().AddWord(gomock.Any(), testUserID, "кошка - cat").Return(models.Word{Russian: "кошка", English: "cat"}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				texts := mb.Texts()
				require.Len(t, texts, 3)
				assert.Equal(t, "Слово 'кошка - cat' добавлено! ✅", texts[1])
				assert.Equal(t, textChooseAction, texts[2])

				_, ok := mb.SentMessages[0].(tgbotapi.MessageConfig).ReplyMarkup.(tgbotapi.ReplyKeyboardRemove)
				assert.True(t, ok)
			},
		},
		{
			name:     "add existing word",
			messages: []*tgbotapi.Message{textMessage(ButtonAddWord), textMessage("кошка - cat")},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().AddWord(gomock.Any(), testUserID, "кошка - cat").Return(models.Word{Russian: "кошка", English: "cat"}, service.ErrWordExists)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Equal(t, "Слово 'cat' уже существует в вашем словаре!", mb.Texts()[1])
			},
		},
		{
			name:     "pending input is consumed once",
			messages: []*tgbotapi.Message{textMessage(ButtonDeleteWord), textMessage("cat"), textMessage("cat")},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().DeleteWord(gomock.Any(), testUserID, "cat").Return(service.ErrWordNotFound)
				ms.EXPECT().SubmitAnswer(gomock.Any(), testUserID, "cat").Return(models.AnswerResult{}, service.ErrNoSession)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				texts := mb.Texts()
				require.Len(t, texts, 4)
				assert.Equal(t, "Слово 'cat' не найдено в вашем словаре.", texts[1])
				assert.Equal(t, textUseButtons, texts[3])
			},
		},
		{
			name:     "my words empty",
			messages: []*tgbotapi.Message{textMessage(ButtonMyWords)},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().UserWords(gomock.Any(), testUserID).Return("", service.ErrNoUserWords)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				texts := mb.Texts()
				require.Len(t, texts, 2)
				assert.Contains(t, texts[0], "У вас пока нет своих слов")
			},
		},
		{
			name:     "stats menu and reports",
			messages: []*tgbotapi.Message{textMessage(ButtonStats), textMessage(ButtonGeneralStats), textMessage(ButtonTodayStats), textMessage(ButtonWeeklyStats)},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().GeneralReport(gomock.Any(), testUserID).Return("", service.ErrNoStats)
				ms.EXPECT().TodayReport(gomock.Any(), testUserID).Return("today", nil)
				ms.EXPECT().WeeklyReport(gomock.Any(), testUserID).Return("", assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Equal(t, []string{
					"Выберите тип статистики:",
					"Статистика пока недоступна. Начните тренировку!",
					"today",
					"❌ Ошибка получения статистики",
				}, mb.Texts())
			},
		},
		{
			name:     "main menu",
			messages: []*tgbotapi.Message{textMessage(ButtonMainMenu)},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				keyboard, ok := mb.SentMessages[0].(tgbotapi.MessageConfig).ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
				require.True(t, ok)
				assert.Equal(t, ButtonStart, keyboard.Keyboard[0][0].Text)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tg, mockBot := newTelegramMock(t, ctrl, tt.f)

			for _, msg := range tt.messages {
				tg.handleMessage(msg)
			}

			tt.assertFunc(t, mockBot)
		})
	}
}

func TestTelegramAPI_handleCommand(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tg, mockBot := newTelegramMock(t, ctrl, nil)

	tg.cache.SetPending(testUserID, cache.ActionAddWord)

	tg.handleUpdate(tgbotapi.Update{Message: commandMessage("start")})
	tg.handleUpdate(tgbotapi.Update{Message: commandMessage("help")})
	tg.handleUpdate(tgbotapi.Update{Message: commandMessage("unknown")})

	texts := mockBot.Texts()
	require.Len(t, texts, 3)
	assert.Contains(t, texts[0], "Давай попрактикуемся")
	assert.Contains(t, texts[1], "/start")
	assert.Equal(t, "Неизвестная команда. Используйте /start", texts[2])

	assert.Equal(t, cache.ActionNone, tg.cache.TakePending(testUserID))
}

func TestTelegramAPI_dispatch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tg, mockBot := newTelegramMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		ms.EXPECT().SubmitAnswer(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.AnswerResult{}, service.ErrNoSession).Times(20)
	})
	tg.workers = 4

	updates := make(chan tgbotapi.Update, 20)
	for i := 0; i < 20; i++ {
		msg := textMessage("hello")
		msg.From = &tgbotapi.User{ID: int64(i % 5)}
		updates <- tgbotapi.Update{UpdateID: i, Message: msg}
	}
	close(updates)

	require.ErrorIs(t, tg.dispatch(context.Background(), updates), ErrUpdatesClosed)
	assert.Len(t, mockBot.Texts(), 20)
}

func TestTelegramAPI_dispatchClosedUpdatesCancelsGroup(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tg, _ := newTelegramMock(t, ctrl, nil)

	updates := make(chan tgbotapi.Update)
	close(updates)

	g, gctx := errgroup.WithContext(context.Background())
	g.Go(func() error { return tg.dispatch(gctx, updates) })
	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrUpdatesClosed)
	case <-time.After(time.Second):
		t.Fatal("group did not stop after updates closed")
	}
}

func TestTelegramAPI_dispatchStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tg, _ := newTelegramMock(t, ctrl, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- tg.dispatch(ctx, make(chan tgbotapi.Update)) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("dispatch did not stop")
	}
}

func TestWorkerIndex(t *testing.T) {
	t.Parallel()

	for _, id := range []int64{0, 1, 7, 123456789, -42} {
		idx := workerIndex(id, 4)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 4)
		assert.Equal(t, idx, workerIndex(id, 4))
	}
}

func TestOptionsKeyboard(t *testing.T) {
	t.Parallel()

	keyboard := optionsKeyboard([]string{"a", "b", "c"})
	require.Len(t, keyboard.Keyboard, 4)
	assert.Len(t, keyboard.Keyboard[0], 2)
	assert.Len(t, keyboard.Keyboard[1], 1)
	assert.Equal(t, ButtonAddWord, keyboard.Keyboard[2][0].Text)
	assert.True(t, keyboard.ResizeKeyboard)
}
