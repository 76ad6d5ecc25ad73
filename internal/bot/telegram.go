package bot

//go:generate mockgen -source=telegram.go -destination=mock/mock_service.go -package=mock_bot

import (
	"context"
	"errors"
	"time"

	"github.com/DanRulev/vocabdrill/internal/config"
	"github.com/DanRulev/vocabdrill/internal/models"
	"github.com/DanRulev/vocabdrill/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const workerQueueSize = 64

// ErrUpdatesClosed is returned by Start when Telegram stops delivering updates.
var ErrUpdatesClosed = errors.New("updates channel closed")

type QuizSI interface {
	StartQuestion(ctx context.Context, userID int64) (models.Question, error)
	SubmitAnswer(ctx context.Context, userID int64, text string) (models.AnswerResult, error)
}

type WordSI interface {
	AddWord(ctx context.Context, userID int64, input string) (models.Word, error)
	DeleteWord(ctx context.Context, userID int64, english string) error
	UserWords(ctx context.Context, userID int64) (string, error)
}

type StatsSI interface {
	GeneralReport(ctx context.Context, userID int64) (string, error)
	TodayReport(ctx context.Context, userID int64) (string, error)
	WeeklyReport(ctx context.Context, userID int64) (string, error)
	UsersToRemind(ctx context.Context) ([]models.UserStats, error)
}

type ServiceI interface {
	WordSI
	QuizSI
	StatsSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramAPI struct {
	api   *tgbotapi.BotAPI
	bot   BotSender
	cache *cache.Cache
	word  *WordT
	quiz  *QuizT
	stats *StatsT

	workers       int
	updateTimeout int
	log           *zap.Logger
}

func NewTelegramAPI(ctx context.Context, cfg *config.Config, service ServiceI, cache *cache.Cache, log *zap.Logger) (*TelegramAPI, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	api.Debug = cfg.Env == "development"

	log.Info("authorized on telegram", zap.String("account", api.Self.UserName))

	t := newTelegram(NewRateLimitedSender(ctx, api, cfg.Bot.RatePerSecond), service, cache, cfg.App.Timeout, log)
	t.api = api
	t.workers = cfg.Bot.Workers
	t.updateTimeout = cfg.Bot.UpdateTimeout

	return t, nil
}

func newTelegram(bot BotSender, service ServiceI, cache *cache.Cache, timeout time.Duration, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		bot:     bot,
		cache:   cache,
		word:    NewWordTAPI(bot, cache, service, timeout, log),
		quiz:    NewQuizTAPI(bot, service, timeout, log),
		stats:   NewStatsTAPI(bot, service, timeout, log),
		workers: 1,
		log:     log,
	}
}

// Start polls updates until ctx is done or the update channel closes, in
// which case it returns ErrUpdatesClosed.
func (t *TelegramAPI) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = t.updateTimeout

	updates := t.api.GetUpdatesChan(u)
	defer t.api.StopReceivingUpdates()

	t.log.Info("bot started", zap.Int("workers", t.workers))

	return t.dispatch(ctx, updates)
}

// dispatch fans updates out to the worker pool. Updates of one user always
// land on the same worker, so they are handled in arrival order.
func (t *TelegramAPI) dispatch(ctx context.Context, updates <-chan tgbotapi.Update) error {
	queues := make([]chan tgbotapi.Update, max(t.workers, 1))

	var g errgroup.Group
	for i := range queues {
		queue := make(chan tgbotapi.Update, workerQueueSize)
		queues[i] = queue

		g.Go(func() error {
			for update := range queue {
				t.handleUpdate(update)
			}
			return nil
		})
	}

	defer func() {
		for _, queue := range queues {
			close(queue)
		}
		_ = g.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return ErrUpdatesClosed
			}

			queue := queues[workerIndex(updateUserID(update), len(queues))]
			select {
			case queue <- update:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func workerIndex(userID int64, workers int) int {
	return int(uint64(userID) % uint64(workers))
}

func updateUserID(update tgbotapi.Update) int64 {
	if user := update.SentFrom(); user != nil {
		return user.ID
	}
	if chat := update.FromChat(); chat != nil {
		return chat.ID
	}
	return 0
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			t.log.Error("panic while handling update", zap.Int("update_id", update.UpdateID), zap.Any("panic", r))
		}
	}()

	if update.Message == nil {
		return
	}

	if update.Message.IsCommand() {
		t.handleCommand(update.Message)
		return
	}

	t.handleMessage(update.Message)
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		zap.L().Warn("failed to send message", zap.Error(err))
		return
	}

	if sentMsg.Chat != nil {
		zap.L().Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}
