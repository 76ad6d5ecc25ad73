package bot

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/DanRulev/vocabdrill/internal/service"
	"go.uber.org/zap"
)

type StatsT struct {
	bot     BotSender
	service StatsSI
	timeout time.Duration
	log     *zap.Logger
}

func NewStatsTAPI(bot BotSender, service StatsSI, timeout time.Duration, log *zap.Logger) *StatsT {
	return &StatsT{
		bot:     bot,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (t *StatsT) showStatsMenu(chatID int64) {
	sendMessage(t.bot, menuMessage(chatID, "Выберите тип статистики:", statsKeyboard()))
}

func (t *StatsT) sendGeneralStats(chatID, userID int64) {
	t.sendReport(chatID, userID, t.service.GeneralReport)
}

func (t *StatsT) sendTodayStats(chatID, userID int64) {
	t.sendReport(chatID, userID, t.service.TodayReport)
}

func (t *StatsT) sendWeeklyStats(chatID, userID int64) {
	t.sendReport(chatID, userID, t.service.WeeklyReport)
}

func (t *StatsT) sendReport(chatID, userID int64, report func(context.Context, int64) (string, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	text, err := report(ctx, userID)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrNoStats):
		text = "Статистика пока недоступна. Начните тренировку!"
	default:
		t.log.Error("failed to build stats report", zap.Int64("user_id", userID), zap.Error(err))
		text = "❌ Ошибка получения статистики"
	}

	sendMessage(t.bot, menuMessage(chatID, text, statsKeyboard()))
}

// SendReminders nudges users who practiced yesterday but not yet today.
// Private chats share the user's ID, so the message goes to that chat.
func (t *TelegramAPI) SendReminders(ctx context.Context) (int, error) {
	users, err := t.stats.service.UsersToRemind(ctx)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, user := range users {
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}

		text := "🔥 Ваша серия: " + pluralDays(user.CurrentStreak) + "!\n" +
			"Потренируйтесь сегодня, чтобы не потерять её."

		if _, err := t.bot.Send(menuMessage(user.UserID, text, mainKeyboard())); err != nil {
			t.log.Warn("failed to send reminder", zap.Int64("user_id", user.UserID), zap.Error(err))
			continue
		}
		sent++
	}

	t.log.Info("reminders sent", zap.Int("sent", sent), zap.Int("users", len(users)))

	return sent, nil
}

func pluralDays(n int) string {
	word := "дней"
	switch mod100 := n % 100; {
	case mod100 >= 11 && mod100 <= 14:
	case n%10 == 1:
		word = "день"
	case n%10 >= 2 && n%10 <= 4:
		word = "дня"
	}
	return strconv.Itoa(n) + " " + word
}
