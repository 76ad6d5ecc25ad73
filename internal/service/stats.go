package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/vocabdrill/internal/models"
	"github.com/DanRulev/vocabdrill/internal/repository"
	"go.uber.org/zap"
)

const weekDays = 7

type StatsS struct {
	repo StatsWordRI
	loc  *time.Location
	now  func() time.Time
	log  *zap.Logger
}

// StatsWordRI is the part of the repository the stats tracker needs.
type StatsWordRI interface {
	StatsRI
	UserOwnsWord(ctx context.Context, userID int64, english string) (bool, error)
	CountUserWords(ctx context.Context, userID int64) (int, error)
	RecordWordOutcome(ctx context.Context, userID int64, english string, correct bool, at time.Time) (bool, error)
}

func NewStatsService(repo StatsWordRI, loc *time.Location, log *zap.Logger) *StatsS {
	if loc == nil {
		loc = time.UTC
	}
	return &StatsS{
		repo: repo,
		loc:  loc,
		now:  time.Now,
		log:  log,
	}
}

// today returns the current calendar day in the configured zone as UTC
// midnight, which is how days are stored.
func (s *StatsS) today() time.Time {
	return dayOf(s.now().In(s.loc))
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(dayOf(to).Sub(dayOf(from)).Hours() / 24)
}

// advanceStats applies one answered question on day today to prev.
func advanceStats(prev models.UserStats, today time.Time, correct bool) models.UserStats {
	next := prev
	streak := 1
	newDay := true

	if prev.LastPracticeDate.Valid {
		switch gap := daysBetween(prev.LastPracticeDate.Time, today); {
		case gap <= 0:
			streak = prev.CurrentStreak
			newDay = false
		case gap == 1:
			streak = prev.CurrentStreak + 1
		}
	}
	if streak < 1 {
		streak = 1
	}

	next.CurrentStreak = streak
	next.MaxStreak = max(prev.MaxStreak, streak)
	if newDay {
		next.TotalPracticeDays++
		next.LastPracticeDate = sql.NullTime{Time: today, Valid: true}
	}
	next.TotalAttempts++
	if correct {
		next.TotalCorrect++
	}
	return next
}

func (s *StatsS) RecordUserOutcome(ctx context.Context, userID int64, correct bool) (models.UserStats, error) {
	prev, err := s.repo.UserStats(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return models.UserStats{}, persistenceErr("load user stats", err)
		}
		prev = models.UserStats{UserID: userID}
	}

	today := s.today()
	next := advanceStats(prev, today, correct)

	if err := s.repo.SaveUserStats(ctx, next); err != nil {
		return models.UserStats{}, persistenceErr("save user stats", err)
	}

	if err := s.repo.AddDailyOutcome(ctx, userID, today, correct); err != nil {
		return next, persistenceErr("save daily stats", err)
	}

	return next, nil
}

// RecordWordOutcome updates per-word counters. Shared words carry no
// statistics, so answering one is a no-op.
func (s *StatsS) RecordWordOutcome(ctx context.Context, userID int64, english string, correct bool) error {
	owns, err := s.repo.UserOwnsWord(ctx, userID, english)
	if err != nil {
		return persistenceErr("check word owner", err)
	}
	if !owns {
		return nil
	}

	if _, err := s.repo.RecordWordOutcome(ctx, userID, english, correct, s.now()); err != nil {
		return persistenceErr("save word stats", err)
	}
	return nil
}

func (s *StatsS) GetStats(ctx context.Context, userID int64) (models.UserStats, error) {
	stats, err := s.repo.UserStats(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.UserStats{}, ErrNoStats
		}
		return models.UserStats{}, persistenceErr("load user stats", err)
	}

	total, err := s.repo.CountUserWords(ctx, userID)
	if err != nil {
		return models.UserStats{}, persistenceErr("count user words", err)
	}
	stats.TotalWords = total

	return stats, nil
}

func (s *StatsS) TodayStats(ctx context.Context, userID int64) (models.DailyStats, error) {
	today := s.today()
	days, err := s.repo.DailyStats(ctx, userID, today, today)
	if err != nil {
		return models.DailyStats{}, persistenceErr("load daily stats", err)
	}
	if len(days) == 0 {
		return models.DailyStats{UserID: userID, Day: today}, nil
	}
	return days[0], nil
}

// WeeklyStats returns the buckets of the last seven days including today.
func (s *StatsS) WeeklyStats(ctx context.Context, userID int64) ([]models.DailyStats, error) {
	today := s.today()
	days, err := s.repo.DailyStats(ctx, userID, today.AddDate(0, 0, -(weekDays-1)), today)
	if err != nil {
		return nil, persistenceErr("load daily stats", err)
	}
	return days, nil
}

// UsersToRemind lists users who practiced yesterday and would lose their
// streak by skipping today.
func (s *StatsS) UsersToRemind(ctx context.Context) ([]models.UserStats, error) {
	users, err := s.repo.UsersPracticedOn(ctx, s.today().AddDate(0, 0, -1))
	if err != nil {
		return nil, persistenceErr("load users to remind", err)
	}
	return users, nil
}

// PruneDailyStats keeps the buckets of the last keepDays days.
func (s *StatsS) PruneDailyStats(ctx context.Context, keepDays int) (int64, error) {
	if keepDays < 1 {
		return 0, fmt.Errorf("keep days must be positive, got %d", keepDays)
	}
	n, err := s.repo.DeleteDailyStatsBefore(ctx, s.today().AddDate(0, 0, -(keepDays-1)))
	if err != nil {
		return 0, persistenceErr("prune daily stats", err)
	}
	s.log.Info("pruned daily stats", zap.Int64("rows", n), zap.Int("keep_days", keepDays))
	return n, nil
}

func (s *StatsS) GeneralReport(ctx context.Context, userID int64) (string, error) {
	stats, err := s.GetStats(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNoStats) {
			s.log.Warn("failed to get user stats", zap.Int64("user_id", userID), zap.Error(err))
		}
		return "", err
	}
	return formatGeneralStats(stats), nil
}

func (s *StatsS) TodayReport(ctx context.Context, userID int64) (string, error) {
	day, err := s.TodayStats(ctx, userID)
	if err != nil {
		s.log.Warn("failed to get today stats", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}
	return formatTodayStats(day), nil
}

func (s *StatsS) WeeklyReport(ctx context.Context, userID int64) (string, error) {
	days, err := s.WeeklyStats(ctx, userID)
	if err != nil {
		s.log.Warn("failed to get weekly stats", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}
	return formatWeeklyStats(days), nil
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

func formatGeneralStats(stats models.UserStats) string {
	var sb strings.Builder

	sb.WriteString("📊 Общая статистика:\n\n")
	fmt.Fprintf(&sb, "📝 Всего слов: %d\n", stats.TotalWords)
	fmt.Fprintf(&sb, "✅ Правильных ответов: %d/%d\n", stats.TotalCorrect, stats.TotalAttempts)
	fmt.Fprintf(&sb, "🎯 Точность: %s\n", formatPercent(stats.Accuracy()))
	fmt.Fprintf(&sb, "🔥 Текущая серия: %d дней\n", stats.CurrentStreak)
	fmt.Fprintf(&sb, "🏆 Максимальная серия: %d дней\n", stats.MaxStreak)
	fmt.Fprintf(&sb, "📅 Дней практики: %d", stats.TotalPracticeDays)

	if stats.LastPracticeDate.Valid {
		fmt.Fprintf(&sb, "\n📆 Последняя практика: %s", stats.LastPracticeDate.Time.Format("02.01.2006"))
	}

	return sb.String()
}

func formatTodayStats(day models.DailyStats) string {
	var sb strings.Builder

	sb.WriteString("📅 Сегодняшняя статистика:\n")
	fmt.Fprintf(&sb, "✅ Правильных ответов: %d/%d\n", day.Correct, day.Attempts)

	if day.Attempts > 0 {
		fmt.Fprintf(&sb, "🎯 Точность: %s", formatPercent(day.Accuracy()))
	} else {
		sb.WriteString("Сегодня вы еще не тренировались!")
	}

	return sb.String()
}

func formatWeeklyStats(days []models.DailyStats) string {
	if len(days) == 0 {
		return "За последнюю неделю тренировок не было."
	}

	var (
		sb       strings.Builder
		correct  int
		attempts int
	)

	sb.WriteString("📆 Статистика за последние 7 дней:\n\n")
	for _, day := range days {
		fmt.Fprintf(&sb, "📅 %s: %d/%d (%s)\n", day.Day.Format("02.01"), day.Correct, day.Attempts, formatPercent(day.Accuracy()))
		correct += day.Correct
		attempts += day.Attempts
	}

	fmt.Fprintf(&sb, "\n📊 Итого за неделю: %d/%d (%s)", correct, attempts, formatPercent(models.Accuracy(correct, attempts)))

	return sb.String()
}
