package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/vocabdrill/internal/models"
)

type StatsR struct {
	db QueryI
}

func NewStatsRepository(db QueryI) *StatsR {
	return &StatsR{db: db}
}

func (s *StatsR) UserStats(ctx context.Context, userID int64) (models.UserStats, error) {
	query := `
		SELECT user_id, total_correct, total_attempts, current_streak, max_streak,
			last_practice_date, total_practice_days
		FROM user_stats
		WHERE user_id = $1
	`

	var stats models.UserStats
	err := s.db.GetContext(ctx, &stats, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserStats{}, ErrNotFound
		}
		return models.UserStats{}, fmt.Errorf("failed to get stats for user %d: %w", userID, err)
	}
	return stats, nil
}

func (s *StatsR) SaveUserStats(ctx context.Context, stats models.UserStats) error {
	query := `
		INSERT INTO user_stats (user_id, total_correct, total_attempts, current_streak,
			max_streak, last_practice_date, total_practice_days, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE SET
			total_correct = EXCLUDED.total_correct,
			total_attempts = EXCLUDED.total_attempts,
			current_streak = EXCLUDED.current_streak,
			max_streak = EXCLUDED.max_streak,
			last_practice_date = EXCLUDED.last_practice_date,
			total_practice_days = EXCLUDED.total_practice_days,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := s.db.ExecContext(ctx, query,
		stats.UserID, stats.TotalCorrect, stats.TotalAttempts, stats.CurrentStreak,
		stats.MaxStreak, stats.LastPracticeDate, stats.TotalPracticeDays)
	if err != nil {
		return fmt.Errorf("failed to save stats for user %d: %w", stats.UserID, err)
	}
	return nil
}

func (s *StatsR) AddDailyOutcome(ctx context.Context, userID int64, day time.Time, correct bool) error {
	query := `
		INSERT INTO daily_stats (user_id, day, correct, attempts)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (user_id, day) DO UPDATE SET
			correct = daily_stats.correct + EXCLUDED.correct,
			attempts = daily_stats.attempts + 1
	`

	if _, err := s.db.ExecContext(ctx, query, userID, day, boolToInt(correct)); err != nil {
		return fmt.Errorf("failed to add daily outcome for user %d: %w", userID, err)
	}
	return nil
}

// DailyStats returns the per-day buckets of a user between from and to
// inclusive, oldest first. Days without practice have no bucket.
func (s *StatsR) DailyStats(ctx context.Context, userID int64, from, to time.Time) ([]models.DailyStats, error) {
	query := `
		SELECT user_id, day, correct, attempts
		FROM daily_stats
		WHERE user_id = $1 AND day BETWEEN $2 AND $3
		ORDER BY day
	`

	stats := make([]models.DailyStats, 0, 7)
	if err := s.db.SelectContext(ctx, &stats, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("failed to get daily stats for user %d: %w", userID, err)
	}
	return stats, nil
}

func (s *StatsR) UsersPracticedOn(ctx context.Context, day time.Time) ([]models.UserStats, error) {
	query := `
		SELECT user_id, total_correct, total_attempts, current_streak, max_streak,
			last_practice_date, total_practice_days
		FROM user_stats
		WHERE last_practice_date = $1 AND current_streak > 0
	`

	users := make([]models.UserStats, 0)
	if err := s.db.SelectContext(ctx, &users, query, day); err != nil {
		return nil, fmt.Errorf("failed to get users practiced on %s: %w", day.Format(time.DateOnly), err)
	}
	return users, nil
}

func (s *StatsR) DeleteDailyStatsBefore(ctx context.Context, day time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM daily_stats WHERE day < $1`, day)
	if err != nil {
		return 0, fmt.Errorf("failed to prune daily stats: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n, nil
}
