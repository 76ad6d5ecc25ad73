package models

import (
	"database/sql"
	"math"
	"time"
)

type UserStats struct {
	UserID            int64        `db:"user_id"`
	TotalWords        int          `db:"total_words"`
	TotalCorrect      int          `db:"total_correct"`
	TotalAttempts     int          `db:"total_attempts"`
	CurrentStreak     int          `db:"current_streak"`
	MaxStreak         int          `db:"max_streak"`
	LastPracticeDate  sql.NullTime `db:"last_practice_date"`
	TotalPracticeDays int          `db:"total_practice_days"`
}

func (s UserStats) Accuracy() float64 {
	return Accuracy(s.TotalCorrect, s.TotalAttempts)
}

type DailyStats struct {
	UserID   int64     `db:"user_id"`
	Day      time.Time `db:"day"`
	Correct  int       `db:"correct"`
	Attempts int       `db:"attempts"`
}

func (s DailyStats) Accuracy() float64 {
	return Accuracy(s.Correct, s.Attempts)
}

// Accuracy returns the share of correct answers in percent rounded to one
// decimal place, or 0 when nothing was attempted.
func Accuracy(correct, attempts int) float64 {
	if attempts <= 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(attempts)*1000) / 10
}
