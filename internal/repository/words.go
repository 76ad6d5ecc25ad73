package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/vocabdrill/internal/models"
)

type WordsR struct {
	db QueryI
}

func NewWordsRepository(db QueryI) *WordsR {
	return &WordsR{db: db}
}

// ListAllWords returns the shared pool together with the user's own words.
func (w *WordsR) ListAllWords(ctx context.Context, userID int64) ([]models.Word, error) {
	query := `
		SELECT russian, english FROM common_words
		UNION ALL
		SELECT russian, english FROM user_words WHERE user_id = $1
	`

	words := make([]models.Word, 0, 32)
	if err := w.db.SelectContext(ctx, &words, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list words for user %d: %w", userID, err)
	}
	return words, nil
}

func (w *WordsR) UserOwnsWord(ctx context.Context, userID int64, english string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM user_words WHERE user_id = $1 AND LOWER(english) = LOWER($2)
	)`

	var exists bool
	if err := w.db.GetContext(ctx, &exists, query, userID, english); err != nil {
		return false, fmt.Errorf("failed to check user word %q: %w", english, err)
	}
	return exists, nil
}

func (w *WordsR) WordExists(ctx context.Context, userID int64, english string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM user_words WHERE user_id = $1 AND LOWER(english) = LOWER($2)
		UNION ALL
		SELECT 1 FROM common_words WHERE LOWER(english) = LOWER($2)
	)`

	var exists bool
	if err := w.db.GetContext(ctx, &exists, query, userID, english); err != nil {
		return false, fmt.Errorf("failed to check word %q: %w", english, err)
	}
	return exists, nil
}

func (w *WordsR) AddUserWord(ctx context.Context, userID int64, word models.Word) (bool, error) {
	query := `INSERT INTO user_words (user_id, russian, english)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING`

	res, err := w.db.ExecContext(ctx, query, userID, word.Russian, word.English)
	if err != nil {
		return false, fmt.Errorf("failed to add word %q for user %d: %w", word.English, userID, err)
	}
	return affected(res)
}

func (w *WordsR) DeleteUserWord(ctx context.Context, userID int64, english string) (bool, error) {
	query := `DELETE FROM user_words WHERE user_id = $1 AND LOWER(english) = LOWER($2)`

	res, err := w.db.ExecContext(ctx, query, userID, english)
	if err != nil {
		return false, fmt.Errorf("failed to delete word %q for user %d: %w", english, userID, err)
	}
	return affected(res)
}

func (w *WordsR) UserWords(ctx context.Context, userID int64) ([]models.UserWord, error) {
	query := `
		SELECT user_id, russian, english, correct_answers, total_attempts, created_at, last_practiced
		FROM user_words
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	words := make([]models.UserWord, 0, 10)
	if err := w.db.SelectContext(ctx, &words, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get words of user %d: %w", userID, err)
	}
	return words, nil
}

func (w *WordsR) CountUserWords(ctx context.Context, userID int64) (int, error) {
	var total int
	if err := w.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM user_words WHERE user_id = $1`, userID); err != nil {
		return 0, fmt.Errorf("failed to count words of user %d: %w", userID, err)
	}
	return total, nil
}

// RecordWordOutcome bumps the attempt counters of a user-owned word. It
// reports false when the user has no such word.
func (w *WordsR) RecordWordOutcome(ctx context.Context, userID int64, english string, correct bool, at time.Time) (bool, error) {
	query := `
		UPDATE user_words
		SET total_attempts = total_attempts + 1,
			correct_answers = correct_answers + $1,
			last_practiced = $2
		WHERE user_id = $3 AND LOWER(english) = LOWER($4)
	`

	res, err := w.db.ExecContext(ctx, query, boolToInt(correct), at, userID, english)
	if err != nil {
		return false, fmt.Errorf("failed to update stats of word %q: %w", english, err)
	}
	return affected(res)
}

// AddCommonWords inserts words into the shared pool, skipping ones whose
// English form is already there. It returns the number of inserted rows.
func (w *WordsR) AddCommonWords(ctx context.Context, words []models.Word) (int, error) {
	query := `INSERT INTO common_words (russian, english) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	inserted := 0
	for _, word := range words {
		res, err := w.db.ExecContext(ctx, query, word.Russian, word.English)
		if err != nil {
			return inserted, fmt.Errorf("failed to add common word %q: %w", word.English, err)
		}
		ok, err := affected(res)
		if err != nil {
			return inserted, err
		}
		if ok {
			inserted++
		}
	}
	return inserted, nil
}
