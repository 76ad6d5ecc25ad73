package db

import (
	"context"
	"fmt"

	"github.com/DanRulev/vocabdrill/internal/models"
	"github.com/jmoiron/sqlx"
)

// The schema sticks to the SQL subset shared by PostgreSQL and SQLite.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS common_words (
		russian    TEXT NOT NULL,
		english    TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS common_words_english_idx ON common_words (LOWER(english))`,
	`CREATE TABLE IF NOT EXISTS user_words (
		user_id         BIGINT NOT NULL,
		russian         TEXT NOT NULL,
		english         TEXT NOT NULL,
		correct_answers INTEGER NOT NULL DEFAULT 0,
		total_attempts  INTEGER NOT NULL DEFAULT 0,
		created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		last_practiced  TIMESTAMP
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS user_words_user_english_idx ON user_words (user_id, LOWER(english))`,
	`CREATE TABLE IF NOT EXISTS user_stats (
		user_id             BIGINT PRIMARY KEY,
		total_correct       INTEGER NOT NULL DEFAULT 0,
		total_attempts      INTEGER NOT NULL DEFAULT 0,
		current_streak      INTEGER NOT NULL DEFAULT 0,
		max_streak          INTEGER NOT NULL DEFAULT 0,
		last_practice_date  DATE,
		total_practice_days INTEGER NOT NULL DEFAULT 0,
		updated_at          TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS daily_stats (
		user_id  BIGINT NOT NULL,
		day      DATE NOT NULL,
		correct  INTEGER NOT NULL DEFAULT 0,
		attempts INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (user_id, day)
	)`,
}

var tables = []string{"daily_stats", "user_stats", "user_words", "common_words"}

var BasicWords = []models.Word{
	{Russian: "красный", English: "red"},
	{Russian: "синий", English: "blue"},
	{Russian: "зеленый", English: "green"},
	{Russian: "желтый", English: "yellow"},
	{Russian: "черный", English: "black"},
	{Russian: "я", English: "I"},
	{Russian: "ты", English: "you"},
	{Russian: "он", English: "he"},
	{Russian: "она", English: "she"},
	{Russian: "оно", English: "it"},
	{Russian: "кошка", English: "cat"},
	{Russian: "собака", English: "dog"},
	{Russian: "птица", English: "bird"},
	{Russian: "рыба", English: "fish"},
	{Russian: "лошадь", English: "horse"},
	{Russian: "яблоко", English: "apple"},
	{Russian: "хлеб", English: "bread"},
	{Russian: "вода", English: "water"},
	{Russian: "молоко", English: "milk"},
	{Russian: "сыр", English: "cheese"},
	{Russian: "мама", English: "mother"},
	{Russian: "папа", English: "father"},
	{Russian: "брат", English: "brother"},
	{Russian: "сестра", English: "sister"},
	{Russian: "друг", English: "friend"},
}

// Migrate creates missing tables and seeds the shared word pool when it is
// empty.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM common_words`); err != nil {
		return fmt.Errorf("failed to count common words: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, w := range BasicWords {
		_, err := tx.ExecContext(ctx, `INSERT INTO common_words (russian, english) VALUES ($1, $2) ON CONFLICT DO NOTHING`, w.Russian, w.English)
		if err != nil {
			return fmt.Errorf("failed to seed word %q: %w", w.English, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

// Reset drops every table owned by the bot.
func Reset(ctx context.Context, db *sqlx.DB) error {
	for _, table := range tables {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
	}
	return nil
}
