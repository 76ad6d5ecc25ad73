package repository

//go:generate mockgen -source=repository.go -destination=mock/mock_repository.go

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Queries number their placeholders in order of first use: SQLite treats $N
// as a named parameter and binds arguments by appearance.

var ErrNotFound = errors.New("not found")

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	*WordsR
	*StatsR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		WordsR: NewWordsRepository(db),
		StatsR: NewStatsRepository(db),
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}
