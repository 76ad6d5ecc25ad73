package service

//go:generate mockgen -source=service.go -destination=mock/mock_service.go

import (
	"context"
	"time"

	"github.com/DanRulev/vocabdrill/internal/models"
	"go.uber.org/zap"
)

type WordRI interface {
	ListAllWords(ctx context.Context, userID int64) ([]models.Word, error)
	UserOwnsWord(ctx context.Context, userID int64, english string) (bool, error)
	WordExists(ctx context.Context, userID int64, english string) (bool, error)
	AddUserWord(ctx context.Context, userID int64, word models.Word) (bool, error)
	DeleteUserWord(ctx context.Context, userID int64, english string) (bool, error)
	UserWords(ctx context.Context, userID int64) ([]models.UserWord, error)
	CountUserWords(ctx context.Context, userID int64) (int, error)
	RecordWordOutcome(ctx context.Context, userID int64, english string, correct bool, at time.Time) (bool, error)
}

type StatsRI interface {
	UserStats(ctx context.Context, userID int64) (models.UserStats, error)
	SaveUserStats(ctx context.Context, stats models.UserStats) error
	AddDailyOutcome(ctx context.Context, userID int64, day time.Time, correct bool) error
	DailyStats(ctx context.Context, userID int64, from, to time.Time) ([]models.DailyStats, error)
	UsersPracticedOn(ctx context.Context, day time.Time) ([]models.UserStats, error)
	DeleteDailyStatsBefore(ctx context.Context, day time.Time) (int64, error)
}

type RepositoryI interface {
	WordRI
	StatsRI
}

type SessionStore interface {
	SetQuiz(userID int64, quiz models.QuizCard)
	TakeQuiz(userID int64) (models.QuizCard, bool)
}

type Service struct {
	*WordS
	*QuizS
	*StatsS
}

func InitServices(repo RepositoryI, sessions SessionStore, loc *time.Location, log *zap.Logger) *Service {
	stats := NewStatsService(repo, loc, log)
	return &Service{
		WordS:  NewWordService(repo, log),
		QuizS:  NewQuizService(repo, sessions, stats, log),
		StatsS: stats,
	}
}
