package service

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/DanRulev/vocabdrill/internal/models"
	"go.uber.org/zap"
)

const distractorCount = 3

var fallbackWords = []string{"apple", "book", "car", "dog", "cat", "house", "tree", "water"}

type QuizWordsRI interface {
	ListAllWords(ctx context.Context, userID int64) ([]models.Word, error)
}

type OutcomeRecorder interface {
	RecordUserOutcome(ctx context.Context, userID int64, correct bool) (models.UserStats, error)
	RecordWordOutcome(ctx context.Context, userID int64, english string, correct bool) error
}

type QuizS struct {
	words    QuizWordsRI
	sessions SessionStore
	stats    OutcomeRecorder
	log      *zap.Logger
}

func NewQuizService(words QuizWordsRI, sessions SessionStore, stats OutcomeRecorder, log *zap.Logger) *QuizS {
	return &QuizS{
		words:    words,
		sessions: sessions,
		stats:    stats,
		log:      log,
	}
}

// StartQuestion picks a word from the shared and the user's pool and stores
// it as the user's pending question, replacing any previous one.
func (q *QuizS) StartQuestion(ctx context.Context, userID int64) (models.Question, error) {
	words, err := q.words.ListAllWords(ctx, userID)
	if err != nil {
		q.log.Error("failed to list words", zap.Int64("user_id", userID), zap.Error(err))
		return models.Question{}, persistenceErr("list words", err)
	}

	if len(words) == 0 {
		return models.Question{}, ErrNoWords
	}

	word := words[rand.IntN(len(words))]

	options := append(pickDistractors(words, word.English, distractorCount), word.English)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	q.sessions.SetQuiz(userID, models.QuizCard{
		UserID: userID,
		Prompt: word.Russian,
		Answer: word.English,
	})

	return models.Question{
		Prompt:  word.Russian,
		Answer:  word.English,
		Options: options,
	}, nil
}

// pickDistractors samples up to n English values from words that differ from
// answer ignoring case, topping up from fallbackWords when the pool is small.
func pickDistractors(words []models.Word, answer string, n int) []string {
	seen := map[string]struct{}{
		strings.ToLower(strings.TrimSpace(answer)): {},
	}
	candidates := make([]string, 0, len(words))

	add := func(s string) {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		candidates = append(candidates, s)
	}

	for _, w := range words {
		add(w.English)
	}

	if len(candidates) < n {
		for _, w := range fallbackWords {
			add(w)
		}
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// SubmitAnswer checks text against the pending question and clears it.
// Stats are recorded either way; their failures are only logged.
func (q *QuizS) SubmitAnswer(ctx context.Context, userID int64, text string) (models.AnswerResult, error) {
	card, ok := q.sessions.TakeQuiz(userID)
	if !ok {
		return models.AnswerResult{}, ErrNoSession
	}

	correct := strings.EqualFold(strings.TrimSpace(text), strings.TrimSpace(card.Answer))

	if _, err := q.stats.RecordUserOutcome(ctx, userID, correct); err != nil {
		q.log.Error("failed to record user outcome", zap.Int64("user_id", userID), zap.Error(err))
	}

	if err := q.stats.RecordWordOutcome(ctx, userID, card.Answer, correct); err != nil {
		q.log.Error("failed to record word outcome",
			zap.Int64("user_id", userID),
			zap.String("word", card.Answer),
			zap.Error(err))
	}

	return models.AnswerResult{
		Correct: correct,
		Prompt:  card.Prompt,
		Answer:  card.Answer,
	}, nil
}
