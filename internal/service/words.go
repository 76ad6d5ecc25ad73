package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/DanRulev/vocabdrill/internal/models"
	"go.uber.org/zap"
)

const wordSeparator = " - "

type WordS struct {
	repo WordRI
	log  *zap.Logger
}

func NewWordService(repo WordRI, log *zap.Logger) *WordS {
	return &WordS{
		repo: repo,
		log:  log,
	}
}

// ParseWord reads a "russian - english" pair.
func ParseWord(input string) (models.Word, error) {
	russian, english, ok := strings.Cut(input, wordSeparator)
	if !ok {
		return models.Word{}, ErrBadFormat
	}

	word := models.Word{
		Russian: strings.TrimSpace(russian),
		English: strings.TrimSpace(english),
	}
	if word.Russian == "" || word.English == "" {
		return models.Word{}, ErrBadFormat
	}

	return word, nil
}

// AddWord stores a "russian - english" pair in the user's pool. The parsed
// word is returned along with ErrWordExists.
func (w *WordS) AddWord(ctx context.Context, userID int64, input string) (models.Word, error) {
	word, err := ParseWord(input)
	if err != nil {
		return models.Word{}, err
	}

	exists, err := w.repo.WordExists(ctx, userID, word.English)
	if err != nil {
		return models.Word{}, persistenceErr("check word", err)
	}
	if exists {
		return word, ErrWordExists
	}

	added, err := w.repo.AddUserWord(ctx, userID, word)
	if err != nil {
		return models.Word{}, persistenceErr("add word", err)
	}
	if !added {
		return word, ErrWordExists
	}

	w.log.Info("word added", zap.Int64("user_id", userID), zap.String("word", word.English))

	return word, nil
}

func (w *WordS) DeleteWord(ctx context.Context, userID int64, english string) error {
	english = strings.TrimSpace(english)
	if english == "" {
		return ErrWordNotFound
	}

	deleted, err := w.repo.DeleteUserWord(ctx, userID, english)
	if err != nil {
		return persistenceErr("delete word", err)
	}
	if !deleted {
		return ErrWordNotFound
	}

	w.log.Info("word deleted", zap.Int64("user_id", userID), zap.String("word", english))

	return nil
}

// UserWords lists the user's own words, newest first.
func (w *WordS) UserWords(ctx context.Context, userID int64) (string, error) {
	words, err := w.repo.UserWords(ctx, userID)
	if err != nil {
		return "", persistenceErr("list user words", err)
	}

	if len(words) == 0 {
		return "", ErrNoUserWords
	}

	return formatUserWords(words), nil
}

func formatUserWords(words []models.UserWord) string {
	var sb strings.Builder

	sb.WriteString("📝 Ваши слова:\n\n")
	for i, word := range words {
		fmt.Fprintf(&sb, "%d. %s - %s\n", i+1, word.Russian, word.English)
		fmt.Fprintf(&sb, "📊 Правильно: %d/%d (%s)\n\n", word.CorrectAnswers, word.TotalAttempts, formatPercent(word.Accuracy()))
	}
	fmt.Fprintf(&sb, "Всего слов: %d", len(words))

	return sb.String()
}
