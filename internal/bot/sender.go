package bot

import (
	"context"
	"fmt"
	"math"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// RateLimitedSender paces outgoing messages to stay under the Bot API
// flood limits.
type RateLimitedSender struct {
	ctx     context.Context
	bot     BotSender
	limiter *rate.Limiter
}

// NewRateLimitedSender wraps bot. Waiting for a slot is aborted when ctx
// is done.
func NewRateLimitedSender(ctx context.Context, bot BotSender, perSecond float64) *RateLimitedSender {
	burst := max(int(math.Ceil(perSecond)), 1)

	return &RateLimitedSender{
		ctx:     ctx,
		bot:     bot,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (s *RateLimitedSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if err := s.limiter.Wait(s.ctx); err != nil {
		return tgbotapi.Message{}, fmt.Errorf("rate limiter: %w", err)
	}
	return s.bot.Send(c)
}
