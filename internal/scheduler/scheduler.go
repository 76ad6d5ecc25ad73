package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/vocabdrill/internal/config"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

const (
	pruneAt     = "03:00"
	tagReminder = "reminder"
	tagPrune    = "prune"
)

type Reminder interface {
	SendReminders(ctx context.Context) (int, error)
}

type Pruner interface {
	PruneDailyStats(ctx context.Context, keepDays int) (int64, error)
}

// Scheduler runs the daily background jobs.
type Scheduler struct {
	scheduler *gocron.Scheduler
	reminder  Reminder
	pruner    Pruner
	keepDays  int
	timeout   time.Duration
	log       *zap.Logger
}

func New(cfg *config.Config, loc *time.Location, reminder Reminder, pruner Pruner, log *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		scheduler: gocron.NewScheduler(loc),
		reminder:  reminder,
		pruner:    pruner,
		keepDays:  cfg.Stats.RetentionDays,
		timeout:   time.Minute,
		log:       log,
	}
	s.scheduler.SingletonModeAll()

	if cfg.Reminder.Enabled {
		at := fmt.Sprintf("%02d:00", cfg.Reminder.Hour)
		if _, err := s.scheduler.Every(1).Day().At(at).Tag(tagReminder).Do(s.sendReminders); err != nil {
			return nil, fmt.Errorf("failed to schedule reminders: %w", err)
		}
		log.Info("reminders scheduled", zap.String("at", at), zap.String("location", loc.String()))
	}

	if _, err := s.scheduler.Every(1).Day().At(pruneAt).Tag(tagPrune).Do(s.pruneStats); err != nil {
		return nil, fmt.Errorf("failed to schedule stats pruning: %w", err)
	}

	return s, nil
}

// Run starts the jobs and blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	s.scheduler.StartAsync()
	<-ctx.Done()
	s.scheduler.Stop()

	s.log.Info("scheduler stopped")
	return nil
}

func (s *Scheduler) sendReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	sent, err := s.reminder.SendReminders(ctx)
	if err != nil {
		s.log.Error("failed to send reminders", zap.Int("sent", sent), zap.Error(err))
	}
}

func (s *Scheduler) pruneStats() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.pruner.PruneDailyStats(ctx, s.keepDays); err != nil {
		s.log.Error("failed to prune daily stats", zap.Error(err))
	}
}
