package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DanRulev/vocabdrill/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeJobs struct {
	mu        sync.Mutex
	reminders int
	keepDays  []int
	err       error
}

func (f *fakeJobs) SendReminders(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.reminders++
	return 1, f.err
}

func (f *fakeJobs) PruneDailyStats(_ context.Context, keepDays int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.keepDays = append(f.keepDays, keepDays)
	return 3, f.err
}

func testConfig(enabled bool) *config.Config {
	return &config.Config{
		Reminder: config.ReminderConfig{Enabled: enabled, Hour: 19},
		Stats:    config.StatsConfig{RetentionDays: 90},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		enabled       bool
		wantReminders int
	}{
		{name: "reminders enabled", enabled: true, wantReminders: 1},
		{name: "reminders disabled", enabled: false, wantReminders: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jobs := &fakeJobs{}
			s, err := New(testConfig(tt.enabled), time.UTC, jobs, jobs, zap.NewNop())
			require.NoError(t, err)

			reminders, _ := s.scheduler.FindJobsByTag(tagReminder)
			assert.Len(t, reminders, tt.wantReminders)

			prune, err := s.scheduler.FindJobsByTag(tagPrune)
			require.NoError(t, err)
			assert.Len(t, prune, 1)
		})
	}
}

func TestScheduler_Jobs(t *testing.T) {
	t.Parallel()

	jobs := &fakeJobs{}
	s, err := New(testConfig(true), time.UTC, jobs, jobs, zap.NewNop())
	require.NoError(t, err)

	s.sendReminders()
	s.pruneStats()

	assert.Equal(t, 1, jobs.reminders)
	assert.Equal(t, []int{90}, jobs.keepDays)

	jobs.err = errors.New("db down")
	s.sendReminders()
	s.pruneStats()

	assert.Equal(t, 2, jobs.reminders)
}

func TestScheduler_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	jobs := &fakeJobs{}
	s, err := New(testConfig(false), time.UTC, jobs, jobs, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
