package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/renewalhq/renewal-gateway/internal/scheduler"
)

func noopSweep(ctx context.Context) error {
	return nil
}

func TestScheduler_Start(t *testing.T) {
	tests := []struct {
		name           string
		setupScheduler func() *scheduler.Scheduler
		expectedError  error
	}{
		{
			name: "success",
			setupScheduler: func() *scheduler.Scheduler {
				return scheduler.NewScheduler(zap.NewNop(), 100*time.Millisecond, noopSweep)
			},
			expectedError: nil,
		},
		{
			name: "already running",
			setupScheduler: func() *scheduler.Scheduler {
				s := scheduler.NewScheduler(zap.NewNop(), 100*time.Millisecond, noopSweep)
				err := s.Start(context.Background())
				assert.NoError(t, err)
				return s
			},
			expectedError: scheduler.ErrSchedulerAlreadyRunning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.setupScheduler()
			defer func() {
				if s.IsRunning() {
					_ = s.Stop()
				}
			}()

			err := s.Start(context.Background())
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestScheduler_Stop(t *testing.T) {
	tests := []struct {
		name           string
		setupScheduler func() *scheduler.Scheduler
		expectedError  error
	}{
		{
			name: "success",
			setupScheduler: func() *scheduler.Scheduler {
				s := scheduler.NewScheduler(zap.NewNop(), 100*time.Millisecond, noopSweep)
				err := s.Start(context.Background())
				assert.NoError(t, err)
				return s
			},
			expectedError: nil,
		},
		{
			name: "not running",
			setupScheduler: func() *scheduler.Scheduler {
				return scheduler.NewScheduler(zap.NewNop(), 100*time.Millisecond, noopSweep)
			},
			expectedError: scheduler.ErrSchedulerNotRunning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.setupScheduler()
			err := s.Stop()
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestScheduler_SweepExecution(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	s := scheduler.NewScheduler(zap.NewNop(), 50*time.Millisecond, func(ctx context.Context) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil
	})

	err := s.Start(context.Background())
	assert.NoError(t, err)
	assert.True(t, s.IsRunning())

	time.Sleep(180 * time.Millisecond)

	err = s.Stop()
	assert.NoError(t, err)
	assert.False(t, s.IsRunning())

	mu.Lock()
	defer mu.Unlock()
	// Initial run plus at least two ticks.
	assert.GreaterOrEqual(t, calls, 3)
	assert.False(t, s.LastRun().IsZero())
}

func TestScheduler_SweepErrorsDoNotStopTheLoop(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	s := scheduler.NewScheduler(zap.NewNop(), 50*time.Millisecond, func(ctx context.Context) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return errors.New("sweep failed")
	})

	err := s.Start(context.Background())
	assert.NoError(t, err)

	time.Sleep(130 * time.Millisecond)

	err = s.Stop()
	assert.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, calls, 2)
}

func TestScheduler_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := scheduler.NewScheduler(zap.NewNop(), 50*time.Millisecond, noopSweep)

	err := s.Start(ctx)
	assert.NoError(t, err)
	assert.True(t, s.IsRunning())

	cancel()

	time.Sleep(100 * time.Millisecond)
	assert.False(t, s.IsRunning())
}

func TestScheduler_ConcurrentStart(t *testing.T) {
	s := scheduler.NewScheduler(zap.NewNop(), 50*time.Millisecond, noopSweep)

	var wg sync.WaitGroup
	unexpected := make(chan error, 5)

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Start(context.Background()); err != nil && err != scheduler.ErrSchedulerAlreadyRunning {
				unexpected <- err
			}
		}()
	}
	wg.Wait()

	assert.True(t, s.IsRunning())
	assert.Len(t, unexpected, 0)

	err := s.Stop()
	assert.NoError(t, err)
}
