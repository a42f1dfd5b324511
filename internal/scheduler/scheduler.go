package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// SweepFunc is one full maintenance pass: counter rollovers, overdue
// stamping, health probes.
type SweepFunc func(context.Context) error

// Scheduler runs the sweep once on start and then on a fixed interval.
// It is safe for concurrent Start/Stop/IsRunning calls.
type Scheduler struct {
	logger   *zap.Logger
	interval time.Duration
	sweep    SweepFunc

	mu      sync.RWMutex
	running bool
	lastRun time.Time
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewScheduler creates a scheduler that will invoke sweep every interval.
func NewScheduler(logger *zap.Logger, interval time.Duration, sweep SweepFunc) *Scheduler {
	return &Scheduler{
		logger:   logger,
		interval: interval,
		sweep:    sweep,
	}
}

// Start launches the sweep loop. It fails if the loop is already running.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrSchedulerAlreadyRunning
	}

	s.running = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.loop(ctx, s.stopCh, s.doneCh)

	s.logger.Info("Maintenance scheduler started", zap.Duration("interval", s.interval))
	return nil
}

// Stop signals the loop and waits for the in-flight sweep to finish.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	close(stopCh)
	<-doneCh

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	s.logger.Info("Maintenance scheduler stopped")
	return nil
}

// IsRunning reports whether the sweep loop is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// LastRun returns when the most recent sweep started; zero before the
// first run.
func (s *Scheduler) LastRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun
}

func (s *Scheduler) loop(ctx context.Context, stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	// First sweep fires immediately so a restart does not wait a full
	// interval to catch up on counter resets.
	s.runSweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Maintenance scheduler context canceled")
			return
		case <-stopCh:
			return
		case <-ticker.C:
			s.runSweep(ctx)
		}
	}
}

func (s *Scheduler) runSweep(ctx context.Context) {
	s.mu.Lock()
	s.lastRun = time.Now()
	s.mu.Unlock()

	sweepCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	start := time.Now()
	if err := s.sweep(sweepCtx); err != nil {
		s.logger.Error("Maintenance sweep failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return
	}

	s.logger.Info("Maintenance sweep completed", zap.Duration("elapsed", time.Since(start)))
}
