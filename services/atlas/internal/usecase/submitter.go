package usecase

import (
	"context"
	"time"

	"atlas/pkg/latch"
	"atlas/pkg/logger"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Submitter runs a form submission: latch, validate, then persist after a delay.
type Submitter struct {
	latches *latch.Set
	delay   time.Duration
	sleep   SleepFunc
	logger  *logger.Logger
}

func NewSubmitter(latches *latch.Set, delay time.Duration, log *logger.Logger) *Submitter {
	return &Submitter{
		latches: latches,
		delay:   delay,
		sleep:   sleepContext,
		logger:  log,
	}
}

// WithSleep replaces the delay function. Tests use it to hold a save open.
func (s *Submitter) WithSleep(sleep SleepFunc) *Submitter {
	s.sleep = sleep
	return s
}

// Submit returns ErrSubmitInFlight while the form identified by key is saving.
// Otherwise it validates synchronously and persists in the background. The
// returned channel yields the outcome once, after the latch has been released.
// Cancelling ctx during the delay aborts the save; a started save completes.
func (s *Submitter) Submit(ctx context.Context, key string, validate func() error, persist func(ctx context.Context) error) (<-chan error, error) {
	l := s.latches.Get(key)
	if !l.TryAcquire() {
		s.logger.Info("Submit ignored for %s: save already in progress", key)
		return nil, ErrSubmitInFlight
	}

	if validate != nil {
		if err := validate(); err != nil {
			l.Release()
			return nil, err
		}
	}

	done := make(chan error, 1)
	go func() {
		err := s.sleep(ctx, s.delay)
		if err == nil {
			err = persist(context.WithoutCancel(ctx))
		}
		if err != nil {
			s.logger.Warn("Save for %s failed: %v", key, err)
		}
		l.Release()
		done <- err
		close(done)
	}()

	return done, nil
}

// Run submits and waits for the outcome.
func (s *Submitter) Run(ctx context.Context, key string, validate func() error, persist func(ctx context.Context) error) error {
	done, err := s.Submit(ctx, key, validate, persist)
	if err != nil {
		return err
	}
	return <-done
}
