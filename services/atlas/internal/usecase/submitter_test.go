package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"atlas/pkg/latch"
	"atlas/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitter_RejectsWhileSaving(t *testing.T) {
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	s := NewSubmitter(latch.NewSet(), time.Second, logger.New()).WithSleep(blockingSleep(started, release))

	calls := 0
	persist := func(ctx context.Context) error { calls++; return nil }

	done, err := s.Submit(context.Background(), "course:u1", nil, persist)
	require.NoError(t, err)
	<-started

	_, err = s.Submit(context.Background(), "course:u1", nil, persist)
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	assert.NoError(t, <-done)
	assert.Equal(t, 1, calls)

	// the latch is free again once the future resolved
	assert.NoError(t, s.Run(context.Background(), "course:u1", nil, persist))
	assert.Equal(t, 2, calls)
}

func TestSubmitter_KeysAreIndependent(t *testing.T) {
	started := make(chan struct{}, 2)
	release := make(chan struct{})
	s := NewSubmitter(latch.NewSet(), time.Second, logger.New()).WithSleep(blockingSleep(started, release))
	noop := func(ctx context.Context) error { return nil }

	a, err := s.Submit(context.Background(), "course:u1", nil, noop)
	require.NoError(t, err)
	b, err := s.Submit(context.Background(), "course:u2", nil, noop)
	require.NoError(t, err)
	<-started
	<-started

	close(release)
	assert.NoError(t, <-a)
	assert.NoError(t, <-b)
}

func TestSubmitter_ValidationFailureReleasesLatch(t *testing.T) {
	s := NewSubmitter(latch.NewSet(), 0, logger.New())
	invalid := errors.New("invalid")
	persisted := false

	err := s.Run(context.Background(), "profile:u1",
		func() error { return invalid },
		func(ctx context.Context) error { persisted = true; return nil })
	assert.ErrorIs(t, err, invalid)
	assert.False(t, persisted)

	err = s.Run(context.Background(), "profile:u1", nil, func(ctx context.Context) error { persisted = true; return nil })
	assert.NoError(t, err)
	assert.True(t, persisted)
}

func TestSubmitter_CancelDuringDelayAbortsSave(t *testing.T) {
	s := NewSubmitter(latch.NewSet(), time.Hour, logger.New())
	ctx, cancel := context.WithCancel(context.Background())
	persisted := false

	done, err := s.Submit(ctx, "payment:u1", nil, func(ctx context.Context) error { persisted = true; return nil })
	require.NoError(t, err)
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
	assert.False(t, persisted)

	// the latch was released, so a new submission is accepted
	ctx2, cancel2 := context.WithCancel(context.Background())
	again, err := s.Submit(ctx2, "payment:u1", nil, func(ctx context.Context) error { return nil })
	require.NoError(t, err)
	cancel2()
	<-again
}

func TestSubmitter_PersistErrorIsReturned(t *testing.T) {
	s := NewSubmitter(latch.NewSet(), 0, logger.New())
	boom := errors.New("disk full")

	err := s.Run(context.Background(), "class:u1", nil, func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}
