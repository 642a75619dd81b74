package latch

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatch_Lifecycle(t *testing.T) {
	var l Latch

	assert.False(t, l.Saving())
	assert.True(t, l.TryAcquire())
	assert.True(t, l.Saving())
	assert.False(t, l.TryAcquire())

	l.Release()
	assert.False(t, l.Saving())
	assert.True(t, l.TryAcquire())
}

func TestLatch_OnlyOneWinner(t *testing.T) {
	var l Latch
	var wins atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.TryAcquire() {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestSet_Get(t *testing.T) {
	s := NewSet()

	a := s.Get(Key("course", "u1"))
	assert.Same(t, a, s.Get("course:u1"))
	assert.NotSame(t, a, s.Get(Key("course", "u2")))
	assert.NotSame(t, a, s.Get(Key("class", "u1")))
}
