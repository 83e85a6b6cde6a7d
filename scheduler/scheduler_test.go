package scheduler_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BonheurByiringiro/PACMAN-Game/scheduler"
	"github.com/BonheurByiringiro/PACMAN-Game/testutil"
)

func TestEvery_Fires(t *testing.T) {
	s := scheduler.New(testutil.Logger(t))
	defer s.Stop()

	var count int64
	s.Every("tick", 10*time.Millisecond, func() {
		atomic.AddInt64(&count, 1)
	})

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&count) >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestEvery_ReplacesExistingName(t *testing.T) {
	s := scheduler.New(nil)
	defer s.Stop()

	var first, second int64
	s.Every("tick", 10*time.Millisecond, func() { atomic.AddInt64(&first, 1) })
	s.Every("tick", 10*time.Millisecond, func() { atomic.AddInt64(&second, 1) })

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&second) >= 3
	}, time.Second, 5*time.Millisecond)

	old := atomic.LoadInt64(&first)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, old, atomic.LoadInt64(&first), "replaced task must stop firing")
	assert.Equal(t, []string{"tick"}, s.Names())
}

func TestRemove_StopsTask(t *testing.T) {
	s := scheduler.New(nil)
	defer s.Stop()

	var count int64
	s.Every("tick", 10*time.Millisecond, func() { atomic.AddInt64(&count, 1) })

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&count) >= 1
	}, time.Second, 5*time.Millisecond)

	s.Remove("tick")
	assert.Empty(t, s.Names())

	old := atomic.LoadInt64(&count)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, old, atomic.LoadInt64(&count))

	s.Remove("tick") // unknown name is fine
}

func TestStop_HaltsEverythingAndIsIdempotent(t *testing.T) {
	s := scheduler.New(nil)

	var a, b int64
	s.Every("a", 10*time.Millisecond, func() { atomic.AddInt64(&a, 1) })
	s.Every("b", 10*time.Millisecond, func() { atomic.AddInt64(&b, 1) })

	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&a) >= 1 && atomic.LoadInt64(&b) >= 1
	}, time.Second, 5*time.Millisecond)

	s.Stop()
	s.Stop()

	oldA, oldB := atomic.LoadInt64(&a), atomic.LoadInt64(&b)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, oldA, atomic.LoadInt64(&a))
	assert.Equal(t, oldB, atomic.LoadInt64(&b))
}

func TestRunIsolated_SurvivesPanic(t *testing.T) {
	s := scheduler.New(testutil.Logger(t))
	defer s.Stop()

	var after int64
	s.Every("bad", 10*time.Millisecond, func() {
		if atomic.AddInt64(&after, 1) == 1 {
			panic("boom")
		}
	})

	// The task keeps firing after the first run panics.
	assert.Eventually(t, func() bool {
		return atomic.LoadInt64(&after) >= 3
	}, time.Second, 5*time.Millisecond)
}
