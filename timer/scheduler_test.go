package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClockIgnoresNegativeSteps(t *testing.T) {
	c := NewClock()
	c.Advance(500 * time.Millisecond)
	c.Advance(-time.Second)
	require.Equal(t, 500*time.Millisecond, c.Elapsed())
	require.InDelta(t, 0.5, c.Seconds(), 1e-9)

	c.Reset()
	require.Zero(t, c.Elapsed())
}

func TestTickDuration(t *testing.T) {
	require.Equal(t, time.Second/60, TickDuration(0))
	require.Equal(t, time.Second/30, TickDuration(30))
}

func TestSchedulerFiresOnceWhenDue(t *testing.T) {
	clock := NewClock()
	s := NewScheduler(clock)

	calls := 0
	h := s.After(300*time.Millisecond, func() { calls++ })
	require.True(t, h.Pending())

	clock.Advance(299 * time.Millisecond)
	s.Update()
	require.Equal(t, 0, calls)

	clock.Advance(time.Millisecond)
	s.Update()
	require.Equal(t, 1, calls)
	require.True(t, h.Fired())

	clock.Advance(time.Second)
	s.Update()
	require.Equal(t, 1, calls)
	require.Zero(t, s.Len())
}

func TestSchedulerCancel(t *testing.T) {
	clock := NewClock()
	s := NewScheduler(clock)

	fired := false
	h := s.After(100*time.Millisecond, func() { fired = true })
	require.True(t, h.Cancel())
	require.False(t, h.Cancel())

	clock.Advance(time.Second)
	s.Update()
	require.False(t, fired)
	require.False(t, h.Pending())
	require.False(t, h.Fired())
}

func TestSchedulerOrdersByDueTime(t *testing.T) {
	clock := NewClock()
	s := NewScheduler(clock)

	var order []string
	s.After(200*time.Millisecond, func() { order = append(order, "late") })
	s.After(100*time.Millisecond, func() { order = append(order, "early") })
	s.After(100*time.Millisecond, func() { order = append(order, "early-second") })

	clock.Advance(time.Second)
	s.Update()
	require.Equal(t, []string{"early", "early-second", "late"}, order)
}

func TestSchedulerCallbackCanCancelSibling(t *testing.T) {
	clock := NewClock()
	s := NewScheduler(clock)

	var second *Handle
	secondRan := false
	s.After(10*time.Millisecond, func() { second.Cancel() })
	second = s.After(20*time.Millisecond, func() { secondRan = true })

	clock.Advance(time.Second)
	s.Update()
	require.False(t, secondRan)
}

func TestSchedulerZeroDelayDuringUpdateWaitsForNextPass(t *testing.T) {
	clock := NewClock()
	s := NewScheduler(clock)

	inner := 0
	s.After(0, func() {
		s.After(0, func() { inner++ })
	})

	s.Update()
	require.Equal(t, 0, inner)
	require.Equal(t, 1, s.Len())

	s.Update()
	require.Equal(t, 1, inner)
}

func TestSchedulerNilSafe(t *testing.T) {
	var s *Scheduler
	require.Nil(t, s.After(time.Second, func() {}))
	s.Update()
	require.Zero(t, s.Len())

	var h *Handle
	require.False(t, h.Cancel())
	require.False(t, h.Pending())
}
