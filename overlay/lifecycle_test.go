package overlay

import (
	"testing"
	"time"

	"github.com/milk9111/invasion/timer"
	"github.com/stretchr/testify/require"
)

type harness struct {
	clock  *timer.Clock
	sched  *timer.Scheduler
	closed []time.Duration
}

func newHarness() *harness {
	clock := timer.NewClock()
	return &harness{clock: clock, sched: timer.NewScheduler(clock)}
}

func (h *harness) lifecycle() *Lifecycle {
	return New(h.sched, DefaultCloseDelay, func() {
		h.closed = append(h.closed, h.clock.Elapsed())
	})
}

// frame advances one 60 TPS tick and runs due callbacks.
func (h *harness) frame() {
	h.clock.Advance(timer.TickDuration(60))
	h.sched.Update()
}

func (h *harness) run(d time.Duration) {
	end := h.clock.Elapsed() + d
	for h.clock.Elapsed() < end {
		h.frame()
	}
}

func TestLifecycleMountWaitsOneFrame(t *testing.T) {
	h := newHarness()
	l := h.lifecycle()

	l.Mount()
	require.Equal(t, Entering, l.State())

	h.frame()
	require.Equal(t, Visible, l.State())
}

func TestLifecycleDoubleCloseFiresOnce(t *testing.T) {
	h := newHarness()
	l := h.lifecycle()
	l.Mount()
	h.frame()

	requested := h.clock.Elapsed()
	l.RequestClose()
	l.RequestClose()
	require.Equal(t, Closing, l.State())

	h.run(time.Second)
	require.Equal(t, Closed, l.State())
	require.Len(t, h.closed, 1)
	require.GreaterOrEqual(t, h.closed[0]-requested, DefaultCloseDelay)

	l.RequestClose()
	h.run(time.Second)
	require.Len(t, h.closed, 1)
}

func TestLifecycleDestroyBeforeDelayCancels(t *testing.T) {
	h := newHarness()
	l := h.lifecycle()
	l.Mount()
	h.frame()

	l.RequestClose()
	h.run(100 * time.Millisecond)
	l.Destroy()

	h.run(time.Second)
	require.Empty(t, h.closed)
	require.Equal(t, Closing, l.State())
	require.True(t, l.Destroyed())
	require.Zero(t, h.sched.Len())
}

func TestLifecycleDestroyWhileEntering(t *testing.T) {
	h := newHarness()
	l := h.lifecycle()
	l.Mount()
	l.Destroy()

	h.run(time.Second)
	require.Equal(t, Entering, l.State())

	l.RequestClose()
	h.run(time.Second)
	require.Empty(t, h.closed)
}

func TestLifecycleMountThenImmediateClose(t *testing.T) {
	h := newHarness()
	l := h.lifecycle()

	var edges [][2]Visibility
	l.OnChange(func(from, to Visibility) { edges = append(edges, [2]Visibility{from, to}) })

	l.Mount()
	l.RequestClose()

	h.run(time.Second)
	require.Equal(t, [][2]Visibility{
		{Entering, Visible},
		{Visible, Closing},
		{Closing, Closed},
	}, edges)
	require.Len(t, h.closed, 1)
}

func TestLifecycleCloseAfterDelayNotBefore(t *testing.T) {
	h := newHarness()
	l := h.lifecycle()
	l.Mount()
	h.frame()

	l.RequestClose()
	h.run(DefaultCloseDelay - 20*time.Millisecond)
	require.Empty(t, h.closed)
	h.run(40 * time.Millisecond)
	require.Len(t, h.closed, 1)
}

func TestLifecycleDefaultsAndNil(t *testing.T) {
	l := New(nil, 0, nil)
	require.Equal(t, DefaultCloseDelay, l.Delay())

	// without a scheduler everything happens inline
	l.Mount()
	require.Equal(t, Visible, l.State())
	l.RequestClose()
	require.Equal(t, Closed, l.State())

	var nilLife *Lifecycle
	nilLife.Mount()
	nilLife.RequestClose()
	nilLife.Destroy()
	require.Equal(t, Closed, nilLife.State())
}

func TestVisibilityString(t *testing.T) {
	require.Equal(t, "entering", Entering.String())
	require.Equal(t, "visible", Visible.String())
	require.Equal(t, "closing", Closing.String())
	require.Equal(t, "closed", Closed.String())
	require.Equal(t, "unknown", Visibility(7).String())
}
