package cinematic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakePresenter struct {
	playing bool
	ends    int
}

func (f *fakePresenter) IsCinematicPlaying() bool { return f.playing }

func (f *fakePresenter) EndCinematic() {
	f.ends++
	f.playing = false
}

func TestControllerDefaultTimeline(t *testing.T) {
	p := &fakePresenter{playing: true}
	c := NewController(DefaultConfig(), p)
	x := -25.0

	cases := []struct {
		elapsed float64
		wantX   float64
		phase   Phase
	}{
		{0, -25, PhaseHolding},
		{2.999, -25, PhaseHolding},
		{3.0, -25, PhaseTransitioning},
		{4.0, -17, PhaseTransitioning},
		{12.375, 50, PhaseArrived},
		{20, 50, PhaseArrived},
	}
	for _, tc := range cases {
		c.Tick(tc.elapsed, &x)
		require.Equal(t, tc.wantX, x, "elapsed=%v", tc.elapsed)
		require.Equal(t, tc.phase, c.Phase(), "elapsed=%v", tc.elapsed)
	}
	require.Equal(t, 1, p.ends)
}

func TestControllerEndsCinematicOnce(t *testing.T) {
	p := &fakePresenter{playing: true}
	c := NewController(DefaultConfig(), p)
	x := 0.0

	for i := 0; i < 600; i++ {
		c.Tick(float64(i)/60, &x)
		// something else keeps flipping the flag back on
		if i > 200 {
			p.playing = true
		}
	}
	require.Equal(t, 1, p.ends)
}

func TestControllerSkipsEndWhenNotPlaying(t *testing.T) {
	p := &fakePresenter{playing: false}
	c := NewController(DefaultConfig(), p)
	x := -25.0

	taken := c.Tick(3.5, &x)
	require.Len(t, taken, 1)
	require.Equal(t, PhaseTransitioning, taken[0].To)
	require.Zero(t, p.ends)
	require.Equal(t, -21.0, x)
}

func TestControllerNilActorIsNoop(t *testing.T) {
	p := &fakePresenter{playing: true}
	c := NewController(DefaultConfig(), p)

	require.Nil(t, c.Tick(10, nil))
	require.Equal(t, PhaseHolding, c.Phase())
	require.Zero(t, p.ends)

	// once the actor shows up the run picks up from the current time
	x := -25.0
	c.Tick(10, &x)
	require.Equal(t, 31.0, x)
	require.Equal(t, 1, p.ends)
}

func TestControllerNeverRegresses(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	x := -25.0

	c.Tick(5, &x)
	require.Equal(t, -9.0, x)

	c.Tick(4, &x)
	require.Equal(t, -9.0, x)
	require.Equal(t, PhaseTransitioning, c.Phase())

	c.Tick(1, &x)
	require.Equal(t, -9.0, x)
	require.Equal(t, PhaseTransitioning, c.Phase())

	c.Tick(6, &x)
	require.Equal(t, -1.0, x)
}

func TestControllerPositionMonotonicAndBounded(t *testing.T) {
	cfg := DefaultConfig()
	c := NewController(cfg, nil)
	x := cfg.StartX
	prev := x

	for i := 0; i <= 2000; i++ {
		c.Tick(float64(i)*0.01, &x)
		if c.Phase() != PhaseHolding {
			require.GreaterOrEqual(t, x, prev)
		}
		require.LessOrEqual(t, x, cfg.EndX)
		prev = x
	}
	require.Equal(t, PhaseArrived, c.Phase())
}

func TestControllerLargeJumpTakesBothEdges(t *testing.T) {
	c := NewController(DefaultConfig(), nil)

	var seen []Transition
	c.OnTransition(func(tr Transition) { seen = append(seen, tr) })

	x := -25.0
	taken := c.Tick(100, &x)
	require.Equal(t, 50.0, x)
	require.Equal(t, seen, taken)
	require.Len(t, taken, 2)
	require.Equal(t, PhaseHolding, taken[0].From)
	require.Equal(t, PhaseTransitioning, taken[0].To)
	require.Equal(t, PhaseArrived, taken[1].To)

	require.Nil(t, c.Tick(200, &x))
}

func TestControllerResetRearms(t *testing.T) {
	p := &fakePresenter{playing: true}
	c := NewController(DefaultConfig(), p)
	x := -25.0

	c.Tick(20, &x)
	require.Equal(t, 1, p.ends)

	p.playing = true
	c.SetConfig(Config{HoldDuration: 1, Speed: 10, StartX: 0, EndX: 5})
	require.Equal(t, DefaultConfig(), c.Config())

	c.Reset()
	x = 0
	require.Equal(t, PhaseHolding, c.Phase())
	c.Tick(1.2, &x)
	require.InDelta(t, 2.0, x, 1e-9)
	require.Equal(t, 2, p.ends)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	bad := []Config{
		{HoldDuration: -1, Speed: 1, EndX: 1},
		{HoldDuration: 1, Speed: 0, EndX: 1},
		{HoldDuration: 1, Speed: 1, StartX: 5, EndX: 1},
	}
	for _, cfg := range bad {
		err := cfg.Validate()
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrInvalidConfig))
	}

	require.InDelta(t, 9.375, DefaultConfig().FlightDuration(), 1e-9)
}

func TestBeamOpacityBounds(t *testing.T) {
	b := DefaultBeamConfig()
	require.InDelta(t, 0.3, b.Opacity(0), 1e-9)
	for i := 0; i < 1000; i++ {
		o := b.Opacity(float64(i) * 0.037)
		require.GreaterOrEqual(t, o, 0.1-1e-9)
		require.LessOrEqual(t, o, 0.5+1e-9)
	}
}

func TestPhaseString(t *testing.T) {
	require.Equal(t, "holding", PhaseHolding.String())
	require.Equal(t, "transitioning", PhaseTransitioning.String())
	require.Equal(t, "arrived", PhaseArrived.String())
	require.Equal(t, "unknown", Phase(9).String())
}
