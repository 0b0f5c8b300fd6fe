package cinematic

import "math"

// Phase is a stage of the fly-off timeline. Phases only move forward.
type Phase int

const (
	PhaseHolding Phase = iota
	PhaseTransitioning
	PhaseArrived
)

func (p Phase) String() string {
	switch p {
	case PhaseHolding:
		return "holding"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseArrived:
		return "arrived"
	default:
		return "unknown"
	}
}

// Transition records one phase edge taken during a tick.
type Transition struct {
	From    Phase
	To      Phase
	Elapsed float64
	X       float64
}

// Presenter is the slice of presentation state the controller talks to.
type Presenter interface {
	IsCinematicPlaying() bool
	EndCinematic()
}

// Controller advances a scripted actor along X from the elapsed scene time.
// Leaving the hold ends the cinematic on the presenter, and since the phase
// can never go back to holding that happens at most once per run.
type Controller struct {
	cfg       Config
	next      *Config
	presenter Presenter

	phase Phase
	// furthest X written since the hold ended
	x float64

	listeners []func(Transition)
}

func NewController(cfg Config, presenter Presenter) *Controller {
	return &Controller{
		cfg:       cfg,
		presenter: presenter,
		phase:     PhaseHolding,
		x:         cfg.StartX,
	}
}

func (c *Controller) Phase() Phase {
	if c == nil {
		return PhaseHolding
	}
	return c.phase
}

func (c *Controller) Config() Config {
	if c == nil {
		return DefaultConfig()
	}
	return c.cfg
}

// SetConfig replaces the timeline. It takes effect on the next Reset so a
// run in progress keeps a consistent path.
func (c *Controller) SetConfig(cfg Config) {
	if c == nil {
		return
	}
	c.next = &cfg
}

// OnTransition registers fn for every phase edge.
func (c *Controller) OnTransition(fn func(Transition)) {
	if c == nil || fn == nil {
		return
	}
	c.listeners = append(c.listeners, fn)
}

// Reset starts a new run from the hold.
func (c *Controller) Reset() {
	if c == nil {
		return
	}
	if c.next != nil {
		c.cfg = *c.next
		c.next = nil
	}
	c.phase = PhaseHolding
	c.x = c.cfg.StartX
}

// Tick advances the timeline to elapsed seconds and writes the actor's X.
// A nil actor means the visual is not attached yet: nothing happens.
// It returns the edges taken during this tick, usually none.
func (c *Controller) Tick(elapsed float64, actorX *float64) []Transition {
	if c == nil || actorX == nil {
		return nil
	}

	var taken []Transition
	if c.phase == PhaseHolding {
		if elapsed < c.cfg.HoldDuration {
			return nil
		}
		taken = append(taken, c.advance(PhaseTransitioning, elapsed, *actorX))
	}

	if c.phase == PhaseTransitioning {
		x := c.cfg.StartX + (elapsed-c.cfg.HoldDuration)*c.cfg.Speed
		x = math.Min(x, c.cfg.EndX)
		// a late or repeated elapsed value must not pull the actor back
		x = math.Max(x, c.x)
		c.x = x
		*actorX = x

		if x >= c.cfg.EndX {
			taken = append(taken, c.advance(PhaseArrived, elapsed, x))
		}
	}

	return taken
}

func (c *Controller) advance(to Phase, elapsed, x float64) Transition {
	from := c.phase
	c.phase = to

	if from == PhaseHolding && to == PhaseTransitioning {
		c.x = c.cfg.StartX
		if c.presenter != nil && c.presenter.IsCinematicPlaying() {
			c.presenter.EndCinematic()
		}
	}

	tr := Transition{From: from, To: to, Elapsed: elapsed, X: x}
	for _, fn := range c.listeners {
		fn(tr)
	}
	return tr
}
