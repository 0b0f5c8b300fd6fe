package overlay

import (
	"time"

	"github.com/milk9111/invasion/timer"
)

// DefaultCloseDelay matches the exit animation length of the overlay.
const DefaultCloseDelay = 300 * time.Millisecond

// Visibility is the lifecycle state of an overlay.
type Visibility int

const (
	Entering Visibility = iota
	Visible
	Closing
	Closed
)

func (v Visibility) String() string {
	switch v {
	case Entering:
		return "entering"
	case Visible:
		return "visible"
	case Closing:
		return "closing"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Scheduler runs deferred actions on the game loop.
type Scheduler interface {
	After(d time.Duration, fn func()) *timer.Handle
}

// Lifecycle drives one overlay from creation to removal. The deferred
// teardown handle belongs to the lifecycle and is cancelled by Destroy, so
// onClosed fires at most once and never after Destroy.
type Lifecycle struct {
	sched    Scheduler
	delay    time.Duration
	onClosed func()

	state     Visibility
	destroyed bool

	mountTask *timer.Handle
	closeTask *timer.Handle

	listeners []func(from, to Visibility)
}

// New creates a lifecycle in the Entering state. A non-positive delay uses
// DefaultCloseDelay.
func New(sched Scheduler, delay time.Duration, onClosed func()) *Lifecycle {
	if delay <= 0 {
		delay = DefaultCloseDelay
	}
	return &Lifecycle{
		sched:    sched,
		delay:    delay,
		onClosed: onClosed,
		state:    Entering,
	}
}

func (l *Lifecycle) State() Visibility {
	if l == nil {
		return Closed
	}
	return l.state
}

func (l *Lifecycle) Delay() time.Duration {
	if l == nil {
		return DefaultCloseDelay
	}
	return l.delay
}

// Destroyed reports whether Destroy has been called.
func (l *Lifecycle) Destroyed() bool {
	return l == nil || l.destroyed
}

// OnChange registers fn for every state change.
func (l *Lifecycle) OnChange(fn func(from, to Visibility)) {
	if l == nil || fn == nil {
		return
	}
	l.listeners = append(l.listeners, fn)
}

// Mount shows the overlay on the next scheduler pass, so the entering frame
// is drawn at least once before it becomes Visible.
func (l *Lifecycle) Mount() {
	if l == nil || l.destroyed || l.state != Entering || l.mountTask != nil {
		return
	}
	if l.sched == nil {
		l.set(Visible)
		return
	}
	l.mountTask = l.sched.After(0, func() {
		l.mountTask = nil
		if l.destroyed || l.state != Entering {
			return
		}
		l.set(Visible)
	})
}

// RequestClose starts the exit animation and schedules the teardown. Closing
// an overlay that is still entering shows it first. Repeated requests are
// ignored.
func (l *Lifecycle) RequestClose() {
	if l == nil || l.destroyed {
		return
	}
	switch l.state {
	case Entering:
		l.mountTask.Cancel()
		l.mountTask = nil
		l.set(Visible)
	case Visible:
	default:
		return
	}

	l.set(Closing)
	if l.sched == nil {
		l.finish()
		return
	}
	l.closeTask = l.sched.After(l.delay, func() {
		l.closeTask = nil
		l.finish()
	})
}

func (l *Lifecycle) finish() {
	if l.destroyed || l.state != Closing {
		return
	}
	l.set(Closed)
	if l.onClosed != nil {
		l.onClosed()
	}
}

// Destroy tears the lifecycle down. Pending work is cancelled before
// anything else so no callback can run afterwards.
func (l *Lifecycle) Destroy() {
	if l == nil || l.destroyed {
		return
	}
	l.mountTask.Cancel()
	l.closeTask.Cancel()
	l.mountTask = nil
	l.closeTask = nil
	l.destroyed = true
	l.listeners = nil
}

func (l *Lifecycle) set(to Visibility) {
	from := l.state
	if to <= from {
		return
	}
	l.state = to
	for _, fn := range l.listeners {
		fn(from, to)
	}
}
