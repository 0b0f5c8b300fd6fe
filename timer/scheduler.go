package timer

import (
	"sort"
	"time"
)

// TimeSource reports the current position of a clock.
type TimeSource interface {
	Elapsed() time.Duration
}

// Handle refers to a single scheduled callback. It is owned by whoever called
// After and stays valid after the callback fires or is cancelled.
type Handle struct {
	due   time.Duration
	seq   uint64
	fn    func()
	state handleState
}

type handleState int

const (
	handlePending handleState = iota
	handleFired
	handleCancelled
)

// Cancel prevents the callback from running. It reports whether the callback
// was still pending.
func (h *Handle) Cancel() bool {
	if h == nil || h.state != handlePending {
		return false
	}
	h.state = handleCancelled
	h.fn = nil
	return true
}

// Pending reports whether the callback has neither fired nor been cancelled.
func (h *Handle) Pending() bool {
	return h != nil && h.state == handlePending
}

// Fired reports whether the callback already ran.
func (h *Handle) Fired() bool {
	return h != nil && h.state == handleFired
}

// Scheduler runs single-shot delayed callbacks on the goroutine that calls
// Update. Nothing runs in the background: a callback fires during the first
// Update at which its due time has been reached, so it never runs early but
// may run late when the loop stalls.
type Scheduler struct {
	clock   TimeSource
	pending []*Handle
	seq     uint64
	// callbacks added during Update wait for the next Update
	updating bool
	deferred []*Handle
}

func NewScheduler(clock TimeSource) *Scheduler {
	return &Scheduler{clock: clock}
}

func (s *Scheduler) now() time.Duration {
	if s == nil || s.clock == nil {
		return 0
	}
	return s.clock.Elapsed()
}

// After schedules fn to run once d after the current clock position.
func (s *Scheduler) After(d time.Duration, fn func()) *Handle {
	if s == nil || fn == nil {
		return nil
	}
	if d < 0 {
		d = 0
	}
	s.seq++
	h := &Handle{due: s.now() + d, seq: s.seq, fn: fn}
	if s.updating {
		s.deferred = append(s.deferred, h)
		return h
	}
	s.pending = append(s.pending, h)
	return h
}

// Update fires every pending callback whose due time has been reached, in due
// order. Ties run in scheduling order.
func (s *Scheduler) Update() {
	if s == nil {
		return
	}
	now := s.now()

	s.updating = true
	due := s.collectDue(now)
	for _, h := range due {
		// an earlier callback in this batch may have cancelled it
		if h.state != handlePending {
			continue
		}
		fn := h.fn
		h.state = handleFired
		h.fn = nil
		fn()
	}
	s.updating = false

	if len(s.deferred) > 0 {
		s.pending = append(s.pending, s.deferred...)
		s.deferred = nil
	}
}

func (s *Scheduler) collectDue(now time.Duration) []*Handle {
	var due []*Handle
	kept := s.pending[:0]
	for _, h := range s.pending {
		switch {
		case h.state != handlePending:
		case h.due <= now:
			due = append(due, h)
		default:
			kept = append(kept, h)
		}
	}
	for i := len(kept); i < len(s.pending); i++ {
		s.pending[i] = nil
	}
	s.pending = kept

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	return due
}

// Len returns the number of callbacks still waiting to run.
func (s *Scheduler) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, h := range s.pending {
		if h.Pending() {
			n++
		}
	}
	for _, h := range s.deferred {
		if h.Pending() {
			n++
		}
	}
	return n
}
