package presentation

// Change describes a flip of the cinematic flag.
type Change struct {
	CinematicPlaying bool
}

// Store holds the scene-wide presentation flags. The game loop is the only
// writer; systems and UI read it through the handle they were built with.
type Store struct {
	cinematicPlaying bool

	nextID    int
	listeners map[int]func(Change)
	order     []int
}

// NewStore creates a store whose cinematic flag starts at playing.
func NewStore(playing bool) *Store {
	return &Store{
		cinematicPlaying: playing,
		listeners:        make(map[int]func(Change)),
	}
}

func (s *Store) IsCinematicPlaying() bool {
	if s == nil {
		return false
	}
	return s.cinematicPlaying
}

// StartCinematic marks the intro as running again.
func (s *Store) StartCinematic() {
	s.set(true)
}

// EndCinematic clears the cinematic flag. Calling it while the flag is
// already clear does nothing.
func (s *Store) EndCinematic() {
	s.set(false)
}

func (s *Store) set(playing bool) {
	if s == nil || s.cinematicPlaying == playing {
		return
	}
	s.cinematicPlaying = playing
	change := Change{CinematicPlaying: playing}
	for _, id := range append([]int(nil), s.order...) {
		if fn, ok := s.listeners[id]; ok {
			fn(change)
		}
	}
}

// Subscribe registers fn for every real change of the flags. The returned
// func removes the listener.
func (s *Store) Subscribe(fn func(Change)) func() {
	if s == nil || fn == nil {
		return func() {}
	}
	if s.listeners == nil {
		s.listeners = make(map[int]func(Change))
	}
	s.nextID++
	id := s.nextID
	s.listeners[id] = fn
	s.order = append(s.order, id)
	return func() {
		if _, ok := s.listeners[id]; !ok {
			return
		}
		delete(s.listeners, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}
