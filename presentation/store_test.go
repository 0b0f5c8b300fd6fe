package presentation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreEndCinematicIsIdempotent(t *testing.T) {
	s := NewStore(true)

	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	s.EndCinematic()
	s.EndCinematic()

	require.False(t, s.IsCinematicPlaying())
	require.Equal(t, []Change{{CinematicPlaying: false}}, changes)
}

func TestStoreRestart(t *testing.T) {
	s := NewStore(false)

	count := 0
	s.Subscribe(func(Change) { count++ })

	s.StartCinematic()
	require.True(t, s.IsCinematicPlaying())
	s.EndCinematic()
	require.False(t, s.IsCinematicPlaying())
	require.Equal(t, 2, count)
}

func TestStoreUnsubscribe(t *testing.T) {
	s := NewStore(true)

	first, second := 0, 0
	unsubscribe := s.Subscribe(func(Change) { first++ })
	s.Subscribe(func(Change) { second++ })

	unsubscribe()
	unsubscribe()
	s.EndCinematic()

	require.Equal(t, 0, first)
	require.Equal(t, 1, second)
}

func TestStoreNil(t *testing.T) {
	var s *Store
	require.False(t, s.IsCinematicPlaying())
	s.EndCinematic()
	s.Subscribe(func(Change) {})()
}

func TestProgressInMemory(t *testing.T) {
	p := NewProgress(nil)
	require.False(t, p.IntroSeen())

	require.NoError(t, p.MarkIntroSeen())
	require.NoError(t, p.MarkIntroSeen())
	require.True(t, p.IntroSeen())
	require.Equal(t, 2, p.IntroRuns())

	// nothing persisted, so a reload forgets
	require.NoError(t, p.Load())
	require.False(t, p.IntroSeen())
}
