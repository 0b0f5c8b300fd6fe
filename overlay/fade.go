package overlay

import "time"

// FadeAlpha is the overlay opacity for a state entered since ago, with a
// linear fade of length fade. Entering draws fully transparent so the first
// frame fades in from nothing.
func FadeAlpha(state Visibility, since, fade time.Duration) float64 {
	t := 1.0
	if fade > 0 {
		t = float64(since) / float64(fade)
		t = min(max(t, 0), 1)
	}

	switch state {
	case Visible:
		return t
	case Closing:
		return 1 - t
	default:
		return 0
	}
}
