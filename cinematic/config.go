package cinematic

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("cinematic: invalid config")

// Config describes the fly-off timeline. Times are in seconds, distances in
// world units.
type Config struct {
	// HoldDuration is how long the actor hovers in place before leaving.
	HoldDuration float64
	// Speed is the travel speed along X once the hold is over.
	Speed  float64
	StartX float64
	EndX   float64
}

func DefaultConfig() Config {
	return Config{
		HoldDuration: 3.0,
		Speed:        8,
		StartX:       -25,
		EndX:         50,
	}
}

func (c Config) Validate() error {
	if c.HoldDuration < 0 {
		return fmt.Errorf("%w: hold duration %v is negative", ErrInvalidConfig, c.HoldDuration)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed %v must be positive", ErrInvalidConfig, c.Speed)
	}
	if c.EndX < c.StartX {
		return fmt.Errorf("%w: end x %v is behind start x %v", ErrInvalidConfig, c.EndX, c.StartX)
	}
	return nil
}

// FlightDuration is the time spent travelling from StartX to EndX.
func (c Config) FlightDuration() float64 {
	if c.Speed <= 0 {
		return 0
	}
	return (c.EndX - c.StartX) / c.Speed
}
