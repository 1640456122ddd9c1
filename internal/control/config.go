// Package control turns per-frame gesture labels into media actions and
// volume changes.
package control

import (
	"time"

	"github.com/ayusman/mudra/internal/gesture"
)

// Config holds the controller tuning.
type Config struct {
	// WindowSize is the number of frames the majority vote runs over.
	WindowSize int

	// MinDelay is the cooldown between two dispatched actions.
	MinDelay time.Duration

	// VolumeThreshold is the minimum change in level before the mixer is written.
	VolumeThreshold float64

	// VolumeOffset and VolumeGain map average hand height to a level:
	// level = clamp(VolumeOffset - VolumeGain*avgY, 0, 1).
	VolumeOffset float64
	VolumeGain   float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		WindowSize:      gesture.DefaultWindowSize,
		MinDelay:        2 * time.Second,
		VolumeThreshold: 0.02,
		VolumeOffset:    1.3,
		VolumeGain:      2.0,
	}
}
