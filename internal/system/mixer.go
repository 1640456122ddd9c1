package system

import (
	"fmt"
	"math"

	"github.com/itchyny/volume-go"
)

// Mixer reads and writes the master volume as a scalar in [0,1].
type Mixer interface {
	Volume() (float64, error)
	// SetVolume writes level and returns the level the device now reports,
	// which may differ from the request by the device's precision.
	SetVolume(level float64) (float64, error)
}

// OSMixer drives the default output device through volume-go.
// The underlying API works in whole percent, so levels are rounded.
type OSMixer struct {
	get func() (int, error)
	set func(int) error
}

// NewOSMixer creates a Mixer for the default output device.
func NewOSMixer() *OSMixer {
	return &OSMixer{
		get: volume.GetVolume,
		set: volume.SetVolume,
	}
}

// Volume returns the current master volume.
func (m *OSMixer) Volume() (float64, error) {
	percent, err := m.get()
	if err != nil {
		return 0, fmt.Errorf("get volume: %w", err)
	}
	return fromPercent(percent), nil
}

// SetVolume sets the master volume and returns the whole-percent level that
// was applied. Levels outside [0,1] are clamped.
func (m *OSMixer) SetVolume(level float64) (float64, error) {
	percent := toPercent(level)
	if err := m.set(percent); err != nil {
		return 0, fmt.Errorf("set volume: %w", err)
	}
	return fromPercent(percent), nil
}

func toPercent(level float64) int {
	return int(math.Round(clamp(level, 0, 1) * 100))
}

func fromPercent(percent int) float64 {
	return clamp(float64(percent)/100, 0, 1)
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
