package control

import (
	"math"

	"github.com/ayusman/mudra/internal/system"
)

type fakeInjector struct {
	mediaKeys []system.MediaKey
	keys      []string
	mediaErr  error
	keyErr    error
}

func (f *fakeInjector) SendMediaKey(key system.MediaKey) error {
	f.mediaKeys = append(f.mediaKeys, key)
	return f.mediaErr
}

func (f *fakeInjector) PressKey(key string) error {
	f.keys = append(f.keys, key)
	return f.keyErr
}

type fakeMixer struct {
	level  float64
	getErr error
	setErr error
	writes []float64
	// step quantizes applied levels when non-zero, like a device that only
	// takes whole percent.
	step float64
}

func (f *fakeMixer) Volume() (float64, error) {
	return f.level, f.getErr
}

func (f *fakeMixer) SetVolume(level float64) (float64, error) {
	if f.setErr != nil {
		return 0, f.setErr
	}
	f.writes = append(f.writes, level)
	if f.step > 0 {
		level = math.Round(level/f.step) * f.step
	}
	f.level = level
	return level, nil
}
