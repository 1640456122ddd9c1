package control

import (
	"log/slog"
	"math"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/system"
)

// VolumeMapper maps the height of an open palm to the master volume.
type VolumeMapper struct {
	mixer     system.Mixer
	offset    float64
	gain      float64
	threshold float64
	last      float64
	logger    *slog.Logger
}

// NewVolumeMapper creates a VolumeMapper and seeds the last known level
// from the mixer. A failed read is logged and seeds 0.
func NewVolumeMapper(mixer system.Mixer, cfg Config, logger *slog.Logger) *VolumeMapper {
	if logger == nil {
		logger = slog.Default()
	}

	v := &VolumeMapper{
		mixer:     mixer,
		offset:    cfg.VolumeOffset,
		gain:      cfg.VolumeGain,
		threshold: cfg.VolumeThreshold,
		logger:    logger,
	}

	if mixer != nil {
		level, err := mixer.Volume()
		if err != nil {
			logger.Warn("could not read master volume", "error", err)
		} else {
			v.last = level
		}
	}

	return v
}

// LevelFor maps an average landmark height to a volume level in [0,1].
// Higher hands (smaller Y) give louder levels.
func (v *VolumeMapper) LevelFor(avgY float64) float64 {
	return clamp(v.offset-v.gain*avgY, 0, 1)
}

// Last returns the last level the mixer reported after a write.
func (v *VolumeMapper) Last() float64 {
	return v.last
}

// Apply computes the level for hand and writes it when it differs from the
// last written level by more than the threshold. It returns the computed
// level and whether the mixer was written. The last level only changes on a
// successful write, and then to the level the mixer applied.
func (v *VolumeMapper) Apply(hand *detector.HandLandmarks) (float64, bool, error) {
	level := v.LevelFor(hand.AverageY())

	if math.Abs(level-v.last) <= v.threshold {
		return level, false, nil
	}
	if v.mixer == nil {
		return level, false, nil
	}

	applied, err := v.mixer.SetVolume(level)
	if err != nil {
		return level, false, err
	}

	v.last = applied
	v.logger.Info("Volume", "percent", int(math.Round(applied*100)))
	return level, true, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
