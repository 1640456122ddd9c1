package control

import (
	"log/slog"
	"time"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/system"
)

// Result summarizes what the controller did with one frame.
type Result struct {
	// Label is the raw per-frame label, gesture.None without a hand.
	Label   gesture.Label
	Fingers gesture.FingerState

	// Stable is the majority label, valid when Stabilized is true.
	Stable     gesture.Label
	Stabilized bool

	// Event is set when the dispatcher fired on this frame.
	Event *Event

	VolumeLevel   float64
	VolumeWritten bool
}

// Controller owns the state that lives across frames: the smoothing
// window, the action cooldown and the last written volume.
//
// It is driven by a single loop and is not safe for concurrent use.
type Controller struct {
	smoother   *gesture.Smoother
	dispatcher *Dispatcher
	volume     *VolumeMapper
	logger     *slog.Logger
}

// New creates a Controller.
func New(cfg Config, injector system.Injector, mixer system.Mixer, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		smoother:   gesture.NewSmoother(cfg.WindowSize),
		dispatcher: NewDispatcher(injector, cfg.MinDelay, logger),
		volume:     NewVolumeMapper(mixer, cfg, logger),
		logger:     logger,
	}
}

// Process runs one frame through the controller. hand is nil when no hand
// was detected; such frames leave the window untouched but a full window is
// still evaluated against the cooldown.
func (c *Controller) Process(hand *detector.HandLandmarks, now time.Time) Result {
	res := Result{Label: gesture.None}

	if hand != nil {
		res.Fingers = gesture.Extract(hand)
		res.Label = gesture.Classify(res.Fingers)
		c.smoother.Push(res.Label)

		if res.Label == gesture.OpenPalm {
			level, written, err := c.volume.Apply(hand)
			if err != nil {
				c.logger.Warn("volume change failed", "level", level, "error", err)
			}
			res.VolumeLevel, res.VolumeWritten = level, written
		}
	}

	stable, ok := c.smoother.Stable()
	if !ok {
		return res
	}
	res.Stable, res.Stabilized = stable, true

	if ev, fired := c.dispatcher.Dispatch(stable, now); fired {
		c.smoother.Reset()
		res.Event = ev
	}

	return res
}

// Smoother returns the smoothing window.
func (c *Controller) Smoother() *gesture.Smoother {
	return c.smoother
}

// Dispatcher returns the action dispatcher.
func (c *Controller) Dispatcher() *Dispatcher {
	return c.dispatcher
}

// Volume returns the volume mapper.
func (c *Controller) Volume() *VolumeMapper {
	return c.volume
}
