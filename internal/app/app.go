// Package app wires the camera, hand detector, controller and display into
// the frame loop.
package app

import (
	"errors"
	"log/slog"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/system"
)

// DefaultWaitKeyMs is how long each iteration waits for a key press.
const DefaultWaitKeyMs = 5

// Display shows annotated frames and reports key presses.
type Display interface {
	// Show renders frame with the hand, the raw label and the status line
	// of the last fired action.
	Show(frame *gocv.Mat, hand *detector.HandLandmarks, label gesture.Label, status string)
	// WaitKey returns the low byte of the pressed key, or -1.
	WaitKey(delay int) int
	Close() error
}

// Config holds the collaborators and tuning for an App.
type Config struct {
	Camera   capture.Camera
	Detector detector.Detector
	// Display may be nil to run headless; the loop then only ends on a
	// frame read failure or context cancellation.
	Display  Display
	Injector system.Injector
	Mixer    system.Mixer

	// Control falls back to control.DefaultConfig when left zero.
	Control   control.Config
	WaitKeyMs int

	// Clock defaults to time.Now.
	Clock  func() time.Time
	Logger *slog.Logger
}

// DefaultConfig returns a Config with stock tuning and no collaborators.
func DefaultConfig() Config {
	return Config{
		Control:   control.DefaultConfig(),
		WaitKeyMs: DefaultWaitKeyMs,
	}
}

// App runs the single-threaded capture, classify and act loop.
type App struct {
	camera     capture.Camera
	detector   detector.Detector
	display    Display
	controller *control.Controller
	status     string
	waitKeyMs  int
	now        func() time.Time
	logger     *slog.Logger
}

// New creates an App. The master volume is read once here to seed the
// volume mapper.
func New(config Config) (*App, error) {
	if config.Camera == nil {
		return nil, errors.New("app: camera is required")
	}
	if config.Detector == nil {
		return nil, errors.New("app: detector is required")
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := config.Clock
	if now == nil {
		now = time.Now
	}
	if config.Control == (control.Config{}) {
		config.Control = control.DefaultConfig()
	}
	waitKey := config.WaitKeyMs
	if waitKey <= 0 {
		waitKey = DefaultWaitKeyMs
	}

	return &App{
		camera:     config.Camera,
		detector:   config.Detector,
		display:    config.Display,
		controller: control.New(config.Control, config.Injector, config.Mixer, logger),
		waitKeyMs:  waitKey,
		now:        now,
		logger:     logger,
	}, nil
}

// Controller returns the gesture controller.
func (a *App) Controller() *control.Controller {
	return a.controller
}

// release closes every scoped resource, logging failures.
func (a *App) release() {
	if err := a.camera.Close(); err != nil {
		a.logger.Warn("error closing camera", "error", err)
	}
	if err := a.detector.Close(); err != nil {
		a.logger.Warn("error closing detector", "error", err)
	}
	if a.display != nil {
		if err := a.display.Close(); err != nil {
			a.logger.Warn("error closing window", "error", err)
		}
	}
}
