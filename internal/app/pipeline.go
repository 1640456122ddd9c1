package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/display"
)

// Run opens the camera and processes frames until the escape key is
// pressed, a frame cannot be read, or ctx is cancelled. Camera, detector
// and display are released on every exit path.
//
// Per frame:
// 1. Read a mirrored frame from the camera
// 2. Detect at most one hand
// 3. Classify, smooth and maybe dispatch an action or change the volume
// 4. Render the frame and check for escape
//
// A frame read failure ends the loop with an error wrapping
// capture.ErrFrameRead, and losing the detector service ends it with one
// wrapping detector.ErrServiceUnavailable. Other detection errors only cost
// the frame. Escape and cancellation return nil.
func (a *App) Run(ctx context.Context) error {
	defer a.release()

	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	a.logger.Info("gesture control started")

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("gesture control stopped", "reason", ctx.Err())
			return nil
		default:
		}

		stop, err := a.step()
		if err != nil {
			return err
		}
		if stop {
			a.logger.Info("gesture control stopped", "reason", "escape")
			return nil
		}
	}
}

// step processes a single frame and reports whether escape was pressed.
func (a *App) step() (bool, error) {
	frame, err := a.camera.ReadFrame()
	if err != nil {
		return false, fmt.Errorf("read frame: %w", err)
	}
	defer frame.Close()

	hand, err := a.detector.Detect(frame)
	if errors.Is(err, detector.ErrServiceUnavailable) {
		return false, fmt.Errorf("detect hand: %w", err)
	}
	if err != nil {
		a.logger.Warn("hand detection failed", "error", err)
		hand = nil
	}

	res := a.controller.Process(hand, a.now())
	if status := res.Event.Status(); status != "" {
		a.status = status
	}

	if a.display == nil {
		return false, nil
	}
	a.display.Show(frame, hand, res.Label, a.status)
	return a.display.WaitKey(a.waitKeyMs) == display.KeyEscape, nil
}
