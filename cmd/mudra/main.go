package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/display"
	"github.com/ayusman/mudra/internal/system"
)

func main() {
	logger := slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	)
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("mudra failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	det, err := detector.NewMediaPipeDetector(detector.DefaultConfig())
	if err != nil {
		return err
	}
	if err := det.Start(); err != nil {
		return fmt.Errorf("start hand detector: %w", err)
	}
	logger.Info("using MediaPipe hand detection")

	cfg := app.DefaultConfig()
	cfg.Camera = capture.NewCamera(capture.DefaultConfig())
	cfg.Detector = det
	cfg.Display = display.NewWindow(display.DefaultTitle)
	cfg.Injector = system.NewRobotInjector()
	cfg.Mixer = system.NewOSMixer()
	cfg.Logger = logger

	a, err := app.New(cfg)
	if err != nil {
		det.Close()
		return err
	}

	err = a.Run(ctx)
	if errors.Is(err, capture.ErrFrameRead) {
		logger.Info("camera stream ended")
		return nil
	}
	return err
}
