package detector

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gocv.io/x/gocv"
)

// ErrScriptNotFound is returned when mediapipe_service.py cannot be located.
var ErrScriptNotFound = errors.New("mediapipe_service.py not found")

const (
	scriptRelPath = "scripts/mediapipe_service.py"
	venvRelPath   = "venv/bin/python"
)

// MediaPipeDetector implements Detector on top of MediaPipe Hands running
// in a Python subprocess.
//
// Call Start before the first frame so that a missing interpreter or model
// is reported up front. Detect starts the service itself if Start was
// skipped. Once the service is lost every call returns the same error
// wrapping ErrServiceUnavailable; the detector does not respawn it.
type MediaPipeDetector struct {
	config     Config
	scriptPath string

	mu   sync.Mutex
	svc  *service
	lost error
}

// NewMediaPipeDetector resolves the service script. It does not start the
// Python process.
func NewMediaPipeDetector(config Config) (*MediaPipeDetector, error) {
	scriptPath := config.ScriptPath
	if scriptPath == "" {
		scriptPath = locate(scriptRelPath)
	}
	if scriptPath == "" {
		return nil, ErrScriptNotFound
	}
	if _, err := os.Stat(scriptPath); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptNotFound, err)
	}

	return &MediaPipeDetector{
		config:     config,
		scriptPath: scriptPath,
	}, nil
}

// Start launches the service and waits until MediaPipe has loaded. It is a
// no-op while the service is running.
func (d *MediaPipeDetector) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.start()
}

func (d *MediaPipeDetector) start() error {
	if d.svc != nil {
		return nil
	}
	if d.lost != nil {
		return d.lost
	}

	svc, err := startService(d.pythonPath(), d.scriptArgs())
	if err != nil {
		d.lost = err
		return err
	}
	d.svc = svc
	return nil
}

// Detect returns the first hand in frame, or nil if there is none.
func (d *MediaPipeDetector) Detect(frame *gocv.Mat) (*HandLandmarks, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.start(); err != nil {
		return nil, err
	}
	if frame == nil || frame.Empty() {
		return nil, nil
	}

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, *frame)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	defer buf.Close()

	line, err := d.svc.roundTrip(buf.GetBytes())
	if err != nil {
		d.svc.kill()
		d.svc = nil
		d.lost = err
		return nil, err
	}

	return parseResponse(line)
}

// Close stops the Python process if it is running.
func (d *MediaPipeDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.svc == nil {
		return nil
	}
	err := d.svc.stop()
	d.svc = nil
	return err
}

// pythonPath prefers the configured interpreter, then a project virtualenv,
// then python3 on PATH.
func (d *MediaPipeDetector) pythonPath() string {
	if d.config.PythonPath != "" {
		return d.config.PythonPath
	}
	if venv := locate(venvRelPath); venv != "" {
		return venv
	}
	return "python3"
}

func (d *MediaPipeDetector) scriptArgs() []string {
	return []string{
		d.scriptPath,
		"--max-hands", strconv.Itoa(d.config.MaxHands),
		"--min-detection-confidence", strconv.FormatFloat(d.config.MinConfidence, 'f', -1, 64),
		"--min-tracking-confidence", strconv.FormatFloat(d.config.MinTrackingConf, 'f', -1, 64),
	}
}

// locate returns the absolute path of rel under the first of these that
// contains it: the working directory, its parent, the executable's
// directory and ~/.mudra.
func locate(rel string) string {
	dirs := []string{".", ".."}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".mudra"))
	}

	for _, dir := range dirs {
		path := filepath.Join(dir, rel)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	}
	return ""
}

type wirePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type wireHand struct {
	Points     []wirePoint `json:"points"`
	Handedness string      `json:"handedness"`
	Score      float64     `json:"score"`
}

// parseResponse decodes one service reply. Only the first hand is kept, and
// it must carry all 21 landmarks.
func parseResponse(line []byte) (*HandLandmarks, error) {
	var reply struct {
		Hands []wireHand `json:"hands"`
		Error string     `json:"error"`
	}
	if err := json.Unmarshal(line, &reply); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if reply.Error != "" {
		return nil, fmt.Errorf("mediapipe service: %s", reply.Error)
	}
	if len(reply.Hands) == 0 {
		return nil, nil
	}

	h := reply.Hands[0]
	if len(h.Points) != NumLandmarks {
		return nil, fmt.Errorf("parse response: got %d landmarks, want %d", len(h.Points), NumLandmarks)
	}

	hand := &HandLandmarks{Handedness: h.Handedness, Score: h.Score}
	for i, p := range h.Points {
		hand.Points[i] = Point3D{X: p.X, Y: p.Y, Z: p.Z}
	}
	return hand, nil
}
