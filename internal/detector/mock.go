package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hand     *HandLandmarks
	sequence []*HandLandmarks
	err      error
	calls    int
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHand sets the hand returned by every Detect call. Nil means no hand.
func (m *MockDetector) SetHand(hand *HandLandmarks) {
	m.hand = hand
}

// SetSequence queues per-call results. Once the queue is drained Detect
// falls back to the hand set with SetHand.
func (m *MockDetector) SetSequence(hands []*HandLandmarks) {
	m.sequence = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Calls returns how many times Detect has been called.
func (m *MockDetector) Calls() int {
	return m.calls
}

// Detect returns the pre-configured hand or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (*HandLandmarks, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if len(m.sequence) > 0 {
		next := m.sequence[0]
		m.sequence = m.sequence[1:]
		return next, nil
	}
	return m.hand, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// The fixtures below describe a right hand seen in a mirrored frame, palm
// toward the camera, so an extended thumb points toward smaller X.

// FistLandmarks returns a preset HandLandmarks with every digit folded.
func FistLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.50, Y: 0.80, Z: 0.0}

	// Thumb tucked across the palm, tip to the right of the IP joint
	landmarks.Points[ThumbCMC] = Point3D{X: 0.45, Y: 0.75, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.42, Y: 0.70, Z: -0.02}
	landmarks.Points[ThumbIP] = Point3D{X: 0.44, Y: 0.66, Z: -0.04}
	landmarks.Points[ThumbTip] = Point3D{X: 0.48, Y: 0.66, Z: -0.05}

	// Fingers curled, tips below the PIP joints
	landmarks.Points[IndexMCP] = Point3D{X: 0.45, Y: 0.68, Z: -0.02}
	landmarks.Points[IndexPIP] = Point3D{X: 0.45, Y: 0.62, Z: -0.05}
	landmarks.Points[IndexDIP] = Point3D{X: 0.46, Y: 0.66, Z: -0.04}
	landmarks.Points[IndexTip] = Point3D{X: 0.46, Y: 0.70, Z: -0.02}

	landmarks.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: -0.02}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.60, Z: -0.05}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.64, Z: -0.04}
	landmarks.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.68, Z: -0.02}

	landmarks.Points[RingMCP] = Point3D{X: 0.55, Y: 0.68, Z: -0.02}
	landmarks.Points[RingPIP] = Point3D{X: 0.55, Y: 0.62, Z: -0.05}
	landmarks.Points[RingDIP] = Point3D{X: 0.55, Y: 0.66, Z: -0.04}
	landmarks.Points[RingTip] = Point3D{X: 0.55, Y: 0.70, Z: -0.02}

	landmarks.Points[PinkyMCP] = Point3D{X: 0.60, Y: 0.70, Z: -0.02}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.60, Y: 0.65, Z: -0.05}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.60, Y: 0.68, Z: -0.04}
	landmarks.Points[PinkyTip] = Point3D{X: 0.60, Y: 0.72, Z: -0.02}

	return landmarks
}

// OneFingerLandmarks returns a fist with the index finger pointing up.
func OneFingerLandmarks() HandLandmarks {
	landmarks := FistLandmarks()
	extendIndex(&landmarks)
	return landmarks
}

// TwoFingersLandmarks returns a fist with index and middle fingers up.
func TwoFingersLandmarks() HandLandmarks {
	landmarks := FistLandmarks()
	extendIndex(&landmarks)
	extendMiddle(&landmarks)
	return landmarks
}

// OpenPalmLandmarks returns a preset HandLandmarks representing an open palm gesture.
// All fingers are extended outward.
func OpenPalmLandmarks() HandLandmarks {
	landmarks := FistLandmarks()

	// Thumb extended to the side
	landmarks.Points[ThumbCMC] = Point3D{X: 0.45, Y: 0.75, Z: 0.02}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.03}
	landmarks.Points[ThumbIP] = Point3D{X: 0.35, Y: 0.65, Z: 0.03}
	landmarks.Points[ThumbTip] = Point3D{X: 0.30, Y: 0.60, Z: 0.03}

	extendIndex(&landmarks)
	extendMiddle(&landmarks)

	landmarks.Points[RingPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	landmarks.Points[RingDIP] = Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	landmarks.Points[RingTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	landmarks.Points[PinkyPIP] = Point3D{X: 0.63, Y: 0.60, Z: 0.0}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.65, Y: 0.50, Z: 0.0}
	landmarks.Points[PinkyTip] = Point3D{X: 0.66, Y: 0.42, Z: 0.0}

	return landmarks
}

// AtHeight returns a copy of h with every landmark moved to the same Y.
// Finger geometry is lost, so it is only useful for height-driven logic.
func AtHeight(h HandLandmarks, y float64) HandLandmarks {
	for i := range h.Points {
		h.Points[i].Y = y
	}
	return h
}

func extendIndex(l *HandLandmarks) {
	l.Points[IndexPIP] = Point3D{X: 0.44, Y: 0.55, Z: 0.0}
	l.Points[IndexDIP] = Point3D{X: 0.44, Y: 0.45, Z: 0.0}
	l.Points[IndexTip] = Point3D{X: 0.44, Y: 0.35, Z: 0.0}
}

func extendMiddle(l *HandLandmarks) {
	l.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	l.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	l.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28, Z: 0.0}
}
