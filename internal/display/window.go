// Package display renders the annotated camera feed.
package display

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
)

// DefaultTitle is the window title.
const DefaultTitle = "Gesture Control"

// KeyEscape is the key code that ends the session.
const KeyEscape = 27

var (
	landmarkColor   = color.RGBA{R: 255, G: 0, B: 0, A: 0}
	connectionColor = color.RGBA{R: 0, G: 255, B: 0, A: 0}
	textColor       = color.RGBA{R: 255, G: 255, B: 255, A: 0}
)

// Window is a highgui window showing frames with the tracked hand drawn on
// top.
type Window struct {
	win *gocv.Window
}

// NewWindow opens a window with the given title.
func NewWindow(title string) *Window {
	if title == "" {
		title = DefaultTitle
	}
	return &Window{win: gocv.NewWindow(title)}
}

// Show draws hand, label and status onto frame and displays it. hand may
// be nil and status empty.
func (w *Window) Show(frame *gocv.Mat, hand *detector.HandLandmarks, label gesture.Label, status string) {
	if hand != nil {
		DrawHand(frame, hand)
	}
	DrawLabel(frame, label)
	if status != "" {
		DrawStatus(frame, status)
	}
	w.win.IMShow(*frame)
}

// WaitKey waits up to delay milliseconds for a key press and returns its
// low byte, or -1 when no key was pressed.
func (w *Window) WaitKey(delay int) int {
	key := w.win.WaitKey(delay)
	if key < 0 {
		return -1
	}
	return key & 0xFF
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.win.Close()
}

// DrawHand draws the hand skeleton onto img. Landmarks are normalized, so
// they are scaled by the frame size.
func DrawHand(img *gocv.Mat, hand *detector.HandLandmarks) {
	width, height := img.Cols(), img.Rows()
	toPixel := func(p detector.Point3D) image.Point {
		return image.Pt(int(p.X*float64(width)), int(p.Y*float64(height)))
	}

	for _, c := range detector.Connections {
		gocv.Line(img, toPixel(hand.Points[c[0]]), toPixel(hand.Points[c[1]]), connectionColor, 2)
	}
	for _, p := range hand.Points {
		gocv.Circle(img, toPixel(p), 4, landmarkColor, -1)
	}
}

// DrawLabel writes the current gesture label in the top-left corner.
func DrawLabel(img *gocv.Mat, label gesture.Label) {
	gocv.PutText(img, fmt.Sprintf("gesture: %s", label), image.Pt(10, 30),
		gocv.FontHersheySimplex, 0.8, textColor, 2)
}

// DrawStatus writes the last action below the gesture label.
func DrawStatus(img *gocv.Mat, status string) {
	gocv.PutText(img, status, image.Pt(10, 60),
		gocv.FontHersheySimplex, 0.6, textColor, 1)
}
