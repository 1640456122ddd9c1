package gesture

import "github.com/ayusman/mudra/internal/detector"

// Digit indices into a FingerState.
const (
	Thumb = iota
	Index
	Middle
	Ring
	Pinky
	NumDigits
)

// tipIDs are the landmark indices of the five fingertips, thumb first.
var tipIDs = [NumDigits]int{
	detector.ThumbTip,
	detector.IndexTip,
	detector.MiddleTip,
	detector.RingTip,
	detector.PinkyTip,
}

// FingerState records which digits are extended, thumb first.
type FingerState [NumDigits]bool

// Extract derives the finger state of a hand.
//
// The thumb counts as extended when its tip lies left of the IP joint. That
// only holds for a right hand, palm to the camera, in a mirrored frame; a
// left hand or an unmirrored feed inverts the thumb reading. The other
// fingers are extended when the tip is higher in the image than the PIP
// joint two landmarks below it.
func Extract(hand *detector.HandLandmarks) FingerState {
	var state FingerState
	p := hand.Points

	state[Thumb] = p[tipIDs[Thumb]].X < p[tipIDs[Thumb]-1].X
	for i := Index; i < NumDigits; i++ {
		state[i] = p[tipIDs[i]].Y < p[tipIDs[i]-2].Y
	}

	return state
}

// Count returns the number of extended digits.
func (f FingerState) Count() int {
	n := 0
	for _, up := range f {
		if up {
			n++
		}
	}
	return n
}

// String renders the state as five 0/1 digits, thumb first.
func (f FingerState) String() string {
	b := make([]byte, NumDigits)
	for i, up := range f {
		if up {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}
