// Package gesture turns hand landmarks into discrete, stabilized gesture labels.
package gesture

// Label is the symbolic classification of a hand shape in one frame.
type Label string

const (
	OneFinger  Label = "one_finger"
	TwoFingers Label = "two_fingers"
	OpenPalm   Label = "open_palm"
	Fist       Label = "fist"
	Unknown    Label = "unknown"
	// None marks a frame in which no hand was detected.
	None Label = "none"
)

// String implements fmt.Stringer.
func (l Label) String() string {
	return string(l)
}
