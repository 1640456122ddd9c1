package gesture

// patterns maps the four recognized finger states to their labels.
var patterns = map[FingerState]Label{
	{false, true, false, false, false}:  OneFinger,
	{false, true, true, false, false}:   TwoFingers,
	{true, true, true, true, true}:      OpenPalm,
	{false, false, false, false, false}: Fist,
}

// Classify maps a finger state to a gesture label. Anything that is not an
// exact match for one of the four patterns is Unknown.
func Classify(state FingerState) Label {
	if label, ok := patterns[state]; ok {
		return label
	}
	return Unknown
}
