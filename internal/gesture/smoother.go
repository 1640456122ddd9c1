package gesture

// DefaultWindowSize is the number of frames the smoother votes over.
const DefaultWindowSize = 5

// Smoother keeps a bounded window of the most recent per-frame labels and
// reports the majority once the window is full.
//
// It is not safe for concurrent use.
type Smoother struct {
	size   int
	window []Label
}

// NewSmoother creates a Smoother over the last size labels.
// Sizes less than 1 fall back to DefaultWindowSize.
func NewSmoother(size int) *Smoother {
	if size < 1 {
		size = DefaultWindowSize
	}
	return &Smoother{
		size:   size,
		window: make([]Label, 0, size),
	}
}

// Push appends a label, evicting the oldest one when the window is full.
func (s *Smoother) Push(label Label) {
	if len(s.window) >= s.size {
		copy(s.window, s.window[1:])
		s.window = s.window[:s.size-1]
	}
	s.window = append(s.window, label)
}

// Stable returns the majority label of a full window. The second result is
// false while the window is still filling.
//
// Ties go to the label that reaches the winning count first when scanning
// from oldest to newest.
func (s *Smoother) Stable() (Label, bool) {
	if len(s.window) < s.size {
		return None, false
	}

	counts := make(map[Label]int, len(s.window))
	best, bestCount := None, 0
	for _, label := range s.window {
		counts[label]++
		if counts[label] > bestCount {
			best, bestCount = label, counts[label]
		}
	}

	return best, true
}

// Reset empties the window.
func (s *Smoother) Reset() {
	s.window = s.window[:0]
}

// Len returns the number of labels currently held.
func (s *Smoother) Len() int {
	return len(s.window)
}

// Size returns the window capacity.
func (s *Smoother) Size() int {
	return s.size
}

// Labels returns a copy of the window, oldest first.
func (s *Smoother) Labels() []Label {
	out := make([]Label, len(s.window))
	copy(out, s.window)
	return out
}
