package gesture

import (
	"reflect"
	"testing"
)

func TestNewSmoother(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{name: "default", size: DefaultWindowSize, want: 5},
		{name: "custom", size: 3, want: 3},
		{name: "zero falls back", size: 0, want: DefaultWindowSize},
		{name: "negative falls back", size: -2, want: DefaultWindowSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSmoother(tt.size)
			if s.Size() != tt.want {
				t.Errorf("Size() = %d, want %d", s.Size(), tt.want)
			}
			if s.Len() != 0 {
				t.Errorf("Len() = %d, want 0", s.Len())
			}
		})
	}
}

func TestSmoother_BoundedWindow(t *testing.T) {
	s := NewSmoother(5)

	for i := 0; i < 12; i++ {
		s.Push(Fist)
		want := i + 1
		if want > 5 {
			want = 5
		}
		if s.Len() != want {
			t.Fatalf("after %d pushes Len() = %d, want %d", i+1, s.Len(), want)
		}
	}
}

func TestSmoother_EvictsOldest(t *testing.T) {
	s := NewSmoother(3)
	s.Push(Fist)
	s.Push(OneFinger)
	s.Push(TwoFingers)
	s.Push(OpenPalm)

	want := []Label{OneFinger, TwoFingers, OpenPalm}
	if got := s.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Labels() = %v, want %v", got, want)
	}
}

func TestSmoother_Stable(t *testing.T) {
	tests := []struct {
		name   string
		labels []Label
		want   Label
		ok     bool
	}{
		{
			name:   "empty window",
			labels: nil,
			want:   None,
			ok:     false,
		},
		{
			name:   "partial window",
			labels: []Label{Fist, Fist, Fist, Fist},
			want:   None,
			ok:     false,
		},
		{
			name:   "unanimous",
			labels: []Label{Fist, Fist, Fist, Fist, Fist},
			want:   Fist,
			ok:     true,
		},
		{
			name:   "majority",
			labels: []Label{OneFinger, Unknown, OneFinger, Fist, OneFinger},
			want:   OneFinger,
			ok:     true,
		},
		{
			name:   "unknown can win",
			labels: []Label{Unknown, Unknown, Unknown, Fist, Fist},
			want:   Unknown,
			ok:     true,
		},
		{
			name:   "tie goes to label reaching count first",
			labels: []Label{Fist, OneFinger, OneFinger, Fist, Unknown},
			want:   OneFinger,
			ok:     true,
		},
		{
			name:   "tie with oldest first to reach",
			labels: []Label{TwoFingers, TwoFingers, Fist, Fist, OpenPalm},
			want:   TwoFingers,
			ok:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSmoother(DefaultWindowSize)
			for _, l := range tt.labels {
				s.Push(l)
			}

			got, ok := s.Stable()
			if ok != tt.ok {
				t.Fatalf("Stable() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Stable() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSmoother_Reset(t *testing.T) {
	s := NewSmoother(DefaultWindowSize)
	for i := 0; i < DefaultWindowSize; i++ {
		s.Push(Fist)
	}

	s.Reset()

	if s.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", s.Len())
	}
	if _, ok := s.Stable(); ok {
		t.Error("Stable() should not report a label after Reset")
	}

	// The window refills normally after a reset.
	for i := 0; i < DefaultWindowSize; i++ {
		s.Push(OpenPalm)
	}
	if got, ok := s.Stable(); !ok || got != OpenPalm {
		t.Errorf("Stable() = %s, %v, want %s, true", got, ok, OpenPalm)
	}
}
