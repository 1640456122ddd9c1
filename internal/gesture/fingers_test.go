package gesture

import (
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		hand  detector.HandLandmarks
		want  FingerState
		count int
	}{
		{
			name:  "fist",
			hand:  detector.FistLandmarks(),
			want:  FingerState{false, false, false, false, false},
			count: 0,
		},
		{
			name:  "one finger",
			hand:  detector.OneFingerLandmarks(),
			want:  FingerState{false, true, false, false, false},
			count: 1,
		},
		{
			name:  "two fingers",
			hand:  detector.TwoFingersLandmarks(),
			want:  FingerState{false, true, true, false, false},
			count: 2,
		},
		{
			name:  "open palm",
			hand:  detector.OpenPalmLandmarks(),
			want:  FingerState{true, true, true, true, true},
			count: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(&tt.hand)
			if got != tt.want {
				t.Errorf("Extract() = %s, want %s", got, tt.want)
			}
			if got.Count() != tt.count {
				t.Errorf("Count() = %d, want %d", got.Count(), tt.count)
			}
		})
	}
}

func TestExtract_Deterministic(t *testing.T) {
	hand := detector.TwoFingersLandmarks()
	first := Extract(&hand)
	for i := 0; i < 100; i++ {
		if got := Extract(&hand); got != first {
			t.Fatalf("Extract() call %d = %s, want %s", i, got, first)
		}
	}
}

func TestExtract_ThumbUsesXOnly(t *testing.T) {
	hand := detector.FistLandmarks()

	// Tip exactly on the IP joint is not extended.
	hand.Points[detector.ThumbTip].X = hand.Points[detector.ThumbIP].X
	if Extract(&hand)[Thumb] {
		t.Error("thumb with tip level to IP should not be extended")
	}

	// Moving the tip left flips the reading regardless of height.
	hand.Points[detector.ThumbTip].X = hand.Points[detector.ThumbIP].X - 0.01
	hand.Points[detector.ThumbTip].Y = 0.99
	if !Extract(&hand)[Thumb] {
		t.Error("thumb with tip left of IP should be extended")
	}
}

func TestExtract_FingerComparesWithPIP(t *testing.T) {
	hand := detector.FistLandmarks()

	// Index tip above the DIP but below the PIP is still folded.
	hand.Points[detector.IndexTip].Y = hand.Points[detector.IndexPIP].Y + 0.001
	hand.Points[detector.IndexDIP].Y = hand.Points[detector.IndexTip].Y + 0.05
	if Extract(&hand)[Index] {
		t.Error("index tip below PIP should not be extended")
	}

	hand.Points[detector.IndexTip].Y = hand.Points[detector.IndexPIP].Y - 0.001
	if !Extract(&hand)[Index] {
		t.Error("index tip above PIP should be extended")
	}
}

func TestFingerState_String(t *testing.T) {
	state := FingerState{true, false, true, false, true}
	if got := state.String(); got != "10101" {
		t.Errorf("String() = %q, want %q", got, "10101")
	}
}
