package gesture

import "testing"

func TestClassify_Patterns(t *testing.T) {
	tests := []struct {
		state FingerState
		want  Label
	}{
		{FingerState{false, true, false, false, false}, OneFinger},
		{FingerState{false, true, true, false, false}, TwoFingers},
		{FingerState{true, true, true, true, true}, OpenPalm},
		{FingerState{false, false, false, false, false}, Fist},
		{FingerState{true, true, false, false, false}, Unknown},
		{FingerState{false, true, true, true, false}, Unknown},
		{FingerState{true, false, false, false, false}, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := Classify(tt.state); got != tt.want {
				t.Errorf("Classify(%s) = %s, want %s", tt.state, got, tt.want)
			}
		})
	}
}

func TestClassify_Exhaustive(t *testing.T) {
	counts := make(map[Label]int)

	for bits := 0; bits < 1<<NumDigits; bits++ {
		var state FingerState
		for i := 0; i < NumDigits; i++ {
			state[i] = bits&(1<<i) != 0
		}
		counts[Classify(state)]++
	}

	if counts[Unknown] != 28 {
		t.Errorf("unknown count = %d, want 28", counts[Unknown])
	}
	for _, label := range []Label{OneFinger, TwoFingers, OpenPalm, Fist} {
		if counts[label] != 1 {
			t.Errorf("%s count = %d, want 1", label, counts[label])
		}
	}
	if counts[None] != 0 {
		t.Errorf("Classify should never return %s", None)
	}
}
