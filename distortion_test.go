package carousel

import "testing"

func TestDirection(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-9, -1},
		{-1e-12, -1},
		{0, 1},
		{3, 1},
	}
	for _, tt := range tests {
		if got := Direction(tt.v); got != tt.want {
			t.Errorf("Direction(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestDistortion(t *testing.T) {
	tests := []struct {
		name    string
		v, gain float64
		want    float64
	}{
		{"first frame left", -9, 2, -18},
		{"right", 4.5, 2, 9},
		{"rest", 0, 2, 0},
		{"custom gain", -3, 0.5, -1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "Distortion", Distortion(tt.v, tt.gain), tt.want)
		})
	}
}

func TestDistortionFollowsVelocityToRest(t *testing.T) {
	var st ScrollState
	st.Impulse(-300, 3)
	p := DefaultSmoothing()
	prev := 0.0
	for i := 0; i < 200 && !st.AtRest(); i++ {
		d := Distortion(st.Step(p), DefaultDistortionGain)
		if i > 0 && d < prev {
			t.Fatalf("frame %d: distortion %v moved away from zero (prev %v)", i, d, prev)
		}
		prev = d
	}
	assertNear(t, "final distortion", Distortion(st.Velocity, DefaultDistortionGain), 0)
}
