package carousel

import "math"

// Wrap moves a slide at position p by the scroll delta s and wraps it into
// the band [-w-m, W-w-m), where w is the slot width, m the margin and W the
// total wrap width. The band starts one slot-plus-margin left of the
// viewport, so a slide leaving one edge reappears fully outside the other.
//
// Wrap must be applied to each slide's current position every frame. With
// W <= 0 there is nothing to wrap and p is returned unchanged.
func Wrap(s, p, w, m, W float64) float64 {
	if W <= 0 {
		return p
	}
	v := math.Mod(s+p+W+w+m, W)
	if v < 0 {
		v += W
	}
	// v+W can round up to exactly W for tiny negative v.
	if v >= W {
		v -= W
	}
	return v - w - m
}

// SmoothingParams controls how a ScrollState approaches its target.
type SmoothingParams struct {
	// Lerp is the fraction of the remaining distance to the target covered
	// each step.
	Lerp float64
	// Friction multiplies the velocity after the lerp, so motion dies out
	// even while a target is pending.
	Friction float64
	// RestThreshold snaps velocities smaller than this to exactly zero.
	RestThreshold float64
}

// DefaultSmoothing returns the tuned-by-feel constants: lerp 0.1 and friction
// 0.9 per frame.
func DefaultSmoothing() SmoothingParams {
	return SmoothingParams{Lerp: 0.1, Friction: 0.9, RestThreshold: 1e-4}
}

// ScrollState is the scroll velocity of a gallery and the impulse target it
// is easing toward. Velocity is in pixels per frame.
type ScrollState struct {
	Velocity float64
	Target   float64
}

// Impulse sets the target from a wheel delta: target = delta / divisor.
// A zero divisor is treated as 1.
func (st *ScrollState) Impulse(delta, divisor float64) {
	if divisor == 0 {
		divisor = 1
	}
	st.Target = delta / divisor
}

// Step advances the state by one frame and returns the new velocity:
//
//	velocity -= (velocity - target) * lerp
//	velocity *= friction
//
// The target is then consumed; a wheel event is a one-shot impulse.
func (st *ScrollState) Step(p SmoothingParams) float64 {
	st.Velocity -= (st.Velocity - st.Target) * p.Lerp
	st.Velocity *= p.Friction
	st.Target = 0
	if math.Abs(st.Velocity) < p.RestThreshold {
		st.Velocity = 0
	}
	return st.Velocity
}

// AtRest reports whether there is no motion and no pending impulse.
func (st *ScrollState) AtRest() bool {
	return st.Velocity == 0 && st.Target == 0
}
