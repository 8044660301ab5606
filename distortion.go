package carousel

import "math"

// DefaultDistortionGain is the displacement, in pixels, per unit of velocity.
const DefaultDistortionGain = 2.0

// Direction returns -1 for negative velocities and +1 otherwise, including
// at rest.
func Direction(velocity float64) float64 {
	if velocity < 0 {
		return -1
	}
	return 1
}

// Distortion maps a scroll velocity to a displacement magnitude:
// gain * direction * |velocity|. It decays to zero with the velocity.
func Distortion(velocity, gain float64) float64 {
	return gain * Direction(velocity) * math.Abs(velocity)
}
