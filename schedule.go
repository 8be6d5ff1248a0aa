package reveal

import "github.com/tanema/gween/ease"

// Transition describes the shared timing of one segment's animation: total
// duration, normalized keyframe times, the segment's own start delay, and
// the easing applied between keyframes. All times are in seconds.
type Transition struct {
	Duration  float64
	Fractions []float64
	Delay     float64
	Ease      ease.TweenFunc
}

// NewTransition computes the transition for the segment at index, given the
// number of target snapshots (steps), the seconds per keyframe step, and the
// stagger unit in milliseconds.
//
// Duration is stepDuration × steps and Fractions come from [TimeFractions],
// so they are shared by every segment; only Delay varies, growing strictly
// with index (segment 0 starts immediately). The delay unit is milliseconds
// at the configuration surface and converted to seconds here, keeping the
// whole descriptor in one time unit. A nil fn falls back to ease.Linear.
func NewTransition(steps int, stepDuration, delayMS float64, index int, fn ease.TweenFunc) Transition {
	if steps < 0 {
		steps = 0
	}
	if fn == nil {
		fn = ease.Linear
	}
	return Transition{
		Duration:  stepDuration * float64(steps),
		Fractions: TimeFractions(steps),
		Delay:     float64(index) * delayMS / 1000,
		Ease:      fn,
	}
}
