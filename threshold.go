package ease

import "fmt"

var _ Curve = Threshold{}

// Threshold is a step function: 0 below the threshold, 1 at and above it.
type Threshold struct {
	// Threshold is the progress at which the output jumps from 0 to 1. It
	// must be in [0, 1].
	Threshold float64
}

func (th Threshold) Transform(t float64) float64 {
	if !(th.Threshold >= 0.0 && th.Threshold <= 1.0) {
		panic(fmt.Sprintf("threshold %g is outside the unit interval", th.Threshold))
	}
	if t = checkUnit(t); t == 0.0 || t == 1.0 {
		return t
	}
	if t < th.Threshold {
		return 0.0
	}
	return 1.0
}

func (th Threshold) String() string {
	return fmt.Sprintf("Threshold(%g)", th.Threshold)
}
