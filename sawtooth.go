package ease

import (
	"fmt"
	"math"
)

var _ Curve = SawTooth{}

// SawTooth repeats linear growth Count times over the unit interval, dropping
// back to 0 at the start of each repetition. Progress 1 maps to 1 rather than
// wrapping, so the final sample lands on the end point.
type SawTooth struct {
	// Count is the number of repetitions. It must be positive.
	Count int
}

func (s SawTooth) Transform(t float64) float64 {
	if s.Count <= 0 {
		panic(fmt.Sprintf("sawtooth count %d isn't positive", s.Count))
	}
	if t = checkUnit(t); t == 0.0 || t == 1.0 {
		return t
	}
	t *= float64(s.Count)
	return t - math.Trunc(t)
}

func (s SawTooth) String() string {
	return fmt.Sprintf("SawTooth(%d)", s.Count)
}
