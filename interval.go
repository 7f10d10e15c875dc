package ease

import "fmt"

var _ Curve = Interval{}

// Interval confines another curve to the sub-range [Begin, End] of the
// animation: progress before Begin maps to 0, progress after End maps to 1,
// and progress in between is remapped into the sub-curve's domain.
type Interval struct {
	// Begin and End delimit the active range. Both must be in [0, 1], with
	// Begin ≤ End.
	Begin, End float64
	// Curve is applied to the remapped progress. A nil Curve means [Linear].
	Curve Curve
}

func (iv Interval) Transform(t float64) float64 {
	if !(iv.Begin >= 0.0 && iv.Begin <= 1.0 && iv.End >= 0.0 && iv.End <= 1.0 && iv.Begin <= iv.End) {
		panic(fmt.Sprintf("invalid interval [%g, %g]", iv.Begin, iv.End))
	}
	if t = checkUnit(t); t == 0.0 || t == 1.0 {
		return t
	}
	t = clamp((t-iv.Begin)/(iv.End-iv.Begin), 0.0, 1.0)
	// The clamped endpoints short-circuit so that the sub-curve is never
	// evaluated outside its domain.
	if t == 0.0 || t == 1.0 || iv.Curve == nil {
		return t
	}
	return iv.Curve.Transform(t)
}

func (iv Interval) String() string {
	if iv.Curve == nil {
		return fmt.Sprintf("Interval(%g, %g)", iv.Begin, iv.End)
	}
	return fmt.Sprintf("Interval(%g, %g) with %v", iv.Begin, iv.End, iv.Curve)
}
