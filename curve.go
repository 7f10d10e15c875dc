package ease

import "fmt"

// Curve maps normalized animation progress in [0, 1] to eased progress.
//
// Eased progress is typically also in [0, 1], but curves may overshoot the
// interval in between the endpoints. Every curve maps 0 to 0 and 1 to 1.
type Curve interface {
	// Transform evaluates the curve at progress t. t must be in [0, 1].
	Transform(t float64) float64
}

var _ Curve = Linear{}
var _ Curve = Decelerate{}
var _ Curve = FlippedCurve{}

// checkUnit validates that the progress value t is in [0, 1]. Out-of-range
// progress, including NaN, is a bug in the caller.
func checkUnit(t float64) float64 {
	if !(t >= 0.0 && t <= 1.0) {
		panic(fmt.Sprintf("progress %g is outside the unit interval", t))
	}
	return t
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Linear is the identity curve: progress passes through uneased.
type Linear struct{}

func (Linear) Transform(t float64) float64 {
	return checkUnit(t)
}

func (Linear) String() string {
	return "Linear"
}

// Decelerate starts fast and eases to a stop, evaluating 1-(1-t)².
type Decelerate struct{}

func (Decelerate) Transform(t float64) float64 {
	t = 1.0 - checkUnit(t)
	return 1.0 - t*t
}

func (Decelerate) String() string {
	return "Decelerate"
}

// FlippedCurve mirrors another curve both horizontally and vertically,
// evaluating 1-inner(1-t). A curve that eases in, flipped, eases out.
type FlippedCurve struct {
	Curve Curve
}

// Flip returns a [FlippedCurve] wrapping c. Flipping twice yields a curve
// equivalent to the original.
func Flip(c Curve) FlippedCurve {
	return FlippedCurve{Curve: c}
}

func (f FlippedCurve) Transform(t float64) float64 {
	if t = checkUnit(t); t == 0.0 || t == 1.0 {
		return t
	}
	return 1.0 - f.Curve.Transform(1.0-t)
}

func (f FlippedCurve) String() string {
	return fmt.Sprintf("FlippedCurve(%v)", f.Curve)
}
