package ease

import (
	"fmt"
	"math"
)

var _ Curve = Cubic{}
var _ Curve = ThreePointCubic{}

// cubicErrorBound is the accuracy to which [Cubic.Transform] solves for the
// Bézier parameter.
const cubicErrorBound = 0.001

// maxCubicIterations caps the bisection search. For a monotone x-Bézier the
// error bound is reached long before the cap; the cap guarantees termination
// when the control points make x non-monotonic.
const maxCubicIterations = 64

// Cubic is a cubic Bézier easing curve with fixed endpoints (0, 0) and
// (1, 1) and control points (A, B) and (C, D). These are the same parameters
// accepted by CSS cubic-bezier timing functions.
//
// Evaluation solves for the Bézier parameter whose x-component matches the
// input progress, by bisection, then returns the y-component at that
// parameter. The solve converges for any monotonically increasing x-Bézier,
// which holds whenever A and C are in [0, 1]. Control points outside that
// range produce undefined (but terminating) results.
type Cubic struct {
	A, B, C, D float64
}

// evaluateCubic evaluates a one-dimensional cubic Bézier with end values 0
// and 1 and control values a and b at parameter m.
func evaluateCubic(a, b, m float64) float64 {
	return 3.0*a*(1.0-m)*(1.0-m)*m +
		3.0*b*(1.0-m)*m*m +
		m*m*m
}

func (c Cubic) Transform(t float64) float64 {
	if t = checkUnit(t); t == 0.0 || t == 1.0 {
		return t
	}
	start, end := 0.0, 1.0
	for i := 0; i < maxCubicIterations; i++ {
		mid := 0.5 * (start + end)
		estimate := evaluateCubic(c.A, c.C, mid)
		if math.Abs(t-estimate) < cubicErrorBound {
			return evaluateCubic(c.B, c.D, mid)
		}
		if estimate < t {
			start = mid
		} else {
			end = mid
		}
	}
	return evaluateCubic(c.B, c.D, 0.5*(start+end))
}

func (c Cubic) String() string {
	return fmt.Sprintf("Cubic(%.2f, %.2f, %.2f, %.2f)", c.A, c.B, c.C, c.D)
}

// ThreePointCubic joins two cubic Bézier curves at a midpoint. Each half is
// rescaled into the unit square and evaluated as a [Cubic], which allows
// asymmetric emphasis that a single cubic cannot express.
type ThreePointCubic struct {
	// A1 and B1 are the control points of the first curve, from (0, 0) to
	// Mid.
	A1, B1 Point
	// Mid is the join point of the two curves.
	Mid Point
	// A2 and B2 are the control points of the second curve, from Mid to
	// (1, 1).
	A2, B2 Point
}

func (c ThreePointCubic) Transform(t float64) float64 {
	if t = checkUnit(t); t == 0.0 || t == 1.0 {
		return t
	}
	if t < c.Mid.X {
		scaleX, scaleY := c.Mid.X, c.Mid.Y
		return scaleY * Cubic{
			A: c.A1.X / scaleX, B: c.A1.Y / scaleY,
			C: c.B1.X / scaleX, D: c.B1.Y / scaleY,
		}.Transform(t/scaleX)
	}
	scaleX, scaleY := 1.0-c.Mid.X, 1.0-c.Mid.Y
	return c.Mid.Y + scaleY*Cubic{
		A: (c.A2.X - c.Mid.X) / scaleX, B: (c.A2.Y - c.Mid.Y) / scaleY,
		C: (c.B2.X - c.Mid.X) / scaleX, D: (c.B2.Y - c.Mid.Y) / scaleY,
	}.Transform((t-c.Mid.X)/scaleX)
}

func (c ThreePointCubic) String() string {
	return fmt.Sprintf("ThreePointCubic(%v, %v, %v, %v, %v)", c.A1, c.B1, c.Mid, c.A2, c.B2)
}
