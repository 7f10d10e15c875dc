package ease

import (
	"fmt"
	"math"
)

// Curve2D describes a parametric curve in two dimensions.
//
// Unlike [Curve], the parameter does not have to advance the x component
// monotonically; the curve may loop or double back on itself.
type Curve2D interface {
	// Transform evaluates the curve at parameter t. t must be in [0, 1].
	Transform(t float64) Point
}

var _ Curve2D = CatmullRomSpline{}
var _ Curve = CatmullRomCurve{}

// catmullRomAlpha is the exponent of the centripetal knot parametrization.
// 0.5 avoids cusps and self-intersections within segments.
const catmullRomAlpha = 0.5

// maxCatmullRomIterations caps the bisection search in
// [CatmullRomCurve.Transform], mirroring [Cubic]'s solver.
const maxCatmullRomIterations = 64

// catmullRomErrorBound is the accuracy to which [CatmullRomCurve.Transform]
// solves for the spline parameter.
const catmullRomErrorBound = 1e-4

// crSegment holds one spline segment in cubic Bézier form.
type crSegment [4]Point

// eval evaluates the segment's cubic Bézier at parameter t.
func (s crSegment) eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(s[0]).Mul(mt * mt * mt)
	b := Vec2(s[1]).Mul(mt * mt * 3.0)
	c := Vec2(s[2]).Mul(mt * 3.0)
	d := Vec2(s[3])
	return Point(a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t)))
}

// CatmullRomSpline is a centripetal Catmull-Rom spline: a smooth curve that
// passes through every one of its control points.
//
// The parameter range [0, 1] is divided evenly among the segments between
// adjacent control points, so with n control points, control point i is
// reached at exactly t = i/(n-1).
type CatmullRomSpline struct {
	controlPoints []Point
	segments      []crSegment
}

// NewCatmullRomSpline returns a spline passing through the given control
// points, which must be distinct from their neighbors. At least four control
// points are required.
//
// Tension, in [0, 1], straightens the spline's tangents; at 1 every segment
// degenerates to the straight line between its control points. The tangents
// at the first and last control points are derived from mirroring their
// neighbors across them.
func NewCatmullRomSpline(controlPoints []Point, tension float64) CatmullRomSpline {
	if len(controlPoints) < 4 {
		panic(fmt.Sprintf("got %d control points, spline needs at least 4", len(controlPoints)))
	}
	if !(tension >= 0.0 && tension <= 1.0) {
		panic(fmt.Sprintf("tension %g is outside the unit interval", tension))
	}
	startHandle := controlPoints[0].Lerp(controlPoints[1], -1.0)
	endHandle := controlPoints[len(controlPoints)-1].Lerp(controlPoints[len(controlPoints)-2], -1.0)
	pts := make([]Point, 0, len(controlPoints)+2)
	pts = append(pts, startHandle)
	pts = append(pts, controlPoints...)
	pts = append(pts, endHandle)

	reverseTension := 1.0 - tension
	segments := make([]crSegment, 0, len(pts)-3)
	for i := 0; i+3 < len(pts); i++ {
		p0, p1, p2, p3 := pts[i], pts[i+1], pts[i+2], pts[i+3]
		d01 := math.Pow(p1.Distance(p0), catmullRomAlpha)
		d12 := math.Pow(p2.Distance(p1), catmullRomAlpha)
		d23 := math.Pow(p3.Distance(p2), catmullRomAlpha)
		m1 := p2.Sub(p1).
			Add(p1.Sub(p0).Div(d01).Sub(p2.Sub(p0).Div(d01 + d12)).Mul(d12)).
			Mul(reverseTension)
		m2 := p2.Sub(p1).
			Add(p3.Sub(p2).Div(d23).Sub(p3.Sub(p1).Div(d12 + d23)).Mul(d12)).
			Mul(reverseTension)
		segments = append(segments, crSegment{
			p1,
			p1.Translate(m1.Div(3.0)),
			p2.Translate(m2.Div(3.0).Negate()),
			p2,
		})
	}
	return CatmullRomSpline{controlPoints: controlPoints, segments: segments}
}

func (s CatmullRomSpline) Transform(t float64) Point {
	checkUnit(t)
	n := len(s.segments)
	if t == 1.0 {
		return s.segments[n-1][3]
	}
	scaled := t * float64(n)
	i := int(scaled)
	return s.segments[i].eval(scaled - float64(i))
}

func (s CatmullRomSpline) String() string {
	return fmt.Sprintf("CatmullRomSpline%v", s.controlPoints)
}

// CatmullRomCurve is an easing curve shaped by a centripetal Catmull-Rom
// spline through (0, 0), the given control points, and (1, 1). It eases
// through every control point, interpreting x as animation progress and y as
// the eased value.
type CatmullRomCurve struct {
	controlPoints []Point
	spline        CatmullRomSpline
}

// NewCatmullRomCurve returns a curve easing through the given control
// points. At least two control points are required; their x components must
// be strictly increasing and strictly inside the unit interval. Tension is
// interpreted as by [NewCatmullRomSpline].
//
// The control points must describe a single-valued function of progress:
// like [Cubic], the curve is solved by bisection on x, which requires the
// spline's x component to increase monotonically. Control points with
// sufficiently extreme slope changes can produce a spline that loops back in
// x, for which results are undefined.
func NewCatmullRomCurve(controlPoints []Point, tension float64) CatmullRomCurve {
	if len(controlPoints) < 2 {
		panic(fmt.Sprintf("got %d control points, curve needs at least 2", len(controlPoints)))
	}
	prev := 0.0
	for _, pt := range controlPoints {
		if !(pt.X > 0.0 && pt.X < 1.0) {
			panic(fmt.Sprintf("control point %v must have X strictly inside the unit interval", pt))
		}
		if pt.X <= prev {
			panic(fmt.Sprintf("control point X values must be strictly increasing, got %v after %g", pt, prev))
		}
		prev = pt.X
	}
	pts := make([]Point, 0, len(controlPoints)+2)
	pts = append(pts, Pt(0, 0))
	pts = append(pts, controlPoints...)
	pts = append(pts, Pt(1, 1))
	return CatmullRomCurve{
		controlPoints: controlPoints,
		spline:        NewCatmullRomSpline(pts, tension),
	}
}

func (c CatmullRomCurve) Transform(t float64) float64 {
	if t = checkUnit(t); t == 0.0 || t == 1.0 {
		return t
	}
	start, end := 0.0, 1.0
	var p Point
	for i := 0; i < maxCatmullRomIterations; i++ {
		mid := 0.5 * (start + end)
		p = c.spline.Transform(mid)
		if math.Abs(t-p.X) < catmullRomErrorBound {
			break
		}
		if p.X < t {
			start = mid
		} else {
			end = mid
		}
	}
	return p.Y
}

func (c CatmullRomCurve) String() string {
	return fmt.Sprintf("CatmullRomCurve%v", c.controlPoints)
}
