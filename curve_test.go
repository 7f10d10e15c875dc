package ease

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func allCurves() []Curve {
	return []Curve{
		Linear{},
		SawTooth{Count: 3},
		Interval{Begin: 0.25, End: 0.75},
		Interval{Begin: 0.25, End: 0.75, Curve: ElasticIn{}},
		Threshold{Threshold: 0.5},
		Ease,
		EaseInOutBack,
		EaseInOutCubicEmphasized,
		Flip(Ease),
		Flip(BounceOut{}),
		Decelerate{},
		BounceIn{},
		BounceOut{},
		BounceInOut{},
		ElasticIn{},
		ElasticOut{},
		ElasticInOut{},
		ElasticInOut{Period: 0.7},
		NewCatmullRomCurve([]Point{Pt(0.25, 0.1), Pt(0.5, 0.5), Pt(0.75, 0.9)}, 0.0),
	}
}

// Animations must start and end exactly at their defined endpoints, even for
// curves that overshoot or jump in between.
func TestBoundaryFixedPoints(t *testing.T) {
	for _, c := range allCurves() {
		t.Run(fmt.Sprint(c), func(t *testing.T) {
			if got := c.Transform(0.0); got != 0.0 {
				t.Errorf("%v.Transform(0) = %g, want 0", c, got)
			}
			if got := c.Transform(1.0); got != 1.0 {
				t.Errorf("%v.Transform(1) = %g, want 1", c, got)
			}
		})
	}
}

func TestLinear(t *testing.T) {
	for i := 0; i < 101; i++ {
		ts := float64(i) / 100
		diff(t, ts, Linear{}.Transform(ts))
	}
}

func TestDecelerate(t *testing.T) {
	diff(t, 0.75, Decelerate{}.Transform(0.5))
	diff(t, 0.4375, Decelerate{}.Transform(0.25))
}

func TestFlippedLinear(t *testing.T) {
	// Flipping mirrors both axes, so the flip of the identity is the
	// identity.
	c := Flip(Linear{})
	for i := 0; i < 101; i++ {
		ts := float64(i) / 100
		diff(t, ts, c.Transform(ts), cmpopts.EquateApprox(0, 1e-15))
	}
}

func TestFlipTwice(t *testing.T) {
	curves := []Curve{BounceOut{}, ElasticOut{}, Decelerate{}, SawTooth{Count: 2}}
	for _, c := range curves {
		ff := Flip(Flip(c))
		for i := 0; i < 101; i++ {
			ts := float64(i) / 100
			diff(t, c.Transform(ts), ff.Transform(ts), cmpopts.EquateApprox(1e-9, 1e-9))
		}
	}
	// Cubic solves numerically, so double flipping stays within the solver's
	// error bound rather than machine precision.
	ff := Flip(Flip(Ease))
	for i := 0; i < 101; i++ {
		ts := float64(i) / 100
		diff(t, Ease.Transform(ts), ff.Transform(ts), cmpopts.EquateApprox(0, 0.01))
	}
}

func TestPreconditionPanics(t *testing.T) {
	expectPanic(t, func() { Linear{}.Transform(-0.01) })
	expectPanic(t, func() { Linear{}.Transform(1.01) })
	expectPanic(t, func() { Linear{}.Transform(math.NaN()) })
	expectPanic(t, func() { BounceOut{}.Transform(math.Inf(1)) })
	expectPanic(t, func() { SawTooth{}.Transform(0.5) })
	expectPanic(t, func() { SawTooth{Count: -1}.Transform(0.5) })
	expectPanic(t, func() { Interval{Begin: 0.8, End: 0.2}.Transform(0.5) })
	expectPanic(t, func() { Interval{Begin: -0.1, End: 0.5}.Transform(0.5) })
	expectPanic(t, func() { Interval{Begin: 0.5, End: 1.1}.Transform(0.5) })
	expectPanic(t, func() { Threshold{Threshold: 1.5}.Transform(0.5) })
	expectPanic(t, func() { Threshold{Threshold: -0.5}.Transform(0.5) })
}

func TestString(t *testing.T) {
	diff(t, "Linear", fmt.Sprint(Linear{}))
	diff(t, "Decelerate", fmt.Sprint(Decelerate{}))
	diff(t, "SawTooth(3)", fmt.Sprint(SawTooth{Count: 3}))
	diff(t, "Interval(0.25, 0.75)", fmt.Sprint(Interval{Begin: 0.25, End: 0.75}))
	diff(t, "Interval(0.25, 0.75) with Decelerate", fmt.Sprint(Interval{Begin: 0.25, End: 0.75, Curve: Decelerate{}}))
	diff(t, "Threshold(0.5)", fmt.Sprint(Threshold{Threshold: 0.5}))
	diff(t, "Cubic(0.25, 0.10, 0.25, 1.00)", fmt.Sprint(Ease))
	diff(t, "FlippedCurve(BounceOut)", fmt.Sprint(Flip(BounceOut{})))
	diff(t, "ElasticIn(period: 0.4)", fmt.Sprint(ElasticIn{}))
	diff(t, "ElasticOut(period: 0.7)", fmt.Sprint(ElasticOut{Period: 0.7}))
	diff(t, "CatmullRomCurve[(0.25, 0.25) (0.75, 0.75)]",
		fmt.Sprint(NewCatmullRomCurve([]Point{Pt(0.25, 0.25), Pt(0.75, 0.75)}, 0.0)))
}
