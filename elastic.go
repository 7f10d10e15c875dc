package ease

import (
	"fmt"
	"math"
)

var _ Curve = ElasticIn{}
var _ Curve = ElasticOut{}
var _ Curve = ElasticInOut{}

// DefaultElasticPeriod is the oscillation period used by the elastic curves
// when their Period field is zero.
const DefaultElasticPeriod = 0.4

// ElasticIn oscillates with exponentially growing amplitude, overshooting
// below 0 before snapping to the end point.
type ElasticIn struct {
	// Period is the duration of one oscillation as a fraction of the
	// animation. Zero means [DefaultElasticPeriod].
	Period float64
}

func (e ElasticIn) period() float64 {
	if e.Period == 0.0 {
		return DefaultElasticPeriod
	}
	return e.Period
}

func (e ElasticIn) Transform(t float64) float64 {
	if t = checkUnit(t); t == 0.0 || t == 1.0 {
		return t
	}
	p := e.period()
	s := p / 4.0
	t -= 1.0
	return -math.Pow(2.0, 10.0*t) * math.Sin((t-s)*(2.0*math.Pi)/p)
}

func (e ElasticIn) String() string {
	return fmt.Sprintf("ElasticIn(period: %g)", e.period())
}

// ElasticOut overshoots past 1 and oscillates with exponentially decaying
// amplitude while settling on the end point.
type ElasticOut struct {
	// Period is the duration of one oscillation as a fraction of the
	// animation. Zero means [DefaultElasticPeriod].
	Period float64
}

func (e ElasticOut) period() float64 {
	if e.Period == 0.0 {
		return DefaultElasticPeriod
	}
	return e.Period
}

func (e ElasticOut) Transform(t float64) float64 {
	if t = checkUnit(t); t == 0.0 || t == 1.0 {
		return t
	}
	p := e.period()
	s := p / 4.0
	return math.Pow(2.0, -10.0*t)*math.Sin((t-s)*(2.0*math.Pi)/p) + 1.0
}

func (e ElasticOut) String() string {
	return fmt.Sprintf("ElasticOut(period: %g)", e.period())
}

// ElasticInOut grows in amplitude over the first half of the animation and
// decays over the second, overshooting the unit interval on both sides.
type ElasticInOut struct {
	// Period is the duration of one oscillation as a fraction of the
	// animation. Zero means [DefaultElasticPeriod].
	Period float64
}

func (e ElasticInOut) period() float64 {
	if e.Period == 0.0 {
		return DefaultElasticPeriod
	}
	return e.Period
}

func (e ElasticInOut) Transform(t float64) float64 {
	if t = checkUnit(t); t == 0.0 || t == 1.0 {
		return t
	}
	p := e.period()
	s := p / 4.0
	t = 2.0*t - 1.0
	if t < 0.0 {
		return -0.5 * math.Pow(2.0, 10.0*t) * math.Sin((t-s)*(2.0*math.Pi)/p)
	}
	return math.Pow(2.0, -10.0*t)*math.Sin((t-s)*(2.0*math.Pi)/p)*0.5 + 1.0
}

func (e ElasticInOut) String() string {
	return fmt.Sprintf("ElasticInOut(period: %g)", e.period())
}
