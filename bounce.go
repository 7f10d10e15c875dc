package ease

var _ Curve = BounceIn{}
var _ Curve = BounceOut{}
var _ Curve = BounceInOut{}

// bounce is a four-segment piecewise quadratic rising to 1.0 with three
// decaying overshoot bounces. Each segment peaks at exactly 1.0 because the
// leading coefficient is 2.75².
func bounce(t float64) float64 {
	if t < 1.0/2.75 {
		return 7.5625 * t * t
	} else if t < 2.0/2.75 {
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	} else if t < 2.5/2.75 {
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	}
	t -= 2.625 / 2.75
	return 7.5625*t*t + 0.984375
}

// BounceIn bounces with growing amplitude toward the end of the animation.
type BounceIn struct{}

func (BounceIn) Transform(t float64) float64 {
	if t = checkUnit(t); t == 0.0 || t == 1.0 {
		return t
	}
	return 1.0 - bounce(1.0-t)
}

func (BounceIn) String() string {
	return "BounceIn"
}

// BounceOut bounces like a dropped ball coming to rest, with decaying
// amplitude toward the end of the animation.
type BounceOut struct{}

func (BounceOut) Transform(t float64) float64 {
	if t = checkUnit(t); t == 0.0 || t == 1.0 {
		return t
	}
	return bounce(t)
}

func (BounceOut) String() string {
	return "BounceOut"
}

// BounceInOut bounces in over the first half of the animation and out over
// the second, each half compressed and offset to join continuously at 0.5.
type BounceInOut struct{}

func (BounceInOut) Transform(t float64) float64 {
	if t = checkUnit(t); t == 0.0 || t == 1.0 {
		return t
	}
	if t < 0.5 {
		return (1.0 - bounce(1.0-t*2.0)) * 0.5
	}
	return bounce(t*2.0-1.0)*0.5 + 0.5
}

func (BounceInOut) String() string {
	return "BounceInOut"
}
