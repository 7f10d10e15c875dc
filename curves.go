package ease

// Commonly used easing curves, ready to use. The cubic presets carry the
// control points popularized by CSS timing functions; the remaining ones are
// staples of mobile UI toolkits.
var (
	// Ease is the curve behind the CSS "ease" timing function: it speeds up
	// quickly and eases gently into the end point.
	Ease = Cubic{0.25, 0.1, 0.25, 1.0}

	// EaseIn starts slowly and speeds up toward the end.
	EaseIn = Cubic{0.42, 0.0, 1.0, 1.0}

	// EaseOut starts quickly and slows down toward the end.
	EaseOut = Cubic{0.0, 0.0, 0.58, 1.0}

	// EaseInOut starts slowly, speeds up in the middle, and slows down again
	// toward the end.
	EaseInOut = Cubic{0.42, 0.0, 0.58, 1.0}

	// EaseInToLinear begins like EaseIn and transitions into constant speed,
	// suitable for chaining in front of a linear segment.
	EaseInToLinear = Cubic{0.67, 0.03, 0.65, 0.09}

	// LinearToEaseOut begins at constant speed and eases into the end point,
	// suitable for chaining after a linear segment.
	LinearToEaseOut = Cubic{0.35, 0.91, 0.33, 0.97}

	EaseInSine    = Cubic{0.47, 0.0, 0.745, 0.715}
	EaseOutSine   = Cubic{0.39, 0.575, 0.565, 1.0}
	EaseInOutSine = Cubic{0.445, 0.05, 0.55, 0.95}

	EaseInQuad    = Cubic{0.55, 0.085, 0.68, 0.53}
	EaseOutQuad   = Cubic{0.25, 0.46, 0.45, 0.94}
	EaseInOutQuad = Cubic{0.455, 0.03, 0.515, 0.955}

	EaseInCubic    = Cubic{0.55, 0.055, 0.675, 0.19}
	EaseOutCubic   = Cubic{0.215, 0.61, 0.355, 1.0}
	EaseInOutCubic = Cubic{0.645, 0.045, 0.355, 1.0}

	EaseInQuart    = Cubic{0.895, 0.03, 0.685, 0.22}
	EaseOutQuart   = Cubic{0.165, 0.84, 0.44, 1.0}
	EaseInOutQuart = Cubic{0.77, 0.0, 0.175, 1.0}

	EaseInQuint    = Cubic{0.755, 0.05, 0.855, 0.06}
	EaseOutQuint   = Cubic{0.23, 1.0, 0.32, 1.0}
	EaseInOutQuint = Cubic{0.86, 0.0, 0.07, 1.0}

	EaseInExpo    = Cubic{0.95, 0.05, 0.795, 0.035}
	EaseOutExpo   = Cubic{0.19, 1.0, 0.22, 1.0}
	EaseInOutExpo = Cubic{1.0, 0.0, 0.0, 1.0}

	EaseInCirc    = Cubic{0.6, 0.04, 0.98, 0.335}
	EaseOutCirc   = Cubic{0.075, 0.82, 0.165, 1.0}
	EaseInOutCirc = Cubic{0.785, 0.135, 0.15, 0.86}

	// The Back curves overshoot the unit interval: EaseInBack pulls back
	// below 0 before launching, EaseOutBack shoots past 1 before settling.
	EaseInBack    = Cubic{0.6, -0.28, 0.735, 0.045}
	EaseOutBack   = Cubic{0.175, 0.885, 0.32, 1.275}
	EaseInOutBack = Cubic{0.68, -0.55, 0.265, 1.55}

	// FastOutSlowIn is the Material Design standard curve: elements that
	// begin and end at rest accelerate quickly and decelerate gently.
	FastOutSlowIn = Cubic{0.4, 0.0, 0.2, 1.0}

	// FastLinearToSlowEaseIn moves quickly at first and settles very slowly.
	FastLinearToSlowEaseIn = Cubic{0.18, 1.0, 0.04, 1.0}

	// SlowMiddle slows down in the middle of the animation and speeds up
	// toward both ends.
	SlowMiddle = Cubic{0.15, 0.85, 0.85, 0.15}

	// EaseInOutCubicEmphasized is an emphasized variant of EaseInOutCubic
	// with a steeper middle section, built from two cubic segments.
	EaseInOutCubicEmphasized = ThreePointCubic{
		A1:  Pt(0.05, 0.0),
		B1:  Pt(0.133333, 0.06),
		Mid: Pt(0.166666, 0.4),
		A2:  Pt(0.208333, 0.82),
		B2:  Pt(0.25, 1.0),
	}
)
