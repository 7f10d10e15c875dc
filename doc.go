// Package ease provides easing curves for animation.
//
// An easing curve shapes the perceived speed of an animated value. It maps
// normalized animation progress — a value in [0, 1] supplied by an animation
// timing system — to eased progress. Eased progress usually stays inside the
// unit interval, but some curves intentionally overshoot it (see [ElasticIn]
// and friends) or are discontinuous within it (see [SawTooth]).
//
// # Curves
//
// [Curve] is the core interface, a pure function from progress to eased
// progress. This package includes the following curves:
//
//   - [Linear]
//   - [SawTooth]
//   - [Interval]
//   - [Threshold]
//   - [Cubic]
//   - [ThreePointCubic]
//   - [FlippedCurve]
//   - [Decelerate]
//   - [BounceIn], [BounceOut], [BounceInOut]
//   - [ElasticIn], [ElasticOut], [ElasticInOut]
//   - [CatmullRomCurve]
//
// In addition, a catalog of commonly used cubic Bézier presets such as [Ease]
// and [FastOutSlowIn] is provided as ready-made values.
//
// All curves are immutable values. Evaluation is stateless and side-effect
// free, so curves are safe to share between goroutines without
// synchronization.
//
// # Boundary behavior
//
// Every curve maps 0 to 0 and 1 to 1; the boundary values pass through before
// any per-curve math runs. This guarantees that animations start and end at
// their defined endpoints even when intermediate values overshoot or jump.
//
// Progress outside [0, 1] is a bug in the caller, as are invalid curve
// parameters such as a non-positive [SawTooth] count. Both panic. The timing
// system driving the animation is responsible for clamping the progress it
// samples.
//
// # Two-dimensional curves
//
// [Curve2D] describes parametric curves in two dimensions, evaluated at
// t ∈ [0, 1] and returning [Point] values. [CatmullRomSpline] implements it,
// interpolating smoothly through a series of control points. Wrapping such a
// spline, [CatmullRomCurve] turns a set of (progress, value) control points
// into an easing curve.
package ease
