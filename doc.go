// Package kinex is a property tweening engine.
//
// Given a target, a set of numeric or unit-suffixed properties, a duration
// and an easing curve, kinex drives those properties from their start values
// to their end values frame by frame and notifies observers at start, on
// every update and on completion.
//
// # Quick start
//
// An [Engine] owns the registry of running tweens. With a zero [Config] it
// creates its own [Loop], which the host advances once per frame:
//
//	engine := kinex.NewEngine(kinex.Config{})
//	box := kinex.NewStyle()
//	box.Set("left", "0px")
//
//	done, err := engine.To(box, time.Second, kinex.Props{}.Add("left", "120px"),
//		kinex.Options{Easing: kinex.Bezier{0.25, 0, 0, 1}})
//	if err != nil {
//		// box has no starting value for a property
//	}
//
//	// each frame:
//	engine.Loop().Advance(sinceStart)
//
// The returned [Completion] resolves when the tween finishes or is stopped.
// [Completion.Tween] gives the [Tween], whose Stop method cancels it.
//
// # Targets
//
// Targets implement [Target]. Three variants are provided: [Object] is a
// plain property bag, [Style] is the styling surface of a visual element
// where every value is a string and unset values are empty, and [Viewport]
// routes "scrollX" and "scrollY" to a [Scroller].
//
// Units are preserved: the unit of the end value is reattached to every
// written value. Values without a leading numeral read as zero.
//
// # One tween per target
//
// Requesting a tween on a target that already has one stops the previous
// run (its on-complete never fires and its Completion resolves) and reuses
// the same [Tween] for the new request.
//
// # Easing
//
// An easing is a [Curve]: an [EasingFunc], a cubic [Bezier] control tuple
// solved by [CubicBezier], or a [Named] preset. Built-in names cover the CSS
// keywords and every [gween] easing function; more can be loaded with
// [LoadPresets].
//
// The [ebitenhost] package runs an Engine inside an Ebitengine game loop.
//
// [gween]: https://github.com/tanema/gween
// [ebitenhost]: https://pkg.go.dev/github.com/phanxgames/kinex/ebitenhost
package kinex
