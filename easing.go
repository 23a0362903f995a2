package kinex

import (
	"log/slog"
	"sort"

	"github.com/tanema/gween/ease"
)

// Easing maps progress in time, in [0, 1], to progress in value. The result
// is usually in [0, 1] but overshooting curves may leave that range.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// Curve is an easing configuration. It is one of [EasingFunc], [Bezier] or
// [Named]; a nil Curve resolves to [Linear].
type Curve interface {
	resolve(p Presets, log *slog.Logger) Easing
}

// EasingFunc uses a progress-mapping function as is.
type EasingFunc func(t float64) float64

func (f EasingFunc) resolve(Presets, *slog.Logger) Easing {
	if f == nil {
		return Linear
	}
	return Easing(f)
}

// Bezier is a cubic Bézier control tuple {x1, y1, x2, y2}.
type Bezier [4]float64

func (b Bezier) resolve(Presets, *slog.Logger) Easing {
	return CubicBezier(b[0], b[1], b[2], b[3])
}

// Named refers to an easing preset by name, for example "ease-in-out" or
// "OutBounce". Names are looked up in the engine presets first and then in
// the built-in table. An unknown name resolves to [Linear].
type Named string

func (n Named) resolve(p Presets, log *slog.Logger) Easing {
	name := string(n)
	// Follow preset aliases; a cycle runs out of hops and falls through.
	for range len(p) + 1 {
		c, ok := p[name]
		if !ok {
			break
		}
		alias, ok := c.(Named)
		if !ok {
			return resolveCurve(c, nil, log)
		}
		name = string(alias)
	}
	if e, ok := builtinEasings[name]; ok {
		return e
	}
	log.Warn("unknown easing preset", "name", string(n))
	return Linear
}

// resolveCurve turns an easing configuration into an easing function.
// Warnings go to log, or to the package Logger when log is nil.
func resolveCurve(c Curve, p Presets, log *slog.Logger) Easing {
	if c == nil {
		return Linear
	}
	if log == nil {
		log = Logger()
	}
	return c.resolve(p, log)
}

// Ease adapts a gween easing function to an Easing. The function is evaluated
// over a unit change and unit duration, so its result is progress in value.
func Ease(fn ease.TweenFunc) Easing {
	if fn == nil {
		return Linear
	}
	return func(t float64) float64 {
		switch t {
		case 0:
			return 0
		case 1:
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// builtinEasings holds the CSS keyword curves and every gween easing function.
var builtinEasings = map[string]Easing{
	"linear":      Linear,
	"ease":        CubicBezier(0.25, 0.1, 0.25, 1.0),
	"ease-in":     CubicBezier(0.42, 0, 1, 1),
	"ease-out":    CubicBezier(0, 0, 0.58, 1),
	"ease-in-out": CubicBezier(0.42, 0, 0.58, 1),

	"Linear":       Ease(ease.Linear),
	"InQuad":       Ease(ease.InQuad),
	"OutQuad":      Ease(ease.OutQuad),
	"InOutQuad":    Ease(ease.InOutQuad),
	"OutInQuad":    Ease(ease.OutInQuad),
	"InCubic":      Ease(ease.InCubic),
	"OutCubic":     Ease(ease.OutCubic),
	"InOutCubic":   Ease(ease.InOutCubic),
	"OutInCubic":   Ease(ease.OutInCubic),
	"InQuart":      Ease(ease.InQuart),
	"OutQuart":     Ease(ease.OutQuart),
	"InOutQuart":   Ease(ease.InOutQuart),
	"OutInQuart":   Ease(ease.OutInQuart),
	"InQuint":      Ease(ease.InQuint),
	"OutQuint":     Ease(ease.OutQuint),
	"InOutQuint":   Ease(ease.InOutQuint),
	"OutInQuint":   Ease(ease.OutInQuint),
	"InSine":       Ease(ease.InSine),
	"OutSine":      Ease(ease.OutSine),
	"InOutSine":    Ease(ease.InOutSine),
	"OutInSine":    Ease(ease.OutInSine),
	"InExpo":       Ease(ease.InExpo),
	"OutExpo":      Ease(ease.OutExpo),
	"InOutExpo":    Ease(ease.InOutExpo),
	"OutInExpo":    Ease(ease.OutInExpo),
	"InCirc":       Ease(ease.InCirc),
	"OutCirc":      Ease(ease.OutCirc),
	"InOutCirc":    Ease(ease.InOutCirc),
	"OutInCirc":    Ease(ease.OutInCirc),
	"InElastic":    Ease(ease.InElastic),
	"OutElastic":   Ease(ease.OutElastic),
	"InOutElastic": Ease(ease.InOutElastic),
	"OutInElastic": Ease(ease.OutInElastic),
	"InBack":       Ease(ease.InBack),
	"OutBack":      Ease(ease.OutBack),
	"InOutBack":    Ease(ease.InOutBack),
	"OutInBack":    Ease(ease.OutInBack),
	"InBounce":     Ease(ease.InBounce),
	"OutBounce":    Ease(ease.OutBounce),
	"InOutBounce":  Ease(ease.InOutBounce),
	"OutInBounce":  Ease(ease.OutInBounce),
}

// EasingNames returns the names of the built-in presets in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(builtinEasings))
	for name := range builtinEasings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
