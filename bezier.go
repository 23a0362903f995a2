package kinex

import "math"

const (
	bezierEpsilon    = 1e-6
	newtonIterations = 8
	// Bisection halves [0,1] each pass; float64 runs out of precision well
	// before this bound.
	bisectIterations = 64
)

// bezierCurve holds the polynomial coefficients of a cubic Bézier curve
// anchored at (0,0) and (1,1), in the form ((a*s + b)*s + c)*s per axis.
type bezierCurve struct {
	ax, bx, cx float64
	ay, by, cy float64
}

func newBezierCurve(x1, y1, x2, y2 float64) bezierCurve {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	return bezierCurve{
		ax: 1 - cx - bx, bx: bx, cx: cx,
		ay: 1 - cy - by, by: by, cy: cy,
	}
}

func (c *bezierCurve) sampleX(s float64) float64 {
	return ((c.ax*s+c.bx)*s + c.cx) * s
}

func (c *bezierCurve) sampleY(s float64) float64 {
	return ((c.ay*s+c.by)*s + c.cy) * s
}

func (c *bezierCurve) sampleDerivativeX(s float64) float64 {
	return (3*c.ax*s+2*c.bx)*s + c.cx
}

// solveX returns the curve parameter s for which X(s) == x.
func (c *bezierCurve) solveX(x float64) float64 {
	// Newton-Raphson converges quickly for most values.
	s := x
	for range newtonIterations {
		dx := c.sampleX(s) - x
		if math.Abs(dx) < bezierEpsilon {
			return s
		}
		d := c.sampleDerivativeX(s)
		if math.Abs(d) < bezierEpsilon {
			break
		}
		s -= dx / d
	}

	// Fall back to bisection over [0,1].
	lo, hi := 0.0, 1.0
	s = x
	if s < lo {
		return lo
	}
	if s > hi {
		return hi
	}
	for range bisectIterations {
		if lo >= hi {
			break
		}
		sx := c.sampleX(s)
		if math.Abs(sx-x) < bezierEpsilon {
			return s
		}
		if x > sx {
			lo = s
		} else {
			hi = s
		}
		s = (hi-lo)*0.5 + lo
	}
	return s
}

// CubicBezier returns an easing function matching CSS cubic-bezier(). The
// parameters are the two interior control points (x1,y1) and (x2,y2) of a
// curve that starts at (0,0) and ends at (1,1).
//
// The result is the Y coordinate of the point whose X coordinate equals t.
// It is not clamped, so curves with y1 or y2 outside [0,1] overshoot.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	c := newBezierCurve(x1, y1, x2, y2)
	return func(t float64) float64 {
		// The end point is exact by construction; avoid rounding in the
		// polynomial so a finished tween lands on its end value.
		if t == 1 {
			return 1
		}
		return c.sampleY(c.solveX(t))
	}
}
