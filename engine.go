package kinex

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"
)

// Config configures an Engine. Zero values select defaults.
type Config struct {
	// Frames, Timers and Clock are the host collaborators. Frames and Clock
	// share a time base: when only one of them is set it must implement the
	// other interface too, and it serves both. A nil Timers is served by
	// Frames when Frames implements Timer. Any collaborator still nil is
	// served by a Loop owned by the Engine, available from [Engine.Loop].
	Frames FrameScheduler
	Timers Timer
	Clock  Clock

	// Logger receives lifecycle logs and the warnings raised while
	// building a tween. Nil uses the package [Logger].
	Logger *slog.Logger

	// Presets are consulted before the built-in easing names.
	Presets Presets
}

// Engine tracks at most one tween per target. Requesting a tween on a target
// that already has one stops the previous run and reuses its [Tween].
//
// An Engine is not safe for concurrent use. All calls and all callbacks must
// happen on the goroutine that drives its collaborators.
type Engine struct {
	frames  FrameScheduler
	timers  Timer
	clock   Clock
	loop    *Loop
	log     *slog.Logger
	presets Presets

	active map[Target]*Tween
}

// NewEngine returns an empty Engine. It panics if only one of Frames and
// Clock is set and it does not implement the other interface.
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		frames:  cfg.Frames,
		timers:  cfg.Timers,
		clock:   cfg.Clock,
		log:     cfg.Logger,
		presets: cfg.Presets,
		active:  make(map[Target]*Tween),
	}
	switch {
	case e.frames != nil && e.clock == nil:
		c, ok := e.frames.(Clock)
		if !ok {
			panic("kinex: Config.Frames without a Clock on the same time base")
		}
		e.clock = c
	case e.clock != nil && e.frames == nil:
		f, ok := e.clock.(FrameScheduler)
		if !ok {
			panic("kinex: Config.Clock without Frames on the same time base")
		}
		e.frames = f
	}
	if e.timers == nil && e.frames != nil {
		if t, ok := e.frames.(Timer); ok {
			e.timers = t
		}
	}
	if e.frames == nil || e.timers == nil || e.clock == nil {
		e.loop = NewLoop()
		if e.frames == nil {
			e.frames = e.loop
		}
		if e.timers == nil {
			e.timers = e.loop
		}
		if e.clock == nil {
			e.clock = e.loop
		}
	}
	if e.log == nil {
		e.log = Logger()
	}
	return e
}

// Loop returns the Loop serving collaborators missing from the Config, or
// nil when all were supplied.
func (e *Engine) Loop() *Loop {
	return e.loop
}

// Options are the optional parameters of a tween request.
type Options struct {
	// Delay postpones the first frame. On-start still fires immediately.
	Delay time.Duration
	// Easing maps time progress to value progress. Nil is linear.
	Easing Curve

	OnStart    Callback
	OnUpdate   Callback
	OnComplete Callback
}

// To animates the properties of target from their current values to the
// values in props over duration.
//
// It fails, without touching any running tween, when a property has no
// current value to start from. Properties already at their end value are
// left alone.
func (e *Engine) To(target Target, duration time.Duration, props Props, opts Options) (*Completion, error) {
	return e.animate(target, duration, props, nil, opts)
}

// From animates the properties of target from the values in props back to
// their current values. A property the target cannot report ends at 0.
func (e *Engine) From(target Target, duration time.Duration, props Props, opts Options) (*Completion, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	props = props.collapse()
	starts := make(map[string]any, len(props))
	ends := make(Props, 0, len(props))
	for _, p := range props {
		starts[p.Name] = p.Value
		cur, err := target.Property(p.Name)
		if err != nil || cur == nil {
			cur = 0.0
		}
		ends = append(ends, Prop{Name: p.Name, Value: cur})
	}
	return e.animate(target, duration, ends, starts, opts)
}

func (e *Engine) animate(target Target, duration time.Duration, props Props, starts map[string]any, opts Options) (*Completion, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	normalized, err := normalize(target, props, starts, e.log)
	if err != nil {
		return nil, fmt.Errorf("tween %s: %w", targetName(target), err)
	}
	easing := resolveCurve(opts.Easing, e.presets, e.log)

	tw, ok := e.active[target]
	if ok {
		tw.Stop()
		e.log.Debug("tween replaced", "target", targetName(target))
	} else {
		tw = &Tween{engine: e, target: target}
	}
	tw.reset(max(duration, 0), max(opts.Delay, 0), normalized, easing, opts)
	e.active[target] = tw
	e.log.Debug("tween registered", "target", targetName(target),
		"duration", tw.duration, "delay", tw.delay, "properties", len(normalized))

	return tw.start(), nil
}

// StopAll stops every registered tween and empties the registry. No
// on-complete callback fires.
func (e *Engine) StopAll() {
	tweens := slices.Collect(maps.Values(e.active))
	for _, tw := range tweens {
		tw.Stop()
	}
	clear(e.active)
	e.log.Debug("all tweens stopped", "count", len(tweens))
}

// Active returns the tween registered for target.
func (e *Engine) Active(target Target) (*Tween, bool) {
	tw, ok := e.active[target]
	return tw, ok
}

// Len returns the number of registered tweens.
func (e *Engine) Len() int {
	return len(e.active)
}

// remove deregisters tw if it is still the tween registered for its target.
func (e *Engine) remove(tw *Tween) {
	if cur, ok := e.active[tw.target]; ok && cur == tw {
		delete(e.active, tw.target)
	}
}

func targetName(t Target) string {
	return fmt.Sprintf("%T@%p", t, t)
}
