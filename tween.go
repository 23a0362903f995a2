package kinex

import (
	"context"
	"fmt"
	"slices"
	"time"
)

// State is the lifecycle position of a tween.
//
//	Pending ──► Delayed ──► Running ──► Completed
//	   │           │           │
//	   └───────────┴───────────┴──────► Stopped
//
// Delayed is skipped when there is no delay. A new request for the same
// target starts over from Pending.
type State int

const (
	// StatePending means the tween is built but has not started.
	StatePending State = iota
	// StateDelayed means on-start has fired and the delay timer is pending.
	StateDelayed
	// StateRunning means frames are being delivered.
	StateRunning
	// StateCompleted means the final frame ran and on-complete fired.
	StateCompleted
	// StateStopped means Stop was called before completion.
	StateStopped
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateDelayed:
		return "delayed"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Snapshot maps property names to formatted values.
type Snapshot map[string]any

// Callback observes a tween. The snapshot is owned by the callback.
type Callback func(values Snapshot, tw *Tween)

// Tween animates the properties of one target. It is created by
// [Engine.To] and [Engine.From] and reused, with the same identity, when
// another request arrives for the same target.
type Tween struct {
	engine *Engine
	target Target

	duration time.Duration
	delay    time.Duration
	props    []PropertyTween
	easing   Easing

	onStart    Callback
	onUpdate   Callback
	onComplete Callback

	state     State
	stopped   bool
	started   bool
	startTime time.Duration

	frame    FrameID
	hasFrame bool
	timer    TimerID
	hasTimer bool

	run *Completion
}

// reset prepares a fresh run. The previous run must already be stopped.
func (tw *Tween) reset(duration, delay time.Duration, props []PropertyTween, easing Easing, opts Options) {
	tw.duration = duration
	tw.delay = delay
	tw.props = props
	tw.easing = easing
	tw.onStart = opts.OnStart
	tw.onUpdate = opts.OnUpdate
	tw.onComplete = opts.OnComplete

	tw.state = StatePending
	tw.stopped = false
	tw.started = false
	tw.startTime = 0
	tw.hasFrame = false
	tw.hasTimer = false
	tw.run = &Completion{tween: tw, done: make(chan struct{})}
}

// start fires on-start and either arms the delay timer or runs the first
// frame right away.
func (tw *Tween) start() *Completion {
	run := tw.run
	if tw.onStart != nil {
		values := make(Snapshot, len(tw.props))
		for _, p := range tw.props {
			values[p.Name] = FormatValue(p.Start, p.Unit)
		}
		tw.onStart(values, tw)
		if tw.run != run || tw.stopped {
			return run
		}
	}
	if tw.delay > 0 {
		tw.state = StateDelayed
		tw.timer = tw.engine.timers.AfterFunc(tw.delay, tw.begin)
		tw.hasTimer = true
		return run
	}
	tw.begin()
	return run
}

func (tw *Tween) begin() {
	tw.hasTimer = false
	if tw.stopped {
		return
	}
	tw.state = StateRunning
	tw.engine.log.Debug("tween started", "target", targetName(tw.target))
	tw.step(tw.engine.clock.Now())
}

// step writes the values for timestamp now and schedules the next frame or
// completes the tween.
func (tw *Tween) step(now time.Duration) {
	tw.hasFrame = false
	if tw.stopped {
		return
	}
	if !tw.started {
		tw.started = true
		tw.startTime = now
	}

	raw := 1.0
	if tw.duration > 0 {
		raw = min(float64(now-tw.startTime)/float64(tw.duration), 1)
	}
	progress := tw.easing(raw)

	values := make(Snapshot, len(tw.props))
	for _, p := range tw.props {
		v := p.Value(progress)
		values[p.Name] = v
		tw.target.SetProperty(p.Name, v)
	}

	run := tw.run
	if tw.onUpdate != nil {
		tw.onUpdate(values, tw)
		if tw.run != run || tw.stopped {
			return
		}
	}

	if raw < 1 {
		tw.frame = tw.engine.frames.RequestFrame(tw.step)
		tw.hasFrame = true
		return
	}

	tw.state = StateCompleted
	if tw.onComplete != nil {
		tw.onComplete(values, tw)
		// A request made from on-complete owns the target now.
		if tw.run != run {
			return
		}
	}
	tw.engine.remove(tw)
	run.resolve()
	tw.engine.log.Debug("tween completed", "target", targetName(tw.target))
}

// Stop halts the tween: no further frames or callbacks, no final value, and
// on-complete does not fire. The tween is removed from its Engine and the
// current Completion resolves. Stop is idempotent and returns tw.
func (tw *Tween) Stop() *Tween {
	if !tw.stopped {
		tw.stopped = true
		if tw.state != StateCompleted {
			tw.state = StateStopped
			tw.engine.log.Debug("tween stopped", "target", targetName(tw.target))
		}
	}
	if tw.hasFrame {
		tw.engine.frames.CancelFrame(tw.frame)
		tw.hasFrame = false
	}
	if tw.hasTimer {
		tw.engine.timers.CancelTimer(tw.timer)
		tw.hasTimer = false
	}
	tw.engine.remove(tw)
	if tw.run != nil {
		tw.run.resolve()
	}
	return tw
}

// Target returns the animated target.
func (tw *Tween) Target() Target { return tw.target }

// Duration returns the length of the current run.
func (tw *Tween) Duration() time.Duration { return tw.duration }

// Delay returns the delay of the current run.
func (tw *Tween) Delay() time.Duration { return tw.delay }

// State returns the lifecycle state of the current run.
func (tw *Tween) State() State { return tw.state }

// Properties returns the animated properties of the current run, in request
// order, excluding those that were already at their end value.
func (tw *Tween) Properties() []PropertyTween {
	return slices.Clone(tw.props)
}

// Completion resolves when one run of a tween completes or is stopped. It
// does not say which; see [Tween.State] for that.
type Completion struct {
	tween *Tween
	done  chan struct{}
}

// Done returns a channel that is closed when the run ends.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Finished reports whether the run has ended.
func (c *Completion) Finished() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the run ends or ctx is done. The goroutine driving the
// Engine must not call Wait.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Tween returns the tween the run belongs to. Stopping it stops whichever run
// is current.
func (c *Completion) Tween() *Tween {
	return c.tween
}

func (c *Completion) resolve() {
	if !c.Finished() {
		close(c.done)
	}
}
