package kinex

import (
	"sort"
	"time"
)

// FrameID identifies a requested frame callback.
type FrameID uint64

// TimerID identifies a scheduled timer callback.
type TimerID uint64

// FrameScheduler invokes callbacks about once per display refresh with a
// monotonic timestamp.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Duration)) FrameID
	CancelFrame(id FrameID)
}

// Timer invokes a callback once after a delay.
type Timer interface {
	AfterFunc(d time.Duration, fn func()) TimerID
	CancelTimer(id TimerID)
}

// Clock provides monotonic timestamps measured from an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

type frameRequest struct {
	id FrameID
	fn func(time.Duration)
}

type timerEntry struct {
	id       TimerID
	deadline time.Duration
	fn       func()
}

// Loop is a frame scheduler, timer and clock driven by the host. The host
// calls Advance once per frame; nothing happens between calls. Loop is not
// safe for concurrent use: all callbacks run on the goroutine calling
// Advance.
type Loop struct {
	now    time.Duration
	nextID uint64

	frames []frameRequest
	timers []timerEntry
	live   map[uint64]struct{}
}

// NewLoop returns a Loop whose clock starts at zero.
func NewLoop() *Loop {
	return &Loop{live: make(map[uint64]struct{})}
}

func (l *Loop) id() uint64 {
	l.nextID++
	l.live[l.nextID] = struct{}{}
	return l.nextID
}

// Now returns the timestamp of the latest Advance.
func (l *Loop) Now() time.Duration {
	return l.now
}

// RequestFrame schedules fn for the next Advance.
func (l *Loop) RequestFrame(fn func(now time.Duration)) FrameID {
	id := FrameID(l.id())
	l.frames = append(l.frames, frameRequest{id: id, fn: fn})
	return id
}

// CancelFrame drops a pending frame callback. Unknown or spent IDs are
// ignored.
func (l *Loop) CancelFrame(id FrameID) {
	delete(l.live, uint64(id))
}

// AfterFunc schedules fn for the first Advance at or after Now()+d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) TimerID {
	id := TimerID(l.id())
	e := timerEntry{id: id, deadline: l.now + d, fn: fn}
	i := sort.Search(len(l.timers), func(i int) bool {
		return l.timers[i].deadline > e.deadline
	})
	l.timers = append(l.timers, timerEntry{})
	copy(l.timers[i+1:], l.timers[i:])
	l.timers[i] = e
	return id
}

// CancelTimer drops a pending timer. Unknown or spent IDs are ignored.
func (l *Loop) CancelTimer(id TimerID) {
	delete(l.live, uint64(id))
}

// Advance moves the clock to now and runs what is due: first the timers
// whose deadline has passed, in deadline order, then every frame callback
// requested before this call. Callbacks scheduled while advancing wait for
// the next call. Time never goes backwards; an earlier now is treated as
// the current time.
func (l *Loop) Advance(now time.Duration) {
	if now > l.now {
		l.now = now
	}

	frames := l.frames
	l.frames = nil

	n := sort.Search(len(l.timers), func(i int) bool {
		return l.timers[i].deadline > l.now
	})
	due := make([]timerEntry, n)
	copy(due, l.timers[:n])
	l.timers = append(l.timers[:0], l.timers[n:]...)

	for _, t := range due {
		if _, ok := l.live[uint64(t.id)]; !ok {
			continue
		}
		delete(l.live, uint64(t.id))
		t.fn()
	}
	for _, f := range frames {
		if _, ok := l.live[uint64(f.id)]; !ok {
			continue
		}
		delete(l.live, uint64(f.id))
		f.fn(l.now)
	}
}

// Step advances the clock by dt.
func (l *Loop) Step(dt time.Duration) {
	l.Advance(l.now + dt)
}

// Pending reports the number of frame and timer callbacks still waiting.
func (l *Loop) Pending() int {
	return len(l.live)
}
