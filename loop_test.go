package kinex

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const ms = time.Millisecond

func TestLoopFramesRunOnNextAdvance(t *testing.T) {
	l := NewLoop()
	var got []time.Duration
	var again func(time.Duration)
	again = func(now time.Duration) {
		got = append(got, now)
		if len(got) < 3 {
			l.RequestFrame(again)
		}
	}
	l.RequestFrame(again)

	if len(got) != 0 {
		t.Fatal("frame ran before Advance")
	}
	l.Advance(16 * ms)
	l.Advance(32 * ms)
	l.Advance(48 * ms)
	l.Advance(64 * ms)

	want := []time.Duration{16 * ms, 32 * ms, 48 * ms}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("frame timestamps mismatch (-want +got):\n%s", diff)
	}
}

func TestLoopCancelFrame(t *testing.T) {
	l := NewLoop()
	ran := false
	id := l.RequestFrame(func(time.Duration) { ran = true })
	l.CancelFrame(id)
	l.Advance(10 * ms)
	if ran {
		t.Error("cancelled frame ran")
	}
	if l.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", l.Pending())
	}
}

func TestLoopCancelFrameDuringTick(t *testing.T) {
	l := NewLoop()
	var second FrameID
	ran := false
	l.RequestFrame(func(time.Duration) { l.CancelFrame(second) })
	second = l.RequestFrame(func(time.Duration) { ran = true })
	l.Advance(ms)
	if ran {
		t.Error("frame cancelled earlier in the same tick still ran")
	}
}

func TestLoopTimersInDeadlineOrderBeforeFrames(t *testing.T) {
	l := NewLoop()
	var order []string
	l.RequestFrame(func(time.Duration) { order = append(order, "frame") })
	l.AfterFunc(30*ms, func() { order = append(order, "t30") })
	l.AfterFunc(10*ms, func() { order = append(order, "t10") })
	l.AfterFunc(20*ms, func() { order = append(order, "t20") })
	l.AfterFunc(50*ms, func() { order = append(order, "t50") })

	l.Advance(30 * ms)

	want := []string{"t10", "t20", "t30", "frame"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if l.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", l.Pending())
	}
}

func TestLoopFrameRequestedByTimerWaits(t *testing.T) {
	l := NewLoop()
	var frames []time.Duration
	l.AfterFunc(5*ms, func() {
		l.RequestFrame(func(now time.Duration) { frames = append(frames, now) })
	})
	l.Advance(5 * ms)
	if len(frames) != 0 {
		t.Fatalf("frame requested by a timer ran in the same tick at %v", frames)
	}
	l.Advance(21 * ms)
	if diff := cmp.Diff([]time.Duration{21 * ms}, frames); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
}

func TestLoopCancelTimer(t *testing.T) {
	l := NewLoop()
	ran := false
	id := l.AfterFunc(5*ms, func() { ran = true })
	l.CancelTimer(id)
	l.Advance(10 * ms)
	if ran {
		t.Error("cancelled timer ran")
	}
}

func TestLoopTimeIsMonotonic(t *testing.T) {
	l := NewLoop()
	l.Advance(40 * ms)
	l.Advance(10 * ms)
	if l.Now() != 40*ms {
		t.Errorf("Now = %v, want 40ms", l.Now())
	}
	l.Step(5 * ms)
	if l.Now() != 45*ms {
		t.Errorf("Now = %v, want 45ms", l.Now())
	}
}
