package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/devmenu/pkg/animation"
	"github.com/go-drift/devmenu/pkg/rendering"
	devtest "github.com/go-drift/devmenu/pkg/testing"
)

func useFakeClock(t *testing.T) *devtest.FakeClock {
	t.Helper()
	clk := devtest.NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

func step(clk *devtest.FakeClock, d time.Duration) {
	clk.Advance(d)
	animation.StepTickers()
}

var (
	fromFrame = animation.Frame{
		Position: rendering.Offset{X: 0, Y: 0},
		Size:     rendering.Size{Width: 60, Height: 40},
		Scale:    1.1,
	}
	toFrame = animation.Frame{
		Position: rendering.Offset{X: 100, Y: 200},
		Size:     rendering.Size{Width: 20, Height: 80},
		Scale:    1,
	}
)

func TestDriver_InterpolatesAllChannelsTogether(t *testing.T) {
	clk := useFakeClock(t)
	var frames []animation.Frame
	var done *animation.Frame

	h := animation.NewDriver(animation.LinearCurve).Animate(fromFrame, toFrame, 100*time.Millisecond,
		func(f animation.Frame) { frames = append(frames, f) },
		func(f animation.Frame) { done = &f },
	)

	step(clk, 50*time.Millisecond)
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	mid := frames[0]
	if !mid.Position.NearlyEqual(rendering.Offset{X: 50, Y: 100}) {
		t.Errorf("mid position = %v", mid.Position)
	}
	if !mid.Size.NearlyEqual(rendering.Size{Width: 40, Height: 60}) {
		t.Errorf("mid size = %v", mid.Size)
	}
	if math.Abs(mid.Scale-1.05) > 1e-9 {
		t.Errorf("mid scale = %v", mid.Scale)
	}
	if done != nil || h.Done() {
		t.Fatal("animation should still be running")
	}

	step(clk, 60*time.Millisecond)
	if done == nil {
		t.Fatal("expected completion callback")
	}
	if *done != toFrame || h.Last() != toFrame {
		t.Errorf("final frame = %+v, want %+v", *done, toFrame)
	}
	if !h.Done() || h.Cancelled() {
		t.Error("handle should be done and not cancelled")
	}
	if animation.HasActiveTickers() {
		t.Error("no tickers should remain after completion")
	}
}

func TestDriver_CancelKeepsLastFrame(t *testing.T) {
	clk := useFakeClock(t)
	frames := 0
	completed := false

	h := animation.NewDriver(nil).Animate(fromFrame, toFrame, 200*time.Millisecond,
		func(animation.Frame) { frames++ },
		func(animation.Frame) { completed = true },
	)
	step(clk, 50*time.Millisecond)
	reported := h.Last()

	got := h.Cancel()
	if got != reported {
		t.Errorf("Cancel() = %+v, want last reported %+v", got, reported)
	}
	if got == fromFrame || got == toFrame {
		t.Error("cancelled frame should be neither start nor target")
	}

	step(clk, time.Second)
	if frames != 1 {
		t.Errorf("no frames should be reported after cancel, got %d", frames)
	}
	if completed {
		t.Error("cancelled animation must not complete")
	}
	if !h.Cancelled() {
		t.Error("handle should report cancellation")
	}
	if h.Cancel() != got {
		t.Error("second cancel should return the same frame")
	}
}

func TestDriver_CancelBeforeFirstFrame(t *testing.T) {
	useFakeClock(t)
	h := animation.NewDriver(animation.EaseOut).Animate(fromFrame, toFrame, time.Second, nil, nil)
	if got := h.Cancel(); got != fromFrame {
		t.Errorf("cancel before any frame should return the start, got %+v", got)
	}
}

func TestDriver_NonPositiveDurationSnaps(t *testing.T) {
	useFakeClock(t)
	for _, d := range []time.Duration{0, -time.Second} {
		var frames []animation.Frame
		completed := false
		h := animation.NewDriver(animation.EaseOut).Animate(fromFrame, toFrame, d,
			func(f animation.Frame) { frames = append(frames, f) },
			func(animation.Frame) { completed = true },
		)
		if !h.Done() || !completed {
			t.Errorf("duration %v: expected immediate completion", d)
		}
		if len(frames) != 1 || frames[0] != toFrame {
			t.Errorf("duration %v: expected a single target frame, got %+v", d, frames)
		}
		if animation.HasActiveTickers() {
			t.Errorf("duration %v: snap should not start a ticker", d)
		}
	}
}

func TestAnimationController_Status(t *testing.T) {
	clk := useFakeClock(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	var statuses []animation.AnimationStatus
	c.AddStatusListener(func(s animation.AnimationStatus) { statuses = append(statuses, s) })

	c.AnimateTo(1)
	if !c.IsAnimating() {
		t.Fatal("controller should be animating")
	}
	step(clk, 40*time.Millisecond)
	c.Stop()
	if c.Status() != animation.AnimationIdle {
		t.Errorf("status after Stop = %v", c.Status())
	}
	stopped := c.Value

	c.AnimateTo(1)
	step(clk, 200*time.Millisecond)
	if c.Value != 1 || c.Status() != animation.AnimationCompleted {
		t.Errorf("Value = %v, status = %v", c.Value, c.Status())
	}
	if stopped <= 0 || stopped >= 1 {
		t.Errorf("stopped value = %v, want in (0, 1)", stopped)
	}

	want := []animation.AnimationStatus{
		animation.AnimationRunning,
		animation.AnimationIdle,
		animation.AnimationRunning,
		animation.AnimationCompleted,
	}
	if len(statuses) != len(want) {
		t.Fatalf("statuses = %v, want %v", statuses, want)
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("statuses[%d] = %v, want %v", i, statuses[i], want[i])
		}
	}
}

func TestCurvesHitEndpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"linear":      animation.LinearCurve,
		"ease-out":    animation.EaseOut,
		"ease-in-out": animation.EaseInOut,
		"spring":      animation.SpringOut,
	}
	for name, curve := range curves {
		if curve(0) != 0 || curve(1) != 1 {
			t.Errorf("%s: curve(0)=%v curve(1)=%v", name, curve(0), curve(1))
		}
		byName, ok := animation.CurveByName(name)
		if !ok || byName(1) != 1 {
			t.Errorf("CurveByName(%q) failed", name)
		}
	}
	if _, ok := animation.CurveByName("bogus"); ok {
		t.Error("unknown curve name should not resolve")
	}
}
