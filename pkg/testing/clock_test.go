package testing

import (
	"testing"
	"time"

	"github.com/go-drift/devmenu/pkg/animation"
	"github.com/go-drift/devmenu/pkg/gestures"
	"github.com/go-drift/devmenu/pkg/rendering"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

type recordingHandler struct {
	events []gestures.PointerEvent
}

func (r *recordingHandler) HandlePointer(e gestures.PointerEvent) {
	r.events = append(r.events, e)
}

func TestPointerDriver_InstallsClock(t *testing.T) {
	d := NewPointerDriverWithT(t, &recordingHandler{})
	start := animation.Now()
	d.Clock().Advance(time.Second)
	if animation.Now().Sub(start) != time.Second {
		t.Error("animation clock should follow the driver's fake clock")
	}
}

func TestPointerDriver_DragFrom(t *testing.T) {
	h := &recordingHandler{}
	d := NewPointerDriverWithT(t, h)
	d.DragFrom(rendering.Offset{X: 10, Y: 10}, rendering.Offset{X: 40, Y: 0})

	if len(h.events) != 6 {
		t.Fatalf("expected down, 4 moves, up; got %d events", len(h.events))
	}
	if h.events[0].Phase != gestures.PointerPhaseDown {
		t.Errorf("first event = %v", h.events[0].Phase)
	}
	last := h.events[len(h.events)-1]
	if last.Phase != gestures.PointerPhaseUp || last.Position != (rendering.Offset{X: 50, Y: 10}) {
		t.Errorf("last event = %+v", last)
	}
	for _, e := range h.events {
		if e.PointerID != h.events[0].PointerID {
			t.Fatal("all events of a drag should share a pointer ID")
		}
	}
}

func TestPointerDriver_PumpAndSettle(t *testing.T) {
	d := NewPointerDriverWithT(t, &recordingHandler{})
	ctrl := animation.NewAnimationController(100 * time.Millisecond)
	defer ctrl.Dispose()
	ctrl.AnimateTo(1)

	if err := d.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("expected settle, got %v", err)
	}
	if ctrl.Value != 1 {
		t.Errorf("Value = %v, want 1", ctrl.Value)
	}

	ctrl.Duration = time.Hour
	ctrl.AnimateTo(0)
	if err := d.PumpAndSettle(100 * time.Millisecond); err != ErrSettleTimeout {
		t.Errorf("expected ErrSettleTimeout, got %v", err)
	}
	ctrl.Stop()
}
