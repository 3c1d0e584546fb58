package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/devmenu/pkg/animation"
	"github.com/go-drift/devmenu/pkg/gestures"
	"github.com/go-drift/devmenu/pkg/rendering"
)

// FrameInterval is the simulated time between pumped frames.
const FrameInterval = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// PointerHandler receives raw pointer events.
type PointerHandler interface {
	HandlePointer(event gestures.PointerEvent)
}

// PointerDriver simulates pointer sessions and frames against a handler.
// It installs a [FakeClock] as the animation clock for its lifetime.
type PointerDriver struct {
	target    PointerHandler
	clock     *FakeClock
	prevClock animation.Clock
	nextID    int64
}

// NewPointerDriver creates a driver for target. Call Cleanup when done, or
// use NewPointerDriverWithT instead.
func NewPointerDriver(target PointerHandler) *PointerDriver {
	clk := NewFakeClock()
	return &PointerDriver{
		target:    target,
		clock:     clk,
		prevClock: animation.SetClock(clk),
	}
}

// NewPointerDriverWithT creates a driver that cleans up via t.Cleanup().
func NewPointerDriverWithT(t testing.TB, target PointerHandler) *PointerDriver {
	d := NewPointerDriver(target)
	t.Cleanup(d.Cleanup)
	return d
}

// Cleanup restores the animation clock that was active before the driver.
func (d *PointerDriver) Cleanup() {
	animation.SetClock(d.prevClock)
}

// Clock returns the fake clock driving animations.
func (d *PointerDriver) Clock() *FakeClock {
	return d.clock
}

// Down starts a new pointer session at pos and returns its pointer ID.
func (d *PointerDriver) Down(pos rendering.Offset) int64 {
	d.nextID++
	d.send(d.nextID, pos, gestures.PointerPhaseDown)
	return d.nextID
}

// Move moves pointer id to pos.
func (d *PointerDriver) Move(id int64, pos rendering.Offset) {
	d.send(id, pos, gestures.PointerPhaseMove)
}

// Up lifts pointer id at pos.
func (d *PointerDriver) Up(id int64, pos rendering.Offset) {
	d.send(id, pos, gestures.PointerPhaseUp)
}

// Cancel aborts pointer id at pos.
func (d *PointerDriver) Cancel(id int64, pos rendering.Offset) {
	d.send(id, pos, gestures.PointerPhaseCancel)
}

// TapAt simulates a tap at pos.
func (d *PointerDriver) TapAt(pos rendering.Offset) {
	id := d.Down(pos)
	d.Up(id, pos)
}

// DragFrom simulates a drag from start by delta, sending intermediate moves
// and pumping a frame after each one.
func (d *PointerDriver) DragFrom(start, delta rendering.Offset) {
	id := d.Down(start)
	steps := 4
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		d.Move(id, rendering.Offset{X: start.X + delta.X*frac, Y: start.Y + delta.Y*frac})
		d.Pump()
	}
	d.Up(id, start.Add(delta))
}

// Pump advances the clock by one frame interval and steps all tickers.
func (d *PointerDriver) Pump() {
	d.PumpFor(FrameInterval)
}

// PumpFor advances the clock by dt and steps all tickers once.
func (d *PointerDriver) PumpFor(dt time.Duration) {
	d.clock.Advance(dt)
	animation.StepTickers()
}

// PumpAndSettle pumps frames until no animations are active or timeout of
// simulated time elapses.
func (d *PointerDriver) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for animation.HasActiveTickers() {
		if elapsed >= timeout {
			return ErrSettleTimeout
		}
		d.Pump()
		elapsed += FrameInterval
	}
	return nil
}

func (d *PointerDriver) send(id int64, pos rendering.Offset, phase gestures.PointerPhase) {
	d.target.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  pos,
		Phase:     phase,
	})
}
