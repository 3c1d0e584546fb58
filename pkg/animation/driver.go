package animation

import "time"

// Driver animates frames of the floating control.
type Driver struct {
	// Curve eases every channel of the frame. Nil means linear.
	Curve func(float64) float64
}

// NewDriver returns a driver that eases with curve.
func NewDriver(curve func(float64) float64) *Driver {
	return &Driver{Curve: curve}
}

// Handle is a running or finished animation started by [Driver.Animate].
type Handle struct {
	controller *AnimationController
	tween      *Tween[Frame]
	last       Frame
	done       bool
	cancelled  bool
}

// Animate interpolates from one frame to another over duration, calling
// onFrame with each interpolated frame and onDone with the target once the
// animation completes. Either callback may be nil.
//
// A non-positive duration reports the target once and completes before
// Animate returns.
func (d *Driver) Animate(from, to Frame, duration time.Duration, onFrame, onDone func(Frame)) *Handle {
	h := &Handle{
		controller: NewAnimationController(duration),
		tween:      TweenFrame(from, to),
		last:       from,
	}
	h.controller.Curve = d.Curve
	h.controller.AddListener(func() {
		h.last = h.tween.Transform(h.controller)
		if onFrame != nil {
			onFrame(h.last)
		}
	})
	h.controller.AddStatusListener(func(status AnimationStatus) {
		if status != AnimationCompleted || h.cancelled {
			return
		}
		h.last = to
		h.done = true
		h.controller.Dispose()
		if onDone != nil {
			onDone(to)
		}
	})
	h.controller.AnimateTo(1)
	return h
}

// Cancel stops the animation immediately and returns the last frame that
// was reported, which is the frame the caller should continue from.
// Cancelling a finished animation returns its final frame.
func (h *Handle) Cancel() Frame {
	if h.done {
		return h.last
	}
	h.cancelled = true
	h.done = true
	h.controller.Dispose()
	return h.last
}

// Last returns the most recently reported frame.
func (h *Handle) Last() Frame {
	return h.last
}

// Done reports whether the animation completed or was cancelled.
func (h *Handle) Done() bool {
	return h.done
}

// Cancelled reports whether the animation was cancelled before completing.
func (h *Handle) Cancelled() bool {
	return h.cancelled
}
