package animation

import (
	"fmt"
	"time"
)

// AnimationStatus represents the current state of an animation.
//
//	            AnimateTo()             last frame
//	Idle ──────────────────► Running ─────────────► Completed
//	  ▲                         │
//	  │          Stop()         │
//	  └─────────────────────────┘
type AnimationStatus int

const (
	// AnimationIdle means the controller is not running and has not reached
	// a target since the last stop.
	AnimationIdle AnimationStatus = iota
	// AnimationRunning means frames are being produced.
	AnimationRunning
	// AnimationCompleted means the controller reached its target.
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationIdle:
		return "idle"
	case AnimationRunning:
		return "running"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController drives a value from where it is toward a target over
// Duration. Curve shapes linear time progress into eased motion.
//
// Use [Tween] to map the controller value to other ranges or types.
//
// Always call Dispose when done to stop the animation and release listeners.
type AnimationController struct {
	// Value is the current animation value.
	Value float64

	// Duration is the length of a full animation.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	status          AnimationStatus
	ticker          *Ticker
	target          float64
	startValue      float64
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewAnimationController creates an animation controller with the given duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		Curve:           LinearCurve,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// AnimateTo animates from the current value to target.
//
// With a non-positive Duration the value jumps to target, listeners are
// notified once and the controller completes without starting a ticker.
func (c *AnimationController) AnimateTo(target float64) {
	c.Stop()
	c.target = target
	c.startValue = c.Value

	if c.Duration <= 0 {
		c.Value = target
		c.notifyListeners()
		c.setStatus(AnimationCompleted)
		return
	}

	c.setStatus(AnimationRunning)
	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	progress := float64(elapsed) / float64(c.Duration)
	if progress >= 1.0 {
		progress = 1.0
	}

	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	// A listener may have stopped the controller.
	if progress >= 1.0 && c.status == AnimationRunning {
		c.stopTicker()
		c.Value = c.target
		c.setStatus(AnimationCompleted)
	}
}

func (c *AnimationController) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Stop halts the animation at its current value.
func (c *AnimationController) Stop() {
	c.stopTicker()
	if c.status == AnimationRunning {
		c.setStatus(AnimationIdle)
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *AnimationController) IsAnimating() bool {
	return c.status == AnimationRunning
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the controller and drops all listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
