// Package animation drives the floating control's motion.
//
// # Core Components
//
//   - [Ticker]: the frame primitive. Active tickers are advanced once per
//     frame by the host calling [StepTickers].
//
//   - [AnimationController]: produces a value moving from its current value
//     to a target over a duration, shaped by an easing curve.
//
//   - [Tween] and [Frame]: map the controller's 0-1 progress onto positions,
//     sizes and scale.
//
//   - [Driver]: animates a whole [Frame] and hands back a cancellable
//     [Handle]. Cancelling keeps the last reported frame so the next motion
//     can start from where the widget actually is on screen.
//
// # Basic Usage
//
//	h := animation.NewDriver(animation.EaseOut).Animate(from, to, 300*time.Millisecond,
//	    func(f animation.Frame) { render(f) },
//	    func(f animation.Frame) { settled(f) },
//	)
//
//	// On a new gesture:
//	baseline := h.Cancel()
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// StepTickers advances all active tickers.
// The host calls this once per frame from its UI loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		// A callback may stop another ticker during this frame.
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
