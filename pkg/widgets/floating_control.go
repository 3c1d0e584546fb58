package widgets

import (
	"fmt"

	"github.com/go-drift/devmenu/pkg/animation"
	"github.com/go-drift/devmenu/pkg/dock"
	"github.com/go-drift/devmenu/pkg/errors"
	"github.com/go-drift/devmenu/pkg/gestures"
	"github.com/go-drift/devmenu/pkg/rendering"
)

// Phase is the interaction phase of a [FloatingControl].
//
//	         pointer down               drag up
//	Idle ───────────────────► Dragging ──────────► Animating
//	  ▲                          │                     │
//	  │          tap up          │     settled         │
//	  ├──────────────────────────┘                     │
//	  └────────────────────────────────────────────────┘
//
// A pointer down in any phase preempts whatever is running and enters
// Dragging.
type Phase int

const (
	// PhaseIdle means the control is at rest.
	PhaseIdle Phase = iota
	// PhaseDragging means a pointer session is in progress.
	PhaseDragging
	// PhaseAnimating means the control is moving to its resting place.
	PhaseAnimating
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseAnimating:
		return "animating"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ControlState is the state owned by a [FloatingControl].
//
// While animating, Dock already holds the state being animated into and Size
// is the interpolated size. Whenever Phase is Idle the control lies fully on
// screen and Size matches Dock.
type ControlState struct {
	Position rendering.Offset
	Size     rendering.Size
	Dock     dock.State
	Phase    Phase
}

// RenderData is what a host needs to draw the control.
type RenderData struct {
	Position rendering.Offset
	Size     rendering.Size
	Scale    float64
	Dock     dock.State
	Visible  bool
	// CornerRadius is tighter for the narrow docked shape.
	CornerRadius float64
	// ShowLabel selects the text label; when false the host draws a grip line.
	ShowLabel bool
}

// Rect returns the unscaled bounds of the control.
func (r RenderData) Rect() rendering.Rect {
	return rendering.RectFromOffsetSize(r.Position, r.Size)
}

// snapshot is the state to restore when a session turns out to be a tap.
type snapshot struct {
	position rendering.Offset
	size     rendering.Size
	dock     dock.State
	// resume is the target of a settle animation the session interrupted.
	resume *animation.Frame
}

// FloatingControl is a draggable developer-menu trigger that docks to
// screen edges.
//
// Feed it pointer events with HandlePointer and step animations with
// [animation.StepTickers] from the same UI loop. It is not safe for
// concurrent use.
type FloatingControl struct {
	cfg     ControlConfig
	tracker *gestures.Tracker
	driver  *animation.Driver

	state    ControlState
	scale    float64
	visible  bool
	disposed bool

	settle       *animation.Handle
	settleTarget animation.Frame
	grant        *animation.Handle

	dragOrigin rendering.Offset
	preDrag    snapshot

	listeners      map[int]func(RenderData)
	nextListenerID int
}

// NewFloatingControl validates cfg and mounts a control at rest.
// Invalid configuration returns a *errors.DevMenuError wrapping an
// *errors.ValidationError.
func NewFloatingControl(cfg ControlConfig) (*FloatingControl, error) {
	cfg, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	rest := dock.Place(cfg.InitialDock, cfg.Request(cfg.InitialPosition))
	return &FloatingControl{
		cfg:     cfg,
		tracker: gestures.NewTracker(cfg.Slop),
		driver:  animation.NewDriver(cfg.Curve),
		state: ControlState{
			Position: rest.Position,
			Size:     rest.Size,
			Dock:     rest.State,
			Phase:    PhaseIdle,
		},
		scale:     1,
		visible:   !cfg.Hidden,
		listeners: make(map[int]func(RenderData)),
	}, nil
}

// Request builds the dock request for a release at the given position.
func (c ControlConfig) Request(release rendering.Offset) dock.Request {
	return dock.Request{
		Release:    release,
		Bounds:     c.ScreenBounds,
		Threshold:  c.EdgeThreshold,
		FreeSize:   c.FreeSize,
		DockedSize: c.DockedSize,
		Edges:      c.Edges,
		Insets:     c.Insets,
	}
}

// State returns a copy of the control state.
func (f *FloatingControl) State() ControlState {
	return f.state
}

// Render returns the data needed to draw the control.
func (f *FloatingControl) Render() RenderData {
	narrowDock := f.state.Dock.IsDocked() && f.state.Size.Width < f.state.Size.Height
	radius := 20.0
	if narrowDock {
		radius = 10
	}
	return RenderData{
		Position:     f.state.Position,
		Size:         f.state.Size,
		Scale:        f.scale,
		Dock:         f.state.Dock,
		Visible:      f.visible,
		CornerRadius: radius,
		ShowLabel:    !narrowDock,
	}
}

// AddListener registers fn to be called with fresh render data whenever the
// control changes. Returns an unsubscribe function.
func (f *FloatingControl) AddListener(fn func(RenderData)) func() {
	if f.disposed {
		return func() {}
	}
	id := f.nextListenerID
	f.nextListenerID++
	f.listeners[id] = fn
	return func() {
		delete(f.listeners, id)
	}
}

func (f *FloatingControl) notify() {
	if f.disposed || len(f.listeners) == 0 {
		return
	}
	data := f.Render()
	for _, listener := range f.listeners {
		listener(data)
	}
}

// HandlePointer feeds one pointer event to the control. Events are ignored
// once the control is disposed or while it is hidden.
func (f *FloatingControl) HandlePointer(event gestures.PointerEvent) {
	if f.disposed || !f.visible {
		return
	}
	switch event.Phase {
	case gestures.PointerPhaseDown:
		f.pointerDown(event)
	case gestures.PointerPhaseMove:
		f.pointerMove(event)
	case gestures.PointerPhaseUp:
		f.pointerUp(event)
	case gestures.PointerPhaseCancel:
		f.pointerCancel()
	}
}

func (f *FloatingControl) pointerDown(event gestures.PointerEvent) {
	restarted := f.tracker.Active()
	if restarted {
		errors.Report(&errors.DevMenuError{
			Op:   "widgets.FloatingControl.HandlePointer",
			Kind: errors.KindGesture,
			Err:  fmt.Errorf("pointer %d went down during an active session; restarting", event.PointerID),
		})
	}

	var resume *animation.Frame
	if f.settle != nil {
		last := f.settle.Cancel()
		target := f.settleTarget
		resume = &target
		f.settle = nil
		f.applyFrame(last)
	}
	f.stopGrant()

	// A restarted session keeps the rest state the first session began from,
	// so a tap still restores a resting, on-screen control.
	if !restarted {
		f.preDrag = snapshot{
			position: f.state.Position,
			size:     f.state.Size,
			dock:     f.state.Dock,
			resume:   resume,
		}
	}
	f.dragOrigin = f.state.Position
	f.tracker.Down(event)

	f.state.Size = f.cfg.FreeSize
	f.state.Dock = dock.Free
	f.state.Phase = PhaseDragging
	f.notify()

	held := f.frame()
	held.Scale = f.cfg.GrantScale
	h := f.driver.Animate(f.frame(), held, f.cfg.GrantDuration,
		func(fr animation.Frame) {
			f.scale = fr.Scale
			f.notify()
		},
		func(animation.Frame) {
			f.grant = nil
		},
	)
	if !h.Done() {
		f.grant = h
	}
}

func (f *FloatingControl) pointerMove(event gestures.PointerEvent) {
	if _, ok := f.tracker.Move(event); !ok {
		return
	}
	f.state.Position = f.dragOrigin.Add(f.tracker.Displacement())
	f.notify()
}

func (f *FloatingControl) pointerUp(event gestures.PointerEvent) {
	session, ok := f.tracker.Up(event)
	if !ok {
		return
	}
	f.stopGrant()

	if session.Kind == gestures.KindTap {
		f.tap()
		return
	}
	f.release(session)
}

func (f *FloatingControl) pointerCancel() {
	session, ok := f.tracker.Cancel()
	if !ok {
		return
	}
	f.stopGrant()
	if gestures.Classify(session.Displacement, true, f.tracker.Slop) == gestures.KindTap {
		f.resume(f.restore())
		return
	}
	f.release(session)
}

// tap restores the pre-drag state and activates the host exactly once.
func (f *FloatingControl) tap() {
	pre := f.restore()
	f.activate()
	f.resume(pre)
}

// restore puts the control back where the session found it. When the session
// interrupted a settle, the control stays Animating toward that settle's
// target until resume restarts it.
func (f *FloatingControl) restore() snapshot {
	pre := f.preDrag
	f.state.Position = pre.position
	f.state.Size = pre.size
	f.state.Dock = pre.dock
	f.state.Phase = PhaseIdle
	if pre.resume != nil {
		f.state.Phase = PhaseAnimating
	}
	f.scale = 1
	f.notify()
	return pre
}

// resume finishes an interrupted settle from where it stopped, unless a
// callback has since disposed the control or started a new session.
func (f *FloatingControl) resume(pre snapshot) {
	if pre.resume == nil || f.disposed || f.settle != nil || f.state.Phase != PhaseAnimating {
		return
	}
	f.startSettle(pre.dock, *pre.resume)
}

func (f *FloatingControl) activate() {
	defer errors.Recover("widgets.FloatingControl.OnActivate")
	f.cfg.OnActivate()
}

// release docks or frees the control based on where the drag ended.
func (f *FloatingControl) release(session gestures.Session) {
	f.state.Position = f.dragOrigin.Add(session.Displacement)
	rest := dock.Resolve(f.cfg.Request(f.state.Position))
	f.startSettle(rest.State, animation.Frame{
		Position: rest.Position,
		Size:     rest.Size,
		Scale:    1,
	})
}

func (f *FloatingControl) startSettle(state dock.State, target animation.Frame) {
	f.state.Dock = state
	f.state.Phase = PhaseAnimating
	f.settleTarget = target
	f.notify()

	h := f.driver.Animate(f.frame(), target, f.cfg.SettleDuration,
		func(fr animation.Frame) {
			f.applyFrame(fr)
			f.notify()
		},
		func(fr animation.Frame) {
			f.settle = nil
			f.applyFrame(fr)
			f.state.Phase = PhaseIdle
			f.notify()
		},
	)
	if !h.Done() {
		f.settle = h
	}
}

func (f *FloatingControl) stopGrant() {
	if f.grant != nil {
		f.grant.Cancel()
		f.grant = nil
	}
}

func (f *FloatingControl) frame() animation.Frame {
	return animation.Frame{Position: f.state.Position, Size: f.state.Size, Scale: f.scale}
}

func (f *FloatingControl) applyFrame(fr animation.Frame) {
	f.state.Position = fr.Position
	f.state.Size = fr.Size
	f.scale = fr.Scale
}

// IsVisible reports whether the control is shown.
func (f *FloatingControl) IsVisible() bool {
	return f.visible
}

// Show makes the control visible.
func (f *FloatingControl) Show() {
	f.setVisible(true)
}

// Hide hides the control. A session in progress is ended as if the pointer
// had been cancelled: a drag is released and a press is put back in place, so
// the control still comes to rest on screen.
func (f *FloatingControl) Hide() {
	f.setVisible(false)
}

// Toggle flips visibility and returns the new value.
func (f *FloatingControl) Toggle() bool {
	f.setVisible(!f.visible)
	return f.visible
}

func (f *FloatingControl) setVisible(visible bool) {
	if f.disposed || f.visible == visible {
		return
	}
	if !visible {
		f.pointerCancel()
	}
	f.visible = visible
	f.notify()
}

// Dispose stops all animations. Later events and calls have no effect.
func (f *FloatingControl) Dispose() {
	if f.disposed {
		return
	}
	if f.settle != nil {
		f.settle.Cancel()
		f.settle = nil
	}
	f.stopGrant()
	f.disposed = true
	f.listeners = nil
}
