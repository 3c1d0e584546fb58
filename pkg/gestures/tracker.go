// Package gestures turns raw pointer events into classified gesture sessions.
//
// A session runs from one pointer-down to the matching pointer-up (or
// cancel). While it runs, [Tracker.Move] reports the live pointer position;
// when it ends, [Tracker.Up] classifies the session as a tap or a drag using
// the tracker's slop distance.
//
// The tracker only observes. It holds the bookkeeping for the current session
// and never decides what the owning widget should do with the result.
package gestures

import (
	"fmt"

	"github.com/go-drift/devmenu/pkg/rendering"
)

// DefaultSlop is the displacement, in logical pixels, below which a session
// is treated as a tap.
const DefaultSlop = 5.0

// PointerPhase identifies the kind of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown starts a session.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove updates the active session.
	PointerPhaseMove
	// PointerPhaseUp ends the active session normally.
	PointerPhaseUp
	// PointerPhaseCancel ends the active session because the host took the
	// pointer away.
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a single raw pointer sample in screen coordinates.
type PointerEvent struct {
	PointerID int64
	Position  rendering.Offset
	Phase     PointerPhase
}

// Kind classifies a finished session.
type Kind int

const (
	// KindTap means the pointer stayed within the slop distance.
	KindTap Kind = iota
	// KindDrag means the pointer travelled at least the slop distance.
	KindDrag
	// KindCancel means the session was aborted before a pointer-up.
	KindCancel
)

func (k Kind) String() string {
	switch k {
	case KindTap:
		return "tap"
	case KindDrag:
		return "drag"
	case KindCancel:
		return "cancel"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Session describes a finished gesture.
type Session struct {
	Kind Kind
	// Start is where the pointer went down.
	Start rendering.Offset
	// Release is where the pointer was when the session ended.
	Release rendering.Offset
	// Displacement is Release - Start.
	Displacement rendering.Offset
}

// Classify decides whether a displacement is a tap or a drag. A session
// without any move events is always a tap.
func Classify(displacement rendering.Offset, moved bool, slop float64) Kind {
	if !moved {
		return KindTap
	}
	if displacement.Distance() < slop {
		return KindTap
	}
	return KindDrag
}

// Tracker follows a single pointer through one session at a time.
// The zero value is not ready for use; create trackers with [NewTracker].
type Tracker struct {
	// Slop is the tap/drag boundary distance.
	Slop float64

	active    bool
	pointerID int64
	start     rendering.Offset
	last      rendering.Offset
	moved     bool
}

// NewTracker creates a tracker with the given slop. Non-positive values fall
// back to [DefaultSlop].
func NewTracker(slop float64) *Tracker {
	if slop <= 0 {
		slop = DefaultSlop
	}
	return &Tracker{Slop: slop}
}

// Active reports whether a session is in progress.
func (t *Tracker) Active() bool {
	return t.active
}

// Down begins a new session, replacing any session already in progress.
func (t *Tracker) Down(event PointerEvent) {
	t.active = true
	t.pointerID = event.PointerID
	t.start = event.Position
	t.last = event.Position
	t.moved = false
}

// Move records a pointer move and returns the live pointer position, which is
// the session start plus the cumulative displacement. ok is false when the
// event does not belong to the active session.
func (t *Tracker) Move(event PointerEvent) (live rendering.Offset, ok bool) {
	if !t.owns(event) {
		return rendering.Offset{}, false
	}
	t.last = event.Position
	t.moved = true
	return t.start.Add(t.Displacement()), true
}

// Displacement returns the cumulative displacement of the active session.
func (t *Tracker) Displacement() rendering.Offset {
	return t.last.Sub(t.start)
}

// Up ends the session and classifies it. ok is false when the event does not
// belong to the active session.
func (t *Tracker) Up(event PointerEvent) (Session, bool) {
	if !t.owns(event) {
		return Session{}, false
	}
	displacement := event.Position.Sub(t.start)
	s := Session{
		Kind:         Classify(displacement, t.moved, t.Slop),
		Start:        t.start,
		Release:      event.Position,
		Displacement: displacement,
	}
	t.reset()
	return s, true
}

// Cancel aborts the active session. ok is false when no session is active.
func (t *Tracker) Cancel() (Session, bool) {
	if !t.active {
		return Session{}, false
	}
	s := Session{
		Kind:         KindCancel,
		Start:        t.start,
		Release:      t.last,
		Displacement: t.Displacement(),
	}
	t.reset()
	return s, true
}

func (t *Tracker) owns(event PointerEvent) bool {
	return t.active && event.PointerID == t.pointerID
}

func (t *Tracker) reset() {
	t.active = false
	t.moved = false
}
