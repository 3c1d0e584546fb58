// Package dock decides where a released floating control comes to rest.
//
// [Resolve] is a pure function: it looks at the release position of a
// free-sized widget, finds the screen edges within the edge threshold and
// either docks the widget to the highest-priority edge or leaves it free,
// clamped on screen. Priority is Left, then Right, then Top, then Bottom, so
// releases in a corner resolve deterministically.
package dock

import (
	"fmt"
	"math"

	"github.com/go-drift/devmenu/pkg/rendering"
)

// State is the docking state of the control.
type State int

const (
	// Free means the control is untethered at its free size.
	Free State = iota
	// DockedLeft means the control is snapped to the left edge.
	DockedLeft
	// DockedRight means the control is snapped to the right edge.
	DockedRight
	// DockedTop means the control is snapped to the top edge.
	DockedTop
	// DockedBottom means the control is snapped to the bottom edge.
	DockedBottom
)

func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case DockedLeft:
		return "docked-left"
	case DockedRight:
		return "docked-right"
	case DockedTop:
		return "docked-top"
	case DockedBottom:
		return "docked-bottom"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// IsDocked reports whether s is one of the docked states.
func (s State) IsDocked() bool {
	return s >= DockedLeft && s <= DockedBottom
}

// Edge returns the screen edge of a docked state. ok is false for Free.
func (s State) Edge() (edge Edge, ok bool) {
	switch s {
	case DockedLeft:
		return EdgeLeft, true
	case DockedRight:
		return EdgeRight, true
	case DockedTop:
		return EdgeTop, true
	case DockedBottom:
		return EdgeBottom, true
	}
	return 0, false
}

// Edge is a screen edge.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// priority lists edges in resolution order.
var priority = [...]Edge{EdgeLeft, EdgeRight, EdgeTop, EdgeBottom}

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// ParseEdge converts a lowercase edge name into an Edge.
func ParseEdge(name string) (Edge, error) {
	for _, e := range priority {
		if e.String() == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown edge %q", name)
}

// State returns the docked state for the edge.
func (e Edge) State() State {
	switch e {
	case EdgeLeft:
		return DockedLeft
	case EdgeRight:
		return DockedRight
	case EdgeTop:
		return DockedTop
	default:
		return DockedBottom
	}
}

// Vertical reports whether the edge runs top to bottom.
func (e Edge) Vertical() bool {
	return e == EdgeLeft || e == EdgeRight
}

// EdgeSet is a bit set of edges that are allowed to dock.
type EdgeSet uint8

const (
	// AllEdges allows docking to every edge.
	AllEdges EdgeSet = 1<<EdgeLeft | 1<<EdgeRight | 1<<EdgeTop | 1<<EdgeBottom
	// HorizontalEdges restricts docking to the left and right edges.
	HorizontalEdges EdgeSet = 1<<EdgeLeft | 1<<EdgeRight
)

// EdgesOf builds a set from the given edges.
func EdgesOf(edges ...Edge) EdgeSet {
	var s EdgeSet
	for _, e := range edges {
		s |= 1 << e
	}
	return s
}

// Has reports whether e is in the set.
func (s EdgeSet) Has(e Edge) bool {
	return s&(1<<e) != 0
}

// OrientedSize returns docked with its long axis parallel to the edge:
// narrow and tall on the left or right, wide and short on the top or bottom.
func OrientedSize(edge Edge, docked rendering.Size) rendering.Size {
	long := math.Max(docked.Width, docked.Height)
	short := math.Min(docked.Width, docked.Height)
	if edge.Vertical() {
		return rendering.Size{Width: short, Height: long}
	}
	return rendering.Size{Width: long, Height: short}
}

// Request holds the inputs for [Resolve].
type Request struct {
	// Release is the top-left corner of the free-sized widget at release.
	Release rendering.Offset
	// Bounds is the screen size.
	Bounds rendering.Size
	// Threshold is the distance from an edge below which docking triggers.
	Threshold float64
	// FreeSize is the undocked widget size.
	FreeSize rendering.Size
	// DockedSize is the docked widget size before orientation.
	DockedSize rendering.Size
	// Edges limits which edges may dock. The zero value means AllEdges.
	Edges EdgeSet
	// Insets shrink the area the widget may occupy, e.g. a safe area.
	Insets rendering.EdgeInsets
}

// Result is the resting place computed by [Resolve].
type Result struct {
	State    State
	Position rendering.Offset
	Size     rendering.Size
}

// Rect returns the widget's resting rectangle.
func (r Result) Rect() rendering.Rect {
	return rendering.RectFromOffsetSize(r.Position, r.Size)
}

// Distances returns the gap between the free-sized widget and each edge of
// area, indexed by Edge.
func Distances(release rendering.Offset, size rendering.Size, area rendering.Rect) [4]float64 {
	var d [4]float64
	d[EdgeLeft] = release.X - area.Left
	d[EdgeRight] = area.Right - (release.X + size.Width)
	d[EdgeTop] = release.Y - area.Top
	d[EdgeBottom] = area.Bottom - (release.Y + size.Height)
	return d
}

// Resolve computes the dock state, resting position and size for a release.
// It never fails: out-of-bounds releases are clamped back on screen.
func Resolve(req Request) Result {
	edges := req.Edges
	if edges == 0 {
		edges = AllEdges
	}
	screen := rendering.RectFromLTWH(0, 0, req.Bounds.Width, req.Bounds.Height)
	area := usableArea(screen, req.Insets, req.FreeSize)

	dist := Distances(req.Release, req.FreeSize, area)
	for _, edge := range priority {
		if edges.Has(edge) && dist[edge] < req.Threshold {
			return Place(edge.State(), req)
		}
	}
	return Place(Free, req)
}

// Place puts the widget into the given state without consulting the
// threshold: docked states snap to their edge, Free clamps on screen.
func Place(state State, req Request) Result {
	screen := rendering.RectFromLTWH(0, 0, req.Bounds.Width, req.Bounds.Height)
	edge, docked := state.Edge()
	if !docked {
		area := usableArea(screen, req.Insets, req.FreeSize)
		return Result{
			State:    Free,
			Position: area.ClampOrigin(req.Release, req.FreeSize),
			Size:     req.FreeSize,
		}
	}
	size := OrientedSize(edge, req.DockedSize)
	area := usableArea(screen, req.Insets, size)
	return Result{
		State:    state,
		Position: snap(edge, req.Release, size, area),
		Size:     size,
	}
}

// snap pins the widget flush against edge and clamps the other axis.
func snap(edge Edge, release rendering.Offset, size rendering.Size, area rendering.Rect) rendering.Offset {
	pos := area.ClampOrigin(release, size)
	switch edge {
	case EdgeLeft:
		pos.X = area.Left
	case EdgeRight:
		pos.X = area.Right - size.Width
	case EdgeTop:
		pos.Y = area.Top
	case EdgeBottom:
		pos.Y = area.Bottom - size.Height
	}
	return area.ClampOrigin(pos, size)
}

// usableArea is the screen minus insets, falling back to the whole screen
// when the insets leave no room for a widget of the given size.
func usableArea(screen rendering.Rect, insets rendering.EdgeInsets, size rendering.Size) rendering.Rect {
	area := screen.Deflate(insets)
	if area.Width() < size.Width || area.Height() < size.Height {
		return screen
	}
	return area
}
