package widgets

import (
	"math"
	"time"

	"github.com/go-drift/devmenu/pkg/animation"
	"github.com/go-drift/devmenu/pkg/dock"
	"github.com/go-drift/devmenu/pkg/errors"
	"github.com/go-drift/devmenu/pkg/gestures"
	"github.com/go-drift/devmenu/pkg/rendering"
)

const (
	// DefaultSettleDuration is how long the control takes to come to rest
	// after a drag.
	DefaultSettleDuration = 300 * time.Millisecond
	// DefaultGrantDuration is how long the scale boost takes when a drag
	// begins.
	DefaultGrantDuration = 120 * time.Millisecond
	// DefaultGrantScale is the scale applied while the control is held.
	DefaultGrantScale = 1.1
)

// ControlConfig configures a [FloatingControl].
//
// InitialPosition, ScreenBounds, EdgeThreshold, FreeSize, DockedSize and
// OnActivate are required. The remaining fields are optional; their zero
// values select the defaults.
type ControlConfig struct {
	// InitialPosition is the top-left corner at mount.
	InitialPosition rendering.Offset
	// ScreenBounds is the size of the screen the control lives on.
	ScreenBounds rendering.Size
	// EdgeThreshold is the distance from an edge below which a release docks.
	EdgeThreshold float64
	// FreeSize is the size when undocked.
	FreeSize rendering.Size
	// DockedSize is the size when docked. Its long side is laid along the
	// edge the control docks to.
	DockedSize rendering.Size
	// OnActivate runs once per tap.
	OnActivate func()

	// InitialDock docks the control at mount. Defaults to dock.Free.
	InitialDock dock.State
	// Edges limits which edges the control docks to. Defaults to all four.
	Edges dock.EdgeSet
	// Insets keep the control clear of system UI such as a status bar.
	Insets rendering.EdgeInsets
	// Slop is the tap/drag boundary. Defaults to gestures.DefaultSlop.
	Slop float64
	// SettleDuration is the dock animation length. Zero selects
	// DefaultSettleDuration; a negative value snaps without animating.
	SettleDuration time.Duration
	// GrantDuration is the scale boost animation length. Zero selects
	// DefaultGrantDuration; a negative value snaps.
	GrantDuration time.Duration
	// GrantScale is the scale while held. Zero selects DefaultGrantScale.
	GrantScale float64
	// Curve eases the settle animation. Defaults to animation.EaseOut.
	Curve func(float64) float64
	// Hidden mounts the control invisible.
	Hidden bool
}

// validate checks the configuration and returns a copy with defaults applied.
func (c ControlConfig) validate() (ControlConfig, error) {
	if err := c.check(); err != nil {
		return c, &errors.DevMenuError{
			Op:   "widgets.NewFloatingControl",
			Kind: errors.KindConfig,
			Err:  err,
		}
	}
	if c.Edges == 0 {
		c.Edges = dock.AllEdges
	}
	if c.Slop == 0 {
		c.Slop = gestures.DefaultSlop
	}
	if c.SettleDuration == 0 {
		c.SettleDuration = DefaultSettleDuration
	}
	if c.GrantDuration == 0 {
		c.GrantDuration = DefaultGrantDuration
	}
	if c.GrantScale == 0 {
		c.GrantScale = DefaultGrantScale
	}
	if c.Curve == nil {
		c.Curve = animation.EaseOut
	}
	return c, nil
}

func (c ControlConfig) check() *errors.ValidationError {
	if !c.ScreenBounds.IsPositive() {
		return &errors.ValidationError{Field: "ScreenBounds", Value: c.ScreenBounds, Reason: "width and height must be positive"}
	}
	if math.IsNaN(c.EdgeThreshold) || c.EdgeThreshold < 0 {
		return &errors.ValidationError{Field: "EdgeThreshold", Value: c.EdgeThreshold, Reason: "must be >= 0"}
	}
	if !c.FreeSize.IsPositive() {
		return &errors.ValidationError{Field: "FreeSize", Value: c.FreeSize, Reason: "width and height must be positive"}
	}
	if !c.DockedSize.IsPositive() {
		return &errors.ValidationError{Field: "DockedSize", Value: c.DockedSize, Reason: "width and height must be positive"}
	}
	if !fits(c.FreeSize, c.ScreenBounds) {
		return &errors.ValidationError{Field: "FreeSize", Value: c.FreeSize, Reason: "must fit on screen"}
	}
	long := math.Max(c.DockedSize.Width, c.DockedSize.Height)
	if long > c.ScreenBounds.Width || long > c.ScreenBounds.Height {
		return &errors.ValidationError{Field: "DockedSize", Value: c.DockedSize, Reason: "must fit on screen along every edge"}
	}
	if c.OnActivate == nil {
		return &errors.ValidationError{Field: "OnActivate", Value: nil, Reason: "is required"}
	}
	if c.InitialDock < dock.Free || c.InitialDock > dock.DockedBottom {
		return &errors.ValidationError{Field: "InitialDock", Value: c.InitialDock, Reason: "unknown dock state"}
	}
	if math.IsNaN(c.Slop) || c.Slop < 0 {
		return &errors.ValidationError{Field: "Slop", Value: c.Slop, Reason: "must be >= 0"}
	}
	if math.IsNaN(c.GrantScale) || c.GrantScale < 0 {
		return &errors.ValidationError{Field: "GrantScale", Value: c.GrantScale, Reason: "must be positive"}
	}
	return nil
}

func fits(size, bounds rendering.Size) bool {
	return size.Width <= bounds.Width && size.Height <= bounds.Height
}
