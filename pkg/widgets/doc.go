// Package widgets provides the floating developer-menu trigger.
//
// A [FloatingControl] is a small draggable shape that the user can throw
// toward a screen edge. Releasing it close enough to an edge docks it there
// as a narrow tab; releasing it anywhere else leaves it free. A tap (a
// pointer session that moves less than the slop) never moves the control
// and calls OnActivate exactly once.
//
// # Construction
//
// Controls are created from a [ControlConfig] struct literal:
//
//	ctl, err := widgets.NewFloatingControl(widgets.ControlConfig{
//	    InitialPosition: rendering.Offset{X: 170, Y: 380},
//	    ScreenBounds:    rendering.Size{Width: 400, Height: 800},
//	    EdgeThreshold:   50,
//	    FreeSize:        rendering.Size{Width: 60, Height: 40},
//	    DockedSize:      rendering.Size{Width: 20, Height: 80},
//	    OnActivate:      openDevMenu,
//	})
//
// Invalid configuration is reported as an *errors.DevMenuError of kind
// errors.KindConfig.
//
// # Driving the Control
//
// The host feeds raw pointer events to HandlePointer and steps animations
// with animation.StepTickers once per frame, both from the same goroutine.
// AddListener delivers fresh [RenderData] whenever anything visible changes.
//
// # Animation
//
// Two animations run through an animation.Driver: a short scale boost when
// a pointer goes down, and the settle that moves the control to its resting
// place after a drag. A pointer down during the settle stops it at the
// current frame and starts a new session from there.
package widgets
