package animation

import "github.com/go-drift/devmenu/pkg/rendering"

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the value of an [AnimationController] to any type through its
// Lerp function. [TweenFloat64], [TweenOffset], [TweenSize] and [TweenFrame]
// cover the types the control animates.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp interpolates between Begin and End at progress t.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value using the controller's current value.
func (tw *Tween[T]) Transform(controller *AnimationController) T {
	return tw.Evaluate(controller.Value)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b rendering.Offset, t float64) rendering.Offset {
	return rendering.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpSize linearly interpolates between two Size values.
func LerpSize(a, b rendering.Size, t float64) rendering.Size {
	return rendering.Size{
		Width:  LerpFloat64(a.Width, b.Width, t),
		Height: LerpFloat64(a.Height, b.Height, t),
	}
}

// Frame is one rendered state of the floating control.
type Frame struct {
	Position rendering.Offset
	Size     rendering.Size
	Scale    float64
}

// LerpFrame interpolates every channel of a frame with the same progress,
// so position, size and scale always arrive together. At t >= 1 the exact
// end frame is returned.
func LerpFrame(a, b Frame, t float64) Frame {
	if t >= 1 {
		return b
	}
	return Frame{
		Position: LerpOffset(a.Position, b.Position, t),
		Size:     LerpSize(a.Size, b.Size, t),
		Scale:    LerpFloat64(a.Scale, b.Scale, t),
	}
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenOffset creates a tween for Offset values.
func TweenOffset(begin, end rendering.Offset) *Tween[rendering.Offset] {
	return &Tween[rendering.Offset]{Begin: begin, End: end, Lerp: LerpOffset}
}

// TweenSize creates a tween for Size values.
func TweenSize(begin, end rendering.Size) *Tween[rendering.Size] {
	return &Tween[rendering.Size]{Begin: begin, End: end, Lerp: LerpSize}
}

// TweenFrame creates a tween for whole frames.
func TweenFrame(begin, end Frame) *Tween[Frame] {
	return &Tween[Frame]{Begin: begin, End: end, Lerp: LerpFrame}
}
