package rendering

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of o and other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference o - other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Distance returns the length of the offset treated as a vector.
func (o Offset) Distance() float64 {
	return math.Hypot(o.X, o.Y)
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsPositive reports whether both dimensions are strictly greater than zero.
// NaN dimensions are never positive.
func (s Size) IsPositive() bool {
	return s.Width > 0 && s.Height > 0
}

// Transposed returns the size with width and height swapped.
func (s Size) Transposed() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromOffsetSize constructs a Rect whose top-left corner is at origin.
func RectFromOffsetSize(origin Offset, size Size) Rect {
	return RectFromLTWH(origin.X, origin.Y, size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Contains reports whether other lies entirely inside r, within epsilon.
func (r Rect) Contains(other Rect) bool {
	return other.Left >= r.Left-epsilon &&
		other.Top >= r.Top-epsilon &&
		other.Right <= r.Right+epsilon &&
		other.Bottom <= r.Bottom+epsilon
}

// Deflate returns r shrunk by the given insets. Insets larger than the
// rectangle collapse it to an empty rect at its center line.
func (r Rect) Deflate(insets EdgeInsets) Rect {
	out := Rect{
		Left:   r.Left + insets.Left,
		Top:    r.Top + insets.Top,
		Right:  r.Right - insets.Right,
		Bottom: r.Bottom - insets.Bottom,
	}
	if out.Right < out.Left {
		mid := (out.Left + out.Right) * 0.5
		out.Left, out.Right = mid, mid
	}
	if out.Bottom < out.Top {
		mid := (out.Top + out.Bottom) * 0.5
		out.Top, out.Bottom = mid, mid
	}
	return out
}

// ClampOrigin returns the top-left origin closest to origin such that a box
// of the given size stays inside r. When the box is larger than r along an
// axis, the box is pinned to r's leading edge on that axis.
func (r Rect) ClampOrigin(origin Offset, size Size) Offset {
	return Offset{
		X: clampAxis(origin.X, r.Left, r.Right-size.Width),
		Y: clampAxis(origin.Y, r.Top, r.Bottom-size.Height),
	}
}

func clampAxis(value, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return Clamp(value, lo, hi)
}

// Clamp restricts value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// EdgeInsets are offsets from each edge of a rectangle, such as a device
// safe area.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// Radius represents corner radii for rounded rectangles.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius creates a circular radius with equal X/Y values.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// NearlyEqual reports whether two offsets match within epsilon.
func (o Offset) NearlyEqual(other Offset) bool {
	return floatEqual(o.X, other.X) && floatEqual(o.Y, other.Y)
}

// NearlyEqual reports whether two sizes match within epsilon.
func (s Size) NearlyEqual(other Size) bool {
	return floatEqual(s.Width, other.Width) && floatEqual(s.Height, other.Height)
}
