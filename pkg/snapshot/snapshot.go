// Package snapshot rasterizes a floating control's render data so its
// resting shape can be inspected outside a host UI.
package snapshot

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-drift/devmenu/pkg/rendering"
	"github.com/go-drift/devmenu/pkg/widgets"
)

// Style controls the colors used when rasterizing.
type Style struct {
	Background rendering.Color
	Fill       rendering.Color
	Foreground rendering.Color
	Label      string
}

// DefaultStyle draws the orange trigger with a white "MENU" label on a dark
// screen.
var DefaultStyle = Style{
	Background: rendering.RGB(0x12, 0x12, 0x12),
	Fill:       rendering.ColorMenuOrange,
	Foreground: rendering.ColorWhite,
	Label:      "MENU",
}

// Render draws data onto a screen-sized image. Hidden controls produce an
// image containing only the background.
func Render(data widgets.RenderData, screen rendering.Size, style Style) *image.RGBA {
	w := int(math.Ceil(screen.Width))
	h := int(math.Ceil(screen.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(style.Background.NRGBA()), image.Point{}, draw.Src)
	if !data.Visible || !data.Size.IsPositive() {
		return img
	}

	body := scaled(data.Rect(), data.Scale)
	radius := math.Min(data.CornerRadius*scaleOr1(data.Scale), math.Min(body.Width(), body.Height())/2)
	fillRoundedRect(img, body, radius, style.Fill)

	if data.ShowLabel {
		drawLabel(img, body, style.Label, style.Foreground)
	} else {
		drawGrip(img, body, style.Foreground)
	}
	return img
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WriteFile saves img as a PNG at path.
func WriteFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func scaleOr1(s float64) float64 {
	if s <= 0 {
		return 1
	}
	return s
}

// scaled grows r about its center.
func scaled(r rendering.Rect, s float64) rendering.Rect {
	s = scaleOr1(s)
	c := r.Center()
	w, h := r.Width()*s, r.Height()*s
	return rendering.RectFromLTWH(c.X-w/2, c.Y-h/2, w, h)
}

func fillRoundedRect(dst *image.RGBA, r rendering.Rect, radius float64, c rendering.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	l, t := float32(r.Left), float32(r.Top)
	rt, bt := float32(r.Right), float32(r.Bottom)
	k := float32(radius)

	z.MoveTo(l+k, t)
	z.LineTo(rt-k, t)
	z.QuadTo(rt, t, rt, t+k)
	z.LineTo(rt, bt-k)
	z.QuadTo(rt, bt, rt-k, bt)
	z.LineTo(l+k, bt)
	z.QuadTo(l, bt, l, bt-k)
	z.LineTo(l, t+k)
	z.QuadTo(l, t, l+k, t)
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c.NRGBA()), image.Point{})
}

func drawLabel(dst *image.RGBA, r rendering.Rect, label string, c rendering.Color) {
	if label == "" {
		return
	}
	face := basicfont.Face7x13
	width := font.MeasureString(face, label)
	metrics := face.Metrics()
	height := metrics.Ascent + metrics.Descent
	center := r.Center()

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(center.X*64) - width/2,
			Y: fixed.Int26_6(center.Y*64) - height/2 + metrics.Ascent,
		},
	}
	d.DrawString(label)
}

// drawGrip draws a short bar along the long axis of r.
func drawGrip(dst *image.RGBA, r rendering.Rect, c rendering.Color) {
	const thickness = 2.0
	center := r.Center()
	var bar rendering.Rect
	if r.Height() >= r.Width() {
		length := r.Height() * 0.4
		bar = rendering.RectFromLTWH(center.X-thickness/2, center.Y-length/2, thickness, length)
	} else {
		length := r.Width() * 0.4
		bar = rendering.RectFromLTWH(center.X-length/2, center.Y-thickness/2, length, thickness)
	}
	fillRoundedRect(dst, bar, thickness/2, c)
}
