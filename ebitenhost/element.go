package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/kinex"
)

// whitePixel is a 1x1 white image scaled and tinted to draw elements.
var whitePixel *ebiten.Image

// Element is a solid box positioned by its styling surface. Geometry comes
// from the "left", "top", "width" and "height" style values and transparency
// from "opacity", so tweening the Style moves and fades the box.
type Element struct {
	Name    string
	Style   *kinex.Style
	Color   Color
	Visible bool
}

// NewElement creates a visible white element. Only the position is preset;
// set "width" and "height" before drawing.
func NewElement(name string) *Element {
	st := kinex.NewStyle()
	st.Set("left", "0px")
	st.Set("top", "0px")
	return &Element{
		Name:    name,
		Style:   st,
		Color:   ColorWhite,
		Visible: true,
	}
}

// Rect returns the element bounds in world space.
func (el *Element) Rect() Rect {
	return Rect{
		X:      kinex.ParseValue(el.Style.Get("left")),
		Y:      kinex.ParseValue(el.Style.Get("top")),
		Width:  kinex.ParseValue(el.Style.Get("width")),
		Height: kinex.ParseValue(el.Style.Get("height")),
	}
}

// Opacity returns the "opacity" style value clamped to [0, 1]. An unset
// opacity is fully opaque.
func (el *Element) Opacity() float64 {
	v := el.Style.Get("opacity")
	if v == "" {
		return 1
	}
	return clamp01(kinex.ParseValue(v))
}

// draw renders the element into dst, shifted by the camera scroll.
func (el *Element) draw(dst *ebiten.Image, cam *Camera) {
	if !el.Visible {
		return
	}
	r := el.Rect()
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	alpha := el.Opacity() * el.Color.A
	if alpha <= 0 {
		return
	}
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}

	x, y := r.X, r.Y
	if cam != nil {
		x, y = cam.WorldToScreen(x, y)
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(
		float32(el.Color.R*alpha),
		float32(el.Color.G*alpha),
		float32(el.Color.B*alpha),
		float32(alpha),
	)
	dst.DrawImage(whitePixel, &op)
}
