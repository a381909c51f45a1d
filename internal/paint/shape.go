package paint

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/srwiley/rasterx"
)

// RectF is a rectangle with floating point edges.
type RectF struct {
	Left, Top, Right, Bottom float32
}

// Width returns the horizontal extent of the rectangle.
func (r RectF) Width() float32 { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r RectF) Height() float32 { return r.Bottom - r.Top }

// Center returns the midpoint of the rectangle.
func (r RectF) Center() (float32, float32) {
	return (r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2
}

// Shape is a closed outline the Eraser can fill.
type Shape interface {
	// Bounds returns the pixel rectangle covering the shape. Degenerate
	// shapes return an empty rectangle.
	Bounds() image.Rectangle

	// AddTo appends the outline to a, translated so that origin maps to (0, 0).
	AddTo(a rasterx.Adder, origin image.Point)
}

// Circle is a circle centred at (X, Y).
type Circle struct {
	X, Y, R float32
}

// Bounds returns the pixel rectangle covering the circle.
func (c Circle) Bounds() image.Rectangle {
	if !(c.R > 0) {
		return image.Rectangle{}
	}
	return pixelBounds(RectF{c.X - c.R, c.Y - c.R, c.X + c.R, c.Y + c.R})
}

// AddTo appends the circle outline to a.
func (c Circle) AddTo(a rasterx.Adder, origin image.Point) {
	rasterx.AddCircle(
		float64(c.X)-float64(origin.X),
		float64(c.Y)-float64(origin.Y),
		float64(c.R), a)
}

// Oval is the axis-aligned ellipse inscribed in a rectangle.
type Oval RectF

// OvalAround returns the oval of the given width and height centred at (cx, cy).
func OvalAround(cx, cy, w, h float32) Oval {
	return Oval{
		Left:   cx - w/2,
		Top:    cy - h/2,
		Right:  cx + w/2,
		Bottom: cy + h/2,
	}
}

// Rect returns the bounding rectangle of the oval.
func (o Oval) Rect() RectF { return RectF(o) }

// Bounds returns the pixel rectangle covering the oval.
func (o Oval) Bounds() image.Rectangle {
	r := RectF(o)
	if !(r.Width() > 0) || !(r.Height() > 0) {
		return image.Rectangle{}
	}
	return pixelBounds(r)
}

// AddTo appends the ellipse outline to a.
func (o Oval) AddTo(a rasterx.Adder, origin image.Point) {
	r := RectF(o)
	cx, cy := r.Center()
	rasterx.AddEllipse(
		float64(cx)-float64(origin.X),
		float64(cy)-float64(origin.Y),
		float64(r.Width())/2,
		float64(r.Height())/2,
		0, a)
}

// pixelBounds rounds r outwards to whole pixels.
func pixelBounds(r RectF) image.Rectangle {
	return image.Rect(
		int(math32.Floor(r.Left)),
		int(math32.Floor(r.Top)),
		int(math32.Ceil(r.Right)),
		int(math32.Ceil(r.Bottom)),
	)
}
