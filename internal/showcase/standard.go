package showcase

import (
	"image"
	"image/color"

	"github.com/phinze/showcase/internal/paint"
)

// StandardDrawer cuts a circle out of the mask and draws the themed cling
// drawable on top of it.
type StandardDrawer struct {
	canvasBase

	eraser   *paint.Eraser
	drawable Drawable
	radius   float32
}

// NewStandardDrawer reads the showcase radius and the cling drawable from res.
func NewStandardDrawer(res Resources, theme Theme) *StandardDrawer {
	return &StandardDrawer{
		eraser:   paint.NewEraser(),
		drawable: res.Drawable(DrawableCling, theme),
		radius:   res.Dimension(DimenRadius),
	}
}

// Radius returns the radius of the cut-out.
func (d *StandardDrawer) Radius() float32 {
	return d.radius
}

// ShowcaseWidth returns the intrinsic width of the drawable, or 0 without one.
func (d *StandardDrawer) ShowcaseWidth() int {
	if d.drawable == nil {
		return 0
	}
	return d.drawable.IntrinsicWidth()
}

// ShowcaseHeight returns the intrinsic height of the drawable, or 0 without one.
func (d *StandardDrawer) ShowcaseHeight() int {
	if d.drawable == nil {
		return 0
	}
	return d.drawable.IntrinsicHeight()
}

// SetShowcaseColour tints the drawable.
func (d *StandardDrawer) SetShowcaseColour(c color.Color) {
	if d.drawable != nil {
		d.drawable.SetColorFilter(c)
	}
}

// DrawShowcase cuts the circle and draws the drawable centred on (x, y).
func (d *StandardDrawer) DrawShowcase(buffer *image.RGBA, x, y, scaleMultiplier float32) {
	d.eraser.Fill(buffer, paint.Circle{X: x, Y: y, R: d.radius})
	if d.drawable == nil {
		return
	}

	w, h := d.ShowcaseWidth(), d.ShowcaseHeight()
	left := int(x - float32(w/2))
	top := int(y - float32(h/2))
	d.drawable.SetBounds(image.Rect(left, top, left+w, top+h))
	d.drawable.Draw(buffer)
}

// IsWithinBlockedArea reports whether the touch is outside the circle.
func (d *StandardDrawer) IsWithinBlockedArea(centerX, centerY, rawX, rawY float32) bool {
	return outsideCircle(centerX, centerY, rawX, rawY, d.radius)
}
