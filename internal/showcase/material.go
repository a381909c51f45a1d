package showcase

import (
	"image"
	"image/color"

	"github.com/phinze/showcase/internal/paint"
)

// MaterialDrawer cuts a plain circle out of the mask. The cut-out is the
// whole visual, so its colour cannot be changed.
type MaterialDrawer struct {
	canvasBase

	eraser *paint.Eraser
	radius float32
}

// NewMaterialDrawer reads the material radius from res.
func NewMaterialDrawer(res Resources) *MaterialDrawer {
	return &MaterialDrawer{
		eraser: paint.NewEraser(),
		radius: res.Dimension(DimenRadiusMaterial),
	}
}

// Radius returns the radius of the cut-out.
func (d *MaterialDrawer) Radius() float32 {
	return d.radius
}

// ShowcaseWidth returns the circle diameter.
func (d *MaterialDrawer) ShowcaseWidth() int {
	return int(d.radius * 2)
}

// ShowcaseHeight returns the circle diameter.
func (d *MaterialDrawer) ShowcaseHeight() int {
	return int(d.radius * 2)
}

// SetShowcaseColour does nothing.
func (d *MaterialDrawer) SetShowcaseColour(color.Color) {}

// DrawShowcase cuts the circle centred on (x, y).
func (d *MaterialDrawer) DrawShowcase(buffer *image.RGBA, x, y, scaleMultiplier float32) {
	d.eraser.Fill(buffer, paint.Circle{X: x, Y: y, R: d.radius})
}

// IsWithinBlockedArea reports whether the touch is outside the circle.
func (d *MaterialDrawer) IsWithinBlockedArea(centerX, centerY, rawX, rawY float32) bool {
	return outsideCircle(centerX, centerY, rawX, rawY, d.radius)
}
