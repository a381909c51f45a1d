package showcase

import (
	"image"
	"image/color"

	"github.com/phinze/showcase/internal/paint"
)

// RingDrawer draws two concentric circles: a translucent outer halo and a
// fully transparent inner hole. Only the hole lets touches through.
type RingDrawer struct {
	canvasBase
	owned

	res         Resources
	eraser      *paint.Eraser
	outerRadius float32
	innerRadius float32
}

// NewRingDrawer reads both radii from res. owner, if not nil, is notified
// whenever a radius changes.
func NewRingDrawer(res Resources, owner Invalidator) *RingDrawer {
	return &RingDrawer{
		owned:       owned{owner: owner},
		res:         res,
		eraser:      paint.NewEraser(),
		outerRadius: res.Dimension(DimenRadiusOuter),
		innerRadius: res.Dimension(DimenRadiusInner),
	}
}

// OuterRadius returns the radius of the halo.
func (d *RingDrawer) OuterRadius() float32 {
	return d.outerRadius
}

// SetOuterRadius sets the radius of the halo and invalidates the owner.
func (d *RingDrawer) SetOuterRadius(r float32) {
	d.outerRadius = r
	d.invalidate()
}

// SetOuterRadiusDimen sets the halo radius from a dimension resource.
func (d *RingDrawer) SetOuterRadiusDimen(id DimenID) {
	d.SetOuterRadius(d.res.Dimension(id))
}

// InnerRadius returns the radius of the hole.
func (d *RingDrawer) InnerRadius() float32 {
	return d.innerRadius
}

// SetInnerRadius sets the radius of the hole and invalidates the owner.
func (d *RingDrawer) SetInnerRadius(r float32) {
	d.innerRadius = r
	d.invalidate()
}

// SetInnerRadiusDimen sets the hole radius from a dimension resource.
func (d *RingDrawer) SetInnerRadiusDimen(id DimenID) {
	d.SetInnerRadius(d.res.Dimension(id))
}

// haloRadius is the drawn outer radius; the halo never shrinks below the hole.
func (d *RingDrawer) haloRadius() float32 {
	return max(d.outerRadius, d.innerRadius)
}

// ShowcaseWidth returns the halo diameter.
func (d *RingDrawer) ShowcaseWidth() int {
	return int(d.haloRadius() * 2)
}

// ShowcaseHeight returns the halo diameter.
func (d *RingDrawer) ShowcaseHeight() int {
	return int(d.haloRadius() * 2)
}

// SetShowcaseColour sets the colour the halo is multiplied with and
// invalidates the owner.
func (d *RingDrawer) SetShowcaseColour(c color.Color) {
	d.eraser.SetColor(c)
	d.invalidate()
}

// DrawShowcase draws the halo and then the hole, centred on (x, y).
func (d *RingDrawer) DrawShowcase(buffer *image.RGBA, x, y, scaleMultiplier float32) {
	drawHaloAndHole(buffer, d.eraser,
		paint.Circle{X: x, Y: y, R: d.haloRadius()},
		paint.Circle{X: x, Y: y, R: d.innerRadius})
}

// IsWithinBlockedArea reports whether the touch is outside the inner hole.
// Touches on the halo are blocked.
func (d *RingDrawer) IsWithinBlockedArea(centerX, centerY, rawX, rawY float32) bool {
	return outsideCircle(centerX, centerY, rawX, rawY, d.innerRadius)
}
