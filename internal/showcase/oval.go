package showcase

import (
	"image"
	"image/color"

	"github.com/phinze/showcase/internal/paint"
)

// OvalDrawer is the elliptical counterpart of RingDrawer: a translucent outer
// oval and a fully transparent inner oval, both axis-aligned.
type OvalDrawer struct {
	canvasBase
	owned

	eraser      *paint.Eraser
	outerWidth  float32
	outerHeight float32
	innerWidth  float32
	innerHeight float32
}

// NewOvalDrawer reads the oval dimensions from res. owner, if not nil, is
// notified whenever a dimension changes.
func NewOvalDrawer(res Resources, owner Invalidator) *OvalDrawer {
	return &OvalDrawer{
		owned:       owned{owner: owner},
		eraser:      paint.NewEraser(),
		outerWidth:  res.Dimension(DimenOvalOuterWidth),
		outerHeight: res.Dimension(DimenOvalOuterHeight),
		innerWidth:  res.Dimension(DimenOvalInnerWidth),
		innerHeight: res.Dimension(DimenOvalInnerHeight),
	}
}

// OuterWidth returns the halo width.
func (d *OvalDrawer) OuterWidth() float32 { return d.outerWidth }

// OuterHeight returns the halo height.
func (d *OvalDrawer) OuterHeight() float32 { return d.outerHeight }

// InnerWidth returns the hole width.
func (d *OvalDrawer) InnerWidth() float32 { return d.innerWidth }

// InnerHeight returns the hole height.
func (d *OvalDrawer) InnerHeight() float32 { return d.innerHeight }

// SetOuterWidth sets the halo width and invalidates the owner.
func (d *OvalDrawer) SetOuterWidth(w float32) {
	d.outerWidth = w
	d.invalidate()
}

// SetOuterHeight sets the halo height and invalidates the owner.
func (d *OvalDrawer) SetOuterHeight(h float32) {
	d.outerHeight = h
	d.invalidate()
}

// SetInnerWidth sets the hole width and invalidates the owner.
func (d *OvalDrawer) SetInnerWidth(w float32) {
	d.innerWidth = w
	d.invalidate()
}

// SetInnerHeight sets the hole height and invalidates the owner.
func (d *OvalDrawer) SetInnerHeight(h float32) {
	d.innerHeight = h
	d.invalidate()
}

// haloSize is the drawn outer size, never smaller than the hole on either axis.
func (d *OvalDrawer) haloSize() (float32, float32) {
	return max(d.outerWidth, d.innerWidth), max(d.outerHeight, d.innerHeight)
}

// ShowcaseWidth returns the outer width.
func (d *OvalDrawer) ShowcaseWidth() int {
	w, _ := d.haloSize()
	return int(w)
}

// ShowcaseHeight returns the outer height.
func (d *OvalDrawer) ShowcaseHeight() int {
	_, h := d.haloSize()
	return int(h)
}

// SetShowcaseColour sets the colour the halo is multiplied with and
// invalidates the owner.
func (d *OvalDrawer) SetShowcaseColour(c color.Color) {
	d.eraser.SetColor(c)
	d.invalidate()
}

// OuterRect returns the bounding rectangle of the halo centred on (x, y).
func (d *OvalDrawer) OuterRect(x, y float32) paint.RectF {
	w, h := d.haloSize()
	return paint.OvalAround(x, y, w, h).Rect()
}

// InnerRect returns the bounding rectangle of the hole centred on (x, y).
func (d *OvalDrawer) InnerRect(x, y float32) paint.RectF {
	return paint.OvalAround(x, y, d.innerWidth, d.innerHeight).Rect()
}

// DrawShowcase draws the outer and then the inner oval, centred on (x, y).
func (d *OvalDrawer) DrawShowcase(buffer *image.RGBA, x, y, scaleMultiplier float32) {
	drawHaloAndHole(buffer, d.eraser,
		paint.Oval(d.OuterRect(x, y)),
		paint.Oval(d.InnerRect(x, y)))
}

// IsWithinBlockedArea reports whether the touch is outside the inner oval.
func (d *OvalDrawer) IsWithinBlockedArea(centerX, centerY, rawX, rawY float32) bool {
	return outsideEllipse(centerX, centerY, rawX, rawY, d.innerWidth/2, d.innerHeight/2)
}
