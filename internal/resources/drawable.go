package resources

import (
	"image"
	"image/color"

	"github.com/phinze/showcase/internal/paint"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// svgDrawable renders an SVG icon at its bounds, optionally tinted.
type svgDrawable struct {
	icon   *oksvg.SvgIcon
	width  int
	height int
	bounds image.Rectangle
	filter color.Color

	// Last rendering, reused while the size and filter stay the same.
	rendered *image.RGBA
}

func newSVGDrawable(icon *oksvg.SvgIcon, width, height int) *svgDrawable {
	return &svgDrawable{
		icon:   icon,
		width:  width,
		height: height,
		bounds: image.Rect(0, 0, width, height),
	}
}

func (d *svgDrawable) IntrinsicWidth() int  { return d.width }
func (d *svgDrawable) IntrinsicHeight() int { return d.height }

// Bounds returns where Draw places the drawable.
func (d *svgDrawable) Bounds() image.Rectangle {
	return d.bounds
}

// SetBounds sets where Draw places the drawable. The icon is scaled to fit.
func (d *svgDrawable) SetBounds(r image.Rectangle) {
	if r.Size() != d.bounds.Size() {
		d.rendered = nil
	}
	d.bounds = r
}

// SetColorFilter tints the drawable by multiplying it with c. Nil clears
// the filter.
func (d *svgDrawable) SetColorFilter(c color.Color) {
	d.filter = c
	d.rendered = nil
}

// Draw composites the drawable onto dst at its bounds.
func (d *svgDrawable) Draw(dst draw.Image) {
	if d.bounds.Empty() {
		return
	}
	if d.rendered == nil {
		d.rendered = d.render(d.bounds.Dx(), d.bounds.Dy())
	}
	draw.Draw(dst, d.bounds, d.rendered, image.Point{}, draw.Over)
}

// render rasterizes the icon into a new w×h image and applies the filter.
func (d *svgDrawable) render(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d.icon.SetTarget(0, 0, float64(w), float64(h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	d.icon.Draw(raster, 1.0)

	paint.Multiply(img, d.filter)
	return img
}
