package showcase

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// fakeResources serves fixed dimensions and an optional drawable.
type fakeResources struct {
	dimens   map[DimenID]float32
	drawable Drawable
	themes   []Theme
}

func (r *fakeResources) Dimension(id DimenID) float32 {
	return r.dimens[id]
}

func (r *fakeResources) Drawable(id DrawableID, theme Theme) Drawable {
	r.themes = append(r.themes, theme)
	if id != DrawableCling || r.drawable == nil {
		return nil
	}
	return r.drawable
}

// fakeDrawable records calls and paints its bounds with a solid colour.
type fakeDrawable struct {
	w, h   int
	fill   color.RGBA
	bounds image.Rectangle
	filter color.Color
	draws  int
}

func (d *fakeDrawable) IntrinsicWidth() int          { return d.w }
func (d *fakeDrawable) IntrinsicHeight() int         { return d.h }
func (d *fakeDrawable) SetBounds(r image.Rectangle)  { d.bounds = r }
func (d *fakeDrawable) SetColorFilter(c color.Color) { d.filter = c }

func (d *fakeDrawable) Draw(dst draw.Image) {
	d.draws++
	draw.Draw(dst, d.bounds, &image.Uniform{d.fill}, image.Point{}, draw.Over)
}

// countingOwner counts invalidations.
type countingOwner struct {
	n int
}

func (o *countingOwner) Invalidate() { o.n++ }

func newBuffer(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

var opaqueBlack = color.RGBA{0, 0, 0, 0xff}

func defaultResources() *fakeResources {
	return &fakeResources{
		dimens: map[DimenID]float32{
			DimenRadius:          30,
			DimenRadiusMaterial:  50,
			DimenRadiusInner:     20,
			DimenRadiusOuter:     40,
			DimenOvalInnerWidth:  40,
			DimenOvalInnerHeight: 20,
			DimenOvalOuterWidth:  80,
			DimenOvalOuterHeight: 50,
		},
	}
}
