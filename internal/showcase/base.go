package showcase

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/phinze/showcase/internal/paint"
	"golang.org/x/image/draw"
)

// haloAlpha is the eraser alpha of the translucent outer pass (about 55%).
const haloAlpha = 140

// canvasBase carries the background colour and the erase/composite steps
// shared by every drawer.
type canvasBase struct {
	background color.Color
}

// BackgroundColor returns the colour used by Erase.
func (b *canvasBase) BackgroundColor() color.Color {
	if b.background == nil {
		return color.Transparent
	}
	return b.background
}

// SetBackgroundColor sets the colour used by Erase.
func (b *canvasBase) SetBackgroundColor(c color.Color) {
	b.background = c
}

// Erase fills buffer with the background colour.
func (b *canvasBase) Erase(buffer *image.RGBA) {
	draw.Draw(buffer, buffer.Bounds(), &image.Uniform{b.BackgroundColor()}, image.Point{}, draw.Src)
}

// DrawToCanvas draws buffer at the canvas origin with plain alpha compositing.
func (b *canvasBase) DrawToCanvas(canvas draw.Image, buffer *image.RGBA) {
	src := buffer.Bounds()
	dst := image.Rectangle{Max: src.Size()}.Add(canvas.Bounds().Min)
	draw.Draw(canvas, dst, buffer, src.Min, draw.Over)
}

// owned notifies an optional owner about geometry changes.
type owned struct {
	owner Invalidator
}

func (o *owned) invalidate() {
	if o.owner != nil {
		o.owner.Invalidate()
	}
}

// drawHaloAndHole erases halo at partial alpha, then hole at zero alpha.
// The eraser is left at zero alpha.
func drawHaloAndHole(buffer *image.RGBA, eraser *paint.Eraser, halo, hole paint.Shape) {
	eraser.SetAlpha(haloAlpha)
	eraser.Fill(buffer, halo)
	eraser.SetAlpha(0)
	eraser.Fill(buffer, hole)
}

// outsideCircle reports whether (x, y) lies farther than r from (cx, cy).
func outsideCircle(cx, cy, x, y, r float32) bool {
	return math32.Hypot(x-cx, y-cy) > r
}

// outsideEllipse reports whether (x, y) lies outside the axis-aligned
// ellipse centred at (h, k) with semi-axes rx and ry. A point exactly on the
// boundary is inside. Degenerate ellipses contain no points.
func outsideEllipse(h, k, x, y, rx, ry float32) bool {
	if !(rx > 0) || !(ry > 0) {
		return true
	}
	dx := (x - h) / rx
	dy := (y - k) / ry
	return dx*dx+dy*dy > 1
}
