// Package paint implements the masking primitive shared by the showcase
// drawers: an eraser that multiplies destination pixels by its colour,
// punching full or partial transparency into a premultiplied buffer.
package paint

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
)

// Eraser fills shapes using the Porter-Duff multiply mode:
// result = [Sa*Da, Sc*Dc], blended with the destination by edge coverage.
// An alpha of 0 leaves fully transparent pixels behind.
type Eraser struct {
	color color.NRGBA

	// AntiAlias enables fractional coverage along shape edges. When false,
	// pixels are either untouched or fully erased.
	AntiAlias bool

	// Scratch coverage mask, reused while the fill area keeps its size.
	mask *image.Alpha
}

// NewEraser returns a white, anti-aliased eraser with zero alpha.
func NewEraser() *Eraser {
	return &Eraser{
		color:     color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0},
		AntiAlias: true,
	}
}

// Color returns the current eraser colour, alpha included.
func (e *Eraser) Color() color.NRGBA {
	return e.color
}

// SetColor replaces the colour and alpha of the eraser.
func (e *Eraser) SetColor(c color.Color) {
	if c == nil {
		c = color.Transparent
	}
	e.color = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// SetAlpha replaces only the alpha of the eraser.
func (e *Eraser) SetAlpha(a uint8) {
	e.color.A = a
}

// Alpha returns the current eraser alpha.
func (e *Eraser) Alpha() uint8 {
	return e.color.A
}

// Fill multiplies every pixel of dst covered by s with the eraser colour.
func (e *Eraser) Fill(dst *image.RGBA, s Shape) {
	area := s.Bounds().Intersect(dst.Bounds())
	if area.Empty() {
		return
	}

	mask := e.coverage(area, s)
	src := premultiply(e.color)

	for y := area.Min.Y; y < area.Max.Y; y++ {
		mi := (y - area.Min.Y) * mask.Stride
		di := dst.PixOffset(area.Min.X, y)
		for x := area.Min.X; x < area.Max.X; x++ {
			cov := uint32(mask.Pix[mi])
			if !e.AntiAlias {
				if cov < 0x80 {
					cov = 0
				} else {
					cov = 0xff
				}
			}
			if cov != 0 {
				multiplyPixel(dst.Pix[di:di+4:di+4], src, cov)
			}
			mi++
			di += 4
		}
	}
}

// coverage rasterizes s into an alpha mask the size of area.
func (e *Eraser) coverage(area image.Rectangle, s Shape) *image.Alpha {
	w, h := area.Dx(), area.Dy()
	if e.mask == nil || e.mask.Rect.Dx() != w || e.mask.Rect.Dy() != h {
		e.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	} else {
		clear(e.mask.Pix)
	}

	scanner := rasterx.NewScannerGV(w, h, e.mask, e.mask.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetColor(color.Opaque)
	s.AddTo(filler, area.Min)
	filler.Draw()

	return e.mask
}

// Multiply applies a multiply colour filter to every pixel of img.
func Multiply(img *image.RGBA, c color.Color) {
	if c == nil {
		return
	}
	src := premultiply(color.NRGBAModel.Convert(c).(color.NRGBA))
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		di := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			multiplyPixel(img.Pix[di:di+4:di+4], src, 0xff)
			di += 4
		}
	}
}

// premultiply converts c to premultiplied 8-bit components (r, g, b, a).
func premultiply(c color.NRGBA) [4]uint32 {
	a := uint32(c.A)
	return [4]uint32{
		mul255(uint32(c.R), a),
		mul255(uint32(c.G), a),
		mul255(uint32(c.B), a),
		a,
	}
}

// multiplyPixel blends the multiply result of src over the premultiplied
// pixel p with coverage cov in [0, 255].
func multiplyPixel(p []uint8, src [4]uint32, cov uint32) {
	var out [4]uint32
	for i := range out {
		d := uint32(p[i])
		m := mul255(src[i], d)
		out[i] = mul255(d, 0xff-cov) + mul255(m, cov)
	}
	// Rounding must not break the premultiplied invariant.
	for i := 0; i < 3; i++ {
		out[i] = min(out[i], out[3])
	}
	p[0], p[1], p[2], p[3] = uint8(out[0]), uint8(out[1]), uint8(out[2]), uint8(out[3])
}

func mul255(x, y uint32) uint32 {
	return (x*y + 127) / 255
}
