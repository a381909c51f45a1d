// Package caption draws the title and detail text that accompany a showcase,
// placed in the largest free region around the showcased area.
package caption

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Position is the region the text is placed in, relative to the showcase.
type Position int

const (
	PositionAuto Position = iota
	PositionLeft
	PositionAbove
	PositionRight
	PositionBelow
)

func (p Position) String() string {
	switch p {
	case PositionLeft:
		return "left"
	case PositionAbove:
		return "above"
	case PositionRight:
		return "right"
	case PositionBelow:
		return "below"
	default:
		return "auto"
	}
}

// Common colors
var (
	colorTitle  = color.RGBA{0x49, 0xc0, 0xec, 0xff}
	colorDetail = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

const (
	defaultPadding = 24
	paragraphGap   = 8
)

// Drawer lays out and draws a title and a detail paragraph.
type Drawer struct {
	titleFace  font.Face
	detailFace font.Face

	title       string
	detail      string
	titleColor  color.Color
	detailColor color.Color

	// Padding is the gap kept to the canvas edges and the showcase.
	Padding int

	forced Position
	chosen Position
	origin image.Point
	width  int
}

// New creates a caption drawer with the Go fonts.
func New() (*Drawer, error) {
	ttBold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	titleFace, err := opentype.NewFace(ttBold, &opentype.FaceOptions{
		Size:    24,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create title face: %w", err)
	}

	ttRegular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	detailFace, err := opentype.NewFace(ttRegular, &opentype.FaceOptions{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create detail face: %w", err)
	}

	return &Drawer{
		titleFace:   titleFace,
		detailFace:  detailFace,
		titleColor:  colorTitle,
		detailColor: colorDetail,
		Padding:     defaultPadding,
	}, nil
}

// SetTitle sets the title text.
func (d *Drawer) SetTitle(s string) { d.title = s }

// SetDetail sets the detail text.
func (d *Drawer) SetDetail(s string) { d.detail = s }

// Title returns the title text.
func (d *Drawer) Title() string { return d.title }

// Detail returns the detail text.
func (d *Drawer) Detail() string { return d.detail }

// SetColors sets the title and detail colours. Nil keeps the current colour.
func (d *Drawer) SetColors(title, detail color.Color) {
	if title != nil {
		d.titleColor = title
	}
	if detail != nil {
		d.detailColor = detail
	}
}

// ForcePosition fixes the region used by CalculatePosition. PositionAuto
// restores automatic placement.
func (d *Drawer) ForcePosition(p Position) {
	d.forced = p
}

// HasText reports whether there is anything to draw.
func (d *Drawer) HasText() bool {
	return d.title != "" || d.detail != ""
}

// Layout returns the top-left corner and width of the text block computed by
// the last CalculatePosition call.
func (d *Drawer) Layout() (image.Point, int) {
	return d.origin, d.width
}

// CalculatePosition picks the region with the largest area around the
// showcase rectangle and places the text block in it. An empty showcase
// rectangle stands for "no target". With centred set, the block is pushed
// towards the middle of its region.
func (d *Drawer) CalculatePosition(canvas, showcase image.Rectangle, centred bool) Position {
	w, h := canvas.Dx(), canvas.Dy()
	sc := showcase.Sub(canvas.Min)
	if showcase.Empty() {
		sc = image.Rectangle{}
	}
	pad := d.Padding

	// left, above, right, below
	areas := [4]int{
		sc.Min.X * h,
		sc.Min.Y * w,
		(w - sc.Max.X) * h,
		(h - sc.Max.Y) * w,
	}
	largest := 0
	for i := 1; i < len(areas); i++ {
		if areas[i] > areas[largest] {
			largest = i
		}
	}
	pos := Position(largest + 1)
	if d.forced != PositionAuto {
		pos = d.forced
	}

	var x, y, width int
	switch pos {
	case PositionLeft:
		x, y, width = pad, pad, sc.Min.X-2*pad
	case PositionAbove:
		x, y, width = pad, pad, w-2*pad
	case PositionRight:
		x, y, width = sc.Max.X+pad, pad, (w-sc.Max.X)-2*pad
	case PositionBelow:
		x, y, width = pad, sc.Max.Y+pad, w-2*pad
	}

	if centred {
		switch pos {
		case PositionLeft, PositionRight:
			y += h / 4
		case PositionAbove, PositionBelow:
			width /= 2
			x += w / 4
		}
	}

	d.chosen = pos
	d.origin = image.Pt(x, y).Add(canvas.Min)
	d.width = max(width, 0)
	return pos
}

// Draw renders the title and detail at the computed layout.
func (d *Drawer) Draw(dst draw.Image) {
	if !d.HasText() || d.width == 0 {
		return
	}

	y := d.origin.Y
	if d.title != "" {
		y = d.drawParagraph(dst, d.title, y, d.titleFace, d.titleColor)
		y += paragraphGap
	}
	if d.detail != "" {
		d.drawParagraph(dst, d.detail, y, d.detailFace, d.detailColor)
	}
}

// drawParagraph draws wrapped text starting with its top at y and returns the
// y just below the last line.
func (d *Drawer) drawParagraph(dst draw.Image, text string, y int, face font.Face, col color.Color) int {
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()

	for _, line := range wrapText(text, face, d.width) {
		drawText(dst, truncateText(line, face, d.width), d.origin.X, y+ascent, face, col)
		y += lineHeight
	}
	return y
}
