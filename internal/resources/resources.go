// Package resources resolves the dimensions and drawables the showcase
// drawers are built from. Dimensions are stored in density-independent
// pixels and scaled on lookup.
package resources

import (
	_ "embed"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/phinze/showcase/internal/showcase"
	"github.com/srwiley/oksvg"
)

//go:embed drawables/cling_bleached.svg
var clingSVG string

// Themes known out of the box.
const (
	ThemeLight showcase.Theme = "light"
	ThemeDark  showcase.Theme = "dark"
)

// defaultDimens are the stock dimensions in dp.
var defaultDimens = map[showcase.DimenID]float32{
	showcase.DimenRadius:          94,
	showcase.DimenRadiusMaterial:  128,
	showcase.DimenRadiusInner:     96,
	showcase.DimenRadiusOuter:     128,
	showcase.DimenOvalInnerWidth:  160,
	showcase.DimenOvalInnerHeight: 96,
	showcase.DimenOvalOuterWidth:  220,
	showcase.DimenOvalOuterHeight: 140,
}

// Table is an in-memory resource table implementing showcase.Resources.
type Table struct {
	density   float32
	dimens    map[showcase.DimenID]float32
	drawables map[showcase.DrawableID]string
	themes    map[showcase.Theme]color.Color
}

// New returns a table seeded with the stock dimensions, the cling drawable
// and the light and dark themes. density is the number of pixels per dp;
// non-positive values mean 1.
func New(density float32) *Table {
	if !(density > 0) {
		density = 1
	}
	t := &Table{
		density:   density,
		dimens:    make(map[showcase.DimenID]float32, len(defaultDimens)),
		drawables: map[showcase.DrawableID]string{showcase.DrawableCling: clingSVG},
		themes: map[showcase.Theme]color.Color{
			ThemeLight: color.White,
			ThemeDark:  color.RGBA{0xe0, 0xe0, 0xe0, 0xff},
		},
	}
	for id, dp := range defaultDimens {
		t.dimens[id] = dp
	}
	return t
}

// Density returns the number of pixels per dp.
func (t *Table) Density() float32 {
	return t.density
}

// SetDimension stores a dimension in dp.
func (t *Table) SetDimension(id showcase.DimenID, dp float32) {
	t.dimens[id] = dp
}

// Dimension returns the dimension in pixels, or 0 for unknown ids.
func (t *Table) Dimension(id showcase.DimenID) float32 {
	return t.dimens[id] * t.density
}

// SetDrawable registers SVG source for a drawable id. The source may use
// currentColor, which is replaced by the theme colour.
func (t *Table) SetDrawable(id showcase.DrawableID, svg string) {
	t.drawables[id] = svg
}

// SetThemeColor sets the colour substituted for currentColor under theme.
func (t *Table) SetThemeColor(theme showcase.Theme, c color.Color) {
	t.themes[theme] = c
}

// Drawable parses the drawable for theme. Unknown ids and SVG that fails to
// parse resolve to nil. Unknown themes fall back to the light theme.
func (t *Table) Drawable(id showcase.DrawableID, theme showcase.Theme) showcase.Drawable {
	src, ok := t.drawables[id]
	if !ok {
		log.Printf("Unknown drawable: %s", id)
		return nil
	}

	themeColor, ok := t.themes[theme]
	if !ok {
		themeColor = t.themes[ThemeLight]
	}
	r, g, b, _ := themeColor.RGBA()
	hexColor := fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
	src = strings.ReplaceAll(src, "currentColor", hexColor)

	icon, err := oksvg.ReadIconStream(strings.NewReader(src))
	if err != nil {
		log.Printf("Failed to parse drawable %s: %v", id, err)
		return nil
	}

	w := int(float32(icon.ViewBox.W)*t.density + 0.5)
	h := int(float32(icon.ViewBox.H)*t.density + 0.5)
	if w <= 0 || h <= 0 {
		log.Printf("Drawable %s has an empty view box", id)
		return nil
	}
	return newSVGDrawable(icon, w, h)
}
