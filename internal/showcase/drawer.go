// Package showcase provides the drawing strategies behind a showcase overlay:
// a translucent mask with a circle, ring or oval cut out around a focal point.
//
// A host owns one Drawer per showcase session. Each frame it calls Erase on
// its reusable buffer, DrawShowcase at the focal point, then DrawToCanvas.
// Touches are routed through IsWithinBlockedArea.
package showcase

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Drawer is implemented by every showcase drawing strategy.
type Drawer interface {
	// ShowcaseWidth returns the width of the showcase, used to place text.
	ShowcaseWidth() int

	// ShowcaseHeight returns the height of the showcase, used to place text.
	ShowcaseHeight() int

	// BackgroundColor returns the colour Erase fills the buffer with.
	BackgroundColor() color.Color

	// SetBackgroundColor sets the colour Erase fills the buffer with.
	SetBackgroundColor(c color.Color)

	// SetShowcaseColour tints the showcase. Drawers whose look is defined by
	// shape alone may ignore it.
	SetShowcaseColour(c color.Color)

	// DrawShowcase paints the showcase centred at (x, y) onto buffer.
	// scaleMultiplier is reserved for scale animations and currently unused.
	DrawShowcase(buffer *image.RGBA, x, y, scaleMultiplier float32)

	// IsWithinBlockedArea reports whether a touch at (rawX, rawY) falls
	// outside the pass-through region of a showcase centred at
	// (centerX, centerY). True means the overlay swallows the touch.
	IsWithinBlockedArea(centerX, centerY, rawX, rawY float32) bool

	// Erase fills the whole buffer with the background colour, discarding
	// any earlier drawing.
	Erase(buffer *image.RGBA)

	// DrawToCanvas composites buffer onto canvas.
	DrawToCanvas(canvas draw.Image, buffer *image.RGBA)
}

// Invalidator is notified when a drawer's geometry changes and the owner
// has to redraw.
type Invalidator interface {
	Invalidate()
}

// InvalidatorFunc adapts a function to the Invalidator interface.
type InvalidatorFunc func()

// Invalidate calls f.
func (f InvalidatorFunc) Invalidate() { f() }

// Theme selects themed variants of drawable resources.
type Theme string

// DimenID identifies a dimension resource.
type DimenID string

// DrawableID identifies a drawable resource.
type DrawableID string

// Dimension resources read by the drawers.
const (
	DimenRadius          DimenID = "showcase_radius"
	DimenRadiusMaterial  DimenID = "showcase_radius_material"
	DimenRadiusInner     DimenID = "showcase_radius_inner"
	DimenRadiusOuter     DimenID = "showcase_radius_outer"
	DimenOvalInnerWidth  DimenID = "showcase_oval_inner_width"
	DimenOvalInnerHeight DimenID = "showcase_oval_inner_height"
	DimenOvalOuterWidth  DimenID = "showcase_oval_outer_width"
	DimenOvalOuterHeight DimenID = "showcase_oval_outer_height"
)

// DrawableCling is the decorative ring drawn by the standard drawer.
const DrawableCling DrawableID = "cling_bleached"

// Resources resolves dimensions and drawables by identifier.
type Resources interface {
	// Dimension returns the dimension in pixels.
	Dimension(id DimenID) float32

	// Drawable returns the themed drawable, or nil if it cannot be resolved.
	Drawable(id DrawableID, theme Theme) Drawable
}

// Drawable is a bitmap or vector asset with an intrinsic size.
type Drawable interface {
	IntrinsicWidth() int
	IntrinsicHeight() int

	// SetBounds sets where Draw places the drawable.
	SetBounds(r image.Rectangle)

	// SetColorFilter tints the drawable using multiply blending.
	SetColorFilter(c color.Color)

	Draw(dst draw.Image)
}
