// Package host provides a minimal view that owns a showcase session: the
// offscreen buffer, the drawer, the caption and the touch policy.
//
// A View is not safe for concurrent use; callers serialise access.
package host

import (
	"image"
	"image/color"
	"log"

	"github.com/phinze/showcase/internal/caption"
	"github.com/phinze/showcase/internal/showcase"
	"golang.org/x/image/draw"
)

// Action is the phase of a touch event.
type Action int

const (
	ActionDown Action = iota
	ActionMove
	ActionUp
)

// TouchEvent is a touch in canvas coordinates.
type TouchEvent struct {
	X, Y   float32
	Action Action
}

// Listener receives showcase lifecycle and touch notifications.
type Listener interface {
	OnShowcaseShow(v *View)
	OnShowcaseHide(v *View)
	OnShowcaseTouchBlocked(ev TouchEvent)
}

// NopListener ignores every notification.
type NopListener struct{}

func (NopListener) OnShowcaseShow(*View)              {}
func (NopListener) OnShowcaseHide(*View)              {}
func (NopListener) OnShowcaseTouchBlocked(TouchEvent) {}

// Default colours applied to drawers.
var (
	DefaultBackground = color.NRGBA{A: 0xb3}
	DefaultShowcase   = color.NRGBA{R: 0x33, G: 0xb5, B: 0xe5, A: 0xff}
)

// View hosts one showcase drawer.
type View struct {
	drawer   showcase.Drawer
	caption  *caption.Drawer
	listener Listener

	buffer        *image.RGBA
	width, height int

	x, y      float32
	hasTarget bool
	showing   bool
	dirty     bool

	background    color.Color
	showcaseColor color.Color
	centreText    bool

	// BlockTouches swallows touches outside the showcase.
	BlockTouches bool
	// BlockAllTouches swallows every touch.
	BlockAllTouches bool
	// HideOnTouch hides the showcase when a touch outside it is released.
	HideOnTouch bool
}

// New creates a view of the given size. drawer may be nil and set later.
func New(width, height int, drawer showcase.Drawer) *View {
	v := &View{
		listener:      NopListener{},
		background:    DefaultBackground,
		showcaseColor: DefaultShowcase,
		x:             -1,
		y:             -1,
		BlockTouches:  true,
	}
	v.Resize(width, height)
	if drawer != nil {
		v.SetDrawer(drawer)
	}
	return v
}

// Invalidate marks the view as needing a redraw.
func (v *View) Invalidate() {
	v.dirty = true
}

// NeedsRedraw reports whether the view changed since the last call.
func (v *View) NeedsRedraw() bool {
	dirty := v.dirty
	v.dirty = false
	return dirty
}

// SetListener sets the listener; nil restores the no-op listener.
func (v *View) SetListener(l Listener) {
	if l == nil {
		l = NopListener{}
	}
	v.listener = l
}

// Drawer returns the current drawer.
func (v *View) Drawer() showcase.Drawer {
	return v.drawer
}

// SetDrawer replaces the drawer and applies the view's colours to it.
func (v *View) SetDrawer(d showcase.Drawer) {
	v.drawer = d
	d.SetBackgroundColor(v.background)
	d.SetShowcaseColour(v.showcaseColor)
	v.recalculateText()
	v.Invalidate()
}

// SetColors sets the background and showcase colours. Nil keeps the current
// colour.
func (v *View) SetColors(background, showcaseColor color.Color) {
	if background != nil {
		v.background = background
	}
	if showcaseColor != nil {
		v.showcaseColor = showcaseColor
	}
	if v.drawer != nil {
		v.drawer.SetBackgroundColor(v.background)
		v.drawer.SetShowcaseColour(v.showcaseColor)
	}
	v.Invalidate()
}

// SetCaption sets the caption drawer; nil removes the text.
func (v *View) SetCaption(c *caption.Drawer, centred bool) {
	v.caption = c
	v.centreText = centred
	v.recalculateText()
	v.Invalidate()
}

// Buffer returns the offscreen buffer, or nil when the view has no area.
func (v *View) Buffer() *image.RGBA {
	return v.buffer
}

// Bounds returns the view rectangle.
func (v *View) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.width, v.height)
}

// Resize changes the view size. The buffer is reallocated only when the
// size actually changes, and dropped when either side is zero.
func (v *View) Resize(width, height int) {
	v.width, v.height = max(width, 0), max(height, 0)
	v.updateBuffer()
	v.recalculateText()
	v.Invalidate()
}

// updateBuffer allocates the buffer when missing or sized differently.
func (v *View) updateBuffer() {
	if v.width == 0 || v.height == 0 {
		v.buffer = nil
		return
	}
	if v.buffer == nil || v.buffer.Bounds().Dx() != v.width || v.buffer.Bounds().Dy() != v.height {
		v.buffer = image.NewRGBA(image.Rect(0, 0, v.width, v.height))
	}
}

// SetShowcasePosition moves the focal point and marks the target present.
func (v *View) SetShowcasePosition(x, y float32) {
	v.x, v.y = x, y
	v.hasTarget = true
	v.recalculateText()
	v.Invalidate()
}

// ShowcasePosition returns the focal point.
func (v *View) ShowcasePosition() (float32, float32) {
	return v.x, v.y
}

// ClearTarget removes the target. Without a target only the caption is drawn.
func (v *View) ClearTarget() {
	v.hasTarget = false
	v.recalculateText()
	v.Invalidate()
}

// HasTarget reports whether a focal point is set.
func (v *View) HasTarget() bool {
	return v.hasTarget
}

// ShowcaseRect returns the rectangle the drawer reports around the focal
// point, or an empty rectangle without a target.
func (v *View) ShowcaseRect() image.Rectangle {
	if !v.hasTarget || v.drawer == nil {
		return image.Rectangle{}
	}
	w, h := v.drawer.ShowcaseWidth(), v.drawer.ShowcaseHeight()
	cx, cy := int(v.x), int(v.y)
	return image.Rect(cx-w/2, cy-h/2, cx+w/2, cy+h/2)
}

func (v *View) recalculateText() {
	if v.caption == nil {
		return
	}
	v.caption.CalculatePosition(v.Bounds(), v.ShowcaseRect(), v.centreText)
}

// Show makes the view visible.
func (v *View) Show() {
	v.showing = true
	v.updateBuffer()
	v.listener.OnShowcaseShow(v)
	v.Invalidate()
}

// Hide hides the view and releases its buffer.
func (v *View) Hide() {
	if !v.showing {
		return
	}
	v.showing = false
	v.buffer = nil
	v.listener.OnShowcaseHide(v)
	v.Invalidate()
}

// IsShowing reports whether the view is visible.
func (v *View) IsShowing() bool {
	return v.showing
}

// Draw renders the showcase onto canvas: erase, cut-out, composite, text.
// Nothing is drawn while hidden, without a buffer or drawer, or while the
// focal point is negative.
func (v *View) Draw(canvas draw.Image) {
	if !v.showing || v.buffer == nil || v.drawer == nil || v.x < 0 || v.y < 0 {
		return
	}

	v.drawer.Erase(v.buffer)
	if v.hasTarget {
		v.drawer.DrawShowcase(v.buffer, v.x, v.y, 1)
		v.drawer.DrawToCanvas(canvas, v.buffer)
	}

	if v.caption != nil {
		v.caption.Draw(canvas)
	}
}

// OnTouch applies the touch policy and reports whether the touch was
// consumed by the overlay.
func (v *View) OnTouch(ev TouchEvent) bool {
	if !v.showing || v.drawer == nil {
		return false
	}
	if v.BlockAllTouches {
		v.listener.OnShowcaseTouchBlocked(ev)
		return true
	}

	outside := v.drawer.IsWithinBlockedArea(v.x, v.y, ev.X, ev.Y)

	if ev.Action == ActionUp && v.HideOnTouch && outside {
		log.Printf("Showcase hidden by touch at (%.0f, %.0f)", ev.X, ev.Y)
		v.Hide()
		return true
	}

	blocked := v.BlockTouches && outside
	if blocked {
		v.listener.OnShowcaseTouchBlocked(ev)
	}
	return blocked
}
