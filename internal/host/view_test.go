package host

import (
	"image"
	"image/color"
	"testing"

	"github.com/phinze/showcase/internal/caption"
	"github.com/phinze/showcase/internal/showcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"
)

type mapResources map[showcase.DimenID]float32

func (r mapResources) Dimension(id showcase.DimenID) float32 { return r[id] }

func (r mapResources) Drawable(showcase.DrawableID, showcase.Theme) showcase.Drawable { return nil }

func testResources() mapResources {
	return mapResources{
		showcase.DimenRadiusMaterial: 50,
		showcase.DimenRadiusInner:    20,
		showcase.DimenRadiusOuter:    40,
	}
}

type recordingListener struct {
	shown, hidden int
	blocked       []TouchEvent
}

func (l *recordingListener) OnShowcaseShow(*View)                 { l.shown++ }
func (l *recordingListener) OnShowcaseHide(*View)                 { l.hidden++ }
func (l *recordingListener) OnShowcaseTouchBlocked(ev TouchEvent) { l.blocked = append(l.blocked, ev) }

var (
	opaqueBlack = color.RGBA{0, 0, 0, 0xff}
	opaqueWhite = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

func whiteCanvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(opaqueWhite), image.Point{}, draw.Src)
	return img
}

func showingView(t *testing.T) (*View, *recordingListener) {
	t.Helper()
	v := New(200, 200, showcase.NewMaterialDrawer(testResources()))
	v.SetColors(opaqueBlack, nil)
	l := &recordingListener{}
	v.SetListener(l)
	v.SetShowcasePosition(100, 100)
	v.Show()
	return v, l
}

func TestDrawCutsOutShowcase(t *testing.T) {
	v, _ := showingView(t)
	canvas := whiteCanvas(200, 200)
	v.Draw(canvas)

	assert.Equal(t, opaqueWhite, canvas.RGBAAt(100, 100))
	assert.Equal(t, opaqueWhite, canvas.RGBAAt(120, 100))
	assert.Equal(t, opaqueBlack, canvas.RGBAAt(5, 5))
	assert.Equal(t, opaqueBlack, canvas.RGBAAt(100, 170))
}

func TestDrawSkipped(t *testing.T) {
	tests := []struct {
		name  string
		setup func(v *View)
	}{
		{"hidden", func(v *View) { v.Hide() }},
		{"negative position", func(v *View) { v.SetShowcasePosition(-5, 100) }},
		{"no target", func(v *View) { v.ClearTarget() }},
		{"no area", func(v *View) { v.Resize(0, 200) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := showingView(t)
			tt.setup(v)

			canvas := whiteCanvas(200, 200)
			v.Draw(canvas)
			for y := 0; y < 200; y += 10 {
				for x := 0; x < 200; x += 10 {
					require.Equal(t, opaqueWhite, canvas.RGBAAt(x, y), "(%d,%d)", x, y)
				}
			}
		})
	}
}

func TestDrawIsRepeatable(t *testing.T) {
	v, _ := showingView(t)
	first := whiteCanvas(200, 200)
	v.Draw(first)
	second := whiteCanvas(200, 200)
	v.Draw(second)
	assert.Equal(t, first.Pix, second.Pix)
}

func TestResize(t *testing.T) {
	v := New(100, 50, nil)
	buf := v.Buffer()
	require.NotNil(t, buf)
	assert.Equal(t, image.Rect(0, 0, 100, 50), buf.Bounds())

	v.Resize(100, 50)
	assert.Same(t, buf, v.Buffer())

	v.Resize(120, 50)
	assert.Equal(t, image.Rect(0, 0, 120, 50), v.Buffer().Bounds())

	v.Resize(0, 50)
	assert.Nil(t, v.Buffer())

	v.Resize(-4, 10)
	assert.Nil(t, v.Buffer())
	assert.Equal(t, image.Rect(0, 0, 0, 10), v.Bounds())
}

func TestHideReleasesBuffer(t *testing.T) {
	v, l := showingView(t)
	assert.Equal(t, 1, l.shown)

	v.Hide()
	assert.False(t, v.IsShowing())
	assert.Nil(t, v.Buffer())
	assert.Equal(t, 1, l.hidden)

	// Hiding twice notifies once.
	v.Hide()
	assert.Equal(t, 1, l.hidden)

	v.Show()
	assert.NotNil(t, v.Buffer())
	assert.Equal(t, 2, l.shown)
}

func TestNeedsRedraw(t *testing.T) {
	v := New(10, 10, nil)
	assert.True(t, v.NeedsRedraw())
	assert.False(t, v.NeedsRedraw())

	v.SetShowcasePosition(5, 5)
	assert.True(t, v.NeedsRedraw())
	assert.False(t, v.NeedsRedraw())

	v.SetColors(nil, nil)
	assert.True(t, v.NeedsRedraw())
}

func TestRingSettersInvalidateView(t *testing.T) {
	v := New(200, 200, nil)
	ring := showcase.NewRingDrawer(testResources(), v)
	v.SetDrawer(ring)
	v.NeedsRedraw()

	ring.SetOuterRadius(60)
	assert.True(t, v.NeedsRedraw())
	ring.SetInnerRadius(30)
	assert.True(t, v.NeedsRedraw())
	assert.False(t, v.NeedsRedraw())
}

func TestSetDrawerAppliesColours(t *testing.T) {
	v := New(50, 50, nil)
	d := showcase.NewMaterialDrawer(testResources())
	v.SetDrawer(d)
	assert.Equal(t, color.Color(DefaultBackground), d.BackgroundColor())

	red := color.RGBA{0xff, 0, 0, 0xff}
	v.SetColors(red, nil)
	assert.Equal(t, color.Color(red), d.BackgroundColor())

	other := showcase.NewMaterialDrawer(testResources())
	v.SetDrawer(other)
	assert.Equal(t, color.Color(red), other.BackgroundColor())
	assert.Same(t, other, v.Drawer())
}

func TestShowcaseRect(t *testing.T) {
	v := New(200, 200, showcase.NewMaterialDrawer(testResources()))
	assert.True(t, v.ShowcaseRect().Empty())

	v.SetShowcasePosition(100, 80)
	assert.Equal(t, image.Rect(50, 30, 150, 130), v.ShowcaseRect())
	x, y := v.ShowcasePosition()
	assert.Equal(t, float32(100), x)
	assert.Equal(t, float32(80), y)
	assert.True(t, v.HasTarget())

	v.ClearTarget()
	assert.False(t, v.HasTarget())
	assert.True(t, v.ShowcaseRect().Empty())
}

func TestOnTouch(t *testing.T) {
	inside := TouchEvent{X: 110, Y: 100, Action: ActionDown}
	outside := TouchEvent{X: 5, Y: 5, Action: ActionDown}

	t.Run("not showing", func(t *testing.T) {
		v := New(200, 200, showcase.NewMaterialDrawer(testResources()))
		assert.False(t, v.OnTouch(outside))
	})

	t.Run("blocks outside only", func(t *testing.T) {
		v, l := showingView(t)
		assert.False(t, v.OnTouch(inside))
		assert.True(t, v.OnTouch(outside))
		assert.Equal(t, []TouchEvent{outside}, l.blocked)
	})

	t.Run("blocking disabled", func(t *testing.T) {
		v, l := showingView(t)
		v.BlockTouches = false
		assert.False(t, v.OnTouch(outside))
		assert.Empty(t, l.blocked)
	})

	t.Run("block all", func(t *testing.T) {
		v, l := showingView(t)
		v.BlockAllTouches = true
		assert.True(t, v.OnTouch(inside))
		assert.Len(t, l.blocked, 1)
	})

	t.Run("hide on release outside", func(t *testing.T) {
		v, l := showingView(t)
		v.HideOnTouch = true

		assert.True(t, v.OnTouch(outside))
		assert.True(t, v.IsShowing())

		assert.False(t, v.OnTouch(TouchEvent{X: 110, Y: 100, Action: ActionUp}))
		assert.True(t, v.IsShowing())

		assert.True(t, v.OnTouch(TouchEvent{X: 5, Y: 5, Action: ActionUp}))
		assert.False(t, v.IsShowing())
		assert.Equal(t, 1, l.hidden)
	})
}

func TestCaptionFollowsTarget(t *testing.T) {
	c, err := caption.New()
	require.NoError(t, err)
	c.SetTitle("Hello")

	v, _ := showingView(t)
	v.SetCaption(c, false)

	v.SetShowcasePosition(160, 100)
	origin, width := c.Layout()
	assert.Equal(t, image.Pt(24, 24), origin)
	assert.Equal(t, 110-2*24, width)

	v.SetShowcasePosition(40, 100)
	origin, _ = c.Layout()
	assert.Equal(t, 90+24, origin.X)

	canvas := whiteCanvas(200, 200)
	v.Draw(canvas)
	assert.Equal(t, opaqueWhite, canvas.RGBAAt(40, 100))
}
