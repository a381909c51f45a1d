package deck

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"sync"

	"github.com/phinze/showcase/internal/host"
	"github.com/phinze/showcase/internal/showcase"
	"golang.org/x/image/draw"
)

// dialStep is the change in pixels per dial tick.
const dialStep = 4

// Dial indices, in ForEachDial order.
const (
	DialOuter = 0
	DialInner = 1
)

// Factory builds a drawer of the given kind. owner receives the drawer's
// geometry change notifications.
type Factory func(kind showcase.Kind, owner showcase.Invalidator) (showcase.Drawer, error)

// Session drives a host view from device input. It holds no device state
// so that it can be exercised without hardware; Deck feeds it events.
type Session struct {
	view    *host.View
	factory Factory
	kind    showcase.Kind
	res     showcase.Resources
	scene   image.Image

	mu sync.Mutex
}

// NewSession creates a session for view, building its first drawer of kind.
// scene is drawn under the overlay; nil leaves the canvas transparent.
func NewSession(view *host.View, res showcase.Resources, factory Factory, kind showcase.Kind, scene image.Image) (*Session, error) {
	s := &Session{
		view:    view,
		factory: factory,
		res:     res,
		scene:   scene,
	}
	if err := s.setKind(kind); err != nil {
		return nil, err
	}
	return s, nil
}

// Kind returns the current drawer kind.
func (s *Session) Kind() showcase.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kind
}

func (s *Session) setKind(kind showcase.Kind) error {
	d, err := s.factory(kind, s.view)
	if err != nil {
		return fmt.Errorf("failed to create %s drawer: %w", kind, err)
	}
	s.kind = kind
	s.view.SetDrawer(d)
	return nil
}

// NextKind replaces the drawer with the next variant and shows the view.
func (s *Session) NextKind() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.setKind(s.kind.Next()); err != nil {
		return err
	}
	log.Printf("Showcase drawer: %s", s.kind)
	if !s.view.IsShowing() {
		s.view.Show()
	}
	return nil
}

// Tap delivers a released touch at p and reports whether it was blocked.
func (s *Session) Tap(p image.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	blocked := s.view.OnTouch(host.TouchEvent{X: float32(p.X), Y: float32(p.Y), Action: host.ActionUp})
	if blocked {
		log.Printf("Touch at (%d, %d) blocked", p.X, p.Y)
	} else {
		log.Printf("Touch at (%d, %d) passed through", p.X, p.Y)
	}
	return blocked
}

// MoveTo moves the showcase to p.
func (s *Session) MoveTo(p image.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.SetShowcasePosition(float32(p.X), float32(p.Y))
}

// Rotate grows or shrinks the outer or inner extent of the current drawer
// by dialStep pixels per tick. Drawers without adjustable geometry ignore it.
func (s *Session) Rotate(dial int, delta int8) {
	s.mu.Lock()
	defer s.mu.Unlock()

	step := float32(delta) * dialStep
	switch d := s.view.Drawer().(type) {
	case *showcase.RingDrawer:
		switch dial {
		case DialOuter:
			d.SetOuterRadius(max(d.OuterRadius()+step, 0))
		case DialInner:
			d.SetInnerRadius(max(d.InnerRadius()+step, 0))
		}
	case *showcase.OvalDrawer:
		switch dial {
		case DialOuter:
			d.SetOuterWidth(max(d.OuterWidth()+step, 0))
			d.SetOuterHeight(max(d.OuterHeight()+step, 0))
		case DialInner:
			d.SetInnerWidth(max(d.InnerWidth()+step, 0))
			d.SetInnerHeight(max(d.InnerHeight()+step, 0))
		}
	default:
		return
	}
	// The view's recorded showcase rect depends on the drawer size.
	x, y := s.view.ShowcasePosition()
	if s.view.HasTarget() {
		s.view.SetShowcasePosition(x, y)
	}
}

// Reset restores the outer or inner extent of the current drawer from the
// resource table.
func (s *Session) Reset(dial int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch d := s.view.Drawer().(type) {
	case *showcase.RingDrawer:
		switch dial {
		case DialOuter:
			d.SetOuterRadiusDimen(showcase.DimenRadiusOuter)
		case DialInner:
			d.SetInnerRadiusDimen(showcase.DimenRadiusInner)
		}
	case *showcase.OvalDrawer:
		switch dial {
		case DialOuter:
			d.SetOuterWidth(s.res.Dimension(showcase.DimenOvalOuterWidth))
			d.SetOuterHeight(s.res.Dimension(showcase.DimenOvalOuterHeight))
		case DialInner:
			d.SetInnerWidth(s.res.Dimension(showcase.DimenOvalInnerWidth))
			d.SetInnerHeight(s.res.Dimension(showcase.DimenOvalInnerHeight))
		}
	}
}

// Render returns a new frame when the view changed since the last call,
// and nil otherwise.
func (s *Session) Render() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.view.NeedsRedraw() {
		return nil
	}

	composite := image.NewRGBA(s.view.Bounds())
	if s.scene != nil {
		draw.Draw(composite, composite.Bounds(), s.scene, s.scene.Bounds().Min, draw.Src)
	}
	s.view.Draw(composite)
	return composite
}

// Gradient returns a horizontal gradient from start to end filling rect.
func Gradient(rect image.Rectangle, start, end color.RGBA) *image.RGBA {
	img := image.NewRGBA(rect)

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			t := float64(x-rect.Min.X) / float64(rect.Dx())

			r := float64(start.R)*(1-t) + float64(end.R)*t
			g := float64(start.G)*(1-t) + float64(end.G)*t
			b := float64(start.B)*(1-t) + float64(end.B)*t

			img.SetRGBA(x, y, color.RGBA{
				R: uint8(r),
				G: uint8(g),
				B: uint8(b),
				A: 255,
			})
		}
	}

	return img
}
