// Package deck runs a showcase session on a Stream Deck touch strip: taps are
// routed through the overlay's touch policy, dials resize the cut-out and
// keys switch between drawer variants.
package deck

import (
	"context"
	"image"
	"sync"
	"time"

	"rafaelmartins.com/p/streamdeck"
)

// renderInterval is how often the strip is checked for a pending redraw.
const renderInterval = 50 * time.Millisecond

// Deck connects a Session to a device.
type Deck struct {
	device  *streamdeck.Device
	session *Session

	// Lifecycle
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Deck for the given device and session.
func New(device *streamdeck.Device, session *Session) *Deck {
	return &Deck{
		device:  device,
		session: session,
	}
}

// StripRect returns the touch strip rectangle, or an empty rectangle when the
// device has no strip.
func StripRect(device *streamdeck.Device) image.Rectangle {
	if !device.GetTouchStripSupported() {
		return image.Rectangle{}
	}
	rect, err := device.GetTouchStripImageRectangle()
	if err != nil {
		return image.Rectangle{}
	}
	return rect
}

// Start registers the device handlers and runs the render loop until ctx is
// cancelled.
func (d *Deck) Start(ctx context.Context) error {
	d.ctx, d.cancel = context.WithCancel(ctx)

	d.setupEventHandlers()

	// Start device listener (not in WaitGroup - closed by device.Close())
	errChan := make(chan error, 1)
	go func() {
		if err := d.device.Listen(errChan); err != nil {
			select {
			case errChan <- err:
			default:
			}
		}
	}()

	d.wg.Add(1)
	go d.renderLoop()

	select {
	case <-d.ctx.Done():
		return nil
	case err := <-errChan:
		d.cancel()
		return err
	}
}

// Stop shuts down the render loop.
func (d *Deck) Stop() error {
	if d.cancel != nil {
		d.cancel()
	}
	d.wg.Wait()
	return nil
}

func (d *Deck) setupEventHandlers() {
	// Any key switches drawer
	d.device.ForEachKey(func(key streamdeck.KeyID) error {
		return d.device.AddKeyHandler(key, func(dev *streamdeck.Device, k *streamdeck.Key) error {
			k.WaitForRelease()
			return d.session.NextKind()
		})
	})

	// Dials resize the cut-out, pressing restores the default size
	index := 0
	d.device.ForEachDial(func(dial streamdeck.DialID) error {
		i := index
		index++
		d.device.AddDialRotateHandler(dial, func(dev *streamdeck.Device, di *streamdeck.Dial, delta int8) error {
			d.session.Rotate(i, delta)
			return nil
		})
		return d.device.AddDialSwitchHandler(dial, func(dev *streamdeck.Device, di *streamdeck.Dial) error {
			di.WaitForRelease()
			d.session.Reset(i)
			return nil
		})
	})

	if !d.device.GetTouchStripSupported() {
		return
	}

	// Short taps go through the touch policy, long presses move the target
	d.device.AddTouchStripTouchHandler(func(dev *streamdeck.Device, typ streamdeck.TouchStripTouchType, p image.Point) error {
		if typ == streamdeck.TOUCH_STRIP_TOUCH_TYPE_LONG {
			d.session.MoveTo(p)
			return nil
		}
		d.session.Tap(p)
		return nil
	})

	d.device.AddTouchStripSwipeHandler(func(dev *streamdeck.Device, origin, dest image.Point) error {
		d.session.MoveTo(dest)
		return nil
	})
}

// renderLoop pushes a new strip image whenever the view changes.
func (d *Deck) renderLoop() {
	defer d.wg.Done()

	ticker := time.NewTicker(renderInterval)
	defer ticker.Stop()

	d.renderStrip()

	for {
		select {
		case <-d.ctx.Done():
			return
		case <-ticker.C:
			d.renderStrip()
		}
	}
}

func (d *Deck) renderStrip() {
	img := d.session.Render()
	if img == nil {
		return
	}
	d.device.SetTouchStripImage(img)
}
