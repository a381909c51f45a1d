package main

import (
	"context"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phinze/showcase/internal/caption"
	"github.com/phinze/showcase/internal/config"
	"github.com/phinze/showcase/internal/deck"
	"github.com/phinze/showcase/internal/host"
	"github.com/phinze/showcase/internal/resources"
	"github.com/phinze/showcase/internal/showcase"
	"golang.org/x/image/colornames"
	"rafaelmartins.com/p/streamdeck"
)

// stripDimens fit the showcase shapes onto a 100px high touch strip.
var stripDimens = map[showcase.DimenID]float32{
	showcase.DimenRadius:          36,
	showcase.DimenRadiusMaterial:  40,
	showcase.DimenRadiusInner:     32,
	showcase.DimenRadiusOuter:     44,
	showcase.DimenOvalInnerWidth:  120,
	showcase.DimenOvalInnerHeight: 56,
	showcase.DimenOvalOuterWidth:  160,
	showcase.DimenOvalOuterHeight: 84,
}

func main() {
	log.Println("=== Stream Deck Showcase ===")
	log.Println("Press Ctrl+C to exit")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Setup signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("\nReceived shutdown signal")
		cancel()
	}()

	// Nil on platforms without wake notifications
	wakeCh := wakeEvents()

	// Main device loop - wait for device, run, repeat on disconnect
	for {
		device := waitForDevice(ctx)
		if device == nil {
			// Context cancelled
			break
		}

		runWithDevice(ctx, device, cfg, wakeCh)

		// device.Close() may block indefinitely, so force exit on shutdown
		if !closeDevice(ctx, func() { device.Close() }, 3*time.Second) {
			log.Println("Exiting...")
			os.Exit(0)
		}

		select {
		case <-ctx.Done():
			log.Println("Exiting...")
			return
		default:
			log.Println("Waiting for device reconnect...")
		}
	}
}

// waitForDevice polls for a Stream Deck device until one is available.
func waitForDevice(ctx context.Context) *streamdeck.Device {
	device, err := streamdeck.GetDevice("")
	if err != nil {
		log.Printf("GetDevice error: %v", err)
	} else {
		if err := device.Open(); err != nil {
			log.Printf("Device found but Open failed: %v", err)
		} else {
			return device
		}
	}

	log.Println("Waiting for device...")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(2 * time.Second):
		}

		device, err := streamdeck.GetDevice("")
		if err != nil {
			continue
		}
		if err := device.Open(); err != nil {
			log.Printf("Device found but Open failed: %v", err)
			continue
		}
		log.Println("Device connected!")
		return device
	}
}

// runWithDevice runs a showcase session on the device until disconnect, wake,
// or context cancel. The caller closes the device.
func runWithDevice(ctx context.Context, device *streamdeck.Device, cfg config.Config, wakeCh <-chan struct{}) {
	log.Printf("Connected to: %s", device.GetModelName())

	strip := deck.StripRect(device)
	if strip.Empty() {
		log.Printf("%s has no touch strip, nothing to show", device.GetModelName())
		select {
		case <-ctx.Done():
		case <-wakeCh:
		}
		return
	}

	device.SetBrightness(80)
	device.ForEachKey(func(key streamdeck.KeyID) error {
		return device.ClearKey(key)
	})

	res := resources.New(cfg.Density)
	for id, dp := range stripDimens {
		res.SetDimension(id, dp)
	}

	view := host.New(strip.Dx(), strip.Dy(), nil)
	view.SetColors(cfg.Background, cfg.Colour)
	view.BlockTouches = cfg.BlockTouches
	view.HideOnTouch = cfg.HideOnTouch
	view.SetListener(logListener{})

	if cfg.Title != "" || cfg.Detail != "" {
		c, err := caption.New()
		if err != nil {
			log.Printf("Failed to create caption: %v", err)
		} else {
			c.SetTitle(cfg.Title)
			c.SetDetail(cfg.Detail)
			view.SetCaption(c, false)
		}
	}

	factory := func(kind showcase.Kind, owner showcase.Invalidator) (showcase.Drawer, error) {
		return showcase.New(kind, res, cfg.Theme, owner)
	}
	scene := deck.Gradient(image.Rect(0, 0, strip.Dx(), strip.Dy()), colornames.Blueviolet, colornames.Orangered)
	session, err := deck.NewSession(view, res, factory, cfg.Kind, scene)
	if err != nil {
		log.Printf("Failed to start session: %v", err)
		return
	}
	view.SetShowcasePosition(float32(strip.Dx())/2, float32(strip.Dy())/2)
	view.Show()

	d := deck.New(device, session)

	runCtx, runCancel := context.WithCancel(ctx)
	defer runCancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- d.Start(runCtx)
	}()

	log.Printf("Ready! Showing %s drawer; keys switch drawer, dials resize, long press moves", cfg.Kind)

	waitForStop(ctx, errChan, wakeCh)

	runCancel()

	done := make(chan struct{})
	go func() {
		d.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		log.Println("Cleanup timed out")
	}
}

// stopReason is why a device session ended.
type stopReason int

const (
	stopShutdown stopReason = iota
	stopDisconnect
	stopWake
)

// waitForStop blocks until shutdown, a device error or a system wake. A nil
// wakeCh never fires.
func waitForStop(ctx context.Context, errChan <-chan error, wakeCh <-chan struct{}) stopReason {
	select {
	case <-ctx.Done():
		log.Println("Shutting down...")
		return stopShutdown
	case err := <-errChan:
		if err != nil {
			log.Printf("Device disconnected: %v", err)
		}
		return stopDisconnect
	case <-wakeCh:
		log.Println("Reconnecting device after wake...")
		return stopWake
	}
}

// closeDevice runs closeFn in the background and waits for it. It returns
// false when ctx is cancelled before closeFn finishes, and true once closeFn
// returns or timeout passes.
func closeDevice(ctx context.Context, closeFn func(), timeout time.Duration) bool {
	closeDone := make(chan struct{})
	go func() {
		closeFn()
		close(closeDone)
	}()

	select {
	case <-closeDone:
		return true
	case <-ctx.Done():
		return false
	case <-time.After(timeout):
		// Proceed anyway, the device may need time to reappear
		log.Println("Device close timed out")
		return true
	}
}

type logListener struct{}

func (logListener) OnShowcaseShow(*host.View) { log.Println("Showcase shown") }
func (logListener) OnShowcaseHide(*host.View) { log.Println("Showcase hidden") }
func (logListener) OnShowcaseTouchBlocked(ev host.TouchEvent) {
	log.Printf("Touch blocked at (%.0f, %.0f)", ev.X, ev.Y)
}
