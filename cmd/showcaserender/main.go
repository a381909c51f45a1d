package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/phinze/showcase/internal/caption"
	"github.com/phinze/showcase/internal/config"
	"github.com/phinze/showcase/internal/deck"
	"github.com/phinze/showcase/internal/host"
	"github.com/phinze/showcase/internal/resources"
	"github.com/phinze/showcase/internal/showcase"
	"golang.org/x/image/colornames"
)

const (
	canvasWidth  = 1080
	canvasHeight = 720
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	img, err := render(cfg)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := writePNG(cfg.Output, img); err != nil {
		log.Fatalf("Failed to write %s: %v", cfg.Output, err)
	}
	log.Printf("Wrote %s drawer to %s", cfg.Kind, cfg.Output)
}

// render draws the configured showcase over a gradient scene.
func render(cfg config.Config) (*image.RGBA, error) {
	res := resources.New(cfg.Density)

	view := host.New(int(canvasWidth*cfg.Density), int(canvasHeight*cfg.Density), nil)
	view.SetColors(cfg.Background, cfg.Colour)

	d, err := showcase.New(cfg.Kind, res, cfg.Theme, view)
	if err != nil {
		return nil, fmt.Errorf("failed to create drawer: %w", err)
	}
	view.SetDrawer(d)

	bounds := view.Bounds()
	if cfg.Title != "" || cfg.Detail != "" {
		c, err := caption.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create caption: %w", err)
		}
		c.SetTitle(cfg.Title)
		c.SetDetail(cfg.Detail)
		view.SetCaption(c, false)
	}

	view.SetShowcasePosition(float32(bounds.Dx())*2/3, float32(bounds.Dy())/3)
	view.Show()

	canvas := deck.Gradient(bounds, colornames.Teal, colornames.Goldenrod)
	view.Draw(canvas)
	return canvas, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return f.Close()
}
