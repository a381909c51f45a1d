// Package config loads showcase settings from the environment.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/phinze/showcase/internal/showcase"
	"golang.org/x/image/colornames"
)

// Config holds the settings shared by the showcase binaries.
type Config struct {
	Kind         showcase.Kind
	Theme        showcase.Theme
	Density      float32
	Background   color.NRGBA
	Colour       color.NRGBA
	Title        string
	Detail       string
	BlockTouches bool
	HideOnTouch  bool
	Output       string
}

// Load reads the configuration from SHOWCASE_* environment variables,
// falling back to defaults for unset ones.
func Load() (Config, error) {
	cfg := Config{
		Theme:  showcase.Theme(getenv("SHOWCASE_THEME", "light")),
		Title:  os.Getenv("SHOWCASE_TITLE"),
		Detail: os.Getenv("SHOWCASE_DETAIL"),
		Output: getenv("SHOWCASE_OUTPUT", "showcase.png"),
	}

	kind, err := showcase.ParseKind(getenv("SHOWCASE_DRAWER", string(showcase.KindRing)))
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse SHOWCASE_DRAWER: %w", err)
	}
	cfg.Kind = kind

	density, err := strconv.ParseFloat(getenv("SHOWCASE_DENSITY", "1"), 32)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse SHOWCASE_DENSITY: %w", err)
	}
	if density <= 0 {
		return Config{}, fmt.Errorf("SHOWCASE_DENSITY must be positive, got %v", density)
	}
	cfg.Density = float32(density)

	if cfg.Background, err = ParseColor(getenv("SHOWCASE_BACKGROUND", "#b3000000")); err != nil {
		return Config{}, fmt.Errorf("failed to parse SHOWCASE_BACKGROUND: %w", err)
	}
	if cfg.Colour, err = ParseColor(getenv("SHOWCASE_COLOUR", "#33b5e5")); err != nil {
		return Config{}, fmt.Errorf("failed to parse SHOWCASE_COLOUR: %w", err)
	}

	if cfg.BlockTouches, err = strconv.ParseBool(getenv("SHOWCASE_BLOCK_TOUCHES", "true")); err != nil {
		return Config{}, fmt.Errorf("failed to parse SHOWCASE_BLOCK_TOUCHES: %w", err)
	}
	if cfg.HideOnTouch, err = strconv.ParseBool(getenv("SHOWCASE_HIDE_ON_TOUCH", "false")); err != nil {
		return Config{}, fmt.Errorf("failed to parse SHOWCASE_HIDE_ON_TOUCH: %w", err)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ParseColor parses "#rrggbb", "#aarrggbb" or an SVG colour name such as
// "orangered".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[s]; ok {
			return color.NRGBA(c), nil
		}
		return color.NRGBA{}, fmt.Errorf("unknown colour %q", s)
	}

	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("colour %q must be #rrggbb or #aarrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}

	a := uint8(0xff)
	if len(hex) == 8 {
		a = uint8(v >> 24)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: a}, nil
}
