package caption

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// drawText draws text with its baseline at y.
func drawText(img draw.Image, text string, x, y int, face font.Face, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// truncateText truncates text to fit within maxWidth, adding ellipsis if needed.
func truncateText(text string, face font.Face, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}

	ellipsis := "..."

	width := font.MeasureString(face, text).Ceil()
	if width <= maxWidth {
		return text
	}

	runes := []rune(text)
	for i := len(runes); i > 0; i-- {
		truncated := string(runes[:i]) + ellipsis
		w := font.MeasureString(face, truncated).Ceil()
		if w <= maxWidth {
			return truncated
		}
	}

	return ellipsis
}

// wrapText splits text into lines no wider than maxWidth pixels. Words wider
// than a line get a line of their own and are truncated when drawn.
func wrapText(text string, face font.Face, maxWidth int) []string {
	if font.MeasureString(face, text).Ceil() <= maxWidth {
		return []string{text}
	}

	var lines []string
	var currentLine string

	for _, word := range strings.Fields(text) {
		if currentLine == "" {
			currentLine = word
			continue
		}
		candidate := currentLine + " " + word
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			currentLine = candidate
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}
