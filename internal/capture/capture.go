// Package capture produces a snapshot image of the current problem for
// multimodal generation requests. Capture is best-effort: callers treat
// a failure as a missing image, never as a fatal error.
package capture

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Service renders a problem into an image payload.
type Service interface {
	// Capture returns the encoded image and its MIME type.
	Capture(ctx context.Context, problemText string) ([]byte, string, error)
}

const (
	padding    = 16
	lineHeight = 18
	maxCols    = 80
)

// Rasterizer renders the problem text onto a white canvas and encodes it
// as PNG. A terminal app has no DOM to screenshot; a clean rendering of
// the problem statement carries the same information to the model.
type Rasterizer struct {
	face font.Face
}

// NewRasterizer creates a rasterizer with the built-in bitmap face.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{face: basicfont.Face7x13}
}

// Capture implements Service.
func (r *Rasterizer) Capture(ctx context.Context, problemText string) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	lines := wrap(problemText, maxCols)
	width := padding*2 + maxCols*basicfont.Face7x13.Advance
	height := padding*2 + len(lines)*lineHeight

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: r.face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(padding, padding+(i+1)*lineHeight)
		d.DrawString(line)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "image/png", nil
}

// wrap breaks text into lines of at most cols characters, splitting on
// spaces where possible.
func wrap(text string, cols int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if paragraph == "" {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, word := range strings.Fields(paragraph) {
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) <= cols:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// Nop is a Service that always fails. Used where rendering is
// unavailable; the hint pipeline proceeds text-only.
type Nop struct{}

// Capture implements Service.
func (Nop) Capture(context.Context, string) ([]byte, string, error) {
	return nil, "", ErrUnavailable
}
