package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	crosshairArm   = 12 // length of each crosshair arm in pixels
	crosshairGap   = 3  // empty pixels around the center so the target stays visible
	sampleRadius   = 8  // neighborhood sampled when picking the marker color
	luminanceSplit = 0.5
)

// Mark writes a copy of img to outPath with a crosshair centered at (x, y).
//
// The crosshair is drawn in black or white, whichever contrasts more with the
// pixels around the target point. The output is always encoded as PNG
// regardless of the source format.
//
// Returns an error if (x, y) lies outside the image or the file cannot be
// written.
func Mark(img image.Image, x, y int, outPath string) error {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	c := markerColor(img, x, y)
	drawCrosshair(out, x, y, c)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create marker file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("failed to encode marker image: %w", err)
	}
	return nil
}

// markerColor picks black or white by the average perceived lightness of the
// pixels around (x, y).
func markerColor(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	var sum float64
	var n int
	for sy := y - sampleRadius; sy <= y+sampleRadius; sy++ {
		for sx := x - sampleRadius; sx <= x+sampleRadius; sx++ {
			if sx < bounds.Min.X || sx >= bounds.Max.X || sy < bounds.Min.Y || sy >= bounds.Max.Y {
				continue
			}
			c, ok := colorful.MakeColor(img.At(sx, sy))
			if !ok {
				continue // fully transparent pixel
			}
			l, _, _ := c.Lab()
			sum += l
			n++
		}
	}
	if n > 0 && sum/float64(n) > luminanceSplit {
		return color.Black
	}
	return color.White
}

// drawCrosshair draws four 2px-thick arm segments around (x, y).
func drawCrosshair(img *image.RGBA, x, y int, c color.Color) {
	bounds := img.Bounds()
	set := func(px, py int) {
		if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
			img.Set(px, py, c)
		}
	}

	for d := crosshairGap + 1; d <= crosshairGap+crosshairArm; d++ {
		for t := 0; t < 2; t++ {
			set(x-d, y+t) // left arm
			set(x+d, y+t) // right arm
			set(x+t, y-d) // top arm
			set(x+t, y+d) // bottom arm
		}
	}
}
