package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solidImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func loadPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open marker file: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode marker file: %v", err)
	}
	return img
}

func TestMark_WritesCrosshair(t *testing.T) {
	out := filepath.Join(t.TempDir(), "marked.png")
	img := solidImage(100, 100, color.RGBA{255, 255, 255, 255})

	if err := Mark(img, 50, 50, out); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}

	marked := loadPNG(t, out)
	if b := marked.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("marker image = %dx%d, want 100x100", b.Dx(), b.Dy())
	}

	// On a white background the crosshair must be black, and the arms start
	// past the center gap.
	r, g, b, _ := marked.At(50+crosshairGap+1, 50).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("arm pixel = (%d,%d,%d), want black on white background", r>>8, g>>8, b>>8)
	}

	// The exact center stays untouched.
	r, g, b, _ = marked.At(50, 50).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("center pixel = (%d,%d,%d), want untouched white", r>>8, g>>8, b>>8)
	}
}

func TestMark_WhiteCrosshairOnDarkBackground(t *testing.T) {
	out := filepath.Join(t.TempDir(), "marked.png")
	img := solidImage(100, 100, color.RGBA{10, 10, 10, 255})

	if err := Mark(img, 50, 50, out); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}

	marked := loadPNG(t, out)
	r, g, b, _ := marked.At(50+crosshairGap+1, 50).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("arm pixel = (%d,%d,%d), want white on dark background", r>>8, g>>8, b>>8)
	}
}

func TestMark_OutOfBounds(t *testing.T) {
	out := filepath.Join(t.TempDir(), "marked.png")
	img := solidImage(10, 10, color.White)

	if err := Mark(img, 50, 5, out); err == nil {
		t.Error("Mark with out-of-bounds coordinates succeeded")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("marker file was written despite out-of-bounds coordinates")
	}
}

func TestMark_NearEdgeClips(t *testing.T) {
	out := filepath.Join(t.TempDir(), "marked.png")
	img := solidImage(20, 20, color.White)

	// Arms extend past the image edge; drawing must clip, not panic.
	if err := Mark(img, 1, 1, out); err != nil {
		t.Fatalf("Mark near edge failed: %v", err)
	}
}
