package ocr

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
)

// Preprocess prepares a screenshot for recognition.
//
// UI text is usually anti-aliased against colored backgrounds; converting to
// grayscale and sharpening edges improves Tesseract's hit rate on it.
func Preprocess(img image.Image) image.Image {
	return effect.Sharpen(effect.Grayscale(img))
}
