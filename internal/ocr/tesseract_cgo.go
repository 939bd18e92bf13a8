//go:build cgo

package ocr

import (
	"fmt"
	"image/png"
	"os"

	"github.com/otiai10/gosseract/v2"

	"github.com/gedigi/peekaboox/internal/imaging"
)

// ExtractText performs OCR on an image file and returns the recognized text
// with word-level bounding boxes.
//
// The image is preprocessed (see Preprocess) and written to a temporary PNG,
// because Tesseract consumes file paths. The temporary file is removed before
// the function returns.
//
// language is a Tesseract language code such as "eng"; the matching training
// data must be installed on the system.
//
// If word-level box extraction fails, the full text is still returned with an
// empty Regions slice.
func ExtractText(imagePath string, language string) (*Result, error) {
	asset, err := imaging.Load(imagePath)
	if err != nil {
		return nil, err
	}
	img, err := asset.Decode()
	if err != nil {
		return nil, err
	}

	tmpFile, err := os.CreateTemp("", "ocr-input-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmpFile, Preprocess(img)); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to encode temp image: %w", err)
	}
	tmpFile.Close()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(tmpPath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// Return just text if boxes fail
		return &Result{FullText: text, Regions: []TextRegion{}}, nil
	}

	regions := make([]TextRegion, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		regions = append(regions, TextRegion{
			Text:       box.Word,
			Confidence: float64(box.Confidence) / 100.0,
			Bounds: Bounds{
				X1: box.Box.Min.X,
				Y1: box.Box.Min.Y,
				X2: box.Box.Max.X,
				Y2: box.Box.Max.Y,
			},
		})
	}

	return &Result{FullText: text, Regions: regions}, nil
}

// Available reports whether OCR support is compiled into this binary.
func Available() bool { return true }
