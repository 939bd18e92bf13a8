package ocr

import "errors"

// ErrUnavailable is returned by ExtractText when the binary was built
// without cgo and therefore without the Tesseract bindings.
var ErrUnavailable = errors.New("OCR support not compiled in (build with cgo and an installed Tesseract library)")

// Bounds is a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// TextRegion is one recognized word with its location and confidence.
type TextRegion struct {
	// Text is the recognized word.
	Text string `json:"text"`

	// Confidence is the recognition confidence, 0.0 to 1.0.
	Confidence float64 `json:"confidence"`

	// Bounds is the word's bounding box in the original image.
	Bounds Bounds `json:"bounds"`
}

// Result contains the text extracted from an image.
type Result struct {
	// FullText is all recognized text with original spacing and newlines.
	FullText string `json:"full_text"`

	// Regions holds individual words with bounding boxes and confidence.
	// May be empty when box extraction fails; FullText is still populated.
	Regions []TextRegion `json:"regions"`
}
