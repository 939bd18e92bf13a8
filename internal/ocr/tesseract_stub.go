//go:build !cgo

package ocr

// ExtractText reports ErrUnavailable: this binary was built without cgo, so
// the Tesseract bindings are not present.
func ExtractText(imagePath string, language string) (*Result, error) {
	return nil, ErrUnavailable
}

// Available reports whether OCR support is compiled into this binary.
func Available() bool { return false }
