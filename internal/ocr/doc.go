// Package ocr extracts visible text from a screenshot locally, without any
// network call or API key.
//
// Recognition uses the Tesseract engine via gosseract/v2, which requires cgo
// and an installed Tesseract library. When the binary is built without cgo
// the package compiles against a stub that reports ErrUnavailable, so the
// rest of the tool keeps working.
//
// Screenshots are preprocessed (grayscale plus sharpen) before recognition;
// anti-aliased UI text recognizes noticeably better that way.
package ocr
