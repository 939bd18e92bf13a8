package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ImageAsset is a screenshot loaded for a single invocation.
//
// The asset is immutable once loaded: it holds the raw file bytes, the pixel
// dimensions read from the image header, and the media type used when the
// bytes are sent to the vision service.
type ImageAsset struct {
	// Path is the file path the asset was loaded from.
	Path string

	// Data is the raw file content, unmodified.
	Data []byte

	// MediaType is the transport media type inferred from the file extension
	// (e.g. "image/png"). Unrecognized extensions default to "image/png".
	MediaType string

	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int
}

// MediaType infers the transport media type from a file extension.
//
// Recognized extensions:
//   - ".jpg", ".jpeg" -> "image/jpeg"
//   - ".gif" -> "image/gif"
//   - ".webp" -> "image/webp"
//   - ".png" and anything else -> "image/png"
func MediaType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}

// Load reads an image file and returns it as an ImageAsset.
//
// The file is read once; dimensions come from the image header without
// decoding the full pixel data.
//
// Returns an error if the file cannot be read or its header cannot be decoded
// as PNG, JPEG, GIF, or WebP.
func Load(path string) (*ImageAsset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &ImageAsset{
		Path:      path,
		Data:      data,
		MediaType: MediaType(path),
		Width:     cfg.Width,
		Height:    cfg.Height,
	}, nil
}

// Decode decodes the asset's bytes into an image.Image.
func (a *ImageAsset) Decode() (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(a.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
