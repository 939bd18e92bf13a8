package imaging

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"
)

// MaxUploadDimension is the largest width or height sent to the vision
// service. Screenshots beyond this are downscaled before upload; the service
// resizes larger images on its side anyway, which would skew the coordinates
// it reports.
const MaxUploadDimension = 1568

// FitForUpload returns an asset sized for upload and the factor that maps
// coordinates in the uploaded image back to the original.
//
// If the asset already fits within MaxUploadDimension in both dimensions it is
// returned unchanged with a scale of 1. Otherwise the image is downscaled
// preserving aspect ratio, re-encoded as PNG, and the returned scale is
// original width divided by uploaded width (equal to the height ratio).
func FitForUpload(a *ImageAsset) (*ImageAsset, float64, error) {
	if a.Width <= MaxUploadDimension && a.Height <= MaxUploadDimension {
		return a, 1, nil
	}

	img, err := a.Decode()
	if err != nil {
		return nil, 0, err
	}

	fitted := imaging.Fit(img, MaxUploadDimension, MaxUploadDimension, imaging.Lanczos)
	bounds := fitted.Bounds()

	var buf bytes.Buffer
	if err := png.Encode(&buf, fitted); err != nil {
		return nil, 0, fmt.Errorf("failed to encode downscaled image: %w", err)
	}

	scaled := &ImageAsset{
		Path:      a.Path,
		Data:      buf.Bytes(),
		MediaType: "image/png",
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
	}
	return scaled, float64(a.Width) / float64(scaled.Width), nil
}
