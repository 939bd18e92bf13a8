// Package imaging handles screenshot loading and preparation for upload to
// the vision service.
//
// A screenshot is loaded once per invocation into an ImageAsset: raw bytes,
// pixel dimensions, and a transport media type inferred from the file
// extension. Screenshots larger than the vision service's preferred maximum
// are downscaled before upload (FitForUpload); located coordinates are scaled
// back to the original image space by the caller using the returned factor.
//
// The package also writes marker images: a copy of the screenshot with a
// crosshair at a located coordinate, drawn in black or white depending on the
// perceived brightness of the surrounding pixels.
//
// # Supported Formats
//
// PNG, JPEG, GIF, and WebP are decoded for dimension reading. Unrecognized
// extensions are transported as image/png, matching the behavior callers rely
// on for screenshots written without an extension.
package imaging
