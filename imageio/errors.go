package imageio

import "errors"

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file format is unknown or
	// cannot be encoded.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrUnsupportedChannel is returned for a channel that has no place in
	// an RGBA file: any name other than R, G, B, A or Z.
	ErrUnsupportedChannel = errors.New("imageio: unsupported channel")

	// ErrEmptyData is returned when image data or bounds are empty.
	ErrEmptyData = errors.New("imageio: empty data")
)
