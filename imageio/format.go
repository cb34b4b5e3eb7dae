package imageio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an image file format.
type Format uint8

const (
	// FormatPNG is lossless PNG with 16-bit samples.
	FormatPNG Format = iota

	// FormatJPEG is lossy JPEG. Alpha is discarded on encode.
	FormatJPEG

	// FormatTIFF is TIFF with 16-bit samples.
	FormatTIFF

	// FormatBMP is uncompressed BMP. Alpha is discarded on encode.
	FormatBMP

	// FormatWebP is WebP, decode only.
	FormatWebP

	// FormatEXR is scanline OpenEXR. Channels keep their float samples
	// unclamped and are stored planar, depth included.
	FormatEXR

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a file format.
type FormatInfo struct {
	// Name is the name image.Decode reports for the format.
	Name string

	// Extensions lists the lower-case file extensions, preferred first.
	Extensions []string

	// HasAlpha indicates if encoding keeps the alpha channel.
	HasAlpha bool

	// CanEncode indicates if the format can be written.
	CanEncode bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatPNG: {
		Name:       "png",
		Extensions: []string{".png"},
		HasAlpha:   true,
		CanEncode:  true,
	},
	FormatJPEG: {
		Name:       "jpeg",
		Extensions: []string{".jpg", ".jpeg"},
		CanEncode:  true,
	},
	FormatTIFF: {
		Name:       "tiff",
		Extensions: []string{".tif", ".tiff"},
		HasAlpha:   true,
		CanEncode:  true,
	},
	FormatBMP: {
		Name:       "bmp",
		Extensions: []string{".bmp"},
		CanEncode:  true,
	},
	FormatWebP: {
		Name:       "webp",
		Extensions: []string{".webp"},
	},
	FormatEXR: {
		Name:       "exr",
		Extensions: []string{".exr"},
		HasAlpha:   true,
		CanEncode:  true,
	},
}

// Info returns metadata for the format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool { return f < formatCount }

// String returns the format name.
func (f Format) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Format(%d)", f)
	}
	return formatInfoTable[f].Name
}

// FormatFromName returns the format image.Decode reports as name.
func FormatFromName(name string) (Format, error) {
	for f := range formatCount {
		if formatInfoTable[f].Name == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatFromPath returns the format matching the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for f := range formatCount {
		for _, e := range formatInfoTable[f].Extensions {
			if e == ext {
				return f, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
}
