package imageio

import (
	"github.com/mrjoshuak/go-openexr/exr"
	"golang.org/x/image/tiff"
)

// DefaultJPEGQuality is the JPEG quality used when none is given.
const DefaultJPEGQuality = 90

// Option configures decoding and encoding.
//
// Example:
//
//	// Force TIFF regardless of the file extension, uncompressed
//	err := imageio.EncodeFile("out.dat", img,
//	    imageio.WithFormat(imageio.FormatTIFF),
//	    imageio.WithTIFFCompression(tiff.Uncompressed))
type Option func(*options)

type options struct {
	format          Format
	formatSet       bool
	jpegQuality     int
	tiffCompression tiff.CompressionType
	exrCompression  exr.Compression
	exrHalf         bool
	depth           bool
	workers         int
}

func defaultOptions() options {
	return options{
		jpegQuality:     DefaultJPEGQuality,
		tiffCompression: tiff.Deflate,
		exrCompression:  exr.CompressionZIP,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFormat selects the format instead of detecting it from the content
// or the file extension.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
		o.formatSet = true
	}
}

// WithJPEGQuality sets the JPEG quality, clamped to 1..100.
func WithJPEGQuality(q int) Option {
	return func(o *options) {
		o.jpegQuality = min(max(q, 1), 100)
	}
}

// WithTIFFCompression sets the TIFF compression. The default is Deflate.
func WithTIFFCompression(c tiff.CompressionType) Option {
	return func(o *options) {
		o.tiffCompression = c
	}
}

// WithEXRCompression sets the OpenEXR compression. The default is ZIP.
func WithEXRCompression(c exr.Compression) Option {
	return func(o *options) {
		o.exrCompression = c
	}
}

// WithEXRHalf stores OpenEXR channels as 16-bit half floats instead of
// 32-bit floats.
func WithEXRHalf() Option {
	return func(o *options) {
		o.exrHalf = true
	}
}

// WithDepth adds a zero-filled planar depth channel to decoded images
// that do not carry one.
func WithDepth() Option {
	return func(o *options) {
		o.depth = true
	}
}

// WithWorkers sets the number of goroutines converting rows. 0 uses
// GOMAXPROCS and 1 converts on the calling goroutine. Small images are
// always converted on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
