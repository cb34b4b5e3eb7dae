package imageio

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/gogpu/pixlayout"
	"github.com/gogpu/pixlayout/channel"
)

// Decode decodes an image from r. The format is detected from the content
// unless WithFormat is given.
func Decode(r io.Reader, opts ...Option) (*pixlayout.Image[float32], error) {
	o := newOptions(opts)
	if !o.formatSet {
		br := bufio.NewReader(r)
		if magic, _ := br.Peek(len(exrMagic)); bytes.Equal(magic, exrMagic) {
			o.format, o.formatSet = FormatEXR, true
		}
		r = br
	}

	var (
		img  *pixlayout.Image[float32]
		name string
		err  error
	)
	if o.formatSet && o.format == FormatEXR {
		name = o.format.String()
		if img, err = decodeEXR(r, o); err != nil {
			return nil, fmt.Errorf("imageio: decode: %w", err)
		}
	} else {
		var src image.Image
		if o.formatSet {
			name = o.format.String()
			src, err = decodeAs(r, o.format)
		} else {
			src, name, err = image.Decode(r)
		}
		if err != nil {
			return nil, fmt.Errorf("imageio: decode: %w", err)
		}
		if img, err = FromImage(src, opts...); err != nil {
			return nil, err
		}
	}

	pixlayout.Logger().Info("imageio: decoded",
		"format", name, "window", img.DataWindow(), "channels", img.Layout().Channels())
	return img, nil
}

// DecodeBytes decodes an image from a byte slice.
func DecodeBytes(data []byte, opts ...Option) (*pixlayout.Image[float32], error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data), opts...)
}

// DecodeFile decodes the image at path. A known extension selects the
// decoder; anything else is detected from the content.
func DecodeFile(path string, opts ...Option) (*pixlayout.Image[float32], error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if format, err := FormatFromPath(path); err == nil {
		opts = append([]Option{WithFormat(format)}, opts...)
	}
	return Decode(f, opts...)
}

func decodeAs(r io.Reader, f Format) (image.Image, error) {
	switch f {
	case FormatPNG:
		return png.Decode(r)
	case FormatJPEG:
		return jpeg.Decode(r)
	case FormatTIFF:
		return tiff.Decode(r)
	case FormatBMP:
		return bmp.Decode(r)
	case FormatWebP:
		return webp.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// Encode writes img to w. The format defaults to PNG.
func Encode(w io.Writer, img *pixlayout.Image[float32], opts ...Option) error {
	o := newOptions(opts)
	info := o.format.Info()
	if !o.format.IsValid() || !info.CanEncode {
		return fmt.Errorf("%w: cannot encode %v", ErrUnsupportedFormat, o.format)
	}

	if o.format == FormatEXR {
		if err := encodeEXR(w, img, o); err != nil {
			return fmt.Errorf("imageio: encode %v: %w", o.format, err)
		}
	} else if err := encodeImage(w, img, o); err != nil {
		return err
	}

	pixlayout.Logger().Info("imageio: encoded", "format", o.format, "window", img.DataWindow())
	return nil
}

// encodeImage writes img through the standard library and x/image
// encoders, quantized to 16 bits.
func encodeImage(w io.Writer, img *pixlayout.Image[float32], o options) error {
	m, err := ToImage(img, WithWorkers(o.workers))
	if err != nil {
		return err
	}
	if !o.format.Info().HasAlpha && img.Layout().Contains(channel.Alpha) {
		pixlayout.Logger().Warn("imageio: alpha channel discarded", "format", o.format)
	}

	switch o.format {
	case FormatPNG:
		err = png.Encode(w, m)
	case FormatJPEG:
		err = jpeg.Encode(w, m, &jpeg.Options{Quality: o.jpegQuality})
	case FormatTIFF:
		err = tiff.Encode(w, m, &tiff.Options{Compression: o.tiffCompression})
	case FormatBMP:
		err = bmp.Encode(w, m)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %v: %w", o.format, err)
	}
	return nil
}

// EncodeFile writes img to path. Without WithFormat the format follows the
// file extension.
func EncodeFile(path string, img *pixlayout.Image[float32], opts ...Option) error {
	if o := newOptions(opts); !o.formatSet {
		format, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		opts = append([]Option{WithFormat(format)}, opts...)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, img, opts...); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
