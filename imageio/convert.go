package imageio

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/pixlayout"
	"github.com/gogpu/pixlayout/channel"
	"github.com/gogpu/pixlayout/internal/parallel"
)

// minParallelRows is the image height below which rows are converted on
// the calling goroutine.
const minParallelRows = 64

// forEachBand runs fn over bands of rows [0, height).
func forEachBand(height, workers int, fn func(y0, y1 int) error) error {
	if workers == 1 || height < minParallelRows {
		return fn(0, height)
	}
	pool := parallel.NewPool(workers)
	defer pool.Close()
	return pool.Bands(height, fn)
}

// opaquer is implemented by the standard image types.
type opaquer interface {
	Opaque() bool
}

// FromImage copies src into a new float32 image. Both windows are set to
// src's bounds. Opaque sources get an RGB layout, the rest RGBA; WithDepth
// appends a zero-filled depth channel.
func FromImage(src image.Image, opts ...Option) (*pixlayout.Image[float32], error) {
	o := newOptions(opts)
	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: bounds %v", ErrEmptyData, bounds)
	}

	names := []string{"R", "G", "B"}
	if op, ok := src.(opaquer); !ok || !op.Opaque() {
		names = append(names, "A")
	}
	if o.depth {
		names = append(names, "Z")
	}
	set, err := ChannelsFromNames(names)
	if err != nil {
		return nil, err
	}
	l, err := layoutFor(set)
	if err != nil {
		return nil, err
	}

	window := pixlayout.BoxFromRect(bounds)
	img, err := pixlayout.NewImage[float32](l,
		pixlayout.WithDataWindow(window), pixlayout.WithDisplayWindow(window))
	if err != nil {
		return nil, err
	}

	w, h := bounds.Dx(), bounds.Dy()
	n := 3
	if set.Contains(channel.Alpha) {
		n = 4
	}
	pix := make([]float32, w*h*n)
	err = forEachBand(h, o.workers, func(y0, y1 int) error {
		for y := y0; y < y1; y++ {
			for x := range w {
				c := color.NRGBA64Model.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA64)
				i := (y*w + x) * n
				pix[i+0] = unit(c.R)
				pix[i+1] = unit(c.G)
				pix[i+2] = unit(c.B)
				if n == 4 {
					pix[i+3] = unit(c.A)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := img.SetChannelPointer(channel.Red, pix, w); err != nil {
		return nil, err
	}
	if set.Contains(channel.Depth) {
		if err := img.SetChannelPointer(channel.Depth, make([]float32, w*h), w); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// ToImage copies the color channels of img into a 16-bit NRGBA image
// covering its data window. Missing color channels read as 0 and missing
// alpha as opaque; depth is dropped.
func ToImage(img *pixlayout.Image[float32], opts ...Option) (*image.NRGBA64, error) {
	o := newOptions(opts)
	if !img.IsValid() {
		return nil, fmt.Errorf("imageio: %w: image is not valid", pixlayout.ErrPrecondition)
	}
	chans := img.Layout().Channels()
	if extra := chans.Difference(supported); !extra.IsEmpty() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedChannel, extra)
	}
	if chans.Contains(channel.Depth) {
		pixlayout.Logger().Warn("imageio: depth channel not written")
	}

	out := image.NewNRGBA64(img.DataWindow().Rect())
	if !chans.Contains(channel.Alpha) {
		for i := 6; i < len(out.Pix); i += 8 {
			out.Pix[i], out.Pix[i+1] = 0xff, 0xff
		}
	}

	// Component byte offsets within an NRGBA64 pixel.
	components := []struct {
		c   channel.Channel
		off int
	}{
		{channel.Red, 0},
		{channel.Green, 2},
		{channel.Blue, 4},
		{channel.Alpha, 6},
	}
	window := img.DataWindow()
	err := forEachBand(img.Height(), o.workers, func(y0, y1 int) error {
		for y := window.Min.Y + y0; y < window.Min.Y+y1; y++ {
			row, err := img.Row(y)
			if err != nil {
				return err
			}
			for _, comp := range components {
				if !chans.Contains(comp.c) {
					continue
				}
				for x, px := range row.Pixels() {
					v, err := px.Get(comp.c)
					if err != nil {
						return err
					}
					i := out.PixOffset(window.Min.X+x, y) + comp.off
					out.Pix[i], out.Pix[i+1] = put16(v)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// unit maps a 16-bit sample to [0, 1].
func unit(v uint16) float32 { return float32(v) / 0xffff }

// put16 quantizes v to a big-endian 16-bit sample, clamping to [0, 1].
// NaN is written as 0.
func put16(v float32) (hi, lo byte) {
	if v != v {
		return 0, 0
	}
	v = min(max(v, 0), 1)
	q := uint16(v*0xffff + 0.5)
	return byte(q >> 8), byte(q)
}
