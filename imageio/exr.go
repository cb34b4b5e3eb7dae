package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/mrjoshuak/go-openexr/exr"
	"github.com/mrjoshuak/go-openexr/half"

	"github.com/gogpu/pixlayout"
	"github.com/gogpu/pixlayout/channel"
)

// exrMagic opens every OpenEXR file.
var exrMagic = []byte{0x76, 0x2f, 0x31, 0x01}

// exrNames is the inverse of fileChannels.
var exrNames = func() map[channel.Channel]string {
	m := make(map[channel.Channel]string, len(fileChannels))
	for name, c := range fileChannels {
		m[c] = name
	}
	return m
}()

func boxFromEXR(b exr.Box2i) pixlayout.Box {
	return pixlayout.NewBox(int(b.Min.X), int(b.Min.Y), int(b.Max.X), int(b.Max.Y))
}

func boxToEXR(b pixlayout.Box) exr.Box2i {
	return exr.Box2i{
		Min: exr.V2i{X: int32(b.Min.X), Y: int32(b.Min.Y)},
		Max: exr.V2i{X: int32(b.Max.X), Y: int32(b.Max.Y)},
	}
}

// decodeEXR reads the first part of a scanline OpenEXR file into a planar
// image: one float32 buffer per channel named in the header, with the
// header's data and display windows.
func decodeEXR(r io.Reader, o options) (*pixlayout.Image[float32], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	f, err := exr.OpenReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	if f.IsDeep() {
		return nil, fmt.Errorf("%w: deep exr data", ErrUnsupportedFormat)
	}
	h := f.Header(0)
	if h == nil {
		return nil, fmt.Errorf("%w: exr file without a header", ErrEmptyData)
	}
	if h.IsTiled() {
		return nil, fmt.Errorf("%w: tiled exr", ErrUnsupportedFormat)
	}
	if n := f.NumParts(); n > 1 {
		pixlayout.Logger().Warn("imageio: reading the first exr part only", "parts", n)
	}

	cl := h.Channels()
	set, err := ChannelsFromNames(cl.Names())
	if err != nil {
		return nil, err
	}
	if o.depth {
		set = set.With(channel.Depth)
	}
	l, err := pixlayout.NewDynamicLayoutWith(set, channel.GroupNone)
	if err != nil {
		return nil, err
	}
	dw := h.DataWindow()
	img, err := pixlayout.NewImage[float32](l,
		pixlayout.WithDataWindow(boxFromEXR(dw)),
		pixlayout.WithDisplayWindow(boxFromEXR(h.DisplayWindow())))
	if err != nil {
		return nil, err
	}

	sr, err := exr.NewScanlineReader(f)
	if err != nil {
		return nil, err
	}
	fb, _ := exr.AllocateChannels(cl, dw)
	sr.SetFrameBuffer(fb)
	if err := sr.ReadPixels(int(dw.Min.Y), int(dw.Max.Y)); err != nil {
		return nil, err
	}

	w, ht := img.Width(), img.Height()
	x0, y0 := int(dw.Min.X), int(dw.Min.Y)
	for c := range set.All() {
		plane := make([]float32, w*ht)
		if slice := fb.Get(exrNames[c]); slice != nil {
			err := forEachBand(ht, o.workers, func(b0, b1 int) error {
				for y := b0; y < b1; y++ {
					row := plane[y*w : (y+1)*w]
					for x := range row {
						row[x] = slice.GetFloat32(x0+x, y0+y)
					}
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		}
		if err := img.SetChannelPointer(c, plane, w); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// encodeEXR writes img as a scanline OpenEXR file with one channel per
// image channel. Samples are written unclamped.
func encodeEXR(w io.Writer, img *pixlayout.Image[float32], o options) error {
	if !img.IsValid() {
		return fmt.Errorf("imageio: %w: image is not valid", pixlayout.ErrPrecondition)
	}
	chans := img.Layout().Channels()
	if extra := chans.Difference(supported); !extra.IsEmpty() {
		return fmt.Errorf("%w: %v", ErrUnsupportedChannel, extra)
	}

	pt := exr.PixelTypeFloat
	if o.exrHalf {
		pt = exr.PixelTypeHalf
	}
	window := img.DataWindow()
	dw := boxToEXR(window)

	h := exr.NewHeader()
	h.SetDataWindow(dw)
	h.SetDisplayWindow(boxToEXR(img.DisplayWindow()))
	h.SetCompression(o.exrCompression)
	h.SetLineOrder(exr.LineOrderIncreasing)
	h.SetPixelAspectRatio(1.0)
	h.SetScreenWindowCenter(exr.V2f{})
	h.SetScreenWindowWidth(1.0)
	cl := exr.NewChannelList()
	for c := range chans.All() {
		cl.Add(exr.NewChannel(exrNames[c], pt))
	}
	cl.SortByName()
	h.SetChannels(cl)

	fb, _ := exr.AllocateChannels(cl, dw)
	type target struct {
		c     channel.Channel
		slice *exr.Slice
	}
	targets := make([]target, 0, chans.Len())
	for c := range chans.All() {
		targets = append(targets, target{c, fb.Get(exrNames[c])})
	}
	err := forEachBand(img.Height(), o.workers, func(b0, b1 int) error {
		for y := window.Min.Y + b0; y < window.Min.Y+b1; y++ {
			row, err := img.Row(y)
			if err != nil {
				return err
			}
			for x, px := range row.Pixels() {
				for _, t := range targets {
					v, err := px.Get(t.c)
					if err != nil {
						return err
					}
					if pt == exr.PixelTypeHalf {
						t.slice.SetHalf(window.Min.X+x, y, half.FromFloat32(v))
					} else {
						t.slice.SetFloat32(window.Min.X+x, y, v)
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	var buf seekBuffer
	sw, err := exr.NewScanlineWriter(&buf, h)
	if err != nil {
		return err
	}
	sw.SetFrameBuffer(fb)
	if err := sw.WritePixels(int(dw.Min.Y), int(dw.Max.Y)); err != nil {
		return err
	}
	if err := sw.Close(); err != nil {
		return err
	}
	_, err = w.Write(buf.data)
	return err
}

// seekBuffer is an in-memory io.WriteSeeker. The OpenEXR writer seeks back
// to fill in its chunk offset table, which a plain io.Writer cannot take.
type seekBuffer struct {
	data []byte
	pos  int
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	if end := b.pos + len(p); end > len(b.data) {
		b.data = slices.Grow(b.data, end-len(b.data))[:end]
	}
	n := copy(b.data[b.pos:], p)
	b.pos += n
	return n, nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(b.pos) + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, errors.New("imageio: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("imageio: negative position")
	}
	b.pos = int(abs)
	return abs, nil
}
