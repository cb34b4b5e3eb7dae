package pixlayout

import (
	"image"
	"iter"

	"github.com/gogpu/pixlayout/channel"
)

// Image is a 2D grid of pixels in caller-owned memory, held as one row
// accessor per scanline of the data window.
//
// An image becomes usable in two steps: set the data window (directly or
// through an option), then attach one buffer per required channel with
// SetChannelPointer. IsValid reports when both are done.
type Image[T Sample] struct {
	layout    Layout
	data      Box
	display   Box
	windowSet bool
	rows      []*Accessor[T]
	attached  channel.Set
}

// NewImage returns an image with layout l.
func NewImage[T Sample](l Layout, opts ...ImageOption) (*Image[T], error) {
	if l == nil {
		return nil, precondition("image needs a layout")
	}
	var o imageOptions
	for _, opt := range opts {
		opt(&o)
	}

	img := &Image[T]{layout: l.Clone()}
	if o.dataWindow != nil {
		if err := img.SetDataWindow(*o.dataWindow); err != nil {
			return nil, err
		}
	}
	switch {
	case o.displayWindow != nil:
		img.display = *o.displayWindow
	case o.dataWindow != nil:
		img.display = *o.dataWindow
	}
	return img, nil
}

// Layout returns a copy of the image's layout. The rows keep their own
// layouts; grow the image with AddChannels, not through the copy.
func (img *Image[T]) Layout() Layout { return img.layout.Clone() }

// DataWindow returns the box of stored pixels.
func (img *Image[T]) DataWindow() Box { return img.data }

// DisplayWindow returns the display window.
func (img *Image[T]) DisplayWindow() Box { return img.display }

// Width returns the data window width.
func (img *Image[T]) Width() int { return img.data.Width() }

// Height returns the data window height.
func (img *Image[T]) Height() int { return img.data.Height() }

// RequiredChannels returns the channels that need a buffer attached.
func (img *Image[T]) RequiredChannels() channel.Set { return img.layout.RequiredChannels() }

// AttachedChannels returns the channels attached so far.
func (img *Image[T]) AttachedChannels() channel.Set { return img.attached }

// SetDisplayWindow sets the display window.
func (img *Image[T]) SetDisplayWindow(b Box) { img.display = b }

// SetDataWindow sets the data window and allocates one row accessor per
// scanline. Previously attached buffers are dropped.
func (img *Image[T]) SetDataWindow(b Box) error {
	rows := make([]*Accessor[T], b.Height())
	for i := range rows {
		a, err := NewAccessor[T](img.layout)
		if err != nil {
			return err
		}
		rows[i] = a
	}
	img.data, img.rows, img.windowSet = b, rows, true
	img.attached = channel.Empty

	Logger().Debug("pixlayout: data window set", "window", b, "rows", len(rows))
	return nil
}

// SetChannelPointer attaches buf as the storage of required channel c for
// every scanline.
//
// stride is the distance between the starts of consecutive rows, counted
// in pixels; each pixel spans Step(c) elements. With a positive stride row
// 0 starts at buf[0]; with a negative stride the rows are laid out bottom
// up and the last row starts at buf[0]. For interleaved channels buf holds
// the whole group.
func (img *Image[T]) SetChannelPointer(c channel.Channel, buf []T, stride int) error {
	if !img.windowSet {
		return precondition("set channel pointer for %v before the data window", c)
	}
	if img.data.Empty() {
		return precondition("set channel pointer for %v on an empty data window", c)
	}
	if buf == nil {
		return precondition("nil buffer for channel %v", c)
	}
	if _, err := pointerIndex(img.layout, c); err != nil {
		return err
	}
	w, h := img.Width(), img.Height()
	if stride < w && -stride < w {
		return precondition("stride %d shorter than width %d", stride, w)
	}

	step, err := img.layout.Step(c)
	if err != nil {
		return err
	}
	rowElems := stride * step
	base := 0
	if stride < 0 {
		base = -rowElems * (h - 1)
	}
	need := max(base, base+rowElems*(h-1)) + w*step
	if len(buf) < need {
		return &ChannelError{
			Op:      "set channel pointer",
			Channel: c,
			Err:     &IndexError{Op: "buffer", Index: need - 1, Len: len(buf)},
		}
	}

	for y, row := range img.rows {
		if err := row.SetChannelPointer(c, buf, base+y*rowElems); err != nil {
			return err
		}
	}
	img.attached = img.attached.With(c)

	Logger().Debug("pixlayout: channel pointer attached",
		"channel", c, "stride", stride, "step", step, "valid", img.IsValid())
	return nil
}

// IsValid reports whether the data window is non-empty and every required
// channel has a buffer attached.
func (img *Image[T]) IsValid() bool {
	return img.windowSet &&
		!img.data.Empty() &&
		img.Width() > 0 && img.Height() > 0 &&
		img.layout.NumChannels() > 0 &&
		img.attached.ContainsAll(img.layout.RequiredChannels())
}

// AddChannels grows an image with a dynamic layout. The new required
// channels need buffers before the image is valid again.
func (img *Image[T]) AddChannels(s channel.Set, group channel.Group) error {
	nl, err := grow(img.layout, s, group)
	if err != nil {
		return err
	}
	for _, row := range img.rows {
		if err := row.ptrs.rebind(nl); err != nil {
			return err
		}
	}
	img.layout = nl

	Logger().Debug("pixlayout: image channels added", "added", s, "layout", nl)
	return nil
}

// Row returns the pixels of absolute scanline y.
func (img *Image[T]) Row(y int) (Row[T], error) {
	if !img.IsValid() {
		return Row[T]{}, precondition("row %d of an image that is not valid", y)
	}
	if y < img.data.Min.Y || y > img.data.Max.Y {
		return Row[T]{}, &IndexError{Op: "row", Index: y - img.data.Min.Y, Len: img.Height()}
	}
	return NewRow(NewIterator(img.rows[y-img.data.Min.Y]), img.Width()), nil
}

// At returns an iterator at absolute position (x, y).
func (img *Image[T]) At(x, y int) (Iterator[T], error) {
	row, err := img.Row(y)
	if err != nil {
		return Iterator[T]{}, err
	}
	return row.At(x - img.data.Min.X)
}

// Rows yields every scanline with its absolute y. An image that is not
// valid yields nothing.
func (img *Image[T]) Rows() iter.Seq2[int, Row[T]] {
	return func(yield func(int, Row[T]) bool) {
		if !img.IsValid() {
			return
		}
		for i, a := range img.rows {
			if !yield(img.data.Min.Y+i, NewRow(NewIterator(a), img.Width())) {
				return
			}
		}
	}
}

// DataPoint converts a display-space point to the data convention.
func (img *Image[T]) DataPoint(p image.Point) image.Point { return FlipPoint(p, img.display) }

// DisplayPoint converts a data-space point to the display convention.
func (img *Image[T]) DisplayPoint(p image.Point) image.Point { return FlipPoint(p, img.display) }
