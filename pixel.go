package pixlayout

import (
	"github.com/gogpu/pixlayout/channel"
)

// Reader reads channel values of one pixel.
type Reader[T Sample] interface {
	Layout() Layout
	Channels() channel.Set
	Get(c channel.Channel) (T, error)
}

// Writer reads and writes channel values of one pixel.
type Writer[T Sample] interface {
	Reader[T]
	Set(c channel.Channel, v T) error
}

// Pixel owns the channel values of one pixel.
type Pixel[T Sample] struct {
	values *Values[T]
}

// NewPixel returns a zeroed pixel with layout l.
func NewPixel[T Sample](l Layout) (*Pixel[T], error) {
	v, err := NewValues[T](l)
	if err != nil {
		return nil, err
	}
	return &Pixel[T]{values: v}, nil
}

// MustPixel is like NewPixel but panics on error.
func MustPixel[T Sample](l Layout) *Pixel[T] {
	return must(NewPixel[T](l))
}

// Layout returns a copy of the pixel's layout.
func (p *Pixel[T]) Layout() Layout { return p.values.Layout() }

// Channels returns the channels the pixel holds.
func (p *Pixel[T]) Channels() channel.Set { return p.values.layout.Channels() }

// Values returns the underlying value container.
func (p *Pixel[T]) Values() *Values[T] { return p.values }

// Get returns c's value.
func (p *Pixel[T]) Get(c channel.Channel) (T, error) {
	r, err := p.values.Ref(c)
	if err != nil {
		var zero T
		return zero, err
	}
	return *r, nil
}

// Set stores v as c's value.
func (p *Pixel[T]) Set(c channel.Channel, v T) error {
	r, err := p.values.Ref(c)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Ref returns a reference to c's value.
func (p *Pixel[T]) Ref(c channel.Channel) (*T, error) { return p.values.Ref(c) }

// RefAt returns a reference to the index-th channel among those selected
// by mask.
func (p *Pixel[T]) RefAt(index int, mask channel.Set) (*T, error) {
	return p.values.RefAt(index, mask)
}

// At returns a reference through a pre-resolved slot.
func (p *Pixel[T]) At(s Slot) *T { return p.values.At(s) }

// MustGet is like Get but panics when the pixel does not hold c.
func (p *Pixel[T]) MustGet(c channel.Channel) T { return must(p.Get(c)) }

// AddChannels grows a pixel with a dynamic layout. New channels are zero.
func (p *Pixel[T]) AddChannels(s channel.Set, group channel.Group) error {
	return p.values.AddChannels(s, group)
}

// CopyFrom copies every channel of src. Both pixels must hold the same
// channels.
func (p *Pixel[T]) CopyFrom(src Reader[T]) error { return Copy[T](p, src) }

// Clone returns an independent copy of p.
func (p *Pixel[T]) Clone() *Pixel[T] { return &Pixel[T]{values: p.values.Clone()} }

// Equal reports whether p and o hold the same channels with equal values.
func (p *Pixel[T]) Equal(o Reader[T]) bool { return Equal[T](p, o) }

// Copy copies every channel of src into dst. The channel sets must match;
// use CopyShared for an asymmetric copy.
func Copy[T Sample](dst Writer[T], src Reader[T]) error {
	if dst.Channels() != src.Channels() {
		return precondition("copy between channel sets %v and %v", dst.Channels(), src.Channels())
	}
	return copyChannels(dst, src, src.Channels())
}

// CopyShared copies the channels present in both dst and src and returns
// the set copied.
func CopyShared[T Sample](dst Writer[T], src Reader[T]) (channel.Set, error) {
	shared := dst.Channels().Intersect(src.Channels())
	return shared, copyChannels(dst, src, shared)
}

func copyChannels[T Sample](dst Writer[T], src Reader[T], s channel.Set) error {
	for c := range s.All() {
		v, err := src.Get(c)
		if err != nil {
			return err
		}
		if err := dst.Set(c, v); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether a and b hold the same channels with equal values.
// Storage order and layout kind do not matter.
func Equal[T Sample](a, b Reader[T]) bool {
	if a.Channels() != b.Channels() {
		return false
	}
	for c := range a.Channels().All() {
		va, err := a.Get(c)
		if err != nil {
			return false
		}
		vb, err := b.Get(c)
		if err != nil || va != vb {
			return false
		}
	}
	return true
}
