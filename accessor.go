package pixlayout

import (
	"github.com/gogpu/pixlayout/channel"
)

// Accessor reads and writes the channels of one pixel in caller-owned
// memory. It never owns that memory.
//
// Copying an Accessor value shares its pointer slots; use Clone for an
// accessor that moves independently.
type Accessor[T Sample] struct {
	ptrs *Pointers[T]
}

// NewAccessor returns an accessor for l with no pointers attached. A
// dynamic layout must be passed explicitly; there is no default accessor.
func NewAccessor[T Sample](l Layout) (*Accessor[T], error) {
	p, err := NewPointers[T](l)
	if err != nil {
		return nil, err
	}
	return &Accessor[T]{ptrs: p}, nil
}

// MustAccessor is like NewAccessor but panics on error.
func MustAccessor[T Sample](l Layout) *Accessor[T] {
	return must(NewAccessor[T](l))
}

// Layout returns a copy of the accessor's layout.
func (a *Accessor[T]) Layout() Layout { return a.ptrs.Layout() }

// Channels returns the channels the accessor reaches.
func (a *Accessor[T]) Channels() channel.Set { return a.ptrs.layout.Channels() }

// RequiredChannels returns the channels that need a pointer attached.
func (a *Accessor[T]) RequiredChannels() channel.Set { return a.ptrs.layout.RequiredChannels() }

// Pointers returns the underlying pointer container.
func (a *Accessor[T]) Pointers() *Pointers[T] { return a.ptrs }

// SetChannelPointer attaches buf[off] as the address of required channel c.
// For interleaved channels the address is the start of the group.
func (a *Accessor[T]) SetChannelPointer(c channel.Channel, buf []T, off int) error {
	if buf == nil {
		return precondition("nil buffer for channel %v", c)
	}
	return a.ptrs.SetPointer(c, PtrTo(buf, off))
}

// Attached reports whether every required channel has a pointer.
func (a *Accessor[T]) Attached() bool { return a.ptrs.Attached() }

// Get returns c's value.
func (a *Accessor[T]) Get(c channel.Channel) (T, error) {
	r, err := a.ptrs.Ref(c)
	if err != nil {
		var zero T
		return zero, err
	}
	return *r, nil
}

// Set stores v as c's value.
func (a *Accessor[T]) Set(c channel.Channel, v T) error {
	r, err := a.ptrs.Ref(c)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Ref returns a reference to c's value.
func (a *Accessor[T]) Ref(c channel.Channel) (*T, error) { return a.ptrs.Ref(c) }

// RefAt returns a reference to the index-th channel among those selected
// by mask.
func (a *Accessor[T]) RefAt(index int, mask channel.Set) (*T, error) {
	return a.ptrs.RefAt(index, mask)
}

// At dereferences a pre-resolved slot.
func (a *Accessor[T]) At(s Slot) *T { return a.ptrs.At(s) }

// MustGet is like Get but panics when c cannot be read.
func (a *Accessor[T]) MustGet(c channel.Channel) T { return must(a.Get(c)) }

// AddChannels grows an accessor with a dynamic layout. The new channels
// start without pointers.
func (a *Accessor[T]) AddChannels(s channel.Set, group channel.Group) error {
	return a.ptrs.AddChannels(s, group)
}

// CopyFrom copies every channel of src; both must hold the same channels.
func (a *Accessor[T]) CopyFrom(src Reader[T]) error { return Copy[T](a, src) }

// Equal reports whether a and o hold the same channels with equal values.
func (a *Accessor[T]) Equal(o Reader[T]) bool { return Equal[T](a, o) }

// Pixel copies the values a points at into a new Pixel.
func (a *Accessor[T]) Pixel() (*Pixel[T], error) {
	p, err := NewPixel[T](a.ptrs.layout)
	if err != nil {
		return nil, err
	}
	if err := p.CopyFrom(a); err != nil {
		return nil, err
	}
	return p, nil
}

// Clone returns an accessor at the same position that moves independently.
func (a *Accessor[T]) Clone() *Accessor[T] { return &Accessor[T]{ptrs: a.ptrs.Clone()} }

// ReadOnly returns a read-only view of a.
func (a *Accessor[T]) ReadOnly() ConstAccessor[T] { return ConstAccessor[T]{a: a} }

// address returns the address of the channel at index 0, or 0 when it
// is not attached.
func (a *Accessor[T]) address() uintptr {
	if a.ptrs.layout.NumChannels() == 0 {
		return 0
	}
	s, err := a.ptrs.layout.SlotAt(0, channel.All)
	if err != nil {
		return 0
	}
	return a.ptrs.ptrs[s.Pointer].Add(s.Offset).Addr()
}

// ConstAccessor is a read-only view over an Accessor.
type ConstAccessor[T Sample] struct {
	a *Accessor[T]
}

// Layout returns the viewed layout.
func (c ConstAccessor[T]) Layout() Layout { return c.a.Layout() }

// Channels returns the viewed channels.
func (c ConstAccessor[T]) Channels() channel.Set { return c.a.Channels() }

// Get returns ch's value.
func (c ConstAccessor[T]) Get(ch channel.Channel) (T, error) { return c.a.Get(ch) }

// GetAt returns the index-th channel value among those selected by mask.
func (c ConstAccessor[T]) GetAt(index int, mask channel.Set) (T, error) {
	r, err := c.a.RefAt(index, mask)
	if err != nil {
		var zero T
		return zero, err
	}
	return *r, nil
}

// Equal reports whether the view and o hold equal channel values.
func (c ConstAccessor[T]) Equal(o Reader[T]) bool { return Equal[T](c, o) }
