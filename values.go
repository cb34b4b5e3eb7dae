package pixlayout

import (
	"slices"

	"github.com/gogpu/pixlayout/channel"
)

// Values is a value container: it owns one value per channel of its
// layout, at the slot index the layout assigns.
type Values[T Sample] struct {
	layout Layout
	data   []T

	// child is set on sub-containers returned by Child, which view part
	// of their parent's storage and cannot grow.
	child bool
}

// NewValues returns a zeroed container for l. The container keeps its own
// copy of a dynamic layout.
func NewValues[T Sample](l Layout) (*Values[T], error) {
	if l == nil {
		return nil, precondition("value container needs a layout")
	}
	l = l.Clone()
	return &Values[T]{layout: l, data: make([]T, l.NumChannels())}, nil
}

// Layout returns a copy of the container's layout. Growing the copy does
// not affect v; use AddChannels for that.
func (v *Values[T]) Layout() Layout { return v.layout.Clone() }

// Len returns the number of stored values.
func (v *Values[T]) Len() int { return len(v.data) }

// Data returns the values in slot order.
func (v *Values[T]) Data() []T { return v.data }

// Ref returns a reference to c's value.
func (v *Values[T]) Ref(c channel.Channel) (*T, error) {
	s, err := v.layout.Slot(c)
	if err != nil {
		return nil, err
	}
	return v.ref(s)
}

// RefAt returns a reference to the index-th channel among those selected
// by mask.
func (v *Values[T]) RefAt(index int, mask channel.Set) (*T, error) {
	s, err := v.layout.SlotAt(index, mask)
	if err != nil {
		return nil, err
	}
	return v.ref(s)
}

func (v *Values[T]) ref(s Slot) (*T, error) {
	if s.Value < 0 || s.Value >= len(v.data) {
		return nil, &ChannelError{
			Op:      "value",
			Channel: s.Channel,
			Err:     &IndexError{Op: "value", Index: s.Value, Len: len(v.data)},
		}
	}
	return &v.data[s.Value], nil
}

// At returns a reference through a slot resolved from this container's
// layout.
func (v *Values[T]) At(s Slot) *T { return &v.data[s.Value] }

// Child returns the sub-container of compound sub-layout i. It shares
// storage with v: writes through either are visible to both. The
// sub-container cannot grow; AddChannels on it fails with ErrPrecondition
// and the parent must be grown instead.
func (v *Values[T]) Child(i int) (*Values[T], error) {
	cl, ok := v.layout.(*CompoundLayout)
	if !ok {
		return nil, precondition("%v is not a compound layout", v.layout)
	}
	child, err := cl.Child(i)
	if err != nil {
		return nil, err
	}
	base := cl.valueBase[i]
	end := base + child.NumChannels()
	return &Values[T]{layout: child, data: v.data[base:end:end], child: true}, nil
}

// AddChannels grows the container's dynamic layout and keeps every
// existing value.
func (v *Values[T]) AddChannels(s channel.Set, group channel.Group) error {
	if v.child {
		return precondition("cannot grow a sub-container; grow its parent")
	}
	nl, err := grow(v.layout, s, group)
	if err != nil {
		return err
	}
	return v.rebind(nl)
}

// rebind moves every value to its slot in nl.
func (v *Values[T]) rebind(nl Layout) error {
	data := make([]T, nl.NumChannels())
	for c := range v.layout.Channels().All() {
		from, err := v.layout.Slot(c)
		if err != nil {
			return err
		}
		to, err := nl.Slot(c)
		if err != nil {
			return err
		}
		data[to.Value] = v.data[from.Value]
	}
	v.layout, v.data = nl, data
	return nil
}

// Clone returns a copy that shares no storage with v. The copy of a
// sub-container is a standalone container and may grow.
func (v *Values[T]) Clone() *Values[T] {
	return &Values[T]{layout: v.layout, data: slices.Clone(v.data)}
}

// grow returns a copy of l with s added.
func grow(l Layout, s channel.Set, group channel.Group) (Layout, error) {
	if _, ok := l.(ChannelAdder); !ok {
		return nil, precondition("cannot add channels to %s layout %v", l.Kind(), l)
	}
	nl := l.Clone().(ChannelAdder)
	if err := nl.AddChannels(s, group); err != nil {
		return nil, err
	}
	return nl, nil
}
