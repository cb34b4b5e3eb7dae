package pixlayout

import (
	"github.com/gogpu/pixlayout/channel"
)

// Iterator is an Accessor that moves across pixels. Each step advances
// every pointer by its own step, so a whole pixel's channels move at once.
//
// Two iterators are at the same position when the address of their
// channel at index 0 matches; see SamePosition. Equal compares values.
type Iterator[T Sample] struct {
	*Accessor[T]
}

// NewIterator returns an iterator starting where a points. The iterator
// moves independently of a.
func NewIterator[T Sample](a *Accessor[T]) Iterator[T] {
	return Iterator[T]{Accessor: a.Clone()}
}

// Next advances by one pixel.
func (it Iterator[T]) Next() { it.ptrs.Increment(1) }

// Prev moves back by one pixel.
func (it Iterator[T]) Prev() { it.ptrs.Decrement(1) }

// Increment advances by n pixels.
func (it Iterator[T]) Increment(n int) { it.ptrs.Increment(n) }

// Decrement moves back by n pixels.
func (it Iterator[T]) Decrement(n int) { it.ptrs.Decrement(n) }

// Offset returns a new iterator n pixels from it; it does not move.
func (it Iterator[T]) Offset(n int) Iterator[T] {
	o := it.Clone()
	o.Increment(n)
	return o
}

// Clone returns an iterator at the same position that moves independently.
func (it Iterator[T]) Clone() Iterator[T] {
	return Iterator[T]{Accessor: it.Accessor.Clone()}
}

// SamePosition reports whether it and o point at the same pixel, judged
// by the address of the channel at index 0.
func (it Iterator[T]) SamePosition(o Iterator[T]) bool {
	a := it.address()
	return a != 0 && a == o.address()
}

// ReadOnly returns a read-only iterator over the same position. It moves
// independently of it.
func (it Iterator[T]) ReadOnly() ConstIterator[T] {
	return ConstIterator[T]{it: it.Clone()}
}

// ConstIterator is a read-only Iterator.
type ConstIterator[T Sample] struct {
	it Iterator[T]
}

// Layout returns the iterator's layout.
func (c ConstIterator[T]) Layout() Layout { return c.it.Layout() }

// Channels returns the channels reachable at each position.
func (c ConstIterator[T]) Channels() channel.Set { return c.it.Channels() }

// Get returns ch's value at the current position.
func (c ConstIterator[T]) Get(ch channel.Channel) (T, error) { return c.it.Get(ch) }

// Next advances by one pixel.
func (c ConstIterator[T]) Next() { c.it.Next() }

// Prev moves back by one pixel.
func (c ConstIterator[T]) Prev() { c.it.Prev() }

// Increment advances by n pixels.
func (c ConstIterator[T]) Increment(n int) { c.it.Increment(n) }

// Decrement moves back by n pixels.
func (c ConstIterator[T]) Decrement(n int) { c.it.Decrement(n) }

// Offset returns a new iterator n pixels from c.
func (c ConstIterator[T]) Offset(n int) ConstIterator[T] {
	return ConstIterator[T]{it: c.it.Offset(n)}
}

// SamePosition reports whether both iterators point at the same pixel.
func (c ConstIterator[T]) SamePosition(o ConstIterator[T]) bool {
	return c.it.SamePosition(o.it)
}
