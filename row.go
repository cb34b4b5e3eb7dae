package pixlayout

import "iter"

// Row is a run of width pixels starting at an iterator.
type Row[T Sample] struct {
	start Iterator[T]
	width int
}

// NewRow returns the row of width pixels starting at start. The row keeps
// its own copy of the iterator.
func NewRow[T Sample](start Iterator[T], width int) Row[T] {
	return Row[T]{start: start.Clone(), width: width}
}

// Width returns the number of pixels in the row.
func (r Row[T]) Width() int { return r.width }

// Begin returns an iterator at the first pixel.
func (r Row[T]) Begin() Iterator[T] { return r.start.Clone() }

// End returns an iterator one past the last pixel. It must not be
// dereferenced.
func (r Row[T]) End() Iterator[T] { return r.start.Offset(r.width) }

// At returns an iterator at pixel x of the row.
func (r Row[T]) At(x int) (Iterator[T], error) {
	if x < 0 || x >= r.width {
		return Iterator[T]{}, &IndexError{Op: "row at", Index: x, Len: r.width}
	}
	return r.start.Offset(x), nil
}

// Pixels yields the row's pixels in order. The yielded iterator is reused
// and advanced between calls; Clone it to keep a position.
func (r Row[T]) Pixels() iter.Seq2[int, Iterator[T]] {
	return func(yield func(int, Iterator[T]) bool) {
		it := r.Begin()
		for x := range r.width {
			if !yield(x, it) {
				return
			}
			it.Next()
		}
	}
}
