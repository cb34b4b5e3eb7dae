package pixlayout

import "unsafe"

// Sample is the set of scalar types a channel value can have.
type Sample interface {
	~uint8 | ~uint16 | ~uint32 | ~int8 | ~int16 | ~int32 | ~float32 | ~float64
}

// Ptr is a borrowed pointer into a caller-owned buffer: the buffer plus an
// element offset. The zero Ptr is nil.
//
// A Ptr may be moved outside the buffer (one past the end of a row, for
// example); only dereferencing requires the offset to be in range.
type Ptr[T Sample] struct {
	buf []T
	off int
}

// PtrTo returns a pointer to buf[off].
func PtrTo[T Sample](buf []T, off int) Ptr[T] {
	return Ptr[T]{buf: buf, off: off}
}

// IsNil reports whether p points nowhere.
func (p Ptr[T]) IsNil() bool { return p.buf == nil }

// Offset returns the element offset into the underlying buffer.
func (p Ptr[T]) Offset() int { return p.off }

// Buffer returns the underlying buffer.
func (p Ptr[T]) Buffer() []T { return p.buf }

// Add returns p advanced by n elements.
func (p Ptr[T]) Add(n int) Ptr[T] {
	p.off += n
	return p
}

// InBounds reports whether p+i can be dereferenced.
func (p Ptr[T]) InBounds(i int) bool {
	j := p.off + i
	return p.buf != nil && j >= 0 && j < len(p.buf)
}

// At returns a reference to the element i past p. It panics when the
// element lies outside the buffer.
func (p Ptr[T]) At(i int) *T { return &p.buf[p.off+i] }

// Addr returns the address p points at, whether or not it lies inside the
// buffer. Two pointers into the same memory compare equal by Addr even when
// they were derived from different slices of it.
func (p Ptr[T]) Addr() uintptr {
	if p.buf == nil {
		return 0
	}
	var zero T
	base := uintptr(unsafe.Pointer(unsafe.SliceData(p.buf)))
	return base + uintptr(p.off)*unsafe.Sizeof(zero)
}

// Same reports whether p and o point at the same address.
func (p Ptr[T]) Same(o Ptr[T]) bool {
	return !p.IsNil() && p.Addr() == o.Addr()
}
