package pixlayout

import (
	"slices"

	"github.com/gogpu/pixlayout/channel"
)

// Pointers is a pointer container: one base pointer per pointer slot of
// its layout into caller-owned memory. Channels sharing a pointer are
// reached at the fixed offsets the layout assigns.
type Pointers[T Sample] struct {
	layout Layout
	ptrs   []Ptr[T]
	steps  []int

	// child is set on sub-containers returned by Child.
	child bool
}

// pointerSteps caches the step of every pointer slot of l.
func pointerSteps(l Layout) []int {
	steps := make([]int, l.NumPointers())
	for i := range steps {
		steps[i], _ = l.PointerStep(i)
	}
	return steps
}

// NewPointers returns a container for l with every pointer unset. The
// container keeps its own copy of a dynamic layout.
func NewPointers[T Sample](l Layout) (*Pointers[T], error) {
	if l == nil {
		return nil, precondition("pointer container needs a layout")
	}
	l = l.Clone()
	return &Pointers[T]{layout: l, ptrs: make([]Ptr[T], l.NumPointers()), steps: pointerSteps(l)}, nil
}

// Layout returns a copy of the container's layout.
func (p *Pointers[T]) Layout() Layout { return p.layout.Clone() }

// Len returns the number of pointer slots.
func (p *Pointers[T]) Len() int { return len(p.ptrs) }

// Pointer returns pointer slot i.
func (p *Pointers[T]) Pointer(i int) (Ptr[T], error) {
	if err := checkPointerIndex("pointer", i, len(p.ptrs)); err != nil {
		return Ptr[T]{}, err
	}
	return p.ptrs[i], nil
}

// SetPointer attaches ptr through the required channel c. For interleaved
// channels ptr is the group's base address.
func (p *Pointers[T]) SetPointer(c channel.Channel, ptr Ptr[T]) error {
	if ptr.IsNil() {
		return precondition("nil pointer for channel %v", c)
	}
	i, err := pointerIndex(p.layout, c)
	if err != nil {
		return err
	}
	p.ptrs[i] = ptr
	return nil
}

// Attached reports whether every pointer slot has been set.
func (p *Pointers[T]) Attached() bool {
	for _, ptr := range p.ptrs {
		if ptr.IsNil() {
			return false
		}
	}
	return true
}

func (p *Pointers[T]) ref(s Slot) (*T, error) {
	if s.Pointer < 0 || s.Pointer >= len(p.ptrs) {
		return nil, &ChannelError{
			Op:      "dereference",
			Channel: s.Channel,
			Err:     &IndexError{Op: "pointer", Index: s.Pointer, Len: len(p.ptrs)},
		}
	}
	ptr := p.ptrs[s.Pointer]
	if ptr.IsNil() {
		return nil, &ChannelError{Op: "dereference", Channel: s.Channel, Err: precondition("pointer not attached")}
	}
	if !ptr.InBounds(s.Offset) {
		return nil, &ChannelError{
			Op:      "dereference",
			Channel: s.Channel,
			Err:     &IndexError{Op: "dereference", Index: ptr.Offset() + s.Offset, Len: len(ptr.Buffer())},
		}
	}
	return ptr.At(s.Offset), nil
}

// Ref returns a reference to c's value at the current position.
func (p *Pointers[T]) Ref(c channel.Channel) (*T, error) {
	s, err := p.layout.Slot(c)
	if err != nil {
		return nil, err
	}
	return p.ref(s)
}

// RefAt returns a reference to the index-th channel among those selected
// by mask.
func (p *Pointers[T]) RefAt(index int, mask channel.Set) (*T, error) {
	s, err := p.layout.SlotAt(index, mask)
	if err != nil {
		return nil, err
	}
	return p.ref(s)
}

// At dereferences a slot resolved from this container's layout. It panics
// when the pointer is unset or out of bounds.
func (p *Pointers[T]) At(s Slot) *T { return p.ptrs[s.Pointer].At(s.Offset) }

// Increment advances every pointer by delta pixels.
func (p *Pointers[T]) Increment(delta int) {
	for i, step := range p.steps {
		p.ptrs[i] = p.ptrs[i].Add(delta * step)
	}
}

// Decrement moves every pointer back by delta pixels.
func (p *Pointers[T]) Decrement(delta int) { p.Increment(-delta) }

// IncrementChannel advances the pointer serving c by delta pixels. Every
// channel interleaved with c moves with it.
func (p *Pointers[T]) IncrementChannel(c channel.Channel, delta int) error {
	s, err := p.layout.Slot(c)
	if err != nil {
		return err
	}
	p.ptrs[s.Pointer] = p.ptrs[s.Pointer].Add(delta * s.Step)
	return nil
}

// Child returns the sub-container of compound sub-layout i. It shares
// pointer storage with p, so moving a child pointer moves the parent's.
// The sub-container cannot grow.
func (p *Pointers[T]) Child(i int) (*Pointers[T], error) {
	cl, ok := p.layout.(*CompoundLayout)
	if !ok {
		return nil, precondition("%v is not a compound layout", p.layout)
	}
	child, err := cl.Child(i)
	if err != nil {
		return nil, err
	}
	base := cl.pointerBase[i]
	end := base + child.NumPointers()
	return &Pointers[T]{layout: child, ptrs: p.ptrs[base:end:end], steps: p.steps[base:end:end], child: true}, nil
}

// AddChannels grows the container's dynamic layout. Existing pointers are
// kept; the new pointer slots start unset.
func (p *Pointers[T]) AddChannels(s channel.Set, group channel.Group) error {
	if p.child {
		return precondition("cannot grow a sub-container; grow its parent")
	}
	nl, err := grow(p.layout, s, group)
	if err != nil {
		return err
	}
	return p.rebind(nl)
}

// rebind moves every pointer to its slot in nl, keyed by required channel.
func (p *Pointers[T]) rebind(nl Layout) error {
	ptrs := make([]Ptr[T], nl.NumPointers())
	for i, ptr := range p.ptrs {
		c, err := p.layout.PointerChannel(i)
		if err != nil {
			return err
		}
		j, err := pointerIndex(nl, c)
		if err != nil {
			return err
		}
		ptrs[j] = ptr
	}
	p.layout, p.ptrs, p.steps = nl, ptrs, pointerSteps(nl)
	return nil
}

// Clone returns a copy whose pointers move independently of p's.
func (p *Pointers[T]) Clone() *Pointers[T] {
	return &Pointers[T]{layout: p.layout, ptrs: slices.Clone(p.ptrs), steps: p.steps}
}
