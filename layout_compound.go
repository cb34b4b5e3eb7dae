package pixlayout

import (
	"fmt"
	"strings"

	"github.com/gogpu/pixlayout/channel"
)

// MaxCompoundLayouts is the most sub-layouts a CompoundLayout holds.
const MaxCompoundLayouts = 8

// CompoundLayout is an ordered tuple of sub-layouts presenting one merged
// channel set.
//
// Sub-layouts are ordered by ascending lowest channel, share no channel,
// and at most one of them is dynamic, in which case it comes last. Values
// and pointer slots are the concatenation of the sub-layouts' own, so the
// dynamic sub-layout can grow without shifting anything before it.
type CompoundLayout struct {
	children []Layout

	// valueBase and pointerBase hold each child's first value and pointer
	// slot.
	valueBase   []int
	pointerBase []int

	// owner maps a static channel to its child index plus one.
	owner   [channel.MaxChannels]uint8
	static  channel.Set
	dynamic int
}

// NewCompoundLayout composes children into one layout. It fails with
// ErrStaticConfiguration when the children are unordered, overlap, nest
// another compound layout, or misplace the dynamic layout.
func NewCompoundLayout(children ...Layout) (*CompoundLayout, error) {
	if len(children) == 0 || len(children) > MaxCompoundLayouts {
		return nil, fmt.Errorf("%w: %d sub-layouts, want 1 to %d",
			ErrStaticConfiguration, len(children), MaxCompoundLayouts)
	}

	l := &CompoundLayout{
		children:    make([]Layout, len(children)),
		valueBase:   make([]int, len(children)),
		pointerBase: make([]int, len(children)),
		dynamic:     -1,
	}

	prev := channel.None
	value, pointer := 0, 0
	for i, child := range children {
		if child == nil {
			return nil, fmt.Errorf("%w: sub-layout %d is nil", ErrStaticConfiguration, i)
		}
		switch child.Kind() {
		case KindCompound:
			return nil, fmt.Errorf("%w: sub-layout %d is itself compound", ErrStaticConfiguration, i)
		case KindDynamic:
			if l.dynamic >= 0 {
				return nil, fmt.Errorf("%w: more than one dynamic sub-layout", ErrStaticConfiguration)
			}
			if i != len(children)-1 {
				return nil, fmt.Errorf("%w: dynamic sub-layout %d is not last", ErrStaticConfiguration, i)
			}
			l.dynamic = i
		default:
			low := child.Channels().First()
			if low <= prev {
				return nil, fmt.Errorf("%w: sub-layout %d (%v) is not ordered after %v",
					ErrStaticConfiguration, i, child, prev)
			}
			prev = low
			if l.static.Overlaps(child.Channels()) {
				return nil, fmt.Errorf("%w: sub-layout %d (%v) overlaps channels %v",
					ErrStaticConfiguration, i, child, l.static.Intersect(child.Channels()))
			}
			l.static = l.static.Union(child.Channels())
			for c := range child.Channels().All() {
				l.owner[c] = uint8(i + 1)
			}
		}

		child = child.Clone()
		l.children[i] = child
		l.valueBase[i] = value
		l.pointerBase[i] = pointer
		value += child.NumChannels()
		pointer += child.NumPointers()
	}

	if l.dynamic >= 0 {
		if dup := l.static.Intersect(l.children[l.dynamic].Channels()); !dup.IsEmpty() {
			return nil, fmt.Errorf("%w: dynamic sub-layout overlaps channels %v", ErrStaticConfiguration, dup)
		}
	}
	return l, nil
}

// MustCompoundLayout is like NewCompoundLayout but panics on error.
func MustCompoundLayout(children ...Layout) *CompoundLayout {
	return must(NewCompoundLayout(children...))
}

// Len returns the number of sub-layouts.
func (l *CompoundLayout) Len() int { return len(l.children) }

// Child returns a copy of sub-layout i. Growing the copy leaves l
// unchanged; grow l itself so its overlap check applies.
func (l *CompoundLayout) Child(i int) (Layout, error) {
	if i < 0 || i >= len(l.children) {
		return nil, &IndexError{Op: "child", Index: i, Len: len(l.children)}
	}
	return l.children[i].Clone(), nil
}

// HasDynamic reports whether the last sub-layout is dynamic.
func (l *CompoundLayout) HasDynamic() bool { return l.dynamic >= 0 }

// ChannelToLayoutIndex returns the index of the sub-layout holding c.
func (l *CompoundLayout) ChannelToLayoutIndex(c channel.Channel) (int, error) {
	if c.Valid() {
		if o := l.owner[c]; o != 0 {
			return int(o) - 1, nil
		}
		if l.dynamic >= 0 && l.children[l.dynamic].Contains(c) {
			return l.dynamic, nil
		}
	}
	return -1, notFound("locate", c)
}

// Locate maps the index-th channel among those selected by mask, counted
// in ascending channel order across all sub-layouts, to the sub-layout
// holding it and the channel's index among that sub-layout's masked
// channels.
func (l *CompoundLayout) Locate(index int, mask channel.Set) (layout, local int, err error) {
	sel := l.Channels().Intersect(mask)
	c, err := sel.At(index)
	if err != nil {
		return -1, -1, &IndexError{Op: "locate", Index: index, Len: sel.Len()}
	}
	k, err := l.ChannelToLayoutIndex(c)
	if err != nil {
		return -1, -1, err
	}
	local, err = l.children[k].Channels().Intersect(mask).Index(c)
	if err != nil {
		return -1, -1, err
	}
	return k, local, nil
}

// AddChannels forwards to the dynamic sub-layout.
func (l *CompoundLayout) AddChannels(s channel.Set, group channel.Group) error {
	if l.dynamic < 0 {
		return precondition("compound layout %v has no dynamic sub-layout", l)
	}
	if dup := l.static.Intersect(s); !dup.IsEmpty() {
		return &ChannelError{Op: "add channels", Channel: dup.First(), Err: ErrDuplicateChannel}
	}
	return l.children[l.dynamic].(*DynamicLayout).AddChannels(s, group)
}

func (l *CompoundLayout) Kind() Kind { return KindCompound }
func (l *CompoundLayout) sealed()    {}

func (l *CompoundLayout) Channels() channel.Set {
	if l.dynamic < 0 {
		return l.static
	}
	return l.static.Union(l.children[l.dynamic].Channels())
}

func (l *CompoundLayout) NumChannels() int { return l.Channels().Len() }

func (l *CompoundLayout) NumPointers() int {
	last := len(l.children) - 1
	return l.pointerBase[last] + l.children[last].NumPointers()
}

func (l *CompoundLayout) Contains(c channel.Channel) bool {
	return l.Channels().Contains(c)
}

func (l *CompoundLayout) ContainsAll(s channel.Set) bool {
	return l.Channels().ContainsAll(s)
}

func (l *CompoundLayout) RequiredChannels() channel.Set {
	var s channel.Set
	for _, child := range l.children {
		s = s.Union(child.RequiredChannels())
	}
	return s
}

func (l *CompoundLayout) Step(c channel.Channel) (int, error) {
	k, err := l.ChannelToLayoutIndex(c)
	if err != nil {
		return 0, notFound("step", c)
	}
	return l.children[k].Step(c)
}

func (l *CompoundLayout) Slot(c channel.Channel) (Slot, error) {
	k, err := l.ChannelToLayoutIndex(c)
	if err != nil {
		return Slot{}, notFound("slot", c)
	}
	s, err := l.children[k].Slot(c)
	if err != nil {
		return Slot{}, err
	}
	s.Value += l.valueBase[k]
	s.Pointer += l.pointerBase[k]
	return s, nil
}

func (l *CompoundLayout) SlotAt(index int, mask channel.Set) (Slot, error) {
	return slotAt(l, index, mask)
}

// pointerChild returns the child serving pointer slot i and the slot's
// index within that child.
func (l *CompoundLayout) pointerChild(op string, i int) (int, int, error) {
	if err := checkPointerIndex(op, i, l.NumPointers()); err != nil {
		return -1, -1, err
	}
	for k := len(l.children) - 1; k >= 0; k-- {
		if i >= l.pointerBase[k] {
			return k, i - l.pointerBase[k], nil
		}
	}
	return -1, -1, &IndexError{Op: op, Index: i, Len: l.NumPointers()}
}

func (l *CompoundLayout) PointerStep(i int) (int, error) {
	k, j, err := l.pointerChild("pointer step", i)
	if err != nil {
		return 0, err
	}
	return l.children[k].PointerStep(j)
}

func (l *CompoundLayout) PointerChannel(i int) (channel.Channel, error) {
	k, j, err := l.pointerChild("pointer channel", i)
	if err != nil {
		return channel.None, err
	}
	return l.children[k].PointerChannel(j)
}

// Clone deep-copies the dynamic sub-layout, if any. A compound layout of
// static sub-layouts is immutable and returns itself.
func (l *CompoundLayout) Clone() Layout {
	if l.dynamic < 0 {
		return l
	}
	c := *l
	c.children = append([]Layout(nil), l.children...)
	c.children[l.dynamic] = l.children[l.dynamic].Clone()
	return &c
}

// Equal reports whether every sub-layout is equal, including the channels
// added to a dynamic sub-layout.
func (l *CompoundLayout) Equal(other Layout) bool {
	o, ok := other.(*CompoundLayout)
	if !ok || len(o.children) != len(l.children) {
		return false
	}
	for i, child := range l.children {
		if !child.Equal(o.children[i]) {
			return false
		}
	}
	return true
}

func (l *CompoundLayout) String() string {
	parts := make([]string, len(l.children))
	for i, child := range l.children {
		parts[i] = child.String()
	}
	return "Compound<" + strings.Join(parts, ", ") + ">"
}
