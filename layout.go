package pixlayout

import (
	"github.com/gogpu/pixlayout/channel"
)

// Kind identifies the variant of a Layout.
type Kind uint8

const (
	// KindChannel is a single-channel layout.
	KindChannel Kind = iota + 1
	// KindBrothers is a fixed interleaved brother group.
	KindBrothers
	// KindDynamic is a runtime-grown channel set.
	KindDynamic
	// KindCompound is an ordered tuple of sub-layouts.
	KindCompound
)

func (k Kind) String() string {
	switch k {
	case KindChannel:
		return "channel"
	case KindBrothers:
		return "brothers"
	case KindDynamic:
		return "dynamic"
	case KindCompound:
		return "compound"
	default:
		return "unknown"
	}
}

// Slot is the resolved storage location of one channel.
type Slot struct {
	// Channel is the channel the slot belongs to.
	Channel channel.Channel

	// Value indexes the channel in a value container.
	Value int

	// Pointer indexes the base pointer serving the channel in a pointer
	// container.
	Pointer int

	// Offset is the element offset of the channel from its base pointer.
	Offset int

	// Step is the element advance from one pixel to the next.
	Step int
}

// Layout describes how a set of channels maps to storage slots.
//
// The implementations are *ChannelLayout, *BrothersLayout, *DynamicLayout
// and *CompoundLayout. The set is closed.
type Layout interface {
	// Kind returns the layout variant.
	Kind() Kind

	// Channels returns every channel the layout represents.
	Channels() channel.Set

	// NumChannels returns Channels().Len().
	NumChannels() int

	// NumPointers returns how many base pointers a pointer container needs.
	// It is lower than NumChannels whenever channels are interleaved.
	NumPointers() int

	// Contains reports whether the layout represents c.
	Contains(c channel.Channel) bool

	// ContainsAll reports whether the layout represents every channel in s.
	ContainsAll(s channel.Set) bool

	// RequiredChannels returns the channels through which base pointers
	// are attached, one per pointer slot.
	RequiredChannels() channel.Set

	// Step returns the element advance from one pixel to the next for c.
	Step(c channel.Channel) (int, error)

	// Slot resolves c to its storage location.
	Slot(c channel.Channel) (Slot, error)

	// SlotAt resolves the index-th channel, in ascending channel order,
	// among the channels selected by mask.
	SlotAt(index int, mask channel.Set) (Slot, error)

	// PointerStep returns the step shared by every channel behind pointer
	// slot i.
	PointerStep(i int) (int, error)

	// PointerChannel returns the required channel attached to pointer
	// slot i.
	PointerChannel(i int) (channel.Channel, error)

	// Clone returns an independent copy. Immutable layouts return
	// themselves.
	Clone() Layout

	// Equal reports whether both layouts describe the same arrangement.
	Equal(other Layout) bool

	String() string

	sealed()
}

// ChannelAdder is a Layout that can grow at runtime.
type ChannelAdder interface {
	Layout

	// AddChannels adds the channels of s. With a group other than
	// GroupNone the channels are stored interleaved as that group.
	AddChannels(s channel.Set, group channel.Group) error
}

// slotAt implements Layout.SlotAt on top of Layout.Slot.
func slotAt(l Layout, index int, mask channel.Set) (Slot, error) {
	sel := l.Channels().Intersect(mask)
	c, err := sel.At(index)
	if err != nil {
		return Slot{}, &IndexError{Op: "slot at", Index: index, Len: sel.Len()}
	}
	return l.Slot(c)
}

// pointerIndex returns the pointer slot attached through required
// channel c.
func pointerIndex(l Layout, c channel.Channel) (int, error) {
	if !l.RequiredChannels().Contains(c) {
		if l.Contains(c) {
			return -1, precondition("%v is reached through another channel's pointer", c)
		}
		return -1, notFound("set pointer", c)
	}
	s, err := l.Slot(c)
	if err != nil {
		return -1, err
	}
	return s.Pointer, nil
}

// checkPointerIndex validates a pointer slot index.
func checkPointerIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Op: op, Index: i, Len: n}
	}
	return nil
}
