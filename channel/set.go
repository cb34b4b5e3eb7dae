package channel

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Set is an ordered set of channels backed by a bitmask. Bit n holds
// channel n; bit 0 (None) is never set.
type Set uint64

// Empty is the set with no channels.
const Empty Set = 0

// All is the set of every representable channel.
const All Set = ^Set(1)

// Common channel sets.
const (
	RGB  Set = 1<<Red | 1<<Green | 1<<Blue
	RGBA Set = RGB | 1<<Alpha
	UV   Set = 1<<U | 1<<V
)

// NewSet returns the set holding the given channels. None and out-of-range
// ids are ignored.
func NewSet(channels ...Channel) Set {
	var s Set
	for _, c := range channels {
		s = s.With(c)
	}
	return s
}

// With returns s with c added.
func (s Set) With(c Channel) Set {
	if !c.Valid() {
		return s
	}
	return s | 1<<c
}

// Without returns s with c removed.
func (s Set) Without(c Channel) Set {
	if !c.Valid() {
		return s
	}
	return s &^ (1 << c)
}

// Union returns s ∪ o.
func (s Set) Union(o Set) Set { return s | o }

// Difference returns the members of s that are not in o.
func (s Set) Difference(o Set) Set { return s &^ o }

// Intersect returns s ∩ o.
func (s Set) Intersect(o Set) Set { return s & o }

// Contains reports whether c is a member of s.
func (s Set) Contains(c Channel) bool {
	return c.Valid() && s&(1<<c) != 0
}

// ContainsAll reports whether every member of o is in s.
func (s Set) ContainsAll(o Set) bool { return o&^s == 0 }

// IsSubsetOf reports whether every member of s is in o.
func (s Set) IsSubsetOf(o Set) bool { return o.ContainsAll(s) }

// Overlaps reports whether s and o share a channel.
func (s Set) Overlaps(o Set) bool { return s&o != 0 }

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool { return s == 0 }

// Len returns the number of channels in s.
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// First returns the lowest channel in s, or None.
func (s Set) First() Channel {
	if s == 0 {
		return None
	}
	return Channel(bits.TrailingZeros64(uint64(s)))
}

// Last returns the highest channel in s, or None.
func (s Set) Last() Channel {
	if s == 0 {
		return None
	}
	return Channel(63 - bits.LeadingZeros64(uint64(s)))
}

// Next returns the lowest member of s greater than c. Stepping from None or
// past the last member yields None.
func (s Set) Next(c Channel) Channel {
	if !c.Valid() || c == MaxChannels-1 {
		return None
	}
	return (s &^ (1<<(c+1) - 1)).First()
}

// Prev returns the highest member of s lower than c. Stepping from None or
// before the first member yields None.
func (s Set) Prev(c Channel) Channel {
	if !c.Valid() {
		return None
	}
	return (s & (1<<c - 1)).Last()
}

// Index returns the ordinal position of c within s, that is the number of
// members lower than c.
func (s Set) Index(c Channel) (int, error) {
	if !s.Contains(c) {
		return -1, fmt.Errorf("%w: %v not in %v", ErrOutOfRange, c, s)
	}
	return bits.OnesCount64(uint64(s & (1<<c - 1))), nil
}

// At returns the member at ordinal position i.
func (s Set) At(i int) (Channel, error) {
	if i < 0 || i >= s.Len() {
		return None, fmt.Errorf("%w: index %d in set of %d", ErrOutOfRange, i, s.Len())
	}
	m := uint64(s)
	for ; i > 0; i-- {
		m &= m - 1
	}
	return Channel(bits.TrailingZeros64(m)), nil
}

// All yields the members of s in ascending order.
func (s Set) All() iter.Seq[Channel] {
	return func(yield func(Channel) bool) {
		for m := uint64(s); m != 0; m &= m - 1 {
			if !yield(Channel(bits.TrailingZeros64(m))) {
				return
			}
		}
	}
}

// Slice returns the members of s in ascending order.
func (s Set) Slice() []Channel {
	out := make([]Channel, 0, s.Len())
	for c := range s.All() {
		out = append(out, c)
	}
	return out
}

// Less orders sets by their mask value. It is a total order for
// deterministic sorting and says nothing about containment.
func (s Set) Less(o Set) bool { return s < o }

// String formats s as {red,green,blue}.
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for c := range s.All() {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(c.String())
	}
	b.WriteByte('}')
	return b.String()
}
