package pixlayout

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/pixlayout/channel"
)

// dynamicEntry is one pointer slot of a DynamicLayout: either a single
// independently addressed channel or a (possibly partial) brother group.
type dynamicEntry struct {
	group    channel.GroupInfo
	channels channel.Set
}

func (e dynamicEntry) lowest() channel.Channel { return e.channels.First() }

func (e dynamicEntry) step() int {
	if e.group.ID == channel.GroupNone {
		return 1
	}
	return e.group.Count
}

func (e dynamicEntry) offset(c channel.Channel) int {
	if e.group.ID == channel.GroupNone {
		return 0
	}
	pos, _ := e.group.SlotPosition(c)
	return pos
}

// DynamicLayout is a channel set that grows at runtime. Channels are never
// removed once added.
//
// Values are stored in ascending channel order. Pointer slots are ordered
// by the lowest channel of each entry, so adding a channel below the
// existing ones inserts a pointer slot rather than appending one.
type DynamicLayout struct {
	entries  []dynamicEntry
	channels channel.Set
}

// NewDynamicLayout returns an empty dynamic layout.
func NewDynamicLayout() *DynamicLayout {
	return &DynamicLayout{}
}

// NewDynamicLayoutWith returns a dynamic layout holding s, stored
// interleaved as group unless group is GroupNone.
func NewDynamicLayoutWith(s channel.Set, group channel.Group) (*DynamicLayout, error) {
	l := NewDynamicLayout()
	if err := l.AddChannels(s, group); err != nil {
		return nil, err
	}
	return l, nil
}

// AddChannels adds the channels of s.
//
// With group == GroupNone every channel gets its own pointer slot and a
// step of 1. Otherwise every channel of s must belong to group; they share
// one pointer slot attached at the group's base address and step by the
// group size.
func (l *DynamicLayout) AddChannels(s channel.Set, group channel.Group) error {
	if s.IsEmpty() {
		return precondition("no channels to add")
	}
	if dup := l.channels.Intersect(s); !dup.IsEmpty() {
		return &ChannelError{Op: "add channels", Channel: dup.First(), Err: ErrDuplicateChannel}
	}

	info, err := channel.Default().Group(group)
	if err != nil {
		return err
	}
	if group != channel.GroupNone {
		if extra := s.Difference(info.Mask); !extra.IsEmpty() {
			return &ChannelError{
				Op:      "add channels",
				Channel: extra.First(),
				Err:     &channel.MembershipError{Channel: extra.First(), Group: group},
			}
		}
		l.insert(dynamicEntry{group: info, channels: s})
	} else {
		for c := range s.All() {
			l.insert(dynamicEntry{group: info, channels: channel.NewSet(c)})
		}
	}
	l.channels = l.channels.Union(s)

	Logger().Debug("pixlayout: dynamic layout grew",
		"added", s, "group", group, "channels", l.channels)
	return nil
}

// insert places e at the position ordered by lowest channel.
func (l *DynamicLayout) insert(e dynamicEntry) {
	i, _ := slices.BinarySearchFunc(l.entries, e.lowest(), func(x dynamicEntry, c channel.Channel) int {
		return int(x.lowest()) - int(c)
	})
	l.entries = slices.Insert(l.entries, i, e)
}

// entryOf returns the index of the entry holding c.
func (l *DynamicLayout) entryOf(c channel.Channel) int {
	for i, e := range l.entries {
		if e.channels.Contains(c) {
			return i
		}
	}
	return -1
}

// MaskedChannelIndex maps the index-th channel among those selected by
// mask to its value storage index.
func (l *DynamicLayout) MaskedChannelIndex(index int, mask channel.Set) (int, error) {
	s, err := l.SlotAt(index, mask)
	if err != nil {
		return -1, err
	}
	return s.Value, nil
}

// Groups returns the brother group of each pointer slot, GroupNone for
// independently addressed channels.
func (l *DynamicLayout) Groups() []channel.Group {
	out := make([]channel.Group, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.group.ID
	}
	return out
}

func (l *DynamicLayout) Kind() Kind                      { return KindDynamic }
func (l *DynamicLayout) Channels() channel.Set           { return l.channels }
func (l *DynamicLayout) NumChannels() int                { return l.channels.Len() }
func (l *DynamicLayout) NumPointers() int                { return len(l.entries) }
func (l *DynamicLayout) Contains(c channel.Channel) bool { return l.channels.Contains(c) }
func (l *DynamicLayout) ContainsAll(s channel.Set) bool  { return l.channels.ContainsAll(s) }
func (l *DynamicLayout) sealed()                         {}

// RequiredChannels returns the lowest channel of every entry.
func (l *DynamicLayout) RequiredChannels() channel.Set {
	var s channel.Set
	for _, e := range l.entries {
		s = s.With(e.lowest())
	}
	return s
}

func (l *DynamicLayout) Step(c channel.Channel) (int, error) {
	i := l.entryOf(c)
	if i < 0 {
		return 0, notFound("step", c)
	}
	return l.entries[i].step(), nil
}

func (l *DynamicLayout) Slot(c channel.Channel) (Slot, error) {
	i := l.entryOf(c)
	if i < 0 {
		return Slot{}, notFound("slot", c)
	}
	e := l.entries[i]
	v, _ := l.channels.Index(c)
	return Slot{Channel: c, Value: v, Pointer: i, Offset: e.offset(c), Step: e.step()}, nil
}

func (l *DynamicLayout) SlotAt(index int, mask channel.Set) (Slot, error) {
	return slotAt(l, index, mask)
}

func (l *DynamicLayout) PointerStep(i int) (int, error) {
	if err := checkPointerIndex("pointer step", i, len(l.entries)); err != nil {
		return 0, err
	}
	return l.entries[i].step(), nil
}

func (l *DynamicLayout) PointerChannel(i int) (channel.Channel, error) {
	if err := checkPointerIndex("pointer channel", i, len(l.entries)); err != nil {
		return channel.None, err
	}
	return l.entries[i].lowest(), nil
}

// Clone returns a copy that grows independently of l.
func (l *DynamicLayout) Clone() Layout {
	return &DynamicLayout{entries: slices.Clone(l.entries), channels: l.channels}
}

// Equal reports whether other is a dynamic layout holding the same
// channels with the same grouping.
func (l *DynamicLayout) Equal(other Layout) bool {
	o, ok := other.(*DynamicLayout)
	if !ok || o.channels != l.channels || len(o.entries) != len(l.entries) {
		return false
	}
	for i, e := range l.entries {
		if o.entries[i].channels != e.channels || o.entries[i].group.ID != e.group.ID {
			return false
		}
	}
	return true
}

func (l *DynamicLayout) String() string {
	var b strings.Builder
	b.WriteString("Dynamic<")
	for i, e := range l.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		if e.group.ID == channel.GroupNone {
			b.WriteString(e.lowest().String())
		} else {
			fmt.Fprintf(&b, "%s%v", e.group.Name, e.channels)
		}
	}
	b.WriteString(">")
	return b.String()
}
