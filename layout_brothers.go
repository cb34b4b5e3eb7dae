package pixlayout

import (
	"github.com/gogpu/pixlayout/channel"
)

// BrothersLayout holds a brother group: its member channels are stored
// interleaved and reached from one base pointer through fixed offsets.
//
// The base pointer is attached through the group's lowest channel and
// points at the group's first memory slot, whichever member lives there.
type BrothersLayout struct {
	info channel.GroupInfo
}

// NewBrothersLayout returns the layout for group g.
func NewBrothersLayout(g channel.Group) (*BrothersLayout, error) {
	info, err := channel.Default().Group(g)
	if err != nil {
		return nil, err
	}
	if info.Count == 0 {
		return nil, precondition("group %v has no members", g)
	}
	return &BrothersLayout{info: info}, nil
}

// MustBrothersLayout is like NewBrothersLayout but panics on error.
func MustBrothersLayout(g channel.Group) *BrothersLayout {
	return must(NewBrothersLayout(g))
}

// Group returns the description of the layout's brother group.
func (l *BrothersLayout) Group() channel.GroupInfo { return l.info }

func (l *BrothersLayout) Kind() Kind                      { return KindBrothers }
func (l *BrothersLayout) Channels() channel.Set           { return l.info.Mask }
func (l *BrothersLayout) NumChannels() int                { return l.info.Count }
func (l *BrothersLayout) NumPointers() int                { return 1 }
func (l *BrothersLayout) Contains(c channel.Channel) bool { return l.info.Mask.Contains(c) }
func (l *BrothersLayout) ContainsAll(s channel.Set) bool  { return l.info.Mask.ContainsAll(s) }
func (l *BrothersLayout) Clone() Layout                   { return l }
func (l *BrothersLayout) sealed()                         {}

// RequiredChannels returns the group's lowest channel only; every other
// member is reached from its pointer.
func (l *BrothersLayout) RequiredChannels() channel.Set {
	return channel.NewSet(l.info.Lowest)
}

// Step returns the group size for every member.
func (l *BrothersLayout) Step(c channel.Channel) (int, error) {
	if !l.Contains(c) {
		return 0, notFound("step", c)
	}
	return l.info.Count, nil
}

// Slot resolves c. The value slot mirrors the memory slot.
func (l *BrothersLayout) Slot(c channel.Channel) (Slot, error) {
	pos, err := l.info.SlotPosition(c)
	if err != nil {
		return Slot{}, notFound("slot", c)
	}
	return Slot{Channel: c, Value: pos, Offset: pos, Step: l.info.Count}, nil
}

func (l *BrothersLayout) SlotAt(index int, mask channel.Set) (Slot, error) {
	return slotAt(l, index, mask)
}

func (l *BrothersLayout) PointerStep(i int) (int, error) {
	if err := checkPointerIndex("pointer step", i, 1); err != nil {
		return 0, err
	}
	return l.info.Count, nil
}

func (l *BrothersLayout) PointerChannel(i int) (channel.Channel, error) {
	if err := checkPointerIndex("pointer channel", i, 1); err != nil {
		return channel.None, err
	}
	return l.info.Lowest, nil
}

func (l *BrothersLayout) Equal(other Layout) bool {
	o, ok := other.(*BrothersLayout)
	return ok && o.info.ID == l.info.ID
}

func (l *BrothersLayout) String() string {
	return "Brothers<" + l.info.Name + ">"
}
