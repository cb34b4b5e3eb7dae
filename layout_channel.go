package pixlayout

import (
	"fmt"

	"github.com/gogpu/pixlayout/channel"
)

// ChannelLayout holds exactly one channel in one storage slot.
type ChannelLayout struct {
	ch channel.Channel
}

// NewChannelLayout returns a layout for the single channel c.
func NewChannelLayout(c channel.Channel) (*ChannelLayout, error) {
	if !c.Valid() {
		return nil, precondition("invalid channel %d for a channel layout", uint8(c))
	}
	return &ChannelLayout{ch: c}, nil
}

// MustChannelLayout is like NewChannelLayout but panics on error.
func MustChannelLayout(c channel.Channel) *ChannelLayout {
	return must(NewChannelLayout(c))
}

// Channel returns the layout's channel.
func (l *ChannelLayout) Channel() channel.Channel { return l.ch }

func (l *ChannelLayout) Kind() Kind                      { return KindChannel }
func (l *ChannelLayout) Channels() channel.Set           { return channel.NewSet(l.ch) }
func (l *ChannelLayout) NumChannels() int                { return 1 }
func (l *ChannelLayout) NumPointers() int                { return 1 }
func (l *ChannelLayout) Contains(c channel.Channel) bool { return c == l.ch }
func (l *ChannelLayout) RequiredChannels() channel.Set   { return l.Channels() }
func (l *ChannelLayout) Clone() Layout                   { return l }
func (l *ChannelLayout) sealed()                         {}

func (l *ChannelLayout) ContainsAll(s channel.Set) bool {
	return l.Channels().ContainsAll(s)
}

func (l *ChannelLayout) Step(c channel.Channel) (int, error) {
	if c != l.ch {
		return 0, notFound("step", c)
	}
	return 1, nil
}

func (l *ChannelLayout) Slot(c channel.Channel) (Slot, error) {
	if c != l.ch {
		return Slot{}, notFound("slot", c)
	}
	return Slot{Channel: c, Step: 1}, nil
}

func (l *ChannelLayout) SlotAt(index int, mask channel.Set) (Slot, error) {
	return slotAt(l, index, mask)
}

func (l *ChannelLayout) PointerStep(i int) (int, error) {
	if err := checkPointerIndex("pointer step", i, 1); err != nil {
		return 0, err
	}
	return 1, nil
}

func (l *ChannelLayout) PointerChannel(i int) (channel.Channel, error) {
	if err := checkPointerIndex("pointer channel", i, 1); err != nil {
		return channel.None, err
	}
	return l.ch, nil
}

func (l *ChannelLayout) Equal(other Layout) bool {
	o, ok := other.(*ChannelLayout)
	return ok && o.ch == l.ch
}

func (l *ChannelLayout) String() string {
	return fmt.Sprintf("Channel<%v>", l.ch)
}
