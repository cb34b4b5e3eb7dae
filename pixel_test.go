package pixlayout

import (
	"errors"
	"testing"

	"github.com/gogpu/pixlayout/channel"
)

func TestPixel_GetSet(t *testing.T) {
	p := MustPixel[float32](MustBrothersLayout(channel.GroupRGBA))
	if err := p.Set(channel.Alpha, 0.5); err != nil {
		t.Fatal(err)
	}
	if got := p.MustGet(channel.Alpha); got != 0.5 {
		t.Errorf("Alpha = %v", got)
	}

	// A present channel holding zero and a missing channel are different
	// outcomes.
	v, err := p.Get(channel.Red)
	if err != nil || v != 0 {
		t.Errorf("Get(Red) = %v, %v; want 0, nil", v, err)
	}
	if _, err := p.Get(channel.Depth); !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("Get(Depth) error = %v, want ErrChannelNotFound", err)
	}
	if err := p.Set(channel.Depth, 1); !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("Set(Depth) error = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGet on a missing channel did not panic")
		}
	}()
	p.MustGet(channel.Depth)
}

func TestPixel_StaticSlot(t *testing.T) {
	l := MustBrothersLayout(channel.GroupBGRA)
	green, err := l.Slot(channel.Green)
	if err != nil {
		t.Fatal(err)
	}
	p := MustPixel[uint8](l)
	*p.At(green) = 200
	if got := p.MustGet(channel.Green); got != 200 {
		t.Errorf("Green = %d", got)
	}
	r, _ := p.RefAt(3, channel.All)
	*r = 9
	if got := p.MustGet(channel.Alpha); got != 9 {
		t.Errorf("Alpha = %d", got)
	}
}

func TestPixel_CopyAndEqual(t *testing.T) {
	rgb := MustBrothersLayout(channel.GroupRGB)
	bgr := MustBrothersLayout(channel.GroupBGR)

	a := MustPixel[float32](rgb)
	_ = a.Set(channel.Red, 1)
	_ = a.Set(channel.Green, 2)
	_ = a.Set(channel.Blue, 3)

	b := MustPixel[float32](bgr)
	if err := b.CopyFrom(a); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	if !a.Equal(b) || !b.Equal(a) {
		t.Error("pixels with the same values in different storage order should be Equal")
	}
	if b.Values().Data()[0] != 3 {
		t.Errorf("BGR storage = %v", b.Values().Data())
	}

	_ = b.Set(channel.Green, 0)
	if a.Equal(b) {
		t.Error("pixels with different values should not be Equal")
	}
}

func TestPixel_CopyMismatchedChannels(t *testing.T) {
	rgba := MustPixel[float32](MustBrothersLayout(channel.GroupRGBA))
	_ = rgba.Set(channel.Red, 0.25)
	_ = rgba.Set(channel.Alpha, 1)

	dyn, _ := NewDynamicLayoutWith(channel.NewSet(channel.Red, channel.Depth), channel.GroupNone)
	d := MustPixel[float32](dyn)

	if err := d.CopyFrom(rgba); !errors.Is(err, ErrPrecondition) {
		t.Errorf("CopyFrom error = %v, want ErrPrecondition", err)
	}
	if d.Equal(rgba) {
		t.Error("pixels with different channel sets should not be Equal")
	}

	copied, err := CopyShared[float32](d, rgba)
	if err != nil {
		t.Fatal(err)
	}
	if copied != channel.NewSet(channel.Red) {
		t.Errorf("CopyShared copied %v", copied)
	}
	if got := d.MustGet(channel.Red); got != 0.25 {
		t.Errorf("Red = %v", got)
	}
	if got := d.MustGet(channel.Depth); got != 0 {
		t.Errorf("Depth = %v", got)
	}
}

func TestPixel_CloneAndGrow(t *testing.T) {
	p := MustPixel[int16](NewDynamicLayout())
	if err := p.AddChannels(channel.NewSet(channel.Depth), channel.GroupNone); err != nil {
		t.Fatal(err)
	}
	_ = p.Set(channel.Depth, -4)

	c := p.Clone()
	_ = c.Set(channel.Depth, 4)
	if p.MustGet(channel.Depth) != -4 {
		t.Error("Clone shares storage")
	}
	if err := c.AddChannels(channel.NewSet(channel.Depth), channel.GroupNone); !errors.Is(err, ErrDuplicateChannel) {
		t.Errorf("AddChannels duplicate error = %v", err)
	}
	if _, err := NewPixel[int16](nil); !errors.Is(err, ErrPrecondition) {
		t.Errorf("NewPixel(nil) error = %v", err)
	}
}

func TestPixel_LayoutIsACopy(t *testing.T) {
	p := MustPixel[uint8](NewDynamicLayout())
	_ = p.AddChannels(channel.NewSet(channel.Red), channel.GroupNone)

	if err := p.Layout().(ChannelAdder).AddChannels(channel.NewSet(channel.Blue), channel.GroupNone); err != nil {
		t.Fatal(err)
	}
	if err := p.Set(channel.Blue, 9); !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("Set(Blue) error = %v", err)
	}
	if p.Channels() != channel.NewSet(channel.Red) {
		t.Errorf("Channels() = %v", p.Channels())
	}
}
