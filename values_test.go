package pixlayout

import (
	"errors"
	"testing"

	"github.com/gogpu/pixlayout/channel"
)

func TestValues_BrothersSlotOrder(t *testing.T) {
	v, err := NewValues[float32](MustBrothersLayout(channel.GroupBGR))
	if err != nil {
		t.Fatal(err)
	}
	if v.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", v.Len())
	}
	r, _ := v.Ref(channel.Red)
	*r = 1
	g, _ := v.Ref(channel.Green)
	*g = 2
	b, _ := v.Ref(channel.Blue)
	*b = 3

	want := []float32{3, 2, 1}
	for i, x := range v.Data() {
		if x != want[i] {
			t.Errorf("Data()[%d] = %v, want %v", i, x, want[i])
		}
	}
	if _, err := v.Ref(channel.Alpha); !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("Ref(Alpha) error = %v", err)
	}
	if _, err := NewValues[float32](nil); !errors.Is(err, ErrPrecondition) {
		t.Errorf("NewValues(nil) error = %v", err)
	}
}

func TestValues_RefAt(t *testing.T) {
	v, _ := NewValues[uint8](MustBrothersLayout(channel.GroupABGR))
	for i := range 4 {
		r, err := v.RefAt(i, channel.All)
		if err != nil {
			t.Fatal(err)
		}
		*r = uint8(10 + i)
	}
	// Ascending channel order: red, green, blue, alpha. ABGR memory order:
	// alpha, blue, green, red.
	want := []uint8{13, 12, 11, 10}
	for i, x := range v.Data() {
		if x != want[i] {
			t.Errorf("Data()[%d] = %d, want %d", i, x, want[i])
		}
	}
}

func TestValues_CompoundChild(t *testing.T) {
	l := MustCompoundLayout(MustBrothersLayout(channel.GroupRGB), MustChannelLayout(channel.Depth))
	v, _ := NewValues[float64](l)
	if v.Len() != 4 {
		t.Fatalf("Len() = %d", v.Len())
	}

	child, err := v.Child(1)
	if err != nil {
		t.Fatal(err)
	}
	if child.Layout().Kind() != KindChannel || child.Len() != 1 {
		t.Errorf("child = %v len %d", child.Layout(), child.Len())
	}
	d, _ := child.Ref(channel.Depth)
	*d = 42
	got, _ := v.Ref(channel.Depth)
	if *got != 42 {
		t.Error("child container does not share storage with its parent")
	}

	if _, err := v.Child(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Child(2) error = %v", err)
	}
	if _, err := child.Child(0); !errors.Is(err, ErrPrecondition) {
		t.Errorf("Child of non-compound error = %v", err)
	}
}

func TestValues_AddChannelsKeepsValues(t *testing.T) {
	l, _ := NewDynamicLayoutWith(channel.NewSet(channel.Green, channel.Depth), channel.GroupNone)
	v, _ := NewValues[int32](l)
	_ = setValue(v, channel.Green, 7)
	_ = setValue(v, channel.Depth, 9)

	if err := v.AddChannels(channel.NewSet(channel.Red), channel.GroupNone); err != nil {
		t.Fatal(err)
	}
	if l.Contains(channel.Red) {
		t.Error("container must not grow the caller's layout")
	}
	for c, want := range map[channel.Channel]int32{channel.Red: 0, channel.Green: 7, channel.Depth: 9} {
		r, err := v.Ref(c)
		if err != nil || *r != want {
			t.Errorf("%v = %v, %v; want %d", c, r, err, want)
		}
	}

	static, _ := NewValues[int32](MustChannelLayout(channel.Red))
	if err := static.AddChannels(channel.NewSet(channel.Blue), channel.GroupNone); !errors.Is(err, ErrPrecondition) {
		t.Errorf("static AddChannels error = %v", err)
	}
}

func TestValues_Clone(t *testing.T) {
	v, _ := NewValues[float32](MustChannelLayout(channel.Alpha))
	_ = setValue(v, channel.Alpha, 0.5)
	c := v.Clone()
	_ = setValue(c, channel.Alpha, 1)
	if r, _ := v.Ref(channel.Alpha); *r != 0.5 {
		t.Error("Clone shares storage")
	}
}

func setValue[T Sample](v *Values[T], c channel.Channel, x T) error {
	r, err := v.Ref(c)
	if err != nil {
		return err
	}
	*r = x
	return nil
}

func TestValues_LayoutIsACopy(t *testing.T) {
	l, _ := NewDynamicLayoutWith(channel.NewSet(channel.Red), channel.GroupNone)
	v, _ := NewValues[float32](l)

	if err := v.Layout().(ChannelAdder).AddChannels(channel.NewSet(channel.Blue), channel.GroupNone); err != nil {
		t.Fatal(err)
	}
	if v.Len() != 1 || v.Layout().Contains(channel.Blue) {
		t.Errorf("growing Layout() changed the container: %v", v.Layout())
	}
	if _, err := v.Ref(channel.Blue); !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("Ref(Blue) error = %v", err)
	}
}

func TestValues_RefRejectsForeignSlot(t *testing.T) {
	v, _ := NewValues[uint8](MustChannelLayout(channel.Red))
	if _, err := v.ref(Slot{Channel: channel.Blue, Value: 3}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ref(value 3) error = %v", err)
	}
}

func TestValues_ChildCannotGrow(t *testing.T) {
	v, _ := NewValues[int32](MustCompoundLayout(MustChannelLayout(channel.Depth), NewDynamicLayout()))
	child, err := v.Child(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := child.AddChannels(channel.NewSet(channel.Depth), channel.GroupNone); !errors.Is(err, ErrPrecondition) {
		t.Errorf("child AddChannels error = %v", err)
	}

	if err := v.AddChannels(channel.NewSet(channel.Red), channel.GroupNone); err != nil {
		t.Fatal(err)
	}
	_ = setValue(v, channel.Red, 5)
	child, _ = v.Child(1)
	if r, err := child.Ref(channel.Red); err != nil || *r != 5 {
		t.Errorf("grown child Red = %v, %v", r, err)
	}

	standalone := child.Clone()
	if err := standalone.AddChannels(channel.NewSet(channel.Alpha), channel.GroupNone); err != nil {
		t.Errorf("clone of a child should grow: %v", err)
	}
}
