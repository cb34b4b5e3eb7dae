package pixlayout

import (
	"errors"
	"testing"

	"github.com/gogpu/pixlayout/channel"
)

// Reading begin()+k yields the k-th element of every channel's source
// array, and end() is begin() advanced by the width.
func TestRow_PixelStep(t *testing.T) {
	const width = 5
	dyn, _ := NewDynamicLayoutWith(channel.NewSet(channel.Depth), channel.GroupNone)
	l := MustCompoundLayout(MustBrothersLayout(channel.GroupBGR), dyn)

	bgr := make([]float32, width*3)
	depth := make([]float32, width)
	for k := range width {
		bgr[3*k+0] = float32(k) + 0.3 // blue
		bgr[3*k+1] = float32(k) + 0.2 // green
		bgr[3*k+2] = float32(k) + 0.1 // red
		depth[k] = float32(k * 10)
	}

	a := MustAccessor[float32](l)
	_ = a.SetChannelPointer(channel.Red, bgr, 0)
	_ = a.SetChannelPointer(channel.Depth, depth, 0)
	row := NewRow(NewIterator(a), width)

	for k := range width {
		it := row.Begin().Offset(k)
		want := map[channel.Channel]float32{
			channel.Red:   float32(k) + 0.1,
			channel.Green: float32(k) + 0.2,
			channel.Blue:  float32(k) + 0.3,
			channel.Depth: float32(k * 10),
		}
		for c, w := range want {
			if got := it.MustGet(c); got != w {
				t.Errorf("pixel %d %v = %v, want %v", k, c, got, w)
			}
		}
	}

	if !row.End().SamePosition(row.Begin().Offset(width)) {
		t.Error("End() should equal Begin() advanced by the width")
	}
	if row.End().SamePosition(row.Begin()) {
		t.Error("End() should differ from Begin() for a non-empty row")
	}
}

func TestRow_AtAndPixels(t *testing.T) {
	buf := []uint8{10, 11, 12}
	a := MustAccessor[uint8](MustChannelLayout(channel.Alpha))
	_ = a.SetChannelPointer(channel.Alpha, buf, 0)
	row := NewRow(NewIterator(a), len(buf))

	if row.Width() != 3 {
		t.Errorf("Width() = %d", row.Width())
	}
	it, err := row.At(2)
	if err != nil || it.MustGet(channel.Alpha) != 12 {
		t.Errorf("At(2) = %v", err)
	}
	for _, x := range []int{-1, 3} {
		if _, err := row.At(x); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(%d) error = %v", x, err)
		}
	}

	var seen []uint8
	for x, px := range row.Pixels() {
		v := px.MustGet(channel.Alpha)
		if int(v) != 10+x {
			t.Errorf("pixel %d = %d", x, v)
		}
		seen = append(seen, v)
		_ = px.Set(channel.Alpha, v+100)
	}
	if len(seen) != 3 || buf[0] != 110 || buf[2] != 112 {
		t.Errorf("seen=%v buf=%v", seen, buf)
	}

	count := 0
	for range row.Pixels() {
		count++
		break
	}
	if count != 1 {
		t.Error("Pixels() kept yielding after break")
	}
}
