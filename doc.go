// Package pixlayout describes how pixel channels are arranged in memory and
// gives uniform read/write access to them through that arrangement.
//
// # Overview
//
// A [Layout] maps a set of channels to storage slots. Four kinds exist:
//
//   - [ChannelLayout]: exactly one channel in its own slot.
//   - [BrothersLayout]: a fixed interleaved group such as RGB or BGRA,
//     addressed through one base pointer plus fixed offsets.
//   - [DynamicLayout]: a channel set that grows at runtime, each addition
//     either independently addressed or interleaved as a brother group.
//   - [CompoundLayout]: an ordered tuple of up to eight of the above that
//     presents one merged channel set.
//
// Storage comes in two flavours. [Values] owns the channel values of one
// pixel; [Pointers] holds one base pointer per required channel into
// externally owned buffers. [Pixel] wraps Values, [Accessor] and [Iterator]
// wrap Pointers, and [Image] keeps one row accessor per scanline.
//
// # Quick Start
//
//	rgb := pixlayout.MustBrothersLayout(channel.GroupRGB)
//	img, _ := pixlayout.NewImage[float32](rgb, pixlayout.WithSize(640, 480))
//	buf := make([]float32, 640*480*3)
//	_ = img.SetChannelPointer(channel.Red, buf, 640)
//
//	row, _ := img.Row(0)
//	for _, px := range row.Pixels() {
//		_ = px.Set(channel.Green, 1)
//	}
//
// # Static and dynamic access
//
// Every channel access can go through the checked path (Get, Set, Ref),
// which resolves the channel on each call and returns an error when the
// layout does not hold it, or through a [Slot] resolved once with
// [Layout.Slot] and reused with the At methods, which skip the lookup.
//
// # Memory ownership
//
// A [Ptr] borrows a slice. Accessors, iterators and images never copy the
// pixel memory they point into; holding the slice keeps it alive for as
// long as they reference it.
//
// # Coordinate System
//
// Images carry a data window (pixel storage, Y down) and a display window
// (Y up). [FlipPoint] and [FlipBox] convert between the two conventions.
//
// # Concurrency
//
// Layouts of the three static kinds are immutable and may be shared.
// Containers, pixels, accessors and images are not safe for concurrent
// mutation.
package pixlayout
