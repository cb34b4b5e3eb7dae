package imageio

import (
	"fmt"

	"github.com/gogpu/pixlayout"
	"github.com/gogpu/pixlayout/channel"
)

// fileChannels maps the channel names an RGBA file can carry.
var fileChannels = map[string]channel.Channel{
	"R": channel.Red,
	"G": channel.Green,
	"B": channel.Blue,
	"A": channel.Alpha,
	"Z": channel.Depth,
}

// supported is the set of channels a file can carry.
var supported = channel.NewSet(channel.Red, channel.Green, channel.Blue, channel.Alpha, channel.Depth)

// ChannelsFromNames converts file channel names to a channel set. Only R,
// G, B, A and Z are accepted; names are case-sensitive and may not repeat.
func ChannelsFromNames(names []string) (channel.Set, error) {
	var s channel.Set
	for _, name := range names {
		c, ok := fileChannels[name]
		if !ok {
			return channel.Empty, fmt.Errorf("%w: %q", ErrUnsupportedChannel, name)
		}
		if s.Contains(c) {
			return channel.Empty, &pixlayout.ChannelError{
				Op:      "channels from names",
				Channel: c,
				Err:     pixlayout.ErrDuplicateChannel,
			}
		}
		s = s.With(c)
	}
	if s.IsEmpty() {
		return channel.Empty, fmt.Errorf("%w: no channels", ErrEmptyData)
	}
	return s, nil
}

// layoutFor returns the decode layout for s: one interleaved color group
// plus a planar depth channel when s holds Z.
func layoutFor(s channel.Set) (pixlayout.Layout, error) {
	group := channel.GroupRGB
	if s.Contains(channel.Alpha) {
		group = channel.GroupRGBA
	}
	if !s.ContainsAll(channel.RGB) {
		return nil, fmt.Errorf("%w: decoding needs R, G and B, got %v", ErrUnsupportedChannel, s)
	}
	color, err := pixlayout.NewBrothersLayout(group)
	if err != nil {
		return nil, err
	}
	if !s.Contains(channel.Depth) {
		return color, nil
	}
	depth, err := pixlayout.NewChannelLayout(channel.Depth)
	if err != nil {
		return nil, err
	}
	return pixlayout.NewCompoundLayout(color, depth)
}
