package pixlayout

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixlayout/channel"
)

// textureFormats pairs each GPU texture format with the layout of one of
// its texels. Stencil bits have no channel, so the combined depth-stencil
// format maps to depth alone.
var textureFormats = []struct {
	format gputypes.TextureFormat
	layout Layout
}{
	{gputypes.TextureFormatRGBA8Unorm, MustBrothersLayout(channel.GroupRGBA)},
	{gputypes.TextureFormatBGRA8Unorm, MustBrothersLayout(channel.GroupBGRA)},
	{gputypes.TextureFormatR8Unorm, MustChannelLayout(channel.Red)},
	{gputypes.TextureFormatDepth24PlusStencil8, MustChannelLayout(channel.Depth)},
}

// LayoutForTextureFormat returns the layout of one texel of format f.
// Pair it with uint8 samples for the 8-bit color formats.
func LayoutForTextureFormat(f gputypes.TextureFormat) (Layout, error) {
	for _, tf := range textureFormats {
		if tf.format == f {
			return tf.layout, nil
		}
	}
	return nil, fmt.Errorf("%w: texture format %v", ErrNoTextureFormat, f)
}

// TextureFormatFor returns the texture format whose texels are laid out
// as l. Layouts are matched with Equal, so only static layouts match.
func TextureFormatFor(l Layout) (gputypes.TextureFormat, error) {
	if l != nil {
		for _, tf := range textureFormats {
			if tf.layout.Equal(l) {
				return tf.format, nil
			}
		}
	}
	return gputypes.TextureFormatUndefined, fmt.Errorf("%w: layout %v", ErrNoTextureFormat, l)
}
