package channel

import "strconv"

// Channel identifies one scalar component of a pixel.
type Channel uint8

// Built-in channels. User channels are allocated after V.
const (
	// None is the sentinel channel. It is never a member of a Set.
	None Channel = iota
	Red
	Green
	Blue
	Alpha
	Depth
	Mask
	U
	V

	// firstUser is the first id handed out by Registry.Lookup.
	firstUser
)

// MaxChannels is the number of representable channel ids, None included.
const MaxChannels = 64

var builtinNames = [firstUser]string{
	None:  "none",
	Red:   "red",
	Green: "green",
	Blue:  "blue",
	Alpha: "alpha",
	Depth: "depth",
	Mask:  "mask",
	U:     "u",
	V:     "v",
}

// IsBuiltin reports whether c is one of the predeclared channels.
func (c Channel) IsBuiltin() bool { return c < firstUser }

// Valid reports whether c can be a member of a Set.
func (c Channel) Valid() bool { return c != None && c < MaxChannels }

// String returns the channel name. User channels are resolved through the
// default registry.
func (c Channel) String() string {
	if c.IsBuiltin() {
		return builtinNames[c]
	}
	if name, ok := Default().Name(c); ok {
		return name
	}
	return "channel(" + strconv.Itoa(int(c)) + ")"
}

// Set returns the single-member set containing c.
func (c Channel) Set() Set { return NewSet(c) }
