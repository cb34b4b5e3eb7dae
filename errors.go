package pixlayout

import (
	"errors"
	"fmt"

	"github.com/gogpu/pixlayout/channel"
)

// Sentinel errors for layout, container and image operations.
var (
	// ErrChannelNotFound is returned when a channel is not represented by
	// the layout or container queried.
	ErrChannelNotFound = errors.New("pixlayout: channel not found")

	// ErrDuplicateChannel is returned when adding a channel that a dynamic
	// layout already holds.
	ErrDuplicateChannel = errors.New("pixlayout: duplicate channel")

	// ErrInvalidGroupMembership is returned when a channel is added under a
	// brother group it does not belong to.
	ErrInvalidGroupMembership = channel.ErrInvalidGroupMembership

	// ErrOutOfRange is returned when an ordinal index exceeds the channels,
	// layouts, pointer slots or rows available.
	ErrOutOfRange = channel.ErrOutOfRange

	// ErrPrecondition is returned when an operation is called in a state
	// that does not allow it.
	ErrPrecondition = errors.New("pixlayout: precondition violated")

	// ErrStaticConfiguration is returned when composing a malformed
	// compound layout.
	ErrStaticConfiguration = errors.New("pixlayout: invalid layout composition")

	// ErrNoTextureFormat is returned when a GPU texture format and a
	// layout have no counterpart in each other.
	ErrNoTextureFormat = errors.New("pixlayout: no matching texture format")
)

// ChannelError records a failed operation on a single channel.
type ChannelError struct {
	Op      string
	Channel channel.Channel
	Err     error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("pixlayout: %s %v: %v", e.Op, e.Channel, e.Err)
}

func (e *ChannelError) Unwrap() error { return e.Err }

// IndexError records an ordinal index outside [0, Len).
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("pixlayout: %s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

// Unwrap returns ErrOutOfRange.
func (e *IndexError) Unwrap() error { return ErrOutOfRange }

func notFound(op string, c channel.Channel) error {
	return &ChannelError{Op: op, Channel: c, Err: ErrChannelNotFound}
}

func precondition(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrPrecondition}, args...)...)
}

// must panics if err is non-nil.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
