package channel

import (
	"errors"
	"fmt"
)

// Sentinel errors for the channel package.
var (
	// ErrOutOfRange is returned when an ordinal index or channel lies
	// outside a set.
	ErrOutOfRange = errors.New("channel: out of range")

	// ErrInvalidGroupMembership is returned when a channel is not a member
	// of the brother group it was used with.
	ErrInvalidGroupMembership = errors.New("channel: channel is not a member of group")

	// ErrUnknownGroup is returned for group ids outside the registered table.
	ErrUnknownGroup = errors.New("channel: unknown group")

	// ErrTooManyChannels is returned when a name lookup would need a channel
	// id beyond MaxChannels.
	ErrTooManyChannels = errors.New("channel: too many channels")

	// ErrEmptyName is returned when registering an empty channel name.
	ErrEmptyName = errors.New("channel: empty name")
)

// MembershipError reports a channel that does not belong to a group.
type MembershipError struct {
	Channel Channel
	Group   Group
}

func (e *MembershipError) Error() string {
	return fmt.Sprintf("channel: %v is not a member of group %v", e.Channel, e.Group)
}

// Unwrap returns ErrInvalidGroupMembership.
func (e *MembershipError) Unwrap() error { return ErrInvalidGroupMembership }
