package channel

import "fmt"

// Group identifies a brother group: a fixed set of channels stored
// interleaved behind one base address.
type Group uint8

// Built-in brother groups.
const (
	GroupNone Group = iota
	GroupRGB
	GroupBGR
	GroupRGBA
	GroupBGRA
	GroupARGB
	GroupABGR
	GroupUV
	GroupVU

	// groupCount is the number of groups (for internal use).
	groupCount
)

// MaxGroupSize is the largest number of channels a brother group holds.
const MaxGroupSize = 4

// GroupInfo describes one brother group.
type GroupInfo struct {
	// ID is the group identifier.
	ID Group

	// Name is the conventional name, e.g. "BGRA".
	Name string

	// Mask holds the member channels.
	Mask Set

	// Count is the number of members, which is also the pointer step
	// between consecutive pixels.
	Count int

	// Lowest is the member with the lowest channel id. It is the channel
	// through which the group's base address is attached.
	Lowest Channel

	// First is the member stored at memory slot 0.
	First Channel

	// SlotOrder maps a member's ordinal within Mask to its memory slot.
	SlotOrder [MaxGroupSize]int
}

// groupDef lists a group's members in memory order.
type groupDef struct {
	name   string
	layout []Channel
}

var groupDefs = [groupCount]groupDef{
	GroupNone: {name: "none"},
	GroupRGB:  {name: "RGB", layout: []Channel{Red, Green, Blue}},
	GroupBGR:  {name: "BGR", layout: []Channel{Blue, Green, Red}},
	GroupRGBA: {name: "RGBA", layout: []Channel{Red, Green, Blue, Alpha}},
	GroupBGRA: {name: "BGRA", layout: []Channel{Blue, Green, Red, Alpha}},
	GroupARGB: {name: "ARGB", layout: []Channel{Alpha, Red, Green, Blue}},
	GroupABGR: {name: "ABGR", layout: []Channel{Alpha, Blue, Green, Red}},
	GroupUV:   {name: "UV", layout: []Channel{U, V}},
	GroupVU:   {name: "VU", layout: []Channel{V, U}},
}

// buildGroupTable derives the GroupInfo table from groupDefs.
func buildGroupTable() [groupCount]GroupInfo {
	var table [groupCount]GroupInfo
	for id, def := range groupDefs {
		info := GroupInfo{ID: Group(id), Name: def.name}
		info.Mask = NewSet(def.layout...)
		info.Count = len(def.layout)
		info.Lowest = info.Mask.First()
		if len(def.layout) > 0 {
			info.First = def.layout[0]
		}
		for slot, c := range def.layout {
			ord, _ := info.Mask.Index(c)
			info.SlotOrder[ord] = slot
		}
		table[id] = info
	}
	return table
}

// IsMember reports whether c belongs to the group.
func (g GroupInfo) IsMember(c Channel) bool { return g.Mask.Contains(c) }

// SlotPosition returns the memory slot of c relative to the group's base
// address.
func (g GroupInfo) SlotPosition(c Channel) (int, error) {
	ord, err := g.Mask.Index(c)
	if err != nil {
		return -1, &MembershipError{Channel: c, Group: g.ID}
	}
	return g.SlotOrder[ord], nil
}

// ChannelAtSlot returns the member stored at memory slot i.
func (g GroupInfo) ChannelAtSlot(i int) (Channel, error) {
	for ord, slot := range g.SlotOrder[:g.Count] {
		if slot == i {
			return g.Mask.At(ord)
		}
	}
	return None, fmt.Errorf("%w: slot %d in group %s", ErrOutOfRange, i, g.Name)
}

// String returns the group name.
func (g Group) String() string {
	if g >= groupCount {
		return fmt.Sprintf("group(%d)", uint8(g))
	}
	return groupDefs[g].name
}

// Info returns the group's description from the default registry.
func (g Group) Info() (GroupInfo, error) { return Default().Group(g) }

// SlotPosition returns the memory slot of c within group g.
func SlotPosition(g Group, c Channel) (int, error) {
	info, err := g.Info()
	if err != nil {
		return -1, err
	}
	return info.SlotPosition(c)
}

// GroupFor returns the built-in group whose memory order matches layout
// exactly, or GroupNone.
func GroupFor(layout ...Channel) Group {
	for id, def := range groupDefs {
		if id == int(GroupNone) || len(def.layout) != len(layout) {
			continue
		}
		match := true
		for i, c := range def.layout {
			if layout[i] != c {
				match = false
				break
			}
		}
		if match {
			return Group(id)
		}
	}
	return GroupNone
}
