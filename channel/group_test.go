package channel

import (
	"errors"
	"testing"
)

func TestGroupInfo_Table(t *testing.T) {
	tests := []struct {
		group  Group
		mask   Set
		count  int
		lowest Channel
		first  Channel
	}{
		{GroupRGB, RGB, 3, Red, Red},
		{GroupBGR, RGB, 3, Red, Blue},
		{GroupRGBA, RGBA, 4, Red, Red},
		{GroupBGRA, RGBA, 4, Red, Blue},
		{GroupARGB, RGBA, 4, Red, Alpha},
		{GroupABGR, RGBA, 4, Red, Alpha},
		{GroupUV, UV, 2, U, U},
		{GroupVU, UV, 2, U, V},
	}
	for _, tt := range tests {
		t.Run(tt.group.String(), func(t *testing.T) {
			info, err := tt.group.Info()
			if err != nil {
				t.Fatalf("Info(): %v", err)
			}
			if info.ID != tt.group {
				t.Errorf("ID = %v, want %v", info.ID, tt.group)
			}
			if info.Mask != tt.mask {
				t.Errorf("Mask = %v, want %v", info.Mask, tt.mask)
			}
			if info.Count != tt.count {
				t.Errorf("Count = %d, want %d", info.Count, tt.count)
			}
			if info.Lowest != tt.lowest {
				t.Errorf("Lowest = %v, want %v", info.Lowest, tt.lowest)
			}
			if info.First != tt.first {
				t.Errorf("First = %v, want %v", info.First, tt.first)
			}
		})
	}
}

func TestSlotPosition(t *testing.T) {
	tests := []struct {
		group Group
		c     Channel
		want  int
	}{
		{GroupRGB, Red, 0},
		{GroupRGB, Blue, 2},
		{GroupBGR, Red, 2},
		{GroupBGR, Green, 1},
		{GroupBGR, Blue, 0},
		{GroupBGRA, Alpha, 3},
		{GroupARGB, Alpha, 0},
		{GroupARGB, Blue, 3},
		{GroupABGR, Red, 3},
		{GroupVU, U, 1},
	}
	for _, tt := range tests {
		got, err := SlotPosition(tt.group, tt.c)
		if err != nil {
			t.Errorf("SlotPosition(%v, %v): %v", tt.group, tt.c, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SlotPosition(%v, %v) = %d, want %d", tt.group, tt.c, got, tt.want)
		}
	}
}

func TestSlotPosition_NotMember(t *testing.T) {
	_, err := SlotPosition(GroupRGB, Alpha)
	if !errors.Is(err, ErrInvalidGroupMembership) {
		t.Fatalf("error = %v, want ErrInvalidGroupMembership", err)
	}
	var me *MembershipError
	if !errors.As(err, &me) || me.Channel != Alpha || me.Group != GroupRGB {
		t.Errorf("errors.As = %+v", me)
	}
}

func TestGroup_Unknown(t *testing.T) {
	if _, err := Group(200).Info(); !errors.Is(err, ErrUnknownGroup) {
		t.Errorf("error = %v, want ErrUnknownGroup", err)
	}
	if got := Group(200).String(); got != "group(200)" {
		t.Errorf("String() = %q", got)
	}
}

func TestGroupInfo_ChannelAtSlot(t *testing.T) {
	info, _ := GroupBGRA.Info()
	want := []Channel{Blue, Green, Red, Alpha}
	for slot, c := range want {
		got, err := info.ChannelAtSlot(slot)
		if err != nil || got != c {
			t.Errorf("ChannelAtSlot(%d) = %v, %v; want %v", slot, got, err, c)
		}
	}
	if _, err := info.ChannelAtSlot(4); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ChannelAtSlot(4) error = %v", err)
	}
}

func TestGroupFor(t *testing.T) {
	if got := GroupFor(Blue, Green, Red); got != GroupBGR {
		t.Errorf("GroupFor(BGR) = %v", got)
	}
	if got := GroupFor(Red, Blue); got != GroupNone {
		t.Errorf("GroupFor(RB) = %v", got)
	}
}

func TestRegistry_Groups(t *testing.T) {
	groups := NewRegistry().Groups()
	if len(groups) != int(groupCount)-1 {
		t.Fatalf("len(Groups()) = %d", len(groups))
	}
	seen := map[Group]bool{}
	for _, g := range groups {
		if seen[g.ID] {
			t.Errorf("duplicate group %v", g.ID)
		}
		seen[g.ID] = true
	}
}
