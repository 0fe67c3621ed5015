package openflow13

import (
	"encoding/binary"
	"fmt"

	"github.com/flowbase/ofcodec/common"
)

// Group numbering (ofp_group).
const (
	GroupMax uint32 = 0xffffff00
	GroupAll uint32 = 0xfffffffc
	GroupAny uint32 = 0xffffffff
)

// ofp_group_mod_command.
const (
	GroupCommandAdd    uint16 = 0
	GroupCommandModify uint16 = 1
	GroupCommandDelete uint16 = 2
)

const bucketHeaderLen = 16

// Bucket is one action bucket of a group, carrying an opaque,
// already-encoded action list (see the Instruction doc in instruction.go
// on why actions are opaque here).
type Bucket struct {
	Weight     uint16
	WatchPort  uint32
	WatchGroup uint32
	Actions    []byte
}

func (b *Bucket) Len() uint16 {
	return uint16(bucketHeaderLen + len(b.Actions))
}

func (b *Bucket) MarshalBinary() (data []byte, err error) {
	data = make([]byte, bucketHeaderLen)
	binary.BigEndian.PutUint16(data[0:2], b.Len())
	binary.BigEndian.PutUint16(data[2:4], b.Weight)
	binary.BigEndian.PutUint32(data[4:8], b.WatchPort)
	binary.BigEndian.PutUint32(data[8:12], b.WatchGroup)
	return append(data, b.Actions...), nil
}

func (b *Bucket) UnmarshalBinary(data []byte) error {
	if len(data) < bucketHeaderLen {
		return fmt.Errorf("%w: group bucket header", common.ErrShortInput)
	}
	length := binary.BigEndian.Uint16(data[0:2])
	if int(length) > len(data) {
		return fmt.Errorf("%w: bucket declares %d, have %d", common.ErrLengthMismatch, length, len(data))
	}
	b.Weight = binary.BigEndian.Uint16(data[2:4])
	b.WatchPort = binary.BigEndian.Uint32(data[4:8])
	b.WatchGroup = binary.BigEndian.Uint32(data[8:12])
	b.Actions = append([]byte(nil), data[bucketHeaderLen:length]...)
	return nil
}

const groupModFixedLen = 8

// GroupMod is OFPT_GROUP_MOD (spec.md §3).
type GroupMod struct {
	Header
	Command   uint16
	GroupType string // "all", "select", "indirect", or "ff"
	GroupID   uint32
	Buckets   []*Bucket
}

func NewGroupMod() *GroupMod {
	g := new(GroupMod)
	g.Header = NewHeader(messageType("group_mod"))
	return g
}

func (g *GroupMod) Len() uint16 {
	n := g.Header.Len() + groupModFixedLen
	for _, b := range g.Buckets {
		n += b.Len()
	}
	return n
}

func (g *GroupMod) MarshalBinary() (data []byte, err error) {
	typeVal, err := GroupType.Int(g.GroupType)
	if err != nil {
		return nil, err
	}

	g.Header.Length = g.Len()
	hdr, err := g.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	data = append(data, hdr...)

	body := make([]byte, groupModFixedLen)
	binary.BigEndian.PutUint16(body[0:2], g.Command)
	body[2] = uint8(typeVal)
	binary.BigEndian.PutUint32(body[4:8], g.GroupID)
	data = append(data, body...)

	for _, b := range g.Buckets {
		bb, err := b.MarshalBinary()
		if err != nil {
			return nil, err
		}
		data = append(data, bb...)
	}
	return data, nil
}

func (g *GroupMod) UnmarshalBinary(data []byte) error {
	if err := g.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(g.Header.Len())
	if len(data) < n+groupModFixedLen {
		return fmt.Errorf("%w: group_mod body", common.ErrShortInput)
	}
	g.Command = binary.BigEndian.Uint16(data[n : n+2])
	typeName, err := GroupType.Symbol(uint32(data[n+2]))
	if err != nil {
		return err
	}
	g.GroupType = typeName
	g.GroupID = binary.BigEndian.Uint32(data[n+4 : n+8])
	n += groupModFixedLen

	g.Buckets = nil
	for n < int(g.Header.Length) {
		b := new(Bucket)
		if err := b.UnmarshalBinary(data[n:g.Header.Length]); err != nil {
			return err
		}
		g.Buckets = append(g.Buckets, b)
		n += int(b.Len())
	}
	return nil
}
