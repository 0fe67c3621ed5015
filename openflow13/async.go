package openflow13

import (
	"fmt"

	"github.com/flowbase/ofcodec/common"
	"github.com/flowbase/ofcodec/enum"
	"github.com/flowbase/ofcodec/util"
)

// AsyncConfig is the ofp_async_config body shared by get-async-reply and
// set-async (spec.md, "async" supplement): three reason masks, each
// split into a master/equal-role bitmap and a slave-role bitmap.
type AsyncConfig struct {
	PacketInMask    [2][]string
	PortStatusMask  [2][]string
	FlowRemovedMask [2][]string
}

const asyncConfigLen = 24

type asyncMaskSlot struct {
	family *enum.BitFamily
	flags  *[2][]string
}

func (a *AsyncConfig) slots() [3]asyncMaskSlot {
	return [3]asyncMaskSlot{
		{PacketInReasonMask, &a.PacketInMask},
		{PortReasonMask, &a.PortStatusMask},
		{FlowRemovedReasonMask, &a.FlowRemovedMask},
	}
}

func (a *AsyncConfig) Len() uint16 { return asyncConfigLen }

func (a *AsyncConfig) MarshalBinary() (data []byte, err error) {
	data = make([]byte, asyncConfigLen)
	off := 0
	for _, slot := range a.slots() {
		for role := 0; role < 2; role++ {
			b, err := util.FlagsToBinary(slot.family, slot.flags[role], 4)
			if err != nil {
				return nil, err
			}
			copy(data[off:off+4], b)
			off += 4
		}
	}
	return data, nil
}

func (a *AsyncConfig) UnmarshalBinary(data []byte) error {
	if len(data) < asyncConfigLen {
		return fmt.Errorf("%w: async_config", common.ErrShortInput)
	}
	off := 0
	for _, slot := range a.slots() {
		for role := 0; role < 2; role++ {
			flags, err := util.BinaryToFlags(slot.family, data[off:off+4])
			if err != nil {
				return err
			}
			slot.flags[role] = flags
			off += 4
		}
	}
	return nil
}

// GetAsyncRequest is OFPT_GET_ASYNC_REQUEST: empty body.
type GetAsyncRequest struct {
	Header
}

func NewGetAsyncRequest() *GetAsyncRequest {
	return &GetAsyncRequest{NewHeader(messageType("get_async_request"))}
}

func (g *GetAsyncRequest) Len() uint16 { return g.Header.Len() }
func (g *GetAsyncRequest) MarshalBinary() ([]byte, error) {
	g.Header.Length = g.Len()
	return g.Header.MarshalBinary()
}
func (g *GetAsyncRequest) UnmarshalBinary(data []byte) error {
	return g.Header.UnmarshalBinary(data)
}

// GetAsyncReply is OFPT_GET_ASYNC_REPLY.
type GetAsyncReply struct {
	Header
	Config AsyncConfig
}

func NewGetAsyncReply() *GetAsyncReply {
	return &GetAsyncReply{Header: NewHeader(messageType("get_async_reply"))}
}

func (g *GetAsyncReply) Len() uint16 { return g.Header.Len() + g.Config.Len() }

func (g *GetAsyncReply) MarshalBinary() (data []byte, err error) {
	g.Header.Length = g.Len()
	hdr, err := g.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	body, err := g.Config.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(hdr, body...), nil
}

func (g *GetAsyncReply) UnmarshalBinary(data []byte) error {
	if err := g.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(g.Header.Len())
	return g.Config.UnmarshalBinary(data[n:])
}

// SetAsync is OFPT_SET_ASYNC.
type SetAsync struct {
	Header
	Config AsyncConfig
}

func NewSetAsync() *SetAsync {
	return &SetAsync{Header: NewHeader(messageType("set_async"))}
}

func (s *SetAsync) Len() uint16 { return s.Header.Len() + s.Config.Len() }

func (s *SetAsync) MarshalBinary() (data []byte, err error) {
	s.Header.Length = s.Len()
	hdr, err := s.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	body, err := s.Config.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(hdr, body...), nil
}

func (s *SetAsync) UnmarshalBinary(data []byte) error {
	if err := s.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(s.Header.Len())
	return s.Config.UnmarshalBinary(data[n:])
}
