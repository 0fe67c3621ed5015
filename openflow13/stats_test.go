package openflow13

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescStatsRoundTrip(t *testing.T) {
	s := &DescStats{
		MfrDesc:   "Flowbase Networks",
		HWDesc:    "virtual switch",
		SWDesc:    "ofcodec test",
		SerialNum: "0001",
		DPDesc:    "br0",
	}
	b, err := s.MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, b, 1056)

	got := new(DescStats)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, s, got)
}

func TestAggregateStatsRoundTrip(t *testing.T) {
	s := &AggregateStats{PacketCount: 10, ByteCount: 2000, FlowCount: 3}
	b, err := s.MarshalBinary()
	assert.NoError(t, err)

	got := new(AggregateStats)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, s, got)
}

func TestFlowStatsRoundTripWithMatchAndInstructions(t *testing.T) {
	s := &FlowStats{
		TableID:     0,
		Priority:    100,
		IdleTimeout: 30,
		Cookie:      0xabcd,
		PacketCount: 5,
		ByteCount:   500,
	}
	s.Match.AddField("eth_type", []byte{0x08, 0x00})
	s.Instructions = []Instruction{&GotoTable{TableID: 1}}

	b, err := s.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, int(s.Len()), len(b))

	got := new(FlowStats)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, s.Priority, got.Priority)
	assert.Equal(t, s.Cookie, got.Cookie)
	field, ok := got.Match.Field("eth_type")
	assert.True(t, ok)
	assert.Equal(t, []byte{0x08, 0x00}, field.Value)
	assert.Len(t, got.Instructions, 1)
}

func TestMultipartRequestFlowRoundTrip(t *testing.T) {
	req := NewMultipartRequest("flow")
	req.Header.Xid = 1
	fr := NewFlowStatsRequest()
	fr.TableID = 0xff
	req.Body = fr

	b, err := req.MarshalBinary()
	assert.NoError(t, err)

	got := new(MultipartRequest)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, "flow", got.Type)
	body, ok := got.Body.(*FlowStatsRequest)
	assert.True(t, ok)
	assert.Equal(t, uint8(0xff), body.TableID)
}

func TestMultipartReplyDescRoundTrip(t *testing.T) {
	reply := NewMultipartReply("desc")
	reply.Header.Xid = 2
	reply.Body = []StatsBody{&DescStats{MfrDesc: "x", HWDesc: "y", SWDesc: "z", SerialNum: "1", DPDesc: "br0"}}

	b, err := reply.MarshalBinary()
	assert.NoError(t, err)

	got := new(MultipartReply)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, "desc", got.Type)
	assert.Len(t, got.Body, 1)
	desc, ok := got.Body[0].(*DescStats)
	assert.True(t, ok)
	assert.Equal(t, "x", desc.MfrDesc)
}

func TestNewStatsRequestBodyRejectsBodylessTypes(t *testing.T) {
	_, err := newStatsRequestBody("desc")
	assert.Error(t, err)
}
