package openflow11

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelloGoldenBytes(t *testing.T) {
	h := NewHello()
	h.Header.Xid = 1
	b, err := h.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, []byte{2, 0, 0, 8, 0, 0, 0, 1}, b)

	got := new(Hello)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, h, got)
}

func TestEchoRequestRoundTrip(t *testing.T) {
	e := NewEchoRequest()
	e.Header.Xid = 9
	e.Data = []byte{1, 2, 3}
	b, err := e.MarshalBinary()
	assert.NoError(t, err)

	got := new(EchoRequest)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, e, got)
}

// SwitchFeatures has no auxiliary-id slot in v1.1.
func TestSwitchFeaturesRoundTrip(t *testing.T) {
	f := NewFeaturesReply()
	f.Header.Xid = 3
	f.DatapathID = net.HardwareAddr{0, 0, 0, 0, 0, 0, 0, 2}
	f.Buffers = 64
	f.NumTables = 1
	f.Capabilities = []string{"flow_stats", "arp_match_ip"}

	b, err := f.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, int(f.Len()), len(b))

	got := NewFeaturesReply()
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, f.DatapathID, got.DatapathID)
	assert.Equal(t, f.Buffers, got.Buffers)
	assert.ElementsMatch(t, f.Capabilities, got.Capabilities)
}

// PacketIn carries no cookie field and a fixed 8-byte prefix in v1.1.
func TestPacketInNoCookieFixedPrefix(t *testing.T) {
	p := NewPacketIn()
	p.Header.Xid = 4
	p.TotalLen = 128
	p.Reason = "no_match"
	p.TableID = 0
	port := uint16(1)
	p.Match.InPort = &port
	p.Data = []byte{0xaa, 0xbb}

	b, err := p.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, int(p.Len()), len(b))

	got := new(PacketIn)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, p.TotalLen, got.TotalLen)
	assert.Equal(t, p.Reason, got.Reason)
	assert.Equal(t, p.Data, got.Data)
	assert.NotNil(t, got.Match.InPort)
	assert.Equal(t, uint16(1), *got.Match.InPort)
}

// FlowRemoved has no table_id/hard_timeout in v1.1.
func TestFlowRemovedRoundTrip(t *testing.T) {
	f := NewFlowRemoved()
	f.Header.Xid = 5
	f.Cookie = 0xfeed
	f.Priority = 10
	f.Reason = "idle_timeout"
	f.DurationSec = 60
	f.DurationNSec = 0
	f.IdleTimeout = 30
	f.PacketCount = 7
	f.ByteCount = 700

	b, err := f.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, int(f.Len()), len(b))

	got := new(FlowRemoved)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, f.Cookie, got.Cookie)
	assert.Equal(t, f.Reason, got.Reason)
	assert.Equal(t, f.PacketCount, got.PacketCount)
	assert.Equal(t, f.ByteCount, got.ByteCount)
}

func TestParseMessageDispatchesPacketIn(t *testing.T) {
	p := NewPacketIn()
	p.Header.Xid = 8
	p.Reason = "action"
	b, err := p.MarshalBinary()
	assert.NoError(t, err)

	msg, err := ParseMessage(b)
	assert.NoError(t, err)
	got, ok := msg.(*PacketIn)
	assert.True(t, ok)
	assert.Equal(t, "action", got.Reason)
}

func TestParseMessageRejectsShortInput(t *testing.T) {
	_, err := ParseMessage([]byte{2, 0, 0})
	assert.Error(t, err)
}
