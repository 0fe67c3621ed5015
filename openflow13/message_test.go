package openflow13

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

// S1: a bare v1.3 hello with no elements.
func TestHelloGoldenBytes(t *testing.T) {
	h := NewHello()
	h.Header.Xid = 1
	b, err := h.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, []byte{4, 0, 0, 8, 0, 0, 0, 1}, b)

	got := new(Hello)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, h, got)
}

// S2: echo-request carrying an opaque payload that must round-trip intact.
func TestEchoRequestGoldenBytes(t *testing.T) {
	e := NewEchoRequest()
	e.Header.Xid = 0x42
	e.Data = []byte{0xde, 0xad, 0xbe, 0xef}
	b, err := e.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, []byte{4, 2, 0, 12, 0, 0, 0, 0x42, 0xde, 0xad, 0xbe, 0xef}, b)

	got := new(EchoRequest)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, e, got)
}

// S3: a features-reply exercising DatapathID, capability bitmap packing.
func TestFeaturesReplyGoldenBytes(t *testing.T) {
	f := NewFeaturesReply()
	f.Header.Xid = 7
	f.DatapathID = net.HardwareAddr{0, 0, 0, 0, 0, 0, 0, 1}
	f.Buffers = 256
	f.NumTables = 254
	f.AuxiliaryID = 0
	f.Capabilities = []string{"flow_stats", "port_stats"}

	b, err := f.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, int(f.Len()), len(b))
	assert.Equal(t, []byte{
		4, 6, 0, 32, 0, 0, 0, 7,
		0, 0, 0, 0, 0, 0, 0, 1,
		0, 0, 1, 0,
		254, 0, 0, 0,
		0, 0, 0, 5,
		0, 0, 0, 0,
	}, b)

	got := NewFeaturesReply()
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, f.DatapathID, got.DatapathID)
	assert.Equal(t, f.Buffers, got.Buffers)
	assert.Equal(t, f.NumTables, got.NumTables)
	assert.ElementsMatch(t, f.Capabilities, got.Capabilities)
}

// S5: a single-field OXM match (eth_type) embedded in a packet_in.
func TestPacketInWithSingleFieldMatch(t *testing.T) {
	p := NewPacketIn()
	p.Header.Xid = 99
	p.BufferID = 0xffffffff
	p.TotalLen = 64
	p.Reason = "no_match"
	p.TableID = 0
	p.Cookie = 0
	p.Match.AddField("eth_type", []byte{0x08, 0x00})
	p.Data = []byte{0x01, 0x02, 0x03}

	b, err := p.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, int(p.Len()), len(b))

	got := new(PacketIn)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, p.BufferID, got.BufferID)
	assert.Equal(t, p.TotalLen, got.TotalLen)
	assert.Equal(t, p.Reason, got.Reason)
	assert.Equal(t, p.Data, got.Data)
	field, ok := got.Match.Field("eth_type")
	assert.True(t, ok)
	assert.Equal(t, []byte{0x08, 0x00}, field.Value)
}

// S7: a multi-field match mixing masked and unmasked fields, checking
// that the TLV list pads to an 8-byte boundary.
func TestMatchMultiFieldPadding(t *testing.T) {
	m := NewMatch()
	m.AddField("in_port", []byte{0, 0, 0, 1})
	m.AddMaskedField("ipv4_dst", []byte{10, 0, 0, 0}, []byte{255, 255, 255, 0})

	b, err := m.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, 0, len(b)%8)
	assert.Equal(t, int(m.Len()), len(b))

	got := new(Match)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Len(t, got.Fields, 2)
	f, ok := got.Field("ipv4_dst")
	assert.True(t, ok)
	assert.True(t, f.HasMask)
	assert.Equal(t, []byte{10, 0, 0, 0}, f.Value)
	assert.Equal(t, []byte{255, 255, 255, 0}, f.Mask)
}

func TestParseMessageDispatchesHello(t *testing.T) {
	h := NewHello()
	h.Header.Xid = 5
	b, err := h.MarshalBinary()
	assert.NoError(t, err)

	msg, err := ParseMessage(b)
	assert.NoError(t, err)
	got, ok := msg.(*Hello)
	assert.True(t, ok)
	assert.Equal(t, uint32(5), got.Header.Xid)
}

func TestParseMessageRejectsShortInput(t *testing.T) {
	_, err := ParseMessage([]byte{4, 0, 0})
	assert.Error(t, err)
}

func TestParseMessageRejectsWrongVersion(t *testing.T) {
	b := []byte{2, 0, 0, 8, 0, 0, 0, 0}
	_, err := ParseMessage(b)
	assert.Error(t, err)
}
