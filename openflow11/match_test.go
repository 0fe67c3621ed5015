package openflow11

import (
	"encoding/binary"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

// S6: a flow-wildcards match where only in_port is set, everything else
// wildcarded.
func TestMatchInPortOnly(t *testing.T) {
	m := NewMatch()
	port := uint16(5)
	m.InPort = &port

	b, err := m.MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, b, 88)

	got := new(Match)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.NotNil(t, got.InPort)
	assert.Equal(t, uint16(5), *got.InPort)
	assert.Nil(t, got.EthType)
	assert.Nil(t, got.VlanVid)
	// Always-emitted mask slots decode as all-ones when left wildcarded.
	assert.Equal(t, net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, got.EthSrcMask)
}

func TestMatchTCPDemux(t *testing.T) {
	m := NewMatch()
	proto := uint8(6)
	src := uint16(80)
	m.IPProto = &proto
	m.TCPSrc = &src

	b, err := m.MarshalBinary()
	assert.NoError(t, err)

	got := new(Match)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.NotNil(t, got.IPProto)
	assert.Equal(t, uint8(6), *got.IPProto)
	assert.NotNil(t, got.TCPSrc)
	assert.Equal(t, uint16(80), *got.TCPSrc)
	assert.Nil(t, got.UDPSrc)
}

func TestMatchUDPDemux(t *testing.T) {
	m := NewMatch()
	proto := uint8(17)
	dst := uint16(53)
	m.IPProto = &proto
	m.UDPDst = &dst

	b, err := m.MarshalBinary()
	assert.NoError(t, err)

	got := new(Match)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.NotNil(t, got.UDPDst)
	assert.Equal(t, uint16(53), *got.UDPDst)
	assert.Nil(t, got.TCPDst)
}

func TestMatchMetadataDefaultsToAllOnesMask(t *testing.T) {
	m := NewMatch()
	m.Metadata = 0x1234

	b, err := m.MarshalBinary()
	assert.NoError(t, err)

	got := new(Match)
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, uint64(0x1234), got.Metadata)
	assert.Equal(t, ^uint64(0), got.MetadataMask)
}

func TestMatchRejectsShortInput(t *testing.T) {
	got := new(Match)
	assert.Error(t, got.UnmarshalBinary(make([]byte, 10)))
}

// ofp_flow_wildcards assigns dense, consecutive bits 0-9; verify the wire
// value directly rather than only round-tripping, since a uniformly wrong
// but internally consistent bit mapping would otherwise still pass.
func TestMatchWildcardsWireBits(t *testing.T) {
	m := NewMatch()
	b, err := m.MarshalBinary()
	assert.NoError(t, err)

	wildcards := binary.BigEndian.Uint32(b[0:4])
	assert.Equal(t, uint32(1<<0), wildcards&(1<<0), "in_port")
	assert.Equal(t, uint32(1<<1), wildcards&(1<<1), "vlan_vid")
	assert.Equal(t, uint32(1<<2), wildcards&(1<<2), "vlan_pcp")
	assert.Equal(t, uint32(1<<3), wildcards&(1<<3), "eth_type")
	assert.Equal(t, uint32(1<<4), wildcards&(1<<4), "ip_dscp")
	assert.Equal(t, uint32(1<<5), wildcards&(1<<5), "ip_proto")
	assert.Equal(t, uint32(1<<6), wildcards&(1<<6), "tp_src")
	assert.Equal(t, uint32(1<<7), wildcards&(1<<7), "tp_dst")
	assert.Equal(t, uint32(1<<8), wildcards&(1<<8), "mpls_label")
	assert.Equal(t, uint32(1<<9), wildcards&(1<<9), "mpls_tc")
	// Bits 10+ must stay clear: v1.1 dropped the CIDR-prefix wildcard bits
	// in favor of the explicit IPv4SrcMask/IPv4DstMask fields.
	assert.Equal(t, uint32(0), wildcards&^uint32(0x3ff))
}
