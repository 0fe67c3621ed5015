package openflow11

import (
	"encoding/binary"
	"fmt"
	"net"

	"github.com/flowbase/ofcodec/common"
)

const matchLen = 88

var broadcastMAC = net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
var broadcastIP = net.IPv4(0xff, 0xff, 0xff, 0xff).To4()

// Match is the v1.1 fixed ofp_match structure (spec.md §3, §4.3). Optional
// slots are nil pointers; a nil slot is wildcarded on encode. The four
// mask-supporting slots (EthSrc, EthDst, IPv4Src, IPv4Dst) are always
// emitted: an absent value is wildcarded via an all-ones mask instead of a
// wildcard bit. Metadata/MetadataMask are real fields (spec.md §9 resolves
// the source's FIXME this way); leaving them zero encodes as an all-ones
// mask, matching the baseline behavior the spec treats as default.
type Match struct {
	InPort   *uint16
	EthSrc   net.HardwareAddr
	EthSrcMask net.HardwareAddr
	EthDst   net.HardwareAddr
	EthDstMask net.HardwareAddr
	VlanVid  *uint16
	VlanPcp  *uint8
	EthType  *uint16
	IPDscp   *uint8
	IPProto  *uint8
	IPv4Src  net.IP
	IPv4SrcMask net.IP
	IPv4Dst  net.IP
	IPv4DstMask net.IP
	TCPSrc   *uint16
	TCPDst   *uint16
	UDPSrc   *uint16
	UDPDst   *uint16
	MPLSLabel *uint32
	MPLSTc   *uint8
	Metadata uint64
	MetadataMask uint64
}

func NewMatch() *Match { return &Match{} }

func (m *Match) Len() uint16 { return matchLen }

func (m *Match) MarshalBinary() (data []byte, err error) {
	data = make([]byte, matchLen)
	var wildcards uint

	setBit := func(name string) {
		bit, err := FlowWildcard.Bit(name)
		if err == nil {
			wildcards |= 1 << bit
		}
	}

	if m.InPort != nil {
		binary.BigEndian.PutUint16(data[4:6], *m.InPort)
	} else {
		setBit("in_port")
	}

	ethSrc, ethSrcMask := m.EthSrc, m.EthSrcMask
	if ethSrc == nil {
		ethSrc = make(net.HardwareAddr, ETH_ALEN)
		ethSrcMask = append(net.HardwareAddr(nil), broadcastMAC...)
	} else if ethSrcMask == nil {
		ethSrcMask = append(net.HardwareAddr(nil), broadcastMAC...)
	}
	copy(data[6:12], ethSrc)
	copy(data[12:18], ethSrcMask)

	ethDst, ethDstMask := m.EthDst, m.EthDstMask
	if ethDst == nil {
		ethDst = make(net.HardwareAddr, ETH_ALEN)
		ethDstMask = append(net.HardwareAddr(nil), broadcastMAC...)
	} else if ethDstMask == nil {
		ethDstMask = append(net.HardwareAddr(nil), broadcastMAC...)
	}
	copy(data[18:24], ethDst)
	copy(data[24:30], ethDstMask)

	if m.VlanVid != nil {
		binary.BigEndian.PutUint16(data[30:32], *m.VlanVid)
	} else {
		setBit("vlan_vid")
	}
	if m.VlanPcp != nil {
		data[32] = *m.VlanPcp
	} else {
		setBit("vlan_pcp")
	}
	if m.EthType != nil {
		binary.BigEndian.PutUint16(data[34:36], *m.EthType)
	} else {
		setBit("eth_type")
	}
	if m.IPDscp != nil {
		data[36] = *m.IPDscp
	} else {
		setBit("ip_dscp")
	}
	var ipProto uint8
	if m.IPProto != nil {
		ipProto = *m.IPProto
		data[37] = ipProto
	} else {
		setBit("ip_proto")
	}

	ipv4Src, ipv4SrcMask := m.IPv4Src, m.IPv4SrcMask
	if ipv4Src == nil {
		ipv4Src = net.IPv4zero.To4()
		ipv4SrcMask = broadcastIP
	} else if ipv4SrcMask == nil {
		ipv4SrcMask = broadcastIP
	}
	copy(data[40:44], ipv4Src.To4())
	copy(data[44:48], ipv4SrcMask.To4())

	ipv4Dst, ipv4DstMask := m.IPv4Dst, m.IPv4DstMask
	if ipv4Dst == nil {
		ipv4Dst = net.IPv4zero.To4()
		ipv4DstMask = broadcastIP
	} else if ipv4DstMask == nil {
		ipv4DstMask = broadcastIP
	}
	copy(data[48:52], ipv4Dst.To4())
	copy(data[52:56], ipv4DstMask.To4())

	switch ipProto {
	case 6:
		if m.TCPSrc != nil {
			binary.BigEndian.PutUint16(data[56:58], *m.TCPSrc)
		} else {
			setBit("tp_src")
		}
		if m.TCPDst != nil {
			binary.BigEndian.PutUint16(data[58:60], *m.TCPDst)
		} else {
			setBit("tp_dst")
		}
	case 17:
		if m.UDPSrc != nil {
			binary.BigEndian.PutUint16(data[56:58], *m.UDPSrc)
		} else {
			setBit("tp_src")
		}
		if m.UDPDst != nil {
			binary.BigEndian.PutUint16(data[58:60], *m.UDPDst)
		} else {
			setBit("tp_dst")
		}
	default:
		setBit("tp_src")
		setBit("tp_dst")
	}

	if m.MPLSLabel != nil {
		binary.BigEndian.PutUint32(data[60:64], *m.MPLSLabel)
	} else {
		setBit("mpls_label")
	}
	if m.MPLSTc != nil {
		data[64] = *m.MPLSTc
	} else {
		setBit("mpls_tc")
	}

	metadataMask := m.MetadataMask
	if metadataMask == 0 {
		metadataMask = ^uint64(0)
	}
	binary.BigEndian.PutUint64(data[68:76], m.Metadata)
	binary.BigEndian.PutUint64(data[76:84], metadataMask)

	binary.BigEndian.PutUint32(data[0:4], uint32(wildcards))
	return data, nil
}

func (m *Match) UnmarshalBinary(data []byte) error {
	if len(data) < matchLen {
		return fmt.Errorf("%w: v1.1 match needs %d bytes, got %d", common.ErrShortInput, matchLen, len(data))
	}
	wildcards := binary.BigEndian.Uint32(data[0:4])

	wildcarded := func(name string) bool {
		bit, err := FlowWildcard.Bit(name)
		if err != nil {
			return false
		}
		return wildcards&(1<<bit) != 0
	}

	*m = Match{}

	if !wildcarded("in_port") {
		v := binary.BigEndian.Uint16(data[4:6])
		m.InPort = &v
	}

	m.EthSrc = append(net.HardwareAddr(nil), data[6:12]...)
	m.EthSrcMask = append(net.HardwareAddr(nil), data[12:18]...)
	m.EthDst = append(net.HardwareAddr(nil), data[18:24]...)
	m.EthDstMask = append(net.HardwareAddr(nil), data[24:30]...)

	if !wildcarded("vlan_vid") {
		v := binary.BigEndian.Uint16(data[30:32])
		m.VlanVid = &v
	}
	if !wildcarded("vlan_pcp") {
		v := data[32]
		m.VlanPcp = &v
	}
	if !wildcarded("eth_type") {
		v := binary.BigEndian.Uint16(data[34:36])
		m.EthType = &v
	}
	if !wildcarded("ip_dscp") {
		v := data[36]
		m.IPDscp = &v
	}
	var ipProto uint8
	if !wildcarded("ip_proto") {
		ipProto = data[37]
		m.IPProto = &ipProto
	}

	m.IPv4Src = append(net.IP(nil), data[40:44]...)
	m.IPv4SrcMask = append(net.IP(nil), data[44:48]...)
	m.IPv4Dst = append(net.IP(nil), data[48:52]...)
	m.IPv4DstMask = append(net.IP(nil), data[52:56]...)

	switch ipProto {
	case 6:
		if !wildcarded("tp_src") {
			v := binary.BigEndian.Uint16(data[56:58])
			m.TCPSrc = &v
		}
		if !wildcarded("tp_dst") {
			v := binary.BigEndian.Uint16(data[58:60])
			m.TCPDst = &v
		}
	case 17:
		if !wildcarded("tp_src") {
			v := binary.BigEndian.Uint16(data[56:58])
			m.UDPSrc = &v
		}
		if !wildcarded("tp_dst") {
			v := binary.BigEndian.Uint16(data[58:60])
			m.UDPDst = &v
		}
	}

	if !wildcarded("mpls_label") {
		v := binary.BigEndian.Uint32(data[60:64])
		m.MPLSLabel = &v
	}
	if !wildcarded("mpls_tc") {
		v := data[64]
		m.MPLSTc = &v
	}

	m.Metadata = binary.BigEndian.Uint64(data[68:76])
	m.MetadataMask = binary.BigEndian.Uint64(data[76:84])
	return nil
}
