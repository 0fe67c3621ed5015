package openflow13

import (
	"encoding/binary"
	"fmt"
	"net"

	"github.com/flowbase/ofcodec/common"
	"github.com/flowbase/ofcodec/util"
)

// ETH_ALEN and MaxPortNameLen are the fixed widths ofp_port packs its
// hardware address and name fields into.
const (
	ETH_ALEN      = 6
	MaxPortNameLen = 16
	portLen        = 64
)

// Port is the ofp_port structure: identical layout in v1.1 and v1.3
// (spec.md §4.3).
type Port struct {
	PortNo     uint32
	HWAddr     net.HardwareAddr
	Name       string
	Config     []string // port-config flags
	State      []string // port-state flags
	Curr       []string // port-feature flags
	Advertised []string
	Supported  []string
	Peer       []string
	CurrSpeed  uint32
	MaxSpeed   uint32
}

func NewPort(no uint32) *Port {
	return &Port{PortNo: no, HWAddr: make(net.HardwareAddr, ETH_ALEN)}
}

func (p *Port) Len() uint16 { return portLen }

func (p *Port) MarshalBinary() (data []byte, err error) {
	data = make([]byte, portLen)
	binary.BigEndian.PutUint32(data[0:4], p.PortNo)
	// data[4:8] pad
	copy(data[8:14], p.HWAddr)
	// data[14:16] pad
	copy(data[16:32], util.EncodeString(p.Name, MaxPortNameLen))

	config, err := util.FlagsToBinary(PortConfig, p.Config, 4)
	if err != nil {
		return nil, err
	}
	copy(data[32:36], config)

	state, err := util.FlagsToBinary(PortState, p.State, 4)
	if err != nil {
		return nil, err
	}
	copy(data[36:40], state)

	for _, f := range []struct {
		flags []string
		off   int
	}{
		{p.Curr, 40}, {p.Advertised, 44}, {p.Supported, 48}, {p.Peer, 52},
	} {
		b, err := util.FlagsToBinary(PortFeature, f.flags, 4)
		if err != nil {
			return nil, err
		}
		copy(data[f.off:f.off+4], b)
	}

	binary.BigEndian.PutUint32(data[56:60], p.CurrSpeed)
	binary.BigEndian.PutUint32(data[60:64], p.MaxSpeed)
	return data, nil
}

func (p *Port) UnmarshalBinary(data []byte) error {
	if len(data) < portLen {
		return fmt.Errorf("%w: port needs %d bytes, got %d", common.ErrShortInput, portLen, len(data))
	}
	p.PortNo = binary.BigEndian.Uint32(data[0:4])
	p.HWAddr = net.HardwareAddr(append([]byte(nil), data[8:14]...))
	p.Name = util.StripString(data[16:32])

	var err error
	if p.Config, err = util.BinaryToFlags(PortConfig, data[32:36]); err != nil {
		return err
	}
	if p.State, err = util.BinaryToFlags(PortState, data[36:40]); err != nil {
		return err
	}
	if p.Curr, err = util.BinaryToFlags(PortFeature, data[40:44]); err != nil {
		return err
	}
	if p.Advertised, err = util.BinaryToFlags(PortFeature, data[44:48]); err != nil {
		return err
	}
	if p.Supported, err = util.BinaryToFlags(PortFeature, data[48:52]); err != nil {
		return err
	}
	if p.Peer, err = util.BinaryToFlags(PortFeature, data[52:56]); err != nil {
		return err
	}
	p.CurrSpeed = binary.BigEndian.Uint32(data[56:60])
	p.MaxSpeed = binary.BigEndian.Uint32(data[60:64])
	return nil
}
