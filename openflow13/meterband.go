package openflow13

import (
	"encoding/binary"
	"fmt"

	"github.com/flowbase/ofcodec/common"
)

// MeterBand is one rate-limiting band attached to a meter: Drop,
// DSCPRemark, or Experimenter (spec.md §3). Every band is 16 bytes on the
// wire: a 12-byte header (type, length, rate, burst) plus 4 bytes of
// type-specific body.
type MeterBand interface {
	bandType() string
	MarshalBinary() (data []byte, err error)
	UnmarshalBinary(data []byte) error
}

const meterBandLen = 16
const meterBandHeaderLen = 12

func marshalMeterBandHeader(bandType string, rate, burst uint32) ([]byte, error) {
	t, err := MeterBandType.Int(bandType)
	if err != nil {
		return nil, err
	}
	data := make([]byte, meterBandLen)
	binary.BigEndian.PutUint16(data[0:2], uint16(t))
	binary.BigEndian.PutUint16(data[2:4], meterBandLen)
	binary.BigEndian.PutUint32(data[4:8], rate)
	binary.BigEndian.PutUint32(data[8:12], burst)
	return data, nil
}

// MeterBandDrop is OFPMBT_DROP: no type-specific fields beyond 4 pad
// bytes.
type MeterBandDrop struct {
	Rate  uint32
	Burst uint32
}

func (b *MeterBandDrop) bandType() string { return "drop" }
func (b *MeterBandDrop) MarshalBinary() ([]byte, error) {
	return marshalMeterBandHeader("drop", b.Rate, b.Burst)
}
func (b *MeterBandDrop) UnmarshalBinary(data []byte) error {
	if len(data) < meterBandLen {
		return fmt.Errorf("%w: meter band drop", common.ErrShortInput)
	}
	b.Rate = binary.BigEndian.Uint32(data[4:8])
	b.Burst = binary.BigEndian.Uint32(data[8:12])
	return nil
}

// MeterBandDSCPRemark is OFPMBT_DSCP_REMARK.
type MeterBandDSCPRemark struct {
	Rate      uint32
	Burst     uint32
	PrecLevel uint8
}

func (b *MeterBandDSCPRemark) bandType() string { return "dscp_remark" }
func (b *MeterBandDSCPRemark) MarshalBinary() ([]byte, error) {
	data, err := marshalMeterBandHeader("dscp_remark", b.Rate, b.Burst)
	if err != nil {
		return nil, err
	}
	data[meterBandHeaderLen] = b.PrecLevel
	return data, nil
}
func (b *MeterBandDSCPRemark) UnmarshalBinary(data []byte) error {
	if len(data) < meterBandLen {
		return fmt.Errorf("%w: meter band dscp_remark", common.ErrShortInput)
	}
	b.Rate = binary.BigEndian.Uint32(data[4:8])
	b.Burst = binary.BigEndian.Uint32(data[8:12])
	b.PrecLevel = data[meterBandHeaderLen]
	return nil
}

// MeterBandExperimenter is OFPMBT_EXPERIMENTER.
type MeterBandExperimenter struct {
	Rate           uint32
	Burst          uint32
	ExperimenterID uint32
}

func (b *MeterBandExperimenter) bandType() string { return "experimenter" }
func (b *MeterBandExperimenter) MarshalBinary() ([]byte, error) {
	data, err := marshalMeterBandHeader("experimenter", b.Rate, b.Burst)
	if err != nil {
		return nil, err
	}
	binary.BigEndian.PutUint32(data[meterBandHeaderLen:], b.ExperimenterID)
	return data, nil
}
func (b *MeterBandExperimenter) UnmarshalBinary(data []byte) error {
	if len(data) < meterBandLen {
		return fmt.Errorf("%w: meter band experimenter", common.ErrShortInput)
	}
	b.Rate = binary.BigEndian.Uint32(data[4:8])
	b.Burst = binary.BigEndian.Uint32(data[8:12])
	b.ExperimenterID = binary.BigEndian.Uint32(data[meterBandHeaderLen:])
	return nil
}

func decodeMeterBand(data []byte) (MeterBand, error) {
	if len(data) < meterBandHeaderLen {
		return nil, fmt.Errorf("%w: meter band header", common.ErrShortInput)
	}
	t := binary.BigEndian.Uint16(data[0:2])
	sym, err := MeterBandType.Symbol(uint32(t))
	if err != nil {
		return nil, err
	}
	var band MeterBand
	switch sym {
	case "drop":
		band = new(MeterBandDrop)
	case "dscp_remark":
		band = new(MeterBandDSCPRemark)
	case "experimenter":
		band = new(MeterBandExperimenter)
	default:
		return nil, fmt.Errorf("%w: meter band type %q", common.ErrUnknownTag, sym)
	}
	if err := band.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return band, nil
}
