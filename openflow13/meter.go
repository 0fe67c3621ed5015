package openflow13

// This file has the meter-mod message. Meter band definitions live in
// meterband.go.

import (
	"encoding/binary"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/flowbase/ofcodec/common"
	"github.com/flowbase/ofcodec/util"
)

// ofp_meter_mod_command.
const (
	MeterCommandAdd    uint16 = 0
	MeterCommandModify uint16 = 1
	MeterCommandDelete uint16 = 2
)

// Meter numbering (ofp_meter).
const (
	MeterMax        uint32 = 0xffff0000
	MeterSlowpath   uint32 = 0xfffffffd
	MeterController uint32 = 0xfffffffe
	MeterAll        uint32 = 0xffffffff
)

const meterModFixedLen = 8

// MeterMod is OFPT_METER_MOD (spec.md §3).
type MeterMod struct {
	Header
	Command    uint16
	Flags      []string // ofp_meter_flags
	MeterID    uint32
	MeterBands []MeterBand
}

func NewMeterMod() *MeterMod {
	m := new(MeterMod)
	m.Header = NewHeader(messageType("meter_mod"))
	return m
}

func (m *MeterMod) AddMeterBand(b MeterBand) {
	m.MeterBands = append(m.MeterBands, b)
}

func (m *MeterMod) Len() uint16 {
	n := m.Header.Len() + meterModFixedLen
	if m.Command == MeterCommandDelete {
		return n
	}
	for _, b := range m.MeterBands {
		bb, _ := b.MarshalBinary()
		n += uint16(len(bb))
	}
	return n
}

func (m *MeterMod) MarshalBinary() (data []byte, err error) {
	flagBits, err := util.FlagsToUint(MeterFlag, m.Flags)
	if err != nil {
		return nil, err
	}
	flags := uint16(flagBits)

	m.Header.Length = m.Len()
	hdr, err := m.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	data = append(data, hdr...)

	body := make([]byte, meterModFixedLen)
	binary.BigEndian.PutUint16(body[0:2], m.Command)
	binary.BigEndian.PutUint16(body[2:4], flags)
	binary.BigEndian.PutUint32(body[4:8], m.MeterID)
	data = append(data, body...)

	if m.Command == MeterCommandDelete {
		return data, nil
	}
	for _, b := range m.MeterBands {
		bb, err := b.MarshalBinary()
		if err != nil {
			return nil, err
		}
		data = append(data, bb...)
		log.Debugf("meter_mod band: %v", bb)
	}
	log.Debugf("meter_mod(%d): %v", len(data), data)
	return data, nil
}

func (m *MeterMod) UnmarshalBinary(data []byte) error {
	if err := m.Header.UnmarshalBinary(data); err != nil {
		return err
	}
	n := int(m.Header.Len())
	if len(data) < n+meterModFixedLen {
		return fmt.Errorf("%w: meter_mod body", common.ErrShortInput)
	}
	m.Command = binary.BigEndian.Uint16(data[n : n+2])
	flagBits := binary.BigEndian.Uint16(data[n+2 : n+4])
	m.MeterID = binary.BigEndian.Uint32(data[n+4 : n+8])
	n += meterModFixedLen

	flags, err := util.UintToFlags(MeterFlag, uint64(flagBits))
	if err != nil {
		return err
	}
	m.Flags = flags

	for n < int(m.Header.Length) {
		band, err := decodeMeterBand(data[n:])
		if err != nil {
			return err
		}
		m.MeterBands = append(m.MeterBands, band)
		bb, _ := band.MarshalBinary()
		n += len(bb)
	}
	return nil
}
